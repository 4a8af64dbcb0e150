package classfile

import "fmt"

// TargetInfoKind identifies which target_info shape a TypeAnnotation
// carries, selected by its TargetType (spec §6's 22-entry target_type set).
type TargetInfoKind uint8

const (
	TargetInfoTypeParameter TargetInfoKind = iota
	TargetInfoSuperType
	TargetInfoTypeParameterBound
	TargetInfoEmpty
	TargetInfoFormalParameter
	TargetInfoThrows
	TargetInfoLocalVar
	TargetInfoCatch
	TargetInfoOffset
	TargetInfoTypeArgument
)

// LocalVarTargetEntry is one entry of a LocalVarTarget's table.
type LocalVarTargetEntry struct {
	StartPC uint16
	Length  uint16
	Index   uint16
}

// TargetInfo is a tagged union over the 10 target_info shapes; only the
// fields relevant to Kind are populated.
type TargetInfo struct {
	Kind TargetInfoKind

	TypeParameterIndex uint16 // TypeParameter

	SuperTypeIndex uint16 // SuperType; 0xFFFF denotes the extends clause

	BoundTypeParameterIndex uint16 // TypeParameterBound
	BoundIndex              uint16 // TypeParameterBound

	FormalParameterIndex uint16 // FormalParameter

	ThrowsIndex uint16 // Throws

	LocalVars []LocalVarTargetEntry // LocalVar

	CatchIndex uint16 // Catch

	Offset uint16 // Offset, TypeArgument

	TypeArgumentIndex uint16 // TypeArgument
}

func parseTargetInfo(c *cursor, tt TargetType) TargetInfo {
	switch tt {
	case TargetClassTypeParameter, TargetMethodTypeParameter:
		return TargetInfo{Kind: TargetInfoTypeParameter, TypeParameterIndex: c.MustReadU16()}
	case TargetClassExtends:
		return TargetInfo{Kind: TargetInfoSuperType, SuperTypeIndex: c.MustReadU16()}
	case TargetClassTypeParameterBound, TargetMethodTypeParameterBound:
		return TargetInfo{
			Kind:                    TargetInfoTypeParameterBound,
			BoundTypeParameterIndex: c.MustReadU16(),
			BoundIndex:              c.MustReadU16(),
		}
	case TargetField, TargetMethodReturn, TargetMethodReceiver:
		return TargetInfo{Kind: TargetInfoEmpty}
	case TargetMethodFormalParameter:
		return TargetInfo{Kind: TargetInfoFormalParameter, FormalParameterIndex: c.MustReadU16()}
	case TargetThrows:
		return TargetInfo{Kind: TargetInfoThrows, ThrowsIndex: c.MustReadU16()}
	case TargetLocalVariable, TargetResourceVariable:
		count := c.MustReadU16()
		vars := make([]LocalVarTargetEntry, count)
		for i := range vars {
			vars[i] = LocalVarTargetEntry{
				StartPC: c.MustReadU16(),
				Length:  c.MustReadU16(),
				Index:   c.MustReadU16(),
			}
		}
		return TargetInfo{Kind: TargetInfoLocalVar, LocalVars: vars}
	case TargetExceptionParameter:
		return TargetInfo{Kind: TargetInfoCatch, CatchIndex: c.MustReadU16()}
	case TargetInstanceof, TargetNew, TargetConstructorReference, TargetMethodReference:
		return TargetInfo{Kind: TargetInfoOffset, Offset: c.MustReadU16()}
	case TargetCast, TargetConstructorInvocationTypeArg, TargetMethodInvocationTypeArg,
		TargetConstructorReferenceTypeArg, TargetMethodReferenceTypeArg:
		return TargetInfo{Kind: TargetInfoTypeArgument, Offset: c.MustReadU16(), TypeArgumentIndex: c.MustReadU16()}
	default:
		panic(fmt.Errorf("%w: 0x%02x", ErrInvalidTargetType, byte(tt)))
	}
}

// TypePathEntry is one entry of a type_path sequence. TypeArgumentIndex is
// the byte recorded verbatim for every PathKind; compilers normally write
// zero for every kind but PathParameterized.
type TypePathEntry struct {
	PathKind          PathKind
	TypeArgumentIndex uint8
}

func parseTypePath(c *cursor) []TypePathEntry {
	count := c.MustReadU8()
	entries := make([]TypePathEntry, count)
	for i := range entries {
		kind := PathKind(c.MustReadU8())
		if kind > PathParameterized {
			panic(fmt.Errorf("%w: %d", ErrInvalidPathKind, kind))
		}
		entries[i] = TypePathEntry{PathKind: kind, TypeArgumentIndex: c.MustReadU8()}
	}
	return entries
}

// TypeAnnotation extends Annotation with the target_type/target_info/
// type_path prefix fields a type annotation carries.
type TypeAnnotation struct {
	TargetType TargetType
	TargetInfo TargetInfo
	TypePath   []TypePathEntry
	Annotation
}

func parseTypeAnnotation(c *cursor) TypeAnnotation {
	tt := TargetType(c.MustReadU8())
	info := parseTargetInfo(c, tt)
	path := parseTypePath(c)
	ann := parseAnnotation(c)
	return TypeAnnotation{TargetType: tt, TargetInfo: info, TypePath: path, Annotation: ann}
}

func parseTypeAnnotations(c *cursor) []TypeAnnotation {
	count := c.MustReadU16()
	anns := make([]TypeAnnotation, count)
	for i := range anns {
		anns[i] = parseTypeAnnotation(c)
	}
	return anns
}

type RuntimeVisibleTypeAnnotationsAttribute struct {
	Annotations []TypeAnnotation
}

type RuntimeInvisibleTypeAnnotationsAttribute struct {
	Annotations []TypeAnnotation
}
