package classfile

// Magic is the 4-byte big-endian signature every class file begins with.
const Magic = 0xCAFEBABE

// MinSupportedMajor and MaxSupportedMajor bound the accepted major version:
// JDK 1.1 (45) through Java SE 21 (65).
const (
	MinSupportedMajor = 45
	MaxSupportedMajor = 65
)

// AccessFlags is a 16-bit bitmask; which bits are sanctioned depends on
// where the flags are attached (class, field, method, inner class, module,
// module requires/exports/opens, method parameter) — see the Is* helpers
// and the allowed-bits masks below.
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSuper        AccessFlags = 0x0020
	AccSynchronized AccessFlags = 0x0020
	AccOpen         AccessFlags = 0x0020
	AccTransitive   AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccStaticPhase  AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccMandated     AccessFlags = 0x8000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) IsPublic() bool       { return f&AccPublic != 0 }
func (f AccessFlags) IsPrivate() bool      { return f&AccPrivate != 0 }
func (f AccessFlags) IsProtected() bool    { return f&AccProtected != 0 }
func (f AccessFlags) IsStatic() bool       { return f&AccStatic != 0 }
func (f AccessFlags) IsFinal() bool        { return f&AccFinal != 0 }
func (f AccessFlags) IsSuper() bool        { return f&AccSuper != 0 }
func (f AccessFlags) IsSynchronized() bool { return f&AccSynchronized != 0 }
func (f AccessFlags) IsVolatile() bool     { return f&AccVolatile != 0 }
func (f AccessFlags) IsBridge() bool       { return f&AccBridge != 0 }
func (f AccessFlags) IsTransient() bool    { return f&AccTransient != 0 }
func (f AccessFlags) IsVarargs() bool      { return f&AccVarargs != 0 }
func (f AccessFlags) IsNative() bool       { return f&AccNative != 0 }
func (f AccessFlags) IsInterface() bool    { return f&AccInterface != 0 }
func (f AccessFlags) IsAbstract() bool     { return f&AccAbstract != 0 }
func (f AccessFlags) IsStrict() bool       { return f&AccStrict != 0 }
func (f AccessFlags) IsSynthetic() bool    { return f&AccSynthetic != 0 }
func (f AccessFlags) IsAnnotation() bool   { return f&AccAnnotation != 0 }
func (f AccessFlags) IsEnum() bool         { return f&AccEnum != 0 }
func (f AccessFlags) IsModule() bool       { return f&AccModule != 0 }
func (f AccessFlags) IsMandated() bool     { return f&AccMandated != 0 }

// classAccessMask, fieldAccessMask, methodAccessMask, innerClassAccessMask,
// moduleFlagMask, moduleRequiresFlagMask, moduleExportsOpensFlagMask and
// methodParameterFlagMask enumerate the sanctioned bits per spec §6. Decode
// rejects class, field and method flags with a bit outside classAccessMask,
// fieldAccessMask or methodAccessMask as ErrInvalidAccessFlags. The
// inner-class, module and method-parameter masks are not applied by the
// decoder: those flags are stored as read, unchecked.
const (
	classAccessMask            = AccPublic | AccFinal | AccSuper | AccInterface | AccAbstract | AccSynthetic | AccAnnotation | AccEnum | AccModule
	fieldAccessMask            = AccPublic | AccPrivate | AccProtected | AccStatic | AccFinal | AccVolatile | AccTransient | AccSynthetic | AccEnum
	methodAccessMask           = AccPublic | AccPrivate | AccProtected | AccStatic | AccFinal | AccSynchronized | AccBridge | AccVarargs | AccNative | AccAbstract | AccStrict | AccSynthetic
	innerClassAccessMask       = AccPublic | AccPrivate | AccProtected | AccStatic | AccFinal | AccInterface | AccAbstract | AccSynthetic | AccAnnotation | AccEnum
	moduleFlagMask             = AccOpen | AccSynthetic | AccMandated
	moduleRequiresFlagMask     = AccTransitive | AccStaticPhase | AccSynthetic | AccMandated
	moduleExportsOpensFlagMask = AccSynthetic | AccMandated
	methodParameterFlagMask    = AccFinal | AccSynthetic | AccMandated
)

// ConstantTag identifies a constant pool entry's variant.
type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantDynamic            ConstantTag = 17
	ConstantInvokeDynamic      ConstantTag = 18
	ConstantModule             ConstantTag = 19
	ConstantPackage            ConstantTag = 20
)

// MethodHandleKind is the reference_kind byte of a CONSTANT_MethodHandle.
type MethodHandleKind uint8

const (
	RefGetField         MethodHandleKind = 1
	RefGetStatic        MethodHandleKind = 2
	RefPutField         MethodHandleKind = 3
	RefPutStatic        MethodHandleKind = 4
	RefInvokeVirtual    MethodHandleKind = 5
	RefInvokeStatic     MethodHandleKind = 6
	RefInvokeSpecial    MethodHandleKind = 7
	RefNewInvokeSpecial MethodHandleKind = 8
	RefInvokeInterface  MethodHandleKind = 9
)

// TargetType is the target_type byte of a type_annotation.
type TargetType uint8

const (
	TargetClassTypeParameter           TargetType = 0x00
	TargetMethodTypeParameter          TargetType = 0x01
	TargetClassExtends                 TargetType = 0x10
	TargetClassTypeParameterBound      TargetType = 0x11
	TargetMethodTypeParameterBound     TargetType = 0x12
	TargetField                        TargetType = 0x13
	TargetMethodReturn                 TargetType = 0x14
	TargetMethodReceiver                TargetType = 0x15
	TargetMethodFormalParameter         TargetType = 0x16
	TargetThrows                        TargetType = 0x17
	TargetLocalVariable                 TargetType = 0x40
	TargetResourceVariable              TargetType = 0x41
	TargetExceptionParameter            TargetType = 0x42
	TargetInstanceof                    TargetType = 0x43
	TargetNew                           TargetType = 0x44
	TargetConstructorReference          TargetType = 0x45
	TargetMethodReference               TargetType = 0x46
	TargetCast                          TargetType = 0x47
	TargetConstructorInvocationTypeArg  TargetType = 0x48
	TargetMethodInvocationTypeArg       TargetType = 0x49
	TargetConstructorReferenceTypeArg   TargetType = 0x4A
	TargetMethodReferenceTypeArg        TargetType = 0x4B
)

// PathKind is the type_path_kind byte of a type_path entry.
type PathKind uint8

const (
	PathArrayType     PathKind = 0
	PathNestedType    PathKind = 1
	PathWildcard      PathKind = 2
	PathParameterized PathKind = 3
)
