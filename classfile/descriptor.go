package classfile

import "strings"

// maxArrayDepth bounds the number of leading '[' array markers a single
// field descriptor may carry (spec.md §4.C).
const maxArrayDepth = 255

func isBaseType(b byte) bool {
	switch b {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return true
	}
	return false
}

// isValidClassName checks the ClassName grammar used inside 'L' ... ';':
// one or more bytes from [A-Za-z/], with '/' forbidden at the first or last
// position.
func isValidClassName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		letter := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		slash := b == '/'
		if !letter && !slash {
			return false
		}
		if slash && (i == 0 || i == len(name)-1) {
			return false
		}
	}
	return true
}

// scanFieldDescriptor scans a single field descriptor starting at s[0] and
// returns the number of bytes consumed. When partial is false, the entire
// string must be consumed — used for top-level validation. When partial is
// true, trailing bytes are permitted, which is how method-parameter lists
// scan one descriptor after another out of the same string.
func scanFieldDescriptor(s string, partial bool) (consumed int, ok bool) {
	depth := 0
	i := 0
	for i < len(s) && s[i] == '[' {
		depth++
		if depth > maxArrayDepth {
			return 0, false
		}
		i++
	}
	if i >= len(s) {
		return 0, false
	}

	switch {
	case isBaseType(s[i]):
		i++
	case s[i] == 'L':
		start := i + 1
		rel := strings.IndexByte(s[start:], ';')
		if rel == -1 {
			return 0, false
		}
		end := start + rel
		if !isValidClassName(s[start:end]) {
			return 0, false
		}
		i = end + 1
	default:
		return 0, false
	}

	if !partial && i != len(s) {
		return 0, false
	}
	return i, true
}

// IsValidFieldDescriptor reports whether s is a well-formed field descriptor.
func IsValidFieldDescriptor(s string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := scanFieldDescriptor(s, false)
	return ok
}

// IsValidMethodDescriptor reports whether s is a well-formed method
// descriptor: '(' FieldDesc* ')' (FieldDesc | 'V').
func IsValidMethodDescriptor(s string) bool {
	if len(s) == 0 || s[0] != '(' {
		return false
	}
	i := 1
	for i < len(s) && s[i] != ')' {
		consumed, ok := scanFieldDescriptor(s[i:], true)
		if !ok || consumed == 0 {
			return false
		}
		i += consumed
	}
	if i >= len(s) || s[i] != ')' {
		return false
	}
	i++
	if i >= len(s) {
		return false
	}
	if s[i] == 'V' {
		return i+1 == len(s)
	}
	_, ok := scanFieldDescriptor(s[i:], false)
	return ok
}

// FieldType is a parsed field descriptor: exactly one of BaseType or
// ClassName is set (unless IsArray, in which case ArrayDepth applies to
// whichever of the two is the element type).
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

func (ft *FieldType) String() string {
	var sb strings.Builder
	for i := 0; i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	switch {
	case ft.BaseType != "":
		sb.WriteString(ft.BaseType)
	case ft.ClassName != "":
		sb.WriteString(strings.ReplaceAll(ft.ClassName, "/", "."))
	}
	return sb.String()
}

func (ft *FieldType) IsArray() bool     { return ft.ArrayDepth > 0 }
func (ft *FieldType) IsPrimitive() bool { return ft.BaseType != "" && ft.ClassName == "" }
func (ft *FieldType) IsReference() bool { return ft.ClassName != "" || ft.ArrayDepth > 0 }

var baseTypeNames = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// MethodDescriptor is a parsed method descriptor. ReturnType is nil for a
// void return.
type MethodDescriptor struct {
	Parameters []FieldType
	ReturnType *FieldType
}

func (md *MethodDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range md.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	sb.WriteString(" ")
	if md.ReturnType != nil {
		sb.WriteString(md.ReturnType.String())
	} else {
		sb.WriteString("void")
	}
	return sb.String()
}

// ParseFieldDescriptor parses desc into a FieldType, or nil if desc is not a
// well-formed field descriptor.
func ParseFieldDescriptor(desc string) *FieldType {
	ft, consumed := parseFieldType(desc, 0)
	if ft == nil || consumed != len(desc) {
		return nil
	}
	return ft
}

// ParseMethodDescriptor parses desc into a MethodDescriptor, or nil if desc
// is not a well-formed method descriptor.
func ParseMethodDescriptor(desc string) *MethodDescriptor {
	if !IsValidMethodDescriptor(desc) {
		return nil
	}

	md := &MethodDescriptor{}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		ft, consumed := parseFieldType(desc, i)
		md.Parameters = append(md.Parameters, *ft)
		i += consumed
	}
	i++ // ')'

	if desc[i] != 'V' {
		md.ReturnType, _ = parseFieldType(desc, i)
	}
	return md
}

// parseFieldType parses one field descriptor starting at desc[start],
// returning the type and the number of bytes consumed.
func parseFieldType(desc string, start int) (*FieldType, int) {
	consumed, ok := scanFieldDescriptor(desc[start:], true)
	if !ok {
		return nil, 0
	}

	ft := &FieldType{}
	i := start
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if name, isBase := baseTypeNames[desc[i]]; isBase {
		ft.BaseType = name
	} else { // 'L' ClassName ';'
		end := strings.IndexByte(desc[i:], ';')
		ft.ClassName = desc[i+1 : i+end]
	}
	return ft, consumed
}

// InternalToSourceName converts a class's internal name (slash-separated)
// to its source form (dot-separated), e.g. "java/lang/Object" ->
// "java.lang.Object".
func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// SourceToInternalName is InternalToSourceName's inverse.
func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
