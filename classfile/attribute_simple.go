package classfile

// ConstantValueAttribute carries a raw constant pool index whose variant
// (Long, Float, Double, Integer or String) is implied by the enclosing
// field's descriptor; the decoder does not check that correspondence.
type ConstantValueAttribute struct {
	ValueIndex uint16
}

type SyntheticAttribute struct{}
type DeprecatedAttribute struct{}

type SignatureAttribute struct {
	SignatureIndex uint16
}

func (a *SignatureAttribute) Signature(cp ConstantPool) string {
	return cp.GetUtf8(a.SignatureIndex)
}

type SourceFileAttribute struct {
	SourceFileIndex uint16
}

func (a *SourceFileAttribute) SourceFile(cp ConstantPool) string {
	return cp.GetUtf8(a.SourceFileIndex)
}

// SourceDebugExtensionAttribute holds its bytes verbatim (modified UTF-8,
// not decoded to a native string) borrowed from the source buffer.
type SourceDebugExtensionAttribute struct {
	Bytes []byte
}

type ExceptionsAttribute struct {
	Exceptions []CPIndex[*ClassInfo]
}

type InnerClassEntry struct {
	InnerClass            CPIndex[*ClassInfo]
	OuterClass            CPIndex[*ClassInfo] // zero: not a member of another class
	InnerName             CPIndex[*Utf8Info]  // zero: anonymous
	InnerClassAccessFlags AccessFlags
}

type InnerClassesAttribute struct {
	Classes []InnerClassEntry
}

type EnclosingMethodAttribute struct {
	Class  CPIndex[*ClassInfo]
	Method CPIndex[*NameAndTypeInfo] // zero: not enclosed by a method or constructor
}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct {
	Entries []LineNumberEntry
}

// LocalVariableEntry is the shared shape of LocalVariableTable and
// LocalVariableTypeTable entries; only the attribute wrapper distinguishes
// whether DescriptorIndex names a descriptor or a signature.
type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}

type LocalVariableTableAttribute struct {
	Entries []LocalVariableEntry
}

type LocalVariableTypeTableAttribute struct {
	Entries []LocalVariableEntry
}

type BootstrapMethodEntry struct {
	MethodRef uint16 // index of a CONSTANT_MethodHandle
	Arguments []uint16
}

type BootstrapMethodsAttribute struct {
	Methods []BootstrapMethodEntry
}

// MethodParameterEntry describes one formal parameter; NameIndex of 0 means
// the parameter has no name recorded.
type MethodParameterEntry struct {
	NameIndex   uint16
	AccessFlags AccessFlags
}

type MethodParametersAttribute struct {
	Parameters []MethodParameterEntry
}

type NestHostAttribute struct {
	HostClass CPIndex[*ClassInfo]
}

type NestMembersAttribute struct {
	Classes []CPIndex[*ClassInfo]
}

type PermittedSubclassesAttribute struct {
	Classes []CPIndex[*ClassInfo]
}

type ModuleMainClassAttribute struct {
	MainClass CPIndex[*ClassInfo]
}

type ModulePackagesAttribute struct {
	Packages []CPIndex[*PackageInfo]
}
