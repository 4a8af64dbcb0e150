package classfile

// ClassFile is the decoded form of a single .class file. Its slice-valued
// fields either own their storage (the pool itself, attribute sequences) or
// borrow directly from the byte slice passed to Decode (Utf8 bodies, Code
// arrays, SourceDebugExtension bytes) — see spec.md §3 for the ownership
// rules. There is no explicit release step; once the ClassFile and the
// buffer it was decoded from are both unreferenced, the garbage collector
// reclaims them together.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    CPIndex[*ClassInfo]
	SuperClass   CPIndex[*ClassInfo] // zero means no super class (only java/lang/Object itself)
	Interfaces   []CPIndex[*ClassInfo]
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

// ClassName resolves the this_class entry to its internal-form name.
func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass.Raw())
}

// SuperClassName resolves super_class, returning "java/lang/Object" when
// super_class is absent (the only legal case being java/lang/Object itself).
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass.IsZero() {
		return "java/lang/Object"
	}
	return cf.ConstantPool.GetClassName(cf.SuperClass.Raw())
}

// InterfaceNames resolves every direct superinterface to its internal name.
func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.GetClassName(idx.Raw())
	}
	return names
}

func (cf *ClassFile) IsClass() bool {
	return !cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsModule()
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAnnotation() bool { return cf.AccessFlags.IsAnnotation() }
func (cf *ClassFile) IsEnum() bool       { return cf.AccessFlags.IsEnum() }
func (cf *ClassFile) IsModule() bool     { return cf.AccessFlags.IsModule() }

// ReadUtf8 resolves a raw 16-bit constant pool index to the borrowed bytes
// of the Utf8 entry it names, exposed for callers holding a raw index (such
// as the uint16 index fields of the decoded attributes) rather than going
// through the typed accessors above.
func (cf *ClassFile) ReadUtf8(index uint16) ([]byte, bool) {
	return cf.ConstantPool.ReadUtf8(index)
}

// GetField finds the first field with the given name.
func (cf *ClassFile) GetField(name string) *FieldInfo {
	for i := range cf.Fields {
		if cf.Fields[i].Name(cf.ConstantPool) == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

// GetMethod finds the first method with the given name, optionally
// restricted to a given descriptor (pass "" to match any descriptor).
func (cf *ClassFile) GetMethod(name, descriptor string) *MethodInfo {
	for i := range cf.Methods {
		if cf.Methods[i].Name(cf.ConstantPool) != name {
			continue
		}
		if descriptor == "" || cf.Methods[i].Descriptor(cf.ConstantPool) == descriptor {
			return &cf.Methods[i]
		}
	}
	return nil
}

// GetMethods returns every method with the given name (to support
// overloads).
func (cf *ClassFile) GetMethods(name string) []*MethodInfo {
	var methods []*MethodInfo
	for i := range cf.Methods {
		if cf.Methods[i].Name(cf.ConstantPool) == name {
			methods = append(methods, &cf.Methods[i])
		}
	}
	return methods
}

// GetAttribute finds the first class-level attribute with the given name.
func (cf *ClassFile) GetAttribute(name string) *AttributeInfo {
	return findAttribute(cf.Attributes, cf.ConstantPool, name)
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if cp.GetUtf8(attrs[i].NameIndex) == name {
			return &attrs[i]
		}
	}
	return nil
}
