package classfile

// MethodInfo is one method_info record.
type MethodInfo struct {
	AccessFlags    AccessFlags
	NameIndex      uint16
	DescriptorIdx  uint16
	Attributes     []AttributeInfo
}

func (m *MethodInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(m.NameIndex)
}

func (m *MethodInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(m.DescriptorIdx)
}

func (m *MethodInfo) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(m.Attributes, cp, name)
}

// GetCodeAttribute returns the method's Code attribute (already decoded into
// a *CodeAttribute), or nil for an abstract or native method.
func (m *MethodInfo) GetCodeAttribute(cp ConstantPool) *CodeAttribute {
	attr := m.GetAttribute(cp, "Code")
	if attr == nil {
		return nil
	}
	code, _ := attr.Parsed.(*CodeAttribute)
	return code
}

func (m *MethodInfo) IsPublic() bool       { return m.AccessFlags.IsPublic() }
func (m *MethodInfo) IsPrivate() bool      { return m.AccessFlags.IsPrivate() }
func (m *MethodInfo) IsProtected() bool    { return m.AccessFlags.IsProtected() }
func (m *MethodInfo) IsStatic() bool       { return m.AccessFlags.IsStatic() }
func (m *MethodInfo) IsFinal() bool        { return m.AccessFlags.IsFinal() }
func (m *MethodInfo) IsSynchronized() bool { return m.AccessFlags.IsSynchronized() }
func (m *MethodInfo) IsBridge() bool       { return m.AccessFlags.IsBridge() }
func (m *MethodInfo) IsVarargs() bool      { return m.AccessFlags.IsVarargs() }
func (m *MethodInfo) IsNative() bool       { return m.AccessFlags.IsNative() }
func (m *MethodInfo) IsAbstract() bool     { return m.AccessFlags.IsAbstract() }
func (m *MethodInfo) IsStrict() bool       { return m.AccessFlags.IsStrict() }
func (m *MethodInfo) IsSynthetic() bool    { return m.AccessFlags.IsSynthetic() }

// IsConstructor reports whether this is an instance initializer, "<init>".
func (m *MethodInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

// IsStaticInitializer reports whether this is a class initializer, "<clinit>".
func (m *MethodInfo) IsStaticInitializer(cp ConstantPool) bool {
	return m.Name(cp) == "<clinit>"
}

// ParsedDescriptor parses the method's descriptor into a MethodDescriptor, or
// nil if malformed.
func (m *MethodInfo) ParsedDescriptor(cp ConstantPool) *MethodDescriptor {
	return ParseMethodDescriptor(m.Descriptor(cp))
}
