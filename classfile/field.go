package classfile

// FieldInfo is one field_info record.
type FieldInfo struct {
	AccessFlags AccessFlags
	NameIndex   uint16
	Descriptor  uint16
	Attributes  []AttributeInfo
}

func (f *FieldInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(f.NameIndex)
}

func (f *FieldInfo) DescriptorString(cp ConstantPool) string {
	return cp.GetUtf8(f.Descriptor)
}

func (f *FieldInfo) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(f.Attributes, cp, name)
}

func (f *FieldInfo) IsPublic() bool    { return f.AccessFlags.IsPublic() }
func (f *FieldInfo) IsPrivate() bool   { return f.AccessFlags.IsPrivate() }
func (f *FieldInfo) IsProtected() bool { return f.AccessFlags.IsProtected() }
func (f *FieldInfo) IsStatic() bool    { return f.AccessFlags.IsStatic() }
func (f *FieldInfo) IsFinal() bool     { return f.AccessFlags.IsFinal() }
func (f *FieldInfo) IsVolatile() bool  { return f.AccessFlags.IsVolatile() }
func (f *FieldInfo) IsTransient() bool { return f.AccessFlags.IsTransient() }
func (f *FieldInfo) IsSynthetic() bool { return f.AccessFlags.IsSynthetic() }
func (f *FieldInfo) IsEnum() bool      { return f.AccessFlags.IsEnum() }

// ParsedDescriptor parses the field's descriptor into a FieldType, or nil
// if it is malformed. Decode does not validate descriptors, so this can
// return nil for a decoded FieldInfo as well as a caller-constructed one.
func (f *FieldInfo) ParsedDescriptor(cp ConstantPool) *FieldType {
	return ParseFieldDescriptor(f.DescriptorString(cp))
}
