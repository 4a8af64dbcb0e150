package classfile

// RecordComponent is one entry of a Record attribute: a name, a descriptor,
// and its own nested attribute sequence (typically Signature and/or
// annotations).
type RecordComponent struct {
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (rc *RecordComponent) Name(cp ConstantPool) string {
	return cp.GetUtf8(rc.NameIndex)
}

func (rc *RecordComponent) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(rc.DescriptorIndex)
}

func (rc *RecordComponent) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(rc.Attributes, cp, name)
}

type RecordAttribute struct {
	Components []RecordComponent
}

func parseRecord(c *cursor, cp ConstantPool) *RecordAttribute {
	count := c.MustReadU16()
	components := make([]RecordComponent, count)
	for i := range components {
		name := c.MustReadU16()
		descriptor := c.MustReadU16()
		attrCount := c.MustReadU16()
		attrs := make([]AttributeInfo, attrCount)
		for j := range attrs {
			a, err := decodeAttribute(c, cp)
			if err != nil {
				panic(err)
			}
			attrs[j] = a
		}
		components[i] = RecordComponent{NameIndex: name, DescriptorIndex: descriptor, Attributes: attrs}
	}
	return &RecordAttribute{Components: components}
}
