package classfile

// ExceptionTableEntry is one entry of a Code attribute's exception table.
// CatchType of zero means a catch-all (finally) handler.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType CPIndex[*ClassInfo]
}

// CodeAttribute is the decoded form of the Code attribute. Code is a
// borrowed slice of the raw bytecode bytes — see the bytecode subpackage
// for opcode enumeration and instruction-length resolution over it.
type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []AttributeInfo
}

func (a *CodeAttribute) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(a.Attributes, cp, name)
}

// parseCode decodes a Code attribute body. It recurses into decodeAttribute
// for the nested attribute sequence (typically LineNumberTable,
// LocalVariableTable, StackMapTable), which is how component D recurses
// into itself per the assembler's data-flow diagram.
func parseCode(c *cursor, cp ConstantPool) *CodeAttribute {
	maxStack := c.MustReadU16()
	maxLocals := c.MustReadU16()
	codeLength := c.MustReadU32()
	code := c.MustReadBytes(int(codeLength))

	excCount := c.MustReadU16()
	exceptionTable := make([]ExceptionTableEntry, excCount)
	for i := range exceptionTable {
		exceptionTable[i] = ExceptionTableEntry{
			StartPC:   c.MustReadU16(),
			EndPC:     c.MustReadU16(),
			HandlerPC: c.MustReadU16(),
			CatchType: CPIndex[*ClassInfo](c.MustReadU16()),
		}
	}

	attrCount := c.MustReadU16()
	attrs := make([]AttributeInfo, attrCount)
	for i := range attrs {
		a, err := decodeAttribute(c, cp)
		if err != nil {
			panic(err)
		}
		attrs[i] = a
	}

	return &CodeAttribute{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           code,
		ExceptionTable: exceptionTable,
		Attributes:     attrs,
	}
}
