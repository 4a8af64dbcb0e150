package classfile

import (
	"fmt"
	"os"
)

// Decode drives a full class-file decode over buf, which Decode borrows for
// the lifetime of the returned ClassFile (see classfile.go). It never
// mutates buf. Trailing bytes after the class-level attribute sequence are
// ignored, not rejected.
func Decode(buf []byte) (*ClassFile, error) {
	c := newCursor(buf)

	magic, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrInvalidHeader
	}

	minor, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	major, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if major < MinSupportedMajor || major > MaxSupportedMajor {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMajorVersion, major)
	}

	poolCount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	cp, err := decodeConstantPool(c, poolCount)
	if err != nil {
		return nil, err
	}

	rawAccess, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	accessFlags := AccessFlags(rawAccess)
	if accessFlags&^classAccessMask != 0 {
		return nil, fmt.Errorf("%w: 0x%04x", ErrInvalidAccessFlags, rawAccess)
	}

	thisClass, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	superClass, err := c.ReadU16()
	if err != nil {
		return nil, err
	}

	interfaces, err := decodeInterfaces(c)
	if err != nil {
		return nil, err
	}

	fields, err := decodeFields(c, cp)
	if err != nil {
		return nil, err
	}

	methods, err := decodeMethods(c, cp)
	if err != nil {
		return nil, err
	}

	attributes, err := decodeAttributes(c, cp)
	if err != nil {
		return nil, err
	}

	return &ClassFile{
		MinorVersion: minor,
		MajorVersion: major,
		ConstantPool: cp,
		AccessFlags:  accessFlags,
		ThisClass:    CPIndex[*ClassInfo](thisClass),
		SuperClass:   CPIndex[*ClassInfo](superClass),
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attributes,
	}, nil
}

// DecodeFile reads path and decodes it as a class file. The returned
// ClassFile borrows from the buffer read from disk, which DecodeFile keeps
// alive by never discarding its reference to it.
func DecodeFile(path string) (*ClassFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(buf)
}

func decodeInterfaces(c *cursor) ([]CPIndex[*ClassInfo], error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	interfaces := make([]CPIndex[*ClassInfo], count)
	for i := range interfaces {
		idx, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		interfaces[i] = CPIndex[*ClassInfo](idx)
	}
	return interfaces, nil
}

func decodeFields(c *cursor, cp ConstantPool) ([]FieldInfo, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	fields := make([]FieldInfo, count)
	for i := range fields {
		rawAccess, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		flags := AccessFlags(rawAccess)
		if flags&^fieldAccessMask != 0 {
			return nil, fmt.Errorf("%w: 0x%04x", ErrInvalidAccessFlags, rawAccess)
		}
		nameIndex, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		descriptorIndex, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(c, cp)
		if err != nil {
			return nil, err
		}
		fields[i] = FieldInfo{
			AccessFlags: flags,
			NameIndex:   nameIndex,
			Descriptor:  descriptorIndex,
			Attributes:  attrs,
		}
	}
	return fields, nil
}

func decodeMethods(c *cursor, cp ConstantPool) ([]MethodInfo, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	methods := make([]MethodInfo, count)
	for i := range methods {
		rawAccess, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		flags := AccessFlags(rawAccess)
		if flags&^methodAccessMask != 0 {
			return nil, fmt.Errorf("%w: 0x%04x", ErrInvalidAccessFlags, rawAccess)
		}
		nameIndex, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		descriptorIndex, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(c, cp)
		if err != nil {
			return nil, err
		}
		methods[i] = MethodInfo{
			AccessFlags:   flags,
			NameIndex:     nameIndex,
			DescriptorIdx: descriptorIndex,
			Attributes:    attrs,
		}
	}
	return methods, nil
}
