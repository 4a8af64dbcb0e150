package classfile

import (
	"fmt"
	"math"
)

// Utf8Info holds the raw modified-UTF-8 bytes of a CONSTANT_Utf8 entry,
// borrowed from the input buffer. The decoder never decodes these bytes to
// a native string; call DecodeModifiedUTF8 explicitly if you want one.
type Utf8Info struct {
	Bytes []byte
}

func (c *Utf8Info) Tag() ConstantTag { return ConstantUtf8 }

type IntegerInfo struct {
	Value uint32
}

func (c *IntegerInfo) Tag() ConstantTag { return ConstantInteger }

type FloatInfo struct {
	Value uint32
}

func (c *FloatInfo) Tag() ConstantTag { return ConstantFloat }

type LongInfo struct {
	High, Low uint32
}

func (c *LongInfo) Tag() ConstantTag { return ConstantLong }

// Value decodes the entry's two halves into a signed 64-bit value.
func (c *LongInfo) Value() int64 {
	return int64(uint64(c.High)<<32 | uint64(c.Low))
}

type DoubleInfo struct {
	High, Low uint32
}

func (c *DoubleInfo) Tag() ConstantTag { return ConstantDouble }

// Value decodes the entry's two halves into a float64.
func (c *DoubleInfo) Value() float64 {
	return math.Float64frombits(uint64(c.High)<<32 | uint64(c.Low))
}

type ClassInfo struct {
	Name CPIndex[*Utf8Info]
}

func (c *ClassInfo) Tag() ConstantTag { return ConstantClass }

type StringInfo struct {
	Value CPIndex[*Utf8Info]
}

func (c *StringInfo) Tag() ConstantTag { return ConstantString }

// RefInfo is the shared (class, name_and_type) shape of FieldrefInfo,
// MethodrefInfo and InterfaceMethodrefInfo — the three tags are structurally
// identical and only the tag distinguishes them, so the pair lives here once
// and each variant embeds it (spec.md §9 Design Notes).
type RefInfo struct {
	Class       CPIndex[*ClassInfo]
	NameAndType CPIndex[*NameAndTypeInfo]
}

type FieldrefInfo struct{ RefInfo }

func (c *FieldrefInfo) Tag() ConstantTag { return ConstantFieldref }

type MethodrefInfo struct{ RefInfo }

func (c *MethodrefInfo) Tag() ConstantTag { return ConstantMethodref }

type InterfaceMethodrefInfo struct{ RefInfo }

func (c *InterfaceMethodrefInfo) Tag() ConstantTag { return ConstantInterfaceMethodref }

type NameAndTypeInfo struct {
	Name       CPIndex[*Utf8Info]
	Descriptor CPIndex[*Utf8Info]
}

func (c *NameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type MethodHandleInfo struct {
	ReferenceKind  MethodHandleKind
	ReferenceIndex uint16 // variant constrained by ReferenceKind; the decoder does not check it
}

func (c *MethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

type MethodTypeInfo struct {
	Descriptor CPIndex[*Utf8Info]
}

func (c *MethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

// DynamicRef is the shared (bootstrap_method_attr_index, name_and_type)
// shape of CONSTANT_Dynamic and CONSTANT_InvokeDynamic.
type DynamicRef struct {
	BootstrapMethodAttrIndex uint16
	NameAndType              CPIndex[*NameAndTypeInfo]
}

type DynamicInfo struct{ DynamicRef }

func (c *DynamicInfo) Tag() ConstantTag { return ConstantDynamic }

type InvokeDynamicInfo struct{ DynamicRef }

func (c *InvokeDynamicInfo) Tag() ConstantTag { return ConstantInvokeDynamic }

type ModuleInfo struct {
	Name CPIndex[*Utf8Info]
}

func (c *ModuleInfo) Tag() ConstantTag { return ConstantModule }

type PackageInfo struct {
	Name CPIndex[*Utf8Info]
}

func (c *PackageInfo) Tag() ConstantTag { return ConstantPackage }

// ConstantPool is a 1-indexed sequence of entries: cp[i-1] holds the entry
// logically numbered i. A nil slot is the unusable second slot following a
// Long or Double entry and must never be dereferenced directly — use Get.
type ConstantPool []ConstantPoolEntry

// GetUtf8 returns the decoded bytes (as a string, without modified-UTF-8
// decoding) of the Utf8 entry at index, or "" if index does not name one.
// This is the teacher's "GetUtf8 returns empty string on miss" convenience;
// callers that need to distinguish miss from empty should use Get directly.
func (cp ConstantPool) GetUtf8(index uint16) string {
	v, err := Get(cp, CPIndex[*Utf8Info](index))
	if err != nil {
		return ""
	}
	return string(v.Bytes)
}

// ReadUtf8 returns the borrowed raw bytes of the Utf8 entry at index.
func (cp ConstantPool) ReadUtf8(index uint16) ([]byte, bool) {
	v, err := Get(cp, CPIndex[*Utf8Info](index))
	if err != nil {
		return nil, false
	}
	return v.Bytes, true
}

func (cp ConstantPool) GetClassName(index uint16) string {
	c, err := Get(cp, CPIndex[*ClassInfo](index))
	if err != nil {
		return ""
	}
	return cp.GetUtf8(c.Name.Raw())
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	nt, err := Get(cp, CPIndex[*NameAndTypeInfo](index))
	if err != nil {
		return "", ""
	}
	return cp.GetUtf8(nt.Name.Raw()), cp.GetUtf8(nt.Descriptor.Raw())
}

func (cp ConstantPool) GetString(index uint16) string {
	s, err := Get(cp, CPIndex[*StringInfo](index))
	if err != nil {
		return ""
	}
	return cp.GetUtf8(s.Value.Raw())
}

func (cp ConstantPool) GetModuleName(index uint16) string {
	m, err := Get(cp, CPIndex[*ModuleInfo](index))
	if err != nil {
		return ""
	}
	return cp.GetUtf8(m.Name.Raw())
}

func (cp ConstantPool) GetPackageName(index uint16) string {
	p, err := Get(cp, CPIndex[*PackageInfo](index))
	if err != nil {
		return ""
	}
	return cp.GetUtf8(p.Name.Raw())
}

func (cp ConstantPool) GetFieldref(index uint16) (className, name, descriptor string) {
	fr, err := Get(cp, CPIndex[*FieldrefInfo](index))
	if err != nil {
		return "", "", ""
	}
	className = cp.GetClassName(fr.Class.Raw())
	name, descriptor = cp.GetNameAndType(fr.NameAndType.Raw())
	return
}

func (cp ConstantPool) GetMethodref(index uint16) (className, name, descriptor string) {
	mr, err := Get(cp, CPIndex[*MethodrefInfo](index))
	if err != nil {
		return "", "", ""
	}
	className = cp.GetClassName(mr.Class.Raw())
	name, descriptor = cp.GetNameAndType(mr.NameAndType.Raw())
	return
}

func (cp ConstantPool) GetInterfaceMethodref(index uint16) (className, name, descriptor string) {
	mr, err := Get(cp, CPIndex[*InterfaceMethodrefInfo](index))
	if err != nil {
		return "", "", ""
	}
	className = cp.GetClassName(mr.Class.Raw())
	name, descriptor = cp.GetNameAndType(mr.NameAndType.Raw())
	return
}

func (cp ConstantPool) GetInteger(index uint16) (int32, bool) {
	v, err := Get(cp, CPIndex[*IntegerInfo](index))
	if err != nil {
		return 0, false
	}
	return int32(v.Value), true
}

func (cp ConstantPool) GetLong(index uint16) (int64, bool) {
	v, err := Get(cp, CPIndex[*LongInfo](index))
	if err != nil {
		return 0, false
	}
	return v.Value(), true
}

func (cp ConstantPool) GetFloat(index uint16) (float32, bool) {
	v, err := Get(cp, CPIndex[*FloatInfo](index))
	if err != nil {
		return 0, false
	}
	return math.Float32frombits(v.Value), true
}

func (cp ConstantPool) GetDouble(index uint16) (float64, bool) {
	v, err := Get(cp, CPIndex[*DoubleInfo](index))
	if err != nil {
		return 0, false
	}
	return v.Value(), true
}

func (cp ConstantPool) GetMethodHandle(index uint16) *MethodHandleInfo {
	v, err := Get(cp, CPIndex[*MethodHandleInfo](index))
	if err != nil {
		return nil
	}
	return v
}

func (cp ConstantPool) GetMethodType(index uint16) string {
	v, err := Get(cp, CPIndex[*MethodTypeInfo](index))
	if err != nil {
		return ""
	}
	return cp.GetUtf8(v.Descriptor.Raw())
}

func (cp ConstantPool) GetDynamic(index uint16) *DynamicInfo {
	v, err := Get(cp, CPIndex[*DynamicInfo](index))
	if err != nil {
		return nil
	}
	return v
}

func (cp ConstantPool) GetInvokeDynamic(index uint16) *InvokeDynamicInfo {
	v, err := Get(cp, CPIndex[*InvokeDynamicInfo](index))
	if err != nil {
		return nil
	}
	return v
}

// decodeConstantPool reads exactly count-1 logical entries starting at the
// cursor's current position, applying the "unusable second slot" rule for
// Long/Double entries (spec.md §4.B).
func decodeConstantPool(c *cursor, count uint16) (ConstantPool, error) {
	if count == 0 {
		return nil, nil
	}
	cp := make(ConstantPool, count-1)
	for i := uint16(1); i < count; i++ {
		entry, wide, err := decodeConstantPoolEntry(c)
		if err != nil {
			return nil, fmt.Errorf("constant pool entry %d: %w", i, err)
		}
		cp[i-1] = entry
		if wide {
			i++
			if i < count {
				cp[i-1] = nil
			}
		}
	}
	return cp, nil
}

// decodeConstantPoolEntry decodes one entry and reports whether it occupies
// two pool slots (Long, Double).
func decodeConstantPoolEntry(c *cursor) (entry ConstantPoolEntry, wide bool, err error) {
	tagByte, err := c.ReadU8()
	if err != nil {
		return nil, false, err
	}
	tag := ConstantTag(tagByte)

	switch tag {
	case ConstantUtf8:
		length, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		b, err := c.ReadBytes(int(length))
		if err != nil {
			return nil, false, err
		}
		return &Utf8Info{Bytes: b}, false, nil

	case ConstantInteger:
		v, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &IntegerInfo{Value: v}, false, nil

	case ConstantFloat:
		v, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &FloatInfo{Value: v}, false, nil

	case ConstantLong:
		high, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		low, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &LongInfo{High: high, Low: low}, true, nil

	case ConstantDouble:
		high, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		low, err := c.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &DoubleInfo{High: high, Low: low}, true, nil

	case ConstantClass:
		name, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &ClassInfo{Name: CPIndex[*Utf8Info](name)}, false, nil

	case ConstantString:
		v, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &StringInfo{Value: CPIndex[*Utf8Info](v)}, false, nil

	case ConstantFieldref:
		ref, err := decodeRef(c)
		if err != nil {
			return nil, false, err
		}
		return &FieldrefInfo{RefInfo: ref}, false, nil

	case ConstantMethodref:
		ref, err := decodeRef(c)
		if err != nil {
			return nil, false, err
		}
		return &MethodrefInfo{RefInfo: ref}, false, nil

	case ConstantInterfaceMethodref:
		ref, err := decodeRef(c)
		if err != nil {
			return nil, false, err
		}
		return &InterfaceMethodrefInfo{RefInfo: ref}, false, nil

	case ConstantNameAndType:
		name, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		descriptor, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &NameAndTypeInfo{
			Name:       CPIndex[*Utf8Info](name),
			Descriptor: CPIndex[*Utf8Info](descriptor),
		}, false, nil

	case ConstantMethodHandle:
		kind, err := c.ReadU8()
		if err != nil {
			return nil, false, err
		}
		refIndex, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &MethodHandleInfo{
			ReferenceKind:  MethodHandleKind(kind),
			ReferenceIndex: refIndex,
		}, false, nil

	case ConstantMethodType:
		descriptor, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &MethodTypeInfo{Descriptor: CPIndex[*Utf8Info](descriptor)}, false, nil

	case ConstantDynamic:
		ref, err := decodeDynamicRef(c)
		if err != nil {
			return nil, false, err
		}
		return &DynamicInfo{DynamicRef: ref}, false, nil

	case ConstantInvokeDynamic:
		ref, err := decodeDynamicRef(c)
		if err != nil {
			return nil, false, err
		}
		return &InvokeDynamicInfo{DynamicRef: ref}, false, nil

	case ConstantModule:
		name, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &ModuleInfo{Name: CPIndex[*Utf8Info](name)}, false, nil

	case ConstantPackage:
		name, err := c.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &PackageInfo{Name: CPIndex[*Utf8Info](name)}, false, nil

	default:
		return nil, false, fmt.Errorf("unknown constant pool tag %d", tagByte)
	}
}

func decodeRef(c *cursor) (RefInfo, error) {
	class, err := c.ReadU16()
	if err != nil {
		return RefInfo{}, err
	}
	nameAndType, err := c.ReadU16()
	if err != nil {
		return RefInfo{}, err
	}
	return RefInfo{
		Class:       CPIndex[*ClassInfo](class),
		NameAndType: CPIndex[*NameAndTypeInfo](nameAndType),
	}, nil
}

func decodeDynamicRef(c *cursor) (DynamicRef, error) {
	bootstrapIndex, err := c.ReadU16()
	if err != nil {
		return DynamicRef{}, err
	}
	nameAndType, err := c.ReadU16()
	if err != nil {
		return DynamicRef{}, err
	}
	return DynamicRef{
		BootstrapMethodAttrIndex: bootstrapIndex,
		NameAndType:              CPIndex[*NameAndTypeInfo](nameAndType),
	}, nil
}
