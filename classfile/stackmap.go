package classfile

import "fmt"

// VerificationTypeTag selects among the 9 verification_type_info variants.
type VerificationTypeTag uint8

const (
	VerifTop               VerificationTypeTag = 0
	VerifInteger           VerificationTypeTag = 1
	VerifFloat             VerificationTypeTag = 2
	VerifDouble            VerificationTypeTag = 3
	VerifLong              VerificationTypeTag = 4
	VerifNull              VerificationTypeTag = 5
	VerifUninitializedThis VerificationTypeTag = 6
	VerifObject            VerificationTypeTag = 7
	VerifUninitialized     VerificationTypeTag = 8
)

// VerificationTypeInfo is one verification_type_info entry. ObjectClass is
// meaningful only when Tag is VerifObject; Offset only when Tag is
// VerifUninitialized.
type VerificationTypeInfo struct {
	Tag         VerificationTypeTag
	ObjectClass CPIndex[*ClassInfo]
	Offset      uint16
}

func parseVerificationTypeInfo(c *cursor) VerificationTypeInfo {
	tag := VerificationTypeTag(c.MustReadU8())
	switch tag {
	case VerifObject:
		return VerificationTypeInfo{Tag: tag, ObjectClass: CPIndex[*ClassInfo](c.MustReadU16())}
	case VerifUninitialized:
		return VerificationTypeInfo{Tag: tag, Offset: c.MustReadU16()}
	case VerifTop, VerifInteger, VerifFloat, VerifDouble, VerifLong, VerifNull, VerifUninitializedThis:
		return VerificationTypeInfo{Tag: tag}
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownVerificationTypeInfoTag, tag))
	}
}

// FrameKind identifies which of the 7 stack-map-frame families a
// StackMapFrame belongs to.
type FrameKind uint8

const (
	FrameSame FrameKind = iota
	FrameSameLocals1StackItem
	FrameSameLocals1StackItemExtended
	FrameChop
	FrameSameExtended
	FrameAppend
	FrameFull
)

// StackMapFrame is one entry of a StackMapTable attribute. OffsetDelta is
// always populated, including for FrameSame and FrameSameLocals1StackItem
// where the raw format implies it from FrameType rather than storing it
// explicitly. ChopCount is meaningful only for FrameChop.
type StackMapFrame struct {
	FrameType   uint8
	Kind        FrameKind
	OffsetDelta uint16
	ChopCount   int
	Locals      []VerificationTypeInfo
	Stack       []VerificationTypeInfo
}

func parseStackMapFrame(c *cursor) StackMapFrame {
	frameType := c.MustReadU8()
	switch {
	case frameType <= 63:
		return StackMapFrame{FrameType: frameType, Kind: FrameSame, OffsetDelta: uint16(frameType)}

	case frameType <= 127:
		vt := parseVerificationTypeInfo(c)
		return StackMapFrame{
			FrameType:   frameType,
			Kind:        FrameSameLocals1StackItem,
			OffsetDelta: uint16(frameType) - 64,
			Stack:       []VerificationTypeInfo{vt},
		}

	case frameType <= 246:
		panic(fmt.Errorf("%w: frame type %d", ErrReservedFrameType, frameType))

	case frameType == 247:
		offsetDelta := c.MustReadU16()
		vt := parseVerificationTypeInfo(c)
		return StackMapFrame{
			FrameType:   frameType,
			Kind:        FrameSameLocals1StackItemExtended,
			OffsetDelta: offsetDelta,
			Stack:       []VerificationTypeInfo{vt},
		}

	case frameType <= 250:
		offsetDelta := c.MustReadU16()
		return StackMapFrame{
			FrameType:   frameType,
			Kind:        FrameChop,
			OffsetDelta: offsetDelta,
			ChopCount:   251 - int(frameType),
		}

	case frameType == 251:
		offsetDelta := c.MustReadU16()
		return StackMapFrame{FrameType: frameType, Kind: FrameSameExtended, OffsetDelta: offsetDelta}

	case frameType <= 254:
		offsetDelta := c.MustReadU16()
		locals := make([]VerificationTypeInfo, int(frameType)-251)
		for i := range locals {
			locals[i] = parseVerificationTypeInfo(c)
		}
		return StackMapFrame{FrameType: frameType, Kind: FrameAppend, OffsetDelta: offsetDelta, Locals: locals}

	default: // 255, FullFrame
		offsetDelta := c.MustReadU16()
		localCount := c.MustReadU16()
		locals := make([]VerificationTypeInfo, localCount)
		for i := range locals {
			locals[i] = parseVerificationTypeInfo(c)
		}
		stackCount := c.MustReadU16()
		stack := make([]VerificationTypeInfo, stackCount)
		for i := range stack {
			stack[i] = parseVerificationTypeInfo(c)
		}
		return StackMapFrame{
			FrameType:   frameType,
			Kind:        FrameFull,
			OffsetDelta: offsetDelta,
			Locals:      locals,
			Stack:       stack,
		}
	}
}

type StackMapTableAttribute struct {
	Frames []StackMapFrame
}

func parseStackMapTable(c *cursor) *StackMapTableAttribute {
	count := c.MustReadU16()
	frames := make([]StackMapFrame, count)
	for i := range frames {
		frames[i] = parseStackMapFrame(c)
	}
	return &StackMapTableAttribute{Frames: frames}
}
