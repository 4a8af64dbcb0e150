package classfile

import "errors"

// Sentinel errors returned by the decoder. Callers distinguish kinds with
// errors.Is; Decode and its sub-decoders wrap these with fmt.Errorf("%w", ...)
// to attach positional context.
var (
	ErrUnexpectedEOF                  = errors.New("classfile: unexpected end of file")
	ErrInvalidHeader                  = errors.New("classfile: invalid magic number")
	ErrInvalidMajorVersion            = errors.New("classfile: invalid major version")
	ErrInvalidCPIndex                 = errors.New("classfile: invalid constant pool index")
	ErrWrongCPType                    = errors.New("classfile: wrong constant pool entry type")
	ErrInvalidAccessFlags             = errors.New("classfile: invalid access flags")
	ErrUnknownVerificationTypeInfoTag = errors.New("classfile: unknown verification_type_info tag")
	ErrReservedFrameType              = errors.New("classfile: reserved stack map frame type")
	ErrUnknownFrameType               = errors.New("classfile: unknown stack map frame type")
	ErrUnknownElementValueTag         = errors.New("classfile: unknown element_value tag")
	ErrInvalidTargetType              = errors.New("classfile: invalid type annotation target_type")
	ErrInvalidPathKind                = errors.New("classfile: invalid type_path path_kind")
	ErrUnknownOpcode                  = errors.New("classfile: unknown opcode")
	ErrMissingAttribute               = errors.New("classfile: required attribute missing")
)
