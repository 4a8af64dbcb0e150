// Package bytecode enumerates the JVM opcode set and resolves the byte
// length of each instruction, including the three variable-length forms
// (tableswitch, lookupswitch, wide). It does not execute or verify
// bytecode; it exists only to let a caller walk a Code attribute's raw
// instruction stream one instruction at a time.
package bytecode

import "errors"

var (
	ErrUnknownOpcode  = errors.New("bytecode: unknown opcode")
	ErrReservedOpcode = errors.New("bytecode: reserved opcode")
)

// Format selects how an opcode's operand length is determined.
type Format uint8

const (
	FormatFixed Format = iota
	FormatTableSwitch
	FormatLookupSwitch
	FormatWide
)

// OpInfo describes one opcode: its mnemonic, the fixed total instruction
// length (opcode byte included) when Format is FormatFixed, and whether the
// opcode is one of the three reserved, not-valid-in-a-conforming-class-file
// codes (breakpoint, impdep1, impdep2).
type OpInfo struct {
	Name     string
	Length   int8
	Format   Format
	Reserved bool
}

const opIinc = 0x84

var opcodeTable = map[byte]OpInfo{
	0x00: {Name: "nop", Length: 1},
	0x01: {Name: "aconst_null", Length: 1},
	0x02: {Name: "iconst_m1", Length: 1},
	0x03: {Name: "iconst_0", Length: 1},
	0x04: {Name: "iconst_1", Length: 1},
	0x05: {Name: "iconst_2", Length: 1},
	0x06: {Name: "iconst_3", Length: 1},
	0x07: {Name: "iconst_4", Length: 1},
	0x08: {Name: "iconst_5", Length: 1},
	0x09: {Name: "lconst_0", Length: 1},
	0x0A: {Name: "lconst_1", Length: 1},
	0x0B: {Name: "fconst_0", Length: 1},
	0x0C: {Name: "fconst_1", Length: 1},
	0x0D: {Name: "fconst_2", Length: 1},
	0x0E: {Name: "dconst_0", Length: 1},
	0x0F: {Name: "dconst_1", Length: 1},
	0x10: {Name: "bipush", Length: 2},
	0x11: {Name: "sipush", Length: 3},
	0x12: {Name: "ldc", Length: 2},
	0x13: {Name: "ldc_w", Length: 3},
	0x14: {Name: "ldc2_w", Length: 3},
	0x15: {Name: "iload", Length: 2},
	0x16: {Name: "lload", Length: 2},
	0x17: {Name: "fload", Length: 2},
	0x18: {Name: "dload", Length: 2},
	0x19: {Name: "aload", Length: 2},
	0x1A: {Name: "iload_0", Length: 1},
	0x1B: {Name: "iload_1", Length: 1},
	0x1C: {Name: "iload_2", Length: 1},
	0x1D: {Name: "iload_3", Length: 1},
	0x1E: {Name: "lload_0", Length: 1},
	0x1F: {Name: "lload_1", Length: 1},
	0x20: {Name: "lload_2", Length: 1},
	0x21: {Name: "lload_3", Length: 1},
	0x22: {Name: "fload_0", Length: 1},
	0x23: {Name: "fload_1", Length: 1},
	0x24: {Name: "fload_2", Length: 1},
	0x25: {Name: "fload_3", Length: 1},
	0x26: {Name: "dload_0", Length: 1},
	0x27: {Name: "dload_1", Length: 1},
	0x28: {Name: "dload_2", Length: 1},
	0x29: {Name: "dload_3", Length: 1},
	0x2A: {Name: "aload_0", Length: 1},
	0x2B: {Name: "aload_1", Length: 1},
	0x2C: {Name: "aload_2", Length: 1},
	0x2D: {Name: "aload_3", Length: 1},
	0x2E: {Name: "iaload", Length: 1},
	0x2F: {Name: "laload", Length: 1},
	0x30: {Name: "faload", Length: 1},
	0x31: {Name: "daload", Length: 1},
	0x32: {Name: "aaload", Length: 1},
	0x33: {Name: "baload", Length: 1},
	0x34: {Name: "caload", Length: 1},
	0x35: {Name: "saload", Length: 1},
	0x36: {Name: "istore", Length: 2},
	0x37: {Name: "lstore", Length: 2},
	0x38: {Name: "fstore", Length: 2},
	0x39: {Name: "dstore", Length: 2},
	0x3A: {Name: "astore", Length: 2},
	0x3B: {Name: "istore_0", Length: 1},
	0x3C: {Name: "istore_1", Length: 1},
	0x3D: {Name: "istore_2", Length: 1},
	0x3E: {Name: "istore_3", Length: 1},
	0x3F: {Name: "lstore_0", Length: 1},
	0x40: {Name: "lstore_1", Length: 1},
	0x41: {Name: "lstore_2", Length: 1},
	0x42: {Name: "lstore_3", Length: 1},
	0x43: {Name: "fstore_0", Length: 1},
	0x44: {Name: "fstore_1", Length: 1},
	0x45: {Name: "fstore_2", Length: 1},
	0x46: {Name: "fstore_3", Length: 1},
	0x47: {Name: "dstore_0", Length: 1},
	0x48: {Name: "dstore_1", Length: 1},
	0x49: {Name: "dstore_2", Length: 1},
	0x4A: {Name: "dstore_3", Length: 1},
	0x4B: {Name: "astore_0", Length: 1},
	0x4C: {Name: "astore_1", Length: 1},
	0x4D: {Name: "astore_2", Length: 1},
	0x4E: {Name: "astore_3", Length: 1},
	0x4F: {Name: "iastore", Length: 1},
	0x50: {Name: "lastore", Length: 1},
	0x51: {Name: "fastore", Length: 1},
	0x52: {Name: "dastore", Length: 1},
	0x53: {Name: "aastore", Length: 1},
	0x54: {Name: "bastore", Length: 1},
	0x55: {Name: "castore", Length: 1},
	0x56: {Name: "sastore", Length: 1},
	0x57: {Name: "pop", Length: 1},
	0x58: {Name: "pop2", Length: 1},
	0x59: {Name: "dup", Length: 1},
	0x5A: {Name: "dup_x1", Length: 1},
	0x5B: {Name: "dup_x2", Length: 1},
	0x5C: {Name: "dup2", Length: 1},
	0x5D: {Name: "dup2_x1", Length: 1},
	0x5E: {Name: "dup2_x2", Length: 1},
	0x5F: {Name: "swap", Length: 1},
	0x60: {Name: "iadd", Length: 1},
	0x61: {Name: "ladd", Length: 1},
	0x62: {Name: "fadd", Length: 1},
	0x63: {Name: "dadd", Length: 1},
	0x64: {Name: "isub", Length: 1},
	0x65: {Name: "lsub", Length: 1},
	0x66: {Name: "fsub", Length: 1},
	0x67: {Name: "dsub", Length: 1},
	0x68: {Name: "imul", Length: 1},
	0x69: {Name: "lmul", Length: 1},
	0x6A: {Name: "fmul", Length: 1},
	0x6B: {Name: "dmul", Length: 1},
	0x6C: {Name: "idiv", Length: 1},
	0x6D: {Name: "ldiv", Length: 1},
	0x6E: {Name: "fdiv", Length: 1},
	0x6F: {Name: "ddiv", Length: 1},
	0x70: {Name: "irem", Length: 1},
	0x71: {Name: "lrem", Length: 1},
	0x72: {Name: "frem", Length: 1},
	0x73: {Name: "drem", Length: 1},
	0x74: {Name: "ineg", Length: 1},
	0x75: {Name: "lneg", Length: 1},
	0x76: {Name: "fneg", Length: 1},
	0x77: {Name: "dneg", Length: 1},
	0x78: {Name: "ishl", Length: 1},
	0x79: {Name: "lshl", Length: 1},
	0x7A: {Name: "ishr", Length: 1},
	0x7B: {Name: "lshr", Length: 1},
	0x7C: {Name: "iushr", Length: 1},
	0x7D: {Name: "lushr", Length: 1},
	0x7E: {Name: "iand", Length: 1},
	0x7F: {Name: "land", Length: 1},
	0x80: {Name: "ior", Length: 1},
	0x81: {Name: "lor", Length: 1},
	0x82: {Name: "ixor", Length: 1},
	0x83: {Name: "lxor", Length: 1},
	0x84: {Name: "iinc", Length: 3},
	0x85: {Name: "i2l", Length: 1},
	0x86: {Name: "i2f", Length: 1},
	0x87: {Name: "i2d", Length: 1},
	0x88: {Name: "l2i", Length: 1},
	0x89: {Name: "l2f", Length: 1},
	0x8A: {Name: "l2d", Length: 1},
	0x8B: {Name: "f2i", Length: 1},
	0x8C: {Name: "f2l", Length: 1},
	0x8D: {Name: "f2d", Length: 1},
	0x8E: {Name: "d2i", Length: 1},
	0x8F: {Name: "d2l", Length: 1},
	0x90: {Name: "d2f", Length: 1},
	0x91: {Name: "i2b", Length: 1},
	0x92: {Name: "i2c", Length: 1},
	0x93: {Name: "i2s", Length: 1},
	0x94: {Name: "lcmp", Length: 1},
	0x95: {Name: "fcmpl", Length: 1},
	0x96: {Name: "fcmpg", Length: 1},
	0x97: {Name: "dcmpl", Length: 1},
	0x98: {Name: "dcmpg", Length: 1},
	0x99: {Name: "ifeq", Length: 3},
	0x9A: {Name: "ifne", Length: 3},
	0x9B: {Name: "iflt", Length: 3},
	0x9C: {Name: "ifge", Length: 3},
	0x9D: {Name: "ifgt", Length: 3},
	0x9E: {Name: "ifle", Length: 3},
	0x9F: {Name: "if_icmpeq", Length: 3},
	0xA0: {Name: "if_icmpne", Length: 3},
	0xA1: {Name: "if_icmplt", Length: 3},
	0xA2: {Name: "if_icmpge", Length: 3},
	0xA3: {Name: "if_icmpgt", Length: 3},
	0xA4: {Name: "if_icmple", Length: 3},
	0xA5: {Name: "if_acmpeq", Length: 3},
	0xA6: {Name: "if_acmpne", Length: 3},
	0xA7: {Name: "goto", Length: 3},
	0xA8: {Name: "jsr", Length: 3},
	0xA9: {Name: "ret", Length: 2},
	0xAA: {Name: "tableswitch", Format: FormatTableSwitch},
	0xAB: {Name: "lookupswitch", Format: FormatLookupSwitch},
	0xAC: {Name: "ireturn", Length: 1},
	0xAD: {Name: "lreturn", Length: 1},
	0xAE: {Name: "freturn", Length: 1},
	0xAF: {Name: "dreturn", Length: 1},
	0xB0: {Name: "areturn", Length: 1},
	0xB1: {Name: "return", Length: 1},
	0xB2: {Name: "getstatic", Length: 3},
	0xB3: {Name: "putstatic", Length: 3},
	0xB4: {Name: "getfield", Length: 3},
	0xB5: {Name: "putfield", Length: 3},
	0xB6: {Name: "invokevirtual", Length: 3},
	0xB7: {Name: "invokespecial", Length: 3},
	0xB8: {Name: "invokestatic", Length: 3},
	0xB9: {Name: "invokeinterface", Length: 5},
	0xBA: {Name: "invokedynamic", Length: 5},
	0xBB: {Name: "new", Length: 3},
	0xBC: {Name: "newarray", Length: 2},
	0xBD: {Name: "anewarray", Length: 3},
	0xBE: {Name: "arraylength", Length: 1},
	0xBF: {Name: "athrow", Length: 1},
	0xC0: {Name: "checkcast", Length: 3},
	0xC1: {Name: "instanceof", Length: 3},
	0xC2: {Name: "monitorenter", Length: 1},
	0xC3: {Name: "monitorexit", Length: 1},
	0xC4: {Name: "wide", Format: FormatWide},
	0xC5: {Name: "multianewarray", Length: 4},
	0xC6: {Name: "ifnull", Length: 3},
	0xC7: {Name: "ifnonnull", Length: 3},
	0xC8: {Name: "goto_w", Length: 5},
	0xC9: {Name: "jsr_w", Length: 5},
	0xCA: {Name: "breakpoint", Length: 1, Reserved: true},
	0xFE: {Name: "impdep1", Length: 1, Reserved: true},
	0xFF: {Name: "impdep2", Length: 1, Reserved: true},
}

// Lookup returns the table entry for op, or !ok for a byte outside the
// sanctioned opcode set (0x00..0xC9, plus the reserved 0xCA/0xFE/0xFF).
func Lookup(op byte) (OpInfo, bool) {
	info, ok := opcodeTable[op]
	return info, ok
}
