package bytecode

import (
	"errors"
	"testing"
)

func TestInstructionLengthFixedForm(t *testing.T) {
	code := []byte{0x00} // nop
	n, err := InstructionLength(code, 0)
	if err != nil || n != 1 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestInstructionLengthTableSwitch(t *testing.T) {
	// tableswitch at offset 1: default=0, low=0, high=3 -> 1+2+12+16 = 31 bytes
	code := make([]byte, 32)
	code[0] = 0x00 // nop, pushes tableswitch to offset 1
	code[1] = 0xAA // tableswitch
	// code[2..3] are the 2 padding bytes (values irrelevant)
	// default at code[4:8] = 0, low at code[8:12] = 0, high at code[12:16] = 3
	code[15] = 0x03
	// 4 jump offsets at code[16:32], values irrelevant to length

	n, err := InstructionLength(code, 1)
	if err != nil {
		t.Fatalf("InstructionLength: %v", err)
	}
	if n != 31 {
		t.Fatalf("tableswitch length = %d, want 31", n)
	}
}

func TestInstructionLengthLookupSwitch(t *testing.T) {
	// lookupswitch at offset 0: padding to align at 4, default (4) + npairs (4) + npairs*8
	code := make([]byte, 16)
	code[0] = 0xAB // lookupswitch
	// p = offset+1 = 1, pad = (4-1%4)%4 = 3, p becomes 4
	// npairs at code[4+4:4+8] = code[8:12] = 1
	code[11] = 0x01
	n, err := InstructionLength(code, 0)
	if err != nil {
		t.Fatalf("InstructionLength: %v", err)
	}
	// 1 (opcode) + 3 (pad) + 8 (default+npairs) + 8*1 (one pair) = 20
	if n != 20 {
		t.Fatalf("lookupswitch length = %d, want 20", n)
	}
}

func TestInstructionLengthWideIinc(t *testing.T) {
	code := []byte{0xC4, 0x84, 0x00, 0x01, 0x00, 0x02}
	n, err := InstructionLength(code, 0)
	if err != nil || n != 6 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestInstructionLengthWideNonIinc(t *testing.T) {
	code := []byte{0xC4, 0x15, 0x00, 0x01} // wide iload
	n, err := InstructionLength(code, 0)
	if err != nil || n != 4 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestInstructionLengthReservedOpcodePanics(t *testing.T) {
	code := []byte{0xCA}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrReservedOpcode) {
			t.Fatalf("panic = %v, want ErrReservedOpcode", r)
		}
	}()
	InstructionLength(code, 0)
}

func TestInstructionLengthUnknownOpcode(t *testing.T) {
	code := []byte{0xCB}
	_, err := InstructionLength(code, 0)
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("err = %v, want ErrUnknownOpcode", err)
	}
}
