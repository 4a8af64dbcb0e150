package classfile

import (
	"errors"
	"testing"
)

func TestConstantPoolUnusableSecondSlot(t *testing.T) {
	cp := ConstantPool{
		&LongInfo{High: 0, Low: 1},
		nil,
		&Utf8Info{Bytes: []byte("after")},
	}

	if _, err := Get(cp, CPIndex[*LongInfo](2)); !errors.Is(err, ErrInvalidCPIndex) {
		t.Fatalf("index 2 (unusable slot) = %v, want ErrInvalidCPIndex", err)
	}
	if v, err := Get(cp, CPIndex[*Utf8Info](3)); err != nil || string(v.Bytes) != "after" {
		t.Fatalf("index 3 = %v, %v", v, err)
	}
}

func TestConstantPoolIndexBounds(t *testing.T) {
	cp := ConstantPool{&Utf8Info{Bytes: []byte("x")}}

	if _, err := Get(cp, CPIndex[*Utf8Info](0)); !errors.Is(err, ErrInvalidCPIndex) {
		t.Fatalf("index 0 = %v, want ErrInvalidCPIndex", err)
	}
	if _, err := Get(cp, CPIndex[*Utf8Info](2)); !errors.Is(err, ErrInvalidCPIndex) {
		t.Fatalf("index past end = %v, want ErrInvalidCPIndex", err)
	}
}

func TestConstantPoolWrongType(t *testing.T) {
	cp := ConstantPool{&IntegerInfo{Value: 1}}
	if _, err := Get(cp, CPIndex[*Utf8Info](1)); !errors.Is(err, ErrWrongCPType) {
		t.Fatalf("err = %v, want ErrWrongCPType", err)
	}
}

func TestMustGetPanics(t *testing.T) {
	cp := ConstantPool{&IntegerInfo{Value: 1}}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustGet(cp, CPIndex[*Utf8Info](1))
}

func TestDecodeConstantPoolEntries(t *testing.T) {
	buf := []byte{
		0x01, 0x00, 0x03, 'f', 'o', 'o', // #1 Utf8 "foo"
		0x07, 0x00, 0x01, // #2 Class -> #1
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, // #3/#4 Long 5
		0x08, 0x00, 0x01, // #5 String -> #1
	}
	c := newCursor(buf)
	cp, err := decodeConstantPool(c, 6)
	if err != nil {
		t.Fatalf("decodeConstantPool: %v", err)
	}
	if len(cp) != 5 {
		t.Fatalf("len(cp) = %d, want 5", len(cp))
	}
	if cp.GetUtf8(1) != "foo" {
		t.Fatalf("GetUtf8(1) = %q", cp.GetUtf8(1))
	}
	if cp.GetClassName(2) != "foo" {
		t.Fatalf("GetClassName(2) = %q", cp.GetClassName(2))
	}
	if v, ok := cp.GetLong(3); !ok || v != 5 {
		t.Fatalf("GetLong(3) = %v, %v", v, ok)
	}
	if cp[3] != nil {
		t.Fatalf("slot 4 (second half of long) should be nil, got %#v", cp[3])
	}
	if cp.GetString(5) != "foo" {
		t.Fatalf("GetString(5) = %q", cp.GetString(5))
	}
}

func TestConstantPoolRefAccessors(t *testing.T) {
	cp := ConstantPool{
		&Utf8Info{Bytes: []byte("Main")},           // 1
		&ClassInfo{Name: 1},                        // 2
		&Utf8Info{Bytes: []byte("main")},            // 3
		&Utf8Info{Bytes: []byte("([Ljava/lang/String;)V")}, // 4
		&NameAndTypeInfo{Name: 3, Descriptor: 4},    // 5
		&MethodrefInfo{RefInfo{Class: 2, NameAndType: 5}}, // 6
	}

	class, name, desc := cp.GetMethodref(6)
	if class != "Main" || name != "main" || desc != "([Ljava/lang/String;)V" {
		t.Fatalf("GetMethodref = %q %q %q", class, name, desc)
	}
}

func TestDoubleAndFloatValues(t *testing.T) {
	cp := ConstantPool{
		&FloatInfo{Value: 0x3F800000}, // 1.0f
		&DoubleInfo{High: 0x3FF00000, Low: 0x00000000}, // 1.0
	}
	if f, ok := cp.GetFloat(1); !ok || f != 1.0 {
		t.Fatalf("GetFloat = %v, %v", f, ok)
	}
	if d, ok := cp.GetDouble(2); !ok || d != 1.0 {
		t.Fatalf("GetDouble = %v, %v", d, ok)
	}
}
