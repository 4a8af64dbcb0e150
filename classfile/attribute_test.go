package classfile

import "testing"

func TestDecodeAttributeUnknownName(t *testing.T) {
	cp := ConstantPool{&Utf8Info{Bytes: []byte("Mystery")}}
	buf := []byte{
		0x00, 0x01, // attribute_name_index -> "Mystery"
		0x00, 0x00, 0x00, 0x05, // attribute_length = 5
		0xDE, 0xAD, 0xBE, 0xEF, 0x01, // 5 body bytes
		0xFF, // trailing byte belonging to the caller, not this attribute
	}
	c := newCursor(buf)
	attr, err := decodeAttribute(c, cp)
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	unk, ok := attr.Parsed.(*UnknownAttribute)
	if !ok {
		t.Fatalf("Parsed = %T, want *UnknownAttribute", attr.Parsed)
	}
	if len(unk.Bytes) != 5 {
		t.Fatalf("len(Bytes) = %d, want 5", len(unk.Bytes))
	}
	if c.Pos() != 11 {
		t.Fatalf("cursor position = %d, want 11 (exactly through the declared footprint)", c.Pos())
	}
}

func TestDecodeAttributeKnownSimpleAttributes(t *testing.T) {
	cp := ConstantPool{
		&Utf8Info{Bytes: []byte("Synthetic")},
		&Utf8Info{Bytes: []byte("Deprecated")},
		&Utf8Info{Bytes: []byte("ConstantValue")},
	}
	buf := []byte{
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, // Synthetic, length 0
		0x00, 0x02, 0x00, 0x00, 0x00, 0x00, // Deprecated, length 0
		0x00, 0x03, 0x00, 0x00, 0x00, 0x02, 0x00, 0x09, // ConstantValue -> index 9
	}
	c := newCursor(buf)

	a1, err := decodeAttribute(c, cp)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a1.Parsed.(*SyntheticAttribute); !ok {
		t.Fatalf("a1.Parsed = %T", a1.Parsed)
	}

	a2, err := decodeAttribute(c, cp)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a2.Parsed.(*DeprecatedAttribute); !ok {
		t.Fatalf("a2.Parsed = %T", a2.Parsed)
	}

	a3, err := decodeAttribute(c, cp)
	if err != nil {
		t.Fatal(err)
	}
	cv, ok := a3.Parsed.(*ConstantValueAttribute)
	if !ok || cv.ValueIndex != 9 {
		t.Fatalf("a3.Parsed = %+v", a3.Parsed)
	}
}

func TestDecodeAttributeTruncatedBodyBecomesError(t *testing.T) {
	cp := ConstantPool{&Utf8Info{Bytes: []byte("ConstantValue")}}
	buf := []byte{
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x01, // declares 1 byte, but ConstantValue needs 2
		0x00,
	}
	c := newCursor(buf)
	_, err := decodeAttribute(c, cp)
	if err == nil {
		t.Fatal("expected error from a short ConstantValue body")
	}
}

func TestDecodeAttributesSequence(t *testing.T) {
	cp := ConstantPool{&Utf8Info{Bytes: []byte("Synthetic")}}
	buf := []byte{
		0x00, 0x01, // attributes_count
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, // Synthetic
	}
	c := newCursor(buf)
	attrs, err := decodeAttributes(c, cp)
	if err != nil {
		t.Fatal(err)
	}
	if len(attrs) != 1 {
		t.Fatalf("got %d attributes, want 1", len(attrs))
	}
	if attrs[0].Name(cp) != "Synthetic" {
		t.Fatalf("Name() = %q", attrs[0].Name(cp))
	}
}
