package classfile

import "testing"

func TestFieldParsedDescriptor(t *testing.T) {
	cp := ConstantPool{
		&Utf8Info{Bytes: []byte("values")},
		&Utf8Info{Bytes: []byte("[Ljava/lang/String;")},
	}
	f := FieldInfo{AccessFlags: AccPublic | AccStatic | AccFinal, NameIndex: 1, Descriptor: 2}

	if f.Name(cp) != "values" {
		t.Fatalf("Name() = %q", f.Name(cp))
	}
	ft := f.ParsedDescriptor(cp)
	if ft == nil || ft.ArrayDepth != 1 || ft.ClassName != "java/lang/String" {
		t.Fatalf("ParsedDescriptor() = %+v", ft)
	}
	if !f.IsPublic() || !f.IsStatic() || !f.IsFinal() {
		t.Fatalf("flag predicates mismatch for %04x", f.AccessFlags)
	}
	if f.IsVolatile() || f.IsTransient() {
		t.Fatal("unexpected flag set")
	}
}

func TestFieldGetAttribute(t *testing.T) {
	cp := ConstantPool{
		&Utf8Info{Bytes: []byte("x")},
		&Utf8Info{Bytes: []byte("I")},
		&Utf8Info{Bytes: []byte("ConstantValue")},
	}
	f := FieldInfo{
		NameIndex:  1,
		Descriptor: 2,
		Attributes: []AttributeInfo{{NameIndex: 3, Parsed: &ConstantValueAttribute{ValueIndex: 7}}},
	}
	attr := f.GetAttribute(cp, "ConstantValue")
	if attr == nil {
		t.Fatal("GetAttribute = nil")
	}
	cv, ok := attr.Parsed.(*ConstantValueAttribute)
	if !ok || cv.ValueIndex != 7 {
		t.Fatalf("Parsed = %+v", attr.Parsed)
	}
}
