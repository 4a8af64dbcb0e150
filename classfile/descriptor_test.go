package classfile

import "testing"

func TestIsValidFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"I", true},
		{"[I", true},
		{"[[[I", true},
		{"Ljava/lang/String;", true},
		{"[Ljava/lang/String;", true},
		{"", false},
		{"L;", false},
		{"Ljava/lang/String", false},
		{"X", false},
		{"L/String;", false},
		{"Ljava/lang//String;", true},
		{"Ljava//String;", true},
		{"LString/;", false},
		{"[", false},
		{"II", false},
	}
	for _, tt := range tests {
		if got := IsValidFieldDescriptor(tt.desc); got != tt.want {
			t.Errorf("IsValidFieldDescriptor(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestIsValidMethodDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"()V", true},
		{"(I)V", true},
		{"(IJ)Z", true},
		{"(Ljava/lang/String;I)Ljava/lang/Object;", true},
		{"([I)V", true},
		{"(", false},
		{"()", false},
		{"()X", false},
		{"(V)V", false},
		{"()VV", false},
	}
	for _, tt := range tests {
		if got := IsValidMethodDescriptor(tt.desc); got != tt.want {
			t.Errorf("IsValidMethodDescriptor(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestParseFieldDescriptor(t *testing.T) {
	ft := ParseFieldDescriptor("[[Ljava/lang/String;")
	if ft == nil {
		t.Fatal("got nil")
	}
	if ft.ArrayDepth != 2 || ft.ClassName != "java/lang/String" {
		t.Fatalf("got %+v", ft)
	}
	if !ft.IsArray() || !ft.IsReference() || ft.IsPrimitive() {
		t.Fatalf("predicate mismatch: %+v", ft)
	}
	if got, want := ft.String(), "[][]java.lang.String"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	prim := ParseFieldDescriptor("I")
	if prim == nil || !prim.IsPrimitive() || prim.BaseType != "int" {
		t.Fatalf("got %+v", prim)
	}

	if ParseFieldDescriptor("garbage") != nil {
		t.Fatal("expected nil for invalid descriptor")
	}
}

func TestParseMethodDescriptor(t *testing.T) {
	md := ParseMethodDescriptor("(ILjava/lang/String;)Z")
	if md == nil {
		t.Fatal("got nil")
	}
	if len(md.Parameters) != 2 {
		t.Fatalf("got %d parameters, want 2", len(md.Parameters))
	}
	if md.Parameters[0].BaseType != "int" {
		t.Fatalf("param 0 = %+v", md.Parameters[0])
	}
	if md.Parameters[1].ClassName != "java/lang/String" {
		t.Fatalf("param 1 = %+v", md.Parameters[1])
	}
	if md.ReturnType == nil || md.ReturnType.BaseType != "boolean" {
		t.Fatalf("return type = %+v", md.ReturnType)
	}

	void := ParseMethodDescriptor("()V")
	if void == nil || void.ReturnType != nil {
		t.Fatalf("void descriptor got %+v", void)
	}

	if ParseMethodDescriptor("not a descriptor") != nil {
		t.Fatal("expected nil for invalid descriptor")
	}
}

func TestInternalSourceNameConversion(t *testing.T) {
	if got := InternalToSourceName("java/lang/Object"); got != "java.lang.Object" {
		t.Fatalf("got %q", got)
	}
	if got := SourceToInternalName("java.lang.Object"); got != "java/lang/Object" {
		t.Fatalf("got %q", got)
	}
}
