package sig

import "testing"

func TestParseTypeNamePrimitives(t *testing.T) {
	cases := map[string]string{
		"int": "I", "jint": "I", "I": "I",
		"boolean": "Z", "byte": "B", "char": "C",
		"short": "S", "long": "J", "float": "F", "double": "D",
		"void": "V",
	}
	for expr, want := range cases {
		ty, err := ParseTypeName(expr)
		if err != nil {
			t.Fatalf("ParseTypeName(%q): %v", expr, err)
		}
		if got := ty.Descriptor(); got != want {
			t.Fatalf("ParseTypeName(%q).Descriptor() = %q, want %q", expr, got, want)
		}
	}
}

func TestParseTypeNameDottedClass(t *testing.T) {
	ty, err := ParseTypeName("java.lang.String")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ty.Descriptor(), "Ljava/lang/String;"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestParseTypeNameDefaultPackage(t *testing.T) {
	ty, err := ParseTypeName(".Name")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ty.Descriptor(), "LName;"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestParseTypeNameInnerClass(t *testing.T) {
	ty, err := ParseTypeName("com.example.Outer::Inner")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ty.Descriptor(), "Lcom/example/Outer$Inner;"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestParseTypeNameArrayPrefixAndSuffix(t *testing.T) {
	prefix, err := ParseTypeName("[int]")
	if err != nil {
		t.Fatal(err)
	}
	suffix, err := ParseTypeName("int[]")
	if err != nil {
		t.Fatal(err)
	}
	if prefix.Descriptor() != "[I" || suffix.Descriptor() != "[I" {
		t.Fatalf("prefix=%q suffix=%q, want both [I", prefix.Descriptor(), suffix.Descriptor())
	}
}

func TestParseTypeNameMultiDimensionalArray(t *testing.T) {
	ty, err := ParseTypeName("java.lang.String[][]")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ty.Descriptor(), "[[Ljava/lang/String;"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestVoidForbiddenAsArrayElement(t *testing.T) {
	if _, err := ParseTypeName("void[]"); err == nil {
		t.Fatal("expected an error: void is forbidden as an array element type")
	}
}

func TestVoidForbiddenAsFieldType(t *testing.T) {
	if _, err := NewFieldSignature("void"); err == nil {
		t.Fatal("expected an error: void is forbidden as a field type")
	}
}

func TestVoidForbiddenAsParameterType(t *testing.T) {
	if _, err := NewMethodSignature([]string{"void"}, "int"); err == nil {
		t.Fatal("expected an error: void is forbidden as a parameter type")
	}
}

func TestMethodSignatureDescriptor(t *testing.T) {
	sig, err := NewMethodSignature([]string{"int", "java.lang.String"}, "void")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sig.Descriptor(), "(ILjava/lang/String;)V"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

// TestSignatureRoundTrip exercises spec §8 invariant 4: re-parsing an
// emitted descriptor string yields an equivalent structural signature.
func TestSignatureRoundTrip(t *testing.T) {
	cases := []struct {
		params []string
		ret    string
	}{
		{nil, "int"},
		{[]string{"int", "int"}, "void"},
		{[]string{"java.lang.String"}, "int"},
		{[]string{"int[]"}, "java.lang.String[]"},
		{[]string{"boolean", "[java.lang.Object]"}, "[[I"},
	}
	for _, c := range cases {
		original, err := NewMethodSignature(c.params, c.ret)
		if err != nil {
			t.Fatalf("NewMethodSignature(%v, %q): %v", c.params, c.ret, err)
		}
		reparsed, err := ParseMethodDescriptor(original.Descriptor())
		if err != nil {
			t.Fatalf("ParseMethodDescriptor(%q): %v", original.Descriptor(), err)
		}
		if !original.Equal(reparsed) {
			t.Fatalf("round trip mismatch: %+v != %+v (descriptor %q)", original, reparsed, original.Descriptor())
		}
	}
}

func TestParseMethodDescriptorRejectsMalformed(t *testing.T) {
	bad := []string{
		"II)V",     // missing opening paren
		"(II",      // missing closing paren
		"(II)",     // missing return type
		"(V)I",     // void parameter
		"(I)Vx",    // trailing garbage
	}
	for _, d := range bad {
		if _, err := ParseMethodDescriptor(d); err == nil {
			t.Fatalf("ParseMethodDescriptor(%q): expected error", d)
		}
	}
}

func TestClassDescriptor(t *testing.T) {
	if got, want := ClassDescriptor("java.lang.String"), "Ljava/lang/String;"; got != want {
		t.Fatalf("ClassDescriptor() = %q, want %q", got, want)
	}
}
