package sig

import "testing"

func TestToLowerCamelCase(t *testing.T) {
	cases := map[string]string{
		"test_method":  "testMethod",
		"_leading":     "_leading",
		"trailing_":    "trailing_",
		"already_Java": "already_Java", // contains uppercase: left untouched
		"simple":       "simple",
		"a_b_c":        "aBC",
	}
	for in, want := range cases {
		if got := ToLowerCamelCase(in); got != want {
			t.Fatalf("ToLowerCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToLowerCamelCaseIdempotent(t *testing.T) {
	inputs := []string{"test_method", "foo_bar_baz", "already_Mixed", "_x"}
	for _, in := range inputs {
		once := ToLowerCamelCase(in)
		twice := ToLowerCamelCase(once)
		if once != twice {
			t.Fatalf("ToLowerCamelCase not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

// TestMangling exercises spec §8 scenario S6.
func TestManglingS6(t *testing.T) {
	got := CreateJNIFnName("com.example.Bar", "test_method", "ILjava/lang/String;")
	want := "Java_com_example_Bar_testMethod__ILjava_lang_String_2"
	if got != want {
		t.Fatalf("CreateJNIFnName() = %q, want %q", got, want)
	}
}

func TestManglingWithoutOverloadSuffix(t *testing.T) {
	got := CreateJNIFnName("com.example.Bar", "test_method", "")
	want := "Java_com_example_Bar_testMethod"
	if got != want {
		t.Fatalf("CreateJNIFnName() = %q, want %q", got, want)
	}
}

func TestMangleIdentifierEscapes(t *testing.T) {
	cases := map[string]string{
		"foo_bar":   "foo_1bar",
		"a;b":       "a_2b",
		"a[b":       "a_3b",
		"com.foo":   "com_foo",
		"Weird$Cls": "Weird_00024Cls",
	}
	for in, want := range cases {
		if got := MangleIdentifier(in); got != want {
			t.Fatalf("MangleIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMangleSignatureArgsEscapesSlash(t *testing.T) {
	got := MangleSignatureArgs("Ljava/lang/String;")
	want := "Ljava_lang_String_2"
	if got != want {
		t.Fatalf("MangleSignatureArgs() = %q, want %q", got, want)
	}
}

func TestManglingInnerClassDollarSign(t *testing.T) {
	name := CreateJNIFnName("com.example.Outer$Inner", "method_name", "")
	want := "Java_com_example_Outer_00024Inner_methodName"
	if name != want {
		t.Fatalf("CreateJNIFnName() = %q, want %q", name, want)
	}
}
