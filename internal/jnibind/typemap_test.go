package jnibind

import (
	"strings"
	"testing"
)

func TestLoadTypeMapFileLineOriented(t *testing.T) {
	input := `# comment
mypkg.MyString => "java.lang.String"
unsafe int32 => int
`
	tm, err := LoadTypeMapFile(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	e, ok := tm.Resolve("java.lang.String")
	if !ok || e.GoPackage != "mypkg" || e.GoType != "MyString" {
		t.Fatalf("Resolve(java.lang.String) = %+v, ok=%v", e, ok)
	}
	if !tm.IsUnsafe("int") {
		t.Fatal("expected int to be marked unsafe")
	}
}

func TestLoadTypeMapFileYAML(t *testing.T) {
	input := `mappings:
  - go: mypkg.MyString
    java: java.lang.String
`
	tm, err := LoadTypeMapFile(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	e, ok := tm.Resolve("java.lang.String")
	if !ok || e.GoType != "MyString" {
		t.Fatalf("Resolve(java.lang.String) = %+v, ok=%v", e, ok)
	}
}

func TestNewTypeMapHasBuiltins(t *testing.T) {
	tm := NewTypeMap()
	e, ok := tm.Resolve("int")
	if !ok || e.GoType != "int32" {
		t.Fatalf("Resolve(int) = %+v, ok=%v", e, ok)
	}
}

func TestLoadTypeMapFileRejectsMissingArrow(t *testing.T) {
	if _, err := LoadTypeMapFile(strings.NewReader("nope.Foo java.lang.String")); err == nil {
		t.Fatal("expected error for line missing '=>'")
	}
}

func TestWriteTypeMapFileRoundTrip(t *testing.T) {
	tm := NewTypeMap()
	tm.Set("java.lang.String", TypeMapEntry{GoPackage: "mypkg", GoType: "MyString"})
	var buf strings.Builder
	if err := WriteTypeMapFile(&buf, tm); err != nil {
		t.Fatal(err)
	}
	reparsed, err := LoadTypeMapFile(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	e, ok := reparsed.Resolve("java.lang.String")
	if !ok || e.GoType != "MyString" {
		t.Fatalf("round trip Resolve(java.lang.String) = %+v, ok=%v", e, ok)
	}
}
