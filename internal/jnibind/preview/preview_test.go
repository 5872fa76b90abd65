package preview

import (
	"os"
	"strings"
	"testing"

	"github.com/galago-jni/jni/internal/jnibind"
)

func TestClassPreviewContainsClassName(t *testing.T) {
	os.Setenv("JNIBIND_NO_COLOR", "1")
	defer os.Unsetenv("JNIBIND_NO_COLOR")

	c := jnibind.ClassInfo{
		Name: "com.example.Widget",
		Methods: []jnibind.Method{
			{Name: "get_size", ReturnType: "I"},
		},
	}
	var buf strings.Builder
	err := Class(&buf, c, jnibind.EmitOptions{GoPackage: "widget", Types: jnibind.NewTypeMap()})
	if err != nil {
		t.Fatalf("Class: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "com.example.Widget") {
		t.Fatalf("preview missing class name:\n%s", out)
	}
	if !strings.Contains(out, "package widget") {
		t.Fatalf("preview missing generated source:\n%s", out)
	}
}

func TestClassInfoSummaryCountsMembers(t *testing.T) {
	os.Setenv("JNIBIND_NO_COLOR", "1")
	defer os.Unsetenv("JNIBIND_NO_COLOR")

	c := jnibind.ClassInfo{
		Name:    "com.example.Widget",
		Methods: []jnibind.Method{{Name: "a"}, {Name: "b"}},
		Fields:  []jnibind.Field{{Name: "X"}},
	}
	var buf strings.Builder
	ClassInfoSummary(&buf, c)
	out := buf.String()
	if !strings.Contains(out, "2 methods") || !strings.Contains(out, "1 fields") {
		t.Fatalf("summary missing expected counts: %q", out)
	}
}
