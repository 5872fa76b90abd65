package jnibind

import (
	"strings"
	"testing"
)

func TestEmitClassProducesValidGoSource(t *testing.T) {
	c := ClassInfo{
		Name: "com.example.Widget",
		Methods: []Method{
			{Name: "get_size", ParamTypes: nil, ReturnType: "I"},
		},
		Fields: []Field{
			{Name: "NAME", Type: "Ljava/lang/String;", Static: true},
		},
	}
	var buf strings.Builder
	err := EmitClass(&buf, c, EmitOptions{GoPackage: "widget", Types: NewTypeMap()})
	if err != nil {
		t.Fatalf("EmitClass: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "package widget") {
		t.Fatalf("missing package clause:\n%s", out)
	}
	if !strings.Contains(out, "WidgetAPI") {
		t.Fatalf("missing class struct:\n%s", out)
	}
	if !strings.Contains(out, "getSize") {
		t.Fatalf("missing camel-cased method name:\n%s", out)
	}
}

func TestEmitClassHonorsSkip(t *testing.T) {
	c := ClassInfo{
		Name: "com.example.Widget",
		Methods: []Method{
			{Name: "internal_only", ReturnType: "V"},
		},
	}
	skipSig := c.Methods[0].DEXSignature(c.InternalName())
	var buf strings.Builder
	err := EmitClass(&buf, c, EmitOptions{
		GoPackage: "widget",
		Types:     NewTypeMap(),
		Skip:      map[string]bool{skipSig: true},
	})
	if err != nil {
		t.Fatalf("EmitClass: %v", err)
	}
	if strings.Contains(buf.String(), "internalOnly") {
		t.Fatalf("skipped method was emitted:\n%s", buf.String())
	}
}

func TestEmitClassHonorsRename(t *testing.T) {
	c := ClassInfo{
		Name: "com.example.Widget",
		Methods: []Method{
			{Name: "get_size", ReturnType: "I"},
		},
	}
	renameSig := c.Methods[0].DEXSignature(c.InternalName())
	var buf strings.Builder
	err := EmitClass(&buf, c, EmitOptions{
		GoPackage: "widget",
		Types:     NewTypeMap(),
		Rename:    map[string]string{renameSig: "Dimension"},
	})
	if err != nil {
		t.Fatalf("EmitClass: %v", err)
	}
	if !strings.Contains(buf.String(), "Dimension") {
		t.Fatalf("renamed method not emitted:\n%s", buf.String())
	}
}

func TestGoClassNameHandlesInnerClass(t *testing.T) {
	if got, want := goClassName("com.example.Outer$Inner"), "Outer_Inner"; got != want {
		t.Fatalf("goClassName() = %q, want %q", got, want)
	}
}

// TestEmitClassAccessorsDispatchThroughCallSurface is the generator's
// actual contract: every accessor family must dispatch through
// internal/call rather than panic, and jni_init must resolve real ids
// instead of discarding env.
func TestEmitClassAccessorsDispatchThroughCallSurface(t *testing.T) {
	c := ClassInfo{
		Name: "com.example.Widget",
		Constructors: []Method{
			{Name: "<init>", ParamTypes: []string{"I"}, ReturnType: "V"},
		},
		Methods: []Method{
			{Name: "get_size", ReturnType: "I"},
			{Name: "resize", ParamTypes: []string{"I", "Ljava/lang/String;"}, ReturnType: "V"},
		},
		StaticMethods: []Method{
			{Name: "default_widget", ReturnType: "Lcom/example/Widget;", Static: true},
		},
		Fields: []Field{
			{Name: "label", Type: "Ljava/lang/String;"},
		},
		StaticFields: []Field{
			{Name: "COUNT", Type: "I", Static: true},
		},
	}
	var buf strings.Builder
	if err := EmitClass(&buf, c, EmitOptions{GoPackage: "widget", Types: NewTypeMap()}); err != nil {
		t.Fatalf("EmitClass: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "panic(") {
		t.Fatalf("generated accessors must not panic:\n%s", out)
	}

	for _, want := range []string{
		"func NewWidget(",
		"call.NewObject(env,",
		"func (recv Widget[F]) getSize(",
		"call.CallMethod(env, recv.Ref.Raw(),",
		"func (recv Widget[F]) resize(",
		"func defaultWidget(",
		"call.CallStaticMethod(env,",
		"func (recv Widget[F]) label(",
		"call.GetField(env, recv.Ref.Raw(),",
		"func (recv Widget[F]) SetLabel(",
		"call.SetField(env, recv.Ref.Raw(),",
		"func COUNT(",
		"call.GetStaticField(env,",
		"func SetCOUNT(",
		"call.SetStaticField(env,",
		"func jni_init(env *jnienv.Env) error {",
		`refs.DefaultClassCache.ResolveClass(env, "com/example/Widget")`,
		"call.DefaultMemberCache.ResolveMethod(env, classRef,",
		"call.DefaultMemberCache.ResolveField(env, classRef,",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in generated source:\n%s", want, out)
		}
	}
}
