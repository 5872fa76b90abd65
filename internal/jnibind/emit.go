package jnibind

import (
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/galago-jni/jni/internal/sig"
)

// EmitOptions controls one module's code generation, mirroring the
// generator's common CLI flags (spec §6).
type EmitOptions struct {
	// GoPackage is the package name for the generated file.
	GoPackage string
	// NoNativeInterfaces carries the --no-native-interfaces flag.
	// EmitClass does not read it and emits nothing for a class's
	// NativeMethods whether or not it is set.
	NoNativeInterfaces bool
	// NoJNIInit suppresses the canonical jni_init entrypoint name;
	// accessors still warm their caches through a per-class thunk, just
	// not one named jni_init (so multiple generated files sharing a
	// package don't collide on that name).
	NoJNIInit bool
	// Skip lists DEX signatures to omit entirely.
	Skip map[string]bool
	// Rename maps a DEX signature to its emitted Go method name.
	Rename map[string]string
	Types  *TypeMap
}

// emitParam is one accessor parameter: the Go-facing type a caller
// supplies it as, and the expression that turns it into a call.Arg.
type emitParam struct {
	Name    string
	GoType  string
	ArgExpr string
}

// emitMethod is the per-method view the emit template renders: a
// constructor, instance method, or static method, already resolved
// into the call.Arg expressions and return-value expression its
// accessor body dispatches through (spec §4.8 step 5).
type emitMethod struct {
	GoName     string
	JavaName   string
	Descriptor string
	Static     bool
	IsCtor     bool
	Params     []emitParam
	ReturnVoid bool
	ReturnGo   string
	ReturnExpr string
}

// emitField is the per-field view the emit template renders: a get
// accessor and a Set<Name> accessor, instance or static.
type emitField struct {
	GoName     string
	JavaName   string
	TypeDesc   string
	Static     bool
	GoType     string
	GetExpr    string
	SetArgExpr string
	SetterName string
}

// emitData is the top-level template context for one class module.
type emitData struct {
	Package       string
	StructName    string
	InternalName  string
	ClassDotted   string
	Doc           string
	Deprecated    bool
	Constructors  []emitMethod
	Methods       []emitMethod
	StaticMethods []emitMethod
	Fields        []emitField
	StaticFields  []emitField
	InitFuncName  string
}

// EmitClass renders c as a typed Go wrapper module, per spec §4.8
// step 5: a class struct cached in a once-cell carrying the global
// class reference and resolved ids, a transparent wrapper type with
// constructor/method/field accessors that dispatch through
// internal/call, and a thunk that eagerly warms every cache in the
// subtree. The output is gofmt-formatted before being returned.
func EmitClass(w io.Writer, c ClassInfo, opts EmitOptions) error {
	internal := c.InternalName()
	structName := goClassName(c.Name)

	initFuncName := "jni_init"
	if opts.NoJNIInit {
		initFuncName = strings.ToLower(structName[:1]) + structName[1:] + "JNIInit"
	}

	data := emitData{
		Package:      opts.GoPackage,
		StructName:   structName,
		InternalName: internal,
		ClassDotted:  c.Name,
		Doc:          c.Documentation,
		Deprecated:   c.Deprecated,
		InitFuncName: initFuncName,
	}

	for i, m := range c.Constructors {
		if em, ok := toEmitMethod(m, internal, structName, opts, true, i); ok {
			data.Constructors = append(data.Constructors, em)
		}
	}
	for _, m := range c.Methods {
		if em, ok := toEmitMethod(m, internal, structName, opts, false, 0); ok {
			data.Methods = append(data.Methods, em)
		}
	}
	for _, m := range c.StaticMethods {
		if em, ok := toEmitMethod(m, internal, structName, opts, false, 0); ok {
			data.StaticMethods = append(data.StaticMethods, em)
		}
	}
	for _, f := range c.Fields {
		if ef, ok := toEmitField(f, internal, opts); ok {
			data.Fields = append(data.Fields, ef)
		}
	}
	for _, f := range c.StaticFields {
		if ef, ok := toEmitField(f, internal, opts); ok {
			data.StaticFields = append(data.StaticFields, ef)
		}
	}

	var buf strings.Builder
	if err := classTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("jnibind: rendering %s: %w", c.Name, err)
	}

	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		return fmt.Errorf("jnibind: generated source for %s does not gofmt: %w", c.Name, err)
	}
	_, err = w.Write(formatted)
	return err
}

// toEmitMethod resolves one constructor, instance method, or static
// method into its template view, applying --skip/--name first so a
// skipped member never reaches argument classification.
func toEmitMethod(m Method, internal, structName string, opts EmitOptions, isCtor bool, idx int) (emitMethod, bool) {
	dexSig := m.DEXSignature(internal)
	if opts.Skip[dexSig] {
		return emitMethod{}, false
	}

	javaName := m.Name
	var goName string
	switch {
	case isCtor && idx == 0:
		javaName = "<init>"
		goName = "New" + structName
	case isCtor:
		javaName = "<init>"
		goName = fmt.Sprintf("New%s%d", structName, idx+1)
	default:
		goName = sig.ToLowerCamelCase(m.Name)
	}
	if renamed, ok := opts.Rename[dexSig]; ok {
		goName = renamed
	}

	params := make([]emitParam, len(m.ParamTypes))
	for i, p := range m.ParamTypes {
		name := fmt.Sprintf("p%d", i)
		cls := classifyDescriptor(p)
		params[i] = emitParam{Name: name, GoType: cls.paramType(), ArgExpr: cls.argExpr(name)}
	}

	em := emitMethod{
		GoName:     goName,
		JavaName:   javaName,
		Descriptor: m.Descriptor(),
		Static:     m.Static,
		IsCtor:     isCtor,
		Params:     params,
	}
	if isCtor || m.ReturnType == "V" || m.ReturnType == "" {
		em.ReturnVoid = !isCtor
		return em, true
	}
	rc := classifyDescriptor(m.ReturnType)
	em.ReturnGo = rc.returnType()
	em.ReturnExpr = rc.returnExpr("v")
	return em, true
}

// toEmitField resolves one instance or static field into its getter
// and Set<Name> accessor view.
func toEmitField(f Field, internal string, opts EmitOptions) (emitField, bool) {
	dexSig := f.DEXSignature(internal)
	if opts.Skip[dexSig] {
		return emitField{}, false
	}
	name := sig.ToLowerCamelCase(f.Name)
	if renamed, ok := opts.Rename[dexSig]; ok {
		name = renamed
	}
	cls := classifyDescriptor(f.Type)
	return emitField{
		GoName:     name,
		JavaName:   f.Name,
		TypeDesc:   f.Type,
		Static:     f.Static,
		GoType:     cls.returnType(),
		GetExpr:    cls.returnExpr("v"),
		SetArgExpr: cls.argExpr("newValue"),
		SetterName: "Set" + titleFirst(name),
	}, true
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// primitiveInfo is the per-kind table driving call.Arg construction
// and capi.Value field extraction for one JNI primitive type.
type primitiveInfo struct {
	goType, ctor, field string
}

var primitiveDescriptors = map[byte]primitiveInfo{
	'Z': {"bool", "call.Bool", "Bool"},
	'B': {"int8", "call.Byte", "Byte"},
	'C': {"uint16", "call.Char", "Char"},
	'S': {"int16", "call.Short", "Short"},
	'I': {"int32", "call.Int", "Int"},
	'J': {"int64", "call.Long", "Long"},
	'F': {"float32", "call.Float", "Float"},
	'D': {"float64", "call.Double", "Double"},
}

// typeClass is the resolved shape of one parameter/return/field
// descriptor: either one of the eight JNI primitives, or a reference
// (object or array — both are jobject at the JNI level, so both widen
// to the universal refs.JObject capability here rather than needing a
// per-element-type accessor).
type typeClass struct {
	isObject bool
	prim     primitiveInfo
}

func classifyDescriptor(desc string) typeClass {
	rest := strings.TrimLeft(desc, "[")
	if len(rest) == 1 {
		if p, ok := primitiveDescriptors[rest[0]]; ok {
			return typeClass{prim: p}
		}
	}
	return typeClass{isObject: true}
}

func (c typeClass) paramType() string {
	if c.isObject {
		return "refs.JObject"
	}
	return c.prim.goType
}

func (c typeClass) returnType() string {
	if c.isObject {
		return "refs.Local[refs.JObject]"
	}
	return c.prim.goType
}

func (c typeClass) argExpr(name string) string {
	if c.isObject {
		return fmt.Sprintf("call.Obj(%s.Raw())", name)
	}
	return fmt.Sprintf("%s(%s)", c.prim.ctor, name)
}

func (c typeClass) returnExpr(valueVar string) string {
	if c.isObject {
		return fmt.Sprintf("refs.NewLocal[refs.JObject](env, %s.Object)", valueVar)
	}
	return fmt.Sprintf("%s.%s", valueVar, c.prim.field)
}

func goClassName(dotted string) string {
	parts := strings.Split(dotted, ".")
	last := parts[len(parts)-1]
	last = strings.ReplaceAll(last, "$", "_")
	if last == "" {
		return "Class"
	}
	return strings.ToUpper(last[:1]) + last[1:]
}

// joinArgs renders a []call.Arg literal's element list from params.
func joinArgs(params []emitParam) string {
	exprs := make([]string, len(params))
	for i, p := range params {
		exprs[i] = p.ArgExpr
	}
	return strings.Join(exprs, ", ")
}

var emitFuncs = template.FuncMap{
	"joinArgs": joinArgs,
}

var classTemplate = template.Must(template.New("jnibind-class").Funcs(emitFuncs).Parse(`// Code generated by jnibind. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"sync"

	"github.com/galago-jni/jni/internal/call"
	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/refs"
)

{{if .Doc}}// {{.Doc}}
{{end}}{{if .Deprecated}}//
// Deprecated: mirrors the deprecated Java type {{.ClassDotted}}.
{{end}}type {{.StructName}}API struct {
	class refs.Global[refs.JClass]
{{range .Constructors}}	mid{{.GoName}} call.MethodDesc
{{end}}{{range .Methods}}	mid{{.GoName}} call.MethodDesc
{{end}}{{range .StaticMethods}}	mid{{.GoName}} call.MethodDesc
{{end}}{{range .Fields}}	fid{{.GoName}} call.FieldDesc
{{end}}{{range .StaticFields}}	fid{{.GoName}} call.FieldDesc
{{end}}}

var (
	{{.StructName}}Once  sync.Once
	{{.StructName}}Cache *{{.StructName}}API
)

// {{.StructName}} is the transparent wrapper over a {{.ClassDotted}} instance.
type {{.StructName}}[F any] struct {
	Ref refs.Local[refs.JObject]
}

// ClassName satisfies refs.Reference.
func (w {{.StructName}}[F]) ClassName() string { return "{{.InternalName}}" }

// Raw satisfies refs.Reference, returning the wrapped object's reference.
func (w {{.StructName}}[F]) Raw() capi.Ref { return w.Ref.Raw() }

{{range .Constructors}}
// {{.GoName}} constructs a new {{$.ClassDotted}} via {{.JavaName}}{{.Descriptor}}.
func {{.GoName}}(env *jnienv.Env{{range .Params}}, {{.Name}} {{.GoType}}{{end}}) ({{$.StructName}}[any], error) {
	if err := {{$.InitFuncName}}(env); err != nil {
		return {{$.StructName}}[any]{}, err
	}
	ref, err := call.NewObject(env, {{$.StructName}}Cache.class.Raw(), {{$.StructName}}Cache.mid{{.GoName}}, []call.Arg{ {{joinArgs .Params}} })
	if err != nil {
		return {{$.StructName}}[any]{}, err
	}
	return {{$.StructName}}[any]{Ref: refs.NewLocal[refs.JObject](env, ref)}, nil
}
{{end}}
{{range .Methods}}
// {{.GoName}} calls {{.JavaName}}{{.Descriptor}}.
func (recv {{$.StructName}}[F]) {{.GoName}}(env *jnienv.Env{{range .Params}}, {{.Name}} {{.GoType}}{{end}}) ({{if not .ReturnVoid}}{{.ReturnGo}}, {{end}}error) {
	{{if .ReturnVoid}}if err := {{$.InitFuncName}}(env); err != nil {
		return err
	}
	_, err := call.CallMethod(env, recv.Ref.Raw(), {{$.StructName}}Cache.mid{{.GoName}}, []call.Arg{ {{joinArgs .Params}} })
	return err
	{{else}}if err := {{$.InitFuncName}}(env); err != nil {
		var zero {{.ReturnGo}}
		return zero, err
	}
	v, err := call.CallMethod(env, recv.Ref.Raw(), {{$.StructName}}Cache.mid{{.GoName}}, []call.Arg{ {{joinArgs .Params}} })
	if err != nil {
		var zero {{.ReturnGo}}
		return zero, err
	}
	return {{.ReturnExpr}}, nil
	{{end}}}
{{end}}
{{range .StaticMethods}}
// {{.GoName}} calls the static method {{.JavaName}}{{.Descriptor}}.
func {{.GoName}}(env *jnienv.Env{{range .Params}}, {{.Name}} {{.GoType}}{{end}}) ({{if not .ReturnVoid}}{{.ReturnGo}}, {{end}}error) {
	{{if .ReturnVoid}}if err := {{$.InitFuncName}}(env); err != nil {
		return err
	}
	_, err := call.CallStaticMethod(env, {{$.StructName}}Cache.class.Raw(), {{$.StructName}}Cache.mid{{.GoName}}, []call.Arg{ {{joinArgs .Params}} })
	return err
	{{else}}if err := {{$.InitFuncName}}(env); err != nil {
		var zero {{.ReturnGo}}
		return zero, err
	}
	v, err := call.CallStaticMethod(env, {{$.StructName}}Cache.class.Raw(), {{$.StructName}}Cache.mid{{.GoName}}, []call.Arg{ {{joinArgs .Params}} })
	if err != nil {
		var zero {{.ReturnGo}}
		return zero, err
	}
	return {{.ReturnExpr}}, nil
	{{end}}}
{{end}}
{{range .Fields}}
// {{.GoName}} reads the {{.JavaName}} field.
func (recv {{$.StructName}}[F]) {{.GoName}}(env *jnienv.Env) ({{.GoType}}, error) {
	if err := {{$.InitFuncName}}(env); err != nil {
		var zero {{.GoType}}
		return zero, err
	}
	v, err := call.GetField(env, recv.Ref.Raw(), {{$.StructName}}Cache.fid{{.GoName}})
	if err != nil {
		var zero {{.GoType}}
		return zero, err
	}
	return {{.GetExpr}}, nil
}

// {{.SetterName}} writes the {{.JavaName}} field.
func (recv {{$.StructName}}[F]) {{.SetterName}}(env *jnienv.Env, newValue {{.GoType}}) error {
	if err := {{$.InitFuncName}}(env); err != nil {
		return err
	}
	return call.SetField(env, recv.Ref.Raw(), {{$.StructName}}Cache.fid{{.GoName}}, {{.SetArgExpr}})
}
{{end}}
{{range .StaticFields}}
// {{.GoName}} reads the static {{.JavaName}} field.
func {{.GoName}}(env *jnienv.Env) ({{.GoType}}, error) {
	if err := {{$.InitFuncName}}(env); err != nil {
		var zero {{.GoType}}
		return zero, err
	}
	v, err := call.GetStaticField(env, {{$.StructName}}Cache.class.Raw(), {{$.StructName}}Cache.fid{{.GoName}})
	if err != nil {
		var zero {{.GoType}}
		return zero, err
	}
	return {{.GetExpr}}, nil
}

// {{.SetterName}} writes the static {{.JavaName}} field.
func {{.SetterName}}(env *jnienv.Env, newValue {{.GoType}}) error {
	if err := {{$.InitFuncName}}(env); err != nil {
		return err
	}
	return call.SetStaticField(env, {{$.StructName}}Cache.class.Raw(), {{$.StructName}}Cache.fid{{.GoName}}, {{.SetArgExpr}})
}
{{end}}
// {{.InitFuncName}} resolves and caches this class's global class
// reference and every method/field id declared on it (spec §4.8
// step 5: "a jni_init thunk that forces every cache in the subtree").
func {{.InitFuncName}}(env *jnienv.Env) error {
	var err error
	{{.StructName}}Once.Do(func() {
		var classRef capi.Ref
		classRef, err = refs.DefaultClassCache.ResolveClass(env, "{{.InternalName}}")
		if err != nil {
			return
		}
		api := &{{.StructName}}API{class: refs.NewGlobal[refs.JClass](classRef)}
{{range .Constructors}}		if api.mid{{.GoName}}, err = call.DefaultMemberCache.ResolveMethod(env, classRef, "{{$.InternalName}}", "{{.JavaName}}", "{{.Descriptor}}", false); err != nil {
			return
		}
{{end}}{{range .Methods}}		if api.mid{{.GoName}}, err = call.DefaultMemberCache.ResolveMethod(env, classRef, "{{$.InternalName}}", "{{.JavaName}}", "{{.Descriptor}}", false); err != nil {
			return
		}
{{end}}{{range .StaticMethods}}		if api.mid{{.GoName}}, err = call.DefaultMemberCache.ResolveMethod(env, classRef, "{{$.InternalName}}", "{{.JavaName}}", "{{.Descriptor}}", true); err != nil {
			return
		}
{{end}}{{range .Fields}}		if api.fid{{.GoName}}, err = call.DefaultMemberCache.ResolveField(env, classRef, "{{$.InternalName}}", "{{.JavaName}}", "{{.TypeDesc}}", false); err != nil {
			return
		}
{{end}}{{range .StaticFields}}		if api.fid{{.GoName}}, err = call.DefaultMemberCache.ResolveField(env, classRef, "{{$.InternalName}}", "{{.JavaName}}", "{{.TypeDesc}}", true); err != nil {
			return
		}
{{end}}		{{.StructName}}Cache = api
	})
	if {{.StructName}}Cache == nil {
		if err != nil {
			return err
		}
		return fmt.Errorf("{{.Package}}: {{.StructName}} bindings failed to initialize on an earlier attempt")
	}
	return nil
}
`))
