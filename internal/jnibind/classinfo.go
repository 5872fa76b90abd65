// Package jnibind is the offline Bindings Generator: it turns parsed
// Java class metadata (from a .class file, a .jar, Java sources, or an
// Android SDK intersection) into typed Go wrapper packages, per
// spec §4.8. Bytecode and source parsing themselves are external,
// opaque collaborators (spec §1 non-goals); this package starts from
// their structured output.
package jnibind

// Method describes one resolved Java method, static or instance.
type Method struct {
	Name          string
	ParamTypes    []string // internal Java types, e.g. "I", "Ljava/lang/String;"
	ReturnType    string
	Static        bool
	Documentation string
	Deprecated    bool
	Native        bool
}

// Descriptor renders this method's JNI method descriptor.
func (m Method) Descriptor() string {
	d := "("
	for _, p := range m.ParamTypes {
		d += p
	}
	d += ")" + m.ReturnType
	return d
}

// DEXSignature renders this method's DEX member signature
// ("Lclass/Name;->method(params)return"), used by the hidden-API filter
// (spec §4.8 step 3 and §6).
func (m Method) DEXSignature(classInternalName string) string {
	return "L" + classInternalName + ";->" + m.Name + m.Descriptor()
}

// Field describes one resolved Java field, static or instance.
type Field struct {
	Name          string
	Type          string // internal Java type descriptor
	Static        bool
	Documentation string
	Deprecated    bool
}

// DEXSignature renders this field's DEX member signature
// ("Lclass/Name;->field:type").
func (f Field) DEXSignature(classInternalName string) string {
	return "L" + classInternalName + ";->" + f.Name + ":" + f.Type
}

// ClassInfo is the uniform structure every input mode (classfile, jar,
// java source, android) parses into, per spec §4.8 step 1.
type ClassInfo struct {
	Name          string // fully qualified, dotted ("java.lang.String")
	Package       string // dotted package ("java.lang")
	Documentation string
	Deprecated    bool

	Superclass string // dotted, empty for java.lang.Object or interfaces
	Interfaces []string

	Constructors  []Method
	Methods       []Method // instance, non-native
	StaticMethods []Method
	Fields        []Field
	StaticFields  []Field
	NativeMethods []Method
}

// InternalName renders the class's JVM internal (slash-separated) name.
func (c ClassInfo) InternalName() string {
	return dottedToInternal(c.Name)
}

func dottedToInternal(dotted string) string {
	out := make([]byte, 0, len(dotted))
	for i := 0; i < len(dotted); i++ {
		if dotted[i] == '.' {
			out = append(out, '/')
		} else {
			out = append(out, dotted[i])
		}
	}
	return string(out)
}

// AllMethods returns every method (constructors, instance, static,
// native) for callers that need a flat view, e.g. the hidden-API filter
// or a --skip/--name flag matcher.
func (c ClassInfo) AllMethods() []Method {
	total := len(c.Constructors) + len(c.Methods) + len(c.StaticMethods) + len(c.NativeMethods)
	out := make([]Method, 0, total)
	out = append(out, c.Constructors...)
	out = append(out, c.Methods...)
	out = append(out, c.StaticMethods...)
	out = append(out, c.NativeMethods...)
	return out
}

// AllFields returns instance and static fields together.
func (c ClassInfo) AllFields() []Field {
	out := make([]Field, 0, len(c.Fields)+len(c.StaticFields))
	out = append(out, c.Fields...)
	out = append(out, c.StaticFields...)
	return out
}

// ClassParser is the opaque collaborator that turns one input (a
// .class file's bytes, a .jar entry, a parsed Java source) into a
// ClassInfo. The generator never implements bytecode or source parsing
// itself (spec §1 non-goals); callers supply one of these, typically
// backed by an external tool invoked as a subprocess or a CGO-free
// bytecode reader the caller owns.
type ClassParser interface {
	ParseClass(data []byte) (ClassInfo, error)
}

// ClassParserFunc adapts a plain function to ClassParser.
type ClassParserFunc func(data []byte) (ClassInfo, error)

func (f ClassParserFunc) ParseClass(data []byte) (ClassInfo, error) { return f(data) }
