package sig

import (
	"fmt"
	"strings"

	"github.com/galago-jni/jni/internal/capi"
)

// Type is a single parameter or return type: a primitive kind, an object
// type named by its class, or an array of some Type (with ArrayDims > 1
// for nested arrays).
type Type struct {
	Kind      capi.Kind // primitive kind, capi.KindObject for object/array element, or capi.KindVoid
	ClassName string    // internal name ("java/lang/String"), only set when Kind == KindObject
	ArrayDims int       // 0 for a non-array type
}

// Descriptor renders the JNI type descriptor for t ("I", "[I",
// "Ljava/lang/String;", "[[Ljava/lang/String;", ...).
func (t Type) Descriptor() string {
	prefix := strings.Repeat("[", t.ArrayDims)
	if t.Kind == capi.KindObject {
		return prefix + "L" + t.ClassName + ";"
	}
	return prefix + string(t.Kind)
}

// Primitive type aliases accepted by the signature DSL, matching spec
// §4.7's "primitive aliases" (both short JNI names and full native-style
// names resolve to the same Type).
var primitiveAliases = map[string]capi.Kind{
	"Z": capi.KindBoolean, "boolean": capi.KindBoolean, "jboolean": capi.KindBoolean,
	"B": capi.KindByte, "byte": capi.KindByte, "jbyte": capi.KindByte,
	"C": capi.KindChar, "char": capi.KindChar, "jchar": capi.KindChar,
	"S": capi.KindShort, "short": capi.KindShort, "jshort": capi.KindShort,
	"I": capi.KindInt, "int": capi.KindInt, "jint": capi.KindInt,
	"J": capi.KindLong, "long": capi.KindLong, "jlong": capi.KindLong,
	"F": capi.KindFloat, "float": capi.KindFloat, "jfloat": capi.KindFloat,
	"D": capi.KindDouble, "double": capi.KindDouble, "jdouble": capi.KindDouble,
	"V": capi.KindVoid, "void": capi.KindVoid, "jvoid": capi.KindVoid,
}

// ParseTypeName parses one DSL type expression: a primitive alias, a
// dotted/default-package Java class name ("java.lang.String", ".Name"),
// with inner classes via "::" (mapped to "$"), and arrays via either
// prefix "[T]" or suffix "T[]" (repeatable for multi-dimensional arrays).
func ParseTypeName(expr string) (Type, error) {
	expr = strings.TrimSpace(expr)

	dims := 0
	for strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		expr = strings.TrimSuffix(strings.TrimPrefix(expr, "["), "]")
		dims++
	}
	for strings.HasSuffix(expr, "[]") {
		expr = strings.TrimSuffix(expr, "[]")
		dims++
	}
	expr = strings.TrimSpace(expr)

	if kind, ok := primitiveAliases[expr]; ok {
		if kind == capi.KindVoid && dims > 0 {
			return Type{}, fmt.Errorf("sig: void is forbidden as an array element type")
		}
		return Type{Kind: kind, ArrayDims: dims}, nil
	}

	className := expr
	if strings.HasPrefix(className, ".") {
		className = className[1:] // default-package prefix
	}
	className = strings.ReplaceAll(className, "::", "$")
	className = strings.ReplaceAll(className, ".", "/")
	if className == "" {
		return Type{}, fmt.Errorf("sig: empty class name in %q", expr)
	}
	return Type{Kind: capi.KindObject, ClassName: className, ArrayDims: dims}, nil
}

// MethodSignature is a resolved, structured method descriptor: ordered
// parameter types plus a return type; Descriptor renders the descriptor
// string.
type MethodSignature struct {
	Params     []Type
	ReturnType Type
}

// Descriptor renders the full JNI method descriptor ("(II)V").
func (m MethodSignature) Descriptor() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range m.Params {
		b.WriteString(p.Descriptor())
	}
	b.WriteByte(')')
	b.WriteString(m.ReturnType.Descriptor())
	return b.String()
}

// NewMethodSignature builds a MethodSignature from DSL type expressions.
func NewMethodSignature(paramExprs []string, returnExpr string) (MethodSignature, error) {
	params := make([]Type, len(paramExprs))
	for i, p := range paramExprs {
		t, err := ParseTypeName(p)
		if err != nil {
			return MethodSignature{}, err
		}
		if t.Kind == capi.KindVoid {
			return MethodSignature{}, fmt.Errorf("sig: void is forbidden as a parameter type")
		}
		params[i] = t
	}
	ret, err := ParseTypeName(returnExpr)
	if err != nil {
		return MethodSignature{}, err
	}
	return MethodSignature{Params: params, ReturnType: ret}, nil
}

// FieldSignature is a resolved field descriptor.
type FieldSignature struct {
	Type Type
}

// Descriptor renders the field's JNI type descriptor.
func (f FieldSignature) Descriptor() string {
	return f.Type.Descriptor()
}

// NewFieldSignature builds a FieldSignature from a DSL type expression.
// Void is forbidden as a field type.
func NewFieldSignature(expr string) (FieldSignature, error) {
	t, err := ParseTypeName(expr)
	if err != nil {
		return FieldSignature{}, err
	}
	if t.Kind == capi.KindVoid {
		return FieldSignature{}, fmt.Errorf("sig: void is forbidden as a field type")
	}
	return FieldSignature{Type: t}, nil
}
