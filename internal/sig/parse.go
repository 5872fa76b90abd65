package sig

import (
	"fmt"
	"strings"

	"github.com/galago-jni/jni/internal/capi"
)

// ParseDescriptor parses a single raw JNI type descriptor ("I", "[I",
// "Ljava/lang/String;", "[[Ljava/lang/String;", ...) as produced by a
// .class file or by Descriptor. It is the inverse of Type.Descriptor,
// used both to validate raw descriptor strings the DSL accepts verbatim
// (spec §4.7) and to round-trip-test emitted signatures (spec §8 I4).
func ParseDescriptor(desc string) (Type, int, error) {
	dims := 0
	rest := desc
	for strings.HasPrefix(rest, "[") {
		rest = rest[1:]
		dims++
	}
	if rest == "" {
		return Type{}, 0, fmt.Errorf("sig: empty descriptor after %d array dimension(s)", dims)
	}

	switch rest[0] {
	case 'L':
		end := strings.IndexByte(rest, ';')
		if end < 0 {
			return Type{}, 0, fmt.Errorf("sig: unterminated object descriptor %q", desc)
		}
		return Type{Kind: capi.KindObject, ClassName: rest[1:end], ArrayDims: dims}, len(desc) - len(rest) + end + 1, nil
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D', 'V':
		if rest[0] == 'V' && dims > 0 {
			return Type{}, 0, fmt.Errorf("sig: void is forbidden as an array element type")
		}
		return Type{Kind: capi.Kind(rest[0]), ArrayDims: dims}, len(desc) - len(rest) + 1, nil
	default:
		return Type{}, 0, fmt.Errorf("sig: unrecognized descriptor byte %q in %q", rest[0], desc)
	}
}

// ParseMethodDescriptor parses a full "(paramTypes)returnType" JNI method
// descriptor into a structured MethodSignature, validating that the
// parenthesization is well-formed and that no parameter is void.
func ParseMethodDescriptor(desc string) (MethodSignature, error) {
	if !strings.HasPrefix(desc, "(") {
		return MethodSignature{}, fmt.Errorf("sig: method descriptor %q missing opening '('", desc)
	}
	close := strings.IndexByte(desc, ')')
	if close < 0 {
		return MethodSignature{}, fmt.Errorf("sig: method descriptor %q missing closing ')'", desc)
	}

	paramsStr := desc[1:close]
	var params []Type
	for len(paramsStr) > 0 {
		t, n, err := ParseDescriptor(paramsStr)
		if err != nil {
			return MethodSignature{}, fmt.Errorf("sig: parsing parameter in %q: %w", desc, err)
		}
		if t.Kind == capi.KindVoid {
			return MethodSignature{}, fmt.Errorf("sig: void is forbidden as a parameter type")
		}
		params = append(params, t)
		paramsStr = paramsStr[n:]
	}

	retStr := desc[close+1:]
	if retStr == "" {
		return MethodSignature{}, fmt.Errorf("sig: method descriptor %q missing return type", desc)
	}
	ret, n, err := ParseDescriptor(retStr)
	if err != nil {
		return MethodSignature{}, fmt.Errorf("sig: parsing return type in %q: %w", desc, err)
	}
	if n != len(retStr) {
		return MethodSignature{}, fmt.Errorf("sig: trailing garbage after return type in %q", desc)
	}

	return MethodSignature{Params: params, ReturnType: ret}, nil
}

// ParseFieldDescriptor parses a single field type descriptor, rejecting
// void exactly as NewFieldSignature does for the DSL form.
func ParseFieldDescriptor(desc string) (FieldSignature, error) {
	t, n, err := ParseDescriptor(desc)
	if err != nil {
		return FieldSignature{}, err
	}
	if n != len(desc) {
		return FieldSignature{}, fmt.Errorf("sig: trailing garbage after field descriptor %q", desc)
	}
	if t.Kind == capi.KindVoid {
		return FieldSignature{}, fmt.Errorf("sig: void is forbidden as a field type")
	}
	return FieldSignature{Type: t}, nil
}

// Equal reports structural equivalence of two types, used by the
// signature round-trip property test (spec §8 invariant 4).
func (t Type) Equal(other Type) bool {
	return t.Kind == other.Kind && t.ClassName == other.ClassName && t.ArrayDims == other.ArrayDims
}

// Equal reports structural equivalence of two method signatures.
func (m MethodSignature) Equal(other MethodSignature) bool {
	if !m.ReturnType.Equal(other.ReturnType) || len(m.Params) != len(other.Params) {
		return false
	}
	for i, p := range m.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	return true
}
