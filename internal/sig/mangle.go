// Package sig implements the JNI signature sub-language: descriptor
// parsing/validation, and the native-symbol mangling scheme exported
// natives must follow.
package sig

import (
	"fmt"
	"strings"
	"unicode"
)

// ToLowerCamelCase converts a snake_case native function name to the
// lowerCamelCase Java method name JNI's auto-mangling expects. Names that
// already contain any uppercase letter are left untouched — the
// conversion is idempotent by construction, matching the original macro's
// "don't double-convert an already-Java-styled name" rule.
func ToLowerCamelCase(name string) string {
	if strings.IndexFunc(name, unicode.IsUpper) >= 0 {
		return name
	}

	// Trim exactly one leading underscore; trailing underscores are
	// preserved verbatim.
	trimmed := name
	leadingUnderscore := false
	if strings.HasPrefix(trimmed, "_") {
		leadingUnderscore = true
		trimmed = trimmed[1:]
	}
	core := strings.TrimRight(trimmed, "_")
	trailing := trimmed[len(core):]

	var b strings.Builder
	capitalizeNext := false
	prevWasDigit := false
	for _, r := range core {
		switch {
		case r == '_':
			capitalizeNext = true
			prevWasDigit = false
		case unicode.IsDigit(r):
			b.WriteRune(r)
			prevWasDigit = true
			capitalizeNext = true // the next non-digit after a run of digits capitalizes
		case capitalizeNext:
			for _, u := range unicode.ToUpper(r) {
				b.WriteRune(u)
			}
			capitalizeNext = false
			prevWasDigit = false
		default:
			b.WriteRune(r)
			prevWasDigit = false
		}
	}
	_ = prevWasDigit

	out := b.String() + trailing
	if leadingUnderscore {
		out = "_" + out
	}
	return out
}

// escapeContext selects which characters get the context-specific escape:
// dotted namespace/class-name segments escape '.', while signature
// argument strings escape '/' instead.
type escapeContext int

const (
	contextIdentifier escapeContext = iota // class/method names: '.' -> '_'
	contextSignature                       // descriptor strings: '/' -> '_'
)

// mangleIdentifier escapes a single identifier-context string (a
// slash-free class or method name fragment) per the JNI mangling rules.
func mangleIdentifier(s string, ctx escapeContext) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '_':
			b.WriteString("_1")
		case r == ';':
			b.WriteString("_2")
		case r == '[':
			b.WriteString("_3")
		case ctx == contextIdentifier && r == '.':
			b.WriteByte('_')
		case ctx == contextSignature && r == '/':
			b.WriteByte('_')
		case r == '$':
			fmt.Fprintf(&b, "_0%04x", r)
		case r > unicode.MaxASCII:
			fmt.Fprintf(&b, "_0%04x", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MangleIdentifier escapes a class or method name fragment (dots become
// underscores, along with the universal underscore/semicolon/bracket
// escapes).
func MangleIdentifier(s string) string {
	return mangleIdentifier(s, contextIdentifier)
}

// MangleSignatureArgs escapes a parameter descriptor string used in the
// optional overload-disambiguation suffix (slashes become underscores
// instead of dots, since descriptors are already slash-separated).
func MangleSignatureArgs(descriptor string) string {
	return mangleIdentifier(descriptor, contextSignature)
}

// CreateJNIFnName builds the exported native-symbol name:
// Java_<escaped class>_<escaped method>[__<escaped param descriptor>].
// className uses dotted form ("com.example.Foo"); paramDescriptor, when
// non-empty, disambiguates overloaded natives and must be the method's
// parameter-only descriptor with the surrounding parentheses removed
// (e.g. "ILjava/lang/String;").
func CreateJNIFnName(className, methodName, paramDescriptor string) string {
	className = strings.ReplaceAll(className, "::", "$")
	var b strings.Builder
	b.WriteString("Java_")
	b.WriteString(MangleIdentifier(className))
	b.WriteByte('_')
	b.WriteString(MangleIdentifier(ToLowerCamelCase(methodName)))
	if paramDescriptor != "" {
		b.WriteString("__")
		b.WriteString(MangleSignatureArgs(paramDescriptor))
	}
	return b.String()
}

// ClassDescriptor turns a dotted or slash-separated class name into its
// JNI object-type descriptor ("Ljava/lang/String;"), without requiring a
// full method/field signature around it.
func ClassDescriptor(name string) string {
	internal := strings.ReplaceAll(name, ".", "/")
	internal = strings.ReplaceAll(internal, "::", "$")
	return "L" + internal + ";"
}
