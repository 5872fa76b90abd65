package refs

import "github.com/galago-jni/jni/internal/capi"

// concreteType is the Reference capability for one internal JVM class
// name. Every typed Java wrapper embeds one of these rather than
// modeling subtyping through Go interface embedding, matching spec
// §3's "subtype relationships are modeled as explicit conversions, not
// inheritance."
type concreteType struct {
	ref   capi.Ref
	class string
}

// ClassName returns the JVM internal class name ("java/lang/String").
func (t concreteType) ClassName() string { return t.class }

// Raw returns the underlying reference.
func (t concreteType) Raw() capi.Ref { return t.ref }

// JObject is the universal supertype wrapper: any reference can be
// widened to it without a runtime check.
type JObject struct{ concreteType }

// NewJObject wraps ref as a JObject.
func NewJObject(ref capi.Ref) JObject {
	return JObject{concreteType{ref: ref, class: "java/lang/Object"}}
}

// JClass wraps a java.lang.Class reference.
type JClass struct{ concreteType }

// NewJClass wraps ref as a JClass.
func NewJClass(ref capi.Ref) JClass {
	return JClass{concreteType{ref: ref, class: "java/lang/Class"}}
}

// JString wraps a java.lang.String reference.
type JString struct{ concreteType }

// NewJString wraps ref as a JString.
func NewJString(ref capi.Ref) JString {
	return JString{concreteType{ref: ref, class: "java/lang/String"}}
}

// JThrowable wraps a java.lang.Throwable reference.
type JThrowable struct{ concreteType }

// NewJThrowable wraps ref as a JThrowable.
func NewJThrowable(ref capi.Ref) JThrowable {
	return JThrowable{concreteType{ref: ref, class: "java/lang/Throwable"}}
}

// JByteArray wraps a jbyteArray reference. Like every array wrapper, its
// class name is the full array descriptor ("[B", "[I",
// "[Ljava/lang/String;").
type JByteArray struct{ concreteType }

// NewJByteArray wraps ref as a JByteArray.
func NewJByteArray(ref capi.Ref) JByteArray {
	return JByteArray{concreteType{ref: ref, class: "[B"}}
}

// JIntArray wraps a jintArray reference.
type JIntArray struct{ concreteType }

// NewJIntArray wraps ref as a JIntArray.
func NewJIntArray(ref capi.Ref) JIntArray {
	return JIntArray{concreteType{ref: ref, class: "[I"}}
}

// JObjectArray wraps a jobjectArray reference of a given element class.
type JObjectArray struct {
	concreteType
	ElementClass string
}

// NewJObjectArray wraps ref as a JObjectArray of elemClass elements.
func NewJObjectArray(ref capi.Ref, elemClass string) JObjectArray {
	return JObjectArray{
		concreteType: concreteType{ref: ref, class: "[L" + elemClass + ";"},
		ElementClass: elemClass,
	}
}

// AsJObject widens any Reference to the universal JObject supertype; this
// is always safe and never fails, unlike the narrowing casts in
// jnienv.AsCast/CastLocal/CastGlobal.
func AsJObject(r Reference) JObject {
	return NewJObject(r.Raw())
}
