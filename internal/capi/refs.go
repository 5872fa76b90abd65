package capi

/*
#include <jni.h>
*/
import "C"

// NewGlobalRef promotes a local/any reference to a global one that survives
// frame pops and is valid across threads until explicitly deleted.
func NewGlobalRef(env Env, obj Ref) Ref {
	return refFrom(C.shim_NewGlobalRef(env.cgo(), obj.cgo()))
}

// DeleteGlobalRef releases a global reference.
func DeleteGlobalRef(env Env, obj Ref) {
	C.shim_DeleteGlobalRef(env.cgo(), obj.cgo())
}

// NewWeakGlobalRef creates a weak global reference that does not keep the
// referent alive.
func NewWeakGlobalRef(env Env, obj Ref) Ref {
	return refFrom(C.shim_NewWeakGlobalRef(env.cgo(), obj.cgo()))
}

// DeleteWeakGlobalRef releases a weak global reference.
func DeleteWeakGlobalRef(env Env, obj Ref) {
	C.shim_DeleteWeakGlobalRef(env.cgo(), obj.cgo())
}

// NewLocalRef creates a new local reference to the same object, in the
// current local frame.
func NewLocalRef(env Env, obj Ref) Ref {
	return refFrom(C.shim_NewLocalRef(env.cgo(), obj.cgo()))
}

// DeleteLocalRef releases a local reference before its frame would
// otherwise pop it.
func DeleteLocalRef(env Env, obj Ref) {
	C.shim_DeleteLocalRef(env.cgo(), obj.cgo())
}

// GetObjectRefType reports whether obj is a local, global, or weak global
// reference (JNI 1.6+).
func GetObjectRefType(env Env, obj Ref) RefType {
	return RefType(C.shim_GetObjectRefType(env.cgo(), obj.cgo()))
}

// PushLocalFrame reserves capacity local references in a new frame.
// Returns a nonzero JNI result code on OutOfMemoryError.
func PushLocalFrame(env Env, capacity int32) int32 {
	return int32(C.shim_PushLocalFrame(env.cgo(), C.jint(capacity)))
}

// PopLocalFrame pops the current local frame, returning result (promoted
// into the enclosing frame, or the null reference if result is the zero
// Ref).
func PopLocalFrame(env Env, result Ref) Ref {
	return refFrom(C.shim_PopLocalFrame(env.cgo(), result.cgo()))
}

// EnsureLocalCapacity requests headroom for at least capacity additional
// local references in the current frame.
func EnsureLocalCapacity(env Env, capacity int32) int32 {
	return int32(C.shim_EnsureLocalCapacity(env.cgo(), C.jint(capacity)))
}
