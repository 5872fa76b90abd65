package capi

/*
#include <jni.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// FindClass resolves a class by its JVM internal name (slash-separated,
// e.g. "java/lang/String"). Returns a local reference.
func FindClass(env Env, name string) Ref {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return refFrom(C.shim_FindClass(env.cgo(), cName))
}

// GetObjectClass returns the runtime class of obj.
func GetObjectClass(env Env, obj Ref) Ref {
	return refFrom(C.shim_GetObjectClass(env.cgo(), obj.cgo()))
}

// IsInstanceOf tests whether obj is an instance of clazz (or is null, which
// JNI defines as true for any class).
func IsInstanceOf(env Env, obj, clazz Ref) bool {
	return C.shim_IsInstanceOf(env.cgo(), obj.cgo(), clazz.cgo()) == C.JNI_TRUE
}

// IsSameObject tests reference identity, following JNI's null-safe rules.
func IsSameObject(env Env, a, b Ref) bool {
	return C.shim_IsSameObject(env.cgo(), a.cgo(), b.cgo()) == C.JNI_TRUE
}

// GetMethodID resolves an instance method by name and descriptor.
func GetMethodID(env Env, clazz Ref, name, sig string) MethodID {
	cName, cSig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cSig))
	return MethodID(uintptr(unsafe.Pointer(C.shim_GetMethodID(env.cgo(), clazz.cgo(), cName, cSig))))
}

// GetStaticMethodID resolves a static method by name and descriptor.
func GetStaticMethodID(env Env, clazz Ref, name, sig string) MethodID {
	cName, cSig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cSig))
	return MethodID(uintptr(unsafe.Pointer(C.shim_GetStaticMethodID(env.cgo(), clazz.cgo(), cName, cSig))))
}

// GetFieldID resolves an instance field by name and descriptor.
func GetFieldID(env Env, clazz Ref, name, sig string) FieldID {
	cName, cSig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cSig))
	return FieldID(uintptr(unsafe.Pointer(C.shim_GetFieldID(env.cgo(), clazz.cgo(), cName, cSig))))
}

// GetStaticFieldID resolves a static field by name and descriptor.
func GetStaticFieldID(env Env, clazz Ref, name, sig string) FieldID {
	cName, cSig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cSig))
	return FieldID(uintptr(unsafe.Pointer(C.shim_GetStaticFieldID(env.cgo(), clazz.cgo(), cName, cSig))))
}

func methodIDToC(m MethodID) C.jmethodID {
	return C.jmethodID(unsafe.Pointer(uintptr(m)))
}

func fieldIDToC(f FieldID) C.jfieldID {
	return C.jfieldID(unsafe.Pointer(uintptr(f)))
}

// NewObjectA constructs a new instance via the constructor identified by m.
func NewObjectA(env Env, clazz Ref, m MethodID, args []Value) Ref {
	cv := valuesToC(args)
	return refFrom(C.shim_NewObjectA(env.cgo(), clazz.cgo(), methodIDToC(m), cValuesPtr(cv)))
}
