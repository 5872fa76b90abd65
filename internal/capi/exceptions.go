package capi

/*
#include <jni.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// ExceptionOccurred returns the pending exception, or the null reference if
// none is pending. Does not clear it.
func ExceptionOccurred(env Env) Ref {
	return refFrom(C.shim_ExceptionOccurred(env.cgo()))
}

// ExceptionClear clears any pending exception.
func ExceptionClear(env Env) {
	C.shim_ExceptionClear(env.cgo())
}

// ExceptionCheck is the cheap pending-exception test, meant to be called
// after every JNI entry point that can throw.
func ExceptionCheck(env Env) bool {
	return C.shim_ExceptionCheck(env.cgo()) == C.JNI_TRUE
}

// ExceptionDescribe prints the pending exception and its stack trace to
// stderr, JVM-side. Diagnostic use only.
func ExceptionDescribe(env Env) {
	C.shim_ExceptionDescribe(env.cgo())
}

// Throw sets obj as the pending exception.
func Throw(env Env, obj Ref) int32 {
	return int32(C.shim_Throw(env.cgo(), C.jthrowable(obj.cgo())))
}

// ThrowNew constructs and throws an exception of the given class with a
// message.
func ThrowNew(env Env, clazz Ref, msg string) int32 {
	cMsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cMsg))
	return int32(C.shim_ThrowNew(env.cgo(), clazz.cgo(), cMsg))
}

// MonitorEnter acquires obj's intrinsic monitor.
func MonitorEnter(env Env, obj Ref) int32 {
	return int32(C.shim_MonitorEnter(env.cgo(), obj.cgo()))
}

// MonitorExit releases obj's intrinsic monitor.
func MonitorExit(env Env, obj Ref) int32 {
	return int32(C.shim_MonitorExit(env.cgo(), obj.cgo()))
}

// NativeMethod describes one entry in a RegisterNatives call.
type NativeMethod struct {
	Name    string
	Sig     string
	FnPtr   unsafe.Pointer
}

// RegisterNatives binds native method implementations to clazz.
func RegisterNatives(env Env, clazz Ref, methods []NativeMethod) int32 {
	if len(methods) == 0 {
		return OK
	}
	cMethods := make([]C.JNINativeMethod, len(methods))
	cStrs := make([]*C.char, 0, len(methods)*2)
	defer func() {
		for _, s := range cStrs {
			C.free(unsafe.Pointer(s))
		}
	}()
	for i, m := range methods {
		cName := C.CString(m.Name)
		cSig := C.CString(m.Sig)
		cStrs = append(cStrs, cName, cSig)
		cMethods[i].name = cName
		cMethods[i].signature = cSig
		cMethods[i].fnPtr = m.FnPtr
	}
	return int32(C.shim_RegisterNatives(env.cgo(), clazz.cgo(), &cMethods[0], C.jint(len(cMethods))))
}

// UnregisterNatives removes all native method bindings for clazz.
func UnregisterNatives(env Env, clazz Ref) int32 {
	return int32(C.shim_UnregisterNatives(env.cgo(), clazz.cgo()))
}
