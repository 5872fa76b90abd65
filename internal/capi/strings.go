package capi

/*
#include <jni.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// NewStringUTF creates a jstring from Modified UTF-8 bytes. Callers are
// responsible for MUTF-8 encoding upstream; this layer passes bytes
// through verbatim.
func NewStringUTF(env Env, mutf8 []byte) Ref {
	buf := make([]byte, len(mutf8)+1)
	copy(buf, mutf8)
	cStr := (*C.char)(unsafe.Pointer(&buf[0]))
	return refFrom(C.shim_NewStringUTF(env.cgo(), cStr))
}

// GetStringUTFLength returns the length in Modified UTF-8 bytes, excluding
// the trailing NUL.
func GetStringUTFLength(env Env, s Ref) int32 {
	return int32(C.shim_GetStringUTFLength(env.cgo(), C.jstring(s.cgo())))
}

// PinnedChars is a JVM-pinned Modified UTF-8 buffer. The Bytes slice is a
// Go-owned copy safe to keep; Release must still be called exactly once to
// let the JVM unpin or free its side of the buffer.
type PinnedChars struct {
	Bytes  []byte
	IsCopy bool
	cChars *C.char
}

// GetStringUTFChars pins s and copies out its Modified UTF-8 bytes.
func GetStringUTFChars(env Env, s Ref) PinnedChars {
	var isCopy C.jboolean
	cChars := C.shim_GetStringUTFChars(env.cgo(), C.jstring(s.cgo()), &isCopy)
	if cChars == nil {
		return PinnedChars{}
	}
	n := C.shim_GetStringUTFLength(env.cgo(), C.jstring(s.cgo()))
	return PinnedChars{
		Bytes:  C.GoBytes(unsafe.Pointer(cChars), n),
		IsCopy: isCopy == C.JNI_TRUE,
		cChars: cChars,
	}
}

// ReleaseStringUTFChars releases the memory pinned by GetStringUTFChars.
func ReleaseStringUTFChars(env Env, s Ref, p PinnedChars) {
	if p.cChars == nil {
		return
	}
	C.shim_ReleaseStringUTFChars(env.cgo(), C.jstring(s.cgo()), p.cChars)
}
