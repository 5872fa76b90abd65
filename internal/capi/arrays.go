package capi

/*
#include <jni.h>
*/
import "C"
import "unsafe"

// GetArrayLength returns the element count of any array reference.
func GetArrayLength(env Env, a Ref) int32 {
	return int32(C.shim_GetArrayLength(env.cgo(), C.jarray(a.cgo())))
}

// NewObjectArray allocates an array of length elements of elemClass,
// each initialized to init (may be the null reference).
func NewObjectArray(env Env, length int32, elemClass, init Ref) Ref {
	return refFrom(C.jobject(C.shim_NewObjectArray(env.cgo(), C.jsize(length), elemClass.cgo(), init.cgo())))
}

// GetObjectArrayElement reads one element, returning a new local reference.
func GetObjectArrayElement(env Env, a Ref, index int32) Ref {
	return refFrom(C.shim_GetObjectArrayElement(env.cgo(), C.jobjectArray(a.cgo()), C.jsize(index)))
}

// SetObjectArrayElement stores val at index.
func SetObjectArrayElement(env Env, a Ref, index int32, val Ref) {
	C.shim_SetObjectArrayElement(env.cgo(), C.jobjectArray(a.cgo()), C.jsize(index), val.cgo())
}

// NewDirectByteBuffer wraps a native buffer as a java.nio.ByteBuffer that
// aliases the given memory without copying.
func NewDirectByteBuffer(env Env, addr unsafe.Pointer, capacity int64) Ref {
	return refFrom(C.jobject(C.shim_NewDirectByteBuffer(env.cgo(), addr, C.jlong(capacity))))
}

// GetDirectBufferAddress returns the native base address backing buf, or
// nil if buf is not a direct buffer.
func GetDirectBufferAddress(env Env, buf Ref) unsafe.Pointer {
	return C.shim_GetDirectBufferAddress(env.cgo(), buf.cgo())
}

// GetDirectBufferCapacity returns the byte capacity of a direct buffer.
func GetDirectBufferCapacity(env Env, buf Ref) int64 {
	return int64(C.shim_GetDirectBufferCapacity(env.cgo(), buf.cgo()))
}

// NewPrimitiveArray allocates a length-element array of the given
// primitive kind (Boolean..Double). Panics if kind is not a primitive kind.
func NewPrimitiveArray(env Env, kind Kind, length int32) Ref {
	e, n := env.cgo(), C.jsize(length)
	switch kind {
	case KindBoolean:
		return refFrom(C.jobject(C.shim_NewBooleanArray(e, n)))
	case KindByte:
		return refFrom(C.jobject(C.shim_NewByteArray(e, n)))
	case KindChar:
		return refFrom(C.jobject(C.shim_NewCharArray(e, n)))
	case KindShort:
		return refFrom(C.jobject(C.shim_NewShortArray(e, n)))
	case KindInt:
		return refFrom(C.jobject(C.shim_NewIntArray(e, n)))
	case KindLong:
		return refFrom(C.jobject(C.shim_NewLongArray(e, n)))
	case KindFloat:
		return refFrom(C.jobject(C.shim_NewFloatArray(e, n)))
	case KindDouble:
		return refFrom(C.jobject(C.shim_NewDoubleArray(e, n)))
	default:
		panic("capi: NewPrimitiveArray: not a primitive kind")
	}
}

// GetArrayRegion copies a contiguous range of a primitive array into a
// caller-owned Value slice of the matching kind.
func GetArrayRegion(env Env, kind Kind, a Ref, start, length int32) []Value {
	e, arr, s, n := env.cgo(), a.cgo(), C.jsize(start), C.jsize(length)
	out := make([]Value, length)
	switch kind {
	case KindBoolean:
		buf := make([]C.jboolean, length)
		if length > 0 {
			C.shim_GetBooleanArrayRegion(e, C.jbooleanArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Bool: v == C.JNI_TRUE}
		}
	case KindByte:
		buf := make([]C.jbyte, length)
		if length > 0 {
			C.shim_GetByteArrayRegion(e, C.jbyteArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Byte: int8(v)}
		}
	case KindChar:
		buf := make([]C.jchar, length)
		if length > 0 {
			C.shim_GetCharArrayRegion(e, C.jcharArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Char: uint16(v)}
		}
	case KindShort:
		buf := make([]C.jshort, length)
		if length > 0 {
			C.shim_GetShortArrayRegion(e, C.jshortArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Short: int16(v)}
		}
	case KindInt:
		buf := make([]C.jint, length)
		if length > 0 {
			C.shim_GetIntArrayRegion(e, C.jintArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Int: int32(v)}
		}
	case KindLong:
		buf := make([]C.jlong, length)
		if length > 0 {
			C.shim_GetLongArrayRegion(e, C.jlongArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Long: int64(v)}
		}
	case KindFloat:
		buf := make([]C.jfloat, length)
		if length > 0 {
			C.shim_GetFloatArrayRegion(e, C.jfloatArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Float: float32(v)}
		}
	case KindDouble:
		buf := make([]C.jdouble, length)
		if length > 0 {
			C.shim_GetDoubleArrayRegion(e, C.jdoubleArray(arr), s, n, &buf[0])
		}
		for i, v := range buf {
			out[i] = Value{Kind: kind, Double: float64(v)}
		}
	default:
		panic("capi: GetArrayRegion: not a primitive kind")
	}
	return out
}

// SetArrayRegion writes vals into a contiguous range of a primitive array.
func SetArrayRegion(env Env, kind Kind, a Ref, start int32, vals []Value) {
	e, arr, s, n := env.cgo(), a.cgo(), C.jsize(start), C.jsize(len(vals))
	if len(vals) == 0 {
		return
	}
	switch kind {
	case KindBoolean:
		buf := make([]C.jboolean, len(vals))
		for i, v := range vals {
			buf[i] = boolToJboolean(v.Bool)
		}
		C.shim_SetBooleanArrayRegion(e, C.jbooleanArray(arr), s, n, &buf[0])
	case KindByte:
		buf := make([]C.jbyte, len(vals))
		for i, v := range vals {
			buf[i] = C.jbyte(v.Byte)
		}
		C.shim_SetByteArrayRegion(e, C.jbyteArray(arr), s, n, &buf[0])
	case KindChar:
		buf := make([]C.jchar, len(vals))
		for i, v := range vals {
			buf[i] = C.jchar(v.Char)
		}
		C.shim_SetCharArrayRegion(e, C.jcharArray(arr), s, n, &buf[0])
	case KindShort:
		buf := make([]C.jshort, len(vals))
		for i, v := range vals {
			buf[i] = C.jshort(v.Short)
		}
		C.shim_SetShortArrayRegion(e, C.jshortArray(arr), s, n, &buf[0])
	case KindInt:
		buf := make([]C.jint, len(vals))
		for i, v := range vals {
			buf[i] = C.jint(v.Int)
		}
		C.shim_SetIntArrayRegion(e, C.jintArray(arr), s, n, &buf[0])
	case KindLong:
		buf := make([]C.jlong, len(vals))
		for i, v := range vals {
			buf[i] = C.jlong(v.Long)
		}
		C.shim_SetLongArrayRegion(e, C.jlongArray(arr), s, n, &buf[0])
	case KindFloat:
		buf := make([]C.jfloat, len(vals))
		for i, v := range vals {
			buf[i] = C.jfloat(v.Float)
		}
		C.shim_SetFloatArrayRegion(e, C.jfloatArray(arr), s, n, &buf[0])
	case KindDouble:
		buf := make([]C.jdouble, len(vals))
		for i, v := range vals {
			buf[i] = C.jdouble(v.Double)
		}
		C.shim_SetDoubleArrayRegion(e, C.jdoubleArray(arr), s, n, &buf[0])
	default:
		panic("capi: SetArrayRegion: not a primitive kind")
	}
}

// PinnedArray is a JVM-pinned primitive array buffer obtained via
// GetPrimitiveArrayCritical or a typed GetXxxArrayElements call.
type PinnedArray struct {
	Kind   Kind
	Addr   unsafe.Pointer
	Len    int32
	IsCopy bool
}

// GetPrimitiveArrayCritical pins a's backing storage in place, forbidding
// blocking JNI calls or GC-triggering allocation until Release is called.
func GetPrimitiveArrayCritical(env Env, kind Kind, a Ref) PinnedArray {
	var isCopy C.jboolean
	addr := C.shim_GetPrimitiveArrayCritical(env.cgo(), C.jarray(a.cgo()), &isCopy)
	return PinnedArray{
		Kind:   kind,
		Addr:   addr,
		Len:    GetArrayLength(env, a),
		IsCopy: isCopy == C.JNI_TRUE,
	}
}

// ReleasePrimitiveArrayCritical unpins a buffer obtained from
// GetPrimitiveArrayCritical.
func ReleasePrimitiveArrayCritical(env Env, a Ref, p PinnedArray, mode ReleaseMode) {
	C.shim_ReleasePrimitiveArrayCritical(env.cgo(), C.jarray(a.cgo()), p.Addr, C.jint(mode))
}
