package capi

/*
#include <jni.h>
*/
import "C"
import "unsafe"

// GetField reads an instance field of the given kind.
func GetField(env Env, kind Kind, obj Ref, f FieldID) Value {
	e, o, fid := env.cgo(), obj.cgo(), fieldIDToC(f)
	switch kind {
	case KindBoolean:
		return Value{Kind: kind, Bool: C.shim_GetBooleanField(e, o, fid) == C.JNI_TRUE}
	case KindByte:
		return Value{Kind: kind, Byte: int8(C.shim_GetByteField(e, o, fid))}
	case KindChar:
		return Value{Kind: kind, Char: uint16(C.shim_GetCharField(e, o, fid))}
	case KindShort:
		return Value{Kind: kind, Short: int16(C.shim_GetShortField(e, o, fid))}
	case KindInt:
		return Value{Kind: kind, Int: int32(C.shim_GetIntField(e, o, fid))}
	case KindLong:
		return Value{Kind: kind, Long: int64(C.shim_GetLongField(e, o, fid))}
	case KindFloat:
		return Value{Kind: kind, Float: float32(C.shim_GetFloatField(e, o, fid))}
	case KindDouble:
		return Value{Kind: kind, Double: float64(C.shim_GetDoubleField(e, o, fid))}
	case KindObject:
		return Value{Kind: kind, Object: refFrom(C.shim_GetObjectField(e, o, fid))}
	default:
		panic("capi: GetField: not a field kind")
	}
}

// SetField writes an instance field of the given kind.
func SetField(env Env, kind Kind, obj Ref, f FieldID, v Value) {
	e, o, fid := env.cgo(), obj.cgo(), fieldIDToC(f)
	switch kind {
	case KindBoolean:
		C.shim_SetBooleanField(e, o, fid, boolToJboolean(v.Bool))
	case KindByte:
		C.shim_SetByteField(e, o, fid, C.jbyte(v.Byte))
	case KindChar:
		C.shim_SetCharField(e, o, fid, C.jchar(v.Char))
	case KindShort:
		C.shim_SetShortField(e, o, fid, C.jshort(v.Short))
	case KindInt:
		C.shim_SetIntField(e, o, fid, C.jint(v.Int))
	case KindLong:
		C.shim_SetLongField(e, o, fid, C.jlong(v.Long))
	case KindFloat:
		C.shim_SetFloatField(e, o, fid, C.jfloat(v.Float))
	case KindDouble:
		C.shim_SetDoubleField(e, o, fid, C.jdouble(v.Double))
	case KindObject:
		C.shim_SetObjectField(e, o, fid, v.Object.cgo())
	default:
		panic("capi: SetField: not a field kind")
	}
}

// GetStaticField reads a static field of the given kind.
func GetStaticField(env Env, kind Kind, clazz Ref, f FieldID) Value {
	e, c, fid := env.cgo(), clazz.cgo(), fieldIDToC(f)
	switch kind {
	case KindBoolean:
		return Value{Kind: kind, Bool: C.shim_GetStaticBooleanField(e, c, fid) == C.JNI_TRUE}
	case KindByte:
		return Value{Kind: kind, Byte: int8(C.shim_GetStaticByteField(e, c, fid))}
	case KindChar:
		return Value{Kind: kind, Char: uint16(C.shim_GetStaticCharField(e, c, fid))}
	case KindShort:
		return Value{Kind: kind, Short: int16(C.shim_GetStaticShortField(e, c, fid))}
	case KindInt:
		return Value{Kind: kind, Int: int32(C.shim_GetStaticIntField(e, c, fid))}
	case KindLong:
		return Value{Kind: kind, Long: int64(C.shim_GetStaticLongField(e, c, fid))}
	case KindFloat:
		return Value{Kind: kind, Float: float32(C.shim_GetStaticFloatField(e, c, fid))}
	case KindDouble:
		return Value{Kind: kind, Double: float64(C.shim_GetStaticDoubleField(e, c, fid))}
	case KindObject:
		return Value{Kind: kind, Object: refFrom(C.shim_GetStaticObjectField(e, c, fid))}
	default:
		panic("capi: GetStaticField: not a field kind")
	}
}

// SetStaticField writes a static field of the given kind.
func SetStaticField(env Env, kind Kind, clazz Ref, f FieldID, v Value) {
	e, c, fid := env.cgo(), clazz.cgo(), fieldIDToC(f)
	switch kind {
	case KindBoolean:
		C.shim_SetStaticBooleanField(e, c, fid, boolToJboolean(v.Bool))
	case KindByte:
		C.shim_SetStaticByteField(e, c, fid, C.jbyte(v.Byte))
	case KindChar:
		C.shim_SetStaticCharField(e, c, fid, C.jchar(v.Char))
	case KindShort:
		C.shim_SetStaticShortField(e, c, fid, C.jshort(v.Short))
	case KindInt:
		C.shim_SetStaticIntField(e, c, fid, C.jint(v.Int))
	case KindLong:
		C.shim_SetStaticLongField(e, c, fid, C.jlong(v.Long))
	case KindFloat:
		C.shim_SetStaticFloatField(e, c, fid, C.jfloat(v.Float))
	case KindDouble:
		C.shim_SetStaticDoubleField(e, c, fid, C.jdouble(v.Double))
	case KindObject:
		C.shim_SetStaticObjectField(e, c, fid, v.Object.cgo())
	default:
		panic("capi: SetStaticField: not a field kind")
	}
}

// GetArrayElements pins a primitive array's backing storage and returns
// it as a PinnedArray (address, length, is-copy flag) without copying the
// elements into Go memory, mirroring GetXxxArrayElements. Unlike
// GetPrimitiveArrayCritical this does not forbid blocking JNI calls while
// held, at the cost of being potentially slower on some JVMs.
func GetArrayElements(env Env, kind Kind, a Ref) PinnedArray {
	e, arr := env.cgo(), a.cgo()
	var isCopy C.jboolean
	var addr unsafe.Pointer
	switch kind {
	case KindBoolean:
		addr = unsafe.Pointer(C.shim_GetBooleanArrayElements(e, C.jbooleanArray(arr), &isCopy))
	case KindByte:
		addr = unsafe.Pointer(C.shim_GetByteArrayElements(e, C.jbyteArray(arr), &isCopy))
	case KindChar:
		addr = unsafe.Pointer(C.shim_GetCharArrayElements(e, C.jcharArray(arr), &isCopy))
	case KindShort:
		addr = unsafe.Pointer(C.shim_GetShortArrayElements(e, C.jshortArray(arr), &isCopy))
	case KindInt:
		addr = unsafe.Pointer(C.shim_GetIntArrayElements(e, C.jintArray(arr), &isCopy))
	case KindLong:
		addr = unsafe.Pointer(C.shim_GetLongArrayElements(e, C.jlongArray(arr), &isCopy))
	case KindFloat:
		addr = unsafe.Pointer(C.shim_GetFloatArrayElements(e, C.jfloatArray(arr), &isCopy))
	case KindDouble:
		addr = unsafe.Pointer(C.shim_GetDoubleArrayElements(e, C.jdoubleArray(arr), &isCopy))
	default:
		panic("capi: GetArrayElements: not a primitive kind")
	}
	return PinnedArray{Kind: kind, Addr: addr, Len: GetArrayLength(env, a), IsCopy: isCopy == C.JNI_TRUE}
}

// ReleaseArrayElements releases a buffer obtained from GetArrayElements.
func ReleaseArrayElements(env Env, a Ref, p PinnedArray, mode ReleaseMode) {
	e, arr := env.cgo(), a.cgo()
	switch p.Kind {
	case KindBoolean:
		C.shim_ReleaseBooleanArrayElements(e, C.jbooleanArray(arr), (*C.jboolean)(p.Addr), C.jint(mode))
	case KindByte:
		C.shim_ReleaseByteArrayElements(e, C.jbyteArray(arr), (*C.jbyte)(p.Addr), C.jint(mode))
	case KindChar:
		C.shim_ReleaseCharArrayElements(e, C.jcharArray(arr), (*C.jchar)(p.Addr), C.jint(mode))
	case KindShort:
		C.shim_ReleaseShortArrayElements(e, C.jshortArray(arr), (*C.jshort)(p.Addr), C.jint(mode))
	case KindInt:
		C.shim_ReleaseIntArrayElements(e, C.jintArray(arr), (*C.jint)(p.Addr), C.jint(mode))
	case KindLong:
		C.shim_ReleaseLongArrayElements(e, C.jlongArray(arr), (*C.jlong)(p.Addr), C.jint(mode))
	case KindFloat:
		C.shim_ReleaseFloatArrayElements(e, C.jfloatArray(arr), (*C.jfloat)(p.Addr), C.jint(mode))
	case KindDouble:
		C.shim_ReleaseDoubleArrayElements(e, C.jdoubleArray(arr), (*C.jdouble)(p.Addr), C.jint(mode))
	default:
		panic("capi: ReleaseArrayElements: not a primitive kind")
	}
}
