package capi

/*
#include <jni.h>
*/
import "C"

// CallMethod invokes an instance method whose return type is kind, passing
// args packed as a jvalue array. kind must not be KindVoid; use
// CallVoidMethod for void-returning methods.
func CallMethod(env Env, kind Kind, obj Ref, m MethodID, args []Value) Value {
	e, o, mid := env.cgo(), obj.cgo(), methodIDToC(m)
	cv := valuesToC(args)
	p := cValuesPtr(cv)
	switch kind {
	case KindBoolean:
		return Value{Kind: kind, Bool: C.shim_CallBooleanMethodA(e, o, mid, p) == C.JNI_TRUE}
	case KindByte:
		return Value{Kind: kind, Byte: int8(C.shim_CallByteMethodA(e, o, mid, p))}
	case KindChar:
		return Value{Kind: kind, Char: uint16(C.shim_CallCharMethodA(e, o, mid, p))}
	case KindShort:
		return Value{Kind: kind, Short: int16(C.shim_CallShortMethodA(e, o, mid, p))}
	case KindInt:
		return Value{Kind: kind, Int: int32(C.shim_CallIntMethodA(e, o, mid, p))}
	case KindLong:
		return Value{Kind: kind, Long: int64(C.shim_CallLongMethodA(e, o, mid, p))}
	case KindFloat:
		return Value{Kind: kind, Float: float32(C.shim_CallFloatMethodA(e, o, mid, p))}
	case KindDouble:
		return Value{Kind: kind, Double: float64(C.shim_CallDoubleMethodA(e, o, mid, p))}
	case KindObject:
		return Value{Kind: kind, Object: refFrom(C.shim_CallObjectMethodA(e, o, mid, p))}
	default:
		panic("capi: CallMethod: unsupported kind, use CallVoidMethod")
	}
}

// CallVoidMethod invokes a void-returning instance method.
func CallVoidMethod(env Env, obj Ref, m MethodID, args []Value) {
	cv := valuesToC(args)
	C.shim_CallVoidMethodA(env.cgo(), obj.cgo(), methodIDToC(m), cValuesPtr(cv))
}

// CallStaticMethod invokes a static method whose return type is kind.
func CallStaticMethod(env Env, kind Kind, clazz Ref, m MethodID, args []Value) Value {
	e, c, mid := env.cgo(), clazz.cgo(), methodIDToC(m)
	cv := valuesToC(args)
	p := cValuesPtr(cv)
	switch kind {
	case KindBoolean:
		return Value{Kind: kind, Bool: C.shim_CallStaticBooleanMethodA(e, c, mid, p) == C.JNI_TRUE}
	case KindByte:
		return Value{Kind: kind, Byte: int8(C.shim_CallStaticByteMethodA(e, c, mid, p))}
	case KindChar:
		return Value{Kind: kind, Char: uint16(C.shim_CallStaticCharMethodA(e, c, mid, p))}
	case KindShort:
		return Value{Kind: kind, Short: int16(C.shim_CallStaticShortMethodA(e, c, mid, p))}
	case KindInt:
		return Value{Kind: kind, Int: int32(C.shim_CallStaticIntMethodA(e, c, mid, p))}
	case KindLong:
		return Value{Kind: kind, Long: int64(C.shim_CallStaticLongMethodA(e, c, mid, p))}
	case KindFloat:
		return Value{Kind: kind, Float: float32(C.shim_CallStaticFloatMethodA(e, c, mid, p))}
	case KindDouble:
		return Value{Kind: kind, Double: float64(C.shim_CallStaticDoubleMethodA(e, c, mid, p))}
	case KindObject:
		return Value{Kind: kind, Object: refFrom(C.shim_CallStaticObjectMethodA(e, c, mid, p))}
	default:
		panic("capi: CallStaticMethod: unsupported kind, use CallStaticVoidMethod")
	}
}

// CallStaticVoidMethod invokes a void-returning static method.
func CallStaticVoidMethod(env Env, clazz Ref, m MethodID, args []Value) {
	cv := valuesToC(args)
	C.shim_CallStaticVoidMethodA(env.cgo(), clazz.cgo(), methodIDToC(m), cValuesPtr(cv))
}
