package call

import (
	"fmt"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/sig"
)

// Arg is one checked call argument: its JNI value plus the kind it was
// constructed with, compared against the resolved signature's parameter
// kind before any JNI call is made.
type Arg struct {
	Value capi.Value
	Kind  capi.Kind
}

// Bool, Int, Long, Obj, ... construct Args of the matching primitive kind.
// Object-typed args are validated by kind only (capi.KindObject), not by
// runtime class — spec §4.5 step 2 checks "kind", and a full instanceof
// check on every argument would defeat the point of skipping it via
// IsInstanceOf-based casts elsewhere.
func Bool(v bool) Arg   { return Arg{Value: capi.Value{Kind: capi.KindBoolean, Bool: v}, Kind: capi.KindBoolean} }
func Byte(v int8) Arg   { return Arg{Value: capi.Value{Kind: capi.KindByte, Byte: v}, Kind: capi.KindByte} }
func Char(v uint16) Arg { return Arg{Value: capi.Value{Kind: capi.KindChar, Char: v}, Kind: capi.KindChar} }
func Short(v int16) Arg { return Arg{Value: capi.Value{Kind: capi.KindShort, Short: v}, Kind: capi.KindShort} }
func Int(v int32) Arg   { return Arg{Value: capi.Value{Kind: capi.KindInt, Int: v}, Kind: capi.KindInt} }
func Long(v int64) Arg  { return Arg{Value: capi.Value{Kind: capi.KindLong, Long: v}, Kind: capi.KindLong} }
func Float(v float32) Arg {
	return Arg{Value: capi.Value{Kind: capi.KindFloat, Float: v}, Kind: capi.KindFloat}
}
func Double(v float64) Arg {
	return Arg{Value: capi.Value{Kind: capi.KindDouble, Double: v}, Kind: capi.KindDouble}
}
func Obj(ref capi.Ref) Arg {
	return Arg{Value: capi.Value{Kind: capi.KindObject, Object: ref}, Kind: capi.KindObject}
}

// checkArgs validates args against params per spec §4.5 step 2, returning
// *InvalidArgListError without making any JNI call on mismatch.
func checkArgs(s sig.MethodSignature, args []Arg) error {
	if len(args) != len(s.Params) {
		return &InvalidArgListError{Signature: s, Reason: fmt.Sprintf("expected %d argument(s), got %d", len(s.Params), len(args))}
	}
	for i, a := range args {
		want := s.Params[i].Kind
		if a.Kind != want {
			return &InvalidArgListError{Signature: s, Reason: fmt.Sprintf("argument %d: expected kind %q, got %q", i, want, a.Kind)}
		}
	}
	return nil
}

func argValues(args []Arg) []capi.Value {
	out := make([]capi.Value, len(args))
	for i, a := range args {
		out[i] = a.Value
	}
	return out
}

// CallMethod dispatches a checked instance method call, resolving the
// return-type-specific JNI entry from desc.Sig.ReturnType.Kind.
func CallMethod(env *jnienv.Env, recv capi.Ref, desc MethodDesc, args []Arg) (capi.Value, error) {
	if recv == 0 {
		return capi.Value{}, jnienv.ErrNullPtr
	}
	if err := checkArgs(desc.Sig, args); err != nil {
		return capi.Value{}, err
	}
	if desc.Sig.ReturnType.Kind == capi.KindVoid {
		capi.CallVoidMethod(env.Raw(), recv, desc.ID, argValues(args))
		return capi.Value{}, checkJavaException(env)
	}
	v := capi.CallMethod(env.Raw(), desc.Sig.ReturnType.Kind, recv, desc.ID, argValues(args))
	return v, checkJavaException(env)
}

// CallStaticMethod dispatches a checked static method call.
func CallStaticMethod(env *jnienv.Env, clazz capi.Ref, desc MethodDesc, args []Arg) (capi.Value, error) {
	if err := checkArgs(desc.Sig, args); err != nil {
		return capi.Value{}, err
	}
	if desc.Sig.ReturnType.Kind == capi.KindVoid {
		capi.CallStaticVoidMethod(env.Raw(), clazz, desc.ID, argValues(args))
		return capi.Value{}, checkJavaException(env)
	}
	v := capi.CallStaticMethod(env.Raw(), desc.Sig.ReturnType.Kind, clazz, desc.ID, argValues(args))
	return v, checkJavaException(env)
}

// NewObject constructs a new instance via a constructor descriptor.
// desc.Sig.ReturnType must be void (JNI constructors are declared "(...)V"
// even though NewObjectA itself returns the constructed instance).
func NewObject(env *jnienv.Env, clazz capi.Ref, desc MethodDesc, args []Arg) (capi.Ref, error) {
	if desc.Sig.ReturnType.Kind != capi.KindVoid {
		return 0, ErrInvalidCtorReturn
	}
	if err := checkArgs(desc.Sig, args); err != nil {
		return 0, err
	}
	ref, err := env.NewObject(clazz, desc.ID, argValues(args))
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// checkJavaException is jnienv's pending-exception check, reapplied here
// since a dispatched call's return value is meaningless once an
// exception is pending.
func checkJavaException(env *jnienv.Env) error {
	if !capi.ExceptionCheck(env.Raw()) {
		return nil
	}
	return &jnienv.JavaException{Throwable: capi.ExceptionOccurred(env.Raw())}
}
