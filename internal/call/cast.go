package call

import (
	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/refs"
)

// Cast narrows any Reference to a concrete typed wrapper, running an
// IsInstanceOf check against want's resolved Global[JClass] (cached via
// refs.DefaultClassCache). On success build constructs the typed wrapper
// from the checked reference; on failure Cast returns
// jnienv.ErrWrongObjectType and never calls build.
func Cast[T refs.Reference](env *jnienv.Env, obj capi.Ref, want string, build func(capi.Ref) T) (T, error) {
	var zero T
	clazz, err := refs.DefaultClassCache.ResolveClass(env, want)
	if err != nil {
		return zero, err
	}
	checked, err := env.AsCast(obj, clazz)
	if err != nil {
		return zero, err
	}
	return build(checked), nil
}

// IsInstanceOf is the raw runtime type test underlying Cast, exposed
// directly for callers that only need the boolean (spec §3's "downcasting
// is a runtime IsInstanceOf check").
func IsInstanceOf(env *jnienv.Env, obj capi.Ref, className string) (bool, error) {
	clazz, err := refs.DefaultClassCache.ResolveClass(env, className)
	if err != nil {
		return false, err
	}
	return env.IsInstanceOf(obj, clazz), nil
}
