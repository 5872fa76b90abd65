package envelope

import (
	"fmt"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/jnilog"
)

// ErrorPolicy collapses an Outcome[T] into the RawReturn a native method
// must hand back to the JVM, plus whatever side effect (throw, log) the
// policy implements. Every method is also the fallback handler for a
// *secondary* failure inside the primary one (spec §4.6 step 4): an
// ErrorPolicy must never itself let an error or panic escape.
type ErrorPolicy[T any] interface {
	// OnError converts a native Err outcome into the declared return
	// value, optionally throwing into env.
	OnError(env *jnienv.Env, methodName string, err error) T
	// OnPanic converts a recovered panic payload into the declared
	// return value.
	OnPanic(env *jnienv.Env, methodName string, payload any) T
	// OnInternalJNIError handles a JNI error raised *while* OnError or
	// OnPanic was running (e.g. ThrowNew itself failing).
	OnInternalJNIError(methodName string, err error) T
	// OnInternalPanic handles a panic raised *while* OnError or OnPanic
	// was running.
	OnInternalPanic(methodName string, payload any) T
}

// ThrowRuntimeExAndDefault throws java.lang.RuntimeException with the
// error/panic message, unless an exception is already pending, and
// returns the zero value of T (spec §4.6's default policy).
type ThrowRuntimeExAndDefault[T any] struct{}

func (p ThrowRuntimeExAndDefault[T]) OnError(env *jnienv.Env, methodName string, err error) T {
	if terr := throwIfNotPending(env, err.Error()); terr != nil {
		return p.OnInternalJNIError(methodName, terr)
	}
	var zero T
	return zero
}

func (p ThrowRuntimeExAndDefault[T]) OnPanic(env *jnienv.Env, methodName string, payload any) T {
	if terr := throwIfNotPending(env, fmt.Sprintf("panic in native method %s: %v", methodName, payload)); terr != nil {
		return p.OnInternalJNIError(methodName, terr)
	}
	var zero T
	return zero
}

func (ThrowRuntimeExAndDefault[T]) OnInternalJNIError(methodName string, err error) T {
	logSecondary(methodName, "jni-error", err)
	var zero T
	return zero
}

func (ThrowRuntimeExAndDefault[T]) OnInternalPanic(methodName string, payload any) T {
	logSecondary(methodName, "panic", fmt.Errorf("%v", payload))
	var zero T
	return zero
}

func throwIfNotPending(env *jnienv.Env, msg string) error {
	if capi.ExceptionCheck(env.Raw()) {
		return nil
	}
	runtimeExceptionClass, err := env.FindClass("java/lang/RuntimeException")
	if err != nil {
		return err
	}
	return env.ThrowNew(runtimeExceptionClass, msg)
}

// LogErrorAndDefault logs the error/panic via internal/jnilog and returns
// the zero value of T without throwing into the JVM.
type LogErrorAndDefault[T any] struct{}

func (LogErrorAndDefault[T]) OnError(_ *jnienv.Env, methodName string, err error) T {
	if jnilog.L != nil {
		jnilog.L.EnvelopeOutcome(methodName, "err:"+err.Error(), "LogErrorAndDefault")
	}
	var zero T
	return zero
}

func (LogErrorAndDefault[T]) OnPanic(_ *jnienv.Env, methodName string, payload any) T {
	if jnilog.L != nil {
		jnilog.L.EnvelopeOutcome(methodName, fmt.Sprintf("panic:%v", payload), "LogErrorAndDefault")
	}
	var zero T
	return zero
}

func (LogErrorAndDefault[T]) OnInternalJNIError(methodName string, err error) T {
	logSecondary(methodName, "jni-error", err)
	var zero T
	return zero
}

func (LogErrorAndDefault[T]) OnInternalPanic(methodName string, payload any) T {
	logSecondary(methodName, "panic", fmt.Errorf("%v", payload))
	var zero T
	return zero
}

// LogContextErrorAndDefault is LogErrorAndDefault with a caller-supplied
// context string attached to every log line, for policies whose capture
// borrows from the native method's own scope (spec §4.6: "captures that
// borrow from both the native method's scope and the JNI local frame").
type LogContextErrorAndDefault[T any] struct {
	Context string
}

func (p LogContextErrorAndDefault[T]) OnError(_ *jnienv.Env, methodName string, err error) T {
	if jnilog.L != nil {
		jnilog.L.EnvelopeOutcome(methodName, fmt.Sprintf("err:%s ctx:%s", err, p.Context), "LogContextErrorAndDefault")
	}
	var zero T
	return zero
}

func (p LogContextErrorAndDefault[T]) OnPanic(_ *jnienv.Env, methodName string, payload any) T {
	if jnilog.L != nil {
		jnilog.L.EnvelopeOutcome(methodName, fmt.Sprintf("panic:%v ctx:%s", payload, p.Context), "LogContextErrorAndDefault")
	}
	var zero T
	return zero
}

func (p LogContextErrorAndDefault[T]) OnInternalJNIError(methodName string, err error) T {
	logSecondary(methodName, "jni-error ctx:"+p.Context, err)
	var zero T
	return zero
}

func (p LogContextErrorAndDefault[T]) OnInternalPanic(methodName string, payload any) T {
	logSecondary(methodName, "panic ctx:"+p.Context, fmt.Errorf("%v", payload))
	var zero T
	return zero
}

func logSecondary(methodName, kind string, err error) {
	if jnilog.L != nil {
		jnilog.L.EnvelopeOutcome(methodName, "secondary-"+kind+":"+err.Error(), "internal")
	}
}
