// Package frame implements the Local Frame API: push/pop of the JVM's
// local-reference stack, and RAII-style helpers that guarantee a frame
// pops even when the wrapped function returns an error.
package frame

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/jnilog"
)

// PushLocalFrame reserves capacity new local reference slots. Succeeds
// even with a pending exception. It returns only an error: the short
// debug-correlation id logged for the push is generated internally, and
// only WithLocalFrame and WithLocalFrameReturningLocal pass it on to the
// matching pop.
func PushLocalFrame(env *jnienv.Env, capacity int32) error {
	_, err := pushLocalFrameTraced(env, capacity)
	return err
}

func pushLocalFrameTraced(env *jnienv.Env, capacity int32) (string, error) {
	id := uuid.NewString()[:8]
	if rc := capi.PushLocalFrame(env.Raw(), capacity); rc != capi.OK {
		if jnilog.L != nil {
			jnilog.L.Frame(id, "push-failed", capacity)
		}
		return id, fmt.Errorf("frame: PushLocalFrame(%d) failed: rc=%d", capacity, rc)
	}
	if jnilog.L != nil {
		jnilog.L.Frame(id, "push", capacity)
	}
	return id, nil
}

// PopLocalFrame pops the current frame. If result is non-zero it is
// re-created in the enclosing frame and returned; pops are strictly LIFO
// and a mismatched pop is undefined, exactly as in raw JNI.
func PopLocalFrame(env *jnienv.Env, result capi.Ref) capi.Ref {
	return popLocalFrameTraced(env, result, "")
}

func popLocalFrameTraced(env *jnienv.Env, result capi.Ref, id string) capi.Ref {
	promoted := capi.PopLocalFrame(env.Raw(), result)
	if jnilog.L != nil {
		jnilog.L.Frame(id, "pop", 0)
	}
	return promoted
}

// WithLocalFrame pushes a frame, runs f, and pops the frame whether or not
// f returns an error. f's result is not itself a local reference, so it is
// returned unchanged.
func WithLocalFrame[R any](env *jnienv.Env, capacity int32, f func(*jnienv.Env) (R, error)) (R, error) {
	var zero R
	id, err := pushLocalFrameTraced(env, capacity)
	if err != nil {
		return zero, err
	}
	result, ferr := f(env)
	popLocalFrameTraced(env, 0, id)
	return result, ferr
}

// WithLocalFrameReturningLocal is WithLocalFrame for the common case where
// f itself produces a single local reference that must survive the pop:
// it is promoted into the enclosing frame on success.
func WithLocalFrameReturningLocal(env *jnienv.Env, capacity int32, f func(*jnienv.Env) (capi.Ref, error)) (capi.Ref, error) {
	id, err := pushLocalFrameTraced(env, capacity)
	if err != nil {
		return 0, err
	}
	local, ferr := f(env)
	if ferr != nil {
		popLocalFrameTraced(env, 0, id)
		return 0, ferr
	}
	promoted := popLocalFrameTraced(env, local, id)
	return promoted, nil
}
