package envelope

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/galago-jni/jni/internal/attach"
	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
)

// CheckOnce optionally verifies, on a native method's first invocation
// only, that the registered static/instance flavor matches what the
// generated binding declared (spec §4.6 step 2). The zero value is ready
// to use: its first Run executes the check.
type CheckOnce struct {
	done int32
}

// Run executes check against receiver exactly once across the lifetime
// of this CheckOnce, regardless of how many goroutines race into it
// concurrently (compare-and-swap, "re-run on failure" per spec §5's
// locking discipline: a failed check doesn't poison the latch for a
// retry on the *next* call, only within the same race).
func (c *CheckOnce) Run(check func() error) error {
	if atomic.LoadInt32(&c.done) != 0 {
		return nil
	}
	if !atomic.CompareAndSwapInt32(&c.done, 0, 1) {
		return nil // another goroutine won the race and is running it
	}
	if err := check(); err != nil {
		atomic.StoreInt32(&c.done, 0) // let the next call retry
		return err
	}
	return nil
}

// Options configures one Run invocation.
type Options[T any] struct {
	// MethodName identifies the native method for logging/throw messages.
	MethodName string
	// Policy resolves the Outcome into a RawReturn. Required.
	Policy ErrorPolicy[T]
	// NoCatchUnwind disables panic recovery when set to true (spec:
	// "unless the method is declared catch_unwind = false"). Zero value
	// (false) means catch — Go's zero-value-as-default would invert a
	// CatchUnwind flag, so NoCatchUnwind exists as the opt-out.
	NoCatchUnwind bool
	// FlavorCheck, if non-nil, is run exactly once across this CheckOnce's
	// lifetime before body executes.
	FlavorCheck *CheckOnce
	// VerifyFlavor is the check FlavorCheck.Run executes, when FlavorCheck
	// is non-nil.
	VerifyFlavor func() error
}

// Run is the native-method envelope: it adopts rawEnv as this thread's
// permanent attachment, runs body under panic recovery (unless
// disabled), and collapses the Outcome through opts.Policy. No error or
// panic from body, or from the policy itself, ever escapes Run — the
// JVM always gets back a value of the declared return type.
func Run[T any](mgr *attach.Manager, rawEnv capi.Env, opts Options[T], body func(env *jnienv.Env, this capi.Ref) (T, error), this capi.Ref) (result T) {
	guard := mgr.AttachFromNative(rawEnv)
	defer guard.Close()

	env := jnienv.Wrap(guard.Env())

	if opts.FlavorCheck != nil && opts.VerifyFlavor != nil {
		if err := opts.FlavorCheck.Run(opts.VerifyFlavor); err != nil {
			return resolveError(env, opts, err)
		}
	}

	outcome := invoke(opts.NoCatchUnwind, func() (T, error) { return body(env, this) })

	switch outcome.Variant {
	case VariantOk:
		return outcome.Value
	case VariantErr:
		return resolveError(env, opts, outcome.Err)
	case VariantPanic:
		return resolvePanic(env, opts, outcome.Panic)
	default:
		var zero T
		return zero
	}
}

// invoke runs f, optionally under panic recovery.
func invoke[T any](noCatchUnwind bool, f func() (T, error)) Outcome[T] {
	if noCatchUnwind {
		v, err := f()
		if err != nil {
			return Err[T](err)
		}
		return Ok(v)
	}
	return run(f)
}

// combineForLog merges a primary failure with a secondary one raised
// while handling it, so a report built from the result loses neither
// (spec §4.6 step 4: a policy must never let either failure silently
// vanish).
func combineForLog(primary, secondary error) error {
	return multierr.Append(primary, secondary)
}

// resolveError runs the policy's OnError handler. If the handler itself
// panics, the primary error and the secondary panic are combined so
// OnInternalPanic's report loses neither. A secondary JNI failure that
// the handler sees as an error (e.g. ThrowNew failing) is routed by the
// policy to its OnInternalJNIError instead.
func resolveError[T any](env *jnienv.Env, opts Options[T], err error) (result T) {
	defer func() {
		if r := recover(); r != nil {
			combined := combineForLog(err, fmt.Errorf("secondary panic: %v", r))
			result = opts.Policy.OnInternalPanic(opts.MethodName, combined)
		}
	}()
	result = opts.Policy.OnError(env, opts.MethodName, err)
	return result
}

func resolvePanic[T any](env *jnienv.Env, opts Options[T], payload any) (result T) {
	defer func() {
		if r := recover(); r != nil {
			primary := fmt.Errorf("panic: %v", payload)
			combined := combineForLog(primary, fmt.Errorf("secondary panic: %v", r))
			result = opts.Policy.OnInternalPanic(opts.MethodName, combined)
		}
	}()
	result = opts.Policy.OnPanic(env, opts.MethodName, payload)
	return result
}

