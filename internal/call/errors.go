// Package call implements the Call Surface: checked method/field
// dispatch, array accessors, string conversion, and instance-of casts,
// all built on internal/jnienv + internal/sig. Every entry point here
// validates an argument list against its resolved signature *before*
// making the underlying JNI call, per spec §4.5 step 2.
package call

import (
	"errors"
	"fmt"

	"github.com/galago-jni/jni/internal/sig"
)

// InvalidArgListError reports an argument-count or argument-kind mismatch
// against a resolved signature. The JNI call is never issued when this
// error is returned.
type InvalidArgListError struct {
	Signature sig.MethodSignature
	Reason    string
}

func (e *InvalidArgListError) Error() string {
	if len(e.Signature.Params) == 0 && e.Signature.ReturnType.Kind == 0 {
		return fmt.Sprintf("call: invalid argument list: %s", e.Reason)
	}
	return fmt.Sprintf("call: invalid argument list for %s: %s", e.Signature.Descriptor(), e.Reason)
}

// ErrInvalidCtorReturn is returned when a constructor's resolved
// signature does not return void.
var ErrInvalidCtorReturn = errors.New("call: constructor signature does not return void")

// MethodNotFoundError / FieldNotFoundError report a null id resolved by
// the underlying JNI GetXxxID call with no pending exception, which JNI
// defines as "member does not exist" rather than an exception.
type MethodNotFoundError struct {
	Class, Name, Sig string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("call: method not found: %s.%s%s", e.Class, e.Name, e.Sig)
}

type FieldNotFoundError struct {
	Class, Name, Sig string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("call: field not found: %s.%s %s", e.Class, e.Name, e.Sig)
}

// ErrObjectFreed is returned when promoting a Weak reference whose
// referent has already been collected by the GC.
var ErrObjectFreed = errors.New("call: weak reference's object has been garbage collected")
