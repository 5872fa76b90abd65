// Package jnienv is the typed front door to every JNI operation: it wraps
// internal/capi calls with exception-channel checking and translates a
// pending Java exception into a Go error without ever losing the thrown
// object.
package jnienv

import (
	"errors"
	"fmt"

	"github.com/galago-jni/jni/internal/capi"
)

// Errors returned by Env operations, matching spec §4.3's surfacing policy.
var (
	ErrNullPtr        = errors.New("jnienv: null receiver")
	ErrWrongObjectType = errors.New("jnienv: object is not an instance of the expected class")
)

// JavaException wraps a pending Java exception. The thrown object remains
// a valid local reference (Ref) until the caller explicitly clears it via
// env.ExceptionClear or promotes it elsewhere.
type JavaException struct {
	Throwable capi.Ref
}

func (e *JavaException) Error() string {
	return fmt.Sprintf("jnienv: pending Java exception (throwable=%#x)", uintptr(e.Throwable))
}

// Env is a thin, exception-checking façade over a raw capi.Env. Env
// carries no lifetime or frame token, so nothing in the types keeps a
// local reference from escaping its frame; internal/frame only pushes
// and pops a frame around a function.
type Env struct {
	raw capi.Env
}

// Wrap adapts a raw capi.Env, typically one handed to a native method by
// the JVM or returned by internal/attach, into the checked façade.
func Wrap(raw capi.Env) *Env {
	return &Env{raw: raw}
}

// Raw exposes the underlying capi.Env for packages that must drop below
// this façade (internal/frame, internal/call).
func (e *Env) Raw() capi.Env {
	return e.raw
}

// checkException inspects the pending-exception channel after a call that
// can throw, returning a *JavaException if one is pending. The exception
// is left in place; callers decide whether and when to clear it.
func (e *Env) checkException() error {
	if !capi.ExceptionCheck(e.raw) {
		return nil
	}
	return &JavaException{Throwable: capi.ExceptionOccurred(e.raw)}
}

// FindClass resolves a class by internal name ("java/lang/String").
func (e *Env) FindClass(name string) (capi.Ref, error) {
	ref := capi.FindClass(e.raw, name)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return ref, nil
}

// GetObjectClass returns obj's runtime class. obj must not be the null
// reference.
func (e *Env) GetObjectClass(obj capi.Ref) (capi.Ref, error) {
	if obj == 0 {
		return 0, ErrNullPtr
	}
	return capi.GetObjectClass(e.raw, obj), nil
}

// IsInstanceOf reports whether obj is an instance of clazz.
func (e *Env) IsInstanceOf(obj, clazz capi.Ref) bool {
	return capi.IsInstanceOf(e.raw, obj, clazz)
}

// IsSameObject reports reference identity, following JNI's null-safe rule
// that two null references are the same object.
func (e *Env) IsSameObject(a, b capi.Ref) bool {
	return capi.IsSameObject(e.raw, a, b)
}

// GetMethodID resolves an instance method id, caching is the caller's
// (internal/call's MemberCache) responsibility.
func (e *Env) GetMethodID(clazz capi.Ref, name, sig string) (capi.MethodID, error) {
	id := capi.GetMethodID(e.raw, clazz, name, sig)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetStaticMethodID resolves a static method id.
func (e *Env) GetStaticMethodID(clazz capi.Ref, name, sig string) (capi.MethodID, error) {
	id := capi.GetStaticMethodID(e.raw, clazz, name, sig)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetFieldID resolves an instance field id.
func (e *Env) GetFieldID(clazz capi.Ref, name, sig string) (capi.FieldID, error) {
	id := capi.GetFieldID(e.raw, clazz, name, sig)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetStaticFieldID resolves a static field id.
func (e *Env) GetStaticFieldID(clazz capi.Ref, name, sig string) (capi.FieldID, error) {
	id := capi.GetStaticFieldID(e.raw, clazz, name, sig)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return id, nil
}

// NewObject constructs a new instance via constructor id m.
func (e *Env) NewObject(clazz capi.Ref, m capi.MethodID, args []capi.Value) (capi.Ref, error) {
	ref := capi.NewObjectA(e.raw, clazz, m, args)
	if err := e.checkException(); err != nil {
		return 0, err
	}
	return ref, nil
}

// NewGlobalRef promotes obj to a global reference.
func (e *Env) NewGlobalRef(obj capi.Ref) capi.Ref {
	return capi.NewGlobalRef(e.raw, obj)
}

// DeleteGlobalRef releases a global reference.
func (e *Env) DeleteGlobalRef(obj capi.Ref) {
	capi.DeleteGlobalRef(e.raw, obj)
}

// NewWeakGlobalRef creates a weak global reference.
func (e *Env) NewWeakGlobalRef(obj capi.Ref) capi.Ref {
	return capi.NewWeakGlobalRef(e.raw, obj)
}

// DeleteWeakGlobalRef releases a weak global reference.
func (e *Env) DeleteWeakGlobalRef(obj capi.Ref) {
	capi.DeleteWeakGlobalRef(e.raw, obj)
}

// NewLocalRef creates a new local reference to obj in the current frame.
func (e *Env) NewLocalRef(obj capi.Ref) capi.Ref {
	return capi.NewLocalRef(e.raw, obj)
}

// DeleteLocalRef releases a local reference before its frame pops.
func (e *Env) DeleteLocalRef(obj capi.Ref) {
	capi.DeleteLocalRef(e.raw, obj)
}

// Throw sets obj (a throwable) as the pending exception.
func (e *Env) Throw(obj capi.Ref) error {
	if rc := capi.Throw(e.raw, obj); rc != capi.OK {
		return fmt.Errorf("jnienv: Throw failed: rc=%d", rc)
	}
	return nil
}

// ThrowNew constructs and throws an exception of clazz with msg.
func (e *Env) ThrowNew(clazz capi.Ref, msg string) error {
	if rc := capi.ThrowNew(e.raw, clazz, msg); rc != capi.OK {
		return fmt.Errorf("jnienv: ThrowNew failed: rc=%d", rc)
	}
	return nil
}

// ExceptionClear clears any pending exception.
func (e *Env) ExceptionClear() {
	capi.ExceptionClear(e.raw)
}

// ExceptionDescribe prints the pending exception's stack trace to stderr,
// JVM-side. Diagnostic use only.
func (e *Env) ExceptionDescribe() {
	capi.ExceptionDescribe(e.raw)
}

// AsCast checks obj against clazz's runtime type, returning
// ErrWrongObjectType on mismatch without making any further JNI calls.
func (e *Env) AsCast(obj, clazz capi.Ref) (capi.Ref, error) {
	if obj == 0 {
		return 0, ErrNullPtr
	}
	if !e.IsInstanceOf(obj, clazz) {
		return 0, ErrWrongObjectType
	}
	return obj, nil
}

// CastLocal is AsCast followed by NewLocalRef, yielding an independent
// local reference in the current frame.
func (e *Env) CastLocal(obj, clazz capi.Ref) (capi.Ref, error) {
	checked, err := e.AsCast(obj, clazz)
	if err != nil {
		return 0, err
	}
	return e.NewLocalRef(checked), nil
}

// CastGlobal is AsCast followed by NewGlobalRef.
func (e *Env) CastGlobal(obj, clazz capi.Ref) (capi.Ref, error) {
	checked, err := e.AsCast(obj, clazz)
	if err != nil {
		return 0, err
	}
	return e.NewGlobalRef(checked), nil
}
