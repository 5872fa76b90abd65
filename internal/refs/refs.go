// Package refs implements the JNI reference-ownership taxonomy: Local,
// Global, Weak, Auto, and Unowned wrappers over a capi.Ref, plus the
// Reference capability every typed Java wrapper (JObject, JClass, JString,
// ...) satisfies.
package refs

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
)

// Reference is the capability every concrete Java-type wrapper satisfies:
// its JVM class name and its raw reference.
type Reference interface {
	// ClassName returns the JVM internal class name ("java/lang/String").
	ClassName() string
	// Raw returns the underlying reference.
	Raw() capi.Ref
}

// Local owns a local reference, confined to the frame it was created in.
// Nothing enforces that structurally (Go has no borrow checker):
// NewLocal can be called anywhere, and internal/frame only pushes and
// pops a frame around a function without creating or tracking Locals.
type Local[T Reference] struct {
	env *jnienv.Env
	ref capi.Ref
}

// NewLocal wraps an already-obtained local reference.
func NewLocal[T Reference](env *jnienv.Env, ref capi.Ref) Local[T] {
	return Local[T]{env: env, ref: ref}
}

// Raw returns the underlying local reference.
func (l Local[T]) Raw() capi.Ref { return l.ref }

// Delete releases the local reference immediately instead of waiting for
// its frame to pop.
func (l Local[T]) Delete() {
	if l.ref != 0 {
		l.env.DeleteLocalRef(l.ref)
	}
}

// ToGlobal promotes this local reference to an independently-owned Global.
func (l Local[T]) ToGlobal() Global[T] {
	return Global[T]{ref: l.env.NewGlobalRef(l.ref)}
}

// Global owns a global reference: valid across threads and frames until
// explicitly released. Global is Send+Sync-equivalent in Go terms because
// a capi.Ref is a plain integer handle, not a pointer into Go memory.
type Global[T Reference] struct {
	ref capi.Ref
}

// NewGlobal wraps an already-obtained global reference.
func NewGlobal[T Reference](ref capi.Ref) Global[T] {
	return Global[T]{ref: ref}
}

// Raw returns the underlying global reference.
func (g Global[T]) Raw() capi.Ref { return g.ref }

// Release deletes the global reference. Must be called exactly once.
func (g Global[T]) Release(env *jnienv.Env) {
	if g.ref != 0 {
		env.DeleteGlobalRef(g.ref)
	}
}

// Local produces a new local reference to the same object in the current
// frame, e.g. to pass to a JNI call that only accepts local references.
func (g Global[T]) Local(env *jnienv.Env) Local[T] {
	return Local[T]{env: env, ref: env.NewLocalRef(g.ref)}
}

// Weak owns a weak global reference: it does not keep the referent alive.
type Weak[T Reference] struct {
	ref capi.Ref
}

// NewWeak wraps an already-obtained weak global reference.
func NewWeak[T Reference](ref capi.Ref) Weak[T] {
	return Weak[T]{ref: ref}
}

// Release deletes the weak global reference.
func (w Weak[T]) Release(env *jnienv.Env) {
	if w.ref != 0 {
		env.DeleteWeakGlobalRef(w.ref)
	}
}

// Upgrade attempts to produce a strong Local reference, returning ok=false
// if the referent has already been collected.
func (w Weak[T]) Upgrade(env *jnienv.Env) (local Local[T], ok bool) {
	if w.ref == 0 {
		return Local[T]{}, false
	}
	newRef := env.NewLocalRef(w.ref)
	if newRef == 0 {
		return Local[T]{}, false
	}
	return Local[T]{env: env, ref: newRef}, true
}

// UpgradeGlobal is Upgrade but produces an independently-owned Global.
func (w Weak[T]) UpgradeGlobal(env *jnienv.Env) (global Global[T], ok bool) {
	local, ok := w.Upgrade(env)
	if !ok {
		return Global[T]{}, false
	}
	defer local.Delete()
	return local.ToGlobal(), true
}

// Auto eagerly deletes its local reference when Close is called, meant
// for loops producing many short-lived temporaries where waiting for the
// enclosing frame to pop would exhaust local-reference capacity.
type Auto[T Reference] struct {
	env    *jnienv.Env
	ref    capi.Ref
	closed bool
}

// NewAuto wraps a local reference for eager, explicit cleanup.
func NewAuto[T Reference](env *jnienv.Env, ref capi.Ref) *Auto[T] {
	return &Auto[T]{env: env, ref: ref}
}

// Raw returns the underlying reference. Invalid after Close.
func (a *Auto[T]) Raw() capi.Ref { return a.ref }

// Close deletes the local reference. Safe to call more than once.
func (a *Auto[T]) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.ref != 0 {
		a.env.DeleteLocalRef(a.ref)
	}
}

// Unowned is a borrow-only view over a reference this package does not own
// the lifetime of — typically a native method's incoming arguments, which
// the JVM itself owns for the duration of the call.
type Unowned[T Reference] struct {
	ref capi.Ref
}

// NewUnowned wraps a reference this package must not delete.
func NewUnowned[T Reference](ref capi.Ref) Unowned[T] {
	return Unowned[T]{ref: ref}
}

// Raw returns the underlying reference.
func (u Unowned[T]) Raw() capi.Ref { return u.ref }

// classCache caches a class's resolved Global[JClass] exactly once per
// class name for the life of the cache; concurrent first-time resolutions for
// the same class collapse into a single FindClass + NewGlobalRef via
// singleflight, matching the "first writer wins" id-cache rule.
type classCache struct {
	group singleflight.Group
	cache sync.Map // class name -> capi.Ref (global)
}

// ResolveClass returns the cached Global[JClass] for name, resolving it
// via FindClass on first use.
func (c *classCache) ResolveClass(env *jnienv.Env, name string) (capi.Ref, error) {
	if v, ok := c.cache.Load(name); ok {
		return v.(capi.Ref), nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		if v, ok := c.cache.Load(name); ok {
			return v.(capi.Ref), nil
		}
		local, err := env.FindClass(name)
		if err != nil {
			return capi.Ref(0), err
		}
		global := env.NewGlobalRef(local)
		env.DeleteLocalRef(local)
		actual, loaded := c.cache.LoadOrStore(name, global)
		if loaded {
			// Another goroutine's singleflight.Do call lost the race to
			// store first; release our redundant global ref.
			env.DeleteGlobalRef(global)
			return actual, nil
		}
		return global, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(capi.Ref), nil
}

// DefaultClassCache is the process-wide class cache shared by generated
// bindings' jni_init thunks.
var DefaultClassCache = &classCache{}
