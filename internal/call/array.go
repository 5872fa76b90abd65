package call

import (
	"errors"
	"sync/atomic"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
)

// ErrCriticalSectionHeld is returned by NewArray, NewObjectArray,
// GetArrayRegion and SetArrayRegion while a CriticalArray obtained via
// GetArrayCritical is still held anywhere in the process, since JNI
// forbids re-entering the VM while a critical array is pinned (spec
// §4.5). The package's other calls (method, field, string, object-array
// element, ArrayLength and GetArrayElements) do not check for a held
// critical pin.
var ErrCriticalSectionHeld = errors.New("call: JNI call attempted while a critical array pin is held")

// criticalDepth is a process-wide counter, not per-goroutine: Go
// reschedules goroutines across OS threads, so a per-thread counter
// would not observe the same "thread" JNI's critical-section rule is
// stated against. Treating it as process-wide is conservative (it can
// reject calls a true per-thread rule would allow) and documents the
// chosen overlap rule spec §4.5 leaves to implementer discretion.
var criticalDepth int32

// guardNoCritical fails fast if a critical pin is outstanding anywhere in
// the process, rather than letting the underlying JNI call corrupt state.
func guardNoCritical() error {
	if atomic.LoadInt32(&criticalDepth) > 0 {
		return ErrCriticalSectionHeld
	}
	return nil
}

// NewArray allocates a length-element primitive array.
func NewArray(env *jnienv.Env, kind capi.Kind, length int32) (capi.Ref, error) {
	if err := guardNoCritical(); err != nil {
		return 0, err
	}
	ref := capi.NewPrimitiveArray(env.Raw(), kind, length)
	return ref, nil
}

// NewObjectArray allocates a length-element array of elemClass, each slot
// initialized to init (the null reference is valid).
func NewObjectArray(env *jnienv.Env, length int32, elemClass, init capi.Ref) (capi.Ref, error) {
	if err := guardNoCritical(); err != nil {
		return 0, err
	}
	return capi.NewObjectArray(env.Raw(), length, elemClass, init), nil
}

// ArrayLength returns the element count of any array reference.
func ArrayLength(env *jnienv.Env, a capi.Ref) (int32, error) {
	if a == 0 {
		return 0, jnienv.ErrNullPtr
	}
	return capi.GetArrayLength(env.Raw(), a), nil
}

// GetArrayRegion copies out [start, start+length) of a primitive array.
func GetArrayRegion(env *jnienv.Env, kind capi.Kind, a capi.Ref, start, length int32) ([]capi.Value, error) {
	if a == 0 {
		return nil, jnienv.ErrNullPtr
	}
	if err := guardNoCritical(); err != nil {
		return nil, err
	}
	return capi.GetArrayRegion(env.Raw(), kind, a, start, length), nil
}

// SetArrayRegion writes vals into [start, start+len(vals)) of a
// primitive array.
func SetArrayRegion(env *jnienv.Env, kind capi.Kind, a capi.Ref, start int32, vals []capi.Value) error {
	if a == 0 {
		return jnienv.ErrNullPtr
	}
	if err := guardNoCritical(); err != nil {
		return err
	}
	capi.SetArrayRegion(env.Raw(), kind, a, start, vals)
	return nil
}

// GetObjectArrayElement reads one element as a new local reference.
func GetObjectArrayElement(env *jnienv.Env, a capi.Ref, index int32) (capi.Ref, error) {
	if a == 0 {
		return 0, jnienv.ErrNullPtr
	}
	return capi.GetObjectArrayElement(env.Raw(), a, index), nil
}

// SetObjectArrayElement stores val at index.
func SetObjectArrayElement(env *jnienv.Env, a capi.Ref, index int32, val capi.Ref) error {
	if a == 0 {
		return jnienv.ErrNullPtr
	}
	capi.SetObjectArrayElement(env.Raw(), a, index, val)
	return nil
}

// ReleaseMode mirrors capi.ReleaseMode at the checked surface.
type ReleaseMode = capi.ReleaseMode

const (
	ReleaseDefault  = capi.ReleaseDefault
	ReleaseCopyBack = capi.ReleaseCopyBack
	ReleaseNoCopy   = capi.ReleaseNoCopy
)

// PinnedArray is a non-critical pinned primitive array buffer: it permits
// further JNI calls while held (at the cost of being potentially slower
// on some JVMs than GetArrayCritical), so no ErrCriticalSectionHeld
// guard applies to it. Multiple outstanding PinnedArrays for disjoint
// regions, or for read-only access, are allowed; the caller is
// responsible for not racing writers against the same region, matching
// spec §4.5's "implementer's discretion; document the chosen rule."
type PinnedArray struct {
	raw      capi.PinnedArray
	arrayRef capi.Ref
	env      *jnienv.Env
	released bool
}

// GetArrayElements pins array a's storage and returns it for direct
// access via GetInt/SetInt.
func GetArrayElements(env *jnienv.Env, kind capi.Kind, a capi.Ref) (*PinnedArray, error) {
	if a == 0 {
		return nil, jnienv.ErrNullPtr
	}
	raw := capi.GetArrayElements(env.Raw(), kind, a)
	return &PinnedArray{raw: raw, arrayRef: a, env: env}, nil
}

// Len returns the pinned array's element count.
func (p *PinnedArray) Len() int32 { return p.raw.Len }

// IsCopy reports whether the JVM handed back a copy rather than a direct
// pointer into the heap object.
func (p *PinnedArray) IsCopy() bool { return p.raw.IsCopy }

// GetInt reads the i'th element of an int array pin.
func (p *PinnedArray) GetInt(i int32) int32 {
	return unsafeIndex[int32](p.raw, i)
}

// SetInt writes the i'th element of an int array pin; visible to the
// JVM only once Release commits it.
func (p *PinnedArray) SetInt(i int32, v int32) {
	unsafeIndexSet(p.raw, i, v)
}

// Release releases the pin with the given release mode. Safe to call
// exactly once; a second call is a no-op.
func (p *PinnedArray) Release(mode ReleaseMode) {
	if p.released {
		return
	}
	p.released = true
	capi.ReleaseArrayElements(p.env.Raw(), p.arrayRef, p.raw, mode)
}

// CriticalArray is a GetPrimitiveArrayCritical pin: while held, NewArray,
// NewObjectArray, GetArrayRegion and SetArrayRegion fail with
// ErrCriticalSectionHeld on every goroutine; the package's other calls
// are not guarded (see ErrCriticalSectionHeld).
type CriticalArray struct {
	raw      capi.PinnedArray
	arrayRef capi.Ref
	env      *jnienv.Env
	released bool
}

// GetArrayCritical pins a's storage; until Release, the calls guarded by
// guardNoCritical fail with ErrCriticalSectionHeld.
func GetArrayCritical(env *jnienv.Env, kind capi.Kind, a capi.Ref) (*CriticalArray, error) {
	if a == 0 {
		return nil, jnienv.ErrNullPtr
	}
	raw := capi.GetPrimitiveArrayCritical(env.Raw(), kind, a)
	atomic.AddInt32(&criticalDepth, 1)
	return &CriticalArray{raw: raw, arrayRef: a, env: env}, nil
}

// Len returns the pinned array's element count.
func (p *CriticalArray) Len() int32 { return p.raw.Len }

// Release unpins the array, re-enabling JNI calls.
func (p *CriticalArray) Release(mode ReleaseMode) {
	if p.released {
		return
	}
	p.released = true
	capi.ReleasePrimitiveArrayCritical(p.env.Raw(), p.arrayRef, p.raw, mode)
	atomic.AddInt32(&criticalDepth, -1)
}
