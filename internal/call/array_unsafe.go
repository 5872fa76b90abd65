package call

import (
	"unsafe"

	"github.com/galago-jni/jni/internal/capi"
)

// unsafeIndex reads the i'th element of a pinned array's backing buffer,
// reinterpreted as a slice of T. The caller is responsible for matching T
// to the array's actual primitive kind; GetInt/SetInt are the only typed
// accessors this package exposes today, matching the teacher's habit of
// adding accessors as call sites need them rather than generating all
// eight up front.
func unsafeIndex[T any](p capi.PinnedArray, i int32) T {
	slice := unsafe.Slice((*T)(p.Addr), p.Len)
	return slice[i]
}

func unsafeIndexSet[T any](p capi.PinnedArray, i int32, v T) {
	slice := unsafe.Slice((*T)(p.Addr), p.Len)
	slice[i] = v
}
