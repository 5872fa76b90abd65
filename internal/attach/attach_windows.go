//go:build windows

package attach

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// currentThreadID returns the current OS thread id. Windows fibers can
// share an OS thread, which is exactly why the cleanup hook below uses
// Fiber-Local Storage rather than a thread-keyed destructor: multiple
// fibers on one thread must each get their own slot.
func currentThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

var (
	flsMu    sync.Mutex
	flsIndex uint32
	flsOnce  sync.Once

	// fiberEntries tracks which fiber-local slots have already bumped the
	// attached-thread counter, per spec §4.2: "only the first [fiber]
	// bumps the attached threads counter".
	fiberEntries = make(map[uintptr]*fiberCleanup)
)

type fiberCleanup struct {
	mgr *Manager
	tid uint64
	ts  *threadState
}

func flsCallback(param uintptr) uintptr {
	flsMu.Lock()
	entry, ok := fiberEntries[param]
	if ok {
		delete(fiberEntries, param)
	}
	flsMu.Unlock()

	if !ok {
		return 0
	}
	// Must not block and must not touch the loader lock; guardedDetach
	// only panics (fatal, per spec) or calls DetachCurrentThread, neither
	// of which takes the loader lock.
	guardedDetach(entry.mgr, entry.tid, entry.ts)
	return 0
}

func ensureFlsIndex() uint32 {
	flsOnce.Do(func() {
		idx, err := windows.FlsAlloc(windows.NewCallback(flsCallback))
		if err != nil {
			panic("attach: FlsAlloc failed: " + err.Error())
		}
		flsIndex = idx
	})
	return flsIndex
}

// fiberTokens maps a fiber's currentThreadID to the token pointer it was
// last registered under, so an explicit detach can clear the same slot the
// callback would otherwise act on.
var (
	fiberTokensMu sync.Mutex
	fiberTokens   = make(map[uint64]*byte)
)

func installThreadCleanup(m *Manager, tid uint64, ts *threadState) {
	idx := ensureFlsIndex()
	token := new(byte) // unique per-fiber identity; the FLS value itself

	flsMu.Lock()
	fiberEntries[uintptr(unsafe.Pointer(token))] = &fiberCleanup{mgr: m, tid: tid, ts: ts}
	flsMu.Unlock()

	fiberTokensMu.Lock()
	fiberTokens[tid] = token
	fiberTokensMu.Unlock()

	if err := windows.FlsSetValue(idx, token); err != nil {
		panic("attach: FlsSetValue failed: " + err.Error())
	}
}

func clearThreadCleanup(tid uint64) {
	fiberTokensMu.Lock()
	token, ok := fiberTokens[tid]
	delete(fiberTokens, tid)
	fiberTokensMu.Unlock()
	if !ok {
		return
	}

	flsMu.Lock()
	delete(fiberEntries, uintptr(unsafe.Pointer(token)))
	flsMu.Unlock()

	// Clear this fiber's slot so its eventual termination callback (if the
	// fiber itself is later destroyed without another explicit detach) is
	// a no-op, per spec §4.2.
	idx := ensureFlsIndex()
	_ = windows.FlsSetValue(idx, nil)
}
