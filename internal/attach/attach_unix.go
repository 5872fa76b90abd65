//go:build !windows

package attach

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	sentinelMu sync.Mutex
	sentinels  = make(map[uint64]*sentinel)
)

// currentThreadID returns the OS thread id of the calling goroutine's
// current carrier thread. Pairing this with runtime.LockOSThread at
// attach time is what lets detach run on the same OS thread that attached,
// matching the JNI requirement that attach/detach happen on the same
// pthread.
func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}

// sentinel stands in for a pthread TLS destructor. Real pthread_key_create
// destructors are a libc feature with no direct Go binding outside cgo;
// runtime.SetFinalizer on a value allocated at attach time and freed when
// the attaching goroutine (and the OS thread runtime.LockOSThread pinned
// it to) is done serves the same purpose for the scoped-attach case this
// bridge cares about: "the thread went away without an explicit detach".
type sentinel struct {
	mgr *Manager
	tid uint64
	ts  *threadState
}

func installThreadCleanup(m *Manager, tid uint64, ts *threadState) {
	s := &sentinel{mgr: m, tid: tid, ts: ts}
	runtime.SetFinalizer(s, func(s *sentinel) {
		guardedDetach(s.mgr, s.tid, s.ts)
	})
	sentinelMu.Lock()
	sentinels[tid] = s
	sentinelMu.Unlock()
}

func clearThreadCleanup(tid uint64) {
	sentinelMu.Lock()
	s, ok := sentinels[tid]
	delete(sentinels, tid)
	sentinelMu.Unlock()
	if ok {
		runtime.SetFinalizer(s, nil)
	}
}
