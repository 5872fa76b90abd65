// Package attach is the Attachment Manager: it guarantees every use of an
// Env happens on a thread attached to the VM, that detach happens exactly
// once per scoped attach, and that detach never races a live AttachGuard.
package attach

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnilog"
)

// State is a thread's attachment state.
type State int

const (
	Unattached State = iota
	AttachedScoped
	AttachedPermanent
)

func (s State) String() string {
	switch s {
	case Unattached:
		return "unattached"
	case AttachedScoped:
		return "attached-scoped"
	case AttachedPermanent:
		return "attached-permanent"
	default:
		return "unknown"
	}
}

// ErrThreadAttachmentGuarded is returned by DetachCurrentThread when the
// guard count for the calling thread is not zero.
var ErrThreadAttachmentGuarded = errors.New("attach: thread has a live AttachGuard")

// Config mirrors the args passed to the JNI attach primitive.
type Config struct {
	Version int32
	Name    string
	Group   capi.Ref
}

type threadState struct {
	mu         sync.Mutex
	state      State
	guardCount int32
	env        capi.Env
}

// Manager owns the per-thread attachment bookkeeping for one VM.
type Manager struct {
	vmHandle capi.VM

	mu      sync.Mutex
	threads map[uint64]*threadState

	attachedCount int64
}

// NewManager creates an Attachment Manager bound to the given VM handle.
func NewManager(vmHandle capi.VM) *Manager {
	return &Manager{
		vmHandle: vmHandle,
		threads:  make(map[uint64]*threadState),
	}
}

// AttachGuard is a scoped, nestable proof that the current thread is
// attached. Its Env is only valid for as long as the guard (or an
// enclosing guard on the same thread) is alive.
type AttachGuard struct {
	mgr    *Manager
	tid    uint64
	ts     *threadState
	id     string
	closed bool
}

// Env returns the attached Env. Valid only until Close.
func (g *AttachGuard) Env() capi.Env {
	return g.ts.env
}

// Close decrements the guard count, detaching the thread if this was the
// outermost guard and the attachment was scoped (not permanent).
func (g *AttachGuard) Close() {
	if g.closed {
		return
	}
	g.closed = true

	g.ts.mu.Lock()
	g.ts.guardCount--
	remaining := g.ts.guardCount
	st := g.ts.state
	g.ts.mu.Unlock()

	if jnilog.L != nil {
		jnilog.L.JNICall(g.tid, "attach", "guard-close", fmt.Sprintf("id=%s remaining=%d", g.id, remaining))
	}

	if remaining == 0 && st == AttachedScoped {
		g.mgr.detachThread(g.tid, g.ts)
	}
}

// AttachCurrentThread attaches the calling thread (bumping the guard count
// if already attached) and runs f with the resulting Env, detaching again
// on return if this was the outermost scoped attach. The closure's result
// is returned to the caller.
func AttachCurrentThread[R any](mgr *Manager, cfg Config, f func(env capi.Env) R) R {
	guard := mgr.attach(cfg)
	defer guard.Close()
	return f(guard.Env())
}

func (m *Manager) attach(cfg Config) *AttachGuard {
	tid := currentThreadID()

	m.mu.Lock()
	ts, ok := m.threads[tid]
	if !ok {
		ts = &threadState{}
		m.threads[tid] = ts
	}
	m.mu.Unlock()

	ts.mu.Lock()
	if ts.state == Unattached {
		env, rc := capi.AttachCurrentThread(m.vmHandle, capi.AttachArgs{
			Version: cfg.Version,
			Name:    cfg.Name,
			Group:   cfg.Group,
		})
		if rc != capi.OK {
			ts.mu.Unlock()
			panic(fmt.Sprintf("attach: AttachCurrentThread failed: rc=%d", rc))
		}
		ts.env = env
		ts.state = AttachedScoped
		atomic.AddInt64(&m.attachedCount, 1)
		installThreadCleanup(m, tid, ts)
		if jnilog.L != nil {
			jnilog.L.Attach(tid, Unattached.String(), AttachedScoped.String())
		}
	}
	ts.guardCount++
	ts.mu.Unlock()

	return &AttachGuard{mgr: m, tid: tid, ts: ts, id: uuid.NewString()[:8]}
}

// AttachFromNative adopts the current thread as AttachedPermanent, using
// the Env the JVM itself handed to a native-method entry point (spec
// §3's EnvUnowned case): the JVM attached this thread before calling in,
// so native code must never detach it. Guard counting still applies —
// closing the outermost guard here is a no-op rather than a detach,
// exactly as for any other AttachedPermanent thread.
func (m *Manager) AttachFromNative(env capi.Env) *AttachGuard {
	tid := currentThreadID()

	m.mu.Lock()
	ts, ok := m.threads[tid]
	if !ok {
		ts = &threadState{}
		m.threads[tid] = ts
	}
	m.mu.Unlock()

	ts.mu.Lock()
	if ts.state == Unattached {
		ts.env = env
		ts.state = AttachedPermanent
		atomic.AddInt64(&m.attachedCount, 1)
		if jnilog.L != nil {
			jnilog.L.Attach(tid, Unattached.String(), AttachedPermanent.String())
		}
	}
	ts.guardCount++
	ts.mu.Unlock()

	return &AttachGuard{mgr: m, tid: tid, ts: ts, id: uuid.NewString()[:8]}
}

// DetachCurrentThread detaches the calling thread. Requires guard count 0;
// returns ErrThreadAttachmentGuarded otherwise. No-op if the thread is
// already unattached or permanently attached.
func (m *Manager) DetachCurrentThread() error {
	tid := currentThreadID()

	m.mu.Lock()
	ts, ok := m.threads[tid]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	ts.mu.Lock()
	if ts.state != AttachedScoped {
		ts.mu.Unlock()
		return nil
	}
	if ts.guardCount > 0 {
		ts.mu.Unlock()
		return ErrThreadAttachmentGuarded
	}
	ts.mu.Unlock()

	m.detachThread(tid, ts)
	return nil
}

func (m *Manager) detachThread(tid uint64, ts *threadState) {
	ts.mu.Lock()
	if ts.state != AttachedScoped {
		ts.mu.Unlock()
		return
	}
	rc := capi.DetachCurrentThread(m.vmHandle)
	ts.state = Unattached
	ts.env = 0
	ts.mu.Unlock()

	if rc == capi.OK {
		atomic.AddInt64(&m.attachedCount, -1)
	}
	if jnilog.L != nil {
		jnilog.L.Attach(tid, AttachedScoped.String(), Unattached.String())
	}
	clearThreadCleanup(tid)
}

// ThreadsAttached is a debug counter of currently attached threads.
func (m *Manager) ThreadsAttached() int64 {
	return atomic.LoadInt64(&m.attachedCount)
}

// guardedDetach is invoked by the platform-specific cleanup hook (TLS
// destructor on Unix, FLS callback on Windows). It must never block and
// must abort rather than silently leak if a guard is still outstanding:
// that indicates a fiber/longjmp misuse the spec calls out explicitly.
func guardedDetach(m *Manager, tid uint64, ts *threadState) {
	ts.mu.Lock()
	count := ts.guardCount
	state := ts.state
	ts.mu.Unlock()

	if count > 0 {
		panic(fmt.Sprintf("attach: thread %d exiting with %d live AttachGuard(s); "+
			"this indicates a fiber or longjmp crossing an attach scope", tid, count))
	}
	if state == AttachedScoped {
		m.detachThread(tid, ts)
	}
}
