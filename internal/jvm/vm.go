// Package jvm owns the process-wide Java VM handle: starting an embedded
// JVM, attaching to one that already exists, and tearing it down.
package jvm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnilog"
)

// Version is a JNI version number, ordered so callers can ask
// "does this VM support at least X".
type Version int32

// Supported JNI versions, matching spec's enumerated {V1.2, V1.4, V1.6, V8}.
const (
	Version1_2 Version = 0x00010002
	Version1_4 Version = 0x00010004
	Version1_6 Version = 0x00010006
	Version8   Version = 0x00010008
)

// AtLeast reports whether v is equal to or newer than other. JNI version
// constants are ordered integers, so this is a plain comparison, but the
// helper documents the intent at call sites that validate a requested
// version against what the running VM actually reports.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}

func (v Version) String() string {
	switch v {
	case Version1_2:
		return "JNI_VERSION_1_2"
	case Version1_4:
		return "JNI_VERSION_1_4"
	case Version1_6:
		return "JNI_VERSION_1_6"
	case Version8:
		return "JNI_VERSION_1_8"
	default:
		return fmt.Sprintf("JNI_VERSION(0x%08x)", uint32(v))
	}
}

// Errors returned by VM operations, matching spec §4.1's failure set.
var (
	ErrJvmAlreadyCreated = errors.New("jvm: a VM has already been created in this process")
	ErrNotSupported      = errors.New("jvm: operation not supported by this JVM")
	ErrNotInitialized    = errors.New("jvm: no VM has been created or attached yet")
)

// OptionEncodingError reports a JVM creation option that could not be
// transcoded to the platform default encoding.
type OptionEncodingError struct {
	Option string
	Reason string
}

func (e *OptionEncodingError) Error() string {
	return fmt.Sprintf("jvm: option %q: %s", e.Option, e.Reason)
}

// droppedOptionNames are silently ignored per spec §4.1: they configure
// behavior this bridge's envelope already owns (panic/abort handling).
var droppedOptionNames = map[string]bool{
	"vfprintf": true,
	"abort":    true,
	"exit":     true,
}

// maxPlatformOptionBytes bounds the transcoded buffer for a single option
// string; 1MiB matches the platform-converter overflow-safety budget spec
// §4.1 calls for.
const maxPlatformOptionBytes = 1 << 20

// CreateArgs mirrors spec §4.1's enumerated create() options.
type CreateArgs struct {
	Version            Version
	IgnoreUnrecognized bool
	Options            []string
}

// VM is the process-wide embedded-or-attached Java VM handle. Exactly one
// VM exists per process; callers obtain it via Create, AttachToExisting,
// or Singleton.
type VM struct {
	handle capi.VM
}

var (
	singletonMu sync.Mutex
	singleton   *VM
)

// Create starts a new embedded JVM with the given options. Fails with
// ErrJvmAlreadyCreated if a VM already exists in this process.
func Create(args CreateArgs) (*VM, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton != nil {
		return nil, ErrJvmAlreadyCreated
	}

	opts := make([]capi.VMOption, 0, len(args.Options))
	for _, raw := range args.Options {
		name := optionName(raw)
		if droppedOptionNames[name] {
			continue
		}
		encoded, err := platformEncode(raw)
		if err != nil {
			return nil, &OptionEncodingError{Option: raw, Reason: err.Error()}
		}
		opts = append(opts, capi.VMOption{Text: encoded})
	}

	createArgs := capi.CreateArgs{
		Version:            int32(args.Version),
		Options:            opts,
		IgnoreUnrecognized: args.IgnoreUnrecognized,
	}

	vmHandle, _, rc := capi.CreateJavaVM(createArgs)
	if rc != capi.OK {
		if rc == capi.ErrEVersion {
			return nil, ErrNotSupported
		}
		return nil, fmt.Errorf("jvm: JNI_CreateJavaVM failed: rc=%d", rc)
	}

	vm := &VM{handle: vmHandle}
	singleton = vm
	if jnilog.L != nil {
		jnilog.L.Attach(0, "none", "vm-created")
	}
	return vm, nil
}

// AttachToExisting binds a VM value to a JVM that is already running in
// this process (the embedding case: the JVM dlopen'd this library and
// called into a native method, rather than this process having started
// the JVM itself).
func AttachToExisting() (*VM, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton != nil {
		return singleton, nil
	}

	vms, rc := capi.GetCreatedJavaVMs(1)
	if rc != capi.OK || len(vms) == 0 {
		return nil, ErrNotInitialized
	}

	vm := &VM{handle: vms[0]}
	singleton = vm
	return vm, nil
}

// Singleton returns the process-wide VM, or ErrNotInitialized if none has
// been created or attached yet.
func Singleton() (*VM, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return nil, ErrNotInitialized
	}
	return singleton, nil
}

// Destroy tears the VM down, blocking until every non-daemon Java thread
// has exited. Fails with ErrNotSupported if the running JVM refuses
// DestroyJavaVM (some embeddings do).
func (vm *VM) Destroy() error {
	rc := capi.DestroyJavaVM(vm.handle)
	if rc != capi.OK {
		return ErrNotSupported
	}
	singletonMu.Lock()
	if singleton == vm {
		singleton = nil
	}
	singletonMu.Unlock()
	return nil
}

// Handle exposes the raw capi.VM for use by internal/attach, which is the
// only other package allowed to reach below the jvm abstraction.
func (vm *VM) Handle() capi.VM {
	return vm.handle
}

func optionName(opt string) string {
	for i, r := range opt {
		if r == '=' || r == ':' {
			return opt[:i]
		}
	}
	return opt
}

// platformEncode transcodes opt to the platform default encoding used by
// the JVM's option-string ABI. Implemented per-platform: see
// vm_unix.go (UTF-8 passthrough) and vm_windows.go (ACP via
// WideCharToMultiByte, bounded to maxPlatformOptionBytes).
