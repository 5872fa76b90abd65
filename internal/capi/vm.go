package capi

/*
#include <jni.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// VMOption is a single JavaVMOption (-Xmx512m, -Djava.class.path=..., etc).
type VMOption struct {
	Text      string
	ExtraInfo unsafe.Pointer
}

// CreateArgs mirrors JavaVMInitArgs.
type CreateArgs struct {
	Version            int32
	Options            []VMOption
	IgnoreUnrecognized bool
}

// CreateJavaVM starts an embedded JVM. Returns the VM handle, the JNIEnv
// for the calling (now attached) thread, and a JNI result code.
func CreateJavaVM(args CreateArgs) (VM, Env, int32) {
	cOpts := make([]C.JavaVMOption, len(args.Options))
	cStrs := make([]*C.char, len(args.Options))
	for i, o := range args.Options {
		cStrs[i] = C.CString(o.Text)
		cOpts[i].optionString = cStrs[i]
		cOpts[i].extraInfo = o.ExtraInfo
	}
	defer func() {
		for _, s := range cStrs {
			C.free(unsafe.Pointer(s))
		}
	}()

	var initArgs C.JavaVMInitArgs
	initArgs.version = C.jint(args.Version)
	initArgs.nOptions = C.jint(len(cOpts))
	if len(cOpts) > 0 {
		initArgs.options = &cOpts[0]
	}
	if args.IgnoreUnrecognized {
		initArgs.ignoreUnrecognized = C.JNI_TRUE
	}

	var pvm *C.JavaVM
	var penv *C.JNIEnv
	rc := C.shim_CreateJavaVM(&pvm, &penv, &initArgs)
	return VM(uintptr(unsafe.Pointer(pvm))), Env(uintptr(unsafe.Pointer(penv))), int32(rc)
}

// GetCreatedJavaVMs lists already-running VMs in this process (at most one
// per the JNI spec, but the API is plural).
func GetCreatedJavaVMs(max int32) ([]VM, int32) {
	buf := make([]*C.JavaVM, max)
	var n C.jsize
	var rc C.jint
	if max > 0 {
		rc = C.shim_GetCreatedJavaVMs(&buf[0], C.jsize(max), &n)
	} else {
		rc = C.shim_GetCreatedJavaVMs(nil, 0, &n)
	}
	out := make([]VM, int(n))
	for i := 0; i < int(n); i++ {
		out[i] = VM(uintptr(unsafe.Pointer(buf[i])))
	}
	return out, int32(rc)
}

// DestroyJavaVM shuts the embedded JVM down. Blocks until the last
// non-daemon attached thread detaches.
func DestroyJavaVM(vm VM) int32 {
	return int32(C.shim_DestroyJavaVM(vm.cgo()))
}

// AttachArgs mirrors JavaVMAttachArgs.
type AttachArgs struct {
	Version int32
	Name    string
	Group   Ref
}

// AttachCurrentThread attaches the calling OS thread to the VM, scoped to
// the current call stack (detach leaves no lingering permanent attachment).
func AttachCurrentThread(vm VM, args AttachArgs) (Env, int32) {
	var cName *C.char
	if args.Name != "" {
		cName = C.CString(args.Name)
		defer C.free(unsafe.Pointer(cName))
	}
	var a C.JavaVMAttachArgs
	a.version = C.jint(args.Version)
	a.name = cName
	a.group = args.Group.cgo()

	var penv *C.JNIEnv
	rc := C.shim_AttachCurrentThread(vm.cgo(), &penv, &a)
	return Env(uintptr(unsafe.Pointer(penv))), int32(rc)
}

// AttachCurrentThreadAsDaemon is AttachCurrentThread but the attachment does
// not prevent VM shutdown.
func AttachCurrentThreadAsDaemon(vm VM, args AttachArgs) (Env, int32) {
	var cName *C.char
	if args.Name != "" {
		cName = C.CString(args.Name)
		defer C.free(unsafe.Pointer(cName))
	}
	var a C.JavaVMAttachArgs
	a.version = C.jint(args.Version)
	a.name = cName
	a.group = args.Group.cgo()

	var penv *C.JNIEnv
	rc := C.shim_AttachCurrentThreadAsDaemon(vm.cgo(), &penv, &a)
	return Env(uintptr(unsafe.Pointer(penv))), int32(rc)
}

// DetachCurrentThread detaches the calling thread, invalidating its Env.
func DetachCurrentThread(vm VM) int32 {
	return int32(C.shim_DetachCurrentThread(vm.cgo()))
}

// GetEnv retrieves the Env for the calling thread if already attached.
func GetEnv(vm VM, version int32) (Env, int32) {
	var penv *C.JNIEnv
	rc := C.shim_GetEnv(vm.cgo(), &penv, C.jint(version))
	return Env(uintptr(unsafe.Pointer(penv))), int32(rc)
}

// GetVersion returns the JNI version implemented by env.
func GetVersion(env Env) int32 {
	return int32(C.shim_GetVersion(env.cgo()))
}
