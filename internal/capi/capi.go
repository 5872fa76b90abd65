// Package capi is the opaque C ABI boundary: raw cgo bindings to the JNI
// invocation interface and the per-thread JNIEnv function table. Nothing in
// this package knows about frames, reference lifetimes, or error taxonomies
// — those live in the Go layers above (internal/jvm, internal/jnienv,
// internal/refs, internal/call). capi mirrors jni-sys in the crate this
// bridge is modeled on: an external C ABI, specified only at its interface.
//
// Building against this package requires a JDK: set CGO_CFLAGS to
// "-I$JAVA_HOME/include -I$JAVA_HOME/include/<platform>" and CGO_LDFLAGS to
// "-L$JAVA_HOME/lib/server -ljvm" (or rely on JNI_CreateJavaVM being
// resolved at runtime via dlopen on platforms without a static libjvm).
package capi

/*
#cgo CFLAGS: -I${SRCDIR}/include
#include <jni.h>
#include <stdlib.h>
#include <string.h>

static jint shim_CreateJavaVM(JavaVM **pvm, JNIEnv **penv, JavaVMInitArgs *args) {
	return JNI_CreateJavaVM(pvm, (void **)penv, args);
}

static jint shim_GetCreatedJavaVMs(JavaVM **vmBuf, jsize bufLen, jsize *nVMs) {
	return JNI_GetCreatedJavaVMs(vmBuf, bufLen, nVMs);
}

static jint shim_DestroyJavaVM(JavaVM *vm) {
	return (*vm)->DestroyJavaVM(vm);
}

static jint shim_AttachCurrentThread(JavaVM *vm, JNIEnv **penv, JavaVMAttachArgs *args) {
	return (*vm)->AttachCurrentThread(vm, (void **)penv, args);
}

static jint shim_AttachCurrentThreadAsDaemon(JavaVM *vm, JNIEnv **penv, JavaVMAttachArgs *args) {
	return (*vm)->AttachCurrentThreadAsDaemon(vm, (void **)penv, args);
}

static jint shim_DetachCurrentThread(JavaVM *vm) {
	return (*vm)->DetachCurrentThread(vm);
}

static jint shim_GetEnv(JavaVM *vm, JNIEnv **penv, jint version) {
	return (*vm)->GetEnv(vm, (void **)penv, version);
}

static jint shim_GetVersion(JNIEnv *env) {
	return (*env)->GetVersion(env);
}

static jclass shim_FindClass(JNIEnv *env, const char *name) {
	return (*env)->FindClass(env, name);
}

static jclass shim_GetObjectClass(JNIEnv *env, jobject obj) {
	return (*env)->GetObjectClass(env, obj);
}

static jboolean shim_IsInstanceOf(JNIEnv *env, jobject obj, jclass clazz) {
	return (*env)->IsInstanceOf(env, obj, clazz);
}

static jboolean shim_IsSameObject(JNIEnv *env, jobject a, jobject b) {
	return (*env)->IsSameObject(env, a, b);
}

static jmethodID shim_GetMethodID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetMethodID(env, clazz, name, sig);
}

static jmethodID shim_GetStaticMethodID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetStaticMethodID(env, clazz, name, sig);
}

static jfieldID shim_GetFieldID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetFieldID(env, clazz, name, sig);
}

static jfieldID shim_GetStaticFieldID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetStaticFieldID(env, clazz, name, sig);
}

static jobject shim_NewObjectA(JNIEnv *env, jclass clazz, jmethodID m, const jvalue *args) {
	return (*env)->NewObjectA(env, clazz, m, args);
}

static jobject shim_NewGlobalRef(JNIEnv *env, jobject obj) {
	return (*env)->NewGlobalRef(env, obj);
}

static void shim_DeleteGlobalRef(JNIEnv *env, jobject obj) {
	(*env)->DeleteGlobalRef(env, obj);
}

static jweak shim_NewWeakGlobalRef(JNIEnv *env, jobject obj) {
	return (*env)->NewWeakGlobalRef(env, obj);
}

static void shim_DeleteWeakGlobalRef(JNIEnv *env, jweak obj) {
	(*env)->DeleteWeakGlobalRef(env, obj);
}

static jobject shim_NewLocalRef(JNIEnv *env, jobject obj) {
	return (*env)->NewLocalRef(env, obj);
}

static void shim_DeleteLocalRef(JNIEnv *env, jobject obj) {
	(*env)->DeleteLocalRef(env, obj);
}

static jobjectRefType shim_GetObjectRefType(JNIEnv *env, jobject obj) {
	return (*env)->GetObjectRefType(env, obj);
}

static jint shim_PushLocalFrame(JNIEnv *env, jint capacity) {
	return (*env)->PushLocalFrame(env, capacity);
}

static jobject shim_PopLocalFrame(JNIEnv *env, jobject result) {
	return (*env)->PopLocalFrame(env, result);
}

static jint shim_EnsureLocalCapacity(JNIEnv *env, jint capacity) {
	return (*env)->EnsureLocalCapacity(env, capacity);
}

static jthrowable shim_ExceptionOccurred(JNIEnv *env) {
	return (*env)->ExceptionOccurred(env);
}

static void shim_ExceptionClear(JNIEnv *env) {
	(*env)->ExceptionClear(env);
}

static jboolean shim_ExceptionCheck(JNIEnv *env) {
	return (*env)->ExceptionCheck(env);
}

static void shim_ExceptionDescribe(JNIEnv *env) {
	(*env)->ExceptionDescribe(env);
}

static jint shim_Throw(JNIEnv *env, jthrowable obj) {
	return (*env)->Throw(env, obj);
}

static jint shim_ThrowNew(JNIEnv *env, jclass clazz, const char *msg) {
	return (*env)->ThrowNew(env, clazz, msg);
}

static jint shim_MonitorEnter(JNIEnv *env, jobject obj) {
	return (*env)->MonitorEnter(env, obj);
}

static jint shim_MonitorExit(JNIEnv *env, jobject obj) {
	return (*env)->MonitorExit(env, obj);
}

static jint shim_RegisterNatives(JNIEnv *env, jclass clazz, const JNINativeMethod *methods, jint n) {
	return (*env)->RegisterNatives(env, clazz, methods, n);
}

static jint shim_UnregisterNatives(JNIEnv *env, jclass clazz) {
	return (*env)->UnregisterNatives(env, clazz);
}

static jstring shim_NewStringUTF(JNIEnv *env, const char *utf) {
	return (*env)->NewStringUTF(env, utf);
}

static jsize shim_GetStringUTFLength(JNIEnv *env, jstring s) {
	return (*env)->GetStringUTFLength(env, s);
}

static const char *shim_GetStringUTFChars(JNIEnv *env, jstring s, jboolean *isCopy) {
	return (*env)->GetStringUTFChars(env, s, isCopy);
}

static void shim_ReleaseStringUTFChars(JNIEnv *env, jstring s, const char *chars) {
	(*env)->ReleaseStringUTFChars(env, s, chars);
}

static jsize shim_GetArrayLength(JNIEnv *env, jarray a) {
	return (*env)->GetArrayLength(env, a);
}

static jobjectArray shim_NewObjectArray(JNIEnv *env, jsize len, jclass elemClass, jobject init) {
	return (*env)->NewObjectArray(env, len, elemClass, init);
}

static jobject shim_GetObjectArrayElement(JNIEnv *env, jobjectArray a, jsize idx) {
	return (*env)->GetObjectArrayElement(env, a, idx);
}

static void shim_SetObjectArrayElement(JNIEnv *env, jobjectArray a, jsize idx, jobject val) {
	(*env)->SetObjectArrayElement(env, a, idx, val);
}

static void *shim_NewDirectByteBuffer(JNIEnv *env, void *addr, jlong capacity) {
	return (*env)->NewDirectByteBuffer(env, addr, capacity);
}

static void *shim_GetDirectBufferAddress(JNIEnv *env, jobject buf) {
	return (*env)->GetDirectBufferAddress(env, buf);
}

static jlong shim_GetDirectBufferCapacity(JNIEnv *env, jobject buf) {
	return (*env)->GetDirectBufferCapacity(env, buf);
}

// --- X-macro fan-out for the eight primitive JNI types ----------------
//
// JNI defines a distinct entry point per primitive type for calls, field
// access, array creation/access, and pinned-element access. Real jni.h
// already pays that combinatorial cost; this preamble mirrors it with one
// macro invocation per kind instead of writing ~70 near-identical shims
// by hand.

#define JNI_PRIMITIVE_KINDS(X) \
	X(Boolean, jboolean)       \
	X(Byte, jbyte)             \
	X(Char, jchar)             \
	X(Short, jshort)           \
	X(Int, jint)               \
	X(Long, jlong)             \
	X(Float, jfloat)           \
	X(Double, jdouble)

#define DEFINE_CALL_SHIM(Name, CType) \
static CType shim_Call##Name##MethodA(JNIEnv *env, jobject obj, jmethodID m, const jvalue *args) { \
	return (*env)->Call##Name##MethodA(env, obj, m, args); \
} \
static CType shim_CallStatic##Name##MethodA(JNIEnv *env, jclass clazz, jmethodID m, const jvalue *args) { \
	return (*env)->CallStatic##Name##MethodA(env, clazz, m, args); \
} \
static CType shim_Get##Name##Field(JNIEnv *env, jobject obj, jfieldID f) { \
	return (*env)->Get##Name##Field(env, obj, f); \
} \
static void shim_Set##Name##Field(JNIEnv *env, jobject obj, jfieldID f, CType v) { \
	(*env)->Set##Name##Field(env, obj, f, v); \
} \
static CType shim_GetStatic##Name##Field(JNIEnv *env, jclass clazz, jfieldID f) { \
	return (*env)->GetStatic##Name##Field(env, clazz, f); \
} \
static void shim_SetStatic##Name##Field(JNIEnv *env, jclass clazz, jfieldID f, CType v) { \
	(*env)->SetStatic##Name##Field(env, clazz, f, v); \
} \
static CType##Array shim_New##Name##Array(JNIEnv *env, jsize len) { \
	return (*env)->New##Name##Array(env, len); \
} \
static void shim_Get##Name##ArrayRegion(JNIEnv *env, CType##Array a, jsize start, jsize len, CType *buf) { \
	(*env)->Get##Name##ArrayRegion(env, a, start, len, buf); \
} \
static void shim_Set##Name##ArrayRegion(JNIEnv *env, CType##Array a, jsize start, jsize len, const CType *buf) { \
	(*env)->Set##Name##ArrayRegion(env, a, start, len, buf); \
} \
static CType *shim_Get##Name##ArrayElements(JNIEnv *env, CType##Array a, jboolean *isCopy) { \
	return (*env)->Get##Name##ArrayElements(env, a, isCopy); \
} \
static void shim_Release##Name##ArrayElements(JNIEnv *env, CType##Array a, CType *elems, jint mode) { \
	(*env)->Release##Name##ArrayElements(env, a, elems, mode); \
}

JNI_PRIMITIVE_KINDS(DEFINE_CALL_SHIM)

static void shim_CallVoidMethodA(JNIEnv *env, jobject obj, jmethodID m, const jvalue *args) {
	(*env)->CallVoidMethodA(env, obj, m, args);
}

static void shim_CallStaticVoidMethodA(JNIEnv *env, jclass clazz, jmethodID m, const jvalue *args) {
	(*env)->CallStaticVoidMethodA(env, clazz, m, args);
}

static jobject shim_CallObjectMethodA(JNIEnv *env, jobject obj, jmethodID m, const jvalue *args) {
	return (*env)->CallObjectMethodA(env, obj, m, args);
}

static jobject shim_CallStaticObjectMethodA(JNIEnv *env, jclass clazz, jmethodID m, const jvalue *args) {
	return (*env)->CallStaticObjectMethodA(env, clazz, m, args);
}

static jobject shim_GetObjectField(JNIEnv *env, jobject obj, jfieldID f) {
	return (*env)->GetObjectField(env, obj, f);
}

static void shim_SetObjectField(JNIEnv *env, jobject obj, jfieldID f, jobject v) {
	(*env)->SetObjectField(env, obj, f, v);
}

static jobject shim_GetStaticObjectField(JNIEnv *env, jclass clazz, jfieldID f) {
	return (*env)->GetStaticObjectField(env, clazz, f);
}

static void shim_SetStaticObjectField(JNIEnv *env, jclass clazz, jfieldID f, jobject v) {
	(*env)->SetStaticObjectField(env, clazz, f, v);
}

static void *shim_GetPrimitiveArrayCritical(JNIEnv *env, jarray a, jboolean *isCopy) {
	return (*env)->GetPrimitiveArrayCritical(env, a, isCopy);
}

static void shim_ReleasePrimitiveArrayCritical(JNIEnv *env, jarray a, void *carr, jint mode) {
	(*env)->ReleasePrimitiveArrayCritical(env, a, carr, mode);
}
*/
import "C"
