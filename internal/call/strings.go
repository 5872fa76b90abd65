package call

import (
	"github.com/galago-jni/jni/internal/capi"
	"github.com/galago-jni/jni/internal/jnienv"
	"github.com/galago-jni/jni/internal/mutf8"
)

// NewString creates a jstring from a native UTF-8 string, transcoding it
// to Modified UTF-8 first (spec §3's JNIStr/JNIString, checked path).
func NewString(env *jnienv.Env, s string) (capi.Ref, error) {
	encoded := mutf8.ToMUTF8(s)
	ref := capi.NewStringUTF(env.Raw(), encoded)
	if ref == 0 {
		return 0, jnienv.ErrNullPtr
	}
	return ref, nil
}

// NewStringUnchecked creates a jstring directly from caller-supplied
// Modified UTF-8 bytes, skipping the transcode step — the "unchecked"
// string-creation variant spec §4.3 calls for, for callers that already
// hold MUTF-8 bytes (e.g. the bindings generator's compile-time string
// literals).
func NewStringUnchecked(env *jnienv.Env, mutf8Bytes []byte) capi.Ref {
	return capi.NewStringUTF(env.Raw(), mutf8Bytes)
}

// GetString reads s back out as a native UTF-8 string, checking for
// malformed Modified UTF-8 rather than silently substituting replacement
// characters.
func GetString(env *jnienv.Env, s capi.Ref) (string, error) {
	if s == 0 {
		return "", jnienv.ErrNullPtr
	}
	pinned := capi.GetStringUTFChars(env.Raw(), s)
	defer capi.ReleaseStringUTFChars(env.Raw(), s, pinned)
	return mutf8.FromMUTF8(pinned.Bytes)
}

// GetStringUnchecked reads s back out as raw Modified UTF-8 bytes without
// transcoding, for callers that work directly in MUTF-8.
func GetStringUnchecked(env *jnienv.Env, s capi.Ref) []byte {
	pinned := capi.GetStringUTFChars(env.Raw(), s)
	defer capi.ReleaseStringUTFChars(env.Raw(), s, pinned)
	out := make([]byte, len(pinned.Bytes))
	copy(out, pinned.Bytes)
	return out
}
