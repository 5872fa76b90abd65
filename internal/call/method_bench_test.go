package call

import (
	"testing"

	"github.com/galago-jni/jni/internal/sig"
)

// BenchmarkCheckArgs exercises the hot validation path every
// CallMethod/CallStaticMethod dispatch runs before issuing the actual
// JNI call, matching the teacher's plain testing.B benchmarking style
// (no third-party benchmark harness).
func BenchmarkCheckArgs(b *testing.B) {
	s, err := sig.NewMethodSignature([]string{"int", "java.lang.String", "boolean"}, "int")
	if err != nil {
		b.Fatal(err)
	}
	args := []Arg{Int(42), Obj(0), Bool(true)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := checkArgs(s, args); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkArgValues measures the Arg -> capi.Value flattening done
// once per call just before dispatch.
func BenchmarkArgValues(b *testing.B) {
	args := []Arg{Int(1), Long(2), Double(3.5), Obj(0)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = argValues(args)
	}
}
