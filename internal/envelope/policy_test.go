package envelope

import (
	"errors"
	"strings"
	"testing"
)

// TestCombineForLogKeepsBothFailures exercises the multierr-backed
// helper resolveError/resolvePanic use when a policy's OnError/OnPanic
// itself panics: both the primary failure and the secondary panic must
// survive into the combined error (spec §4.6 step 4).
func TestCombineForLogKeepsBothFailures(t *testing.T) {
	primary := errors.New("primary failure")
	secondary := errors.New("secondary panic: boom")
	got := combineForLog(primary, secondary).Error()
	if !strings.Contains(got, "primary failure") || !strings.Contains(got, "secondary panic: boom") {
		t.Fatalf("combined error lost a failure: %q", got)
	}
}

func TestCombineForLogWithNilPrimary(t *testing.T) {
	secondary := errors.New("secondary only")
	got := combineForLog(nil, secondary)
	if got == nil || !strings.Contains(got.Error(), "secondary only") {
		t.Fatalf("combineForLog(nil, secondary) = %v, want it to contain the secondary error", got)
	}
}

func TestLogSecondaryDoesNotPanicOnNilLogger(t *testing.T) {
	logSecondary("TestMethod", "jni-error", errors.New("boom"))
}
