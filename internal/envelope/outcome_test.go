package envelope

import (
	"errors"
	"testing"
)

func TestOkOutcome(t *testing.T) {
	o := Ok(42)
	if o.Variant != VariantOk || o.Value != 42 {
		t.Fatalf("Ok(42) = %+v, want Variant=Ok Value=42", o)
	}
	t.Logf("outcome: %s", o)
}

func TestErrOutcome(t *testing.T) {
	wantErr := errors.New("boom")
	o := Err[int](wantErr)
	if o.Variant != VariantErr || o.Err != wantErr {
		t.Fatalf("Err(boom) = %+v", o)
	}
}

func TestPanicOutcome(t *testing.T) {
	o := PanicOutcome[int]("bad state")
	if o.Variant != VariantPanic || o.Panic != "bad state" {
		t.Fatalf("PanicOutcome = %+v", o)
	}
}

func TestRunCapturesPanic(t *testing.T) {
	outcome := run(func() (int, error) {
		panic("native code exploded")
	})
	if outcome.Variant != VariantPanic {
		t.Fatalf("run() after panic: Variant = %v, want VariantPanic", outcome.Variant)
	}
	if outcome.Panic != "native code exploded" {
		t.Fatalf("run() panic payload = %v", outcome.Panic)
	}
}

func TestRunPropagatesError(t *testing.T) {
	wantErr := errors.New("call failed")
	outcome := run(func() (int, error) { return 0, wantErr })
	if outcome.Variant != VariantErr || outcome.Err != wantErr {
		t.Fatalf("run() = %+v, want Err(%v)", outcome, wantErr)
	}
}

func TestRunPropagatesOk(t *testing.T) {
	outcome := run(func() (string, error) { return "hello", nil })
	if outcome.Variant != VariantOk || outcome.Value != "hello" {
		t.Fatalf("run() = %+v, want Ok(hello)", outcome)
	}
}
