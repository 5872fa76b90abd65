package envelope

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCheckOnceRunsExactlyOnceOnSuccess(t *testing.T) {
	var c CheckOnce
	var calls int32

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Run(func() error {
				atomic.AddInt32(&calls, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("check ran %d times, want exactly 1", calls)
	}
}

func TestCheckOnceRetriesAfterFailure(t *testing.T) {
	var c CheckOnce
	wantErr := errors.New("flavor mismatch")

	if err := c.Run(func() error { return wantErr }); err != wantErr {
		t.Fatalf("first Run() = %v, want %v", err, wantErr)
	}

	var secondRan bool
	if err := c.Run(func() error { secondRan = true; return nil }); err != nil {
		t.Fatalf("second Run() = %v, want nil", err)
	}
	if !secondRan {
		t.Fatal("a failed check should not poison the latch against a later retry")
	}
}

func TestCheckOnceNoopAfterSuccessIgnoresLaterFailures(t *testing.T) {
	var c CheckOnce
	if err := c.Run(func() error { return nil }); err != nil {
		t.Fatalf("first Run() = %v", err)
	}
	if err := c.Run(func() error { return errors.New("should never run") }); err != nil {
		t.Fatalf("second Run() after success = %v, want nil (check never re-runs)", err)
	}
}
