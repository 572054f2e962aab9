package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Executor Tests
// =============================================================================

func TestExecutorRunsEveryBand(t *testing.T) {
	bands := Partition(100, 7)
	rows := make([]int32, 100)

	err := NewExecutor().Run(bands, func(b Band) error {
		for y := b.Start; y < b.End; y++ {
			// Each row slot is owned by exactly one band.
			atomic.AddInt32(&rows[y], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for y, n := range rows {
		if n != 1 {
			t.Errorf("row %d visited %d times, want 1", y, n)
		}
	}
}

func TestExecutorSkipsEmptyBands(t *testing.T) {
	var calls atomic.Int32
	err := NewExecutor().Run(Partition(2, 8), func(Band) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("fn called %d times, want 2", got)
	}
}

func TestExecutorJoinsBeforeReturn(t *testing.T) {
	var mu sync.Mutex
	done := map[int]bool{}
	bands := Partition(64, 8)
	err := NewExecutor().Run(bands, func(b Band) error {
		mu.Lock()
		done[b.Index] = true
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(done) != len(bands) {
		t.Errorf("%d bands finished before Run returned, want %d", len(done), len(bands))
	}
}

func TestExecutorReturnsWorkerError(t *testing.T) {
	wantErr := errors.New("band failed")
	err := NewExecutor().Run(Partition(10, 5), func(b Band) error {
		if b.Index == 3 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
}

func TestExecutorSpawnRefused(t *testing.T) {
	var calls atomic.Int32
	err := NewLimitedExecutor(0).Run(Partition(10, 4), func(Band) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, ErrSpawnRefused) {
		t.Fatalf("Run() error = %v, want ErrSpawnRefused", err)
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("fn called %d times with a zero limit, want 0", got)
	}
}

func TestExecutorLimited(t *testing.T) {
	// With a limit of one, later TryGo calls may or may not find the slot
	// free. Either every band runs or the refusal is reported.
	var calls atomic.Int32
	err := NewLimitedExecutor(1).Run(Partition(40, 4), func(Band) error {
		calls.Add(1)
		return nil
	})
	switch {
	case err == nil:
		if got := calls.Load(); got != 4 {
			t.Errorf("Run() succeeded after %d calls, want 4", got)
		}
	case errors.Is(err, ErrSpawnRefused):
		if got := calls.Load(); got < 1 || got > 4 {
			t.Errorf("fn called %d times before refusal", got)
		}
	default:
		t.Fatalf("Run() error = %v", err)
	}
}
