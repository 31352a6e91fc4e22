package parallel

import (
	"errors"
	"sync"
	"testing"
)

func TestRunCollectsInOrder(t *testing.T) {
	results, err := Run(8, DefaultConfig(), func(i int) (int, error) {
		return i * i, nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestRunPropagatesFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := Run(4, DefaultConfig(), func(i int) (int, error) {
		if i == 2 {
			return 0, sentinel
		}
		return i, nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Run error = %v, want %v", err, sentinel)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	results, err := Run[int](0, DefaultConfig(), func(i int) (int, error) {
		t.Fatal("fn should not be called for an empty batch")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

func TestRunRespectsWorkerCap(t *testing.T) {
	cfg := Config{NumWorkers: 2}
	var mu sync.Mutex
	var active, maxActive int
	_, err := Run(20, cfg, func(i int) (int, error) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		defer func() {
			mu.Lock()
			active--
			mu.Unlock()
		}()
		return i, nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if maxActive > 2 {
		t.Errorf("observed %d concurrent workers, want <= 2", maxActive)
	}
}
