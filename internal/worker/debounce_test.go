package worker

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var mu sync.Mutex
	fired := make(map[string]int)

	d := NewDebouncer(30*time.Millisecond, func(key string) {
		mu.Lock()
		fired[key]++
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("/en/jewelry")
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired["/en/jewelry"] != 1 {
		t.Fatalf("expected one coalesced fire, got %d", fired["/en/jewelry"])
	}
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	var mu sync.Mutex
	fired := make(map[string]int)

	d := NewDebouncer(10*time.Millisecond, func(key string) {
		mu.Lock()
		fired[key]++
		mu.Unlock()
	})
	defer d.Stop()

	d.Trigger("/en")
	d.Trigger("/nl")

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired["/en"] != 1 || fired["/nl"] != 1 {
		t.Fatalf("expected both keys to fire once, got %v", fired)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	count := 0

	d := NewDebouncer(20*time.Millisecond, func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	d.Trigger("/en")
	d.Stop()

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Fatalf("expected no fires after Stop, got %d", count)
	}
}
