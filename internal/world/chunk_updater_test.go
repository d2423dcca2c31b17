package world

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitIdle spins until the updater reports idle or the deadline passes.
func waitIdle(t *testing.T, u *ChunkUpdater) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !u.Idle() {
		if time.Now().After(deadline) {
			t.Fatalf("Updater did not become idle in time")
		}
		time.Sleep(time.Millisecond)
	}
}

// TestChunkUpdaterRunsJob verifies a scheduled job executes and the slot frees up
func TestChunkUpdaterRunsJob(t *testing.T) {
	u := NewChunkUpdater()
	defer u.Close()

	var ran atomic.Bool
	if !u.Schedule(func() { ran.Store(true) }) {
		t.Fatalf("Schedule on an idle updater returned false")
	}

	waitIdle(t, u)
	if !ran.Load() {
		t.Errorf("Job never ran")
	}
}

// TestChunkUpdaterRejectsWhileBusy verifies Schedule returns false, without
// blocking, while a job is in flight.
func TestChunkUpdaterRejectsWhileBusy(t *testing.T) {
	u := NewChunkUpdater()
	defer u.Close()

	release := make(chan struct{})
	if !u.Schedule(func() { <-release }) {
		t.Fatalf("Schedule on an idle updater returned false")
	}

	if u.Idle() {
		t.Errorf("Expected updater busy while job blocked")
	}
	for i := 0; i < 10; i++ {
		if u.Schedule(func() {}) {
			t.Fatalf("Schedule accepted a second job while busy")
		}
	}

	close(release)
	waitIdle(t, u)
}

// TestChunkUpdaterNeverRunsJobsConcurrently verifies the single-slot invariant
// under rapid scheduling: no two jobs ever overlap.
func TestChunkUpdaterNeverRunsJobsConcurrently(t *testing.T) {
	u := NewChunkUpdater()
	defer u.Close()

	var inFlight atomic.Int32
	var overlaps atomic.Int32
	var accepted int

	for accepted < 100 {
		ok := u.Schedule(func() {
			if inFlight.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(time.Microsecond)
			inFlight.Add(-1)
		})
		if ok {
			accepted++
		}
	}

	waitIdle(t, u)
	if n := overlaps.Load(); n > 0 {
		t.Errorf("Observed %d overlapping job executions", n)
	}
}

// TestChunkUpdaterCloseWaitsForJob verifies Close blocks until the in-flight
// job finishes.
func TestChunkUpdaterCloseWaitsForJob(t *testing.T) {
	u := NewChunkUpdater()

	var finished atomic.Bool
	u.Schedule(func() {
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})

	u.Close()
	if !finished.Load() {
		t.Errorf("Close returned before the in-flight job finished")
	}
}
