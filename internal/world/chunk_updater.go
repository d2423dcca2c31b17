package world

import "sync/atomic"

// ChunkUpdater is a size-one background job slot: at most one update job
// is ever in flight, and submitting never blocks. The foreground checks
// Idle and calls Schedule only while it holds the chunk guard, so the
// check-then-schedule pair cannot race with itself.
type ChunkUpdater struct {
	jobs chan func()
	busy atomic.Bool
	done chan struct{}
}

// NewChunkUpdater starts the single worker goroutine.
func NewChunkUpdater() *ChunkUpdater {
	u := &ChunkUpdater{
		jobs: make(chan func(), 1),
		done: make(chan struct{}),
	}
	go u.run()
	return u
}

func (u *ChunkUpdater) run() {
	defer close(u.done)
	for job := range u.jobs {
		job()
		u.busy.Store(false)
	}
}

// Idle reports whether the previous job has finished. It never blocks.
func (u *ChunkUpdater) Idle() bool {
	return !u.busy.Load()
}

// Schedule submits a job if the slot is free. It returns false, without
// blocking or queueing, when a job is still running; the caller simply
// tries again on a later tick.
func (u *ChunkUpdater) Schedule(job func()) bool {
	if !u.busy.CompareAndSwap(false, true) {
		return false
	}
	// The channel has capacity one and busy was just claimed, so this
	// send cannot block.
	u.jobs <- job
	return true
}

// Close waits for any in-flight job to finish and stops the worker.
// Schedule must not be called after Close.
func (u *ChunkUpdater) Close() {
	close(u.jobs)
	<-u.done
}
