package engine

import (
	"sync"
	"time"
)

// Handle cancels a scheduled task.
type Handle interface {
	// Stop cancels the task. For a one-shot it reports whether the task
	// was cancelled before it ran. A task that already fired may still be
	// blocked on the engine lock; the engine discards callbacks from a
	// superseded arming when they finally run.
	Stop() bool
}

// Scheduler arms cancellable timers for the engine.
type Scheduler interface {
	// AfterFunc runs fn once after d on its own goroutine.
	AfterFunc(d time.Duration, fn func()) Handle
	// Every runs fn every d on its own goroutine until stopped.
	Every(d time.Duration, fn func()) Handle
}

// NewScheduler returns the wall-clock Scheduler used in production.
func NewScheduler() Scheduler {
	return timeScheduler{}
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

func (timeScheduler) Every(d time.Duration, fn func()) Handle {
	h := &tickerHandle{
		t:    time.NewTicker(d),
		done: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-h.t.C:
				fn()
			case <-h.done:
				return
			}
		}
	}()
	return h
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Stop() bool {
	return h.t.Stop()
}

type tickerHandle struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

func (h *tickerHandle) Stop() bool {
	h.once.Do(func() {
		h.t.Stop()
		close(h.done)
	})
	return true
}
