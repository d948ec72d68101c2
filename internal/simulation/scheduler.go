package simulation

import (
	"sync"
	"time"
)

// Handle is a cancellable scheduled task.
type Handle interface {
	// Stop prevents the task from running. It reports whether the call stopped it.
	Stop() bool
}

// Scheduler runs fn once after d. The simulator keeps at most one outstanding handle.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
}

// TimerScheduler schedules on the wall clock with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Handle {
	return time.AfterFunc(d, fn)
}

// ManualScheduler queues tasks until Fire is called. It drives a simulator
// without wall-clock waits (tests, batch runs) while keeping the same
// cancellation semantics as TimerScheduler.
type ManualScheduler struct {
	mu      sync.Mutex
	tasks   []*manualTask
	elapsed time.Duration
}

type manualTask struct {
	owner *ManualScheduler
	delay time.Duration
	fn    func()
	done  bool
}

// NewManualScheduler creates an empty manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Schedule(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{owner: m, delay: d, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Pending returns the number of tasks that are neither fired nor stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Fire runs the oldest live task and reports whether one ran.
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	var next *manualTask
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if t.done {
			continue
		}
		if next == nil {
			next = t
			t.done = true
			m.elapsed += t.delay
			continue
		}
		live = append(live, t)
	}
	m.tasks = live
	m.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// RunUntilIdle fires tasks until none remain or limit tasks have run. It returns the number fired.
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && m.Fire() {
		n++
	}
	return n
}

// Elapsed is the sum of the delays of every fired task (virtual wall-clock time).
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}
