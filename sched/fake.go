package sched

import (
	"container/heap"
	"sync"
	"time"
)

// Fake is a deterministic [Clock] for tests. Time does not pass on its own:
// Now returns a fixed instant until [Fake.Advance] moves it forward, firing
// the callbacks that fall due along the way.
//
// Callbacks fire in non-decreasing due-time order; callbacks due at the
// same instant fire in the order they were scheduled. A callback may itself
// call Schedule — anything it schedules within the window being advanced
// over fires during the same Advance.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	pending taskHeap
	seq     int64
}

// NewFake returns a Fake clock positioned at the Unix epoch.
func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0)}
}

// Now returns the fake clock's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Schedule registers fn to fire once the clock has been advanced by at
// least d. A non-positive d makes fn due immediately; it still fires only
// on the next Advance, never synchronously.
func (f *Fake) Schedule(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	heap.Push(&f.pending, task{due: f.now.Add(d), seq: f.seq, fn: fn})
}

// Advance moves the clock forward by d, running every callback that falls
// due, in due-time order. The clock is set to each callback's due time
// while it runs, so callbacks observe the time they were scheduled for.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	for {
		if len(f.pending) == 0 || f.pending[0].due.After(target) {
			break
		}
		t := heap.Pop(&f.pending).(task)
		if t.due.After(f.now) {
			f.now = t.due
		}
		// Run outside the lock: the callback may call Schedule or Now.
		f.mu.Unlock()
		t.fn()
		f.mu.Lock()
	}
	f.now = target
	f.mu.Unlock()
}

// Pending returns the number of callbacks scheduled but not yet fired.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

type task struct {
	due time.Time
	seq int64
	fn  func()
}

// taskHeap orders tasks by due time, then by scheduling order.
type taskHeap []task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
