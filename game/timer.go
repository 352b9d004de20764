package game

import (
	"container/heap"
	"time"
)

// timer is a callback due at a point on the game clock
type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = timer{}
	*h = old[:n-1]
	return t
}

// TimerQueue holds delayed callbacks owned by the loop goroutine
// Callbacks run only from RunDue, between frames, never during a physics step
type TimerQueue struct {
	timers timerHeap
	seq    uint64
}

// After schedules fn to run once the clock reaches now+d
func (q *TimerQueue) After(now time.Time, d time.Duration, fn func()) {
	q.seq++
	heap.Push(&q.timers, timer{due: now.Add(d), seq: q.seq, fn: fn})
}

// RunDue runs every callback due at or before now in due order, returns the count run
func (q *TimerQueue) RunDue(now time.Time) int {
	n := 0
	for len(q.timers) > 0 && !q.timers[0].due.After(now) {
		t := heap.Pop(&q.timers).(timer)
		t.fn()
		n++
	}
	return n
}

// Len returns the number of pending timers
func (q *TimerQueue) Len() int {
	return len(q.timers)
}
