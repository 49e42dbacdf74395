package sim

import "container/heap"

type TimerKind uint8

const (
	TimerFlashFade TimerKind = iota
	TimerRecoilRecover
	TimerFireReady
	TimerRespawn
)

func (k TimerKind) String() string {
	switch k {
	case TimerFlashFade:
		return "flash-fade"
	case TimerRecoilRecover:
		return "recoil-recover"
	case TimerFireReady:
		return "fire-ready"
	case TimerRespawn:
		return "respawn"
	}
	return "unknown"
}

// Timer is a deferred effect due at simulation time At.
type Timer struct {
	At   float64
	Kind TimerKind
	Slot int // target slot for TimerRespawn

	seq uint64
}

type timerHeap []Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// Scheduler is the per-tick timer queue. Timers with equal deadlines run in
// the order they were scheduled.
type Scheduler struct {
	h   timerHeap
	seq uint64
}

func (s *Scheduler) Schedule(at float64, kind TimerKind, slot int) {
	s.seq++
	heap.Push(&s.h, Timer{At: at, Kind: kind, Slot: slot, seq: s.seq})
}

// RunDue pops and runs every timer due at or before now. Timers scheduled by
// fn that are already due run in the same call.
func (s *Scheduler) RunDue(now float64, fn func(Timer)) int {
	n := 0
	for len(s.h) > 0 && s.h[0].At <= now {
		t := heap.Pop(&s.h).(Timer)
		fn(t)
		n++
	}
	return n
}

// Next returns the earliest pending timer.
func (s *Scheduler) Next() (Timer, bool) {
	if len(s.h) == 0 {
		return Timer{}, false
	}
	return s.h[0], true
}

func (s *Scheduler) Len() int { return len(s.h) }

// Reset drops every pending timer.
func (s *Scheduler) Reset() {
	s.h = s.h[:0]
}
