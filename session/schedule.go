package session

import (
	"sort"
	"time"
)

// Key identifies which coalesced trigger a scheduled callback belongs to.
type Key int

const (
	KeySearch Key = iota
	KeyResize
	KeyScroll
)

// Scheduler delivers (key, gen) back to the owning event loop later. The
// session never sleeps or spawns goroutines itself; the TUI backs this with
// tea.Tick and tests use FakeScheduler.
type Scheduler interface {
	AfterDelay(d time.Duration, key Key, gen uint64)
	BeforeNextFrame(key Key, gen uint64)
}

// Debouncer coalesces a burst of triggers into one firing after the burst
// has been idle for Delay. A superseded firing is simply ignored.
type Debouncer struct {
	Key   Key
	Delay time.Duration
	gen   uint64
}

// Trigger schedules a firing and supersedes any pending one.
func (d *Debouncer) Trigger(s Scheduler) {
	d.gen++
	s.AfterDelay(d.Delay, d.Key, d.gen)
}

// Fire reports whether gen is the latest trigger and should run.
func (d *Debouncer) Fire(gen uint64) bool {
	return gen != 0 && gen == d.gen
}

// Cancel drops whatever is pending.
func (d *Debouncer) Cancel() { d.gen++ }

// FrameLimiter allows at most one pending callback per display frame.
type FrameLimiter struct {
	Key     Key
	gen     uint64
	pending bool
}

// Request schedules a frame unless one is already pending. It reports
// whether a new frame was scheduled.
func (f *FrameLimiter) Request(s Scheduler) bool {
	if f.pending {
		return false
	}
	f.pending = true
	f.gen++
	s.BeforeNextFrame(f.Key, f.gen)
	return true
}

// Fire reports whether gen is the pending frame and clears it.
func (f *FrameLimiter) Fire(gen uint64) bool {
	if !f.pending || gen != f.gen {
		return false
	}
	f.pending = false
	return true
}

func (f *FrameLimiter) Pending() bool { return f.pending }

// Cancel drops the pending frame, if any.
func (f *FrameLimiter) Cancel() {
	if f.pending {
		f.pending = false
		f.gen++
	}
}

// Fired is one callback delivered by FakeScheduler.
type Fired struct {
	Key Key
	Gen uint64
}

type fakeTimer struct {
	at  time.Duration
	seq int
	Fired
}

// FakeScheduler is a deterministic Scheduler driven by Advance.
type FakeScheduler struct {
	now    time.Duration
	frame  time.Duration
	seq    int
	timers []fakeTimer
}

// NewFakeScheduler starts at time zero with the given frame interval.
func NewFakeScheduler(frame time.Duration) *FakeScheduler {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &FakeScheduler{frame: frame}
}

func (f *FakeScheduler) AfterDelay(d time.Duration, key Key, gen uint64) {
	f.add(f.now+max(0, d), key, gen)
}

func (f *FakeScheduler) BeforeNextFrame(key Key, gen uint64) {
	f.add((f.now/f.frame+1)*f.frame, key, gen)
}

func (f *FakeScheduler) add(at time.Duration, key Key, gen uint64) {
	f.seq++
	f.timers = append(f.timers, fakeTimer{at: at, seq: f.seq, Fired: Fired{Key: key, Gen: gen}})
}

// Advance moves the clock forward and returns every callback now due, in
// due-time order.
func (f *FakeScheduler) Advance(d time.Duration) []Fired {
	f.now += d
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].at != f.timers[j].at {
			return f.timers[i].at < f.timers[j].at
		}
		return f.timers[i].seq < f.timers[j].seq
	})
	var due []Fired
	rest := f.timers[:0]
	for _, t := range f.timers {
		if t.at <= f.now {
			due = append(due, t.Fired)
		} else {
			rest = append(rest, t)
		}
	}
	f.timers = rest
	return due
}

func (f *FakeScheduler) Now() time.Duration { return f.now }
func (f *FakeScheduler) Pending() int       { return len(f.timers) }
