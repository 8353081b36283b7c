package game

import "time"

type timer struct {
	due time.Time
	fn  func()
}

// tickScheduler implements spiro.Scheduler on top of ebiten's Update loop.
// Callbacks run from run, on the game goroutine. While a callback runs, the
// scheduler clock reads its due time, so a callback that re-arms itself keeps
// a steady period even when several ticks fall into one frame.
type tickScheduler struct {
	now      time.Time
	timers   []timer
	maxBurst int
}

func newTickScheduler(now time.Time, maxBurst int) *tickScheduler {
	if maxBurst < 1 {
		maxBurst = 1
	}
	return &tickScheduler{now: now, maxBurst: maxBurst}
}

func (s *tickScheduler) After(d time.Duration, fn func()) {
	s.timers = append(s.timers, timer{due: s.now.Add(d), fn: fn})
}

// run fires due callbacks in due order, at most maxBurst of them. Timers
// still overdue after that are moved to now so a slow host drops ticks
// instead of piling up lag.
func (s *tickScheduler) run(now time.Time) int {
	ran := 0
	for ran < s.maxBurst {
		i := s.next(now)
		if i < 0 {
			break
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		s.now = t.due
		t.fn()
		ran++
	}
	for i := range s.timers {
		if s.timers[i].due.Before(now) {
			s.timers[i].due = now
		}
	}
	s.now = now
	return ran
}

// next returns the index of the earliest timer due at or before now, or -1.
func (s *tickScheduler) next(now time.Time) int {
	best := -1
	for i, t := range s.timers {
		if t.due.After(now) {
			continue
		}
		if best < 0 || t.due.Before(s.timers[best].due) {
			best = i
		}
	}
	return best
}

// pending returns the number of armed timers.
func (s *tickScheduler) pending() int { return len(s.timers) }
