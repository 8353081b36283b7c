package spiro

import (
	"fmt"
	"time"
)

type point struct{ x, y float64 }

// recorder is a Pen that logs every call.
type recorder struct {
	ops     []string
	lines   []point
	moves   []point
	visible bool
	down    bool
	color   Color
	clears  int
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "move")
	r.moves = append(r.moves, point{x, y})
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, point{x, y})
}

func (r *recorder) PenUp() {
	r.ops = append(r.ops, "up")
	r.down = false
}

func (r *recorder) PenDown() {
	r.ops = append(r.ops, "down")
	r.down = true
}

func (r *recorder) SetColor(c Color) {
	r.ops = append(r.ops, fmt.Sprintf("color %.2f %.2f %.2f", c.R, c.G, c.B))
	r.color = c
}

func (r *recorder) Show() {
	r.ops = append(r.ops, "show")
	r.visible = true
}

func (r *recorder) Hide() {
	r.ops = append(r.ops, "hide")
	r.visible = false
}

func (r *recorder) Visible() bool { return r.visible }

func (r *recorder) Clear() {
	r.clears++
	r.lines = nil
}

func (r *recorder) reset() {
	r.ops, r.lines, r.moves = nil, nil, nil
}

// manualScheduler holds callbacks until fire is called.
type manualScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
	s.delays = append(s.delays, d)
}

// fire runs the callbacks that were pending when it was called.
func (s *manualScheduler) fire() int {
	due := s.pending
	s.pending = nil
	for _, fn := range due {
		fn()
	}
	return len(due)
}
