package spiro

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures an Animator.
type Options struct {
	// Count is the number of curves in the ensemble.
	Count int
	// Step is the angle increment per tick in degrees.
	Step int
	// Interval is the delay between ticks.
	Interval time.Duration

	// Pen returns the pen for curve i. Each curve needs its own pen.
	Pen       func(i int) Pen
	Scheduler Scheduler
	Viewport  Viewport
	Generator *Generator
	Logger    *log.Logger

	// OnRestart, if set, is called after every ensemble restart with the
	// number of completed cycles.
	OnRestart func(cycle int)
}

// Animator drives an ensemble of curves on a shared tick and restarts all
// of them with fresh random parameters once every curve is complete.
type Animator struct {
	curves   []*Curve
	interval time.Duration
	sched    Scheduler
	view     Viewport
	gen      *Generator
	log      *log.Logger

	onRestart func(int)
	cycle     int
	stopped   bool
}

// NewAnimator builds opts.Count curves with random parameters and schedules
// the first tick. Curves that fail to construct are skipped.
func NewAnimator(opts Options) (*Animator, error) {
	if opts.Pen == nil || opts.Scheduler == nil || opts.Viewport == nil {
		return nil, errors.New("animator: pen, scheduler and viewport are required")
	}
	if opts.Generator == nil {
		opts.Generator = NewGenerator(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	a := &Animator{
		interval:  opts.Interval,
		sched:     opts.Scheduler,
		view:      opts.Viewport,
		gen:       opts.Generator,
		log:       opts.Logger,
		onRestart: opts.OnRestart,
	}

	w, h := a.view.Size()
	for i := 0; i < opts.Count; i++ {
		p := a.gen.Generate(w, h)
		c, err := NewCurve(opts.Pen(i), p, opts.Step)
		if err != nil {
			a.log.Warn("skipping curve", "index", i, "err", err)
			continue
		}
		a.log.Debug("curve ready", "index", i, "R", p.Outer, "r", p.Inner, "l", p.L, "rotations", c.Rotations())
		a.curves = append(a.curves, c)
	}
	if len(a.curves) == 0 {
		return nil, errors.New("animator: no curves could be created")
	}

	a.sched.After(a.interval, a.OnTick)
	return a, nil
}

// AllComplete reports whether every curve has finished. An empty ensemble is
// never complete.
func AllComplete(curves []*Curve) bool {
	if len(curves) == 0 {
		return false
	}
	for _, c := range curves {
		if !c.Complete() {
			return false
		}
	}
	return true
}

// OnTick advances every curve by one step, restarts the ensemble when all
// curves are complete and re-arms the next tick.
func (a *Animator) OnTick() {
	if a.stopped {
		return
	}
	for _, c := range a.curves {
		c.Advance()
	}
	if AllComplete(a.curves) {
		a.RestartAll()
	}
	a.sched.After(a.interval, a.OnTick)
}

// RestartAll erases every curve and starts it over with new random
// parameters bounded by the current viewport.
func (a *Animator) RestartAll() {
	w, h := a.view.Size()
	for i, c := range a.curves {
		c.Clear()
		p := a.gen.Generate(w, h)
		if err := c.SetParams(p); err != nil {
			a.log.Warn("keeping previous parameters", "index", i, "err", err)
		}
		c.Restart()
	}
	a.cycle++
	a.log.Debug("ensemble restarted", "cycle", a.cycle)
	if a.onRestart != nil {
		a.onRestart(a.cycle)
	}
}

// ToggleVisibility flips the cursor of every curve.
func (a *Animator) ToggleVisibility() {
	for _, c := range a.curves {
		c.ToggleCursor()
	}
}

// Stop prevents further ticks. A tick already scheduled becomes a no-op.
func (a *Animator) Stop() { a.stopped = true }

// Curves returns the ensemble in drawing order.
func (a *Animator) Curves() []*Curve { return a.curves }

// Cycle returns how many ensemble restarts have happened.
func (a *Animator) Cycle() int { return a.cycle }

// CompleteCount returns how many curves have finished their current drawing.
func (a *Animator) CompleteCount() int {
	n := 0
	for _, c := range a.curves {
		if c.Complete() {
			n++
		}
	}
	return n
}
