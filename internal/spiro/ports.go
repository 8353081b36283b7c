package spiro

import "time"

// Color holds normalized red, green and blue intensities in [0, 1].
type Color struct {
	R, G, B float64
}

// Black is used for single-figure drawings.
var Black = Color{}

// Pen is the drawing surface a Curve writes to. Coordinates are centered on
// the viewport with y pointing up.
type Pen interface {
	// MoveTo repositions the pen without drawing.
	MoveTo(x, y float64)
	// LineTo draws a line from the current position if the pen is down.
	LineTo(x, y float64)
	PenUp()
	PenDown()
	SetColor(c Color)

	// Show, Hide and Visible control the cursor glyph.
	Show()
	Hide()
	Visible() bool

	// Clear erases everything this pen has drawn.
	Clear()
}

// Scheduler registers one-shot callbacks. Callbacks must run on the same
// goroutine as every other call into the Animator.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Viewport reports the drawable area in pixels.
type Viewport interface {
	Size() (width, height int)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	Width, Height int
}

func (v FixedViewport) Size() (int, int) { return v.Width, v.Height }
