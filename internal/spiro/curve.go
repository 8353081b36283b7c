package spiro

// Params describes one hypotrochoid.
type Params struct {
	// Xc, Yc is the curve origin in centered viewport coordinates.
	Xc, Yc float64
	// Outer is the fixed circle radius R, Inner the rolling circle radius r.
	Outer, Inner int
	// L is the pen offset as a fraction of Inner.
	L     float64
	Color Color
}

func (p Params) validate() error {
	if p.Outer <= 0 {
		return &ParamError{Field: "R", Value: p.Outer}
	}
	if p.Inner <= 0 {
		return &ParamError{Field: "r", Value: p.Inner}
	}
	return nil
}

// Rotations returns how many full sweeps close the curve: r / gcd(R, r).
func Rotations(R, r int) int {
	return r / gcd(R, r)
}

// Curve draws one hypotrochoid on a Pen, either step by step or in one go.
type Curve struct {
	pen  Pen
	p    Params
	step int

	k    float64
	nRot int

	angle    int
	complete bool
}

// NewCurve validates p, prepares pen and positions it at the start point.
// Nothing is drawn if validation fails.
func NewCurve(pen Pen, p Params, stepDegrees int) (*Curve, error) {
	if stepDegrees <= 0 {
		return nil, &ParamError{Field: "step", Value: stepDegrees}
	}
	c := &Curve{pen: pen, step: stepDegrees}
	if err := c.SetParams(p); err != nil {
		return nil, err
	}
	c.Restart()
	return c, nil
}

// SetParams replaces the curve parameters. The angle accumulator is kept;
// call Restart to begin a fresh drawing.
func (c *Curve) SetParams(p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	c.p = p
	c.k = float64(p.Inner) / float64(p.Outer)
	c.nRot = Rotations(p.Outer, p.Inner)
	c.pen.SetColor(p.Color)
	return nil
}

// Restart rewinds the curve to angle 0 and moves the pen to the start point
// with the pen lifted, so no line joins the previous drawing.
func (c *Curve) Restart() {
	c.angle = 0
	c.complete = false
	c.pen.Show()
	c.pen.PenUp()
	c.pen.MoveTo(c.at(0))
	c.pen.PenDown()
}

// Advance draws the next step. It reports whether the curve is complete and
// does nothing once it is.
func (c *Curve) Advance() bool {
	if c.complete {
		return true
	}
	c.angle += c.step
	c.pen.LineTo(c.at(c.angle))
	if c.angle >= c.Target() {
		c.complete = true
		c.pen.Hide()
	}
	return c.complete
}

// DrawFull draws the whole curve at once without touching the incremental
// state. It visits the same angles Advance would.
func (c *Curve) DrawFull() {
	c.pen.PenUp()
	c.pen.MoveTo(c.at(0))
	c.pen.PenDown()
	target := c.Target()
	for a := c.step; ; a += c.step {
		c.pen.LineTo(c.at(a))
		if a >= target {
			break
		}
	}
	c.pen.Hide()
}

// at returns the absolute position for deg degrees.
func (c *Curve) at(deg int) (float64, float64) {
	x, y := Point(float64(c.p.Outer), c.k, c.p.L, Radians(float64(deg)))
	return c.p.Xc + x, c.p.Yc + y
}

// ToggleCursor flips cursor visibility without changing the drawing.
func (c *Curve) ToggleCursor() {
	if c.pen.Visible() {
		c.pen.Hide()
	} else {
		c.pen.Show()
	}
}

// Clear erases what the curve has drawn so far.
func (c *Curve) Clear() { c.pen.Clear() }

func (c *Curve) Complete() bool { return c.complete }
func (c *Curve) Params() Params { return c.p }
func (c *Curve) Angle() int { return c.angle }
func (c *Curve) Rotations() int { return c.nRot }
func (c *Curve) Ratio() float64 { return c.k }
func (c *Curve) Target() int { return 360 * c.nRot }
func (c *Curve) Step() int { return c.step }
