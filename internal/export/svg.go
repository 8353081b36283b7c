package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/spirograph/internal/spiro"
)

const strokeFmt = `fill:none; stroke:rgb(%d,%d,%d); stroke-width:%g; stroke-linejoin:round`

// Stroke is one continuous pen-down polyline in centered coordinates.
type Stroke struct {
	Color  spiro.Color
	Points [][2]float64
}

// Recorder is a spiro.Pen that keeps strokes in memory.
type Recorder struct {
	strokes []Stroke
	cur     *Stroke
	x, y    float64
	down    bool
	visible bool
	color   spiro.Color
}

func NewRecorder() *Recorder {
	return &Recorder{down: true, visible: true}
}

func (r *Recorder) MoveTo(x, y float64) {
	r.cur = nil
	r.x, r.y = x, y
}

func (r *Recorder) LineTo(x, y float64) {
	if r.down {
		if r.cur == nil {
			r.strokes = append(r.strokes, Stroke{Color: r.color, Points: [][2]float64{{r.x, r.y}}})
			r.cur = &r.strokes[len(r.strokes)-1]
		}
		r.cur.Points = append(r.cur.Points, [2]float64{x, y})
	}
	r.x, r.y = x, y
}

func (r *Recorder) PenUp() {
	r.down = false
	r.cur = nil
}

func (r *Recorder) PenDown() { r.down = true }

func (r *Recorder) SetColor(c spiro.Color) {
	r.color = c
	r.cur = nil
}

func (r *Recorder) Show()         { r.visible = true }
func (r *Recorder) Hide()         { r.visible = false }
func (r *Recorder) Visible() bool { return r.visible }

func (r *Recorder) Clear() {
	r.strokes = nil
	r.cur = nil
}

// Strokes returns the recorded strokes in drawing order.
func (r *Recorder) Strokes() []Stroke { return r.strokes }

// WriteSVG renders the strokes on a white width x height canvas whose origin
// is the center, with y pointing up.
func (r *Recorder) WriteSVG(w io.Writer, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title("Spirograph")
	canvas.Rect(0, 0, width, height, "fill:white")
	for _, s := range r.strokes {
		canvas.Path(pathData(s.Points, width, height), fmt.Sprintf(strokeFmt, to8(s.Color.R), to8(s.Color.G), to8(s.Color.B), 1.0))
	}
	canvas.End()
	return ew.err
}

// pathData builds an SVG "M x,y L x,y ..." string in screen coordinates,
// keeping two decimals.
func pathData(points [][2]float64, width, height int) string {
	var b strings.Builder
	for i, p := range points {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c%.2f,%.2f", cmd, float64(width)/2+p[0], float64(height)/2-p[1])
	}
	return b.String()
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func to8(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
