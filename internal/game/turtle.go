package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

// surface is where a turtle leaves its lines.
type surface interface {
	strokeLine(x0, y0, x1, y1 float64, c color.Color)
	clear()
}

// layer is an offscreen image owned by one turtle, so clearing one curve
// leaves the others intact. The image is allocated on first use because
// ebiten images are only usable once the game loop runs.
type layer struct {
	img           *ebiten.Image
	width, height int
}

func newLayer(width, height int) *layer {
	return &layer{width: width, height: height}
}

func (l *layer) strokeLine(x0, y0, x1, y1 float64, c color.Color) {
	if l.img == nil {
		l.img = ebiten.NewImage(l.width, l.height)
	}
	vector.StrokeLine(l.img, float32(x0), float32(y0), float32(x1), float32(y1), config.LineWidth, c, true)
}

func (l *layer) clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *layer) drawTo(dst *ebiten.Image) {
	if l.img != nil {
		dst.DrawImage(l.img, nil)
	}
}

// turtle implements spiro.Pen. It takes centered coordinates with y up and
// keeps its position in screen coordinates.
type turtle struct {
	surf          surface
	width, height int

	x, y    float64
	heading float64
	down    bool
	visible bool
	color   color.RGBA
}

func newTurtle(s surface, width, height int) *turtle {
	t := &turtle{surf: s, width: width, height: height, down: true, visible: true}
	t.x, t.y = t.toScreen(0, 0)
	return t
}

func (t *turtle) toScreen(x, y float64) (float64, float64) {
	return float64(t.width)/2 + x, float64(t.height)/2 - y
}

func (t *turtle) MoveTo(x, y float64) {
	t.x, t.y = t.toScreen(x, y)
}

func (t *turtle) LineTo(x, y float64) {
	sx, sy := t.toScreen(x, y)
	if sx != t.x || sy != t.y {
		t.heading = math.Atan2(sy-t.y, sx-t.x)
	}
	if t.down {
		t.surf.strokeLine(t.x, t.y, sx, sy, t.color)
	}
	t.x, t.y = sx, sy
}

func (t *turtle) PenUp()   { t.down = false }
func (t *turtle) PenDown() { t.down = true }

func (t *turtle) SetColor(c spiro.Color) { t.color = toRGBA(c) }

func (t *turtle) Show()         { t.visible = true }
func (t *turtle) Hide()         { t.visible = false }
func (t *turtle) Visible() bool { return t.visible }
func (t *turtle) Clear()        { t.surf.clear() }

// drawCursor draws the turtle glyph: a dot in the pen color with a tick
// pointing along the last stroke.
func (t *turtle) drawCursor(dst *ebiten.Image) {
	if !t.visible {
		return
	}
	r := float32(config.CursorSize) / 2
	hx := t.x + math.Cos(t.heading)*config.CursorSize
	hy := t.y + math.Sin(t.heading)*config.CursorSize
	vector.DrawFilledCircle(dst, float32(t.x), float32(t.y), r, t.color, true)
	vector.StrokeCircle(dst, float32(t.x), float32(t.y), r, 1, color.Black, true)
	vector.StrokeLine(dst, float32(t.x), float32(t.y), float32(hx), float32(hy), 2, color.Black, true)
}
