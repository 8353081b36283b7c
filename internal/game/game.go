package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/export"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

const statusBarHeight = 20

// Game hosts either an animated ensemble or a single static curve in an
// ebiten window.
type Game struct {
	cfg   config.Config
	log   *log.Logger
	clock func() time.Time

	sched  *tickScheduler
	anim   *spiro.Animator
	static *spiro.Curve
	drawn  bool

	pens   []*turtle
	layers []*layer
	canvas *ebiten.Image

	bindings []binding
	chime    *chime

	started  time.Time
	saveReq  bool
	capture  *image.RGBA
	lastErr  error
	quitting bool
}

func newGame(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		cfg:   cfg,
		log:   logger,
		clock: time.Now,
	}
	g.started = g.clock()
	g.sched = newTickScheduler(g.started, config.MaxTicksPerFrame)
	g.bindKey(ebiten.KeyS, g.requestSave)
	g.bindKey(ebiten.KeyEscape, g.quit)
	g.bindKey(ebiten.KeyQ, g.quit)
	return g
}

// NewAnimated returns a Game running cfg.Animation.Curves random curves.
func NewAnimated(cfg config.Config, logger *log.Logger) (*Game, error) {
	g := newGame(cfg, logger)

	seed := cfg.Animation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.log.Debug("starting animation", "curves", cfg.Animation.Curves, "step", cfg.Animation.Step, "seed", seed)

	if cfg.Chime.Enabled {
		c, err := newChime(cfg.Chime)
		if err != nil {
			g.log.Warn("chime disabled", "err", err)
		} else {
			g.chime = c
		}
	}

	anim, err := spiro.NewAnimator(spiro.Options{
		Count:     cfg.Animation.Curves,
		Step:      cfg.Animation.Step,
		Interval:  cfg.Animation.Interval(),
		Pen:       func(int) spiro.Pen { return g.newPen() },
		Scheduler: g.sched,
		Viewport:  spiro.FixedViewport{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Generator: spiro.NewGenerator(seed),
		Logger:    g.log,
		OnRestart: g.onRestart,
	})
	if err != nil {
		return nil, err
	}
	g.anim = anim
	g.bindKey(ebiten.KeyT, anim.ToggleVisibility)
	g.bindKey(ebiten.KeySpace, anim.RestartAll)
	return g, nil
}

// NewStatic returns a Game showing one fully drawn curve.
func NewStatic(cfg config.Config, logger *log.Logger, p spiro.Params) (*Game, error) {
	g := newGame(cfg, logger)
	c, err := spiro.NewCurve(g.newPen(), p, cfg.Animation.Step)
	if err != nil {
		return nil, err
	}
	g.static = c
	return g, nil
}

func (g *Game) newPen() spiro.Pen {
	l := newLayer(g.cfg.Window.Width, g.cfg.Window.Height)
	t := newTurtle(l, g.cfg.Window.Width, g.cfg.Window.Height)
	g.layers = append(g.layers, l)
	g.pens = append(g.pens, t)
	return t
}

type binding struct {
	key ebiten.Key
	fn  func()
}

// bindKey registers fn for k, replacing an earlier handler. Handlers run in
// registration order.
func (g *Game) bindKey(k ebiten.Key, fn func()) {
	for i := range g.bindings {
		if g.bindings[i].key == k {
			g.bindings[i].fn = fn
			return
		}
	}
	g.bindings = append(g.bindings, binding{key: k, fn: fn})
}

func (g *Game) onRestart(cycle int) {
	g.log.Info("new ensemble", "cycle", cycle)
	if g.chime != nil {
		g.chime.play()
	}
}

func (g *Game) requestSave() { g.saveReq = true }

func (g *Game) quit() {
	if g.anim != nil {
		g.anim.Stop()
	}
	g.quitting = true
}

func (g *Game) Update() error {
	return g.update(inpututil.IsKeyJustPressed)
}

// update runs one frame. A save requested in the same frame as quit is
// captured by the next Draw and written before the game terminates.
func (g *Game) update(justPressed func(ebiten.Key) bool) error {
	if g.static != nil && !g.drawn {
		g.static.DrawFull()
		g.drawn = true
	}

	for _, b := range g.bindings {
		if justPressed(b.key) {
			b.fn()
		}
	}

	if g.capture != nil {
		if err := g.save(g.capture); err != nil {
			g.log.Error("save failed", "err", err)
			g.lastErr = err
		}
		g.capture = nil
	}
	if g.quitting && !g.saveReq {
		return ebiten.Termination
	}

	g.sched.run(g.clock())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.cfg.Window.Width, g.cfg.Window.Height)
	}
	g.canvas.Fill(color.White)
	for _, l := range g.layers {
		l.drawTo(g.canvas)
	}
	if g.saveReq {
		g.saveReq = false
		g.capture = capture(g.canvas)
	}

	screen.DrawImage(g.canvas, nil)
	for _, t := range g.pens {
		t.drawCursor(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(g.cfg.Window.Width), statusBarHeight, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, g.status(), 6, 2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) status() string {
	var s string
	if g.anim != nil {
		s = fmt.Sprintf("cycle %d | complete %d/%d | %s | s: save  t: cursors  space: restart  q: quit",
			g.anim.Cycle(), g.anim.CompleteCount(), len(g.anim.Curves()), formatDuration(g.clock().Sub(g.started)))
	} else if g.static != nil {
		p := g.static.Params()
		s = fmt.Sprintf("R=%d r=%d l=%.2f | %d rotations | s: save  q: quit", p.Outer, p.Inner, p.L, g.static.Rotations())
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// capture copies img into a new RGBA image. It must run inside Draw.
func capture(img *ebiten.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	img.ReadPixels(out.Pix)
	return out
}

// save writes img either to a timestamped file in the save directory or to
// a path chosen in a dialog.
func (g *Game) save(img image.Image) error {
	name := export.FileName(config.SavePrefix, g.clock(), "png")
	path := filepath.Join(g.cfg.Save.Dir, name)
	if g.cfg.Save.Dialog {
		chosen, err := zenity.SelectFileSave(
			zenity.Title("Save drawing"),
			zenity.Filename(path),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return nil
			}
			return err
		}
		path = chosen
		if filepath.Ext(path) == "" {
			path += ".png"
		}
	}
	g.log.Info("saving drawing", "path", path)
	return export.WritePNG(path, img)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
