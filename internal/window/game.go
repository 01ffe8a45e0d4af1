package window

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/databg/internal/engine"
	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/logging"
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
	"github.com/san-kum/databg/internal/typewriter"
	"github.com/san-kum/databg/internal/viewport"
)

const appTitle = "databg"

// ThemeToggler is a theme provider the user can flip, e.g. theme.Store.
type ThemeToggler interface {
	theme.Provider
	Toggle() (theme.Theme, error)
}

type Options struct {
	Scene      *field.Scene
	Themes     ThemeToggler
	Typewriter *typewriter.Typewriter
	Width      int
	Height     int
	TPS        int
	Logger     *slog.Logger
}

// Game implements ebiten.Game. Frames run from Draw, so the animation
// follows the display refresh; Layout feeds size changes to the engine on
// the same goroutine.
type Game struct {
	engine *engine.Engine
	queue  *engine.FrameQueue
	surf   *Surface
	sizer  *viewport.Sizer
	themes ThemeToggler
	tw     *typewriter.Typewriter
	logger *slog.Logger

	title    string
	nextType time.Time
}

func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Typewriter == nil {
		opts.Typewriter = typewriter.New(nil, typewriter.DefaultTiming())
	}
	scene := opts.Scene
	surf := NewSurface(func() surface.RGBA { return scene.Palette().Backdrop })
	queue := engine.NewFrameQueue()
	eng := engine.New(scene, surf, opts.Themes, queue, engine.WithLogger(opts.Logger))

	sizer := viewport.NewSizer(int(scene.Width), int(scene.Height))
	sizer.OnResize(eng.Resize)

	_ = eng.Start()
	return &Game{
		engine: eng,
		queue:  queue,
		surf:   surf,
		sizer:  sizer,
		themes: opts.Themes,
		tw:     opts.Typewriter,
		logger: opts.Logger,
	}
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.shutdown()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.toggleTheme()
	}

	if title, changed := g.advanceTitle(time.Now()); changed {
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surf.SetTarget(screen)
	g.queue.Flush(time.Now())
	g.surf.SetTarget(nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sizer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) togglePause() {
	if g.engine.Running() {
		_ = g.engine.Stop()
		return
	}
	_ = g.engine.Start()
}

func (g *Game) toggleTheme() {
	next, err := g.themes.Toggle()
	if err != nil {
		g.logger.Error("theme toggle failed", "err", err)
		return
	}
	g.logger.Info("theme changed", "theme", next)
}

// advanceTitle steps the typewriter when its delay has passed and returns
// the window title to show.
func (g *Game) advanceTitle(now time.Time) (string, bool) {
	if now.Before(g.nextType) {
		return "", false
	}
	text, delay := g.tw.Step()
	g.nextType = now.Add(delay)
	g.title = text
	if text == "" {
		return appTitle, true
	}
	return appTitle + " | " + text, true
}

func (g *Game) shutdown() {
	if g.engine.Running() {
		_ = g.engine.Stop()
	}
}

// Run opens a resizable window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	defer g.shutdown()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(appTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Paused frames keep the last image instead of a cleared screen.
	ebiten.SetScreenClearedEveryFrame(false)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
