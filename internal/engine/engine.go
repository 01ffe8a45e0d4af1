// Package engine drives the background animation: one frame clears the
// surface, advances and draws the data columns, then the particles, then
// links nearby particles, and asks the scheduler for the next frame.
package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
)

// FrameStats describes one completed frame.
type FrameStats struct {
	Seq       uint64
	Particles int
	Columns   int
	Links     int
	Theme     theme.Theme
	Elapsed   time.Duration
	At        time.Time
}

type FrameObserver interface {
	OnFrame(stats FrameStats)
}

// ObserverFunc adapts a function to FrameObserver.
type ObserverFunc func(stats FrameStats)

func (f ObserverFunc) OnFrame(stats FrameStats) { f(stats) }

type Engine struct {
	scene     *field.Scene
	surf      surface.Surface
	themes    theme.Provider
	sched     Scheduler
	linker    field.Linker
	logger    *slog.Logger
	observers []FrameObserver

	running bool
	handle  Handle
	seq     uint64
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithObserver(o FrameObserver) Option {
	return func(e *Engine) { e.AddObserver(o) }
}

func New(scene *field.Scene, surf surface.Surface, themes theme.Provider, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		scene:     scene,
		surf:      surf,
		themes:    themes,
		sched:     sched,
		linker:    field.NewLinker(scene.Params()),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		observers: make([]FrameObserver, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) AddObserver(o FrameObserver) { e.observers = append(e.observers, o) }

func (e *Engine) Scene() *field.Scene { return e.scene }
func (e *Engine) Running() bool       { return e.running }

// Start requests the first frame. From then on every frame requests the
// next one until Stop.
func (e *Engine) Start() error {
	if e.running {
		return ErrAlreadyRunning
	}
	e.running = true
	e.handle = e.sched.Request(e.tick)
	e.logger.Debug("render loop started",
		"width", e.scene.Width, "height", e.scene.Height,
		"particles", len(e.scene.Particles()), "columns", len(e.scene.Columns()))
	return nil
}

// Stop cancels the pending frame. No frame runs after Stop returns.
func (e *Engine) Stop() error {
	if !e.running {
		return ErrNotRunning
	}
	e.running = false
	e.sched.Cancel(e.handle)
	e.logger.Debug("render loop stopped", "frames", e.seq)
	return nil
}

func (e *Engine) tick(now time.Time) {
	if !e.running {
		return
	}
	// A Stop and Start during the frame already queued a new loop.
	h := e.handle
	e.Frame(now)
	if e.running && e.handle == h {
		e.handle = e.sched.Request(e.tick)
	}
}

// Frame renders one frame. The theme is read once and cached on the scene
// for every draw call of the frame.
func (e *Engine) Frame(now time.Time) FrameStats {
	start := time.Now()
	s := e.scene

	s.SetTheme(e.themes.Theme())
	e.surf.ClearRect(0, 0, s.Width, s.Height)

	for _, c := range s.Columns() {
		c.Update(s)
		c.Draw(s, e.surf)
	}
	for _, p := range s.Particles() {
		p.Update(s)
		p.Draw(s, e.surf)
	}
	links := e.linker.Link(s, e.surf)

	e.seq++
	stats := FrameStats{
		Seq:       e.seq,
		Particles: len(s.Particles()),
		Columns:   len(s.Columns()),
		Links:     links,
		Theme:     s.Theme(),
		Elapsed:   time.Since(start),
		At:        now,
	}
	for _, o := range e.observers {
		o.OnFrame(stats)
	}
	return stats
}

// Resize updates the scene dimensions and rebuilds both pools. Call it from
// the same context that fires frames.
func (e *Engine) Resize(w, h int) {
	e.scene.Resize(w, h)
	e.logger.Debug("viewport resized",
		"width", w, "height", h,
		"particles", len(e.scene.Particles()), "columns", len(e.scene.Columns()))
}
