package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/databg/internal/engine"
	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/logging"
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
	"github.com/san-kum/databg/internal/typewriter"
	"github.com/san-kum/databg/internal/viewport"
)

// chromeLines is the header, status and help lines around the canvas.
const chromeLines = 3

// ThemeToggler is a theme provider the user can flip, e.g. theme.Store.
type ThemeToggler interface {
	theme.Provider
	Toggle() (theme.Theme, error)
}

type Options struct {
	Scene        *field.Scene
	Themes       ThemeToggler
	Typewriter   *typewriter.Typewriter
	Interval     time.Duration
	PixelsPerDot float64
	AlphaGain    float64
	Logger       *slog.Logger
}

type typeMsg struct{}

// canvas clears to the backdrop of the palette cached for the frame being
// drawn.
type canvas struct {
	*surface.Braille
	scene *field.Scene
}

func (c canvas) ClearRect(x, y, w, h float64) {
	c.SetBackdrop(c.scene.Palette().Backdrop)
	c.Braille.ClearRect(x, y, w, h)
}

// Model is the terminal host: it owns the canvas, paces frames and routes
// keys and resizes to the engine.
type Model struct {
	engine  *engine.Engine
	sched   *TickScheduler
	canvas  canvas
	sizer   *viewport.Sizer
	themes  ThemeToggler
	tw      *typewriter.Typewriter
	history *linkHistory
	logger  *slog.Logger

	keys      keyMap
	help      help.Model
	title     string
	showStats bool
	width     int
	height    int
	err       error
}

func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Typewriter == nil {
		opts.Typewriter = typewriter.New(nil, typewriter.DefaultTiming())
	}

	c := canvas{
		Braille: surface.NewBraille(0, 0, opts.PixelsPerDot, opts.AlphaGain),
		scene:   opts.Scene,
	}
	sched := NewTickScheduler(opts.Interval)
	history := &linkHistory{}
	eng := engine.New(opts.Scene, c, opts.Themes, sched,
		engine.WithLogger(opts.Logger),
		engine.WithObserver(history))

	sizer := viewport.NewSizer(int(opts.Scene.Width), int(opts.Scene.Height))
	sizer.OnResize(eng.Resize)

	// Start only queues the first frame; nothing runs before the first tick.
	_ = eng.Start()

	return Model{
		engine:  eng,
		sched:   sched,
		canvas:  c,
		sizer:   sizer,
		themes:  opts.Themes,
		tw:      opts.Typewriter,
		history: history,
		logger:  opts.Logger,
		keys:    defaultKeys(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sched.Next(), func() tea.Msg { return typeMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		return m, m.sched.Fire(time.Time(msg))

	case typeMsg:
		text, delay := m.tw.Step()
		m.title = text
		return m, tea.Tick(delay, func(time.Time) tea.Msg { return typeMsg{} })
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.engine.Running() {
			_ = m.engine.Stop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.engine.Running() {
			_ = m.engine.Stop()
			return m, nil
		}
		_ = m.engine.Start()
		return m, m.sched.Next()

	case key.Matches(msg, m.keys.Theme):
		next, err := m.themes.Toggle()
		if err != nil {
			m.err = err
			m.logger.Error("theme toggle failed", "err", err)
			return m, nil
		}
		m.err = nil
		m.logger.Info("theme changed", "theme", next)

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		m.layout()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

// layout gives the canvas every terminal row not taken by the chrome and
// propagates the resulting pixel size to the engine.
func (m *Model) layout() {
	rows := m.height - chromeLines
	if m.showStats {
		rows -= graphHeight + 2
	}
	if m.help.ShowAll {
		rows -= len(m.keys.FullHelp()[0]) - 1
	}
	if rows < 0 {
		rows = 0
	}
	m.canvas.Resize(m.width, rows)
	m.sizer.Resize(m.canvas.PixelSize())
}

func (m Model) View() string {
	var s strings.Builder

	header := fmt.Sprintf("> %s_", m.title)
	s.WriteString(headerStyle(m.engine.Scene().Palette()).Width(m.width).Render(header))
	s.WriteByte('\n')

	if m.canvas.Height > 0 {
		s.WriteString(m.canvas.String())
		s.WriteByte('\n')
	}
	if m.showStats {
		s.WriteString(m.history.plot(m.width))
		s.WriteByte('\n')
	}

	s.WriteString(m.status())
	s.WriteByte('\n')
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m Model) status() string {
	state := statusRunning.Render("RUNNING")
	if !m.engine.Running() {
		state = statusPaused.Render("PAUSED")
	}
	last := m.history.last
	parts := []string{
		state,
		labelStyle.Render("theme ") + valueStyle.Render(m.themes.Theme().String()),
		labelStyle.Render("particles ") + valueStyle.Render(fmt.Sprint(last.Particles)),
		labelStyle.Render("columns ") + valueStyle.Render(fmt.Sprint(last.Columns)),
		labelStyle.Render("links ") + valueStyle.Render(fmt.Sprint(last.Links)),
	}
	line := strings.Join(parts, "  ")
	if m.err != nil {
		line += "  " + errorStyle.Render(m.err.Error())
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
