package tui

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/recording"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// footerLines is the terminal height reserved below the playfield.
const footerLines = 1

// Options configures a game Model.
type Options struct {
	Runtime    core.RuntimeConfig // ScreenW/ScreenH in terminal cells
	Keys       config.KeyConfig
	HoldWindow time.Duration

	Store    *storage.Store // nil disables recording
	Record   bool
	Frontend string // stored with recordings: "tui" or "ssh"
	Player   string

	// ScreenshotDir receives ctrl+s PNGs. Empty disables screenshots.
	ScreenshotDir string

	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	opts     Options
	state    *pong.GameState
	fb       *core.Framebuffer
	renderer *Renderer
	footer   lipgloss.Style
	latch    *KeyLatch
	keys     KeyMap
	help     help.Model
	input    *core.Input
	recorder *recording.Recorder // nil when not recording
	logger   *log.Logger
	now      func() time.Time
	lastTick time.Time
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a model with a fresh game in menu mode.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		opts:     opts,
		state:    pong.NewGameState(),
		fb:       core.NewFramebuffer(0, 0),
		renderer: NewRenderer(opts.Renderer),
		latch:    NewKeyLatch(opts.HoldWindow),
		keys:     NewKeyMap(opts.Keys),
		help:     help.New(),
		input:    &core.Input{},
		logger:   opts.Logger,
		now:      time.Now,
	}
	m.footer = m.renderer.lg.NewStyle().Foreground(lipgloss.Color("241"))
	if opts.Record && opts.Store != nil {
		m.recorder = &recording.Recorder{}
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The status line lasts until the next key.
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveRecording()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.latch.Touch(b, m.now())
	}
	return m, nil
}

// resize fits the framebuffer to the terminal below the footer.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	rows := max(height-m.footerHeight(), 0)
	m.fb.Resize(max(width, 0), rows*2)
}

// footerHeight is the number of lines the footer needs.
func (m *Model) footerHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys))
	}
	return footerLines
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()
	dt := m.opts.Runtime.FrameDelta()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.latch.Fill(m.input, now)
	if m.recorder != nil {
		m.recorder.Add(m.input, dt)
	}

	prevMode := m.state.Mode
	result := m.state.Simulate(m.input, dt, m.fb)
	m.logEvents(result, prevMode)

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// logEvents writes the frame's events to the session log.
func (m *Model) logEvents(result pong.StepResult, prevMode pong.Mode) {
	for _, e := range result.Events {
		switch e.Kind {
		case pong.EventModeChanged:
			m.logger.Info("game started", "from", prevMode, "ai", m.state.EnemyIsAI)
		case pong.EventScored:
			m.logger.Info("point", "side", e.Side, "score1", m.state.Score1, "score2", m.state.Score2)
		default:
			m.logger.Debug("event", "kind", e.Kind, "side", e.Side)
		}
	}
}

// saveScreenshot writes the current framebuffer as a PNG.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	dir := config.ExpandHome(m.opts.ScreenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, m.fb.Image()); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// saveRecording stores the session's frames. Best-effort: a failure is
// logged and the session still ends normally.
func (m *Model) saveRecording() {
	if m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	frames := m.recorder.Frames()
	data, err := recording.Encode(frames)
	if err != nil {
		m.logger.Warn("recording not saved", "error", err)
		return
	}
	id, err := m.opts.Store.SaveRecording(m.opts.Frontend, m.opts.Player, len(frames), m.recorder.Duration(), data)
	if err != nil {
		m.logger.Warn("recording not saved", "error", err)
		return
	}
	m.logger.Info("recording saved", "id", id, "frames", len(frames), "duration", m.recorder.Duration())
	m.recorder.Reset()
}

// View renders the framebuffer and footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	footer := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		footer = m.status
	}
	return m.renderer.Render(m.fb) + "\n" + m.footer.Render(footer)
}

// State returns the running game.
func (m Model) State() *pong.GameState {
	return m.state
}

// Run starts a terminal game session and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
