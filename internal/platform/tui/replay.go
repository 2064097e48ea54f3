package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/recording"
)

// ReplayModel plays a recording back at the pace it was recorded.
type ReplayModel struct {
	id       int64
	replayer *recording.Replayer
	fb       *core.Framebuffer
	renderer *Renderer
	status   lipgloss.Style
	paused   bool
	waiting  bool // a tick is in flight
	back     bool
	quitting bool
}

// NewReplayModel prepares a replay of frames for a w x h terminal.
func NewReplayModel(id int64, frames []recording.Frame, width, height int) ReplayModel {
	renderer := NewRenderer(nil)
	m := ReplayModel{
		id:       id,
		replayer: recording.NewReplayer(frames),
		fb:       core.NewFramebuffer(0, 0),
		renderer: renderer,
		status:   renderer.lg.NewStyle().Foreground(lipgloss.Color("241")),
		waiting:  len(frames) > 0,
	}
	m.resize(width, height)
	return m
}

// Init schedules the first frame.
func (m ReplayModel) Init() tea.Cmd {
	return m.nextTick()
}

// nextTick waits as long as the next recorded frame took.
func (m ReplayModel) nextTick() tea.Cmd {
	if m.replayer.Done() {
		return nil
	}
	d := time.Duration(m.replayer.NextDT() * float64(time.Second))
	return tickAfter(max(d, 0))
}

func (m *ReplayModel) resize(width, height int) {
	rows := max(height-footerLines, 0)
	m.fb.Resize(max(width, 0), rows*2)
}

// Update handles messages for the replay.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b":
			m.back = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused && !m.waiting {
				cmd := m.nextTick()
				m.waiting = cmd != nil
				return m, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickMsg:
		m.waiting = false
		if m.paused {
			return m, nil
		}
		m.replayer.Step(m.fb)
		cmd := m.nextTick()
		m.waiting = cmd != nil
		return m, cmd
	}
	return m, nil
}

// View renders the replayed frame and a status line.
func (m ReplayModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	pos, total := m.replayer.Position()
	state := m.replayer.State()
	status := fmt.Sprintf("replay #%d  frame %d/%d  %d : %d", m.id, pos, total, state.Score2, state.Score1)
	switch {
	case m.replayer.Done():
		status += "  (end)"
	case m.paused:
		status += "  (paused)"
	}
	status += "  space pause  esc back  q quit"
	return m.renderer.Render(m.fb) + "\n" + m.status.Render(status)
}

// Back reports whether the viewer was left with esc rather than quit.
func (m ReplayModel) Back() bool {
	return m.back
}

// RunReplay shows a recording in the terminal until it is closed.
// It returns true if the user asked to go back.
func RunReplay(id int64, frames []recording.Frame, width, height int) (bool, error) {
	p := tea.NewProgram(
		NewReplayModel(id, frames, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ReplayModel)
	return ok && m.Back(), nil
}
