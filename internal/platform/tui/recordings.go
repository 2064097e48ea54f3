package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/recording"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Browser layout constants
const (
	maxRecordings  = 100 // Max recordings to load
	browserChrome  = 8   // Lines used by title, borders and help
	minTableHeight = 3
)

// BrowserKeyMap defines the key bindings for the recordings browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the recordings table.
type BrowserModel struct {
	store      *storage.Store
	recordings []storage.RecordingInfo
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	width      int
	height     int
	err        error
	selected   int64 // recording chosen for replay, 0 if none
	quitting   bool
}

// NewBrowserModel creates a browser over the most recent recordings.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Frontend", Width: 9},
		{Title: "Player", Width: 12},
		{Title: "Frames", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-browserChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the recording list from the store.
func (m *BrowserModel) load() {
	if m.store == nil {
		m.recordings = nil
		m.updateTableRows()
		return
	}
	infos, err := m.store.ListRecordings(maxRecordings)
	m.err = err
	m.recordings = infos
	m.updateTableRows()
}

// updateTableRows updates the table with the current recordings.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.recordings))
	for i, r := range m.recordings {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Frontend,
			player,
			fmt.Sprintf("%d", r.FrameCount),
			r.Duration.Round(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			if r, ok := m.current(); ok {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteRecording(r.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
					m.err = err
					return m, nil
				}
				cursor := m.table.Cursor()
				m.load()
				m.table.SetCursor(min(cursor, max(len(m.recordings)-1, 0)))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the recording under the cursor.
func (m BrowserModel) current() (storage.RecordingInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recordings) {
		return storage.RecordingInfo{}, false
	}
	return m.recordings[i], true
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECORDINGS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.recordings) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No recordings yet.\nPlay with --record to save one!")
	}

	return m.table.View()
}

// Selected returns the recording chosen for replay, or 0.
func (m BrowserModel) Selected() int64 {
	return m.selected
}

// RunRecordingsBrowser lets the user pick recordings to replay until they
// quit. Each pick is loaded, decoded and shown with the replay viewer;
// leaving the viewer with esc returns to the table.
func RunRecordingsBrowser(store *storage.Store, width, height int) error {
	for {
		p := tea.NewProgram(NewBrowserModel(store, width, height), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}
		m, ok := final.(BrowserModel)
		if !ok || m.Selected() == 0 {
			return nil
		}
		width, height = m.width, m.height

		rec, err := store.LoadRecording(m.Selected())
		if err != nil {
			return err
		}
		frames, err := recording.Decode(rec.Frames)
		if err != nil {
			return err
		}
		back, err := RunReplay(rec.ID, frames, width, height)
		if err != nil || !back {
			return err
		}
	}
}
