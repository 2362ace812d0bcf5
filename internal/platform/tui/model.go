package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starline/internal/editor"
	"github.com/vovakirdan/starline/internal/game"
)

// flashFrames is how long the star counter stays highlighted after a pickup.
const flashFrames = 20

// Options configures a Model.
type Options struct {
	// Width and Height are the initial terminal size in cells. A later
	// tea.WindowSizeMsg replaces them.
	Width, Height int

	FPS        int
	CellAspect float64
	ShowHelp   bool

	// Audio is the same BellAudio passed to the game, if any. It drives
	// the HUD flash.
	Audio *BellAudio

	// Lipgloss is the renderer for the client terminal; nil means stdout.
	Lipgloss *lipgloss.Renderer
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	state    *game.State
	renderer *Renderer
	audio    *BellAudio
	keys     KeyMap
	help     help.Model
	fps      int

	width, height int

	status    string
	statusErr bool

	lastBells int64
	flash     int
	quitting  bool
}

// NewModel creates a model driving st.
func NewModel(st *game.State, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp

	m := Model{
		state:    st,
		renderer: NewRenderer(opts.Lipgloss, opts.Width, opts.Height, opts.CellAspect),
		audio:    opts.Audio,
		keys:     DefaultKeyMap(st.Editor.Active),
		help:     h,
		fps:      opts.FPS,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.layout()
	return m
}

// State returns the game being driven.
func (m Model) State() *game.State {
	return m.state
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		for _, ev := range m.renderer.mouseEvents(msg) {
			m.handle(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.handle(game.CloseRequested{})
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	name := gameKey(msg)
	err := m.handle(game.KeyDown{Key: name})
	if m.state.Editor.Active && name == editor.KeySave {
		if err != nil {
			m.setStatus("save failed: "+err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("saved %d entries", m.state.Playback.Len()), false)
		}
	}
	return m, nil
}

// handleTick advances one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.handle(game.DrawTick{})
	if m.state.Closed() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.flash > 0 {
		m.flash--
	}
	if m.audio != nil {
		if bells := m.audio.Bells(); bells != m.lastBells {
			m.lastBells = bells
			m.flash = flashFrames
		}
	}

	return m, tickCmd(m.fps)
}

func (m *Model) handle(ev game.Event) error {
	return m.state.Handle(ev)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// layout splits the terminal between the scene and the HUD and resizes
// the camera to match.
func (m *Model) layout() {
	hud := 1 + lipgloss.Height(m.help.View(m.keys))
	m.renderer.Resize(m.width, m.height-hud)
	w, h := m.renderer.CameraSize()
	m.handle(game.Resized{Width: w, Height: h})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.state)

	helpStyle := m.renderer.lg.NewStyle().Foreground(lipgloss.Color("241"))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.View(),
		m.statusLine(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// statusLine renders the HUD row.
func (m Model) statusLine() string {
	lg := m.renderer.lg
	title := lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lg.NewStyle().Foreground(lipgloss.Color("241"))
	stars := lg.NewStyle().Foreground(lipgloss.Color("252"))
	if m.flash > 0 {
		stars = stars.Bold(true).Foreground(lipgloss.Color("220"))
	}

	st := m.state
	lvl := st.Level
	parts := []string{}

	if st.Editor.Active {
		parts = append(parts,
			title.Render("EDITOR"),
			dim.Render(fmt.Sprintf("entries %d", st.Playback.Len())),
			stars.Render(fmt.Sprintf("★ %d", len(lvl.Collectibles))),
		)
	} else {
		entry := st.CurrentLevel()
		parts = append(parts,
			title.Render(fmt.Sprintf("%s %d/%d", entry.Name, st.LevelIndex()+1, st.Pack().Len())),
			stars.Render(fmt.Sprintf("★ %d/%d", lvl.Collected, len(lvl.Collectibles))),
			dim.Render(fmt.Sprintf("attempts %d", st.Attempts())),
		)
		switch {
		case st.Fading():
			parts = append(parts, dim.Render("complete"))
		case !lvl.Setup:
			parts = append(parts, dim.Render("drawing..."))
		}
	}

	if m.status != "" {
		style := dim
		if m.statusErr {
			style = lg.NewStyle().Foreground(lipgloss.Color("9"))
		}
		parts = append(parts, style.Render(m.status))
	}

	line := strings.Join(parts, "  ")
	return lg.NewStyle().MaxWidth(m.width).Render(line)
}

// Run starts a local Bubble Tea program for st.
func Run(st *game.State, opts Options) error {
	model := NewModel(st, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to draw
	)

	_, err := p.Run()
	return err
}
