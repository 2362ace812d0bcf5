package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starline/internal/levels"
	"github.com/vovakirdan/starline/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the pack sidebar
	sidebarWidth       = 20 // Width of the pack sidebar
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel shows per-level records for each pack.
type RecordsModel struct {
	packs       []*levels.Pack
	cursor      int
	store       *storage.Store
	fps         int
	stats       map[string]*storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRecordsModel creates a records screen. fps converts frame counts to
// times.
func NewRecordsModel(store *storage.Store, packs []*levels.Pack, fps, width, height int) RecordsModel {
	if fps <= 0 {
		fps = 60
	}
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		packs:       packs,
		store:       store,
		fps:         fps,
		keys:        DefaultRecordsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadStats()
	return m
}

// createTable creates a new table sized for the window.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 16},
		{Title: "Clears", Width: 7},
		{Title: "Best", Width: 9},
		{Title: "Tries", Width: 6},
		{Title: "Last", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// loadStats loads the stats of the selected pack.
func (m *RecordsModel) loadStats() {
	m.stats, m.loadErr = nil, nil
	if m.store != nil && len(m.packs) > 0 {
		m.stats, m.loadErr = m.store.PackStats(m.packs[m.cursor].ID)
	}
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Rows returns one table row per level of the selected pack, in pack
// order. Levels never completed show dashes.
func (m RecordsModel) Rows() []table.Row {
	if len(m.packs) == 0 {
		return nil
	}
	pack := m.packs[m.cursor]
	rows := make([]table.Row, 0, pack.Len())
	for i, lvl := range pack.Levels {
		row := table.Row{fmt.Sprintf("%d", i+1), lvl.Name, "-", "-", "-", "-"}
		if ls, ok := m.stats[lvl.ID]; ok {
			row[2] = fmt.Sprintf("%d", ls.Completions)
			row[3] = formatFrames(ls.BestFrames, m.fps)
			row[4] = fmt.Sprintf("%.1f", ls.AvgAttempts)
			if !ls.LastPlayed.IsZero() {
				row[5] = ls.LastPlayed.Format("Jan 02 15:04")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// formatFrames renders a frame count as seconds at the given rate.
func formatFrames(frames int64, fps int) string {
	d := time.Duration(frames) * time.Second / time.Duration(fps)
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.packs)
				m.loadStats()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.packs)) % len(m.packs)
				m.loadStats()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.Rows())
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RECORDS"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("RECORDS - %s", m.packs[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the pack list.
func (m RecordsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Packs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.packs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := p.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or a message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot load records:\n" + m.loadErr.Error())
	case len(m.packs) == 0:
		return emptyStyle.Render("No level packs installed.")
	}
	return m.table.View()
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunRecords runs the records screen until the user quits.
func RunRecords(store *storage.Store, packs []*levels.Pack, fps, width, height int) error {
	model := NewRecordsModel(store, packs, fps, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
