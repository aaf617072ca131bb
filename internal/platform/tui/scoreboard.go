package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/anillaksu/neonsurvivor/internal/storage"
)

const maxRuns = 100 // Max runs to load per filter

// RunSource is the read side of the run store used by the scoreboard.
type RunSource interface {
	TopRuns(frontend string, limit int) ([]storage.RunRecord, error)
	Stats() (storage.Stats, error)
}

var _ RunSource = (*storage.Store)(nil)

// scoreFilter is one tab of the scoreboard.
type scoreFilter struct {
	frontend string
	title    string
}

var scoreFilters = []scoreFilter{
	{"", "All"},
	{storage.FrontendTerminal, "Terminal"},
	{storage.FrontendWindow, "Window"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	source   RunSource
	filter   int
	runs     []storage.RunRecord
	stats    storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source RunSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

var runColumns = []string{"Rank", "Score", "Level", "Upgrades", "Survived", "Played"}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: runColumns[0], Width: 6},
		{Title: runColumns[1], Width: 8},
		{Title: runColumns[2], Width: 6},
		{Title: runColumns[3], Width: 10},
		{Title: runColumns[4], Width: 9},
		{Title: runColumns[5], Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("23")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("51")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches runs and stats for the current filter.
func (m *ScoreboardModel) load() {
	m.runs, m.err = nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}
	m.runs, m.err = m.source.TopRuns(scoreFilters[m.filter].frontend, maxRuns)
	if m.err == nil {
		m.stats, m.err = m.source.Stats()
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(i int, r storage.RunRecord) []string {
	return []string{
		fmt.Sprintf("#%d", i+1),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Level),
		fmt.Sprintf("S%d B%d X%d", r.SpeedUpgrades, r.BulletUpgrades, r.ExtraDirections),
		formatDuration(r.Duration),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// formatDuration renders a duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(scoreFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(scoreFilters) - 1) % len(scoreFilters)
			m.load()
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51"))
	b.WriteString(titleStyle.Render(centerText("NEON SURVIVOR · HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(centerText(statsLine(m.stats), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("201")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("198")).
		Padding(0, 1)

	tabs := make([]string, len(scoreFilters))
	for i, f := range scoreFilters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.title)
		} else {
			tabs[i] = tabStyle.Render(f.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderTableContent() string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 2)
		return errStyle.Render(fmt.Sprintf("Cannot load runs: %v", m.err))
	}
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nSurvive a while to set a high score!")
	}
	return m.table.View()
}

// statsLine summarizes all recorded runs.
func statsLine(st storage.Stats) string {
	if st.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs · best %d · best level %d · avg %.0f · played %s",
		st.Runs, st.HighScore, st.BestLevel, st.AvgScore, formatDuration(st.TotalTime))
}

// centerText pads text to center it within width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunScoreboard runs the interactive high score screen.
func RunScoreboard(source RunSource, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// PrintScores writes the top runs as a static table, for pipes and scripts.
func PrintScores(w io.Writer, source RunSource, limit int) error {
	runs, err := source.TopRuns("", limit)
	if err != nil {
		return err
	}
	st, err := source.Stats()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(runColumns...)
	for i, r := range runs {
		t.Row(runRow(i, r)...)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", t.Render(), statsLine(st))
	return err
}
