package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/session"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg     AppConfig
	session *session.Session
}

func NewApp(cfg AppConfig, s *session.Session) *App {
	return &App{cfg: cfg, session: s}
}

func (a *App) Run() error {
	m := newModel(a.cfg, a.session)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (rupee green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	gold        = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	red         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const rule = "----------------------------------------"

type model struct {
	cfg     AppConfig
	session *session.Session
	view    session.View

	idx   int
	input string
	err   error
}

func newModel(cfg AppConfig, s *session.Session) model {
	return model{cfg: cfg, session: s, view: s.View()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(key.Runes)
		return m, nil
	case tea.KeyUp:
		if n := len(m.view.Options); n > 0 {
			m.idx = (m.idx + n - 1) % n
		}
		return m, nil
	case tea.KeyDown:
		if n := len(m.view.Options); n > 0 {
			m.idx = (m.idx + 1) % n
		}
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}
	return m, nil
}

// submit sends the typed command, or picks the highlighted option when the
// input line is empty.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	if line == "" {
		if len(m.view.Options) == 0 {
			return m, nil
		}
		line = m.view.OptionVerb + " " + m.view.Options[m.idx%len(m.view.Options)].ID
	}
	if line == "quit" || line == "exit" {
		return m, tea.Quit
	}

	m.view, m.err = m.session.Handle(line)
	m.input = ""
	m.idx = 0
	return m, nil
}

func (m model) View() string {
	v := m.view
	var b strings.Builder

	title := brightGreen.Render(strings.ToUpper(v.Title))
	if v.TurnLabel != "" {
		title += dimGreen.Render("  " + v.TurnLabel)
	}
	b.WriteString(title + "\n")
	if v.InMenu() && m.cfg.Version != "" {
		b.WriteString(dimGreen.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate)) + "\n")
	}
	b.WriteString(border.Render(rule) + "\n")

	if len(v.Stats) > 0 {
		parts := make([]string, 0, len(v.Stats))
		for _, s := range v.Stats {
			parts = append(parts, dimGreen.Render(s.Label+": ")+green.Render(s.Value))
		}
		b.WriteString(strings.Join(parts, "  ") + "\n\n")
	}

	if v.Maze != nil {
		b.WriteString(renderMaze(v.Maze, v.Player) + "\n")
	}

	if v.Heading != "" {
		b.WriteString(gold.Render(v.Heading) + "\n")
	}
	if v.Prompt != "" {
		b.WriteString(green.Render(v.Prompt) + "\n")
	}
	for i, opt := range v.Options {
		cursor := "  "
		label := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.idx {
			cursor = "> "
			label = brightGreen.Render(label)
		} else {
			label = green.Render(label)
		}
		b.WriteString(cursor + label)
		if opt.Detail != "" {
			b.WriteString(dimGreen.Render("  " + opt.Detail))
		}
		b.WriteString("\n")
	}

	if n := len(v.History); n > 0 {
		b.WriteString("\n" + dimGreen.Render("History") + "\n")
		for _, h := range v.History[max(0, n-5):] {
			b.WriteString(dimGreen.Render("  "+h) + "\n")
		}
	}

	b.WriteString("\n" + border.Render(rule) + "\n")
	if v.Message != "" {
		style := green
		switch {
		case m.err != nil:
			style = red
		case v.Status == game.StatusWon:
			style = gold
		}
		b.WriteString(style.Render(v.Message) + "\n")
	}
	b.WriteString(brightGreen.Render("> ") + m.input + "\n")
	b.WriteString(dimGreen.Render("type a command, ↑/↓ + Enter to pick, Esc to quit") + "\n")
	return b.String()
}

func renderMaze(maze [][]labyrinth.Cell, player labyrinth.Point) string {
	var b strings.Builder
	for y, row := range maze {
		for x, cell := range row {
			if player.X == x && player.Y == y {
				b.WriteString(brightGreen.Render("@"))
				continue
			}
			b.WriteString(mazeGlyph(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func mazeGlyph(c labyrinth.Cell) string {
	switch c {
	case labyrinth.Wall:
		return dimGreen.Render("#")
	case labyrinth.LoanDesk:
		return gold.Render("$")
	case labyrinth.Goal:
		return brightGreen.Render("G")
	case labyrinth.Lesson:
		return green.Render("B")
	default:
		return " "
	}
}
