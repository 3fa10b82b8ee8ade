package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/catalog"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/session"
)

func testModel(t *testing.T) model {
	t.Helper()
	s, err := session.New(catalog.BuiltIn(), 5, zap.NewNop())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return newModel(AppConfig{Version: "dev"}, s)
}

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()
	got, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return got.(model)
}

func TestMenuEnterStartsHighlightedGame(t *testing.T) {
	m := testModel(t)
	got, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = got.(model)

	if m.view.Game != labyrinth.GameName {
		t.Fatalf("expected labyrinth to start, got %q", m.view.Game)
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
}

func TestUpWrapsToLastOption(t *testing.T) {
	m := testModel(t)
	got, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got.(model).idx != 2 {
		t.Fatalf("expected cursor on last game, got %d", got.(model).idx)
	}
}

func TestTypedCommandAdvancesBudget(t *testing.T) {
	m := typeLine(t, testModel(t), "budget")
	m = typeLine(t, m, "next")

	if m.view.Turn != 2 {
		t.Fatalf("expected month 2, got %d", m.view.Turn)
	}
	if m.input != "" {
		t.Fatalf("expected input to clear, got %q", m.input)
	}
	if !strings.Contains(m.View(), "Month 2/12") {
		t.Fatalf("expected month label in view")
	}
}

func TestBackspaceEditsInput(t *testing.T) {
	m := testModel(t)
	got, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nexx")})
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got.(model).input != "nex" {
		t.Fatalf("expected nex, got %q", got.(model).input)
	}
}

func TestRejectedCommandKeepsState(t *testing.T) {
	m := typeLine(t, testModel(t), "labyrinth")
	m = typeLine(t, m, "up")

	if m.err == nil {
		t.Fatalf("expected blocked move to report an error")
	}
	if m.view.Player != (labyrinth.Point{X: 1, Y: 1}) {
		t.Fatalf("player should not move, got %+v", m.view.Player)
	}
}

func TestRenderMazeMarksPlayer(t *testing.T) {
	maze := [][]labyrinth.Cell{
		{labyrinth.Wall, labyrinth.Wall, labyrinth.Wall},
		{labyrinth.Wall, labyrinth.Open, labyrinth.Goal},
	}
	got := renderMaze(maze, labyrinth.Point{X: 1, Y: 1})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "@") || !strings.Contains(lines[1], "G") {
		t.Fatalf("expected player and goal on second row, got %q", lines[1])
	}
}

func TestQuitCommandExits(t *testing.T) {
	m := testModel(t)
	got, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
	_, cmd := got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
