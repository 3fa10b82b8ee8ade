package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/appengine-ltd/paisa-quest/internal/budget"
	"github.com/appengine-ltd/paisa-quest/internal/catalog"
	"github.com/appengine-ltd/paisa-quest/internal/company"
	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/money"
	"github.com/appengine-ltd/paisa-quest/internal/parser"
)

func newSession(t *testing.T, cat catalog.Catalog) *Session {
	t.Helper()
	s, err := New(cat, 7, zap.NewNop())
	require.NoError(t, err)
	return s
}

func handle(t *testing.T, s *Session, inputs ...string) View {
	t.Helper()
	var v View
	for _, in := range inputs {
		var err error
		v, err = s.Handle(in)
		require.NoError(t, err, "input %q: %s", in, v.Message)
	}
	return v
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	v := s.View()

	assert.True(t, v.InMenu())
	assert.Len(t, v.Options, 3)
	_, err := uuid.Parse(v.SessionID)
	require.NoError(t, err)

	_, err = s.Handle("next")
	require.ErrorIs(t, err, ErrNotInGame)
}

func TestNewRejectsBadCatalog(t *testing.T) {
	cat := catalog.BuiltIn()
	cat.Labyrinth.MaxTurns = 0
	_, err := New(cat, 1, nil)
	require.ErrorIs(t, err, game.ErrConfiguration)
}

func TestBudgetThroughCommands(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	v := handle(t, s, "budget")
	assert.Equal(t, budget.GameName, v.Game)
	assert.Equal(t, 1, v.Turn)

	v = handle(t, s, "next")
	require.Len(t, v.Options, 3, "festival choices")
	assert.Equal(t, "Festival Season", v.Heading)

	_, err := s.Handle("next")
	require.ErrorIs(t, err, game.ErrInvalidChoice)

	v = handle(t, s, "choose 2")
	assert.Equal(t, 3, v.Turn)
	assert.Equal(t, money.Rupees(51000), v.Stats[0].Value)
	require.Len(t, v.History, 2)
	assert.Contains(t, v.History[1], "festival-shopping/moderate")

	_, err = s.Handle("move up")
	require.ErrorIs(t, err, ErrNotInGame)
}

func TestReplanKeepsProgress(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	handle(t, s, "budget", "next")

	_, err := s.Handle("plan rent 99999")
	require.ErrorIs(t, err, budget.ErrOverBudget)
	assert.Equal(t, 8000, s.plan.Rent)

	handle(t, s, "plan entertainment 500")
	assert.Equal(t, 500, s.plan.Entertainment)
	assert.Equal(t, 2, s.budgetState.Turn, "replanning does not advance or reset")

	handle(t, s, "choose minimal")
	assert.Equal(t, 55000, s.budgetState.Resource(budget.Balance))
}

func TestResetRestoresCatalogPlan(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	handle(t, s, "budget", "plan entertainment 500", "reset", "next")
	assert.Equal(t, 2000, s.plan.Entertainment)
	assert.Equal(t, 52500, s.budgetState.Resource(budget.Balance))

	handle(t, s, "plan entertainment 500", "menu", "budget", "next")
	assert.Equal(t, 2000, s.plan.Entertainment, "starting from the menu uses the catalog plan")
	assert.Equal(t, 52500, s.budgetState.Resource(budget.Balance))
}

func TestLabyrinthThroughCommands(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	v := handle(t, s, "labyrinth", "right", "right")
	assert.Equal(t, labyrinth.GameName, v.Game)
	assert.Equal(t, "Loan desk", v.Heading)
	assert.Len(t, v.Options, 4)
	assert.Equal(t, "take", v.OptionVerb)
	assert.Equal(t, labyrinth.Point{X: 3, Y: 1}, v.Player)
	assert.Equal(t, labyrinth.Wall, v.Maze[4][4])

	v = handle(t, s, "take crop", "repay")
	assert.Nil(t, s.mazeState.Loan)
	assert.Equal(t, labyrinth.Open, v.Maze[4][4], "shortcut opened")

	_, err := s.Handle("repay")
	require.ErrorIs(t, err, labyrinth.ErrCannotRepay)
}

func TestHintsReplayWithSeed(t *testing.T) {
	a := newSession(t, catalog.BuiltIn())
	b := newSession(t, catalog.BuiltIn())
	va := handle(t, a, "labyrinth", "hint", "hint")
	vb := handle(t, b, "labyrinth", "hint", "hint")
	assert.Equal(t, va.Message, vb.Message)
	assert.NotEqual(t, va.SessionID, vb.SessionID)
}

func TestCompanyGameOverIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cat := catalog.BuiltIn()
	cat.Company.EventChance = 0

	s, err := New(cat, 3, zap.New(core))
	require.NoError(t, err)

	handle(t, s, "company", "invest automation")
	for i := 0; i < 11; i++ {
		handle(t, s, "next")
	}
	assert.Equal(t, game.StatusLost, s.companyState.Status)
	assert.Equal(t, 1180000, s.companyState.Stats.Cash)

	over := logs.FilterMessage("game over").All()
	require.Len(t, over, 1)
	fields := over[0].ContextMap()
	assert.Equal(t, s.ID(), fields["session_id"])
	assert.Equal(t, company.GameName, fields["game"])
	assert.Equal(t, "lost", fields["status"])

	_, err = s.Handle("next")
	require.ErrorIs(t, err, game.ErrGameAlreadyOver)

	v := handle(t, s, "reset")
	assert.Equal(t, 1, v.Turn)
	assert.Equal(t, game.StatusOngoing, v.Status)
}

func TestUnknownInput(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	v, err := s.Handle("xyzzy plugh")
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.NotEmpty(t, v.Message)

	handle(t, s, "budget", "menu")
	assert.Empty(t, s.Active())
}

func TestDispatchSkipsParser(t *testing.T) {
	s := newSession(t, catalog.BuiltIn())
	v, err := s.Dispatch(parser.Intent{Verb: "choose", Args: []string{"labyrinth"}})
	require.NoError(t, err)
	assert.Equal(t, labyrinth.GameName, v.Game)

	v, err = s.Dispatch(parser.Intent{Verb: "move", Args: []string{"right"}})
	require.NoError(t, err)
	assert.Equal(t, labyrinth.Point{X: 2, Y: 1}, v.Player)

	_, err = s.Dispatch(parser.Intent{Verb: "move", Args: []string{"sideways"}})
	require.ErrorIs(t, err, game.ErrInvalidChoice)
}
