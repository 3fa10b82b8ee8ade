package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

func festivalOnTurn(turn int) []game.Scenario {
	s := BuiltInScenarios()[0]
	s.Turn = turn
	return []game.Scenario{s}
}

func TestDefaultPlanTotals(t *testing.T) {
	plan := DefaultPlan()
	assert.Equal(t, 22500, plan.Expenses())
	require.NoError(t, plan.Validate())
}

func TestBuiltInScenariosAreValid(t *testing.T) {
	table, err := game.NewTable(BuiltInScenarios())
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	for _, turn := range []int{2, 4, 6, 8, 10} {
		_, ok := table.Lookup(turn)
		assert.True(t, ok, "turn %d", turn)
	}
}

func TestModerateFestivalChoice(t *testing.T) {
	rules := DefaultRules()
	rules.Scenarios = festivalOnTurn(1)
	e, err := NewEngine(rules, DefaultPlan())
	require.NoError(t, err)

	s := e.Start()
	require.NotNil(t, s.ActiveScenario)

	s, err = e.Advance(s, "moderate")
	require.NoError(t, err)

	// 50000 + 25000 - 22500 - 4000
	assert.Equal(t, 48500, s.Resource(Balance))
	assert.Equal(t, 5000, s.Resource(EmergencyFund))
	// +5 for a 4000 choice, +10 for balance above 30000.
	assert.Equal(t, 15, s.Score)
	assert.Equal(t, "Good balance of celebration and savings", s.Log[0].Outcome)
}

func TestLowBalancePenaltyIsStrict(t *testing.T) {
	rules := DefaultRules()
	rules.Scenarios = nil

	rules.StartingBalance = 7500
	e, err := NewEngine(rules, DefaultPlan())
	require.NoError(t, err)
	s := e.Start()
	s.Score = 50
	s, err = e.Advance(s, "")
	require.NoError(t, err)
	assert.Equal(t, 10000, s.Resource(Balance))
	assert.Equal(t, 50, s.Score, "balance of exactly 10000 is not below 10000")

	rules.StartingBalance = 7499
	e, err = NewEngine(rules, DefaultPlan())
	require.NoError(t, err)
	s = e.Start()
	s.Score = 50
	s, err = e.Advance(s, "")
	require.NoError(t, err)
	assert.Equal(t, 30, s.Score)
}

func TestFullPlaythroughWins(t *testing.T) {
	e, err := NewEngine(DefaultRules(), DefaultPlan())
	require.NoError(t, err)

	choices := map[int]string{2: "minimal", 8: "appropriate", 10: "basic"}
	s := e.Start()
	for s.Status == game.StatusOngoing {
		s, err = e.Advance(s, choices[s.Turn])
		require.NoError(t, err)
	}

	assert.Equal(t, game.StatusWon, s.Status)
	assert.Equal(t, MaxTurns, s.Turn)
	assert.Equal(t, 69500, s.Resource(Balance))
	assert.Equal(t, 55000, s.Resource(EmergencyFund))
	assert.Equal(t, 270, s.Score)
	assert.Len(t, s.Log, MaxTurns-1)

	_, err = e.Advance(s, "")
	require.ErrorIs(t, err, game.ErrGameAlreadyOver)
}

func TestBankruptcyLoses(t *testing.T) {
	rules := DefaultRules()
	rules.StartingBalance = 10000
	plan, err := DefaultPlan().Set("rent", 10500)
	require.NoError(t, err)
	require.Equal(t, plan.Income, plan.Expenses())

	e, err := NewEngine(rules, plan)
	require.NoError(t, err)

	s := e.Start()
	for _, choice := range []string{"", "expensive", "", ""} {
		s, err = e.Advance(s, choice)
		require.NoError(t, err)
	}

	assert.Equal(t, game.StatusLost, s.Status)
	assert.Equal(t, -13000, s.Resource(Balance))
	assert.Equal(t, 5, s.Turn)
	assert.Nil(t, s.ActiveScenario)
}

func TestPlanValidation(t *testing.T) {
	over, err := DefaultPlan().Set("entertainment", 5000)
	require.NoError(t, err)
	require.ErrorIs(t, over.Validate(), ErrOverBudget)

	_, err = NewEngine(DefaultRules(), over)
	require.ErrorIs(t, err, ErrOverBudget)

	negative, err := DefaultPlan().Set("food", -1)
	require.NoError(t, err)
	assert.Error(t, negative.Validate())

	_, err = DefaultPlan().Set("yacht", 1)
	assert.Error(t, err)
}

func TestReplanKeepsState(t *testing.T) {
	e, err := NewEngine(DefaultRules(), DefaultPlan())
	require.NoError(t, err)
	s, err := e.Advance(e.Start(), "")
	require.NoError(t, err)

	leaner, err := DefaultPlan().Set("entertainment", 500)
	require.NoError(t, err)
	e2, err := NewEngine(DefaultRules(), leaner)
	require.NoError(t, err)

	s, err = e2.Advance(s, "minimal")
	require.NoError(t, err)
	// 52500 + 25000 - 21000 - 1500
	assert.Equal(t, 55000, s.Resource(Balance))
}
