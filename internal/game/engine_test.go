package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cash  ResourceID = "cash"
	stash ResourceID = "stash"
)

func testConfig() Config {
	return Config{
		Name:     "test",
		MaxTurns: 5,
		Initial:  Resources{cash: 1000, stash: 0},
		Flows: []Flow{
			{Label: "wage", Resource: cash, Amount: 500},
			{Label: "rent", Resource: cash, Amount: -300},
			{Label: "save", Resource: cash, Amount: -100},
			{Label: "save", Resource: stash, Amount: 100},
		},
		ChoiceResource: cash,
		ChoiceScoring: ChoiceScoring{
			Bands:     []CostBand{{Below: 100, Points: 15}, {Below: 300, Points: 5}},
			Otherwise: -5,
		},
		ScoreRules: []ScoreRule{
			{When: Condition{Resource: cash, Op: Above, Value: 1500}, Points: 10},
			{When: Condition{Resource: cash, Op: Below, Value: 500}, Points: -20},
		},
		LoseWhen: []Condition{{Resource: cash, Op: Below, Value: 0}},
		WinWhen:  []Condition{{Resource: stash, Op: Above, Value: 250}},
		Scenarios: []Scenario{
			{
				ID: "gift", Turn: 2, Title: "Gift", Kind: KindChoiceSet,
				Choices: []Choice{
					{ID: "big", Label: "Big", Cost: 600, Outcome: "big gift"},
					{ID: "small", Label: "Small", Cost: 50, Outcome: "small gift"},
				},
			},
			{ID: "fine", Turn: 3, Title: "Fine", Kind: KindFixedEffect, Effect: Resources{cash: -2000}, ScoreDelta: -10, Outcome: "paid fine"},
		},
	}
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func TestStartUsesInitialResources(t *testing.T) {
	e := newTestEngine(t, testConfig())
	s := e.Start()

	assert.Equal(t, 1, s.Turn)
	assert.Equal(t, StatusOngoing, s.Status)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1000, s.Resource(cash))
	assert.Nil(t, s.ActiveScenario)
	assert.Empty(t, s.Log)
}

func TestAdvanceAppliesFlows(t *testing.T) {
	e := newTestEngine(t, testConfig())

	s, err := e.Advance(e.Start(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Turn)
	assert.Equal(t, 1100, s.Resource(cash))
	assert.Equal(t, 100, s.Resource(stash))
	require.NotNil(t, s.ActiveScenario)
	assert.Equal(t, "gift", s.ActiveScenario.ID)
	require.Len(t, s.Log, 1)
	assert.Equal(t, 1, s.Log[0].Turn)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t, testConfig())
	start := e.Start()

	_, err := e.Advance(start, "")
	require.NoError(t, err)

	assert.Equal(t, 1000, start.Resource(cash))
	assert.Equal(t, 1, start.Turn)
	assert.Empty(t, start.Log)
}

func TestChoiceRequired(t *testing.T) {
	e := newTestEngine(t, testConfig())
	s, err := e.Advance(e.Start(), "")
	require.NoError(t, err)

	got, err := e.Advance(s, "")
	require.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, s, got)

	got, err = e.Advance(s, "medium")
	require.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, s, got)
}

func TestChoiceRejectedWhenNothingPending(t *testing.T) {
	e := newTestEngine(t, testConfig())
	start := e.Start()

	got, err := e.Advance(start, "small")
	require.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, start, got)
}

func TestChoiceCostAndScoring(t *testing.T) {
	tests := []struct {
		choice    string
		wantCash  int
		wantScore int
	}{
		// 1100 + 100 - 50 = 1150: +15 band, no threshold.
		{choice: "small", wantCash: 1150, wantScore: 15},
		// 1100 + 100 - 600 = 600: -5 band, floor clamps to zero.
		{choice: "big", wantCash: 600, wantScore: 0},
	}
	for _, tc := range tests {
		t.Run(tc.choice, func(t *testing.T) {
			e := newTestEngine(t, testConfig())
			s, err := e.Advance(e.Start(), "")
			require.NoError(t, err)

			s, err = e.Advance(s, tc.choice)
			require.NoError(t, err)

			assert.Equal(t, tc.wantCash, s.Resource(cash))
			assert.Equal(t, tc.wantScore, s.Score)
			last := s.Log[len(s.Log)-1]
			assert.Equal(t, "gift", last.ScenarioID)
			assert.Equal(t, tc.choice, last.ChoiceID)
		})
	}
}

func TestFixedEffectCanLoseTheGame(t *testing.T) {
	e := newTestEngine(t, testConfig())
	s, err := e.Advance(e.Start(), "")
	require.NoError(t, err)
	s, err = e.Advance(s, "small")
	require.NoError(t, err)
	require.Equal(t, "fine", s.ActiveScenario.ID)

	s, err = e.Advance(s, "")
	require.NoError(t, err)

	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, 1150+100-2000, s.Resource(cash))
	assert.Nil(t, s.ActiveScenario)
	assert.Equal(t, "paid fine", s.Log[len(s.Log)-1].Outcome)
}

func TestTerminalStateRejectsAdvance(t *testing.T) {
	e := newTestEngine(t, testConfig())
	s, _ := e.Advance(e.Start(), "")
	s, _ = e.Advance(s, "small")
	s, _ = e.Advance(s, "")
	require.Equal(t, StatusLost, s.Status)

	for i := 0; i < 3; i++ {
		got, err := e.Advance(s, "")
		require.ErrorIs(t, err, ErrGameAlreadyOver)
		assert.Equal(t, s, got)
	}
}

func TestWinCheckedOnceAtFinalTurn(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = nil
	e := newTestEngine(t, cfg)

	s := e.Start()
	for turn := 1; turn < cfg.MaxTurns; turn++ {
		require.Equal(t, StatusOngoing, s.Status, "turn %d", turn)
		var err error
		s, err = e.Advance(s, "")
		require.NoError(t, err)
		assert.Equal(t, turn+1, s.Turn)
	}

	assert.Equal(t, cfg.MaxTurns, s.Turn)
	assert.Equal(t, 400, s.Resource(stash))
	assert.Equal(t, StatusWon, s.Status)
}

func TestFinalTurnWithoutWinConditionsLoses(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = nil
	cfg.WinWhen = []Condition{{Resource: stash, Op: Above, Value: 10000}}
	e := newTestEngine(t, cfg)

	s := e.Start()
	for s.Status == StatusOngoing {
		var err error
		s, err = e.Advance(s, "")
		require.NoError(t, err)
	}

	assert.Equal(t, cfg.MaxTurns, s.Turn)
	assert.Equal(t, StatusLost, s.Status)
	assert.Len(t, e.Unmet(s.Resources), 1)
}

func TestThresholdsAreStrict(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = nil
	cfg.Flows = nil
	cfg.Initial = Resources{cash: 500, stash: 0}
	e := newTestEngine(t, cfg)

	s, err := e.Advance(e.Start(), "")
	require.NoError(t, err)

	// cash == 500 must not trigger the "< 500" penalty.
	assert.Equal(t, 0, s.Log[0].ScoreDelta)
}

func TestScoreNeverNegative(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = nil
	cfg.Flows = []Flow{{Resource: cash, Amount: -100}}
	cfg.LoseWhen = nil
	e := newTestEngine(t, cfg)

	s := e.Start()
	for s.Status == StatusOngoing {
		var err error
		s, err = e.Advance(s, "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Score, 0)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	play := func() GameState {
		e := newTestEngine(t, testConfig())
		s := e.Start()
		for _, choice := range []string{"", "small", ""} {
			var err error
			s, err = e.Advance(s, choice)
			require.NoError(t, err)
		}
		return s
	}

	assert.Equal(t, play(), play())
}

func TestResetRestoresInitialConfiguration(t *testing.T) {
	e := newTestEngine(t, testConfig())
	s, _ := e.Advance(e.Start(), "")
	s, _ = e.Advance(s, "big")
	require.NotEmpty(t, s.Log)

	assert.Equal(t, e.Start(), e.Reset())
	assert.Equal(t, testConfig().Initial, e.Reset().Resources)
}
