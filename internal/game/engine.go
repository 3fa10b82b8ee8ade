package game

import (
	"fmt"
	"strings"
)

// Engine advances GameState values for one validated Config.
type Engine struct {
	cfg   Config
	table Table
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := NewTable(cfg.Scenarios)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, table: table}, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Table() Table {
	return e.table
}

// Start returns a fresh game on turn 1 with the configured initial resources.
func (e *Engine) Start() GameState {
	state := GameState{
		Game:      e.cfg.Name,
		Turn:      1,
		Resources: e.cfg.Initial.Clone(),
		Status:    StatusOngoing,
	}
	state.ActiveScenario = e.scenarioFor(state.Turn)
	return state
}

// Reset discards everything about the current game and starts over.
func (e *Engine) Reset() GameState {
	return e.Start()
}

// Advance resolves the current turn and moves the game to the next one.
// choiceID must name an option of the active scenario when that scenario is
// a choice set, and must be empty otherwise. On error the input state is
// returned unchanged.
func (e *Engine) Advance(state GameState, choiceID string) (GameState, error) {
	if state.Status.Terminal() {
		return state, fmt.Errorf("%w: %s ended %s on turn %d", ErrGameAlreadyOver, state.Game, state.Status, state.Turn)
	}

	choiceID = strings.TrimSpace(choiceID)
	scenario := state.ActiveScenario

	var choice Choice
	switch {
	case scenario != nil && scenario.RequiresChoice():
		if choiceID == "" {
			return state, fmt.Errorf("%w: %s needs one of [%s]", ErrInvalidChoice, scenario.ID, strings.Join(scenario.ChoiceIDs(), ", "))
		}
		c, ok := scenario.Choice(choiceID)
		if !ok {
			return state, fmt.Errorf("%w: %s has no option %q", ErrInvalidChoice, scenario.ID, choiceID)
		}
		choice = c
	case choiceID != "":
		return state, fmt.Errorf("%w: no choice is pending on turn %d", ErrInvalidChoice, state.Turn)
	}

	next := state.clone()
	res := next.Resources
	for _, f := range e.cfg.Flows {
		res[f.Resource] += f.Amount
	}

	report := TurnReport{Turn: state.Turn}
	delta := 0
	if scenario != nil {
		report.ScenarioID = scenario.ID
		if scenario.RequiresChoice() {
			res[e.cfg.ChoiceResource] -= choice.Cost
			delta += e.cfg.ChoiceScoring.Points(choice.Cost)
			report.ChoiceID = choice.ID
			report.Outcome = choice.Outcome
		} else {
			for id, amount := range scenario.Effect {
				res[id] += amount
			}
			delta += scenario.ScoreDelta
			report.Outcome = scenario.Outcome
		}
	}

	for _, rule := range e.cfg.ScoreRules {
		if rule.When.Holds(res) {
			delta += rule.Points
		}
	}

	next.Score = max(0, state.Score+delta)
	next.Turn = state.Turn + 1
	next.ActiveScenario = nil
	next.Status = e.evaluate(res, next.Turn)
	if next.Status == StatusOngoing {
		next.ActiveScenario = e.scenarioFor(next.Turn)
	}

	report.ScoreDelta = next.Score - state.Score
	report.Resources = res.Clone()
	next.Log = append(next.Log, report)

	return next, nil
}

// evaluate applies the terminal check for the transition into turn.
func (e *Engine) evaluate(res Resources, turn int) Status {
	for _, cond := range e.cfg.LoseWhen {
		if cond.Holds(res) {
			return StatusLost
		}
	}
	if turn < e.cfg.MaxTurns {
		return StatusOngoing
	}
	for _, cond := range e.cfg.WinWhen {
		if !cond.Holds(res) {
			return StatusLost
		}
	}
	return StatusWon
}

func (e *Engine) scenarioFor(turn int) *Scenario {
	s, ok := e.table.Lookup(turn)
	if !ok {
		return nil
	}
	return &s
}

// Unmet lists the win conditions that do not hold for res.
func (e *Engine) Unmet(res Resources) []Condition {
	var out []Condition
	for _, cond := range e.cfg.WinWhen {
		if !cond.Holds(res) {
			out = append(out, cond)
		}
	}
	return out
}
