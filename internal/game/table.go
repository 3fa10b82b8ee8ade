package game

import "fmt"

// Table is an ordered scenario table keyed by trigger turn.
type Table struct {
	scenarios []Scenario
	byTurn    map[int]int
}

// NewTable validates scenarios and indexes them by turn. Turns must be
// positive and strictly increasing in table order.
func NewTable(scenarios []Scenario) (Table, error) {
	t := Table{
		scenarios: make([]Scenario, 0, len(scenarios)),
		byTurn:    make(map[int]int, len(scenarios)),
	}
	seen := make(map[string]bool, len(scenarios))
	lastTurn := 0
	for i, s := range scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if s.ID == "" {
			return Table{}, configErrorf("", field, "empty id")
		}
		if seen[s.ID] {
			return Table{}, configErrorf("", field, "duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Turn < 1 {
			return Table{}, configErrorf("", field, "scenario %s has turn %d, turns start at 1", s.ID, s.Turn)
		}
		if s.Turn <= lastTurn {
			return Table{}, configErrorf("", field, "scenario %s on turn %d breaks turn ordering after turn %d", s.ID, s.Turn, lastTurn)
		}
		lastTurn = s.Turn
		if err := validateScenarioShape(field, s); err != nil {
			return Table{}, err
		}

		t.byTurn[s.Turn] = len(t.scenarios)
		t.scenarios = append(t.scenarios, s)
	}
	return t, nil
}

func validateScenarioShape(field string, s Scenario) error {
	switch s.Kind {
	case KindFixedEffect:
		if len(s.Choices) > 0 {
			return configErrorf("", field, "fixed-effect scenario %s must not list choices", s.ID)
		}
	case KindChoiceSet:
		if len(s.Choices) == 0 {
			return configErrorf("", field, "choice-set scenario %s has no choices", s.ID)
		}
		if len(s.Effect) > 0 || s.ScoreDelta != 0 {
			return configErrorf("", field, "choice-set scenario %s must not carry a direct effect", s.ID)
		}
		ids := make(map[string]bool, len(s.Choices))
		for _, c := range s.Choices {
			if c.ID == "" {
				return configErrorf("", field, "scenario %s has a choice without id", s.ID)
			}
			if ids[c.ID] {
				return configErrorf("", field, "scenario %s repeats choice %q", s.ID, c.ID)
			}
			ids[c.ID] = true
			if c.Cost < 0 {
				return configErrorf("", field, "scenario %s choice %s has negative cost", s.ID, c.ID)
			}
		}
	default:
		return configErrorf("", field, "scenario %s has invalid kind %q", s.ID, s.Kind)
	}
	return nil
}

// Lookup returns the scenario triggered on turn, if any.
func (t Table) Lookup(turn int) (Scenario, bool) {
	idx, ok := t.byTurn[turn]
	if !ok {
		return Scenario{}, false
	}
	return t.scenarios[idx], true
}

func (t Table) Len() int {
	return len(t.scenarios)
}

func (t Table) Scenarios() []Scenario {
	out := make([]Scenario, len(t.scenarios))
	copy(out, t.scenarios)
	return out
}
