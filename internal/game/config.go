package game

import (
	"errors"
	"fmt"
)

// Flow is a fixed per-turn change to one resource (income, an expense line,
// or a transfer into a pool).
type Flow struct {
	Label    string     `yaml:"label" json:"label"`
	Resource ResourceID `yaml:"resource" json:"resource"`
	Amount   int        `yaml:"amount" json:"amount"`
}

type Comparison string

const (
	Above   Comparison = ">"
	Below   Comparison = "<"
	AtLeast Comparison = ">="
	AtMost  Comparison = "<="
)

// Condition compares one resource against a fixed threshold.
type Condition struct {
	Resource ResourceID `yaml:"resource" json:"resource"`
	Op       Comparison `yaml:"op" json:"op"`
	Value    int        `yaml:"value" json:"value"`
}

func (c Condition) Holds(r Resources) bool {
	v := r[c.Resource]
	switch c.Op {
	case Above:
		return v > c.Value
	case Below:
		return v < c.Value
	case AtLeast:
		return v >= c.Value
	case AtMost:
		return v <= c.Value
	default:
		return false
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %d", c.Resource, c.Op, c.Value)
}

// ScoreRule awards Points (negative to penalize) whenever When holds after
// a turn's resources are settled.
type ScoreRule struct {
	When   Condition `yaml:"when" json:"when"`
	Points int       `yaml:"points" json:"points"`
}

// CostBand awards Points to choices costing strictly less than Below.
type CostBand struct {
	Below  int `yaml:"below" json:"below"`
	Points int `yaml:"points" json:"points"`
}

// ChoiceScoring maps a chosen option's cost to a score delta using ordered
// breakpoints; Otherwise applies when no band matches.
type ChoiceScoring struct {
	Bands     []CostBand `yaml:"bands" json:"bands"`
	Otherwise int        `yaml:"otherwise" json:"otherwise"`
}

func (c ChoiceScoring) Points(cost int) int {
	for _, band := range c.Bands {
		if cost < band.Below {
			return band.Points
		}
	}
	return c.Otherwise
}

// Config fully describes one turn-based scenario game.
type Config struct {
	Name     string    `yaml:"name" json:"name"`
	MaxTurns int       `yaml:"max_turns" json:"max_turns"`
	Initial  Resources `yaml:"initial" json:"initial"`
	Flows    []Flow    `yaml:"flows" json:"flows"`

	// ChoiceResource pays for options picked in choice-set scenarios.
	ChoiceResource ResourceID    `yaml:"choice_resource" json:"choice_resource"`
	ChoiceScoring  ChoiceScoring `yaml:"choice_scoring" json:"choice_scoring"`
	ScoreRules     []ScoreRule   `yaml:"score_rules" json:"score_rules"`

	// LoseWhen ends the game as lost as soon as any condition holds.
	LoseWhen []Condition `yaml:"lose_when" json:"lose_when"`
	// WinWhen must all hold when the final turn is reached.
	WinWhen []Condition `yaml:"win_when" json:"win_when"`

	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

func (c Config) Validate() error {
	if c.Name == "" {
		return configErrorf(c.Name, "name", "must not be empty")
	}
	if c.MaxTurns < 2 {
		return configErrorf(c.Name, "max_turns", "must be at least 2, got %d", c.MaxTurns)
	}
	if len(c.Initial) == 0 {
		return configErrorf(c.Name, "initial", "at least one resource is required")
	}

	known := func(field string, id ResourceID) error {
		if _, ok := c.Initial[id]; !ok {
			return configErrorf(c.Name, field, "unknown resource %q", id)
		}
		return nil
	}

	for i, f := range c.Flows {
		if err := known(fmt.Sprintf("flows[%d]", i), f.Resource); err != nil {
			return err
		}
	}
	for i, r := range c.ScoreRules {
		if err := validateCondition(c, fmt.Sprintf("score_rules[%d]", i), r.When, known); err != nil {
			return err
		}
	}
	for i, cond := range c.LoseWhen {
		if err := validateCondition(c, fmt.Sprintf("lose_when[%d]", i), cond, known); err != nil {
			return err
		}
	}
	for i, cond := range c.WinWhen {
		if err := validateCondition(c, fmt.Sprintf("win_when[%d]", i), cond, known); err != nil {
			return err
		}
	}

	prev := 0
	for i, band := range c.ChoiceScoring.Bands {
		if i > 0 && band.Below <= prev {
			return configErrorf(c.Name, "choice_scoring", "bands must be strictly increasing, %d after %d", band.Below, prev)
		}
		prev = band.Below
	}

	if _, err := NewTable(c.Scenarios); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Game == "" {
			cfgErr.Game = c.Name
		}
		return err
	}

	needsChoiceResource := false
	for _, s := range c.Scenarios {
		if s.Turn >= c.MaxTurns {
			return configErrorf(c.Name, "scenarios", "scenario %s on turn %d never plays (max_turns %d)", s.ID, s.Turn, c.MaxTurns)
		}
		for id := range s.Effect {
			if err := known("scenarios."+s.ID+".effect", id); err != nil {
				return err
			}
		}
		if s.RequiresChoice() {
			needsChoiceResource = true
		}
	}
	if needsChoiceResource {
		if err := known("choice_resource", c.ChoiceResource); err != nil {
			return err
		}
	}

	return nil
}

func validateCondition(c Config, field string, cond Condition, known func(string, ResourceID) error) error {
	switch cond.Op {
	case Above, Below, AtLeast, AtMost:
	default:
		return configErrorf(c.Name, field, "invalid comparison %q", cond.Op)
	}
	return known(field, cond.Resource)
}
