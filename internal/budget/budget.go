// Package budget configures the twelve-month Budget Challenge on top of the
// generic turn engine.
package budget

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

const GameName = "budget_challenge"

const (
	Balance       game.ResourceID = "balance"
	EmergencyFund game.ResourceID = "emergency_fund"
)

const (
	StartingBalance = 50000
	MaxTurns        = 12
)

// ErrOverBudget indicates a plan whose expense lines exceed its income.
var ErrOverBudget = errors.New("expenses exceed income")

// Plan is the player's monthly budget. Savings leave the balance and are
// credited to the emergency fund.
type Plan struct {
	Income        int `yaml:"income" json:"income"`
	Rent          int `yaml:"rent" json:"rent"`
	Food          int `yaml:"food" json:"food"`
	Transport     int `yaml:"transport" json:"transport"`
	Utilities     int `yaml:"utilities" json:"utilities"`
	Entertainment int `yaml:"entertainment" json:"entertainment"`
	Savings       int `yaml:"savings" json:"savings"`
}

func DefaultPlan() Plan {
	return Plan{
		Income:        25000,
		Rent:          8000,
		Food:          4000,
		Transport:     2000,
		Utilities:     1500,
		Entertainment: 2000,
		Savings:       5000,
	}
}

func (p Plan) Expenses() int {
	return p.Rent + p.Food + p.Transport + p.Utilities + p.Entertainment + p.Savings
}

// Lines returns the expense lines in display order.
func (p Plan) Lines() []game.Flow {
	return []game.Flow{
		{Label: "rent", Resource: Balance, Amount: p.Rent},
		{Label: "food", Resource: Balance, Amount: p.Food},
		{Label: "transport", Resource: Balance, Amount: p.Transport},
		{Label: "utilities", Resource: Balance, Amount: p.Utilities},
		{Label: "entertainment", Resource: Balance, Amount: p.Entertainment},
		{Label: "savings", Resource: Balance, Amount: p.Savings},
	}
}

// Set changes one expense line by label.
func (p Plan) Set(line string, amount int) (Plan, error) {
	switch line {
	case "income":
		p.Income = amount
	case "rent":
		p.Rent = amount
	case "food":
		p.Food = amount
	case "transport":
		p.Transport = amount
	case "utilities":
		p.Utilities = amount
	case "entertainment":
		p.Entertainment = amount
	case "savings":
		p.Savings = amount
	default:
		return p, fmt.Errorf("unknown budget line %q", line)
	}
	return p, nil
}

// Validate is the caller-side check run before a plan reaches the engine.
func (p Plan) Validate() error {
	if p.Income < 0 {
		return fmt.Errorf("income must not be negative, got %d", p.Income)
	}
	for _, line := range p.Lines() {
		if line.Amount < 0 {
			return fmt.Errorf("%s must not be negative, got %d", line.Label, line.Amount)
		}
	}
	if total := p.Expenses(); total > p.Income {
		return fmt.Errorf("%w: %d > %d", ErrOverBudget, total, p.Income)
	}
	return nil
}

// Flows converts the plan into engine flows: income in, every expense line
// out of the balance, savings into the emergency fund.
func (p Plan) Flows() []game.Flow {
	flows := []game.Flow{{Label: "income", Resource: Balance, Amount: p.Income}}
	for _, line := range p.Lines() {
		line.Amount = -line.Amount
		flows = append(flows, line)
	}
	return append(flows, game.Flow{Label: "savings", Resource: EmergencyFund, Amount: p.Savings})
}

// Rules holds everything about the challenge that is not the player's plan.
type Rules struct {
	StartingBalance int                `yaml:"starting_balance" json:"starting_balance"`
	MaxTurns        int                `yaml:"max_turns" json:"max_turns"`
	ChoiceScoring   game.ChoiceScoring `yaml:"choice_scoring" json:"choice_scoring"`
	ScoreRules      []game.ScoreRule   `yaml:"score_rules" json:"score_rules"`
	LoseWhen        []game.Condition   `yaml:"lose_when" json:"lose_when"`
	WinWhen         []game.Condition   `yaml:"win_when" json:"win_when"`
	Scenarios       []game.Scenario    `yaml:"scenarios" json:"scenarios"`
}

func DefaultRules() Rules {
	return Rules{
		StartingBalance: StartingBalance,
		MaxTurns:        MaxTurns,
		ChoiceScoring: game.ChoiceScoring{
			Bands: []game.CostBand{
				{Below: 3000, Points: 15},
				{Below: 6000, Points: 5},
			},
			Otherwise: -5,
		},
		ScoreRules: []game.ScoreRule{
			{When: game.Condition{Resource: Balance, Op: game.Above, Value: 30000}, Points: 10},
			{When: game.Condition{Resource: EmergencyFund, Op: game.Above, Value: 20000}, Points: 15},
			{When: game.Condition{Resource: Balance, Op: game.Below, Value: 10000}, Points: -20},
		},
		LoseWhen: []game.Condition{
			{Resource: Balance, Op: game.Below, Value: 0},
		},
		WinWhen: []game.Condition{
			{Resource: Balance, Op: game.Above, Value: 0},
			{Resource: EmergencyFund, Op: game.Above, Value: 15000},
		},
		Scenarios: BuiltInScenarios(),
	}
}

// Config assembles the engine configuration for rules and plan.
func Config(rules Rules, plan Plan) game.Config {
	return game.Config{
		Name:     GameName,
		MaxTurns: rules.MaxTurns,
		Initial: game.Resources{
			Balance:       rules.StartingBalance,
			EmergencyFund: 0,
		},
		Flows:          plan.Flows(),
		ChoiceResource: Balance,
		ChoiceScoring:  rules.ChoiceScoring,
		ScoreRules:     rules.ScoreRules,
		LoseWhen:       rules.LoseWhen,
		WinWhen:        rules.WinWhen,
		Scenarios:      rules.Scenarios,
	}
}

// NewEngine validates plan and builds an engine for it.
func NewEngine(rules Rules, plan Plan) (*game.Engine, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return game.NewEngine(Config(rules, plan))
}
