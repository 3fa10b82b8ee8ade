// Package labyrinth implements Loan Labyrinth: walk a village maze, borrow at
// loan desks, repay to earn trust and unlock shortcuts, reach the goal debt
// free.
package labyrinth

import (
	"fmt"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

const GameName = "loan_labyrinth"

type Cell int

const (
	Open     Cell = 0
	Wall     Cell = 1
	LoanDesk Cell = 2
	Goal     Cell = 3
	Lesson   Cell = 6
)

type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Offer is a loan available at every loan desk.
type Offer struct {
	ID             string `yaml:"id" json:"id"`
	Amount         int    `yaml:"amount" json:"amount"`
	InterestPct    int    `yaml:"interest_pct" json:"interest_pct"`
	TermMonths     int    `yaml:"term_months" json:"term_months"`
	MonthlyPayment int    `yaml:"monthly_payment" json:"monthly_payment"`
	Description    string `yaml:"description" json:"description"`
	Purpose        string `yaml:"purpose" json:"purpose"`
	Risk           Risk   `yaml:"risk" json:"risk"`
}

// RepaymentDue is principal plus simple interest.
func (o Offer) RepaymentDue() int {
	return o.Amount + o.Amount*o.InterestPct/100
}

type Config struct {
	Layout       [][]Cell `yaml:"layout" json:"layout"`
	Start        Point    `yaml:"start" json:"start"`
	InitialTrust int      `yaml:"initial_trust" json:"initial_trust"`
	MaxTrust     int      `yaml:"max_trust" json:"max_trust"`
	InitialMoney int      `yaml:"initial_money" json:"initial_money"`
	Offers       []Offer  `yaml:"offers" json:"offers"`

	// MaxTurns bounds the number of moves; running out loses the game.
	MaxTurns     int `yaml:"max_turns" json:"max_turns"`
	DaysPerMonth int `yaml:"days_per_month" json:"days_per_month"`
	DaysPerMove  int `yaml:"days_per_move" json:"days_per_move"`

	// Repaying while more than EarlyDaysPerMonth*term days remain earns
	// EarlyBonus trust, otherwise OnTimeBonus.
	EarlyDaysPerMonth int `yaml:"early_days_per_month" json:"early_days_per_month"`
	EarlyBonus        int `yaml:"early_bonus" json:"early_bonus"`
	OnTimeBonus       int `yaml:"on_time_bonus" json:"on_time_bonus"`
	// OverduePenalty is charged to trust on every move made with an overdue loan.
	OverduePenalty int `yaml:"overdue_penalty" json:"overdue_penalty"`

	Shortcuts   []Point  `yaml:"shortcuts" json:"shortcuts"`
	Bonuses     []Point  `yaml:"bonuses" json:"bonuses"`
	BonusAmount int      `yaml:"bonus_amount" json:"bonus_amount"`
	Lessons     []string `yaml:"lessons" json:"lessons"`
	Hints       []string `yaml:"hints" json:"hints"`
}

func DefaultConfig() Config {
	return Config{
		Layout: [][]Cell{
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 2, 1, 0, 0, 6, 0, 0, 0, 1},
			{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1},
			{1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1},
			{1, 0, 1, 1, 1, 2, 1, 0, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 6, 1},
			{1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1},
			{1, 0, 1, 6, 0, 0, 1, 2, 0, 0, 0, 1},
			{1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 3, 1},
			{1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		Start:        Point{X: 1, Y: 1},
		InitialTrust: 100,
		MaxTrust:     100,
		InitialMoney: 10000,
		Offers: []Offer{
			{ID: "crop", Amount: 15000, InterestPct: 8, TermMonths: 6, MonthlyPayment: 2700,
				Description: "Crop Loan - For seeds, fertilizers, and farming needs", Purpose: "Agriculture & Farming", Risk: RiskLow},
			{ID: "home", Amount: 50000, InterestPct: 12, TermMonths: 24, MonthlyPayment: 2500,
				Description: "Home Improvement Loan - For house repairs and upgrades", Purpose: "Home & Family", Risk: RiskMedium},
			{ID: "business", Amount: 25000, InterestPct: 15, TermMonths: 12, MonthlyPayment: 2400,
				Description: "Small Business Loan - For shop, equipment, or trade", Purpose: "Business & Trade", Risk: RiskMedium},
			{ID: "emergency", Amount: 8000, InterestPct: 20, TermMonths: 3, MonthlyPayment: 3200,
				Description: "Emergency Loan - Quick money for urgent needs", Purpose: "Emergency & Health", Risk: RiskHigh},
		},
		MaxTurns:          200,
		DaysPerMonth:      30,
		DaysPerMove:       3,
		EarlyDaysPerMonth: 20,
		EarlyBonus:        30,
		OnTimeBonus:       20,
		OverduePenalty:    25,
		Shortcuts:         []Point{{X: 4, Y: 4}, {X: 7, Y: 6}, {X: 9, Y: 8}},
		Bonuses:           []Point{{X: 2, Y: 5}, {X: 6, Y: 3}, {X: 8, Y: 7}},
		BonusAmount:       500,
		Lessons: []string{
			"Interest is the price of borrowing: a 20% loan costs far more than an 8% one.",
			"Borrow for things that earn or protect income, like seeds or a shop, not for celebrations.",
			"Repaying early builds trust with lenders and opens better offers later.",
		},
		Hints: []string{
			"Look for green paths - they're safer loan options!",
			"Red loans have high interest. Only take them for real emergencies.",
			"Pay loans early to build trust and unlock shortcuts.",
			"Education points (books) teach you valuable financial lessons.",
			"Your trust score affects future loan offers.",
		},
	}
}

func (c Config) Validate() error {
	fail := func(field, format string, args ...any) error {
		return &game.ConfigError{Game: GameName, Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	if len(c.Layout) == 0 {
		return fail("layout", "must not be empty")
	}
	width := len(c.Layout[0])
	goals := 0
	for y, row := range c.Layout {
		if len(row) != width {
			return fail("layout", "row %d has %d cells, want %d", y, len(row), width)
		}
		for x, cell := range row {
			switch cell {
			case Open, Wall, LoanDesk, Lesson:
			case Goal:
				goals++
			default:
				return fail("layout", "unknown cell %d at (%d,%d)", cell, x, y)
			}
		}
	}
	if goals == 0 {
		return fail("layout", "no goal cell")
	}
	if !c.inside(c.Start) || c.Layout[c.Start.Y][c.Start.X] == Wall {
		return fail("start", "(%d,%d) is not an open cell", c.Start.X, c.Start.Y)
	}
	if c.InitialTrust < 0 || c.InitialTrust > c.MaxTrust {
		return fail("initial_trust", "must be within 0..%d", c.MaxTrust)
	}
	if c.MaxTurns < 1 {
		return fail("max_turns", "must be positive")
	}
	if c.DaysPerMonth < 1 || c.DaysPerMove < 0 {
		return fail("days_per_month", "day accounting must be positive")
	}
	ids := make(map[string]bool, len(c.Offers))
	for i, o := range c.Offers {
		if o.ID == "" || ids[o.ID] {
			return fail(fmt.Sprintf("offers[%d]", i), "missing or duplicate id %q", o.ID)
		}
		ids[o.ID] = true
		if o.Amount <= 0 || o.TermMonths <= 0 || o.InterestPct < 0 {
			return fail(fmt.Sprintf("offers[%d]", i), "offer %s needs positive amount and term", o.ID)
		}
	}
	for i, p := range append(append([]Point{}, c.Shortcuts...), c.Bonuses...) {
		if !c.inside(p) {
			return fail("shortcuts", "point %d (%d,%d) is outside the maze", i, p.X, p.Y)
		}
	}
	return nil
}

func (c Config) Offer(id string) (Offer, bool) {
	for _, o := range c.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}

func (c Config) inside(p Point) bool {
	return p.Y >= 0 && p.Y < len(c.Layout) && p.X >= 0 && p.X < len(c.Layout[p.Y])
}
