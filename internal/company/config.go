// Package company implements the twelve-month company simulator: invest in
// growth, weather random market events, finish the year above the cash
// target.
package company

import (
	"fmt"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

const GameName = "company_sim"

type Category string

const (
	Marketing  Category = "marketing"
	Product    Category = "product"
	HR         Category = "hr"
	Operations Category = "operations"
)

func (c Category) known() bool {
	switch c {
	case Marketing, Product, HR, Operations:
		return true
	}
	return false
}

// Stats are the company figures shown every month.
type Stats struct {
	Cash         int `yaml:"cash" json:"cash"`
	Revenue      int `yaml:"revenue" json:"revenue"`
	Employees    int `yaml:"employees" json:"employees"`
	MarketShare  int `yaml:"market_share" json:"market_share"`
	Satisfaction int `yaml:"satisfaction" json:"satisfaction"`
}

// Profit is the monthly result before events.
func (s Stats) Profit(costPerEmployee int) int {
	return s.Revenue - s.Employees*costPerEmployee
}

type Investment struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description"`
	Cost          int      `yaml:"cost" json:"cost"`
	MonthlyReturn int      `yaml:"monthly_return" json:"monthly_return"`
	Category      Category `yaml:"category" json:"category"`
	Risk          string   `yaml:"risk" json:"risk"`
}

// Impact is applied to the stats when an event is resolved.
type Impact struct {
	Cash         int `yaml:"cash,omitempty" json:"cash,omitempty"`
	Revenue      int `yaml:"revenue,omitempty" json:"revenue,omitempty"`
	Employees    int `yaml:"employees,omitempty" json:"employees,omitempty"`
	MarketShare  int `yaml:"market_share,omitempty" json:"market_share,omitempty"`
	Satisfaction int `yaml:"satisfaction,omitempty" json:"satisfaction,omitempty"`
}

type Event struct {
	ID          string        `yaml:"id" json:"id"`
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description" json:"description"`
	Impact      Impact        `yaml:"impact" json:"impact"`
	Choices     []game.Choice `yaml:"choices" json:"choices"`
}

func (e Event) Choice(id string) (game.Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return game.Choice{}, false
}

// CategoryEffect is the side effect every investment of a category has on
// the non-financial stats.
type CategoryEffect struct {
	Employees    int `yaml:"employees,omitempty" json:"employees,omitempty"`
	MarketShare  int `yaml:"market_share,omitempty" json:"market_share,omitempty"`
	Satisfaction int `yaml:"satisfaction,omitempty" json:"satisfaction,omitempty"`
}

type Config struct {
	Initial         Stats                       `yaml:"initial" json:"initial"`
	MaxTurns        int                         `yaml:"max_turns" json:"max_turns"`
	CostPerEmployee int                         `yaml:"cost_per_employee" json:"cost_per_employee"`
	EventChance     float64                     `yaml:"event_chance" json:"event_chance"`
	WinCash         int                         `yaml:"win_cash" json:"win_cash"`
	Effects         map[Category]CategoryEffect `yaml:"effects" json:"effects"`
	Investments     []Investment                `yaml:"investments" json:"investments"`
	Events          []Event                     `yaml:"events" json:"events"`
}

func DefaultConfig() Config {
	return Config{
		Initial: Stats{
			Cash:         1000000,
			Revenue:      50000,
			Employees:    10,
			MarketShare:  5,
			Satisfaction: 70,
		},
		MaxTurns:        12,
		CostPerEmployee: 5000,
		EventChance:     0.3,
		WinCash:         2000000,
		Effects: map[Category]CategoryEffect{
			HR:         {Employees: 2},
			Marketing:  {MarketShare: 1},
			Operations: {Satisfaction: 5},
		},
		Investments: []Investment{
			{ID: "digital-marketing", Name: "Digital Marketing Campaign", Description: "Boost online presence and customer acquisition",
				Cost: 50000, MonthlyReturn: 15000, Category: Marketing, Risk: "medium"},
			{ID: "product-development", Name: "Product Development", Description: "Develop new features and improve product quality",
				Cost: 100000, MonthlyReturn: 25000, Category: Product, Risk: "high"},
			{ID: "sales-team", Name: "Hire Sales Team", Description: "Expand sales force to reach more customers",
				Cost: 80000, MonthlyReturn: 20000, Category: HR, Risk: "low"},
			{ID: "automation", Name: "Automation System", Description: "Reduce operational costs through automation",
				Cost: 150000, MonthlyReturn: 30000, Category: Operations, Risk: "medium"},
			{ID: "support-center", Name: "Customer Support Center", Description: "Improve customer satisfaction and retention",
				Cost: 60000, MonthlyReturn: 10000, Category: Operations, Risk: "low"},
			{ID: "market-research", Name: "Market Research", Description: "Better understand market trends and opportunities",
				Cost: 30000, MonthlyReturn: 8000, Category: Marketing, Risk: "low"},
		},
		Events: []Event{
			{
				ID: "downturn", Title: "Economic Downturn",
				Description: "The economy is facing challenges. How do you respond?",
				Impact:      Impact{Revenue: -20000, MarketShare: -2},
				Choices: []game.Choice{
					{ID: "cut-costs", Label: "Cut costs and wait", Cost: 0, Outcome: "Survived but lost market share"},
					{ID: "marketing", Label: "Invest in marketing", Cost: 40000, Outcome: "Maintained market position"},
					{ID: "diversify", Label: "Diversify products", Cost: 80000, Outcome: "Found new revenue streams"},
				},
			},
			{
				ID: "competitor", Title: "Competitor Launch",
				Description: "A major competitor launched a similar product. What's your strategy?",
				Impact:      Impact{MarketShare: -3, Satisfaction: -5},
				Choices: []game.Choice{
					{ID: "price-war", Label: "Price war", Cost: 0, Outcome: "Reduced profits but kept customers"},
					{ID: "features", Label: "Improve features", Cost: 60000, Outcome: "Differentiated from competition"},
					{ID: "service", Label: "Focus on service", Cost: 30000, Outcome: "Built customer loyalty"},
				},
			},
			{
				ID: "talent", Title: "Talent Shortage",
				Description: "Key employees are leaving for better opportunities.",
				Impact:      Impact{Employees: -3, Revenue: -15000},
				Choices: []game.Choice{
					{ID: "salaries", Label: "Increase salaries", Cost: 50000, Outcome: "Retained talent but increased costs"},
					{ID: "freelancers", Label: "Hire freelancers", Cost: 25000, Outcome: "Maintained operations temporarily"},
					{ID: "automate", Label: "Automate processes", Cost: 100000, Outcome: "Reduced dependency on staff"},
				},
			},
		},
	}
}

func (c Config) Validate() error {
	fail := func(field, format string, args ...any) error {
		return &game.ConfigError{Game: GameName, Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	if c.MaxTurns < 2 {
		return fail("max_turns", "must be at least 2, got %d", c.MaxTurns)
	}
	if c.CostPerEmployee < 0 {
		return fail("cost_per_employee", "must not be negative")
	}
	if c.EventChance < 0 || c.EventChance > 1 {
		return fail("event_chance", "must be within 0..1, got %v", c.EventChance)
	}
	if c.Initial.Satisfaction < 0 || c.Initial.Satisfaction > 100 {
		return fail("initial.satisfaction", "must be within 0..100")
	}
	seen := make(map[string]bool)
	for i, inv := range c.Investments {
		if inv.ID == "" || seen[inv.ID] {
			return fail(fmt.Sprintf("investments[%d]", i), "missing or duplicate id %q", inv.ID)
		}
		seen[inv.ID] = true
		if inv.Cost < 0 {
			return fail(fmt.Sprintf("investments[%d]", i), "%s has a negative cost", inv.ID)
		}
		if _, ok := c.Effects[inv.Category]; !ok && !inv.Category.known() {
			return fail(fmt.Sprintf("investments[%d]", i), "unknown category %q", inv.Category)
		}
	}
	if c.EventChance > 0 && len(c.Events) == 0 {
		return fail("events", "event chance is set but no events exist")
	}
	seen = make(map[string]bool)
	for i, ev := range c.Events {
		field := fmt.Sprintf("events[%d]", i)
		if ev.ID == "" || seen[ev.ID] {
			return fail(field, "missing or duplicate id %q", ev.ID)
		}
		seen[ev.ID] = true
		if len(ev.Choices) == 0 {
			return fail(field, "%s offers no choices", ev.ID)
		}
		ids := make(map[string]bool, len(ev.Choices))
		for _, ch := range ev.Choices {
			if ch.ID == "" || ids[ch.ID] || ch.Cost < 0 {
				return fail(field, "%s has a bad choice %q", ev.ID, ch.ID)
			}
			ids[ch.ID] = true
		}
	}
	return nil
}

func (c Config) Investment(id string) (Investment, bool) {
	for _, inv := range c.Investments {
		if inv.ID == id {
			return inv, true
		}
	}
	return Investment{}, false
}
