package budget

import "github.com/appengine-ltd/paisa-quest/internal/game"

func BuiltInScenarios() []game.Scenario {
	choices := func(id string, turn int, title, desc string, options ...game.Choice) game.Scenario {
		return game.Scenario{
			ID:          id,
			Turn:        turn,
			Title:       title,
			Description: desc,
			Kind:        game.KindChoiceSet,
			Choices:     options,
		}
	}
	fixed := func(id string, turn int, title, desc string, balance, score int, outcome string) game.Scenario {
		return game.Scenario{
			ID:          id,
			Turn:        turn,
			Title:       title,
			Description: desc,
			Kind:        game.KindFixedEffect,
			Effect:      game.Resources{Balance: balance},
			ScoreDelta:  score,
			Outcome:     outcome,
		}
	}

	return []game.Scenario{
		choices("festival-shopping", 2, "Festival Season",
			"Diwali is approaching and you want to buy new clothes and gifts for family.",
			game.Choice{ID: "expensive", Label: "Buy expensive clothes and gifts", Cost: 8000, Outcome: "Family is very happy, but budget is tight"},
			game.Choice{ID: "moderate", Label: "Buy moderate gifts within budget", Cost: 4000, Outcome: "Good balance of celebration and savings"},
			game.Choice{ID: "minimal", Label: "Celebrate simply with homemade gifts", Cost: 1500, Outcome: "Family appreciates thoughtfulness, savings intact"},
		),
		fixed("medical-emergency", 4, "Medical Emergency",
			"Your father needs urgent medical treatment costing ₹15,000.",
			-15000, -10, "Emergency expense of ₹15,000 handled."),
		fixed("bonus", 6, "Work Bonus",
			"You received a performance bonus at work!",
			12000, 20, "Bonus income of ₹12,000 received!"),
		choices("wedding-invitation", 8, "Cousin's Wedding",
			"Your cousin is getting married and you need to attend the wedding.",
			game.Choice{ID: "lavish", Label: "Give expensive gift and new clothes", Cost: 6000, Outcome: "Great impression but expensive"},
			game.Choice{ID: "appropriate", Label: "Give appropriate gift and wear existing clothes", Cost: 2500, Outcome: "Respectful and budget-friendly"},
			game.Choice{ID: "minimal", Label: "Attend with minimal expenses", Cost: 1000, Outcome: "Family understands your situation"},
		),
		choices("job-opportunity", 10, "Job Opportunity",
			"You got an offer for a better job, but need to spend on interview preparation.",
			game.Choice{ID: "invest", Label: "Invest in courses and preparation", Cost: 5000, Outcome: "Higher chance of getting the job"},
			game.Choice{ID: "basic", Label: "Basic preparation with free resources", Cost: 1000, Outcome: "Good preparation within budget"},
			game.Choice{ID: "skip", Label: "Skip the opportunity", Cost: 0, Outcome: "No immediate cost but missed opportunity"},
		),
	}
}
