package game

type ScenarioKind string

const (
	KindFixedEffect ScenarioKind = "fixed_effect"
	KindChoiceSet   ScenarioKind = "choice_set"
)

// Choice is one option of a choice-set scenario.
type Choice struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label" json:"label"`
	Cost    int    `yaml:"cost" json:"cost"`
	Outcome string `yaml:"outcome" json:"outcome"`
}

// Scenario is a scripted event tied to a turn. Scenarios are read-only once a
// table is built.
type Scenario struct {
	ID          string       `yaml:"id" json:"id"`
	Turn        int          `yaml:"turn" json:"turn"`
	Title       string       `yaml:"title" json:"title"`
	Description string       `yaml:"description" json:"description"`
	Kind        ScenarioKind `yaml:"kind" json:"kind"`

	// Fixed-effect scenarios.
	Effect     Resources `yaml:"effect,omitempty" json:"effect,omitempty"`
	ScoreDelta int       `yaml:"score_delta,omitempty" json:"score_delta,omitempty"`
	Outcome    string    `yaml:"outcome,omitempty" json:"outcome,omitempty"`

	// Choice-set scenarios.
	Choices []Choice `yaml:"choices,omitempty" json:"choices,omitempty"`
}

func (s Scenario) RequiresChoice() bool {
	return s.Kind == KindChoiceSet
}

func (s Scenario) Choice(id string) (Choice, bool) {
	for _, c := range s.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// ChoiceIDs lists the option ids in table order.
func (s Scenario) ChoiceIDs() []string {
	ids := make([]string, 0, len(s.Choices))
	for _, c := range s.Choices {
		ids = append(ids, c.ID)
	}
	return ids
}

func GetScenario(scenarios []Scenario, id string) (Scenario, bool) {
	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, true
		}
	}

	return Scenario{}, false
}
