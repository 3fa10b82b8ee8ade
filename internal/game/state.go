package game

import (
	"maps"
	"slices"
	"sort"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

type ResourceID string

// Resources maps a resource name to a signed amount.
type Resources map[ResourceID]int

func (r Resources) Clone() Resources {
	if r == nil {
		return Resources{}
	}
	return maps.Clone(r)
}

// Names returns the resource ids sorted for stable rendering.
func (r Resources) Names() []ResourceID {
	names := make([]ResourceID, 0, len(r))
	for id := range r {
		names = append(names, id)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// TurnReport records how one turn resolved.
type TurnReport struct {
	Turn       int       `json:"turn"`
	ScenarioID string    `json:"scenario_id,omitempty"`
	ChoiceID   string    `json:"choice_id,omitempty"`
	Outcome    string    `json:"outcome,omitempty"`
	ScoreDelta int       `json:"score_delta"`
	Resources  Resources `json:"resources"`
}

// GameState is one session of a turn-based scenario game. It is replaced,
// never mutated, by Engine.Advance.
type GameState struct {
	Game           string       `json:"game"`
	Turn           int          `json:"turn"`
	Resources      Resources    `json:"resources"`
	Score          int          `json:"score"`
	ActiveScenario *Scenario    `json:"active_scenario,omitempty"`
	Status         Status       `json:"status"`
	Log            []TurnReport `json:"log,omitempty"`
}

func (s GameState) Resource(id ResourceID) int {
	return s.Resources[id]
}

func (s GameState) clone() GameState {
	next := s
	next.Resources = s.Resources.Clone()
	next.Log = slices.Clone(s.Log)
	return next
}
