package company

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

// ErrInsufficientFunds indicates an investment or event response the
// company cannot pay for.
var ErrInsufficientFunds = errors.New("insufficient funds")

// RandSource returns the random stream used to roll the event at the end of
// turn.
type RandSource func(turn int) game.Rand

// Seeded derives an independent stream per turn from seed, so a replay of
// the same actions rolls the same events.
func Seeded(seed int64) RandSource {
	return func(turn int) game.Rand {
		return game.TurnRand(seed, turn)
	}
}

type State struct {
	Turn    int         `json:"turn"`
	Stats   Stats       `json:"stats"`
	Pending *Event      `json:"pending,omitempty"`
	Status  game.Status `json:"status"`
	History []string    `json:"history,omitempty"`
}

func (s State) clone() State {
	next := s
	next.History = slices.Clone(s.History)
	return next
}

// Sim is the company simulator reducer.
type Sim struct {
	cfg  Config
	rand RandSource
}

func New(cfg Config, rand RandSource) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rand == nil {
		rand = Seeded(0)
	}
	return &Sim{cfg: cfg, rand: rand}, nil
}

func (m *Sim) Config() Config {
	return m.cfg
}

func (m *Sim) Start() State {
	return State{
		Turn:   1,
		Stats:  m.cfg.Initial,
		Status: game.StatusOngoing,
	}
}

func (m *Sim) Reset() State {
	return m.Start()
}

func over(s State) error {
	return fmt.Errorf("%w: company ended %s in month %d", game.ErrGameAlreadyOver, s.Status, s.Turn)
}

// Invest buys an investment. It may be repeated and does not end the month.
func (m *Sim) Invest(s State, id string) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	inv, ok := m.cfg.Investment(strings.TrimSpace(id))
	if !ok {
		return s, fmt.Errorf("%w: no investment %q", game.ErrInvalidChoice, id)
	}
	if s.Stats.Cash < inv.Cost {
		return s, fmt.Errorf("%w: %s costs %d, cash is %d", ErrInsufficientFunds, inv.Name, inv.Cost, s.Stats.Cash)
	}

	next := s.clone()
	st := &next.Stats
	st.Cash -= inv.Cost
	st.Revenue += inv.MonthlyReturn
	effect := m.cfg.Effects[inv.Category]
	st.Employees += effect.Employees
	st.MarketShare += effect.MarketShare
	st.Satisfaction = min(100, st.Satisfaction+effect.Satisfaction)
	next.History = append(next.History, fmt.Sprintf("Invested %d in %s", inv.Cost, inv.Name))
	return next, nil
}

// Resolve answers the pending event with choiceID.
func (m *Sim) Resolve(s State, choiceID string) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if s.Pending == nil {
		return s, fmt.Errorf("%w: no event is pending", game.ErrInvalidChoice)
	}
	choice, ok := s.Pending.Choice(strings.TrimSpace(choiceID))
	if !ok {
		return s, fmt.Errorf("%w: %s has no option %q", game.ErrInvalidChoice, s.Pending.ID, choiceID)
	}
	if s.Stats.Cash < choice.Cost {
		return s, fmt.Errorf("%w: %s costs %d, cash is %d", ErrInsufficientFunds, choice.Label, choice.Cost, s.Stats.Cash)
	}

	next := s.clone()
	impact := s.Pending.Impact
	st := &next.Stats
	st.Cash = st.Cash - choice.Cost + impact.Cash
	st.Revenue += impact.Revenue
	st.Employees = max(0, st.Employees+impact.Employees)
	st.MarketShare = max(0, st.MarketShare+impact.MarketShare)
	st.Satisfaction = min(100, max(0, st.Satisfaction+impact.Satisfaction))
	next.History = append(next.History, fmt.Sprintf("%s: %s", s.Pending.Title, choice.Outcome))
	next.Pending = nil

	if st.Cash < 0 {
		next.Status = game.StatusLost
		next.History = append(next.History, "Company went bankrupt! Game over.")
	}
	return next, nil
}

// NextMonth books the month's profit, then checks the outcome against the
// updated figures and rolls for a new event.
func (m *Sim) NextMonth(s State) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if s.Pending != nil {
		return s, fmt.Errorf("%w: resolve %s first", game.ErrInvalidChoice, s.Pending.Title)
	}

	next := s.clone()
	next.Stats.Cash += s.Stats.Profit(m.cfg.CostPerEmployee)
	next.Turn++

	switch {
	case next.Stats.Cash < 0:
		next.Status = game.StatusLost
		next.History = append(next.History, "Company went bankrupt! Game over.")
		return next, nil
	case next.Turn >= m.cfg.MaxTurns:
		if next.Stats.Cash > m.cfg.WinCash {
			next.Status = game.StatusWon
			next.History = append(next.History, "Congratulations! You built a successful company!")
		} else {
			next.Status = game.StatusLost
			next.History = append(next.History, fmt.Sprintf("The year ended below the %d target.", m.cfg.WinCash))
		}
		return next, nil
	}

	r := m.rand(next.Turn)
	if len(m.cfg.Events) > 0 && r.Float64() < m.cfg.EventChance {
		ev := m.cfg.Events[r.IntN(len(m.cfg.Events))]
		next.Pending = &ev
		next.History = append(next.History, "Event: "+ev.Title)
	}
	return next, nil
}
