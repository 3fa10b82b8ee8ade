package labyrinth

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/appengine-ltd/paisa-quest/internal/game"
)

var (
	ErrBlocked     = errors.New("path blocked")
	ErrCannotRepay = errors.New("cannot repay")
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

func ParseDirection(raw string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "u", "north", "n":
		return Up, true
	case "down", "d", "south", "s":
		return Down, true
	case "left", "l", "west", "w":
		return Left, true
	case "right", "r", "east", "e":
		return Right, true
	}
	return "", false
}

func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Loan is the single outstanding loan a player may carry.
type Loan struct {
	Offer    Offer `json:"offer"`
	Due      int   `json:"due"`
	DaysLeft int   `json:"days_left"`
}

func (l Loan) Overdue() bool {
	return l.DaysLeft <= 0
}

type State struct {
	Turn      int         `json:"turn"`
	Pos       Point       `json:"pos"`
	Trust     int         `json:"trust"`
	Money     int         `json:"money"`
	Loan      *Loan       `json:"loan,omitempty"`
	Offering  bool        `json:"offering"`
	Unlocked  []Point     `json:"unlocked,omitempty"`
	Collected []Point     `json:"collected,omitempty"`
	Learned   []Point     `json:"learned,omitempty"`
	Repaid    int         `json:"repaid"`
	HintsUsed int         `json:"hints_used"`
	Status    game.Status `json:"status"`
	Message   string      `json:"message,omitempty"`
}

func (s State) clone() State {
	next := s
	if s.Loan != nil {
		loan := *s.Loan
		next.Loan = &loan
	}
	next.Unlocked = slices.Clone(s.Unlocked)
	next.Collected = slices.Clone(s.Collected)
	next.Learned = slices.Clone(s.Learned)
	return next
}

// Game is the Loan Labyrinth reducer for one validated Config.
type Game struct {
	cfg Config
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Start() State {
	return State{
		Turn:    1,
		Pos:     g.cfg.Start,
		Trust:   g.cfg.InitialTrust,
		Money:   g.cfg.InitialMoney,
		Status:  game.StatusOngoing,
		Message: "Find your way to the goal. Borrow wisely on the way.",
	}
}

func (g *Game) Reset() State {
	return g.Start()
}

// CellAt reports what the player sees at p. Unlocked shortcut and bonus
// cells read as open.
func (g *Game) CellAt(s State, p Point) Cell {
	if !g.cfg.inside(p) {
		return Wall
	}
	if slices.Contains(s.Unlocked, p) {
		return Open
	}
	return g.cfg.Layout[p.Y][p.X]
}

func (g *Game) MovesLeft(s State) int {
	return max(0, g.cfg.MaxTurns-(s.Turn-1))
}

func over(s State) error {
	return fmt.Errorf("%w: labyrinth ended %s on turn %d", game.ErrGameAlreadyOver, s.Status, s.Turn)
}

// Move steps one cell in dir. Walls that are not unlocked block the move
// and leave the state unchanged.
func (g *Game) Move(s State, dir Direction) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if s.Offering {
		return s, fmt.Errorf("%w: take or decline the loan offer first", game.ErrInvalidChoice)
	}
	dx, dy := dir.delta()
	if dx == 0 && dy == 0 {
		return s, fmt.Errorf("%w: unknown direction %q", game.ErrInvalidChoice, dir)
	}

	target := Point{
		X: min(max(s.Pos.X+dx, 0), len(g.cfg.Layout[0])-1),
		Y: min(max(s.Pos.Y+dy, 0), len(g.cfg.Layout)-1),
	}
	if target == s.Pos || g.CellAt(s, target) == Wall {
		return s, fmt.Errorf("%w: cannot go %s from (%d,%d)", ErrBlocked, dir, s.Pos.X, s.Pos.Y)
	}

	next := s.clone()
	next.Turn++
	next.Pos = target
	next.Message = ""

	if next.Loan != nil {
		next.Loan.DaysLeft -= g.cfg.DaysPerMove
		if next.Loan.Overdue() {
			next.Trust -= g.cfg.OverduePenalty
			next.Message = fmt.Sprintf("Your %s loan is overdue! Trust -%d.", next.Loan.Offer.ID, g.cfg.OverduePenalty)
		}
	}

	if slices.Contains(g.cfg.Bonuses, target) && slices.Contains(next.Unlocked, target) && !slices.Contains(next.Collected, target) {
		next.Collected = append(next.Collected, target)
		next.Money += g.cfg.BonusAmount
		next.Message = fmt.Sprintf("Bonus found! +%d.", g.cfg.BonusAmount)
	}

	switch g.cfg.Layout[target.Y][target.X] {
	case LoanDesk:
		if next.Loan == nil {
			next.Offering = true
			next.Message = "A lender offers you a loan. Take one or decline."
		} else {
			next.Message = "Repay your current loan before borrowing again."
		}
	case Lesson:
		if !slices.Contains(next.Learned, target) && len(g.cfg.Lessons) > 0 {
			next.Message = g.cfg.Lessons[len(next.Learned)%len(g.cfg.Lessons)]
			next.Learned = append(next.Learned, target)
		}
	case Goal:
		if next.Loan != nil {
			next.Message = "Complete your loan repayment first!"
		}
	}

	g.settle(&next)
	return next, nil
}

// TakeLoan accepts the pending offer with offerID.
func (g *Game) TakeLoan(s State, offerID string) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if !s.Offering {
		return s, fmt.Errorf("%w: no loan offer is pending", game.ErrInvalidChoice)
	}
	if s.Loan != nil {
		return s, fmt.Errorf("%w: a %s loan is already active", game.ErrInvalidChoice, s.Loan.Offer.ID)
	}
	offer, ok := g.cfg.Offer(strings.TrimSpace(offerID))
	if !ok {
		return s, fmt.Errorf("%w: no loan offer %q", game.ErrInvalidChoice, offerID)
	}

	next := s.clone()
	next.Offering = false
	next.Money += offer.Amount
	next.Loan = &Loan{
		Offer:    offer,
		Due:      offer.RepaymentDue(),
		DaysLeft: offer.TermMonths * g.cfg.DaysPerMonth,
	}
	next.Message = fmt.Sprintf("Borrowed %d. Repay %d within %d days.", offer.Amount, next.Loan.Due, next.Loan.DaysLeft)
	return next, nil
}

func (g *Game) Decline(s State) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if !s.Offering {
		return s, fmt.Errorf("%w: no loan offer is pending", game.ErrInvalidChoice)
	}
	next := s.clone()
	next.Offering = false
	next.Message = "You walk past the lender."
	return next, nil
}

// Repay clears the active loan in full. Early repayment earns more trust;
// any repayment opens the shortcut and bonus cells.
func (g *Game) Repay(s State) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	if s.Loan == nil {
		return s, fmt.Errorf("%w: no active loan", ErrCannotRepay)
	}
	if s.Money < s.Loan.Due {
		return s, fmt.Errorf("%w: need %d, have %d", ErrCannotRepay, s.Loan.Due, s.Money)
	}

	next := s.clone()
	bonus := g.cfg.OnTimeBonus
	if next.Loan.DaysLeft > next.Loan.Offer.TermMonths*g.cfg.EarlyDaysPerMonth {
		bonus = g.cfg.EarlyBonus
	}
	next.Money -= next.Loan.Due
	next.Trust = min(g.cfg.MaxTrust, next.Trust+bonus)
	next.Loan = nil
	next.Repaid++
	for _, p := range append(slices.Clone(g.cfg.Shortcuts), g.cfg.Bonuses...) {
		if !slices.Contains(next.Unlocked, p) {
			next.Unlocked = append(next.Unlocked, p)
		}
	}
	next.Message = fmt.Sprintf("Loan repaid! Trust +%d. New paths have opened.", bonus)

	g.settle(&next)
	return next, nil
}

// Hint shows one of the configured tips, picked by r.
func (g *Game) Hint(s State, r game.Rand) (State, error) {
	if s.Status.Terminal() {
		return s, over(s)
	}
	next := s.clone()
	next.HintsUsed++
	if len(g.cfg.Hints) > 0 {
		next.Message = g.cfg.Hints[r.IntN(len(g.cfg.Hints))]
	}
	return next, nil
}

func (g *Game) settle(s *State) {
	switch {
	case s.Money < 0 || s.Trust < 0:
		s.Status = game.StatusLost
		s.Offering = false
		s.Message = "You have lost the lenders' trust. Game over."
	case g.cfg.Layout[s.Pos.Y][s.Pos.X] == Goal && s.Loan == nil:
		s.Status = game.StatusWon
		s.Offering = false
		s.Message = "You reached the goal debt free!"
	case s.Turn-1 >= g.cfg.MaxTurns:
		s.Status = game.StatusLost
		s.Offering = false
		s.Message = "You ran out of moves before reaching the goal."
	}
}
