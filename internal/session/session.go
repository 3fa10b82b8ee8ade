// Package session owns the game a player is currently in, turns typed
// commands into reducer calls, and renders the result as a View.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/budget"
	"github.com/appengine-ltd/paisa-quest/internal/catalog"
	"github.com/appengine-ltd/paisa-quest/internal/company"
	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/parser"
)

var (
	// ErrUnknownCommand indicates input the parser could not map to a
	// command. The View carries the clarifying prompt.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotInGame indicates a game command typed while in the menu, or a
	// command the current game does not support.
	ErrNotInGame = errors.New("not available here")

	ErrUnknownGame = errors.New("unknown game")
)

type GameInfo struct {
	ID    string
	Name  string
	Title string
	Blurb string
}

// Games lists what the menu offers, in menu order.
func Games() []GameInfo {
	return []GameInfo{
		{ID: "budget", Name: budget.GameName, Title: "Budget Challenge",
			Blurb: "Run a household budget for a year and build an emergency fund."},
		{ID: "labyrinth", Name: labyrinth.GameName, Title: "Loan Labyrinth",
			Blurb: "Cross the village maze, borrow wisely and reach the goal debt free."},
		{ID: "company", Name: company.GameName, Title: "Company Simulator",
			Blurb: "Grow a company past twenty lakh in cash within a year."},
	}
}

func lookupGame(key string) (GameInfo, bool) {
	key = strings.TrimSpace(strings.ToLower(key))
	for _, g := range Games() {
		if key == g.ID || key == g.Name {
			return g, true
		}
	}
	return GameInfo{}, false
}

// Session holds one player's current game. It is not safe for concurrent
// use; each client owns its own session.
type Session struct {
	id     string
	log    *zap.Logger
	parser *parser.Parser
	cat    catalog.Catalog
	seed   int64

	active  string
	message string

	plan         budget.Plan
	budgetEngine *game.Engine
	budgetState  game.GameState

	maze      *labyrinth.Game
	mazeState labyrinth.State
	hints     *rand.Rand

	sim          *company.Sim
	companyState company.State
}

// New validates every game in cat and returns a session sitting in the menu.
func New(cat catalog.Catalog, seed int64, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	engine, err := budget.NewEngine(cat.Budget.Rules, cat.Budget.Plan)
	if err != nil {
		return nil, fmt.Errorf("budget: %w", err)
	}
	maze, err := labyrinth.New(cat.Labyrinth)
	if err != nil {
		return nil, fmt.Errorf("labyrinth: %w", err)
	}
	sim, err := company.New(cat.Company, company.Seeded(seed))
	if err != nil {
		return nil, fmt.Errorf("company: %w", err)
	}

	id := uuid.NewString()
	s := &Session{
		id:           id,
		log:          log.With(zap.String("session_id", id)),
		parser:       parser.New(),
		cat:          cat,
		seed:         seed,
		plan:         cat.Budget.Plan,
		budgetEngine: engine,
		maze:         maze,
		sim:          sim,
		message:      "Pick a game to play.",
	}
	s.log.Info("session started", zap.Int64("seed", seed))
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Active returns the running game's name, or "" while in the menu.
func (s *Session) Active() string {
	return s.active
}

// Start begins a fresh game by menu id or game name.
func (s *Session) Start(key string) error {
	info, ok := lookupGame(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGame, key)
	}
	s.active = info.Name
	s.reset()
	s.message = fmt.Sprintf("%s started. Type help for commands.", info.Title)
	s.log.Info("game started", zap.String("game", s.active))
	return nil
}

func (s *Session) reset() {
	switch s.active {
	case budget.GameName:
		// A re-plan only lasts for the current run.
		if engine, err := budget.NewEngine(s.cat.Budget.Rules, s.cat.Budget.Plan); err == nil {
			s.plan, s.budgetEngine = s.cat.Budget.Plan, engine
		}
		s.budgetState = s.budgetEngine.Reset()
	case labyrinth.GameName:
		s.mazeState = s.maze.Reset()
		s.hints = game.SeededRand(s.seed, "hints")
	case company.GameName:
		s.companyState = s.sim.Reset()
	}
}

// Handle parses raw and applies it to the current game. The returned View
// reflects the state after the command, including on error.
func (s *Session) Handle(raw string) (View, error) {
	intent := s.parser.Parse(s.parseContext(), raw)
	if intent.Clarify != nil && len(intent.Clarify.Options) > 0 {
		alts := make([]string, 0, len(intent.Clarify.Options))
		for _, opt := range intent.Clarify.Options {
			alts = append(alts, parser.IntentToCommandString(opt))
		}
		s.message = intent.Clarify.Prompt + " " + strings.Join(alts, " | ")
		return s.View(), ErrUnknownCommand
	}
	if intent.Clarify != nil || intent.Verb == "" {
		s.message = "I couldn't map that to a command. Type help for the list."
		if intent.Clarify != nil {
			s.message = intent.Clarify.Prompt
		}
		return s.View(), ErrUnknownCommand
	}
	return s.Dispatch(intent)
}

// Dispatch applies an already parsed intent. Clients that map keys straight
// to commands use it to skip the text parser.
func (s *Session) Dispatch(intent parser.Intent) (View, error) {
	err := s.apply(intent)
	if err != nil {
		s.message = err.Error()
		s.log.Debug("command rejected",
			zap.String("game", s.active),
			zap.String("verb", intent.Verb),
			zap.Error(err))
	}
	return s.View(), err
}

func (s *Session) apply(intent parser.Intent) error {
	arg := ""
	if len(intent.Args) > 0 {
		arg = intent.Args[0]
	}

	switch intent.Verb {
	case "help":
		s.message = s.help()
		return nil
	case "menu":
		if s.active != "" {
			s.log.Info("left game", zap.String("game", s.active), zap.Int("turn", s.turn()))
		}
		s.active = ""
		s.message = "Pick a game to play."
		return nil
	case "status":
		s.message = s.status()
		return nil
	}

	if s.active == "" {
		if intent.Verb == "choose" {
			return s.Start(arg)
		}
		return fmt.Errorf("%w: pick a game first", ErrNotInGame)
	}
	if intent.Verb == "reset" {
		s.reset()
		s.message = "Game reset."
		s.log.Info("game reset", zap.String("game", s.active))
		return nil
	}

	before := s.status()
	var err error
	switch s.active {
	case budget.GameName:
		err = s.applyBudget(intent, arg)
	case labyrinth.GameName:
		err = s.applyLabyrinth(intent, arg)
	case company.GameName:
		err = s.applyCompany(intent, arg)
	}
	if err != nil {
		return err
	}

	s.log.Debug("transition",
		zap.String("game", s.active),
		zap.Int("turn", s.turn()),
		zap.String("verb", intent.Verb),
		zap.Strings("args", intent.Args),
		zap.String("before", before))
	if st := s.currentStatus(); st.Terminal() {
		s.log.Info("game over",
			zap.String("game", s.active),
			zap.Int("turn", s.turn()),
			zap.String("status", string(st)),
			zap.String("final", s.status()))
	}
	return nil
}

func (s *Session) applyBudget(intent parser.Intent, arg string) error {
	switch intent.Verb {
	case "next", "choose":
		if intent.Verb == "next" {
			arg = ""
		}
		next, err := s.budgetEngine.Advance(s.budgetState, arg)
		if err != nil {
			return err
		}
		s.budgetState = next
		s.message = budgetReport(next)
		return nil
	case "plan":
		if arg == "" {
			s.message = planSummary(s.plan)
			return nil
		}
		if intent.Quantity == nil {
			return fmt.Errorf("plan %s needs an amount", arg)
		}
		return s.Replan(arg, intent.Quantity.N)
	case "hint":
		s.message = s.budgetHint()
		return nil
	}
	return fmt.Errorf("%w: %s is not part of the budget challenge", ErrNotInGame, intent.Verb)
}

// Replan changes one line of the budget plan. The game continues from the
// current month under the new plan.
func (s *Session) Replan(line string, amount int) error {
	plan, err := s.plan.Set(line, amount)
	if err != nil {
		return err
	}
	engine, err := budget.NewEngine(s.cat.Budget.Rules, plan)
	if err != nil {
		return err
	}
	s.plan = plan
	s.budgetEngine = engine
	s.message = fmt.Sprintf("Plan updated: %s is now %d.", line, amount)
	s.log.Info("budget replanned", zap.String("line", line), zap.Int("amount", amount), zap.Int("turn", s.budgetState.Turn))
	return nil
}

func (s *Session) applyLabyrinth(intent parser.Intent, arg string) error {
	var (
		next labyrinth.State
		err  error
	)
	switch intent.Verb {
	case "move":
		dir, ok := labyrinth.ParseDirection(arg)
		if !ok {
			return fmt.Errorf("%w: which way? up, down, left or right", game.ErrInvalidChoice)
		}
		next, err = s.maze.Move(s.mazeState, dir)
	case "take", "choose":
		next, err = s.maze.TakeLoan(s.mazeState, arg)
	case "decline":
		next, err = s.maze.Decline(s.mazeState)
	case "repay":
		next, err = s.maze.Repay(s.mazeState)
	case "hint":
		next, err = s.maze.Hint(s.mazeState, s.hints)
	default:
		return fmt.Errorf("%w: %s is not part of the loan labyrinth", ErrNotInGame, intent.Verb)
	}
	if err != nil {
		return err
	}
	s.mazeState = next
	s.message = next.Message
	return nil
}

func (s *Session) applyCompany(intent parser.Intent, arg string) error {
	var (
		next company.State
		err  error
	)
	switch intent.Verb {
	case "next":
		next, err = s.sim.NextMonth(s.companyState)
	case "invest":
		next, err = s.sim.Invest(s.companyState, arg)
	case "resolve", "choose":
		next, err = s.sim.Resolve(s.companyState, arg)
	case "hint":
		s.message = s.companyHint()
		return nil
	default:
		return fmt.Errorf("%w: %s is not part of the company simulator", ErrNotInGame, intent.Verb)
	}
	if err != nil {
		return err
	}
	s.companyState = next
	if n := len(next.History); n > 0 {
		s.message = next.History[n-1]
	}
	return nil
}

func (s *Session) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{Directions: []string{"up", "down", "left", "right"}}
	switch s.active {
	case "":
		for _, g := range Games() {
			ctx.Options = append(ctx.Options, g.ID)
		}
	case budget.GameName:
		if sc := s.budgetState.ActiveScenario; sc != nil {
			ctx.Options = sc.ChoiceIDs()
		}
		ctx.Lines = append([]string{"income"}, planLineNames(s.plan)...)
	case labyrinth.GameName:
		if s.mazeState.Offering {
			for _, o := range s.maze.Config().Offers {
				ctx.Options = append(ctx.Options, o.ID)
			}
		}
	case company.GameName:
		if ev := s.companyState.Pending; ev != nil {
			for _, c := range ev.Choices {
				ctx.Options = append(ctx.Options, c.ID)
			}
		}
		for _, inv := range s.sim.Config().Investments {
			ctx.Options = append(ctx.Options, inv.ID)
		}
	}
	return ctx
}

func planLineNames(p budget.Plan) []string {
	lines := p.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Label)
	}
	return out
}

func (s *Session) turn() int {
	switch s.active {
	case budget.GameName:
		return s.budgetState.Turn
	case labyrinth.GameName:
		return s.mazeState.Turn
	case company.GameName:
		return s.companyState.Turn
	}
	return 0
}

func (s *Session) currentStatus() game.Status {
	switch s.active {
	case budget.GameName:
		return s.budgetState.Status
	case labyrinth.GameName:
		return s.mazeState.Status
	case company.GameName:
		return s.companyState.Status
	}
	return ""
}
