package session

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/paisa-quest/internal/budget"
	"github.com/appengine-ltd/paisa-quest/internal/company"
	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/money"
)

type Stat struct {
	Label string
	Value string
	// Level and Max are set for stats that read as a meter.
	Level int
	Max   int
}

type Option struct {
	ID     string
	Label  string
	Detail string
}

// View is everything a client needs to draw the current screen.
type View struct {
	SessionID string
	Game      string
	Title     string
	Turn      int
	MaxTurns  int
	TurnLabel string
	Status    game.Status

	Stats   []Stat
	Heading string
	Prompt  string
	Options []Option
	Message string
	History []string

	// OptionVerb is the command that picks one of Options by id.
	OptionVerb string

	// Maze and Player are set for the labyrinth only.
	Maze   [][]labyrinth.Cell
	Player labyrinth.Point
}

func (v View) InMenu() bool {
	return v.Game == ""
}

func (s *Session) View() View {
	v := View{SessionID: s.id, Game: s.active, Message: s.message, Status: s.currentStatus()}
	switch s.active {
	case "":
		v.Title = "Paisa Quest"
		v.Heading = "Choose a game"
		v.OptionVerb = "choose"
		for _, g := range Games() {
			v.Options = append(v.Options, Option{ID: g.ID, Label: g.Title, Detail: g.Blurb})
		}
	case budget.GameName:
		s.budgetView(&v)
	case labyrinth.GameName:
		s.labyrinthView(&v)
	case company.GameName:
		s.companyView(&v)
	}
	return v
}

func (s *Session) budgetView(v *View) {
	st := s.budgetState
	cfg := s.budgetEngine.Config()
	v.Title = "Budget Challenge"
	v.Turn, v.MaxTurns = st.Turn, cfg.MaxTurns
	v.TurnLabel = fmt.Sprintf("Month %d/%d", st.Turn, cfg.MaxTurns)
	v.Stats = []Stat{
		{Label: "Balance", Value: money.Rupees(st.Resource(budget.Balance))},
		{Label: "Emergency fund", Value: money.Rupees(st.Resource(budget.EmergencyFund))},
		{Label: "Score", Value: fmt.Sprint(st.Score)},
		{Label: "Monthly surplus", Value: money.Signed(s.plan.Income - s.plan.Expenses())},
	}
	if sc := st.ActiveScenario; sc != nil {
		v.Heading = sc.Title
		v.Prompt = sc.Description
		v.OptionVerb = "choose"
		for _, c := range sc.Choices {
			v.Options = append(v.Options, Option{ID: c.ID, Label: c.Label, Detail: money.Rupees(c.Cost)})
		}
	} else if !st.Status.Terminal() {
		v.Heading = "A quiet month"
		v.Prompt = "Type next to close the month."
	}
	for _, r := range st.Log {
		v.History = append(v.History, formatReport(r))
	}
}

func formatReport(r game.TurnReport) string {
	line := fmt.Sprintf("Month %d", r.Turn)
	if r.ScenarioID != "" {
		line += " " + r.ScenarioID
		if r.ChoiceID != "" {
			line += "/" + r.ChoiceID
		}
	}
	if r.Outcome != "" {
		line += ": " + r.Outcome
	}
	return fmt.Sprintf("%s (score %+d, balance %s)", line, r.ScoreDelta, money.Rupees(r.Resources[budget.Balance]))
}

func budgetReport(st game.GameState) string {
	if len(st.Log) == 0 {
		return ""
	}
	msg := formatReport(st.Log[len(st.Log)-1])
	switch st.Status {
	case game.StatusWon:
		msg += fmt.Sprintf(" You finished the year with a final score of %d!", st.Score)
	case game.StatusLost:
		msg += " The budget did not hold. Type reset to try again."
	}
	return msg
}

func planSummary(p budget.Plan) string {
	parts := []string{"income " + money.Rupees(p.Income)}
	for _, line := range p.Lines() {
		parts = append(parts, line.Label+" "+money.Rupees(line.Amount))
	}
	return "Plan: " + strings.Join(parts, ", ")
}

func (s *Session) budgetHint() string {
	st := s.budgetState
	unmet := s.budgetEngine.Unmet(st.Resources)
	if len(unmet) == 0 {
		return "You are on track. Keep expenses steady and avoid costly choices."
	}
	need := make([]string, 0, len(unmet))
	for _, c := range unmet {
		need = append(need, c.String())
	}
	return "To win at the end of the year you still need: " + strings.Join(need, ", ") + "."
}

func (s *Session) labyrinthView(v *View) {
	st := s.mazeState
	cfg := s.maze.Config()
	v.Title = "Loan Labyrinth"
	v.Turn, v.MaxTurns = st.Turn, cfg.MaxTurns
	v.TurnLabel = fmt.Sprintf("Moves left %d", s.maze.MovesLeft(st))
	v.Stats = []Stat{
		{Label: "Money", Value: money.Rupees(st.Money)},
		{Label: "Trust", Value: fmt.Sprintf("%d/%d", st.Trust, cfg.MaxTrust), Level: st.Trust, Max: cfg.MaxTrust},
	}
	if st.Loan != nil {
		v.Stats = append(v.Stats,
			Stat{Label: "Loan due", Value: money.Rupees(st.Loan.Due)},
			Stat{Label: "Days left", Value: fmt.Sprint(st.Loan.DaysLeft)})
	}
	if st.Offering {
		v.Heading = "Loan desk"
		v.Prompt = "Take a loan or decline."
		v.OptionVerb = "take"
		for _, o := range cfg.Offers {
			v.Options = append(v.Options, Option{
				ID:     o.ID,
				Label:  o.Description,
				Detail: fmt.Sprintf("%s at %d%% for %d months, repay %s (%s risk)", money.Rupees(o.Amount), o.InterestPct, o.TermMonths, money.Rupees(o.RepaymentDue()), o.Risk),
			})
		}
	}

	v.Maze = make([][]labyrinth.Cell, len(cfg.Layout))
	for y, row := range cfg.Layout {
		v.Maze[y] = make([]labyrinth.Cell, len(row))
		for x := range row {
			v.Maze[y][x] = s.maze.CellAt(st, labyrinth.Point{X: x, Y: y})
		}
	}
	v.Player = st.Pos
}

func (s *Session) companyView(v *View) {
	st := s.companyState
	cfg := s.sim.Config()
	v.Title = "Company Simulator"
	v.Turn, v.MaxTurns = st.Turn, cfg.MaxTurns
	v.TurnLabel = fmt.Sprintf("Month %d/%d", st.Turn, cfg.MaxTurns)
	v.Stats = []Stat{
		{Label: "Cash", Value: money.Rupees(st.Stats.Cash)},
		{Label: "Revenue", Value: money.Rupees(st.Stats.Revenue)},
		{Label: "Monthly profit", Value: money.Signed(st.Stats.Profit(cfg.CostPerEmployee))},
		{Label: "Employees", Value: fmt.Sprint(st.Stats.Employees)},
		{Label: "Market share", Value: fmt.Sprintf("%d%%", st.Stats.MarketShare), Level: st.Stats.MarketShare, Max: 100},
		{Label: "Satisfaction", Value: fmt.Sprintf("%d%%", st.Stats.Satisfaction), Level: st.Stats.Satisfaction, Max: 100},
	}
	if ev := st.Pending; ev != nil {
		v.Heading = ev.Title
		v.Prompt = ev.Description
		v.OptionVerb = "resolve"
		for _, c := range ev.Choices {
			v.Options = append(v.Options, Option{ID: c.ID, Label: c.Label, Detail: money.Rupees(c.Cost)})
		}
	} else if !st.Status.Terminal() {
		v.Heading = "Investments"
		v.Prompt = "Invest, or type next to close the month."
		v.OptionVerb = "invest"
		for _, inv := range cfg.Investments {
			v.Options = append(v.Options, Option{
				ID:     inv.ID,
				Label:  inv.Name,
				Detail: fmt.Sprintf("%s, %s/month, %s risk", money.Rupees(inv.Cost), money.Signed(inv.MonthlyReturn), inv.Risk),
			})
		}
	}
	v.History = append(v.History, st.History...)
}

func (s *Session) companyHint() string {
	st := s.companyState
	cfg := s.sim.Config()
	profit := st.Stats.Profit(cfg.CostPerEmployee)
	projected := st.Stats.Cash + profit*max(0, cfg.MaxTurns-st.Turn)
	return fmt.Sprintf("At %s a month you would end the year with %s. The target is above %s.",
		money.Signed(profit), money.Rupees(projected), money.Rupees(cfg.WinCash))
}

func (s *Session) status() string {
	switch s.active {
	case budget.GameName:
		st := s.budgetState
		return fmt.Sprintf("Month %d, balance %s, emergency fund %s, score %d, %s.",
			st.Turn, money.Rupees(st.Resource(budget.Balance)), money.Rupees(st.Resource(budget.EmergencyFund)), st.Score, st.Status)
	case labyrinth.GameName:
		st := s.mazeState
		debt := "no debt"
		if st.Loan != nil {
			debt = fmt.Sprintf("owe %s in %d days", money.Rupees(st.Loan.Due), st.Loan.DaysLeft)
		}
		return fmt.Sprintf("At (%d,%d), money %s, trust %d, %s, %s.",
			st.Pos.X, st.Pos.Y, money.Rupees(st.Money), st.Trust, debt, st.Status)
	case company.GameName:
		st := s.companyState
		return fmt.Sprintf("Month %d, cash %s, revenue %s, %d employees, %s.",
			st.Turn, money.Rupees(st.Stats.Cash), money.Rupees(st.Stats.Revenue), st.Stats.Employees, st.Status)
	}
	return "In the menu."
}

func (s *Session) help() string {
	common := "status, hint, reset, menu, help"
	switch s.active {
	case budget.GameName:
		return "next: close a quiet month. choose <option|number>: answer an event. plan [line amount]: show or change the budget. " + common
	case labyrinth.GameName:
		return "move <up|down|left|right> (or n/s/e/w). take <loan>, decline, repay. " + common
	case company.GameName:
		return "invest <id>, resolve <choice>, next: close the month. " + common
	}
	return "choose <budget|labyrinth|company> or a number to start a game. help"
}
