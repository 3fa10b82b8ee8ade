package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Quantity is a number typed alongside a command, such as the amount in
// "plan rent 9000" or the option number in "choose 2".
type Quantity struct {
	Raw string
	N   int
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries what the current game will accept right now.
type ParseContext struct {
	// Options are the ids accepted by choose, take, invest and resolve.
	Options []string
	// Lines are the budget plan lines accepted by plan.
	Lines      []string
	Directions []string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
}
