package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Verbs() []string {
	return p.registry.Verbs()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for the list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + strings.Join(p.Verbs(), ", ") + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	// "choose 2" picks the second option.
	if len(intent.Args) == 0 && intent.Quantity != nil && takesOption(intent.Verb) {
		if n := intent.Quantity.N; n >= 1 && n <= len(ctx.Options) {
			intent.Args = []string{ctx.Options[n-1]}
			intent.Quantity = nil
		}
	}

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		if takesOption(def.Canonical) {
			options := buildOptionIntents(ctx, def.Canonical, 5)
			if len(options) > 0 {
				intent.Clarify = &ClarifyQuestion{
					Prompt:  fmt.Sprintf("Which one should I %s?", def.Canonical),
					Options: options,
				}
				intent.Confidence = 0.46
				return intent
			}
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status":
		return Query
	default:
		return Command
	}
}

func takesOption(verb string) bool {
	switch verb {
	case "choose", "take", "invest", "resolve":
		return true
	default:
		return false
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	args = dropFillers(args)
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i := 0; i < len(args); i++ {
		token := args[i]

		if def.Canonical == "move" && i == 0 {
			mapped := mapDirection(token)
			if mapped == "" {
				entity, confidence, tie := resolveDirection(token, ctx.Directions)
				if tie {
					options := []Intent{
						{Kind: Command, Verb: "move", Args: []string{entity[0]}, Confidence: confidence},
						{Kind: Command, Verb: "move", Args: []string{entity[1]}, Confidence: confidence - 0.01},
					}
					return nil, &ClarifyQuestion{Prompt: "Which direction?", Options: options}, 0.5
				}
				if len(entity) > 0 {
					mapped = entity[0]
					score = minScore(score, confidence)
				}
			}
			if mapped != "" {
				resolved = append(resolved, mapped)
				continue
			}
		}

		if i == 0 && (takesOption(def.Canonical) || def.Canonical == "plan") {
			joined := token
			// Option ids like "cut-costs" arrive as two words.
			if i+1 < len(args) {
				try := token + " " + args[i+1]
				if _, s, _ := resolveOption(try, ctx, def.Canonical); s > 0.9 {
					joined = try
					i++
				}
			}
			entity, confidence, tie := resolveOption(joined, ctx, def.Canonical)
			if tie && len(entity) >= 2 {
				options := make([]Intent, 0, 2)
				for idx := 0; idx < 2; idx++ {
					options = append(options, Intent{
						Kind:       commandKind(def.Canonical),
						Verb:       def.Canonical,
						Args:       []string{entity[idx]},
						Confidence: confidence - float64(idx)*0.01,
					})
				}
				return nil, &ClarifyQuestion{
					Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
					Options: options,
				}, 0.52
			}
			if len(entity) == 1 {
				resolved = append(resolved, entity[0])
				score = minScore(score, confidence)
				continue
			}
		}

		resolved = append(resolved, token)
		score -= 0.02
	}
	return resolved, nil, clampScore(score)
}

func dropFillers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isFiller(token) {
			out = append(out, token)
		}
	}
	return out
}

func resolveDirection(token string, known []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if d := mapDirection(n); d != "" {
		return []string{d}, 0.98, false
	}
	if len(known) == 0 {
		known = []string{"up", "down", "left", "right"}
	}
	return bestMatches(n, known, nil)
}

// resolveOption matches token against the ids the game accepts and returns
// them in their original spelling.
func resolveOption(token string, ctx ParseContext, verb string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	pool := ctx.Options
	if verb == "plan" {
		pool = ctx.Lines
	}
	byNorm := make(map[string]string, len(pool))
	norms := make([]string, 0, len(pool))
	for _, id := range pool {
		v := normaliseInput(id)
		if v == "" {
			continue
		}
		if _, dup := byNorm[v]; !dup {
			norms = append(norms, v)
		}
		byNorm[v] = id
	}
	matches, score, tie := bestMatches(n, norms, nil)
	for i, m := range matches {
		matches[i] = byNorm[m]
	}
	return matches, score, tie
}

func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	boostSet := make(map[string]bool, len(boost))
	for _, n := range boost {
		boostSet[n] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if boostSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildOptionIntents(ctx ParseContext, verb string, maxOptions int) []Intent {
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, id := range ctx.Options {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{id},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "how am i doing", "show status", "my balance", "how much money", "whats my score", "what s my score") {
		return makeIntent(Query, "status", nil, 0.9)
	}
	if containsAnyPhrase(n, "pay back", "pay off", "pay the loan", "clear my debt", "clear the debt") {
		return makeIntent(Command, "repay", nil, 0.86)
	}
	if containsAnyPhrase(n, "not now", "no thanks", "no thank you", "dont want", "don t want") {
		return makeIntent(Command, "decline", nil, 0.82)
	}
	if containsAnyPhrase(n, "i am stuck", "im stuck", "i m stuck", "what should i do", "give me a hint", "need help") {
		return makeIntent(Command, "hint", nil, 0.8)
	}

	if dir := inferDirectionFromText(n); dir != "" {
		return makeIntent(Command, "move", []string{dir}, 0.86)
	}

	// A bare option id answers whatever is pending.
	if len(ctx.Options) > 0 {
		m, confidence, tie := resolveOption(n, ctx, "choose")
		if len(m) == 1 && !tie && confidence >= 0.8 {
			return makeIntent(Command, "choose", m, confidence)
		}
	}

	return nil
}

func inferDirectionFromText(normalised string) string {
	tokens := tokenise(normalised)
	if len(tokens) == 0 {
		return ""
	}
	for i, token := range tokens {
		mapped := mapDirection(token)
		if mapped == "" {
			continue
		}
		// "go n", "walk north", "head east", etc.
		if i > 0 {
			prev := tokens[i-1]
			if prev == "go" || prev == "walk" || prev == "head" || prev == "step" || prev == "move" {
				return mapped
			}
		}
		if i == 0 && len(tokens) == 1 {
			return mapped
		}
	}
	return ""
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders intent back into the text a player would
// type for it.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		if a := strings.TrimSpace(arg); a != "" {
			args = append(args, a)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, intent.Quantity.Raw)
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
