package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// parseQuantityToken reads plain integers and thousands written as "9k".
// Grouping commas and the rupee sign are already gone after normalisation.
func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n}
	}
	if strings.HasSuffix(token, "k") {
		if n, err := strconv.Atoi(strings.TrimSuffix(token, "k")); err == nil && n >= 0 {
			return &Quantity{Raw: token, N: n * 1000}
		}
	}
	return nil
}

func isFiller(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "the", "a", "an", "to", "option", "loan", "in", "on", "with", "my", "for":
		return true
	default:
		return false
	}
}

func mapDirection(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "u", "up", "n", "north":
		return "up"
	case "d", "down", "s", "south":
		return "down"
	case "l", "left", "w", "west":
		return "left"
	case "r", "right", "e", "east":
		return "right"
	default:
		return ""
	}
}
