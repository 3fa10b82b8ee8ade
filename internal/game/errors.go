package game

import (
	"errors"
	"fmt"
)

// ErrInvalidChoice indicates a choice was required but missing, unknown, or
// supplied when no choice was awaited.
var ErrInvalidChoice = errors.New("invalid choice")

// ErrGameAlreadyOver indicates an action arrived after the game reached a
// terminal status.
var ErrGameAlreadyOver = errors.New("game already over")

// ErrConfiguration indicates a malformed game configuration.
var ErrConfiguration = errors.New("invalid game configuration")

// ConfigError describes a configuration problem found at construction time.
type ConfigError struct {
	Game   string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Game == "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config %s: %s: %s", e.Game, e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(game, field, format string, args ...any) error {
	return &ConfigError{Game: game, Field: field, Reason: fmt.Sprintf(format, args...)}
}
