// Package catalog loads YAML overrides of the built-in game tables and can
// write the built-ins out as a starting point for editing.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/paisa-quest/internal/budget"
	"github.com/appengine-ltd/paisa-quest/internal/company"
	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
)

const (
	BudgetFile    = "budget.yaml"
	CompanyFile   = "company.yaml"
	LabyrinthFile = "labyrinth.yaml"
)

// Budget is the on-disk shape of budget.yaml.
type Budget struct {
	Rules budget.Rules `yaml:"rules"`
	Plan  budget.Plan  `yaml:"plan"`
}

// Catalog holds every game table the session can start.
type Catalog struct {
	Budget    Budget
	Company   company.Config
	Labyrinth labyrinth.Config
}

func BuiltIn() Catalog {
	return Catalog{
		Budget:    Budget{Rules: budget.DefaultRules(), Plan: budget.DefaultPlan()},
		Company:   company.DefaultConfig(),
		Labyrinth: labyrinth.DefaultConfig(),
	}
}

// Load reads the three catalog files from dir. An empty dir or a missing
// file keeps the built-in table.
func Load(dir string) (Catalog, error) {
	cat := BuiltIn()
	if dir == "" {
		return cat, nil
	}
	var err error
	if cat.Budget, err = LoadBudget(filepath.Join(dir, BudgetFile)); err != nil {
		return cat, err
	}
	if cat.Company, err = LoadCompany(filepath.Join(dir, CompanyFile)); err != nil {
		return cat, err
	}
	if cat.Labyrinth, err = LoadLabyrinth(filepath.Join(dir, LabyrinthFile)); err != nil {
		return cat, err
	}
	return cat, nil
}

func LoadBudget(path string) (Budget, error) {
	b := Budget{Rules: budget.DefaultRules(), Plan: budget.DefaultPlan()}
	if err := decode(path, &b); err != nil {
		return b, err
	}
	if _, err := budget.NewEngine(b.Rules, b.Plan); err != nil {
		return b, asConfigError(budget.GameName, path, err)
	}
	return b, nil
}

func LoadCompany(path string) (company.Config, error) {
	cfg := company.DefaultConfig()
	if err := decode(path, &cfg); err != nil {
		return cfg, err
	}
	// yaml merges mappings into the defaults; a file's effects stand alone.
	var override struct {
		Effects map[company.Category]company.CategoryEffect `yaml:"effects"`
	}
	if err := decode(path, &override); err != nil {
		return cfg, err
	}
	if override.Effects != nil {
		cfg.Effects = override.Effects
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func LoadLabyrinth(path string) (labyrinth.Config, error) {
	cfg := labyrinth.DefaultConfig()
	if err := decode(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Dump writes the built-in tables to dir, creating it if needed.
func Dump(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	cat := BuiltIn()
	files := []struct {
		name string
		v    any
	}{
		{BudgetFile, cat.Budget},
		{CompanyFile, cat.Company},
		{LabyrinthFile, cat.Labyrinth},
	}
	for _, f := range files {
		raw, err := yaml.Marshal(f.v)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, f.name), raw, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// decode overlays the file at path onto v. Keys absent from the file keep
// the value already in v.
func decode(path string, v any) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

func asConfigError(gameName, path string, err error) error {
	if errors.Is(err, game.ErrConfiguration) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return &game.ConfigError{Game: gameName, Field: "plan", Reason: err.Error()}
}
