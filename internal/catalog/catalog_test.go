package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/paisa-quest/internal/company"
	"github.com/appengine-ltd/paisa-quest/internal/game"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadWithoutDirUsesBuiltIns(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BuiltIn(), cat)

	cat, err = Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, BuiltIn(), cat)
}

func TestDumpThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	require.NoError(t, Dump(dir))

	for _, name := range []string{BudgetFile, CompanyFile, LabyrinthFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	cat, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, BuiltIn(), cat)
}

func TestPartialOverrideKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CompanyFile, "win_cash: 1500000\nevent_chance: 0\n")
	writeFile(t, dir, BudgetFile, "plan:\n  entertainment: 500\n")

	cat, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1500000, cat.Company.WinCash)
	assert.Zero(t, cat.Company.EventChance)
	assert.Equal(t, BuiltIn().Company.Investments, cat.Company.Investments)

	assert.Equal(t, 500, cat.Budget.Plan.Entertainment)
	assert.Equal(t, 25000, cat.Budget.Plan.Income)
	assert.Len(t, cat.Budget.Rules.Scenarios, 5)
}

func TestCompanyEffectsReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CompanyFile, "effects:\n  marketing: {market_share: 5}\n")

	cat, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, cat.Company.Effects, 1)
	assert.Equal(t, company.CategoryEffect{MarketShare: 5}, cat.Company.Effects[company.Marketing])
	assert.Equal(t, BuiltIn().Company.Investments, cat.Company.Investments)
}

func TestInvalidTablesAreConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "labyrinth without moves", file: LabyrinthFile, body: "max_turns: 0\n"},
		{name: "company without year", file: CompanyFile, body: "max_turns: 1\n"},
		{name: "budget out of order", file: BudgetFile, body: `
rules:
  scenarios:
    - {id: late, turn: 5, kind: fixed_effect}
    - {id: early, turn: 3, kind: fixed_effect}
`},
		{name: "budget over income", file: BudgetFile, body: "plan:\n  rent: 30000\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tc.file, tc.body)
			_, err := Load(dir)
			require.ErrorIs(t, err, game.ErrConfiguration)
		})
	}
}

func TestMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, LabyrinthFile, "layout: [[1, 2\n")
	_, err := LoadLabyrinth(filepath.Join(dir, LabyrinthFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), LabyrinthFile)
}
