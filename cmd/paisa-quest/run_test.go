package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/budget"
	"github.com/appengine-ltd/paisa-quest/internal/config"
	"github.com/appengine-ltd/paisa-quest/internal/session"
)

func noLaunch(t *testing.T) launcher {
	return func(options, *session.Session, *zap.Logger) error {
		t.Fatalf("client should not start")
		return nil
	}
}

func TestParseOptionsFallsBackToEnvConfig(t *testing.T) {
	cfg := config.Config{Seed: 42, Game: "company", CatalogDir: "games"}
	opts, err := parseOptions([]string{"-game", "labyrinth"}, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.game != "labyrinth" {
		t.Fatalf("flag should win, got %q", opts.game)
	}
	if opts.seed != 42 || opts.catalogDir != "games" {
		t.Fatalf("expected env fallbacks, got %+v", opts)
	}
}

func TestRunPrintsVersion(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-version"}, &out, &bytes.Buffer{}, noLaunch(t)); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "Paisa Quest dev") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestRunDumpsCatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	if code := run([]string{"-dump-catalog", dir}, &bytes.Buffer{}, &bytes.Buffer{}, noLaunch(t)); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, name := range []string{"budget.yaml", "company.yaml", "labyrinth.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRunRejectsBadCatalog(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "company.yaml"), []byte("max_turns: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PAISA_LOG_FILE", filepath.Join(t.TempDir(), "test.log"))

	var stderr bytes.Buffer
	code := run([]string{"-catalog-dir", dir}, &bytes.Buffer{}, &stderr, noLaunch(t))
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid game catalog") {
		t.Fatalf("expected catalog error, got %q", stderr.String())
	}
}

func TestRunStartsRequestedGame(t *testing.T) {
	t.Setenv("PAISA_LOG_FILE", filepath.Join(t.TempDir(), "test.log"))
	var active string
	launch := func(_ options, s *session.Session, _ *zap.Logger) error {
		active = s.Active()
		return nil
	}
	if code := run([]string{"-game", "budget", "-seed", "3"}, &bytes.Buffer{}, &bytes.Buffer{}, launch); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if active != budget.GameName {
		t.Fatalf("expected budget challenge, got %q", active)
	}
}
