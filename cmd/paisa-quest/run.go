package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/catalog"
	"github.com/appengine-ltd/paisa-quest/internal/config"
	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/logging"
	"github.com/appengine-ltd/paisa-quest/internal/session"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	gui         bool
	game        string
	seed        int64
	catalogDir  string
	dumpCatalog string
}

// parseOptions reads flags, falling back to cfg for anything not given on
// the command line.
func parseOptions(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("paisa-quest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&opts.gui, "gui", false, "open the windowed client instead of the terminal UI")
	fs.StringVar(&opts.game, "game", cfg.Game, "start straight into budget, labyrinth or company")
	fs.Int64Var(&opts.seed, "seed", cfg.Seed, "seed for hints and company events (0 picks one)")
	fs.StringVar(&opts.catalogDir, "catalog-dir", cfg.CatalogDir, "directory of YAML files overriding the built-in games")
	fs.StringVar(&opts.dumpCatalog, "dump-catalog", "", "write the built-in game catalog to this directory and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

type launcher func(opts options, s *session.Session, log *zap.Logger) error

func run(args []string, stdout, stderr io.Writer, launch launcher) int {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	opts, err := parseOptions(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "Paisa Quest %s (%s) %s\n", version, commit, date)
		return 0
	}
	if opts.dumpCatalog != "" {
		if err := catalog.Dump(opts.dumpCatalog); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote built-in catalog to %s\n", opts.dumpCatalog)
		return 0
	}

	log, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	s, err := newSession(opts, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		if errors.Is(err, game.ErrConfiguration) {
			fmt.Fprintf(stderr, "invalid game catalog: %v\n", err)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	if err := launch(opts, s, log); err != nil {
		log.Error("client exited", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newSession(opts options, log *zap.Logger) (*session.Session, error) {
	cat, err := catalog.Load(opts.catalogDir)
	if err != nil {
		return nil, err
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := session.New(cat, seed, log)
	if err != nil {
		return nil, err
	}
	if opts.game != "" {
		if err := s.Start(opts.game); err != nil {
			return nil, err
		}
	}
	return s, nil
}
