//go:build !cgo

package main

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/session"
	"github.com/appengine-ltd/paisa-quest/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, launch))
}

func launch(opts options, s *session.Session, log *zap.Logger) error {
	if opts.gui {
		return errors.New("the windowed client needs a cgo build with raylib")
	}
	log.Info("starting terminal client")
	return ui.NewApp(ui.AppConfig{Version: version, Commit: commit, BuildDate: date}, s).Run()
}
