//go:build cgo

package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/paisa-quest/internal/gui"
	"github.com/appengine-ltd/paisa-quest/internal/session"
	"github.com/appengine-ltd/paisa-quest/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, launch))
}

func launch(opts options, s *session.Session, log *zap.Logger) error {
	if opts.gui {
		log.Info("starting windowed client")
		return gui.NewApp(gui.AppConfig{Version: version, Commit: commit, BuildDate: date}, s).Run()
	}
	log.Info("starting terminal client")
	return ui.NewApp(ui.AppConfig{Version: version, Commit: commit, BuildDate: date}, s).Run()
}
