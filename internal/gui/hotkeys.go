//go:build cgo

package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	"github.com/appengine-ltd/paisa-quest/internal/parser"
	"github.com/appengine-ltd/paisa-quest/internal/session"
)

var hotkeyCandidates = []int32{
	rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight,
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// HotkeysEnabled reports whether single keys act as commands. Typing into
// the command line turns them off.
func HotkeysEnabled(ui *gameUI) bool {
	if ui == nil {
		return true
	}
	return strings.TrimSpace(ui.input) == ""
}

// pollHotkeys queues an intent for every hotkey pressed this frame and
// reports whether any fired.
func pollHotkeys(ui *gameUI, sink CommandSink) bool {
	if !HotkeysEnabled(ui) {
		return false
	}
	fired := false
	for _, key := range hotkeyCandidates {
		if !rl.IsKeyPressed(key) {
			continue
		}
		if intent, ok := hotkeyIntent(ui.view, key); ok {
			sink.EnqueueIntent(intent)
			fired = true
		}
	}
	return fired
}

// hotkeyIntent maps a key to a command for the current view. Arrows walk the
// labyrinth; digits pick the numbered option.
func hotkeyIntent(v session.View, key int32) (parser.Intent, bool) {
	if key >= rl.KeyOne && key <= rl.KeyNine {
		return optionIntent(v, int(key-rl.KeyOne))
	}
	if v.Game != labyrinth.GameName || len(v.Options) > 0 {
		return parser.Intent{}, false
	}
	dir := map[int32]string{
		rl.KeyUp:    "up",
		rl.KeyDown:  "down",
		rl.KeyLeft:  "left",
		rl.KeyRight: "right",
	}[key]
	if dir == "" {
		return parser.Intent{}, false
	}
	return parser.Intent{Kind: parser.Command, Verb: "move", Args: []string{dir}, Confidence: 1}, true
}

// optionIntent builds the command that picks option i of the view.
func optionIntent(v session.View, i int) (parser.Intent, bool) {
	if i < 0 || i >= len(v.Options) {
		return parser.Intent{}, false
	}
	return parser.Intent{Kind: parser.Command, Verb: v.OptionVerb, Args: []string{v.Options[i].ID}, Confidence: 1}, true
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}
