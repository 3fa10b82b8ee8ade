//go:build cgo

package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paisa-quest/internal/game"
	"github.com/appengine-ltd/paisa-quest/internal/parser"
	"github.com/appengine-ltd/paisa-quest/internal/session"
	uitheme "github.com/appengine-ltd/paisa-quest/internal/ui/theme"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg     AppConfig
	session *session.Session
}

func NewApp(cfg AppConfig, s *session.Session) *App {
	return &App{cfg: cfg, session: s}
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg, a.session)
	return ui.Run()
}

const maxLogLines = 200

type gameUI struct {
	cfg     AppConfig
	session *session.Session
	queue   *intentQueue

	width  int32
	height int32
	quit   bool

	view     session.View
	cursor   int
	input    string
	failed   bool
	messages []string
}

func newGameUI(cfg AppConfig, s *session.Session) *gameUI {
	ui := &gameUI{
		cfg:     cfg,
		session: s,
		queue:   newIntentQueue(16),
		width:   1280,
		height:  760,
		view:    s.View(),
	}
	ui.appendMessage(ui.view.Message)
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Paisa Quest")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	uitheme.InitSkin()
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	uitheme.UnloadSkin()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update() {
	if ctrlDown() && rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if ui.view.InMenu() {
			ui.quit = true
			return
		}
		ui.queue.EnqueueIntent(parser.Intent{Kind: parser.Command, Verb: "menu", Confidence: 1})
	}

	if n := len(ui.view.Options); n > 0 && HotkeysEnabled(ui) {
		if rl.IsKeyPressed(rl.KeyDown) {
			ui.cursor = wrapIndex(ui.cursor+1, n)
		}
		if rl.IsKeyPressed(rl.KeyUp) {
			ui.cursor = wrapIndex(ui.cursor-1, n)
		}
	}
	if pollHotkeys(ui, ui.queue) {
		// The digit that fired the hotkey is also queued as a typed char.
		for rl.GetCharPressed() > 0 {
		}
	}

	captureTextInput(&ui.input, 120)
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		ui.submit()
	}
	ui.drainQueue()
}

// submit sends the command line, or picks the highlighted option when the
// line is empty.
func (ui *gameUI) submit() {
	line := strings.TrimSpace(ui.input)
	ui.input = ""
	if line == "" {
		if intent, ok := optionIntent(ui.view, ui.cursor); ok {
			ui.queue.EnqueueIntent(intent)
		}
		return
	}
	if line == "quit" || line == "exit" {
		ui.quit = true
		return
	}
	ui.appendMessage("> " + line)
	ui.apply(ui.session.Handle(line))
}

func (ui *gameUI) drainQueue() {
	for {
		intent, ok := ui.queue.Dequeue()
		if !ok {
			return
		}
		ui.appendMessage("> " + parser.IntentToCommandString(intent))
		ui.apply(ui.session.Dispatch(intent))
	}
}

func (ui *gameUI) apply(v session.View, err error) {
	ui.view = v
	ui.failed = err != nil
	ui.cursor = 0
	ui.appendMessage(v.Message)
}

func (ui *gameUI) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	ui.messages = append(ui.messages, line)
	if len(ui.messages) > maxLogLines {
		ui.messages = append([]string(nil), ui.messages[len(ui.messages)-maxLogLines:]...)
	}
}

func (ui *gameUI) draw() {
	if ui.view.InMenu() {
		ui.drawMenu()
		return
	}
	ui.drawPlay()
}

func (ui *gameUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 120)
	DrawPanel(titleRect, "", false)
	drawTextCentered("PAISA QUEST", titleRect, 24, typeScale.Title, AppTheme.Accent)
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 74, typeScale.Small, AppTheme.TextMuted)

	menuRect := rl.NewRectangle(float32(ui.width/2-320), 170, 640, float32(110+len(ui.view.Options)*96))
	DrawPanel(menuRect, ui.view.Heading, true)
	for i, opt := range ui.view.Options {
		y := menuRect.Y + 70 + float32(i*96)
		r := rl.NewRectangle(menuRect.X+spaceL, y, menuRect.Width-spaceL*2, 80)
		DrawListItem(r, i == ui.cursor, "", "")
		drawText(fmt.Sprintf("%d. %s", i+1, opt.Label), int32(r.X+spaceM), int32(r.Y+spaceS), typeScale.Header, AppTheme.TextPrimary)
		drawText(opt.Detail, int32(r.X+spaceM), int32(r.Y+spaceS)+typeScale.Header+8, typeScale.Small, AppTheme.TextSecondary)
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-56), float32(ui.width-40), 40)
	drawTextCentered("Up/Down and Enter, a number key, or type a game name. Esc quits.", hintRect, 8, typeScale.Small, AppTheme.TextMuted)
}

func (ui *gameUI) drawPlay() {
	v := ui.view
	layout := playScreenLayout(ui.width, ui.height)

	DrawPanel(layout.TopRect, "", false)
	drawText(strings.ToUpper(v.Title), int32(layout.TopRect.X+spaceM), int32(layout.TopRect.Y+spaceS), typeScale.Header, AppTheme.Accent)
	turn := v.TurnLabel
	switch v.Status {
	case game.StatusWon:
		turn += "   WON"
	case game.StatusLost:
		turn += "   LOST"
	}
	turnW := measureText(turn, typeScale.Body)
	drawText(turn, int32(layout.TopRect.X+layout.TopRect.Width-spaceM)-turnW, int32(layout.TopRect.Y+spaceS), typeScale.Body, statusColor(v.Status))
	ui.drawStats(layout.TopRect)

	if v.Maze != nil && len(v.Options) == 0 {
		DrawPanel(layout.MainRect, "Village", false)
		inner := rl.NewRectangle(layout.MainRect.X+spaceM, layout.MainRect.Y+56, layout.MainRect.Width-spaceM*2, layout.MainRect.Height-56-spaceM)
		drawMaze(inner, v.Maze, v.Player)
	} else {
		ui.drawChoices(layout.MainRect)
	}

	DrawPanel(layout.SideRect, "Ledger", false)
	drawMessageLog(layout.SideRect, ui.messages)

	inputRect := rl.NewRectangle(layout.InputRect.X, layout.InputRect.Y+6, layout.InputRect.Width, 44)
	DrawInputField(inputRect, ui.input, "Type a command, or help", true)
	hint := "Enter picks the highlighted option. Number keys pick directly. Esc returns to the menu."
	if v.Maze != nil {
		hint = "Arrow keys walk the maze. " + hint
	}
	clr := AppTheme.TextMuted
	if ui.failed {
		hint, clr = v.Message, AppTheme.Danger
	}
	drawText(hint, int32(inputRect.X+spaceS), int32(inputRect.Y+inputRect.Height+spaceXS), typeScale.Small, clr)
}

func (ui *gameUI) drawStats(rect rl.Rectangle) {
	stats := ui.view.Stats
	if len(stats) == 0 {
		return
	}
	colW := (rect.Width - spaceM*2) / float32(len(stats))
	y := rect.Y + spaceS + float32(typeScale.Header) + spaceM
	for i, s := range stats {
		x := rect.X + spaceM + colW*float32(i)
		if s.Max > 0 {
			meter := rl.NewRectangle(x, y, colW-spaceL, 28)
			DrawMeter(s.Label, s.Level*100/s.Max, meter, MeterThresholds{})
			continue
		}
		DrawLabelValue(s.Label, s.Value, int32(x), int32(y), AppTheme.TextPrimary)
	}
}

func (ui *gameUI) drawChoices(rect rl.Rectangle) {
	v := ui.view
	DrawPanel(rect, v.Heading, true)
	y := int32(rect.Y) + 60
	if v.Prompt != "" {
		for _, line := range wrapText(v.Prompt, typeScale.Body, int32(rect.Width-spaceM*2)) {
			drawText(line, int32(rect.X+spaceM), y, typeScale.Body, AppTheme.TextSecondary)
			y += textLineHeight(typeScale.Body)
		}
		y += int32(spaceS)
	}
	for i, opt := range v.Options {
		r := rl.NewRectangle(rect.X+spaceM, float32(y), rect.Width-spaceM*2, uitheme.RowHeight)
		if r.Y+r.Height > rect.Y+rect.Height-spaceS {
			break
		}
		DrawListItem(r, i == ui.cursor, fmt.Sprintf("%d. %s", i+1, opt.Label), opt.Detail)
		y += int32(uitheme.RowHeight + spaceXS)
	}
	if len(v.History) > 0 && len(v.Options) == 0 {
		drawMessageLog(rl.NewRectangle(rect.X, float32(y), rect.Width, rect.Y+rect.Height-float32(y)), v.History)
	}
}

func statusColor(s game.Status) rl.Color {
	switch s {
	case game.StatusWon:
		return AppTheme.Gain
	case game.StatusLost:
		return AppTheme.Danger
	}
	return AppTheme.TextPrimary
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := measureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	drawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 8)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
