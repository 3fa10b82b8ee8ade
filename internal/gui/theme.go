//go:build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/paisa-quest/internal/ui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Gain          rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentSaffron,
	Gain:          uitheme.AccentRupee,
	Warning:       uitheme.WarningAmber,
	Danger:        uitheme.Danger,
}

// MeterThresholds colour a 0..100 meter. Values at or below Danger draw red,
// at or below Warning amber.
type MeterThresholds struct {
	Warning int
	Danger  int
}

// DrawPanel draws a themed panel with an optional underlined title.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		uitheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 12
		uitheme.DrawDivider(rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

func DrawListItem(rect rl.Rectangle, selected bool, leftText, rightText string) {
	state := uitheme.ListItemNormal
	if selected {
		state = uitheme.ListItemSelected
	}
	uitheme.DrawListItem(rect, state, leftText, rightText)
}

func DrawInputField(rect rl.Rectangle, text, placeholder string, focused bool) {
	uitheme.DrawInput(rect, text, placeholder, focused)
}

func DrawLabelValue(label, value string, x, y int32, valueColor rl.Color) {
	drawText(label, x, y, typeScale.Small, AppTheme.TextSecondary)
	drawText(value, x, y+typeScale.Small+4, typeScale.Body, valueColor)
}

// DrawMeter draws a labelled 0..100 bar, used for trust, market share and
// satisfaction.
func DrawMeter(label string, value int, rect rl.Rectangle, thresholds MeterThresholds) {
	v := clampInt(value, 0, 100)
	barY := rect.Y + float32(typeScale.Small) + 4
	track := rl.NewRectangle(rect.X, barY, rect.Width, 8)
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(v)/100.0, track.Height-2)

	drawText(fmt.Sprintf("%s %d%%", label, v), int32(rect.X), int32(rect.Y), typeScale.Small, AppTheme.TextSecondary)
	rl.DrawRectangleRec(track, rl.Fade(AppTheme.PanelRaised, 0.9))
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, meterColor(v, thresholds))
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(AppTheme.Border, 0.95))
}

func meterColor(value int, thresholds MeterThresholds) rl.Color {
	warning := thresholds.Warning
	if warning == 0 {
		warning = 40
	}
	danger := thresholds.Danger
	if danger == 0 {
		danger = 20
	}
	switch {
	case value <= danger:
		return AppTheme.Danger
	case value <= warning:
		return AppTheme.Warning
	}
	return AppTheme.Gain
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	return ((i % size) + size) % size
}
