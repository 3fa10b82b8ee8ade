//go:build cgo

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.06)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(44)
	AccentStripWidth = float32(4)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	ListItemDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentRupee, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	if Skin.Panel.Tex.ID != 0 {
		DrawNineSlice(Skin.Panel, rect, fill)
	} else {
		rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawListItem draws one selectable row with a label on the left and a
// detail right-aligned.
func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	left := TextPrimary
	right := TextSecondary
	strokeWidth := BorderWidth

	switch state {
	case ListItemSelected:
		fill = PanelRaised
		stroke = AccentSaffron
		strokeWidth = BorderWidthFocus
		right = AccentSaffron
	case ListItemDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		left = DisabledText
		right = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if state == ListItemSelected && rect.Height > 4 {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4), AccentSaffron)
	}

	textY := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	if leftText != "" {
		drawText(leftText, int32(rect.X+PaddingM), textY, Type.Body, left)
	}
	if rightText != "" {
		rightW := measureText(rightText, Type.Small)
		drawText(rightText, int32(rect.X+rect.Width-PaddingM-float32(rightW)), textY+2, Type.Small, right)
	}
}

// DrawInput renders the command line. A caret follows the text while focused.
func DrawInput(rect rl.Rectangle, text, placeholder string, focused bool) {
	stroke := Border
	if focused {
		stroke = AccentSaffron
	}
	if Skin.Input.Tex.ID != 0 {
		DrawNineSlice(Skin.Input, rect, PanelRaised)
	} else {
		rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, PanelRaised)
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidthFocus, stroke)

	textY := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	x := int32(rect.X + PaddingS)
	if text == "" && !focused {
		drawText(placeholder, x, textY, Type.Body, TextMuted)
		return
	}
	line := "> " + text
	if focused {
		line += "_"
	}
	drawText(line, x, textY, Type.Body, TextPrimary)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	lineW := max(int32(float32(measureText(text, Type.Header))*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentSaffron)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(t, 1))
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
