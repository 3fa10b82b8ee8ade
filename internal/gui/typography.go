//go:build cgo

package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/paisa-quest/internal/ui/theme"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
	Log    int32
}

type typographyState struct {
	base       rl.Font
	owned      bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Title:  uitheme.Type.Title,
		Header: uitheme.Type.Header,
		Body:   uitheme.Type.Body,
		Small:  uitheme.Type.Small,
		Log:    uitheme.Type.Log,
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
)

// fontRunes is printable ASCII plus the rupee sign, which the default
// raylib font lacks.
func fontRunes() []rune {
	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '₹')
}

func initTypography() {
	uiType.base = rl.GetFontDefault()

	candidates := []string{
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
		filepath.Join("assets", "fonts", "Mukta-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(candidates, 36); ok {
		uiType.base = f
		uiType.owned = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if uiType.owned && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	runes := fontRunes()
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, runes, int32(len(runes)))
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	return int32(math.Round(float64(max(size, 1)) * float64(uiType.lineFactor)))
}
