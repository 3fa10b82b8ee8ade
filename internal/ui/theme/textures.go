//go:build cgo

package theme

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the optional panel textures. Missing files leave zero-value
// slots, which DrawNineSlice renders as flat fills.
var Skin skinAssets

type skinAssets struct {
	Panel NineSlice
	Input NineSlice

	loaded bool
}

// SkinDir is where InitSkin looks for panel.png and input.png.
var SkinDir = filepath.Join("assets", "skin")

// InitSkin loads skin textures. Call once after rl.InitWindow.
func InitSkin() {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Panel = loadNineSlice(filepath.Join(SkinDir, "panel.png"), 8)
	Skin.Input = loadNineSlice(filepath.Join(SkinDir, "input.png"), 6)
}

// UnloadSkin releases GPU textures. Call before rl.CloseWindow.
func UnloadSkin() {
	unloadTex(&Skin.Panel.Tex)
	unloadTex(&Skin.Input.Tex)
	Skin.loaded = false
}

func loadNineSlice(path string, inset int32) NineSlice {
	if _, err := os.Stat(path); err != nil {
		return NineSlice{Inset: inset}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return NineSlice{Inset: inset}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return NineSlice{Tex: tex, Inset: inset}
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
