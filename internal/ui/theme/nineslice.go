//go:build cgo

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Insets are in source pixels; corners are
// drawn as-is, edges stretch along one axis and the centre stretches both.
type NineSlice struct {
	Tex   rl.Texture2D
	Inset int32
}

// DrawNineSlice renders ns into dest. Without a texture it falls back to a
// translucent flat fill.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.35))
		return
	}

	in := float32(ns.Inset)
	srcCols := [3][2]float32{{0, in}, {in, float32(ns.Tex.Width) - 2*in}, {float32(ns.Tex.Width) - in, in}}
	srcRows := [3][2]float32{{0, in}, {in, float32(ns.Tex.Height) - 2*in}, {float32(ns.Tex.Height) - in, in}}

	edge := min(in, dest.Width/2, dest.Height/2)
	dstCols := [3][2]float32{{dest.X, edge}, {dest.X + edge, dest.Width - 2*edge}, {dest.X + dest.Width - edge, edge}}
	dstRows := [3][2]float32{{dest.Y, edge}, {dest.Y + edge, dest.Height - 2*edge}, {dest.Y + dest.Height - edge, edge}}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			dst := rl.NewRectangle(dstCols[c][0], dstRows[r][0], dstCols[c][1], dstRows[r][1])
			if dst.Width <= 0 || dst.Height <= 0 {
				continue
			}
			src := rl.NewRectangle(srcCols[c][0], srcRows[r][0], srcCols[c][1], srcRows[r][1])
			rl.DrawTexturePro(ns.Tex, src, dst, rl.Vector2{}, 0, tint)
		}
	}
}
