//go:build cgo

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Ledger palette: dark slate paper, rupee green for gains, saffron accents.
var (
	BG            = rl.NewColor(0x12, 0x17, 0x1C, 255) // #12171C
	Panel         = rl.NewColor(0x1A, 0x22, 0x29, 255) // #1A2229
	PanelRaised   = rl.NewColor(0x22, 0x2C, 0x34, 255) // #222C34
	Border        = rl.NewColor(0x2F, 0x3D, 0x45, 255) // #2F3D45
	Divider       = rl.NewColor(0x27, 0x32, 0x3A, 255) // #27323A
	TextPrimary   = rl.NewColor(0xEC, 0xE8, 0xDF, 255) // #ECE8DF
	TextSecondary = rl.NewColor(0xA9, 0xB2, 0xB5, 255) // #A9B2B5
	TextMuted     = rl.NewColor(0x7B, 0x86, 0x8B, 255) // #7B868B
	AccentSaffron = rl.NewColor(0xF2, 0x99, 0x1E, 255) // #F2991E
	AccentRupee   = rl.NewColor(0x2E, 0x9E, 0x5B, 255) // #2E9E5B
	WarningAmber  = rl.NewColor(0xD9, 0xA4, 0x2B, 255) // #D9A42B
	Danger        = rl.NewColor(0xC4, 0x45, 0x3C, 255) // #C4453C
	DisabledPanel = rl.NewColor(0x15, 0x1B, 0x20, 255)
	DisabledText  = TextMuted

	MazeWall   = rl.NewColor(0x3A, 0x2E, 0x26, 255)
	MazeFloor  = rl.NewColor(0x1F, 0x28, 0x2F, 255)
	MazeDesk   = AccentSaffron
	MazeGoal   = AccentRupee
	MazeLesson = rl.NewColor(0x4F, 0x7C, 0xC9, 255)
)
