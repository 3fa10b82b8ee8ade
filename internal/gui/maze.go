//go:build cgo

package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paisa-quest/internal/labyrinth"
	uitheme "github.com/appengine-ltd/paisa-quest/internal/ui/theme"
)

const (
	playSplitRatio = 0.62
	layoutPadding  = 16
	layoutGap      = 10
)

type playLayout struct {
	Outer     rl.Rectangle
	TopRect   rl.Rectangle
	MainRect  rl.Rectangle
	SideRect  rl.Rectangle
	InputRect rl.Rectangle
}

// playScreenLayout splits the window into a stats strip, a main area for the
// maze or options, a side log and the command line.
func playScreenLayout(width, height int32) playLayout {
	outer := rl.NewRectangle(layoutPadding, layoutPadding, float32(width-layoutPadding*2), float32(height-layoutPadding*2))
	topH := float32(132)
	inputH := float32(84)
	if outer.Height < 520 {
		topH = 112
		inputH = 72
	}
	gap := float32(layoutGap)
	middleTop := outer.Y + topH + gap
	inputTop := outer.Y + outer.Height - inputH
	if inputTop-middleTop-gap < 160 {
		inputTop = middleTop + gap + 160
	}
	middleH := inputTop - middleTop - gap
	splitX := outer.X + outer.Width*playSplitRatio
	return playLayout{
		Outer:     outer,
		TopRect:   rl.NewRectangle(outer.X, outer.Y, outer.Width, topH),
		MainRect:  rl.NewRectangle(outer.X, middleTop, splitX-outer.X-gap/2, middleH),
		SideRect:  rl.NewRectangle(splitX+gap/2, middleTop, outer.X+outer.Width-splitX-gap/2, middleH),
		InputRect: rl.NewRectangle(outer.X, inputTop, outer.Width, outer.Y+outer.Height-inputTop),
	}
}

type squareGridGeometry struct {
	OriginX  float32
	OriginY  float32
	CellSize float32
	Cols     int
	Rows     int
}

func (g squareGridGeometry) cellRect(x, y int) rl.Rectangle {
	return rl.NewRectangle(g.OriginX+float32(x)*g.CellSize, g.OriginY+float32(y)*g.CellSize, g.CellSize, g.CellSize)
}

// computeSquareGridGeometry fits a cols by rows grid of square cells into
// area, centred.
func computeSquareGridGeometry(area rl.Rectangle, cols, rows int) (squareGridGeometry, bool) {
	if cols <= 0 || rows <= 0 || area.Width <= 1 || area.Height <= 1 {
		return squareGridGeometry{}, false
	}
	cellSize := float32(math.Min(float64(area.Width/float32(cols)), float64(area.Height/float32(rows))))
	cellSize = max(cellSize, 1)
	return squareGridGeometry{
		OriginX:  area.X + (area.Width-cellSize*float32(cols))/2,
		OriginY:  area.Y + (area.Height-cellSize*float32(rows))/2,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
	}, true
}

func mazeCellColor(c labyrinth.Cell) rl.Color {
	switch c {
	case labyrinth.Wall:
		return uitheme.MazeWall
	case labyrinth.LoanDesk:
		return uitheme.MazeDesk
	case labyrinth.Goal:
		return uitheme.MazeGoal
	case labyrinth.Lesson:
		return uitheme.MazeLesson
	}
	return uitheme.MazeFloor
}

func drawMaze(area rl.Rectangle, maze [][]labyrinth.Cell, player labyrinth.Point) {
	if len(maze) == 0 {
		return
	}
	geo, ok := computeSquareGridGeometry(area, len(maze[0]), len(maze))
	if !ok {
		return
	}
	for y, row := range maze {
		for x, cell := range row {
			r := geo.cellRect(x, y)
			rl.DrawRectangleRec(r, mazeCellColor(cell))
			rl.DrawRectangleLinesEx(r, 1, rl.Fade(AppTheme.Background, 0.6))
		}
	}
	p := geo.cellRect(player.X, player.Y)
	rl.DrawCircle(int32(p.X+p.Width/2), int32(p.Y+p.Height/2), p.Width*0.32, AppTheme.TextPrimary)
}

// drawMessageLog fills rect bottom-up with the newest lines.
func drawMessageLog(rect rl.Rectangle, messages []string) {
	maxWidth := int32(rect.Width - spaceM*2)
	lineHeight := textLineHeight(typeScale.Log)
	maxLines := max(int((rect.Height-56)/float32(lineHeight)), 3)
	flattened := make([]string, 0, maxLines)
	for i := len(messages) - 1; i >= 0 && len(flattened) < maxLines; i-- {
		lines := wrapText(messages[i], typeScale.Log, maxWidth)
		for j := len(lines) - 1; j >= 0 && len(flattened) < maxLines; j-- {
			flattened = append(flattened, lines[j])
		}
	}
	y := int32(rect.Y+rect.Height) - 18
	for _, line := range flattened {
		y -= lineHeight
		if y < int32(rect.Y)+48 {
			break
		}
		drawText(line, int32(rect.X+spaceM), y, typeScale.Log, AppTheme.TextSecondary)
	}
}
