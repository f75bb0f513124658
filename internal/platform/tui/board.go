package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// layout maps grid coordinates onto the screen. Every grid cell is drawn
// as two adjacent block characters, so horizontally the field uses half as
// many cells as the screen has columns. The field is centered with an
// offset from the top-left corner.
type layout struct {
	screenW, screenH int
	mapW, mapH       int // largest playable grid coordinates, inclusive
	offX, offY       int
}

// newLayout derives the playing field size from the screen dimensions.
// This happens once at startup; the field does not follow later resizes.
func newLayout(screenW, screenH int) layout {
	width := screenW - 1
	height := screenH - 1

	l := layout{
		screenW: screenW,
		screenH: screenH,
		mapW:    width / 4,
		mapH:    height * 2 / 3,
	}
	l.offX = (width - l.mapW*2) / 2
	l.offY = (height - l.mapH) / 2
	return l
}

// tooSmall reports whether the terminal cannot hold a playable field with
// its walls and score line.
func (l layout) tooSmall() bool {
	return l.mapW < 4 || l.mapH < 4 || l.offY < 2
}

// cellX translates a grid x coordinate to the screen column of the left
// half of its two-character block.
func (l layout) cellX(x int) int {
	return 2*x + 1 + l.offX
}

// cellY translates a grid y coordinate to its screen row.
func (l layout) cellY(y int) int {
	return y + l.offY
}

// drawCell paints one grid cell as a double block in the given color.
func (l layout) drawCell(scr *core.Screen, p core.Point, c core.Color) {
	scr.SetCell(l.cellX(p.X), l.cellY(p.Y), '█', c)
	scr.SetCell(l.cellX(p.X)+1, l.cellY(p.Y), '█', c)
}

// drawWalls draws the border just outside the playable field.
func (l layout) drawWalls(scr *core.Screen) {
	nwX, nwY := l.offX, l.offY-1
	seX, seY := l.cellX(l.mapW)+2, l.mapH+l.offY+1

	scr.DrawHLine(nwX, nwY, seX-nwX+1, '▄', core.ColorWall)
	scr.DrawHLine(nwX, seY, seX-nwX+1, '▀', core.ColorWall)
	scr.DrawVLine(nwX, nwY+1, seY-nwY-1, '█', core.ColorWall)
	scr.DrawVLine(seX, nwY+1, seY-nwY-1, '█', core.ColorWall)
}

// drawScore puts the score line above the playing field.
func (l layout) drawScore(scr *core.Screen, score int) {
	scr.DrawText(l.offX, l.offY-2, fmt.Sprintf("Score: %d", score), core.ColorDefault)
}

// drawBoard renders the playing field: walls, score, target and snake.
// The collision cell is highlighted only once the round has ended.
func (l layout) drawBoard(scr *core.Screen, s *game.Session) {
	l.drawWalls(scr)
	l.drawScore(scr, s.Score())

	if t := s.Grid().Target(); t != core.NoPoint {
		l.drawCell(scr, t, core.ColorTarget)
	}

	segments := s.Snake().Segments()
	for i, p := range segments {
		color := core.ColorBody
		if i == len(segments)-1 {
			color = core.ColorHead
		}
		if s.Grid().InsideBounds(p) {
			l.drawCell(scr, p, color)
		}
	}

	if s.State() == game.StateGameOver && s.Collision() != core.NoPoint {
		l.drawCell(scr, s.Collision(), core.ColorCollision)
	}
}
