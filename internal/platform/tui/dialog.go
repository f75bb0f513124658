package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// dialogKind selects which modal to draw.
type dialogKind int

const (
	dialogWelcome dialogKind = iota
	dialogOver
	dialogWin
)

const (
	dialogWidth  = 57
	dialogHeight = 16

	scoreLine      = 9  // art line the score is plugged into
	difficultyLine = 11 // art line the difficulty label is plugged into
	hintLine       = 13 // art line with the quit/play key hints
)

// difficultyLabels are the selector strings shown in the dialogs, indexed
// by game.Difficulty. The angle brackets hint at the adjustment keys.
var difficultyLabels = [...]string{
	"  incremental >",
	"   < easy >    ",
	"  < medium >   ",
	"   < hard      ",
}

var welcomeArt = [dialogHeight]string{
	"",
	"                              _",
	"                             | |",
	"              ___ _ __   __ _| | _____   ___",
	"             / __| '_ \\ / _` | |/ / _ \\ / __|",
	"             \\__ \\ | | | (_| |   <  __/| (__",
	"             |___/_| |_|\\__,_|_|\\_\\___(_)___|",
	"",
	"",
	"",
	"",
	"              Difficulty %s",
	"",
	"                  Quit [q]      Play [⏎]",
	"",
	"",
}

var overArt = [dialogHeight]string{
	"┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓",
	"┃   _____                        _____                  ┃",
	"┃  |  __ \\                      |  _  |                 ┃",
	"┃  | |  \\/ __ _ _ __ ___   ___  | | | |_   _____ _ __   ┃",
	"┃  | | __ / _` | '_ ` _ \\ / _ \\ | | | \\ \\ / / _ \\ '__|  ┃",
	"┃  | |_\\ \\ (_| | | | | | |  __/ \\ \\_/ /\\ V /  __/ |     ┃",
	"┃   \\____/\\__,_|_| |_| |_|\\___|  \\___/  \\_/ \\___|_|     ┃",
	"┃                                                       ┃",
	"┃                                                       ┃",
	"┃                   Your score was %-4d                 ┃",
	"┃                                                       ┃",
	"┃               Difficulty %s              ┃",
	"┃                                                       ┃",
	"┃              Quit [q]      Play again [⏎]             ┃",
	"┃                                                       ┃",
	"┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛",
}

var winArt = [dialogHeight]string{
	"┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓",
	"┃         __   __            _    _                     ┃",
	"┃         \\ \\ / /           | |  | |                    ┃",
	"┃          \\ V /___  _   _  | |  | | ___  _ __          ┃",
	"┃           \\ // _ \\| | | | | |/\\| |/ _ \\| '_ \\         ┃",
	"┃           | | (_) | |_| | \\  /\\  / (_) | | | |        ┃",
	"┃           \\_/\\___/ \\__,_|  \\/  \\/ \\___/|_| |_|        ┃",
	"┃                                                       ┃",
	"┃                                                       ┃",
	"┃                   Your score was %-4d                 ┃",
	"┃                                                       ┃",
	"┃               Difficulty %s              ┃",
	"┃                                                       ┃",
	"┃              Quit [q]      Play again [⏎]             ┃",
	"┃                                                       ┃",
	"┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛",
}

// dialogOrigin returns the top-left screen position of the modal, centered
// over the playing field.
func (l layout) dialogOrigin() (int, int) {
	bx := l.offX + l.mapW - dialogWidth/2 + 1
	by := l.offY + l.mapH/2 - dialogHeight/2 + 1
	return bx, by
}

// drawDialog renders a modal over whatever is already on the screen,
// plugging the score and the difficulty label into their art lines.
func (l layout) drawDialog(scr *core.Screen, kind dialogKind, score int, diff game.Difficulty) {
	var art *[dialogHeight]string
	switch kind {
	case dialogWelcome:
		art = &welcomeArt
	case dialogOver:
		art = &overArt
	case dialogWin:
		art = &winArt
	}

	bx, by := l.dialogOrigin()
	for i, line := range art {
		color := core.ColorDefault
		switch {
		case i == scoreLine && kind != dialogWelcome:
			line = fmt.Sprintf(line, score)
		case i == difficultyLine:
			line = fmt.Sprintf(line, difficultyLabels[diff])
		case i == hintLine:
			color = core.ColorDim
		}
		scr.DrawText(bx, by+i, line, color)
	}
}

// doodle is the decorative snake circling the welcome dialog. It lives in
// screen coordinates and steps two columns at a time horizontally, so its
// double-block cells stay aligned.
type doodle struct {
	cells  []core.Point // head last
	dir    core.Direction
	bx, by int
}

// newDoodle creates the doodle along the left dialog edge, heading down.
func newDoodle(bx, by int) *doodle {
	const length = 8
	cells := make([]core.Point, length)
	for i := range cells {
		cells[i] = core.Point{X: bx, Y: by + 2 + i}
	}
	return &doodle{cells: cells, dir: core.South, bx: bx, by: by}
}

// step advances the doodle one cell counterclockwise around the dialog,
// turning at the corners.
func (d *doodle) step() {
	head := d.cells[len(d.cells)-1]
	next := head

	switch d.dir {
	case core.North:
		if head.Y >= d.by {
			next.Y--
			break
		}
		d.dir = core.West
		fallthrough
	case core.West:
		if head.X > d.bx {
			next.X -= 2
			break
		}
		d.dir = core.South
		fallthrough
	case core.South:
		if head.Y-1 < d.by+dialogHeight {
			next.Y++
			break
		}
		d.dir = core.East
		fallthrough
	case core.East:
		if head.X < d.bx+dialogWidth-1 {
			next.X += 2
			break
		}
		d.dir = core.North
		next.Y--
	}

	copy(d.cells, d.cells[1:])
	d.cells[len(d.cells)-1] = next
}

// draw paints the doodle over the dialog.
func (d *doodle) draw(scr *core.Screen) {
	for i, p := range d.cells {
		color := core.ColorBody
		if i == len(d.cells)-1 {
			color = core.ColorHead
		}
		scr.SetCell(p.X, p.Y, '█', color)
		scr.SetCell(p.X+1, p.Y, '█', color)
	}
}
