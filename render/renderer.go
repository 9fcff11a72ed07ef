package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tstris/constants"
	"github.com/lixenwraith/tstris/engine"
)

// Board geometry in screen cells. Blocks are drawn two columns wide,
// so the board interior is 20x20 plus a one-cell border.
const (
	boardInnerW = constants.BoardWidth * 2
	boardInnerH = constants.BoardHeight
	boardOuterW = boardInnerW + 2
	boardOuterH = boardInnerH + 2
	panelW      = 15
)

// Renderer draws engine snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Frame renders one snapshot: board with ghost and active piece, the
// hold/stats panel on the left, the next-piece panel on the right, and
// any lifecycle overlay on top
func (r *Renderer) Frame(snap engine.Snapshot) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	boardX := (sw - boardOuterW) / 2
	boardY := (sh - boardOuterH) / 2
	if boardX < panelW {
		boardX = panelW
	}
	if boardY < 0 {
		boardY = 0
	}

	r.drawBoard(snap, boardX, boardY)
	r.drawHold(snap, boardX-panelW, boardY)
	r.drawStats(snap, boardX-panelW, boardY+8)
	r.drawNext(snap, boardX+boardOuterW, boardY)

	switch snap.Phase {
	case engine.PhaseReady:
		r.drawReadyOverlay(boardX, boardY)
	case engine.PhaseCountdown:
		r.drawCountdownOverlay(snap.Countdown, boardX, boardY)
	case engine.PhaseFinished:
		r.drawFinishedOverlay(snap, boardX, boardY)
	}

	r.screen.Show()
}

func (r *Renderer) drawBoard(snap engine.Snapshot, x, y int) {
	r.drawBox(x, y, boardOuterW, boardOuterH, "tstris")

	// Stamp ghost first so the active piece draws over it
	board := snap.Board
	if snap.Ghost != nil {
		for _, b := range snap.Ghost.Blocks() {
			if inBoard(b[0], b[1]) && board[b[1]][b[0]].Kind == engine.CellEmpty {
				board[b[1]][b[0]] = engine.Cell{Kind: engine.CellGhost, Color: snap.Ghost.Color}
			}
		}
	}
	if snap.Current != nil {
		for _, b := range snap.Current.Blocks() {
			if inBoard(b[0], b[1]) {
				board[b[1]][b[0]] = engine.Cell{Kind: engine.CellFilled, Color: snap.Current.Color}
			}
		}
	}

	for row := 0; row < constants.BoardHeight; row++ {
		for col := 0; col < constants.BoardWidth; col++ {
			cx := x + 1 + col*2
			cy := y + 1 + row
			switch cell := board[row][col]; cell.Kind {
			case engine.CellEmpty:
				// Checkerboard texture so empty columns stay readable
				if (row+col)%2 == 0 {
					r.put(cx, cy, '░', '░', tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
				}
			case engine.CellFilled:
				r.put(cx, cy, '█', '█', tcell.StyleDefault.Foreground(cell.Color))
			case engine.CellGhost:
				r.put(cx, cy, '▒', '▒', tcell.StyleDefault.Foreground(cell.Color))
			}
		}
	}
}

func (r *Renderer) drawHold(snap engine.Snapshot, x, y int) {
	r.drawBox(x, y, panelW, 8, "Hold")
	if snap.Hold == nil {
		return
	}

	style := tcell.StyleDefault.Foreground(snap.Hold.Color)
	if !snap.CanHold {
		style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	r.drawShape(*snap.Hold, x+2, y+2, style)
}

func (r *Renderer) drawStats(snap engine.Snapshot, x, y int) {
	r.drawBox(x, y, panelW, 8, "")

	r.text(x+2, y+1, "40L", tcell.StyleDefault.Foreground(tcell.ColorAqua))

	elapsed := "0.00s"
	if snap.HasElapsed {
		elapsed = fmt.Sprintf("%.2fs", snap.Elapsed.Seconds())
	}
	r.text(x+2, y+3, elapsed, tcell.StyleDefault)
	r.text(x+2, y+5, fmt.Sprintf("%d/%d", snap.LinesCleared, constants.TargetLines), tcell.StyleDefault)
}

func (r *Renderer) drawNext(snap engine.Snapshot, x, y int) {
	r.drawBox(x, y, panelW, boardOuterH, "Next")

	row := y + 2
	for _, p := range snap.Next {
		row += r.drawShape(p, x+2, row, tcell.StyleDefault.Foreground(p.Color))
		row++ // spacing between previews
	}
}

// drawShape draws only the matrix rows that contain blocks and returns
// how many screen rows it used
func (r *Renderer) drawShape(p engine.Piece, x, y int, style tcell.Style) int {
	rows := 0
	for _, row := range p.Shape {
		used := false
		for j, filled := range row {
			if filled {
				r.put(x+j*2, y+rows, '█', '█', style)
				used = true
			}
		}
		if used {
			rows++
		}
	}
	return rows
}

func (r *Renderer) drawReadyOverlay(boardX, boardY int) {
	w, h := 24, 5
	x := boardX + (boardOuterW-w)/2
	y := boardY + (boardOuterH-h)/2
	r.clearRect(x, y, w, h)
	r.drawBox(x, y, w, h, "Ready")
	r.textCentered(x, y+1, w, "40L SPRINT", tcell.StyleDefault.Foreground(tcell.ColorAqua))
	r.textCentered(x, y+3, w, "Press SPACE to start", tcell.StyleDefault)
}

func (r *Renderer) drawCountdownOverlay(count, boardX, boardY int) {
	w, h := 12, 3
	x := boardX + (boardOuterW-w)/2
	y := boardY + (boardOuterH-h)/2
	r.clearRect(x, y, w, h)
	r.drawBox(x, y, w, h, "")

	text := ""
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	switch count {
	case 2:
		text = "Ready"
	case 1:
		text = "GO!"
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	r.textCentered(x, y+1, w, text, style)
}

func (r *Renderer) drawFinishedOverlay(snap engine.Snapshot, boardX, boardY int) {
	w, h := 28, 9
	x := boardX + (boardOuterW-w)/2
	y := boardY + (boardOuterH-h)/2
	r.clearRect(x, y, w, h)
	r.drawBox(x, y, w, h, "Finished")

	final := "N/A"
	if snap.HasElapsed {
		final = fmt.Sprintf("%.3fs", snap.Elapsed.Seconds())
	}
	r.textCentered(x, y+1, w, "40L COMPLETE!", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	r.textCentered(x, y+3, w, "Final Time: "+final, tcell.StyleDefault)
	r.textCentered(x, y+4, w, fmt.Sprintf("Lines Cleared: %d", snap.LinesCleared), tcell.StyleDefault)
	r.textCentered(x, y+6, w, "Press R to restart", tcell.StyleDefault)
	r.textCentered(x, y+7, w, "Press Q to quit", tcell.StyleDefault)
}

// === primitives ===

func (r *Renderer) put(x, y int, a, b rune, style tcell.Style) {
	r.screen.SetContent(x, y, a, nil, style)
	r.screen.SetContent(x+1, y, b, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) textCentered(x, y, w int, s string, style tcell.Style) {
	r.text(x+(w-len(s))/2, y, s, style)
}

func (r *Renderer) clearRect(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (r *Renderer) drawBox(x, y, w, h int, title string) {
	style := tcell.StyleDefault
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)

	if title != "" && len(title)+2 < w {
		r.text(x+1, y, title, style)
	}
}

func inBoard(x, y int) bool {
	return x >= 0 && x < constants.BoardWidth && y >= 0 && y < constants.BoardHeight
}
