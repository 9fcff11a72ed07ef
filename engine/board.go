package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tstris/constants"
)

// CellKind discriminates the board cell variants
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFilled
	// CellGhost is a rendering hint only; it never participates in
	// collision and is never stored on the engine's board
	CellGhost
)

// Cell is one board cell: empty, a locked block, or a ghost preview
type Cell struct {
	Kind  CellKind
	Color tcell.Color
}

// Board is the fixed 10x20 playfield. Row 0 is the top.
// Owned exclusively by the Game; mutated only through lock and clear.
type Board [constants.BoardHeight][constants.BoardWidth]Cell
