package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tstris/constants"
)

// PieceType enumerates the seven tetromino shapes
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceTypeCount = 7
)

// pieceShapes holds the spawn-state matrix for each type.
// I uses a 4x4 matrix, O a 2x2, the rest 3x3.
var pieceShapes = [pieceTypeCount][][]bool{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceO: {
		{true, true},
		{true, true},
	},
	PieceT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	PieceS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	PieceZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	PieceJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	PieceL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

var pieceColors = [pieceTypeCount]tcell.Color{
	PieceI: tcell.ColorAqua,
	PieceO: tcell.ColorYellow,
	PieceT: tcell.ColorFuchsia,
	PieceS: tcell.ColorGreen,
	PieceZ: tcell.ColorRed,
	PieceJ: tcell.ColorBlue,
	PieceL: tcell.ColorLightYellow,
}

// Piece is a live tetromino: its type, current shape matrix, board
// position of the matrix's top-left corner, and color.
// Transforms return new candidates; the caller validates before accepting.
type Piece struct {
	Type  PieceType
	Shape [][]bool
	X, Y  int
	Color tcell.Color
}

// NewPiece creates a piece of the given type at the spawn offset
func NewPiece(t PieceType) Piece {
	return Piece{
		Type:  t,
		Shape: copyShape(pieceShapes[t]),
		X:     (constants.BoardWidth - 4) / 2,
		Y:     0,
		Color: pieceColors[t],
	}
}

// RotateCW returns the piece rotated clockwise: (i,j) -> (j, N-1-i)
func (p Piece) RotateCW() Piece {
	size := len(p.Shape)
	shape := emptyShape(size)
	for i := range size {
		for j := range size {
			shape[j][size-1-i] = p.Shape[i][j]
		}
	}
	p.Shape = shape
	return p
}

// RotateCCW returns the piece rotated counter-clockwise
func (p Piece) RotateCCW() Piece {
	size := len(p.Shape)
	shape := emptyShape(size)
	for i := range size {
		for j := range size {
			shape[size-1-j][i] = p.Shape[i][j]
		}
	}
	p.Shape = shape
	return p
}

// Rotate180 returns the piece rotated a half turn
func (p Piece) Rotate180() Piece {
	size := len(p.Shape)
	shape := emptyShape(size)
	for i := range size {
		for j := range size {
			shape[size-1-i][size-1-j] = p.Shape[i][j]
		}
	}
	p.Shape = shape
	return p
}

// Blocks returns the board coordinates of the piece's occupied cells
func (p Piece) Blocks() [][2]int {
	blocks := make([][2]int, 0, 4)
	for i, row := range p.Shape {
		for j, filled := range row {
			if filled {
				blocks = append(blocks, [2]int{p.X + j, p.Y + i})
			}
		}
	}
	return blocks
}

// clone returns a deep copy so candidate transforms never alias the
// accepted piece's shape
func (p Piece) clone() Piece {
	p.Shape = copyShape(p.Shape)
	return p
}

func copyShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i, row := range shape {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

func emptyShape(size int) [][]bool {
	shape := make([][]bool, size)
	for i := range shape {
		shape[i] = make([]bool, size)
	}
	return shape
}
