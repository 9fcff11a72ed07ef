package engine

import (
	"time"

	"github.com/lixenwraith/tstris/constants"
)

// Snapshot is the immutable view of engine state handed to the
// presentation layer each frame. Everything is copied; the renderer
// never aliases engine-owned memory.
type Snapshot struct {
	Board   Board
	Current *Piece
	Ghost   *Piece
	Hold    *Piece
	CanHold bool
	Next    []Piece

	Phase     Phase
	Countdown int

	LinesCleared   int
	LinesRemaining int
	PiecesLocked   int

	Elapsed    time.Duration
	HasElapsed bool
}

// Snapshot captures the current state for rendering. now is used to
// compute the live run time while playing.
func (g *Game) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Board:          g.board,
		CanHold:        g.canHold,
		Phase:          g.phase,
		Countdown:      g.countdown,
		LinesCleared:   g.linesCleared,
		LinesRemaining: g.linesRemaining,
		PiecesLocked:   g.piecesLocked,
	}

	if g.current != nil {
		p := g.current.clone()
		s.Current = &p
	}
	s.Ghost = g.GhostPiece()
	if g.holdPiece != nil {
		p := g.holdPiece.clone()
		s.Hold = &p
	}

	s.Next = make([]Piece, 0, constants.NextQueueLen)
	for _, p := range g.nextPieces {
		s.Next = append(s.Next, p.clone())
	}

	s.Elapsed, s.HasElapsed = g.Elapsed(now)
	return s
}
