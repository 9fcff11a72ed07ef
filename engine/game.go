package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/tstris/constants"
	"github.com/lixenwraith/tstris/input"
)

// Phase is the game lifecycle state
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseFinished
)

// Wall kick offsets tried in order when a rotation is blocked in place.
// The I piece reaches further horizontally than the rest.
var (
	kicksI = [][2]int{{1, 0}, {-1, 0}, {2, 0}, {-2, 0}, {0, -1}}
	kicks  = [][2]int{{1, 0}, {-1, 0}, {0, -1}, {1, -1}, {-1, -1}}
)

// Game owns the sprint state: board, active piece, hold slot, preview
// queue, lifecycle phase and every gameplay timer. All operations are
// synchronous and take explicit timestamps; the engine never reads a
// clock of its own.
type Game struct {
	board      Board
	current    *Piece
	nextPieces []Piece
	holdPiece  *Piece
	canHold    bool

	linesCleared   int
	linesRemaining int
	piecesLocked   int

	phase     Phase
	countdown int

	// Input is the DAS/ARR timing model; the event layer feeds it
	// through PressDirection/ReleaseDirection and Advance consults it
	Input *input.State

	bag *Bag

	dropTimer      time.Time
	countdownTimer time.Time
	gameStart      time.Time
	started        bool
	finalTime      time.Duration
	hasFinalTime   bool
	groundTimer    time.Time
	grounded       bool
}

// NewGame creates a Ready game with a filled preview queue.
// rng seeds the bag randomizer; pass a fixed source for deterministic runs.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		canHold:        true,
		linesRemaining: constants.TargetLines,
		phase:          PhaseReady,
		Input:          input.NewState(),
		bag:            NewBag(rng),
	}
	g.fillNextPieces()
	return g
}

func (g *Game) fillNextPieces() {
	for len(g.nextPieces) < constants.NextQueueLen {
		g.nextPieces = append(g.nextPieces, NewPiece(g.bag.Next()))
	}
}

// StartCountdown begins the pre-game countdown. No-op outside Ready.
func (g *Game) StartCountdown(now time.Time) {
	if g.phase != PhaseReady {
		return
	}
	g.phase = PhaseCountdown
	g.countdown = 3
	g.countdownTimer = now
}

// startGame transitions into Playing, starts the run timer and spawns
// the first piece
func (g *Game) startGame(now time.Time) {
	g.phase = PhasePlaying
	g.gameStart = now
	g.started = true
	g.spawnPiece(now)
}

// spawnPiece dequeues the preview head into the active slot. A spawn
// into an invalid position tops the game out.
func (g *Game) spawnPiece(now time.Time) {
	if g.phase != PhasePlaying {
		return
	}

	if len(g.nextPieces) > 0 {
		p := g.nextPieces[0]
		g.nextPieces = g.nextPieces[1:]
		g.fillNextPieces()
		g.current = &p
	}

	g.canHold = true
	g.grounded = false

	if g.current != nil && !g.isValidPosition(*g.current) {
		g.finish(now)
	}
}

// finish freezes the run timer and terminates the lifecycle
func (g *Game) finish(now time.Time) {
	g.phase = PhaseFinished
	if g.started {
		g.finalTime = now.Sub(g.gameStart)
		g.hasFinalTime = true
	}
}

// isValidPosition reports whether every occupied cell is inside the
// walls, above the floor, and over empty board cells. Cells above the
// visible board (y < 0) are exempt from the occupancy check.
func (g *Game) isValidPosition(p Piece) bool {
	for _, b := range p.Blocks() {
		x, y := b[0], b[1]
		if x < 0 || x >= constants.BoardWidth || y >= constants.BoardHeight {
			return false
		}
		if y >= 0 && g.board[y][x].Kind != CellEmpty {
			return false
		}
	}
	return true
}

// Move translates the active piece by (dx, dy), accepting the candidate
// only if valid. A successful horizontal move clears the ground timer;
// a rejected downward move starts it.
func (g *Game) Move(dx, dy int, now time.Time) bool {
	if g.phase != PhasePlaying || g.current == nil {
		return false
	}

	candidate := g.current.clone()
	candidate.X += dx
	candidate.Y += dy

	if g.isValidPosition(candidate) {
		g.current = &candidate
		if dx != 0 {
			g.grounded = false
		}
		return true
	}

	if dy > 0 && !g.grounded {
		g.grounded = true
		g.groundTimer = now
	}
	return false
}

// rotateWithKicks tries a rotated candidate in place, then each wall
// kick offset in order. The piece is unchanged if everything fails.
func (g *Game) rotateWithKicks(rotated Piece) bool {
	if g.isValidPosition(rotated) {
		g.current = &rotated
		return true
	}

	table := kicks
	if rotated.Type == PieceI {
		table = kicksI
	}
	for _, k := range table {
		kicked := rotated.clone()
		kicked.X += k[0]
		kicked.Y += k[1]
		if g.isValidPosition(kicked) {
			g.current = &kicked
			return true
		}
	}
	return false
}

// RotateCW rotates the active piece clockwise, with wall kicks
func (g *Game) RotateCW() bool {
	if g.current == nil {
		return false
	}
	return g.rotateWithKicks(g.current.RotateCW())
}

// RotateCCW rotates the active piece counter-clockwise, with wall kicks
func (g *Game) RotateCCW() bool {
	if g.current == nil {
		return false
	}
	return g.rotateWithKicks(g.current.RotateCCW())
}

// Rotate180 rotates the active piece a half turn, with wall kicks
func (g *Game) Rotate180() bool {
	if g.current == nil {
		return false
	}
	return g.rotateWithKicks(g.current.Rotate180())
}

// Hold swaps the active piece with the hold slot; the first hold draws
// the replacement from the preview queue. The stored piece keeps its
// rotated shape but returns to the spawn offset. Holding is disabled
// until the next spawn.
func (g *Game) Hold(now time.Time) {
	if !g.canHold || g.phase != PhasePlaying || g.current == nil {
		return
	}

	stored := *g.current
	if g.holdPiece != nil {
		g.current = g.holdPiece
	} else if len(g.nextPieces) > 0 {
		p := g.nextPieces[0]
		g.nextPieces = g.nextPieces[1:]
		g.fillNextPieces()
		g.current = &p
	} else {
		g.current = nil
	}

	stored.X = (constants.BoardWidth - 4) / 2
	stored.Y = 0
	g.holdPiece = &stored

	g.canHold = false

	if g.current != nil && !g.isValidPosition(*g.current) {
		g.finish(now)
	}
}

// HardDrop drives the piece to the floor and locks it immediately,
// bypassing the ground-timer grace window
func (g *Game) HardDrop(now time.Time) {
	if g.phase != PhasePlaying || g.current == nil {
		return
	}
	for g.Move(0, 1, now) {
	}
	g.lockPiece(now)
}

// lockPiece stamps the active piece onto the board, clears lines,
// soft-resets the input timers and spawns the next piece
func (g *Game) lockPiece(now time.Time) {
	if g.current != nil {
		for _, b := range g.current.Blocks() {
			x, y := b[0], b[1]
			if y >= 0 && y < constants.BoardHeight && x >= 0 && x < constants.BoardWidth {
				g.board[y][x] = Cell{Kind: CellFilled, Color: g.current.Color}
			}
		}
	}

	g.current = nil
	g.piecesLocked++
	g.updateLines(g.clearLines(), now)

	// A direction held through the lock must not carry a charged DAS
	// into the next piece
	g.Input.ResetDAS(now)

	g.spawnPiece(now)
	g.dropTimer = now
}

// clearLines compacts non-full rows downward with a descending write
// cursor, removing full rows in place. Returns the number removed.
func (g *Game) clearLines() int {
	cleared := 0
	write := constants.BoardHeight - 1

	for read := constants.BoardHeight - 1; read >= 0; read-- {
		if rowFull(g.board[read]) {
			cleared++
			continue
		}
		if read != write {
			g.board[write] = g.board[read]
		}
		write--
	}

	for row := 0; row <= write; row++ {
		g.board[row] = [constants.BoardWidth]Cell{}
	}
	return cleared
}

func rowFull(row [constants.BoardWidth]Cell) bool {
	for _, c := range row {
		if c.Kind == CellEmpty {
			return false
		}
	}
	return true
}

// updateLines advances the sprint counters and finishes the run when
// the target is reached
func (g *Game) updateLines(cleared int, now time.Time) {
	g.linesCleared += cleared
	g.linesRemaining -= cleared
	if g.linesRemaining <= 0 {
		g.linesRemaining = 0
		g.finish(now)
	}
}

// GhostPiece returns the active piece translated to its hard-drop
// resting position, or nil when it would coincide with the piece itself
func (g *Game) GhostPiece() *Piece {
	if g.current == nil {
		return nil
	}

	ghost := g.current.clone()
	for g.isValidPosition(ghost) {
		ghost.Y++
	}
	ghost.Y--

	if ghost.Y == g.current.Y {
		return nil
	}
	return &ghost
}

// Advance drives the game forward one frame at the given time.
// While playing it runs, in order: the key-liveness sweep, horizontal
// DAS/ARR ticks, the soft-drop tick, the ground-timer lock check
// (locking wins over gravity this frame), then gravity.
func (g *Game) Advance(now time.Time) {
	switch g.phase {
	case PhaseReady, PhaseFinished:
		return
	case PhaseCountdown:
		if now.Sub(g.countdownTimer) >= constants.CountdownStep {
			if g.countdown > 1 {
				g.countdown--
				g.countdownTimer = now
			} else {
				g.startGame(now)
			}
		}
		return
	}

	g.Input.CheckTimeouts(now)

	if g.Input.ShiftDue(input.DirLeft, now) {
		g.Move(-1, 0, now)
	}
	if g.Input.ShiftDue(input.DirRight, now) {
		g.Move(1, 0, now)
	}
	if g.Input.DropDue(now) {
		g.Move(0, 1, now)
	}

	if g.grounded && now.Sub(g.groundTimer) >= constants.GroundTime {
		g.lockPiece(now)
		return
	}

	if now.Sub(g.dropTimer) >= constants.DropInterval {
		g.dropTimer = now
		g.Move(0, 1, now)
	}
}

// PressDirection routes a key-down for a timed direction: a fresh press
// arms the DAS state machine, a terminal auto-repeat only refreshes the
// liveness window
func (g *Game) PressDirection(dir input.Direction, now time.Time) {
	if !g.Input.IsPressed(dir) {
		g.Input.Press(dir, now)
	} else {
		g.Input.Touch(dir, now)
	}
}

// ReleaseDirection routes a key-up for a timed direction
func (g *Game) ReleaseDirection(dir input.Direction, now time.Time) {
	g.Input.Release(dir, now)
}

// Reset restores a fresh game and auto-starts the countdown
// (quick-restart: no return to Ready)
func (g *Game) Reset(now time.Time) {
	enhancement := g.Input.EnhancementActive

	g.board = Board{}
	g.current = nil
	g.nextPieces = nil
	g.bag.reset()
	g.holdPiece = nil
	g.canHold = true
	g.linesCleared = 0
	g.linesRemaining = constants.TargetLines
	g.piecesLocked = 0
	g.dropTimer = now
	g.Input = input.NewState()
	g.Input.EnhancementActive = enhancement
	g.started = false
	g.hasFinalTime = false
	g.grounded = false

	g.fillNextPieces()

	g.phase = PhaseCountdown
	g.countdown = 3
	g.countdownTimer = now
}

// Elapsed returns the run time: live while playing, frozen at the final
// time once finished. ok is false before the run starts.
func (g *Game) Elapsed(now time.Time) (time.Duration, bool) {
	if !g.started {
		return 0, false
	}
	switch g.phase {
	case PhasePlaying:
		return now.Sub(g.gameStart), true
	case PhaseFinished:
		return g.finalTime, g.hasFinalTime
	}
	return 0, false
}

// Phase returns the lifecycle state
func (g *Game) Phase() Phase { return g.phase }

// Countdown returns the current countdown number (meaningful only in
// PhaseCountdown)
func (g *Game) Countdown() int { return g.countdown }

// LinesCleared returns the cumulative cleared line count
func (g *Game) LinesCleared() int { return g.linesCleared }

// LinesRemaining returns the lines still needed to finish the sprint
func (g *Game) LinesRemaining() int { return g.linesRemaining }

// CanHold reports whether holding is allowed for the active piece
func (g *Game) CanHold() bool { return g.canHold }

// PiecesLocked returns how many pieces have locked this run
func (g *Game) PiecesLocked() int { return g.piecesLocked }
