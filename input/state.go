package input

import (
	"time"

	"github.com/lixenwraith/tstris/constants"
)

// State is the input timing model for one game: per-direction DAS/ARR
// state plus the Left/Right exclusivity rule and the timeout-based
// release fallback.
type State struct {
	directions map[Direction]*DirectionState

	// lastHorizontal records the most recent horizontal press so
	// Left/Right can never drive movement simultaneously
	lastHorizontal Direction
	hasHorizontal  bool

	// EnhancementActive reports whether the event source delivers real
	// key-release events. When false the timeout sweep in CheckTimeouts
	// force-releases stale directions.
	EnhancementActive bool
}

// NewState creates the timing model with all directions idle
func NewState() *State {
	return &State{
		directions: map[Direction]*DirectionState{
			DirLeft:  {},
			DirRight: {},
			DirDown:  {},
		},
	}
}

// Press marks a direction as just pressed. Pressing one horizontal
// direction forcibly releases the other.
func (s *State) Press(dir Direction, now time.Time) {
	switch dir {
	case DirLeft:
		s.Release(DirRight, now)
		s.lastHorizontal = DirLeft
		s.hasHorizontal = true
	case DirRight:
		s.Release(DirLeft, now)
		s.lastHorizontal = DirRight
		s.hasHorizontal = true
	}

	if d, ok := s.directions[dir]; ok {
		d.press(now)
	}
}

// Release returns a direction to idle
func (s *State) Release(dir Direction, now time.Time) {
	if d, ok := s.directions[dir]; ok {
		d.release(now)
	}
	if s.hasHorizontal && s.lastHorizontal == dir {
		s.hasHorizontal = false
	}
}

// IsPressed reports whether a direction is currently held
func (s *State) IsPressed(dir Direction) bool {
	d, ok := s.directions[dir]
	return ok && d.pressed
}

// Touch records key activity for an already-pressed direction.
// Terminal auto-repeat events land here to keep the liveness window open.
func (s *State) Touch(dir Direction, now time.Time) {
	if d, ok := s.directions[dir]; ok {
		d.lastUpdate = now
	}
}

// ResetDAS soft-resets every direction's charge timers, preserving the
// pressed flags. Called when a piece locks.
func (s *State) ResetDAS(now time.Time) {
	for _, d := range s.directions {
		d.resetDAS(now)
	}
}

// CheckTimeouts force-releases any held direction that has seen no key
// activity within KeyTimeout. Only active when the event source cannot
// report key releases.
func (s *State) CheckTimeouts(now time.Time) {
	if s.EnhancementActive {
		return
	}
	for dir, d := range s.directions {
		if d.pressed && now.Sub(d.lastUpdate) > constants.KeyTimeout {
			s.Release(dir, now)
		}
	}
}

// ShiftDue evaluates the DAS/ARR tick for a horizontal direction
func (s *State) ShiftDue(dir Direction, now time.Time) bool {
	d, ok := s.directions[dir]
	return ok && d.shiftDue(now)
}

// DropDue evaluates the soft-drop tick
func (s *State) DropDue(now time.Time) bool {
	d, ok := s.directions[DirDown]
	return ok && d.dropDue(now)
}
