package input

import (
	"time"

	"github.com/lixenwraith/tstris/constants"
)

// Direction is a logical movement direction tracked by the timing model
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// DirectionState tracks DAS/ARR timing for one direction.
// All timestamps are supplied by the caller; the state machine never
// reads an ambient clock.
type DirectionState struct {
	pressed         bool
	dasTimer        time.Time
	arrTimer        time.Time
	dasCharged      bool
	initialMoveDone bool
	lastUpdate      time.Time
}

func (d *DirectionState) press(now time.Time) {
	d.pressed = true
	d.dasTimer = now
	d.arrTimer = now
	d.dasCharged = false
	d.initialMoveDone = false
	d.lastUpdate = now
}

func (d *DirectionState) release(now time.Time) {
	d.pressed = false
	d.dasCharged = false
	d.initialMoveDone = false
	d.lastUpdate = now
}

// resetDAS restarts the charge timers without releasing the key.
// Called when a piece locks so a held direction does not carry a fully
// charged DAS into the next piece.
func (d *DirectionState) resetDAS(now time.Time) {
	if !d.pressed {
		return
	}
	d.dasTimer = now
	d.arrTimer = now
	d.dasCharged = false
	d.initialMoveDone = false
	d.lastUpdate = now
}

// shiftDue decides whether a horizontal move should be emitted at now.
// Phases: one immediate move on the initial tick, then a DAS charge
// wait, then repeats at the ARR interval.
func (d *DirectionState) shiftDue(now time.Time) bool {
	if !d.pressed {
		return false
	}
	switch {
	case !d.initialMoveDone:
		d.initialMoveDone = true
		return true
	case !d.dasCharged:
		if now.Sub(d.dasTimer) >= constants.DASDelay {
			d.dasCharged = true
			d.arrTimer = now
			return true
		}
	default:
		if now.Sub(d.arrTimer) >= constants.ARRDelay {
			d.arrTimer = now
			return true
		}
	}
	return false
}

// dropDue decides whether a soft-drop step should be emitted at now.
// Soft drop has no DAS charge phase; it repeats at its own interval
// immediately after the initial move.
func (d *DirectionState) dropDue(now time.Time) bool {
	if !d.pressed {
		return false
	}
	if !d.initialMoveDone {
		d.initialMoveDone = true
		return true
	}
	if now.Sub(d.arrTimer) >= constants.SoftDropDelay {
		d.arrTimer = now
		return true
	}
	return false
}
