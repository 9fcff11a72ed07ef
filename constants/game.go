package constants

import "time"

// Board dimensions (cells)
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Input Timing Constants
const (
	// DASDelay is the Delayed Auto Shift delay before horizontal repeat begins
	DASDelay = 70 * time.Millisecond

	// ARRDelay is the Auto Repeat Rate interval between repeated shifts
	ARRDelay = 10 * time.Millisecond

	// SoftDropDelay is the repeat interval for soft drop (instant for 40L)
	SoftDropDelay = 0 * time.Millisecond

	// KeyTimeout is the liveness window for the key-release fallback on
	// terminals without key-release reporting
	KeyTimeout = 100 * time.Millisecond
)

// Sprint Rules
const (
	// TargetLines is the line count that completes a 40L sprint
	TargetLines = 40

	// GroundTime is the lock delay after a piece first fails to descend
	GroundTime = 500 * time.Millisecond

	// DropInterval is the fixed gravity interval (no speed curve in sprint)
	DropInterval = 1000 * time.Millisecond

	// CountdownStep is the wall-clock duration of each countdown number
	CountdownStep = 1000 * time.Millisecond

	// NextQueueLen is the length of the next-piece preview queue
	NextQueueLen = 5
)

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
