package input

// IntentType is the semantic action parsed from a terminal event
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Timed directions, routed into the DAS/ARR model
	IntentShiftLeft
	IntentShiftRight
	IntentSoftDrop

	// Direct engine commands
	IntentRotateCW
	IntentRotateCCW
	IntentRotate180
	IntentHardDrop
	IntentHold

	// Session control. IntentStart doubles as hard drop while playing;
	// the router resolves it against the lifecycle state.
	IntentStart
	IntentReset
	IntentQuit
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
}

// TimedDirection maps a timed intent to its Direction.
// ok is false for direct commands.
func (i Intent) TimedDirection() (Direction, bool) {
	switch i.Type {
	case IntentShiftLeft:
		return DirLeft, true
	case IntentShiftRight:
		return DirRight, true
	case IntentSoftDrop:
		return DirDown, true
	}
	return 0, false
}
