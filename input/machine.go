package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell key events into semantic Intents.
// The mapping follows the sprint control scheme: arrows shift/soft-drop,
// Up rotates clockwise, d/a rotate the other ways, s or Space hard-drops,
// h holds, r restarts, q quits.
type Machine struct {
	keyTable  map[tcell.Key]IntentType
	runeTable map[rune]IntentType
}

// NewMachine creates the input parser with the default key table
func NewMachine() *Machine {
	return &Machine{
		keyTable: map[tcell.Key]IntentType{
			tcell.KeyLeft:   IntentShiftLeft,
			tcell.KeyRight:  IntentShiftRight,
			tcell.KeyDown:   IntentSoftDrop,
			tcell.KeyUp:     IntentRotateCW,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		runeTable: map[rune]IntentType{
			'd': IntentRotateCCW,
			'a': IntentRotate180,
			's': IntentHardDrop,
			' ': IntentStart,
			'h': IntentHold,
			'r': IntentReset,
			'q': IntentQuit,
		},
	}
}

// Process parses a terminal event and returns an Intent.
// Returns nil for events with no binding.
func (m *Machine) Process(ev tcell.Event) *Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}

	if key.Key() == tcell.KeyRune {
		r := key.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if t, ok := m.runeTable[r]; ok {
			return &Intent{Type: t}
		}
		return nil
	}

	if t, ok := m.keyTable[key.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}
