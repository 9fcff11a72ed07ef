package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, r rune) tcell.Event {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestMachineKeyBindings(t *testing.T) {
	m := NewMachine()

	cases := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"left arrow", keyEvent(tcell.KeyLeft, 0), IntentShiftLeft},
		{"right arrow", keyEvent(tcell.KeyRight, 0), IntentShiftRight},
		{"down arrow", keyEvent(tcell.KeyDown, 0), IntentSoftDrop},
		{"up arrow", keyEvent(tcell.KeyUp, 0), IntentRotateCW},
		{"d rotates ccw", keyEvent(tcell.KeyRune, 'd'), IntentRotateCCW},
		{"a rotates 180", keyEvent(tcell.KeyRune, 'a'), IntentRotate180},
		{"s hard drops", keyEvent(tcell.KeyRune, 's'), IntentHardDrop},
		{"space starts", keyEvent(tcell.KeyRune, ' '), IntentStart},
		{"h holds", keyEvent(tcell.KeyRune, 'h'), IntentHold},
		{"r resets", keyEvent(tcell.KeyRune, 'r'), IntentReset},
		{"q quits", keyEvent(tcell.KeyRune, 'q'), IntentQuit},
		{"uppercase folds", keyEvent(tcell.KeyRune, 'H'), IntentHold},
		{"escape quits", keyEvent(tcell.KeyEscape, 0), IntentQuit},
	}

	for _, tc := range cases {
		intent := m.Process(tc.ev)
		if intent == nil {
			t.Errorf("%s: expected an intent, got nil", tc.name)
			continue
		}
		if intent.Type != tc.want {
			t.Errorf("%s: expected intent %d, got %d", tc.name, tc.want, intent.Type)
		}
	}
}

func TestMachineIgnoresUnboundKeys(t *testing.T) {
	m := NewMachine()
	if intent := m.Process(keyEvent(tcell.KeyRune, 'x')); intent != nil {
		t.Errorf("expected nil for an unbound rune, got %d", intent.Type)
	}
	if intent := m.Process(keyEvent(tcell.KeyHome, 0)); intent != nil {
		t.Errorf("expected nil for an unbound key, got %d", intent.Type)
	}
}

func TestTimedDirectionMapping(t *testing.T) {
	if dir, ok := (Intent{Type: IntentShiftLeft}).TimedDirection(); !ok || dir != DirLeft {
		t.Error("IntentShiftLeft must map to DirLeft")
	}
	if dir, ok := (Intent{Type: IntentSoftDrop}).TimedDirection(); !ok || dir != DirDown {
		t.Error("IntentSoftDrop must map to DirDown")
	}
	if _, ok := (Intent{Type: IntentHardDrop}).TimedDirection(); ok {
		t.Error("direct commands must not map to a timed direction")
	}
}
