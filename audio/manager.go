// Package audio plays short synthesized cues for game events.
// Initialization failure is non-fatal; every play call is a no-op when
// the speaker is unavailable.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and plays event cues
type Manager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewManager creates an uninitialized manager
func NewManager() *Manager {
	return &Manager{}
}

// Initialize sets up the audio system
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	m.initialized = true
	return nil
}

// SetMuted toggles all cue playback
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Cleanup stops playback and releases the speaker
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// tone queues a sine burst of the given frequency and duration
func (m *Manager) tone(freq float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// CountdownTick plays the 3-2 countdown blip
func (m *Manager) CountdownTick() { m.tone(660, 60*time.Millisecond) }

// CountdownGo plays the go signal
func (m *Manager) CountdownGo() { m.tone(880, 120*time.Millisecond) }

// Lock plays the piece-lock thud
func (m *Manager) Lock() { m.tone(220, 30*time.Millisecond) }

// LineClear plays the line-clear chime
func (m *Manager) LineClear() { m.tone(990, 80*time.Millisecond) }

// Finish plays the sprint-complete fanfare
func (m *Manager) Finish() { m.tone(1320, 300*time.Millisecond) }
