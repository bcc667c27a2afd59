// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	logger      *log.Logger
	initialized bool
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted pauses or resumes everything.
func (sm *SoundManager) SetMuted(muted bool) {
	speaker.Lock()
	sm.ctrl.Paused = muted
	speaker.Unlock()
}

// HandleEvents plays the cues for one tick's events.
func (sm *SoundManager) HandleEvents(events []event.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	for _, cue := range selectCues(events) {
		s, err := cue.Streamer(sampleRate)
		if err != nil {
			sm.logger.Warnf("audio cue %.0fHz: %v", cue.Freq, err)
			continue
		}
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}
