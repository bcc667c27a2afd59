package audio

import (
	"time"

	"go-maze-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a short tone played in response to a game event.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // в октавах громкости beep, 0 — без изменений
}

// cues — звук для каждого события; отсутствующие события беззвучны
var cues = map[event.EventType]Cue{
	event.TowerPlaced:       {Freq: 523.25, Duration: 80 * time.Millisecond, Volume: -1},
	event.TowerRemoved:      {Freq: 392.00, Duration: 80 * time.Millisecond, Volume: -1},
	event.PlacementRejected: {Freq: 140, Duration: 150 * time.Millisecond, Volume: -1},
	event.WaveStarted:       {Freq: 659.25, Duration: 250 * time.Millisecond, Volume: -0.5},
	event.TowerFired:        {Freq: 880, Duration: 30 * time.Millisecond, Volume: -3},
	event.EnemyKilled:       {Freq: 330, Duration: 60 * time.Millisecond, Volume: -2},
	event.EnemyReachedEnd:   {Freq: 110, Duration: 200 * time.Millisecond, Volume: -0.5},
	event.WaveComplete:      {Freq: 783.99, Duration: 300 * time.Millisecond, Volume: -0.5},
	event.AllWavesComplete:  {Freq: 1046.5, Duration: 600 * time.Millisecond},
	event.GameOver:          {Freq: 98, Duration: 800 * time.Millisecond},
}

// CueFor returns the cue for an event type.
func CueFor(t event.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// Streamer builds a finite streamer for the cue.
func (c Cue) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.Duration), tone),
		Base:     2,
		Volume:   c.Volume,
	}, nil
}

// selectCues keeps one cue per event type, in first-seen order.
// Залп из десятков выстрелов за тик звучит как один.
func selectCues(events []event.Event) []Cue {
	seen := make(map[event.EventType]bool, len(events))
	var out []Cue
	for _, e := range events {
		if seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		if c, ok := CueFor(e.Type); ok {
			out = append(out, c)
		}
	}
	return out
}
