package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player loops the drone on the speaker in step with the animation
type Player struct {
	config  *AudioConfig
	ctrl    *beep.Ctrl
	started bool
}

func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{config: cfg}
}

// Stream returns the endless drone, one pad per animation loop
func (p *Player) Stream(startDelay, loop time.Duration) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		s, err := NewDrone(p.config, startDelay, loop)
		if err != nil {
			log.Printf("audio: %v", err)
			return nil
		}
		return s
	})
}

// Start opens the speaker and begins playback
// A disabled player does nothing
func (p *Player) Start(startDelay, loop time.Duration) error {
	if !p.config.Enabled || p.started {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	p.started = true

	p.ctrl = &beep.Ctrl{Streamer: p.Stream(startDelay, loop)}
	speaker.Play(p.ctrl)
	return nil
}

// Started reports whether the speaker is open
func (p *Player) Started() bool {
	return p.started
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}
