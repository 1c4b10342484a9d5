// Package audio synthesizes the ambient drone played under the preview and
// hands it to the system speaker through beep.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Drone voicing, an A minor pad over a low A
const (
	droneRoot   = 110.0  // A2
	droneThird  = 130.81 // C3
	droneFifth  = 164.81 // E3
	droneSub    = 55.0   // A1
	droneDetune = 0.35

	droneAttack  = 6 * time.Second
	droneRelease = 4 * time.Second
)

// NewDrone builds one loop of the drone: silence for the start delay, then
// a pad lasting length with a slow fade in and out
func NewDrone(cfg *AudioConfig, silence, length time.Duration) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if length <= 0 {
		return nil, fmt.Errorf("audio: drone length %v must be positive", length)
	}

	root, err := generators.SineTone(rate, droneRoot)
	if err != nil {
		return nil, fmt.Errorf("audio: root tone: %w", err)
	}

	n := rate.N(length)
	pad := beep.Mix(
		newVolume(beep.Take(n, root), 0.30),
		newVolume(NewOscillator(droneRoot+droneDetune, length, WaveSine, rate), 0.20),
		newVolume(NewOscillator(droneThird, length, WaveSine, rate), 0.14),
		newVolume(NewOscillator(droneFifth, length, WaveSine, rate), 0.16),
		newVolume(NewOscillator(droneSub, length, WaveTriangle, rate), 0.12),
		newVolume(NewOscillator(0, length, WaveNoise, rate), 0.02),
	)

	attack := min(droneAttack, length/4)
	release := min(droneRelease, length/4)
	shaped := NewEnvelope(pad, length, attack, release, rate)

	return beep.Seq(beep.Silence(rate.N(silence)), newVolume(shaped, cfg.MasterVolume)), nil
}
