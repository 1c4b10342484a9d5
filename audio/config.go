package audio

import (
	"log"
	"os"
	"strconv"
)

// AudioConfig holds drone playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultAudioConfig returns the stock settings, audio off
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("HALO3_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Printf("audio: ignoring HALO3_AUDIO_ENABLED=%q: %v", enabled, err)
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv("HALO3_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		} else {
			log.Printf("audio: ignoring HALO3_MASTER_VOLUME=%q: %v", volume, err)
		}
	}

	if sampleRate := os.Getenv("HALO3_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
