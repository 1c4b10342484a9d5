package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML file over the defaults
// Empty path returns the defaults; unknown keys are logged and ignored
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config: %s: ignoring unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Write encodes the config as TOML
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// ApplyEnv overrides layout settings from environment variables
// Malformed values are logged and skipped
func (c *Config) ApplyEnv() {
	if seed := os.Getenv("HALO3_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Layout.Seed = val
		} else {
			log.Printf("config: HALO3_SEED=%q: %v", seed, err)
		}
	}

	if workers := os.Getenv("HALO3_WORKERS"); workers != "" {
		if val, err := strconv.Atoi(workers); err == nil && val >= 0 {
			c.Layout.Workers = val
		} else {
			log.Printf("config: HALO3_WORKERS=%q: not a worker count", workers)
		}
	}

	if damage := os.Getenv("HALO3_DAMAGE"); damage != "" {
		if val, err := strconv.ParseBool(damage); err == nil {
			c.Layout.Damage = val
		}
	}

	if palette := os.Getenv("HALO3_PALETTE"); palette != "" {
		c.Display.Palette = palette
	}
}
