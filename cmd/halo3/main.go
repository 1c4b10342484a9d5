package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Xephorium/Halo3LoadingScreen/audio"
	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/core"
	"github.com/Xephorium/Halo3LoadingScreen/frame"
	"github.com/Xephorium/Halo3LoadingScreen/layout"
	"github.com/Xephorium/Halo3LoadingScreen/preview"
	"github.com/Xephorium/Halo3LoadingScreen/texture"
)

var (
	configPath  = flag.String("config", "", "TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "Layout seed")
	presetFlag  = flag.String("preset", "", "Comma separated presets: "+strings.Join(config.PresetNames(), ", "))
	workersFlag = flag.Int("workers", 1, "Generation workers, >1 selects parallel mode")
	damageFlag  = flag.Bool("damage", false, "Mark damaged ring regions")
	paletteFlag = flag.String("palette", "", "Palette name")
	exportPath  = flag.String("export", "", "Write packed data textures and texel UVs to this file")
	meshPath    = flag.String("mesh", "", "Write the block mesh to this file")
	dumpConfig  = flag.String("write-config", "", "Write the effective config as TOML to this file")
	previewFlag = flag.Bool("preview", false, "Play the layout in the terminal")
	audioFlag   = flag.Bool("audio", false, "Play the drone during preview")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "halo3: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if *dumpConfig != "" {
		if err := writeConfig(*dumpConfig, cfg); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	result, err := layout.GenerateContext(ctx, cfg)
	if err != nil {
		return err
	}
	s := result.Stats
	log.Printf("generated %d particles in %v (ring %d, mirrored %d, ambient %d, damaged %d, texture %dx%d)",
		len(result.Particles), time.Since(start).Round(time.Millisecond),
		s.Ring, s.Mirrored, s.Ambient, s.Damaged, result.TextureSize, result.TextureSize)

	if *exportPath != "" {
		dt, err := texture.Pack(result.Particles, result.TextureSize)
		if err != nil {
			return err
		}
		if err := writeFile(*exportPath, dt); err != nil {
			return err
		}
		log.Printf("wrote data textures to %s", *exportPath)
	}

	if *meshPath != "" {
		mesh := texture.Blocks(result.Particles, cfg)
		if err := writeFile(*meshPath, mesh); err != nil {
			return err
		}
		log.Printf("wrote %d blocks to %s", mesh.BlockCount(), *meshPath)
	}

	if *previewFlag {
		return runPreview(ctx, result, cfg)
	}
	return nil
}

// buildConfig layers file, environment, presets then explicit flags
func buildConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	var errs []error
	if err := cfg.ApplyPresets(*presetFlag); err != nil {
		errs = append(errs, err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Layout.Seed = *seedFlag
		case "workers":
			cfg.Layout.Workers = *workersFlag
		case "damage":
			cfg.Layout.Damage = *damageFlag
		case "palette":
			cfg.Display.Palette = *paletteFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func writeFile(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeConfig(path string, cfg *config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cfg.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runPreview(ctx context.Context, result *layout.Result, cfg *config.Config) error {
	audioCfg := audio.LoadAudioConfig()
	if *audioFlag {
		audioCfg.Enabled = true
	}
	player := audio.NewPlayer(audioCfg)

	clock := frame.NewClock(cfg)
	startDelay := time.Duration(cfg.Timing.LengthStartDelay / cfg.Timing.Speed * float64(time.Millisecond))
	if err := player.Start(startDelay, clock.Cycle()-startDelay); err != nil {
		// Non-fatal, preview can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	// Log output would tear the screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	return preview.Run(ctx, screen, result, cfg)
}
