// Package preview plays a generated layout in the terminal: every tick it
// runs the frame update over the particles, projects them from the camera
// path into a cell buffer and draws the buffer with the palette.
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/core"
	"github.com/Xephorium/Halo3LoadingScreen/frame"
	"github.com/Xephorium/Halo3LoadingScreen/layout"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/parameter/visual"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/texture"
)

const (
	frameInterval = 33 * time.Millisecond // ~30 FPS
	hudRows       = 1

	// Sprite pixels covered by one terminal cell width; wider sprites bleed
	// into neighbouring cells
	cellPixels    = 12.0
	maxSpread     = 3
	spreadFalloff = 0.5

	// blockTexel stands in for the highlight texture averaged over a cell
	blockTexel = 0.5
)

type viewer struct {
	screen tcell.Screen
	cfg    *config.Config
	clock  frame.Clock
	camera *frame.CameraPath

	particles []particle.Particle
	buf       *core.Buffer

	lines        []frame.Line
	lineAngles   []float32
	lineProgress *frame.LineProgress

	bg       core.RGB
	ring     core.RGB
	ambient  core.RGB
	line     core.RGB
	block    core.RGB
	hudStyle tcell.Style

	canvas float64 // startup fade in, 1 once complete

	start      time.Time
	pausedAt   time.Time
	paused     bool
	lastDelay  float64
	drawnCells int
}

func newViewer(screen tcell.Screen, result *layout.Result, cfg *config.Config) (*viewer, error) {
	camera, err := frame.NewCameraPath()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	progress, err := frame.NewLineProgress()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	pal := cfg.Palette()
	v := &viewer{
		screen:       screen,
		cfg:          cfg,
		clock:        frame.NewClock(cfg),
		camera:       camera,
		particles:    make([]particle.Particle, len(result.Particles)),
		lines:        frame.Lines(),
		lineAngles:   texture.LineVertices(parameter.LineResolution),
		lineProgress: progress,
		bg:           core.FromPalette(pal.Background),
		ring:         core.FromPalette(pal.Particle),
		ambient:      core.FromPalette(pal.Particle).Scale(0.8),
		line:         core.FromPalette(pal.Line),
		block:        core.FromPalette(pal.Block),
		canvas:       1,
	}
	copy(v.particles, result.Particles)

	v.hudStyle = tcell.StyleDefault.Foreground(v.color(v.line)).Background(v.color(v.bg))

	w, h := screen.Size()
	v.buf = core.NewBuffer(w, max(h-hudRows, 0))
	return v, nil
}

// Run plays result on screen until the user quits or ctx is canceled
// The caller owns screen initialization and Fini
func Run(ctx context.Context, screen tcell.Screen, result *layout.Result, cfg *config.Config) error {
	v, err := newViewer(screen, result, cfg)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	v.start = time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			if v.paused {
				continue
			}
			elapsed := now.Sub(v.start)
			v.canvas = v.clock.Canvas(elapsed)
			v.render(v.clock.Delay(elapsed))
		}
	}
}

// handleEvent returns false when the user asks to quit
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				v.togglePause()
			}
		}

	case *tcell.EventResize:
		w, h := v.screen.Size()
		v.buf.Resize(w, max(h-hudRows, 0))
		v.screen.Sync()
	}
	return true
}

func (v *viewer) togglePause() {
	now := time.Now()
	if v.paused {
		v.start = v.start.Add(now.Sub(v.pausedAt))
		v.paused = false
		return
	}
	v.pausedAt = now
	v.paused = true
	v.drawHUD()
	v.screen.Show()
}

// render draws one frame for the loop delay
func (v *viewer) render(delay float64) {
	v.lastDelay = delay

	eye, focus := v.camera.At(v.clock.LoopFactor(delay))
	u := frame.NewUniforms(v.cfg, delay, eye)
	frame.Step(v.particles, &u)

	proj := NewProjector(eye, focus, v.buf.Width(), v.buf.Height(), parameter.CameraFOV)

	v.buf.Clear()
	ambient := make(map[core.Point]bool)
	for i := range v.particles {
		p := &v.particles[i]
		a := frame.FragmentAlpha(p, p.Alpha)
		if a <= 0 {
			continue
		}
		x, y, depth, ok := proj.Project(p.Position)
		if !ok {
			continue
		}
		size := frame.PointSize(p, eye, v.cfg.Display.ParticleSize, v.cfg.Display.ResolutionScale)
		reach := min(int(size/cellPixels), maxSpread)
		v.splat(x, y, a, depth, reach, p.Ambient, ambient)
	}

	var glow map[core.Point]float64
	if v.cfg.Display.Blocks {
		glow = v.blockGlow(proj, &u)
	}
	var lines map[core.Point]float64
	if v.cfg.Display.Lines {
		lines = v.lineCells(proj, &u)
	}

	v.screen.Fill(' ', tcell.StyleDefault.Background(v.color(v.bg)))

	for pt, g := range glow {
		v.screen.SetContent(pt.X, pt.Y, ' ', nil, tcell.StyleDefault.Background(v.color(v.back(g))))
	}

	for pt, a := range lines {
		fg := v.back(glow[pt]).Blend(v.line, a*v.canvas)
		style := tcell.StyleDefault.Foreground(v.color(fg)).Background(v.color(v.back(glow[pt])))
		v.screen.SetContent(pt.X, pt.Y, visual.LineChar, nil, style)
	}

	dirty := v.buf.DirtyRegions()
	for _, pt := range dirty {
		cell, _ := v.buf.GetCell(pt.X, pt.Y)
		intensity := cellIntensity(cell) * v.canvas
		if intensity <= 0 {
			continue
		}
		fg := v.ring
		if ambient[pt] {
			fg = v.ambient
		}
		bg := v.back(glow[pt])
		fg = bg.Blend(fg, 0.35+0.65*intensity)
		style := tcell.StyleDefault.Foreground(v.color(fg)).Background(v.color(bg))
		v.screen.SetContent(pt.X, pt.Y, visual.ParticleChar(intensity), nil, style)
	}
	v.drawnCells = len(dirty)
	v.buf.ClearDirty()

	v.drawHUD()
	v.screen.Show()
}

// splat lands a particle in its cell and, for sprites wider than a cell,
// bleeds a falloff into reach columns either side and half as many rows
func (v *viewer) splat(x, y int, a, depth float64, reach int, isAmbient bool, ambient map[core.Point]bool) {
	for dy := -reach / 2; dy <= reach/2; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			w := a
			if dx != 0 || dy != 0 {
				w = a * spreadFalloff / float64(max(dx, -dx)+2*max(dy, -dy))
			}
			if v.buf.Accumulate(x+dx, y+dy, w, depth) && isAmbient {
				ambient[core.Point{X: x + dx, Y: y + dy}] = true
			}
		}
	}
}

// blockGlow sums block alpha per cell at every ring particle's resting place
func (v *viewer) blockGlow(proj *Projector, u *frame.Uniforms) map[core.Point]float64 {
	glow := make(map[core.Point]float64)
	for i := range v.particles {
		p := &v.particles[i]
		if p.Ambient || p.Damaged {
			continue
		}
		a := frame.BlockAlpha(p.Wait, p.PositionFinal.Y, blockTexel, u)
		if a <= 0 {
			continue
		}
		x, y, _, ok := proj.Project(p.PositionFinal)
		if !ok {
			continue
		}
		if _, in := v.buf.GetCell(x, y); in {
			glow[core.Point{X: x, Y: y}] += a
		}
	}
	return glow
}

// lineCells returns the guide line alpha per cell, skipping cells where a
// nearer particle hides the line
func (v *viewer) lineCells(proj *Projector, u *frame.Uniforms) map[core.Point]float64 {
	alpha := frame.LineAlpha(v.cfg.Display.LineAlpha, u)
	completion := v.lineProgress.At(u)
	if alpha <= 0 || completion <= 0 {
		return nil
	}

	cells := make(map[core.Point]float64)
	for _, l := range v.lines {
		for _, angle := range v.lineAngles {
			x, y, depth, ok := proj.Project(frame.LinePoint(l, float64(angle), completion))
			if !ok {
				continue
			}
			if _, in := v.buf.GetCell(x, y); !in || v.buf.Occludes(x, y, depth) {
				continue
			}
			pt := core.Point{X: x, Y: y}
			cells[pt] = max(cells[pt], alpha)
		}
	}
	return cells
}

// back is the cell background under block glow g
func (v *viewer) back(g float64) core.RGB {
	return v.bg.Blend(v.block, min(g, 1)*v.canvas)
}

// cellIntensity maps summed cell light to [0, 1]
func cellIntensity(c core.Cell) float64 {
	if c.Count == 0 {
		return 0
	}
	return min(c.Light, 1)
}

func (v *viewer) drawHUD() {
	w, h := v.screen.Size()
	if h < hudRows {
		return
	}
	y := h - 1

	state := "playing"
	if v.paused {
		state = "paused"
	}
	text := fmt.Sprintf(" %s  delay %6.0fms  loop %3.0f%%  cells %d  [space] pause  [q] quit",
		state, v.lastDelay, v.clock.LoopFactor(v.lastDelay)*100, v.drawnCells)

	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		v.screen.SetContent(x, y, r, nil, v.hudStyle)
	}
}

func (v *viewer) color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
