package preview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/core"
	"github.com/Xephorium/Halo3LoadingScreen/frame"
	"github.com/Xephorium/Halo3LoadingScreen/layout"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/parameter/visual"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func TestProjector(t *testing.T) {
	eye := vmath.Vec3F{X: 0, Y: 0, Z: 5}
	p := NewProjector(eye, vmath.Vec3F{}, 80, 24, 50)

	x, y, depth, ok := p.Project(vmath.Vec3F{})
	if !ok || x != 40 || y != 12 {
		t.Errorf("focus: got (%d, %d, %v), want (40, 12, true)", x, y, ok)
	}
	if depth < 4.999 || depth > 5.001 {
		t.Errorf("focus depth: got %v, want 5", depth)
	}

	x, y, _, ok = p.Project(vmath.Vec3F{X: 1})
	if !ok || x <= 40 || y != 12 {
		t.Errorf("right of focus: got (%d, %d, %v)", x, y, ok)
	}

	x, y, _, ok = p.Project(vmath.Vec3F{Y: 1})
	if !ok || x != 40 || y >= 12 {
		t.Errorf("above focus: got (%d, %d, %v)", x, y, ok)
	}

	if _, _, _, ok := p.Project(vmath.Vec3F{Z: 6}); ok {
		t.Error("Expected point behind the camera to be clipped")
	}
	if _, _, _, ok := p.Project(vmath.Vec3F{Z: 4.99}); ok {
		t.Error("Expected point inside the near plane to be clipped")
	}
}

func TestProjectorAspect(t *testing.T) {
	p := NewProjector(vmath.Vec3F{Z: 5}, vmath.Vec3F{}, 80, 24, 50)

	rx, _, _, _ := p.Project(vmath.Vec3F{X: 0.5})
	_, uy, _, _ := p.Project(vmath.Vec3F{Y: 0.5})

	// Horizontal offsets take two cells per vertical cell
	dx, dy := rx-40, 12-uy
	if dx < 2*dy-1 || dx > 2*dy+1 {
		t.Errorf("aspect: dx %d, dy %d, want dx ~ 2*dy", dx, dy)
	}
}

func TestProjectorDegenerate(t *testing.T) {
	// Looking straight down: no right vector from world up
	p := NewProjector(vmath.Vec3F{Y: 5}, vmath.Vec3F{}, 80, 24, 50)
	if _, _, _, ok := p.Project(vmath.Vec3F{}); !ok {
		t.Error("Expected focus to project when looking along world up")
	}

	// Eye on focus
	p = NewProjector(vmath.Vec3F{}, vmath.Vec3F{}, 80, 24, 50)
	if _, _, _, ok := p.Project(vmath.Vec3F{Z: -1}); !ok {
		t.Error("Expected fallback forward to see -Z")
	}
}

// particleInView places an ambient particle one unit in front of the camera
// at half loop
func particleInView(t *testing.T, cfg *config.Config) (particle.Particle, float64) {
	t.Helper()
	path, err := frame.NewCameraPath()
	if err != nil {
		t.Fatalf("NewCameraPath: %v", err)
	}
	delay := cfg.Timing.LengthLoop / 2
	eye, focus := path.At(frame.NewClock(cfg).LoopFactor(delay))
	dir := vmath.V3FNormalize(vmath.V3FSub(focus, eye))

	p := particle.New()
	p.Ambient = true
	p.PositionInitial = vmath.V3FAdd(eye, dir)
	return p, delay
}

func countDrawn(screen tcell.SimulationScreen) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h-hudRows; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r != ' ' {
				n++
			}
		}
	}
	return n
}

// particleOnly turns off the ring overlays so only particles reach the screen
func particleOnly() *config.Config {
	cfg := config.Default()
	cfg.Display.Lines = false
	cfg.Display.Blocks = false
	return cfg
}

func TestRenderDrawsParticle(t *testing.T) {
	screen := newScreen(t)
	cfg := particleOnly()
	p, delay := particleInView(t, cfg)

	v, err := newViewer(screen, &layout.Result{Particles: []particle.Particle{p}}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.render(delay)

	if got := countDrawn(screen); got != 1 {
		t.Errorf("drawn cells: got %d, want 1", got)
	}
	if v.drawnCells != 1 {
		t.Errorf("drawnCells: got %d, want 1", v.drawnCells)
	}
	if v.lastDelay != delay {
		t.Errorf("lastDelay: got %v, want %v", v.lastDelay, delay)
	}

	r, _, _, _ := screen.GetContent(0, 24)
	if r != ' ' {
		t.Errorf("HUD should start with a space, got %q", r)
	}
	r, _, _, _ = screen.GetContent(1, 24)
	if r != 'p' {
		t.Errorf("HUD state: got %q, want 'p'", r)
	}
}

func TestRenderSkipsHidden(t *testing.T) {
	screen := newScreen(t)
	cfg := particleOnly()
	p, delay := particleInView(t, cfg)

	damaged := p
	damaged.Damaged = true

	tests := []struct {
		name  string
		p     particle.Particle
		delay float64
	}{
		{"damaged", damaged, delay},
		{"start delay", p, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newViewer(screen, &layout.Result{Particles: []particle.Particle{tt.p}}, cfg)
			if err != nil {
				t.Fatalf("newViewer: %v", err)
			}
			v.render(tt.delay)
			if got := countDrawn(screen); got != 0 {
				t.Errorf("drawn cells: got %d, want 0", got)
			}
		})
	}
}

func TestRenderSpreadsNearParticle(t *testing.T) {
	screen := newScreen(t)
	cfg := particleOnly()
	p, delay := particleInView(t, cfg)

	// Pull the particle to 0.6 units: its sprite is wider than one cell
	path, err := frame.NewCameraPath()
	if err != nil {
		t.Fatal(err)
	}
	eye, _ := path.At(frame.NewClock(cfg).LoopFactor(delay))
	p.PositionInitial = vmath.V3FAdd(eye, vmath.V3FScale(vmath.V3FSub(p.PositionInitial, eye), 0.6))

	v, err := newViewer(screen, &layout.Result{Particles: []particle.Particle{p}}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.render(delay)

	if v.drawnCells != 3 {
		t.Errorf("drawnCells: got %d, want 3", v.drawnCells)
	}
	if got := countDrawn(screen); got != 3 {
		t.Errorf("drawn cells: got %d, want 3", got)
	}
}

func TestRenderCanvasFade(t *testing.T) {
	screen := newScreen(t)
	cfg := particleOnly()
	p, delay := particleInView(t, cfg)

	v, err := newViewer(screen, &layout.Result{Particles: []particle.Particle{p}}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.canvas = 0
	v.render(delay)
	if got := countDrawn(screen); got != 0 {
		t.Errorf("drawn cells before canvas fade: got %d, want 0", got)
	}

	v.canvas = 1
	v.render(delay)
	if got := countDrawn(screen); got != 1 {
		t.Errorf("drawn cells after canvas fade: got %d, want 1", got)
	}
}

func countRune(screen tcell.SimulationScreen, want rune) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h-hudRows; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == want {
				n++
			}
		}
	}
	return n
}

func TestRenderGuideLines(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	cfg.Display.Blocks = false
	delay := cfg.Timing.LengthLoop * 0.9 // lines nearly closed, before the scene fade

	v, err := newViewer(screen, &layout.Result{}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.render(delay)
	if countRune(screen, visual.LineChar) == 0 {
		t.Error("Expected guide line cells")
	}

	// Lines have not started sweeping during the lead in
	v.render(cfg.Timing.LengthStartDelay)
	if got := countRune(screen, visual.LineChar); got != 0 {
		t.Errorf("line cells during lead in: got %d, want 0", got)
	}

	cfg.Display.Lines = false
	v.render(delay)
	if got := countRune(screen, visual.LineChar); got != 0 {
		t.Errorf("line cells with lines off: got %d, want 0", got)
	}
}

func TestLineCellsOccluded(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	delay := cfg.Timing.LengthLoop * 0.9

	v, err := newViewer(screen, &layout.Result{}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	eye, focus := v.camera.At(v.clock.LoopFactor(delay))
	u := frame.NewUniforms(cfg, delay, eye)
	proj := NewProjector(eye, focus, v.buf.Width(), v.buf.Height(), parameter.CameraFOV)

	v.buf.Clear()
	open := v.lineCells(proj, &u)
	if len(open) == 0 {
		t.Fatal("Expected guide line cells")
	}

	// A particle right in front of the camera hides every line behind it
	for pt := range open {
		v.buf.Accumulate(pt.X, pt.Y, 1, parameter.CameraClipNear/5)
	}
	if hidden := v.lineCells(proj, &u); len(hidden) != 0 {
		t.Errorf("line cells behind particles: got %d, want 0", len(hidden))
	}
}

func TestBlockGlow(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	p, delay := particleInView(t, cfg)

	// A landed ring particle has faded out but its block remains
	p.Ambient = false
	p.PositionSwerve = p.PositionInitial
	p.PositionFinal = p.PositionInitial
	p.Wait = 0

	v, err := newViewer(screen, &layout.Result{Particles: []particle.Particle{p}}, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	eye, focus := v.camera.At(v.clock.LoopFactor(delay))
	u := frame.NewUniforms(cfg, delay, eye)
	proj := NewProjector(eye, focus, v.buf.Width(), v.buf.Height(), parameter.CameraFOV)

	glow := v.blockGlow(proj, &u)
	if len(glow) != 1 {
		t.Fatalf("glow cells: got %d, want 1", len(glow))
	}
	for pt, g := range glow {
		if g <= 0 {
			t.Errorf("glow at %v: got %v, want > 0", pt, g)
		}
	}

	v.particles[0].Damaged = true
	if glow := v.blockGlow(proj, &u); len(glow) != 0 {
		t.Errorf("damaged block glow: got %d cells, want 0", len(glow))
	}

	// Before the particle lands its block stays dark
	v.particles[0].Damaged = false
	early := frame.NewUniforms(cfg, 1000, eye)
	if glow := v.blockGlow(proj, &early); len(glow) != 0 {
		t.Errorf("block glow before appearance: got %d cells, want 0", len(glow))
	}
}

func TestRenderGeneratedLayout(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	cfg.Ring.Slices = 40
	cfg.Ring.SliceParticles = 62
	cfg.Ambient.Count = 2000

	result, err := layout.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	before := result.Particles[0]
	v, err := newViewer(screen, result, cfg)
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	v.render(cfg.Timing.LengthLoop / 2)

	if countDrawn(screen) == 0 {
		t.Error("Expected some particles on screen at half loop")
	}
	// The viewer works on its own copy
	if result.Particles[0] != before {
		t.Error("Expected render to leave the generated buffer untouched")
	}
}

func TestHandleEvent(t *testing.T) {
	screen := newScreen(t)
	v, err := newViewer(screen, &layout.Result{}, config.Default())
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}

	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	if !v.handleEvent(space) || !v.paused {
		t.Error("Expected space to pause")
	}
	if !v.handleEvent(space) || v.paused {
		t.Error("Expected second space to resume")
	}

	screen.SetSize(60, 20)
	if !v.handleEvent(tcell.NewEventResize(60, 20)) {
		t.Error("Expected resize to keep running")
	}
	if v.buf.Width() != 60 || v.buf.Height() != 19 {
		t.Errorf("buffer after resize: got (%d, %d), want (60, 19)", v.buf.Width(), v.buf.Height())
	}

	quits := []tcell.Event{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if v.handleEvent(ev) {
			t.Errorf("Expected %v to quit", ev)
		}
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errc := make(chan error, 1)
	go func() {
		errc <- Run(context.Background(), screen, &layout.Result{}, config.Default())
	}()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := Run(ctx, screen, &layout.Result{}, config.Default()); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestCellIntensity(t *testing.T) {
	tests := []struct {
		cell core.Cell
		want float64
	}{
		{core.Cell{}, 0},
		{core.Cell{Light: 0.4, Count: 1}, 0.4},
		{core.Cell{Light: 3, Count: 8}, 1},
	}
	for _, tt := range tests {
		if got := cellIntensity(tt.cell); got != tt.want {
			t.Errorf("cellIntensity(%+v): got %v, want %v", tt.cell, got, tt.want)
		}
	}
}
