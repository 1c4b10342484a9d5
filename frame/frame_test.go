package frame

import (
	"math"
	"testing"
	"time"

	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearVec(a, b vmath.Vec3F) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestClockDelay(t *testing.T) {
	c := Clock{Speed: 1, StartDelay: 600, Loop: 80000, SceneFade: 1500}
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0},
		{1600 * time.Millisecond, 1000},
		{80600 * time.Millisecond, 0},
		{81600 * time.Millisecond, 400},
	}
	for _, tt := range tests {
		if got := c.Delay(tt.elapsed); !near(got, tt.want) {
			t.Errorf("Delay(%v): got %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	c.Speed = 2
	if got := c.Delay(1100 * time.Millisecond); !near(got, 1600) {
		t.Errorf("Delay at speed 2: got %v, want 1600", got)
	}
}

func TestSceneFades(t *testing.T) {
	c := Clock{Speed: 1, StartDelay: 600, Loop: 80000, SceneFade: 1500}
	tests := []struct {
		delay   float64
		in, out float64
	}{
		{0, 0, 1},
		{750, 0.5, 1},
		{5000, 1, 1},
		{78500, 1, 1},
		{79250, 1, 0.5},
		{80000, 1, 0},
	}
	for _, tt := range tests {
		in, out := c.SceneFades(tt.delay)
		if !near(in, tt.in) || !near(out, tt.out) {
			t.Errorf("SceneFades(%v): got (%v, %v), want (%v, %v)", tt.delay, in, out, tt.in, tt.out)
		}
	}
	if got := c.LoopFactor(120000); got != 1 {
		t.Errorf("LoopFactor past loop: got %v, want 1", got)
	}
}

func TestClockCycle(t *testing.T) {
	c := Clock{Speed: 1, StartDelay: 600, Loop: 80000}
	if got := c.Cycle(); got != 80600*time.Millisecond {
		t.Errorf("Cycle: got %v, want 80.6s", got)
	}

	c.Speed = 2
	if got := c.Cycle(); got != 40300*time.Millisecond {
		t.Errorf("Cycle at speed 2: got %v, want 40.3s", got)
	}

	c.Speed = 0
	if got := c.Cycle(); got != 0 {
		t.Errorf("Cycle at speed 0: got %v, want 0", got)
	}
}

func TestInterpolateLocation(t *testing.T) {
	v1 := vmath.Vec3F{X: 0}
	v2 := vmath.Vec3F{X: 5, Y: 1}
	v3 := vmath.Vec3F{X: 10}

	tests := []struct {
		t    float64
		want vmath.Vec3F
	}{
		{0, v1},
		{1, v3},
		{0.5, v2},
		{0.25, vmath.Vec3F{X: 2.5*0.5 + 5*0.5, Y: 0.5}},
	}
	for _, tt := range tests {
		if got := InterpolateLocation(v1, v2, v3, tt.t); !nearVec(got, tt.want) {
			t.Errorf("t=%v: got %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func ringParticle(wait float64) *particle.Particle {
	p := particle.New()
	p.PositionInitial = vmath.Vec3F{X: 1, Y: 0, Z: 0}
	p.PositionSwerve = vmath.Vec3F{X: 1.5, Y: 0.2, Z: 0}
	p.PositionFinal = vmath.Vec3F{X: 2, Y: 0, Z: 0}
	p.Wait = wait
	return &p
}

func TestPositionRing(t *testing.T) {
	cfg := config.Default()
	p := ringParticle(1000)

	u := NewUniforms(cfg, 500, vmath.Vec3F{})
	if got := Position(p, &u); got != p.PositionInitial {
		t.Errorf("before wait: got %+v, want initial", got)
	}

	// Halfway through the slice assembly after the assembly delay
	u = NewUniforms(cfg, 1000+2000+10, vmath.Vec3F{})
	if got := AssemblyFactor(p, &u); !near(got, 0.5) {
		t.Errorf("AssemblyFactor: got %v, want 0.5", got)
	}
	if got := Position(p, &u); !nearVec(got, p.PositionSwerve) {
		t.Errorf("mid flight: got %+v, want swerve %+v", got, p.PositionSwerve)
	}

	u = NewUniforms(cfg, 50000, vmath.Vec3F{})
	if got := Position(p, &u); !nearVec(got, p.PositionFinal) {
		t.Errorf("after flight: got %+v, want final", got)
	}

	// Inside the assembly delay the factor is negative
	u = NewUniforms(cfg, 1500, vmath.Vec3F{})
	if got := AssemblyFactor(p, &u); got >= 0 {
		t.Errorf("AssemblyFactor during assembly delay: got %v, want < 0", got)
	}
}

func TestPositionAmbient(t *testing.T) {
	cfg := config.Default()
	p := particle.New()
	p.Ambient = true
	p.PositionInitial = vmath.Vec3F{X: 1, Y: 1, Z: 1}
	p.PositionFinal = vmath.Vec3F{X: -2, Y: 0.4, Z: 0}

	u := NewUniforms(cfg, 40000, vmath.Vec3F{})
	want := vmath.Vec3F{X: 0, Y: 1.2, Z: 1}
	if got := Position(&p, &u); !nearVec(got, want) {
		t.Errorf("half loop: got %+v, want %+v", got, want)
	}

	u = NewUniforms(cfg, 90000, vmath.Vec3F{})
	want = vmath.Vec3F{X: -1, Y: 1.4, Z: 1}
	if got := Position(&p, &u); !nearVec(got, want) {
		t.Errorf("past loop: got %+v, want %+v", got, want)
	}
}

func TestAlphaScale(t *testing.T) {
	cfg := config.Default()
	camera := vmath.Vec3F{}

	u := NewUniforms(cfg, 1000, camera)
	tests := []struct {
		name string
		pos  vmath.Vec3F
		want float64
	}{
		{"inside near clip", vmath.Vec3F{X: 0.01}, 0},
		{"clip ramp", vmath.Vec3F{X: 0.275}, (1 - 0.275*1.65/14) * 0.5},
		{"full", vmath.Vec3F{X: 7}, 1 - 7*1.65/14},
	}
	for _, tt := range tests {
		if got := AlphaScale(tt.pos, &u); !near(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	u.AlphaFade = false
	if got := AlphaScale(vmath.Vec3F{X: 7}, &u); got != 1 {
		t.Errorf("without alpha fade: got %v, want 1", got)
	}
}

func TestAlphaBranches(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.AlphaScaling = false
	camera := vmath.Vec3F{X: -10}
	pos := vmath.Vec3F{}

	ring := ringParticle(1000)
	ambient := particle.New()
	ambient.Ambient = true

	tests := []struct {
		name  string
		p     *particle.Particle
		delay float64
		want  float64
	}{
		{"not started", ring, 0, 0},
		{"ambient not started", &ambient, 0, 0},
		{"ambient fade in", &ambient, 750, 0.5},
		{"ambient visible", &ambient, 40000, 1},
		{"ambient scene fade out", &ambient, 79250, 0.5},
		{"ring scene fade out", ring, 79250, 0},
		{"ring waiting", ring, 900, 0},
		{"ring fade in", ring, 1500, 0.5},
		{"ring visible", ring, 2500, 1},
		// complete = 1000 + 1500 + 600 + 20
		{"ring fade out", ring, 3120 + 250, 0.75},
		{"ring gone", ring, 10000, 0},
	}
	for _, tt := range tests {
		u := NewUniforms(cfg, tt.delay, camera)
		if got := Alpha(tt.p, pos, &u); !near(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.AlphaScaling = false
	particles := []particle.Particle{*ringParticle(0), *ringParticle(100000)}
	u := NewUniforms(cfg, 5000, vmath.Vec3F{X: -10})
	Step(particles, &u)

	if !nearVec(particles[0].Position, particles[0].PositionFinal) {
		t.Errorf("assembled particle: got %+v", particles[0].Position)
	}
	if particles[1].Position != particles[1].PositionInitial || particles[1].Alpha != 0 {
		t.Errorf("waiting particle: got %+v alpha %v", particles[1].Position, particles[1].Alpha)
	}
}

func TestFragmentAlpha(t *testing.T) {
	p := particle.New()
	p.Position.Y = 0.1
	if got := FragmentAlpha(&p, 1); !near(got, 0.42) {
		t.Errorf("ring: got %v, want 0.42", got)
	}

	p.Position.Y = 0
	if got := FragmentAlpha(&p, 1); !near(got, 0.42*0.66*1.1) {
		t.Errorf("ring at equator: got %v, want %v", got, 0.42*0.66*1.1)
	}

	p.Ambient = true
	if got := FragmentAlpha(&p, 1); !near(got, 1.3/3.5*0.95) {
		t.Errorf("ambient: got %v, want %v", got, 1.3/3.5*0.95)
	}

	p.Damaged = true
	if got := FragmentAlpha(&p, 1); got != 0 {
		t.Errorf("damaged: got %v, want 0", got)
	}
}

func TestPointSize(t *testing.T) {
	p := particle.New()
	p.Position = vmath.Vec3F{X: 2}
	if got := PointSize(&p, vmath.Vec3F{}, 2.2, 1); !near(got, 1.1*2.07) {
		t.Errorf("ring: got %v, want %v", got, 1.1*2.07)
	}
	p.Ambient = true
	if got := PointSize(&p, vmath.Vec3F{}, 2.2, 2); !near(got, 1.1*3.75*2) {
		t.Errorf("ambient: got %v, want %v", got, 1.1*3.75*2)
	}
}

func TestCameraPathEndpoints(t *testing.T) {
	cp, err := NewCameraPath()
	if err != nil {
		t.Fatal(err)
	}
	pos, focus := cp.At(0)
	if !nearVec(pos, vmath.Vec3F{X: -2.5, Y: -0.2, Z: 1.3}) {
		t.Errorf("start position: got %+v", pos)
	}
	if !nearVec(focus, vmath.Vec3F{X: -3}) {
		t.Errorf("start focus: got %+v", focus)
	}
	pos, focus = cp.At(1)
	if !nearVec(pos, vmath.Vec3F{X: 2.5, Y: 0.175, Z: 1.1}) {
		t.Errorf("end position: got %+v", pos)
	}
	if !nearVec(focus, vmath.Vec3F{X: 2.9, Y: -0.15, Z: -0.5}) {
		t.Errorf("end focus: got %+v", focus)
	}

	if _, err := NewCameraPathFrom(nil, nil); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestClockCanvas(t *testing.T) {
	c := Clock{CanvasFade: 2000}
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{time.Second, 0.5},
		{2 * time.Second, 1},
		{90 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := c.Canvas(tt.elapsed); !near(got, tt.want) {
			t.Errorf("Canvas(%v): got %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	c.CanvasFade = 0
	if got := c.Canvas(0); got != 1 {
		t.Errorf("Canvas without fade: got %v, want 1", got)
	}
}

func lineUniforms(delay float64) *Uniforms {
	return &Uniforms{
		DelayTime:          delay,
		LengthStartDelay:   600,
		LengthRingAssembly: 71000,
		SceneFadeOut:       1,
	}
}

func TestLineCompletion(t *testing.T) {
	tests := []struct {
		name  string
		delay float64
		want  float64
	}{
		{"loop start", 0, 0},
		{"lead in", 1800, 0},
		{"half", 1800 + 35500, 0.5},
		{"assembled", 1800 + 71000, 1},
		{"past assembly", 1800 + 142000, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineCompletion(lineUniforms(tt.delay)); !near(got, tt.want) {
				t.Errorf("LineCompletion(%v): got %v, want %v", tt.delay, got, tt.want)
			}
		})
	}
}

func TestLineProgress(t *testing.T) {
	lp, err := NewLineProgress()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		delay float64
		want  float64
	}{
		{0, 0},
		{1800 + 35500, 0.503125}, // Bernstein weights 1 5 10 10 5 1 over 32
		{1800 + 71000, 1},
	}
	for _, tt := range tests {
		if got := lp.At(lineUniforms(tt.delay)); !near(got, tt.want) {
			t.Errorf("At(%v): got %v, want %v", tt.delay, got, tt.want)
		}
	}
}

func TestLinePoint(t *testing.T) {
	l := Line{Height: 0.06, Radius: 3, Factor: 1}
	tests := []struct {
		name       string
		angle      float64
		completion float64
		want       vmath.Vec3F
	}{
		{"origin at any completion", 0, 0.7, vmath.Vec3F{X: -3, Y: 0.06}},
		{"nothing swept", 180, 0, vmath.Vec3F{X: -3, Y: 0.06}},
		{"quarter ahead", 180, 0.5, vmath.Vec3F{X: 0, Y: 0.06, Z: 3}},
		{"quarter behind", -180, 0.5, vmath.Vec3F{X: 0, Y: 0.06, Z: -3}},
		{"clamped at close", 180, 2, vmath.Vec3F{X: 3, Y: 0.06}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinePoint(l, tt.angle, tt.completion); !nearVec(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	// A leading line sweeps further for the same completion
	lead := l
	lead.Factor = 2
	if got := LinePoint(lead, 90, 0.5); !nearVec(got, vmath.Vec3F{X: 0, Y: 0.06, Z: 3}) {
		t.Errorf("leading line: got %+v", got)
	}
}

func TestLines(t *testing.T) {
	lines := Lines()
	if len(lines) != 6 {
		t.Fatalf("len: got %d, want 6", len(lines))
	}
	if lines[0] != (Line{Height: 0.0842, Radius: 2.9855, Factor: 1.012}) {
		t.Errorf("first line: got %+v", lines[0])
	}
	for i := 0; i < 3; i++ {
		if lines[i].Height != -lines[i+3].Height || lines[i].Radius != lines[i+3].Radius {
			t.Errorf("line %d is not mirrored below the ring plane: %+v %+v", i, lines[i], lines[i+3])
		}
	}

	u := lineUniforms(0)
	u.SceneFadeOut = 0.5
	if got := LineAlpha(0.13, u); !near(got, 0.065) {
		t.Errorf("LineAlpha: got %v, want 0.065", got)
	}
}

func blockUniforms(delay float64) *Uniforms {
	return &Uniforms{
		DelayTime:            delay,
		LengthLoop:           80000,
		LengthStartDelay:     600,
		LengthSliceAssembly:  20,
		LengthBlockFade:      70,
		LengthBlockHighlight: 1000,
		LengthSceneFade:      1500,
		SceneFadeOut:         1,
	}
}

func TestBlockFactors(t *testing.T) {
	const wait = 1000
	if got := BlockAppearance(wait, blockUniforms(0)); got != 3170 {
		t.Fatalf("BlockAppearance: got %v, want 3170", got)
	}

	tests := []struct {
		name          string
		delay         float64
		fade, highlit float64
	}{
		{"before", 3000, 0, 0},
		{"at appearance", 3170, 0, 0},
		{"half faded", 3205, 0.5, 35 / (1000 + 3205.0/80000*500)},
		{"faded in", 3240, 1, 70 / (1000 + 3240.0/80000*500)},
		{"highlight done", 6000, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fade, highlight := BlockFactors(wait, blockUniforms(tt.delay))
			if !near(fade, tt.fade) || !near(highlight, tt.highlit) {
				t.Errorf("got (%v, %v), want (%v, %v)", fade, highlight, tt.fade, tt.highlit)
			}
		})
	}
}

func TestBlockAlpha(t *testing.T) {
	const wait = 1000
	tests := []struct {
		name  string
		delay float64
		y     float64
		texel float64
		fade  float64
		want  float64
	}{
		{"hidden", 3170, 0.04, 1, 1, 0},
		{"edge block", 6000, 0.04, 1, 1, 0.055},
		{"equator block", 6000, 0, 0, 1, 0.05 * 0.726},
		{"scene faded", 6000, 0.04, 0, 0, 0},
		{"flash", 3240, 0.04, 1, 1, 0.055 + (1-70/(1000+3240.0/80000*500))/33.5*8.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := blockUniforms(tt.delay)
			u.SceneFadeOut = tt.fade
			if got := BlockAlpha(wait, tt.y, tt.texel, u); !near(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if got := BlockVerticalFactor(0.2); got != 1.1 {
		t.Errorf("BlockVerticalFactor cap: got %v, want 1.1", got)
	}
}
