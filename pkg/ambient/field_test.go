package ambient

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/folio/internal/particle"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/render"
)

const dt = 1.0 / 60.0

func newTestField(t *testing.T, w, h float64) *Field {
	t.Helper()
	cfg := config.DefaultTuning().Ambient
	return NewField(w, h, cfg, rand.New(rand.NewSource(42)))
}

func TestNewFieldPlacesPointsInside(t *testing.T) {
	f := newTestField(t, 640, 480)

	if got := len(f.Points()); got != 80 {
		t.Fatalf("point count = %d, want 80", got)
	}
	for i, p := range f.Points() {
		if p.X < 0 || p.X > 640 || p.Y < 0 || p.Y > 480 {
			t.Errorf("point %d at (%.1f, %.1f) outside viewport", i, p.X, p.Y)
		}
		if p.Radius < 0 || p.Radius > 2 {
			t.Errorf("point %d radius %.2f outside [0,2]", i, p.Radius)
		}
		if math.Abs(p.VX) > 15 || math.Abs(p.VY) > 15 {
			t.Errorf("point %d velocity (%.2f, %.2f) too fast", i, p.VX, p.VY)
		}
	}
}

func TestPointsStayInBoundsOverTime(t *testing.T) {
	f := newTestField(t, 200, 100)
	for frame := 0; frame < 6000; frame++ {
		f.Step(dt)
		for i, p := range f.Points() {
			if p.X < 0 || p.X > 200 || p.Y < 0 || p.Y > 100 {
				t.Fatalf("frame %d: point %d escaped to (%.3f, %.3f)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name             string
		pos, vel, limit  float64
		wantPos, wantVel float64
	}{
		{"inside unchanged", 50, 10, 100, 50, 10},
		{"below zero", -3, -10, 100, 0, 10},
		{"below zero already inward", -3, 10, 100, 0, 10},
		{"above limit", 104, 10, 100, 100, -10},
		{"above limit already inward", 104, -10, 100, 100, -10},
		{"on the bound", 100, 10, 100, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := reflect(tt.pos, tt.vel, tt.limit)
			if pos != tt.wantPos || vel != tt.wantVel {
				t.Errorf("reflect(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.pos, tt.vel, tt.limit, pos, vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestLinkOpacity(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"touching", 0, 0.15},
		{"half way", 60, 0.075},
		{"at threshold", 120, 0},
		{"beyond threshold", 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinkOpacity(tt.d, 120, 0.15)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LinkOpacity(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestLinkOpacityMonotonic(t *testing.T) {
	prev := LinkOpacity(120, 120, 0.15)
	for d := 119.0; d >= 0; d-- {
		cur := LinkOpacity(d, 120, 0.15)
		if cur <= prev {
			t.Fatalf("opacity did not increase from d=%v to d=%v (%v -> %v)", d+1, d, prev, cur)
		}
		prev = cur
	}
}

func TestLinksOnlyBelowThreshold(t *testing.T) {
	cfg := config.DefaultTuning().Ambient
	cfg.PointCount = 0
	f := NewField(400, 400, cfg, rand.New(rand.NewSource(1)))
	f.points = []Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},   // 距 0 号 100
		{X: 0, Y: 120},   // 距 0 号正好 120，不连线
		{X: 300, Y: 300},
		{X: 350, Y: 300}, // 与 3 号相距 50
	}

	links := f.Links()
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2: %+v", len(links), links)
	}
	if links[0].A != 0 || links[0].B != 1 || links[0].Distance != 100 {
		t.Errorf("first link = %+v, want 0-1 at distance 100", links[0])
	}
	if links[1].A != 3 || links[1].B != 4 || links[1].Distance != 50 {
		t.Errorf("second link = %+v, want 3-4 at distance 50", links[1])
	}
	for _, l := range links {
		if l.Distance >= 120 {
			t.Errorf("link %+v at or above threshold", l)
		}
		if l.A >= l.B {
			t.Errorf("link %+v is not ordered", l)
		}
	}
}

func TestFrameCommands(t *testing.T) {
	cfg := config.DefaultTuning().Ambient
	cfg.PointCount = 0
	f := NewField(400, 300, cfg, rand.New(rand.NewSource(1)))
	f.points = []Point{
		{X: 10, Y: 10, Radius: 1},
		{X: 20, Y: 10, Radius: 1},
		{X: 390, Y: 290, Radius: 1},
	}

	fr := f.Frame()
	if got := fr.Count(render.KindFillRect); got != 1 {
		t.Errorf("fade rects = %d, want 1", got)
	}
	if got := fr.Count(render.KindCircle); got != 3 {
		t.Errorf("discs = %d, want 3", got)
	}
	if got := fr.Count(render.KindLine); got != 1 {
		t.Errorf("lines = %d, want 1", got)
	}

	fade := fr.Commands[0]
	if fade.W != 400 || fade.H != 300 || fade.Color.A != 13 {
		t.Errorf("fade rect = %+v, want 400x300 with alpha 13", fade)
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	f := newTestField(t, 800, 600)
	before := append([]Point(nil), f.Points()...)

	f.Resize(100, 100)
	if w, h := f.Size(); w != 100 || h != 100 {
		t.Fatalf("Size() = %vx%v, want 100x100", w, h)
	}
	for i, p := range f.Points() {
		if p != before[i] {
			t.Fatalf("point %d changed on resize: %+v -> %+v", i, before[i], p)
		}
	}

	// 下一帧越界点被弹回
	f.Step(dt)
	for i, p := range f.Points() {
		if p.X > 100 || p.Y > 100 {
			t.Errorf("point %d still outside after step: (%.1f, %.1f)", i, p.X, p.Y)
		}
	}
}

func TestStepUsesPixelsPerSecond(t *testing.T) {
	cfg := config.DefaultTuning().Ambient
	cfg.PointCount = 0
	cfg.Speed = particle.Fixed(15)
	f := NewField(1000, 1000, cfg, rand.New(rand.NewSource(3)))
	f.points = []Point{{X: 500, Y: 500, VX: 15, VY: -15}}

	for i := 0; i < 60; i++ {
		f.Step(dt)
	}
	p := f.Points()[0]
	if math.Abs(p.X-515) > 1e-6 || math.Abs(p.Y-485) > 1e-6 {
		t.Errorf("after one second point at (%.4f, %.4f), want (515, 485)", p.X, p.Y)
	}
}
