package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/folio/pkg/input"
)

func TestCameraSystemScroll(t *testing.T) {
	tests := []struct {
		name      string
		keys      []input.Key
		maxScroll float64
		start     float64
		frames    int
		want      float64
	}{
		{"right one second", []input.Key{input.KeyArrowRight}, 0, 0, 60, 300},
		{"d works like right", []input.Key{input.KeyD}, 0, 0, 30, 150},
		{"left floors at zero", []input.Key{input.KeyArrowLeft}, 0, 10, 60, 0},
		{"both cancel", []input.Key{input.KeyA, input.KeyD}, 0, 100, 60, 100},
		{"max scroll caps", []input.Key{input.KeyArrowRight}, 200, 0, 60, 200},
		{"unbounded when zero", []input.Key{input.KeyArrowRight}, 0, 10000, 60, 10300},
		{"no keys", nil, 0, 42, 60, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			world := w.tuning.World
			world.MaxScroll = tt.maxScroll
			cs := NewCameraSystem(w.gs, world)

			w.gs.ScrollOffset = tt.start
			for _, k := range tt.keys {
				w.gs.Keys.Apply(input.Press(k))
			}
			for i := 0; i < tt.frames; i++ {
				cs.Update(frameDT)
			}
			if math.Abs(w.gs.ScrollOffset-tt.want) > 1e-6 {
				t.Errorf("ScrollOffset = %v, want %v", w.gs.ScrollOffset, tt.want)
			}
		})
	}
}

// TestScrollNeverNegative 随机左右输入序列下滚动偏移恒不为负
func TestScrollNeverNegative(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCameraSystem(w.gs, w.tuning.World)
	rng := rand.New(rand.NewSource(5))
	keys := []input.Key{input.KeyArrowLeft, input.KeyArrowRight, input.KeyA, input.KeyD}

	for frame := 0; frame < 5000; frame++ {
		k := keys[rng.Intn(len(keys))]
		w.gs.Keys.Apply(input.Event{Key: k, Down: rng.Intn(2) == 0})
		cs.Update(frameDT)
		if w.gs.ScrollOffset < 0 {
			t.Fatalf("frame %d: ScrollOffset = %v", frame, w.gs.ScrollOffset)
		}
	}
}
