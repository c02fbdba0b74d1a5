package game

import "testing"

func TestNewGameState(t *testing.T) {
	gs := NewGameState(3)
	if gs.Phase != PhaseRunning || !gs.IsRunning() {
		t.Errorf("new state phase = %v, want Running", gs.Phase)
	}
	if gs.ScrollOffset != 0 || gs.Collected != 0 || gs.Total != 3 {
		t.Errorf("unexpected initial state %+v", gs)
	}
	if gs.Keys == nil || gs.Keys.Len() != 0 {
		t.Error("new state should have an empty key set")
	}
}

func TestAllCollected(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		collected int
		want      bool
	}{
		{"none", 3, 0, false},
		{"some", 3, 2, false},
		{"all", 3, 3, true},
		{"empty list never completes", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(tt.total)
			gs.Collected = tt.collected
			if got := gs.AllCollected(); got != tt.want {
				t.Errorf("AllCollected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "Running" || PhaseComplete.String() != "Complete" {
		t.Errorf("phase names = %q, %q", PhaseRunning, PhaseComplete)
	}
	if Phase(9).String() != "Unknown" {
		t.Errorf("unknown phase = %q", Phase(9))
	}
}

func TestToScreenX(t *testing.T) {
	tests := []struct {
		scroll, world, want float64
	}{
		{0, 200, 200},
		{150, 200, 50},
		{300, 200, -100},
	}
	for _, tt := range tests {
		gs := NewGameState(1)
		gs.ScrollOffset = tt.scroll
		if got := gs.ToScreenX(tt.world); got != tt.want {
			t.Errorf("scroll %v: ToScreenX(%v) = %v, want %v", tt.scroll, tt.world, got, tt.want)
		}
	}
}
