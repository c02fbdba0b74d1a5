package render

import "testing"

func TestFrameBuilders(t *testing.T) {
	f := NewFrame(8)
	f.FillRect(0, 0, 10, 10, Black)
	f.StrokeRect(0, 0, 10, 10, 2, Violet)
	f.Circle(5, 5, 2, White)
	f.Line(0, 0, 10, 10, 0.5, Violet)
	f.Text("COLLECTED: 0/3", 20, 12, 20, AlignStart, White)

	if f.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", f.Len())
	}
	for _, kind := range []Kind{KindFillRect, KindStrokeRect, KindCircle, KindLine, KindText} {
		if got := f.Count(kind); got != 1 {
			t.Errorf("Count(%v) = %d, want 1", kind, got)
		}
	}

	line := f.Commands[3]
	if line.X2 != 10 || line.Y2 != 10 || line.StrokeWidth != 0.5 {
		t.Errorf("line command = %+v", line)
	}

	if f.Commands[4].Font != FontMono {
		t.Errorf("Text() font = %v, want FontMono", f.Commands[4].Font)
	}
	f.TextIn(FontBold, "UNLOCKED!", 0, 0, 14, AlignCenter, Violet)
	if c := f.Commands[5]; c.Font != FontBold || c.Align != AlignCenter || c.Text != "UNLOCKED!" {
		t.Errorf("TextIn() command = %+v", c)
	}

	f.Reset()
	if f.Len() != 0 {
		t.Errorf("Len() after Reset = %d", f.Len())
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.05, 13},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := RGBA(1, 2, 3, tt.alpha).A; got != tt.want {
			t.Errorf("RGBA(alpha=%v).A = %d, want %d", tt.alpha, got, tt.want)
		}
	}
	if c := WithAlpha(Violet, 0.3); c.R != Violet.R || c.A != 77 {
		t.Errorf("WithAlpha(Violet, 0.3) = %+v", c)
	}
}

func TestPaintNilTargetIsNoop(t *testing.T) {
	p := &Painter{}
	f := NewFrame(1)
	f.FillRect(0, 0, 1, 1, Black)
	// 缺少绘制表面时静默跳过
	p.Paint(nil, f, 0, 0)
	p.Paint(nil, nil, 0, 0)
}
