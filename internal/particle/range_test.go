package particle

import (
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Range
		wantErr bool
	}{
		{"Integer", "30", Range{30, 30}, false},
		{"Float", "0.5", Range{0.5, 0.5}, false},
		{"Negative", "-2.5", Range{-2.5, -2.5}, false},
		{"Range", "[0.5 2.5]", Range{0.5, 2.5}, false},
		{"RangeWithSpaces", "  [ -1   1 ] ", Range{-1, 1}, false},
		{"Empty", "", Range{}, true},
		{"Unterminated", "[1 2", Range{}, true},
		{"OneValue", "[1]", Range{}, true},
		{"Garbage", "abc", Range{}, true},
		{"BadMax", "[1 x]", Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: -3, Max: 7}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if v < r.Min || v > r.Max {
			t.Fatalf("Random() = %v, outside %v", v, r)
		}
	}

	if got := Fixed(4).Random(rng); got != 4 {
		t.Errorf("Fixed(4).Random() = %v, want 4", got)
	}
	// 倒置区间退化为 Min
	if got := (Range{Min: 5, Max: 1}).Random(nil); got != 5 {
		t.Errorf("inverted range Random() = %v, want 5", got)
	}
}

func TestRangeYAML(t *testing.T) {
	var doc struct {
		Speed Range `yaml:"speed"`
		Size  Range `yaml:"size"`
	}
	src := "speed: \"[0.5 2.5]\"\nsize: 2\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Speed != (Range{0.5, 2.5}) {
		t.Errorf("speed = %+v", doc.Speed)
	}
	if doc.Size != Fixed(2) {
		t.Errorf("size = %+v", doc.Size)
	}

	if err := yaml.Unmarshal([]byte("speed: [1, 2]\n"), &doc); err == nil {
		t.Error("a YAML sequence should be rejected")
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back struct {
		Speed Range `yaml:"speed"`
		Size  Range `yaml:"size"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal(Marshal): %v", err)
	}
	if back.Speed != doc.Speed || back.Size != doc.Size {
		t.Errorf("round trip = %+v, want %+v", back, doc)
	}
}
