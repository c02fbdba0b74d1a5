package utils

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// monoMeasure 每个字符 10 像素
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "short text",
			maxWidth: 1000,
			want:     []string{"short text"},
		},
		{
			name:     "按单词换行",
			input:    "real-time move analysis with stockfish",
			maxWidth: 150,
			want:     []string{"real-time move", "analysis with", "stockfish"},
		},
		{
			name:     "超长单词强制断行",
			input:    "abcdefghijkl xy",
			maxWidth: 50,
			want:     []string{"abcde", "fghij", "kl xy"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
		{
			name:     "宽度无效",
			input:    "anything",
			maxWidth: 0,
			want:     []string{"anything"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, monoMeasure, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %v) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			for _, line := range got {
				if tt.maxWidth > 0 && monoMeasure(line) > tt.maxWidth && len(tt.want) > 1 {
					t.Errorf("line %q exceeds max width %v", line, tt.maxWidth)
				}
			}
		})
	}
}

func TestWrapTextNilMeasure(t *testing.T) {
	got := WrapText("a b c", nil, 10)
	if len(got) != 1 || got[0] != "a b c" {
		t.Errorf("WrapText with nil measure = %q", got)
	}
}
