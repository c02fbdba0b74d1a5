// Package render 定义与平台无关的绘制命令
//
// 模拟层（ambient、platformer）每帧只产出 Frame，
// 由 Painter 在 ebiten 图像上执行，模拟逻辑因此可以脱离 GPU 测试。
package render

import "image/color"

// Kind 绘制命令类型
type Kind int

const (
	// KindFillRect 填充矩形（X, Y, W, H）
	KindFillRect Kind = iota
	// KindStrokeRect 矩形描边（X, Y, W, H, StrokeWidth）
	KindStrokeRect
	// KindCircle 实心圆（X, Y 为圆心，R 为半径）
	KindCircle
	// KindLine 线段（X, Y → X2, Y2, StrokeWidth）
	KindLine
	// KindText 文字（X, Y 为锚点，Size 为字号，Align 决定锚点含义）
	KindText
)

// String 便于日志与测试输出
func (k Kind) String() string {
	switch k {
	case KindFillRect:
		return "FillRect"
	case KindStrokeRect:
		return "StrokeRect"
	case KindCircle:
		return "Circle"
	case KindLine:
		return "Line"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Font 字体
type Font int

const (
	// FontMono 等宽字体（画布 HUD 与收集物图标），零值
	FontMono Font = iota
	// FontSans 正文
	FontSans
	// FontBold 标题
	FontBold
)

// Align 文字对齐方式
type Align int

const (
	// AlignStart 左上角对齐
	AlignStart Align = iota
	// AlignCenter 以 (X, Y) 为中心
	AlignCenter
)

// Command 单条绘制命令
type Command struct {
	Kind        Kind
	X, Y        float64
	W, H        float64
	X2, Y2      float64
	R           float64
	StrokeWidth float64
	Color       color.NRGBA
	// Glow 发光半径（对应 canvas 的 shadowBlur），0 表示无发光
	Glow      float64
	GlowColor color.NRGBA
	Text      string
	Size      float64
	Align     Align
	Font      Font
}

// Frame 一帧的绘制命令序列，按顺序执行
type Frame struct {
	Commands []Command
}

// NewFrame 创建预分配容量的 Frame
func NewFrame(capacity int) *Frame {
	return &Frame{Commands: make([]Command, 0, capacity)}
}

// Reset 清空命令但保留底层数组
func (f *Frame) Reset() {
	f.Commands = f.Commands[:0]
}

// Len 命令数量
func (f *Frame) Len() int {
	return len(f.Commands)
}

// Count 统计指定类型的命令数量
func (f *Frame) Count(kind Kind) int {
	n := 0
	for _, c := range f.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Add 追加任意命令
func (f *Frame) Add(c Command) {
	f.Commands = append(f.Commands, c)
}

// FillRect 追加填充矩形
func (f *Frame) FillRect(x, y, w, h float64, c color.NRGBA) {
	f.Add(Command{Kind: KindFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// StrokeRect 追加矩形描边
func (f *Frame) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	f.Add(Command{Kind: KindStrokeRect, X: x, Y: y, W: w, H: h, StrokeWidth: width, Color: c})
}

// Circle 追加实心圆
func (f *Frame) Circle(cx, cy, r float64, c color.NRGBA) {
	f.Add(Command{Kind: KindCircle, X: cx, Y: cy, R: r, Color: c})
}

// Line 追加线段
func (f *Frame) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	f.Add(Command{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, StrokeWidth: width, Color: c})
}

// Text 追加等宽文字
func (f *Frame) Text(s string, x, y, size float64, align Align, c color.NRGBA) {
	f.TextIn(FontMono, s, x, y, size, align, c)
}

// TextIn 追加指定字体的文字
func (f *Frame) TextIn(font Font, s string, x, y, size float64, align Align, c color.NRGBA) {
	f.Add(Command{Kind: KindText, Text: s, X: x, Y: y, Size: size, Align: align, Color: c, Font: font})
}

// RGBA 以 0-1 的透明度构造颜色（对应 CSS 的 rgba()）
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
