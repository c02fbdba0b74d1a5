package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// glowLayers 模拟 shadowBlur 时叠加的半透明层数
const glowLayers = 4

type faceKey struct {
	font Font
	size float64
}

// Painter 在 ebiten 图像上执行 Frame 中的绘制命令
type Painter struct {
	sources map[Font]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace // 按字体和字号缓存
}

// NewPainter 创建 Painter 并加载 Go 字体族（等宽、正文、粗体）
func NewPainter() (*Painter, error) {
	fonts := []struct {
		font Font
		name string
		ttf  []byte
	}{
		{FontMono, "gomono", gomono.TTF},
		{FontSans, "goregular", goregular.TTF},
		{FontBold, "gobold", gobold.TTF},
	}

	p := &Painter{
		sources: make(map[Font]*text.GoTextFaceSource, len(fonts)),
		faces:   make(map[faceKey]*text.GoTextFace),
	}
	for _, f := range fonts {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(f.ttf))
		if err != nil {
			return nil, fmt.Errorf("无法创建字体源 %s: %w", f.name, err)
		}
		p.sources[f.font] = source
	}
	return p, nil
}

// Face 返回指定字号的等宽字体
func (p *Painter) Face(size float64) *text.GoTextFace {
	return p.FaceIn(FontMono, size)
}

// FaceIn 返回指定字体和字号的字体，未知字体回退到等宽
func (p *Painter) FaceIn(font Font, size float64) *text.GoTextFace {
	key := faceKey{font: font, size: size}
	if face, ok := p.faces[key]; ok {
		return face
	}
	source, ok := p.sources[font]
	if !ok {
		source = p.sources[FontMono]
	}
	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	p.faces[key] = face
	return face
}

// MeasureText 测量单行等宽文字的宽高
func (p *Painter) MeasureText(s string, size float64) (w, h float64) {
	return p.MeasureTextIn(FontMono, s, size)
}

// MeasureTextIn 测量单行文字的宽高
func (p *Painter) MeasureTextIn(font Font, s string, size float64) (w, h float64) {
	return text.Measure(s, p.FaceIn(font, size), size*1.2)
}

// Paint 按顺序执行所有命令，(ox, oy) 为整体平移
// dst 或 f 为 nil 时什么也不做
func (p *Painter) Paint(dst *ebiten.Image, f *Frame, ox, oy float64) {
	if dst == nil || f == nil {
		return
	}
	for i := range f.Commands {
		p.paintCommand(dst, &f.Commands[i], ox, oy)
	}
}

func (p *Painter) paintCommand(dst *ebiten.Image, c *Command, ox, oy float64) {
	x := float32(c.X + ox)
	y := float32(c.Y + oy)

	switch c.Kind {
	case KindFillRect:
		if c.Glow > 0 {
			p.paintGlow(dst, c, ox, oy)
		}
		vector.DrawFilledRect(dst, x, y, float32(c.W), float32(c.H), c.Color, false)

	case KindStrokeRect:
		if c.Glow > 0 {
			p.paintGlow(dst, c, ox, oy)
		}
		vector.StrokeRect(dst, x, y, float32(c.W), float32(c.H), float32(c.StrokeWidth), c.Color, true)

	case KindCircle:
		if c.R <= 0 {
			return
		}
		vector.DrawFilledCircle(dst, x, y, float32(c.R), c.Color, true)

	case KindLine:
		vector.StrokeLine(dst, x, y, float32(c.X2+ox), float32(c.Y2+oy), float32(c.StrokeWidth), c.Color, true)

	case KindText:
		op := &text.DrawOptions{}
		op.GeoM.Translate(c.X+ox, c.Y+oy)
		op.ColorScale.ScaleWithColor(c.Color)
		op.LineSpacing = c.Size * 1.2
		if c.Align == AlignCenter {
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
		}
		text.Draw(dst, c.Text, p.FaceIn(c.Font, c.Size), op)
	}
}

// paintGlow 用逐层外扩的半透明矩形近似 canvas 的 shadowBlur
func (p *Painter) paintGlow(dst *ebiten.Image, c *Command, ox, oy float64) {
	glow := c.GlowColor
	if glow.A == 0 {
		glow = c.Color
	}
	for i := glowLayers; i >= 1; i-- {
		spread := c.Glow * float64(i) / glowLayers
		alpha := 0.35 * (1 - float64(i-1)/glowLayers) / glowLayers
		layer := color.NRGBA{R: glow.R, G: glow.G, B: glow.B, A: uint8(float64(glow.A) * alpha)}
		vector.DrawFilledRect(dst,
			float32(c.X+ox-spread), float32(c.Y+oy-spread),
			float32(c.W+2*spread), float32(c.H+2*spread),
			layer, false)
	}
}
