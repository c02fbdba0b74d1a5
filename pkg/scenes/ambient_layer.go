package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/folio/pkg/ambient"
	"github.com/gonewx/folio/pkg/render"
)

// AmbientLayer 页面背景的星座粒子层
//
// 背后是一张从不清空的图像：每帧只覆盖一层半透明黑色再画点和线，
// 形成拖影。该层属于页面而不是游戏，重新挂载游戏时保持不变。
type AmbientLayer struct {
	field   *ambient.Field
	painter *render.Painter
	image   *ebiten.Image
	opacity float64
}

// NewAmbientLayer 创建背景层
// opacity 为整层叠加到屏幕时的透明度
func NewAmbientLayer(field *ambient.Field, painter *render.Painter, opacity float64) *AmbientLayer {
	return &AmbientLayer{
		field:   field,
		painter: painter,
		opacity: opacity,
	}
}

// Field 返回底层粒子场
func (l *AmbientLayer) Field() *ambient.Field {
	return l.field
}

// Update 推进 dt 秒
func (l *AmbientLayer) Update(dt float64) {
	if l == nil || l.field == nil {
		return
	}
	l.field.Step(dt)
}

// Resize 同步视口尺寸
func (l *AmbientLayer) Resize(width, height int) {
	if l == nil || l.field == nil {
		return
	}
	w, h := l.field.Size()
	if int(w) == width && int(h) == height {
		return
	}
	l.field.Resize(float64(width), float64(height))
}

// Draw 将本帧画到持久图像上，再整体叠加到屏幕
// screen 为 nil 时不做任何事
func (l *AmbientLayer) Draw(screen *ebiten.Image) {
	if l == nil || l.field == nil || screen == nil {
		return
	}
	l.ensureImage()
	l.painter.Paint(l.image, l.field.Frame(), 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(l.opacity))
	screen.DrawImage(l.image, op)
}

// ensureImage 按视口尺寸准备持久图像，尺寸变化时保留旧内容
func (l *AmbientLayer) ensureImage() {
	w, h := l.field.Size()
	iw, ih := int(w), int(h)
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	if l.image != nil {
		b := l.image.Bounds()
		if b.Dx() == iw && b.Dy() == ih {
			return
		}
	}

	next := ebiten.NewImage(iw, ih)
	if l.image != nil {
		next.DrawImage(l.image, nil)
		l.image.Deallocate()
	}
	l.image = next
}
