// Package ambient 实现页面背景的星座粒子层
//
// 一组缓慢漂移的点在视口边界反弹，距离小于阈值的点对之间连线，
// 线条透明度随距离线性衰减。每帧先覆盖一层半透明黑色，形成拖影。
package ambient

import (
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/render"
)

// Point 背景层中的一个点
type Point struct {
	X, Y   float64
	VX, VY float64 // 像素/秒
	Radius float64
}

// Link 两点之间的连线
type Link struct {
	A, B     int // 点的下标，A < B
	Distance float64
	Opacity  float64
}

// Field 背景粒子层
type Field struct {
	cfg    config.AmbientTuning
	width  float64
	height float64
	points []Point

	links []Link
	frame *render.Frame
}

// NewField 在 w×h 的视口内随机生成点
//
// 参数:
//
//	w, h - 视口尺寸
//	cfg - 点数、速度范围、连线阈值等参数
//	rng - 随机源，nil 时使用以当前时间为种子的随机源
func NewField(w, h float64, cfg config.AmbientTuning, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &Field{
		cfg:    cfg,
		width:  w,
		height: h,
		points: make([]Point, cfg.PointCount),
		frame:  render.NewFrame(cfg.PointCount * 4),
	}
	for i := range f.points {
		f.points[i] = Point{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			VX:     cfg.Speed.Random(rng),
			VY:     cfg.Speed.Random(rng),
			Radius: cfg.Radius.Random(rng),
		}
	}
	return f
}

// Size 返回当前视口尺寸
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// Points 返回所有点（只读）
func (f *Field) Points() []Point {
	return f.points
}

// Resize 同步视口尺寸
// 点的位置不做重新映射，越界的点会在下一次 Step 时被弹回视口内
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
}

// Step 推进 dt 秒
func (f *Field) Step(dt float64) {
	for i := range f.points {
		p := &f.points[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.X, p.VX = reflect(p.X, p.VX, f.width)
		p.Y, p.VY = reflect(p.Y, p.VY, f.height)
	}
}

// reflect 越过 [0, limit] 时将坐标钳回边界并让速度指向内侧
func reflect(pos, vel, limit float64) (float64, float64) {
	if pos < 0 {
		return 0, math.Abs(vel)
	}
	if pos > limit {
		return limit, -math.Abs(vel)
	}
	return pos, vel
}

// Opacity 距离为 d 时的连线透明度，d >= 阈值时为 0
func (f *Field) Opacity(d float64) float64 {
	return LinkOpacity(d, f.cfg.LinkDistance, f.cfg.LinkAlpha)
}

// LinkOpacity 线性衰减：d=0 时为 maxAlpha，d >= threshold 时为 0
func LinkOpacity(d, threshold, maxAlpha float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return maxAlpha * (1 - d/threshold)
}

// Links 返回所有距离小于阈值的无序点对
// 返回的切片在下一次调用前有效
func (f *Field) Links() []Link {
	f.links = f.links[:0]
	threshold := f.cfg.LinkDistance
	for i := 0; i < len(f.points); i++ {
		a := f.points[i]
		for j := i + 1; j < len(f.points); j++ {
			b := f.points[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			// 先用平方距离排除，避免多数点对的开方
			if dx*dx+dy*dy >= threshold*threshold {
				continue
			}
			d := math.Hypot(dx, dy)
			f.links = append(f.links, Link{A: i, B: j, Distance: d, Opacity: f.Opacity(d)})
		}
	}
	return f.links
}

// Frame 生成当前状态的绘制命令：一个淡出矩形、每个点一个圆、每条连线一条线段
// 返回的 Frame 在下一次调用前有效
func (f *Field) Frame() *render.Frame {
	fr := f.frame
	fr.Reset()

	fr.FillRect(0, 0, f.width, f.height, render.WithAlpha(render.Black, f.cfg.FadeAlpha))

	pointColor := render.WithAlpha(render.Violet, f.cfg.PointAlpha)
	for _, p := range f.points {
		fr.Circle(p.X, p.Y, p.Radius, pointColor)
	}

	for _, l := range f.Links() {
		a, b := f.points[l.A], f.points[l.B]
		fr.Line(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, render.WithAlpha(render.Violet, l.Opacity))
	}
	return fr
}
