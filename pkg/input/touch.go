package input

import (
	"github.com/gonewx/folio/pkg/render"
)

// Pointer 一个活动的指针（触摸点或按下的鼠标左键），屏幕坐标
type Pointer struct {
	X, Y float64
}

// PointerFunc 返回当前所有活动指针
type PointerFunc func() []Pointer

// TouchButton 屏幕上的虚拟按键
type TouchButton struct {
	Action Action
	Key    Key
	Label  string
	X, Y   float64 // 相对画布原点
	Size   float64
	held   bool
}

// Contains 报告画布坐标 (x, y) 是否落在按键内
func (b *TouchButton) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Size && y >= b.Y && y < b.Y+b.Size
}

// Held 报告按键当前是否被按住
func (b *TouchButton) Held() bool {
	return b.held
}

// TouchControls 触屏虚拟方向键
//
// 左右两个按键放在画布左下角，跳跃键放在右下角。
// 每帧根据活动指针计算按住状态，与上一帧比较后产生按下/抬起事件，
// 所以多指同时按住左键和跳跃键也能正常工作。
type TouchControls struct {
	Buttons  []*TouchButton
	pointers PointerFunc
	originX  float64
	originY  float64
	detached bool
}

// NewTouchControls 创建触屏控制
//
// 参数:
//
//	canvasW, canvasH - 画布尺寸，按键沿画布底边排列
//	size, gap, margin - 按键边长、间距、与画布边缘的距离
//	pointers - 指针来源，nil 时不产生任何事件
func NewTouchControls(canvasW, canvasH, size, gap, margin float64, pointers PointerFunc) *TouchControls {
	y := canvasH - margin - size
	return &TouchControls{
		Buttons: []*TouchButton{
			{Action: ActionLeft, Key: KeyArrowLeft, Label: "<", X: margin, Y: y, Size: size},
			{Action: ActionRight, Key: KeyArrowRight, Label: ">", X: margin + size + gap, Y: y, Size: size},
			{Action: ActionJump, Key: KeySpace, Label: "^", X: canvasW - margin - size, Y: y, Size: size},
		},
		pointers: pointers,
	}
}

// SetOrigin 设置画布在屏幕上的左上角，用于将指针坐标转换到画布坐标
func (tc *TouchControls) SetOrigin(x, y float64) {
	tc.originX, tc.originY = x, y
}

// Poll 比较按住状态的变化并产生事件
func (tc *TouchControls) Poll() []Event {
	if tc.detached || tc.pointers == nil {
		return nil
	}

	active := tc.pointers()
	var events []Event
	for _, b := range tc.Buttons {
		held := false
		for _, p := range active {
			if b.Contains(p.X-tc.originX, p.Y-tc.originY) {
				held = true
				break
			}
		}
		if held != b.held {
			b.held = held
			events = append(events, Event{Key: b.Key, Down: held, Origin: OriginTouch})
		}
	}
	return events
}

// Detach 停止产生事件并清除按住状态
func (tc *TouchControls) Detach() {
	tc.detached = true
	for _, b := range tc.Buttons {
		b.held = false
	}
}

// Draw 将按键绘制为渲染命令（画布坐标）
func (tc *TouchControls) Draw(f *render.Frame) {
	if tc.detached {
		return
	}
	for _, b := range tc.Buttons {
		fill := render.WithAlpha(render.Zinc800, 0.55)
		border := render.WithAlpha(render.Violet, 0.6)
		if b.held {
			fill = render.WithAlpha(render.Violet, 0.45)
			border = render.VioletGlow
		}
		f.FillRect(b.X, b.Y, b.Size, b.Size, fill)
		f.StrokeRect(b.X, b.Y, b.Size, b.Size, 2, border)
		f.Text(b.Label, b.X+b.Size/2, b.Y+b.Size/2, b.Size*0.45, render.AlignCenter, render.White)
	}
}
