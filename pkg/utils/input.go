// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/folio/pkg/input"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ActivePointers 返回所有活动指针：每个触摸点，以及按下左键时的鼠标
// 用作 input.TouchControls 的指针来源，支持多指同时按住多个按键
func ActivePointers() []input.Pointer {
	touchIDs := ebiten.AppendTouchIDs(nil)
	pointers := make([]input.Pointer, 0, len(touchIDs)+1)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		pointers = append(pointers, input.Pointer{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pointers = append(pointers, input.Pointer{X: float64(x), Y: float64(y)})
	}
	return pointers
}

// Rect 轴对齐矩形，用于点击测试
type Rect struct {
	X, Y, W, H float64
}

// Contains 报告点 (x, y) 是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset 返回四边各收缩 d 后的矩形
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
