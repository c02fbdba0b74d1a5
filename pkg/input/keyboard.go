package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys 物理按键到逻辑按键的映射
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:    KeyArrowUp,
	ebiten.KeyArrowDown:  KeyArrowDown,
	ebiten.KeyArrowLeft:  KeyArrowLeft,
	ebiten.KeyArrowRight: KeyArrowRight,
	ebiten.KeyW:          KeyW,
	ebiten.KeyA:          KeyA,
	ebiten.KeyS:          KeyS,
	ebiten.KeyD:          KeyD,
	ebiten.KeySpace:      KeySpace,
}

// Keyboard 基于 ebiten 的键盘输入来源
//
// 只上报识别集合内的按键，其他按键留给场景自行处理（例如 R 重开、Esc 关闭面板）。
type Keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	detached bool
}

// NewKeyboard 创建键盘输入来源
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll 返回本帧的按下/抬起事件
// 必须在 ebiten 的 Update 中调用
func (k *Keyboard) Poll() []Event {
	if k.detached {
		return nil
	}

	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])

	var events []Event
	for _, key := range k.pressed {
		if logical, ok := ebitenKeys[key]; ok {
			events = append(events, Press(logical).From(OriginKeyboard))
		}
	}
	for _, key := range k.released {
		if logical, ok := ebitenKeys[key]; ok {
			events = append(events, Release(logical).From(OriginKeyboard))
		}
	}
	return events
}

// Detach 停止上报事件
func (k *Keyboard) Detach() {
	k.detached = true
}

// Detached 报告是否已分离
func (k *Keyboard) Detached() bool {
	return k.detached
}
