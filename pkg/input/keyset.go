package input

// KeySet 当前处于按下状态的按键集合
//
// 每个按键记录按住它的来源，只有最后一个来源抬起后按键才算抬起。
// 键盘按住右键时，触屏上的右键按下又松开不会打断滚动。
type KeySet struct {
	down map[Key]map[Origin]bool
}

// NewKeySet 创建空集合
func NewKeySet() *KeySet {
	return &KeySet{down: make(map[Key]map[Origin]bool)}
}

// Apply 应用一个事件
//
// 返回值 pressed 仅在按键从无人按住变为按下时为 true（边沿），
// 同一来源的重复按下事件（系统按键重复）以及其他来源的追加按住都返回 false。
// 抬起只释放该事件来源的按住状态。
// 不在识别集合中的按键被忽略。
func (ks *KeySet) Apply(e Event) (pressed bool) {
	if !IsRecognized(e.Key) {
		return false
	}
	holders := ks.down[e.Key]
	if e.Down {
		if holders == nil {
			holders = make(map[Origin]bool, 1)
			ks.down[e.Key] = holders
		}
		pressed = len(holders) == 0
		holders[e.Origin] = true
		return pressed
	}
	delete(holders, e.Origin)
	if len(holders) == 0 {
		delete(ks.down, e.Key)
	}
	return false
}

// IsDown 报告按键是否按下
func (ks *KeySet) IsDown(k Key) bool {
	return len(ks.down[k]) > 0
}

// Active 报告动作是否有任一按键按下（电平触发）
func (ks *KeySet) Active(a Action) bool {
	for _, k := range actionKeys[a] {
		if ks.IsDown(k) {
			return true
		}
	}
	return false
}

// Len 按下的按键数量
func (ks *KeySet) Len() int {
	return len(ks.down)
}

// Clear 释放所有按键
func (ks *KeySet) Clear() {
	for k := range ks.down {
		delete(ks.down, k)
	}
}
