// Package input 将键盘与触屏统一为同一组逻辑按键事件
//
// 引擎只消费 Event 和 KeySet，不关心事件来自哪种设备。
package input

// Key 识别的逻辑按键，取值与浏览器 KeyboardEvent.key 相同
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeySpace      Key = " "
)

// recognizedKeys 游戏视图会拦截的按键集合
var recognizedKeys = map[Key]bool{
	KeyArrowUp:    true,
	KeyArrowDown:  true,
	KeyArrowLeft:  true,
	KeyArrowRight: true,
	KeyW:          true,
	KeyA:          true,
	KeyS:          true,
	KeyD:          true,
	KeySpace:      true,
}

// ParseKey 将按键名转换为 Key，不在识别集合中的按键返回 false
func ParseKey(name string) (Key, bool) {
	k := Key(name)
	if !recognizedKeys[k] {
		return "", false
	}
	return k, true
}

// IsRecognized 报告按键是否在识别集合中
func IsRecognized(k Key) bool {
	return recognizedKeys[k]
}

// Action 逻辑动作
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
)

// String 便于日志输出
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	default:
		return "unknown"
	}
}

// actionKeys 每个动作对应的按键
var actionKeys = map[Action][]Key{
	ActionLeft:  {KeyArrowLeft, KeyA},
	ActionRight: {KeyArrowRight, KeyD},
	ActionJump:  {KeySpace, KeyArrowUp, KeyW},
}

// KeysFor 返回触发指定动作的按键
func KeysFor(a Action) []Key {
	return actionKeys[a]
}

// Triggers 报告按键是否触发指定动作
func Triggers(k Key, a Action) bool {
	for _, candidate := range actionKeys[a] {
		if candidate == k {
			return true
		}
	}
	return false
}

// Origin 产生事件的设备
//
// 同一个逻辑按键可以被键盘和触屏同时按住，KeySet 按来源分别记录。
type Origin int

const (
	// OriginScript 脚本回放与测试构造的事件
	OriginScript Origin = iota
	OriginKeyboard
	OriginTouch
)

// String 便于日志输出
func (o Origin) String() string {
	switch o {
	case OriginScript:
		return "script"
	case OriginKeyboard:
		return "keyboard"
	case OriginTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Event 一次按键按下或抬起
type Event struct {
	Key    Key
	Down   bool
	Origin Origin
}

// Press 构造按下事件
func Press(k Key) Event { return Event{Key: k, Down: true} }

// Release 构造抬起事件
func Release(k Key) Event { return Event{Key: k, Down: false} }

// From 返回标记为来自 o 的事件副本
func (e Event) From(o Origin) Event {
	e.Origin = o
	return e
}
