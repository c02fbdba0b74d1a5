package game

import "github.com/gonewx/folio/pkg/input"

// Phase 游戏阶段
type Phase int

const (
	// PhaseRunning 挂载后的默认阶段，每帧推进模拟
	PhaseRunning Phase = iota
	// PhaseComplete 全部收集完毕并经过展示延迟后进入，本次挂载内不再离开
	PhaseComplete
)

// String 便于日志输出
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// GameState 一次游戏挂载的可变状态
//
// 每个引擎实例持有自己的 GameState，并以指针传给各个系统，
// 不存在全局单例，重新挂载即得到全新状态。
type GameState struct {
	ScrollOffset float64 // 世界到画布的水平平移，恒 >= 0
	Collected    int     // 已收集数量，恒等于 Collected=true 的收集物数量
	Total        int     // 收集物总数
	Keys         *input.KeySet
	Phase        Phase

	// CompletionScheduled 最后一个收集物被收集后置为 true，延时计时器只创建一次
	CompletionScheduled bool
}

// NewGameState 创建运行阶段的初始状态
func NewGameState(total int) *GameState {
	return &GameState{
		Total: total,
		Keys:  input.NewKeySet(),
		Phase: PhaseRunning,
	}
}

// AllCollected 报告是否已全部收集
func (gs *GameState) AllCollected() bool {
	return gs.Total > 0 && gs.Collected >= gs.Total
}

// ToScreenX 世界坐标转换为画布坐标
// 碰撞检测与绘制共用同一换算，保证二者看到的位置一致
func (gs *GameState) ToScreenX(worldX float64) float64 {
	return worldX - gs.ScrollOffset
}

// IsRunning 报告是否仍在运行阶段
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}
