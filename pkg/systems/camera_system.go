package systems

import (
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/input"
)

// CameraSystem 根据按住的方向键移动镜头（滚动偏移）
//
// 角色在画布上的X坐标固定，"移动"体现为世界向相反方向滚动。
// 偏移量下限为 0，上限由 WorldTuning.MaxScroll 决定（0 表示不限）。
type CameraSystem struct {
	gameState *game.GameState
	world     config.WorldTuning
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(gs *game.GameState, w config.WorldTuning) *CameraSystem {
	return &CameraSystem{gameState: gs, world: w}
}

// Update 推进 dt 秒
func (cs *CameraSystem) Update(dt float64) {
	keys := cs.gameState.Keys
	offset := cs.gameState.ScrollOffset
	if keys.Active(input.ActionRight) {
		offset += cs.world.ScrollSpeed * dt
	}
	if keys.Active(input.ActionLeft) {
		offset -= cs.world.ScrollSpeed * dt
	}
	cs.gameState.ScrollOffset = cs.world.ClampScroll(offset)
}
