package systems

import (
	"log"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/input"
)

// InputSystem 将本帧的按键事件应用到按键集合，并处理跳跃
//
// 左右移动是电平触发，由 CameraSystem 读取按键集合。
// 跳跃只在角色站在地面上时生效：按下的当帧起跳，空中的按键被忽略；
// 按住不放则在落地后的下一帧再次起跳。
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	actor         ecs.EntityID
	jumpImpulse   float64
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, actor ecs.EntityID, w config.WorldTuning) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		actor:         actor,
		jumpImpulse:   w.JumpImpulse,
	}
}

// Update 应用事件
// 识别集合之外的按键被忽略
func (s *InputSystem) Update(events []input.Event) {
	for _, e := range events {
		pressed := s.gameState.Keys.Apply(e)
		if pressed && input.Triggers(e.Key, input.ActionJump) {
			s.tryJump()
		}
	}
	// 同一帧内按下又松开的点按已在上面处理，这里处理持续按住
	if s.gameState.Keys.Active(input.ActionJump) {
		s.tryJump()
	}
}

// tryJump 角色在地面上时起跳，返回是否起跳
func (s *InputSystem) tryJump() bool {
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, s.actor)
	if !ok || actor.Airborne {
		return false
	}
	actor.VelocityY = s.jumpImpulse
	actor.Airborne = true
	log.Printf("[InputSystem] 起跳 vy=%.0f", s.jumpImpulse)
	return true
}
