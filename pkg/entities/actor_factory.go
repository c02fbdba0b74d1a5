package entities

import (
	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// NewActor 创建玩家角色实体，站在地面上
//
// 参数:
//   - em: 实体管理器
//   - w: 世界参数，提供角色的屏幕X坐标、站立高度和尺寸
//
// 返回:
//   - ecs.EntityID: 角色实体ID
func NewActor(em *ecs.EntityManager, w config.WorldTuning) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: w.ActorX, Y: w.ActorRestY})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w.ActorSize, Height: w.ActorSize})
	ecs.AddComponent(em, id, &components.ActorComponent{Size: w.ActorSize})
	return id
}
