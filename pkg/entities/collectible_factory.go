package entities

import (
	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// NewCollectible 为一个项目创建收集物实体
//
// 第 index 个收集物位于 FirstX + index*Spacing，所有收集物同高。
// 实体同时挂载发射器，未收集期间持续发射环境粒子。
func NewCollectible(em *ecs.EntityManager, c config.CollectibleTuning, index int, p config.Project) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: c.FirstX + float64(index)*c.Spacing,
		Y: c.Y,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: c.Size, Height: c.Size})
	ecs.AddComponent(em, id, &components.CollectibleComponent{
		Index:   index,
		Project: p,
		Size:    c.Size,
	})
	ecs.AddComponent(em, id, &components.EmitterComponent{
		Active:          true,
		SpawnRate:       c.EmitRate,
		BurstCount:      c.BurstCount,
		ActiveParticles: make([]ecs.EntityID, 0),
	})
	return id
}

// NewCollectibles 按项目列表顺序创建全部收集物
// 返回的ID顺序即碰撞检测顺序
func NewCollectibles(em *ecs.EntityManager, c config.CollectibleTuning, projects []config.Project) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(projects))
	for i, p := range projects {
		ids = append(ids, NewCollectible(em, c, i, p))
	}
	return ids
}
