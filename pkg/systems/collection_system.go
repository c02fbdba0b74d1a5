package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/entities"
	"github.com/gonewx/folio/pkg/game"
)

// CollectedFunc 收集物被收集时的通知
type CollectedFunc func(index int, p config.Project)

// CollectionSystem 检测角色与未收集收集物的重叠
//
// 碰撞在画布坐标下进行：收集物的X减去滚动偏移，Y使用基准高度（浮动偏移只影响绘制）。
// 同一帧重叠多个收集物时按项目顺序逐个处理，每个收集物最多转换一次。
type CollectionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	actor         ecs.EntityID
	tuning        config.CollectibleTuning
	rng           *rand.Rand
	onCollected   CollectedFunc
}

// NewCollectionSystem 创建收集系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态，提供滚动偏移并记录收集数量
//   - actor: 角色实体ID
//   - c: 收集物参数（爆发粒子数量等）
//   - rng: 随机源
//   - onCollected: 收集通知，可以为 nil
func NewCollectionSystem(em *ecs.EntityManager, gs *game.GameState, actor ecs.EntityID,
	c config.CollectibleTuning, rng *rand.Rand, onCollected CollectedFunc) *CollectionSystem {
	return &CollectionSystem{
		entityManager: em,
		gameState:     gs,
		actor:         actor,
		tuning:        c,
		rng:           rng,
		onCollected:   onCollected,
	}
}

// Update 执行碰撞检测，返回本帧被收集的收集物实体
func (s *CollectionSystem) Update() []ecs.EntityID {
	actorPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.actor)
	if !ok {
		return nil
	}
	actorCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, s.actor)
	if !ok {
		return nil
	}

	var collected []ecs.EntityID
	ids := ecs.GetEntitiesWith3[
		*components.CollectibleComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		if c.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		screenPos := &components.PositionComponent{X: s.gameState.ToScreenX(pos.X), Y: pos.Y}
		if !checkAABBCollision(actorPos, actorCol, screenPos, col) {
			continue
		}

		s.collect(id, c, pos)
		collected = append(collected, id)
	}
	return collected
}

// collect 标记收集、计数、爆发粒子并通知展示层
func (s *CollectionSystem) collect(id ecs.EntityID, c *components.CollectibleComponent, pos *components.PositionComponent) {
	c.Collected = true
	s.gameState.Collected++

	if emitter, ok := ecs.GetComponent[*components.EmitterComponent](s.entityManager, id); ok {
		emitter.Active = false
		entities.SpawnBurst(s.entityManager, id,
			pos.X+c.Size/2, pos.Y+c.Bob+c.Size/2,
			emitter.BurstCount, s.tuning.BurstParticle, s.rng)
	}

	log.Printf("[CollectionSystem] 收集 #%d %q (%d/%d)",
		c.Index, c.Project.Title, s.gameState.Collected, s.gameState.Total)

	if s.onCollected != nil {
		s.onCollected(c.Index, c.Project)
	}
}
