package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/entities"
)

// CollectibleSystem 推进未收集收集物的浮动动画，并按概率发射环境粒子
type CollectibleSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.CollectibleTuning
	rng           *rand.Rand
}

// NewCollectibleSystem 创建收集物系统
func NewCollectibleSystem(em *ecs.EntityManager, c config.CollectibleTuning, rng *rand.Rand) *CollectibleSystem {
	return &CollectibleSystem{
		entityManager: em,
		tuning:        c,
		rng:           rng,
	}
}

// Update 推进 dt 秒
//
// 每个发射器本帧发射一个粒子的概率为 SpawnRate*dt（超过 1 按 1 计），
// 期望发射速率即 SpawnRate 个/秒。
func (s *CollectibleSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		if c.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		c.Phase += s.tuning.FloatSpeed * dt
		c.Bob = math.Sin(c.Phase) * s.tuning.BobAmplitude

		emitter, ok := ecs.GetComponent[*components.EmitterComponent](s.entityManager, id)
		if !ok || !emitter.Active {
			continue
		}
		if s.rng.Float64() < emitter.SpawnRate*dt {
			entities.SpawnAmbientParticle(s.entityManager, id, pos.X, pos.Y+c.Bob, c.Size,
				s.tuning.AmbientParticle, s.rng)
		}
	}
}
