package systems

import (
	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/ecs"
)

// ParticleSystem 移动粒子并按衰减速率减少生命值
//
// 生命值降到 0 及以下的粒子被销毁，并从所属发射器的 ActiveParticles 中移除。
// 收集物被收集后，它的爆发粒子仍会继续更新直到消失。
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{EntityManager: em}
}

// Update advances every particle by dt seconds and culls the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	em := ps.EntityManager
	ids := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em)

	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		pos.X += p.VelocityX * dt
		pos.Y += p.VelocityY * dt
		p.Life -= p.Decay * dt

		if p.Life <= 0 {
			if emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, p.Owner); ok {
				emitter.Release(id)
			}
			em.DestroyEntity(id)
		}
	}
	em.RemoveMarkedEntities()
}
