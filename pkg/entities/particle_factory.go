package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// SpawnAmbientParticle 在收集物范围内生成一个缓慢上飘的粒子
//
// Parameters:
//   - em: EntityManager instance
//   - owner: 收集物实体ID，粒子会登记到它的 EmitterComponent
//   - x, y, size: 收集物的世界坐标与边长
//   - cfg: 环境粒子参数
//   - rng: 随机源
//
// Returns:
//   - ecs.EntityID: 粒子实体ID，owner 没有发射器时返回 0
func SpawnAmbientParticle(em *ecs.EntityManager, owner ecs.EntityID, x, y, size float64,
	cfg config.AmbientParticle, rng *rand.Rand) ecs.EntityID {

	emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, owner)
	if !ok {
		return 0
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: x + rng.Float64()*size,
		Y: y + rng.Float64()*size,
	})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Kind:      components.ParticleAmbient,
		VelocityX: cfg.SpeedX.Random(rng),
		VelocityY: cfg.SpeedY.Random(rng),
		Life:      1,
		Decay:     cfg.Decay,
		Size:      cfg.Size.Random(rng),
		Owner:     owner,
	})

	emitter.ActiveParticles = append(emitter.ActiveParticles, id)
	emitter.TotalLaunched++
	return id
}

// SpawnBurst 在 (cx, cy) 处生成 count 个向四周飞散的粒子
//
// 粒子方向均匀分布，速度在 cfg.Speed 范围内随机。
// 返回新建粒子的ID，owner 没有发射器时返回 nil。
func SpawnBurst(em *ecs.EntityManager, owner ecs.EntityID, cx, cy float64, count int,
	cfg config.BurstParticle, rng *rand.Rand) []ecs.EntityID {

	emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, owner)
	if !ok {
		return nil
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Speed.Random(rng)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: cx, Y: cy})
		ecs.AddComponent(em, id, &components.ParticleComponent{
			Kind:      components.ParticleBurst,
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Life:      1,
			Decay:     cfg.Decay,
			Size:      cfg.Size.Random(rng),
			Owner:     owner,
		})
		ids = append(ids, id)
	}

	emitter.ActiveParticles = append(emitter.ActiveParticles, ids...)
	emitter.TotalLaunched += count
	return ids
}
