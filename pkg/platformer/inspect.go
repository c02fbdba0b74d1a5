package platformer

import (
	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/ecs"
)

// ActorSnapshot 角色当前状态（画布坐标）
type ActorSnapshot struct {
	X, Y      float64
	VelocityY float64
	Airborne  bool
}

// CollectibleSnapshot 收集物当前状态
type CollectibleSnapshot struct {
	Index     int
	Title     string
	WorldX    float64
	Y         float64
	Collected bool
	Particles int // 该收集物拥有的存活粒子数
}

// Actor 返回角色快照
func (e *Engine) Actor() ActorSnapshot {
	var s ActorSnapshot
	if pos, ok := ecs.GetComponent[*components.PositionComponent](e.em, e.actor); ok {
		s.X, s.Y = pos.X, pos.Y
	}
	if a, ok := ecs.GetComponent[*components.ActorComponent](e.em, e.actor); ok {
		s.VelocityY = a.VelocityY
		s.Airborne = a.Airborne
	}
	return s
}

// Collectibles 按项目顺序返回所有收集物快照
func (e *Engine) Collectibles() []CollectibleSnapshot {
	out := make([]CollectibleSnapshot, 0, len(e.collectibles))
	for _, id := range e.collectibles {
		c, ok := ecs.GetComponent[*components.CollectibleComponent](e.em, id)
		if !ok {
			continue
		}
		s := CollectibleSnapshot{
			Index:     c.Index,
			Title:     c.Project.Title,
			Collected: c.Collected,
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](e.em, id); ok {
			s.WorldX, s.Y = pos.X, pos.Y
		}
		if emitter, ok := ecs.GetComponent[*components.EmitterComponent](e.em, id); ok {
			s.Particles = len(emitter.ActiveParticles)
		}
		out = append(out, s)
	}
	return out
}
