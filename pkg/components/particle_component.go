package components

import "github.com/gonewx/folio/pkg/ecs"

// ParticleKind 粒子来源
type ParticleKind int

const (
	// ParticleAmbient 未收集的收集物周围持续飘散的粒子
	ParticleAmbient ParticleKind = iota
	// ParticleBurst 收集瞬间从中心爆发的粒子
	ParticleBurst
)

// ParticleComponent 单个视觉粒子
//
// 位置由 PositionComponent 给出（世界坐标）。
// Life 从 1 开始按 Decay 每秒递减，降到 0 及以下时粒子被移除。
type ParticleComponent struct {
	Kind      ParticleKind
	VelocityX float64 // 像素/秒
	VelocityY float64
	Life      float64 // [0,1]，同时作为绘制透明度
	Decay     float64 // 每秒减少的生命值
	Size      float64
	Owner     ecs.EntityID // 所属收集物的实体ID
}
