package systems

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// StarfieldSystem 让画布内的星星向左漂移并闪烁
//
// 星星离开左边缘后回到右边缘（Y 不变），与背景粒子层完全独立。
// 亮度用一维 Perlin 噪声采样，得到平滑而不重复的闪烁。
type StarfieldSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.StarfieldTuning
	width         float64
	noise         *perlin.Perlin
	clock         float64
}

// NewStarfieldSystem 创建星空系统
//
// 参数:
//   - em: 实体管理器
//   - s: 星空参数（闪烁幅度等）
//   - width: 画布宽度，星星越过左边缘后回到该位置
//   - rng: 用于生成噪声种子
func NewStarfieldSystem(em *ecs.EntityManager, s config.StarfieldTuning, width float64, rng *rand.Rand) *StarfieldSystem {
	return &StarfieldSystem{
		entityManager: em,
		tuning:        s,
		width:         width,
		noise:         perlin.NewPerlin(2, 2, 3, rng.Int63()),
	}
}

// Update 推进 dt 秒
func (s *StarfieldSystem) Update(dt float64) {
	s.clock += dt

	stars := ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.entityManager)
	for _, id := range stars {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X -= star.Speed * dt
		if pos.X < 0 {
			pos.X = s.width
		}
		star.Bright = s.brightness(star)
	}
}

// brightness 返回 [1-Twinkle, 1] 范围内的亮度
func (s *StarfieldSystem) brightness(star *components.StarComponent) float64 {
	if s.tuning.Twinkle <= 0 {
		return 1
	}
	// 噪声值大致落在 [-1, 1]，映射到 [0, 1] 后截断
	n := 0.5 + s.noise.Noise1D(star.Seed+s.clock*4)
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return 1 - s.tuning.Twinkle*(1-n)
}
