package entities

import (
	"math/rand"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// NewStarfield 在 width×height 的画布内随机撒下星星
func NewStarfield(em *ecs.EntityManager, s config.StarfieldTuning, width, height float64, rng *rand.Rand) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		})
		ecs.AddComponent(em, id, &components.StarComponent{
			Speed:  s.Speed.Random(rng),
			Size:   s.Size.Random(rng),
			Seed:   rng.Float64() * 1000,
			Bright: 1,
		})
		ids = append(ids, id)
	}
	return ids
}
