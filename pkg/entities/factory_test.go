package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

func testProjects() []config.Project {
	return []config.Project{
		{Title: "one"},
		{Title: "two"},
		{Title: "three"},
	}
}

func TestNewActor(t *testing.T) {
	em := ecs.NewEntityManager()
	w := config.DefaultTuning().World
	id := NewActor(em, w)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("actor has no position")
	}
	if pos.X != 50 || pos.Y != 300 {
		t.Errorf("actor at (%v, %v), want (50, 300)", pos.X, pos.Y)
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Width != 40 || col.Height != 40 {
		t.Errorf("actor collision = %+v, want 40x40", col)
	}
	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	if !ok || actor.Airborne || actor.VelocityY != 0 {
		t.Errorf("actor should start grounded and at rest, got %+v", actor)
	}
}

func TestNewCollectiblesLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	c := config.DefaultTuning().Collectibles
	ids := NewCollectibles(em, c, testProjects())

	if len(ids) != 3 {
		t.Fatalf("got %d collectibles, want 3", len(ids))
	}

	wantX := []float64{200, 500, 800}
	for i, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		coll, _ := ecs.GetComponent[*components.CollectibleComponent](em, id)
		if pos.X != wantX[i] || pos.Y != 250 {
			t.Errorf("collectible %d at (%v, %v), want (%v, 250)", i, pos.X, pos.Y, wantX[i])
		}
		if coll.Index != i || coll.Project.Title != testProjects()[i].Title || coll.Collected {
			t.Errorf("collectible %d = %+v", i, coll)
		}
		if _, ok := ecs.GetComponent[*components.EmitterComponent](em, id); !ok {
			t.Errorf("collectible %d has no emitter", i)
		}
	}

	// 查询顺序与项目顺序一致
	query := ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](em)
	for i := range ids {
		if query[i] != ids[i] {
			t.Fatalf("query order %v differs from creation order %v", query, ids)
		}
	}
}

func TestNewStarfieldInsideCanvas(t *testing.T) {
	em := ecs.NewEntityManager()
	s := config.DefaultTuning().Starfield
	ids := NewStarfield(em, s, 800, 400, rand.New(rand.NewSource(7)))

	if len(ids) != 100 {
		t.Fatalf("got %d stars, want 100", len(ids))
	}
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		star, _ := ecs.GetComponent[*components.StarComponent](em, id)
		if pos.X < 0 || pos.X > 800 || pos.Y < 0 || pos.Y > 400 {
			t.Errorf("star at (%v, %v) outside canvas", pos.X, pos.Y)
		}
		if star.Speed < 30 || star.Speed > 150 {
			t.Errorf("star speed %v outside [30,150]", star.Speed)
		}
	}
}

func TestSpawnBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning().Collectibles
	owner := NewCollectible(em, tuning, 0, config.Project{Title: "x"})

	ids := SpawnBurst(em, owner, 260, 310, 30, tuning.BurstParticle, rand.New(rand.NewSource(1)))
	if len(ids) != 30 {
		t.Fatalf("burst size = %d, want 30", len(ids))
	}

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, owner)
	if len(emitter.ActiveParticles) != 30 || emitter.TotalLaunched != 30 {
		t.Errorf("emitter tracks %d particles (launched %d), want 30", len(emitter.ActiveParticles), emitter.TotalLaunched)
	}

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if pos.X != 260 || pos.Y != 310 {
			t.Errorf("burst particle starts at (%v, %v), want center", pos.X, pos.Y)
		}
		speed := math.Hypot(p.VelocityX, p.VelocityY)
		if speed < 60-1e-9 || speed > 300+1e-9 {
			t.Errorf("burst speed %v outside [60,300]", speed)
		}
		if p.Life != 1 || p.Owner != owner || p.Kind != components.ParticleBurst {
			t.Errorf("unexpected particle %+v", p)
		}
	}
}

func TestSpawnWithoutEmitter(t *testing.T) {
	em := ecs.NewEntityManager()
	owner := em.CreateEntity()
	rng := rand.New(rand.NewSource(1))
	tuning := config.DefaultTuning().Collectibles

	if id := SpawnAmbientParticle(em, owner, 0, 0, 10, tuning.AmbientParticle, rng); id != 0 {
		t.Errorf("ambient particle spawned without emitter: %d", id)
	}
	if ids := SpawnBurst(em, owner, 0, 0, 5, tuning.BurstParticle, rng); ids != nil {
		t.Errorf("burst spawned without emitter: %v", ids)
	}
	if em.Count() != 1 {
		t.Errorf("entity count = %d, want only the owner", em.Count())
	}
}

func TestSpawnAmbientParticleInsideOwner(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning().Collectibles
	owner := NewCollectible(em, tuning, 1, config.Project{Title: "y"})
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 20; i++ {
		id := SpawnAmbientParticle(em, owner, 500, 250, 120, tuning.AmbientParticle, rng)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X < 500 || pos.X > 620 || pos.Y < 250 || pos.Y > 370 {
			t.Errorf("particle at (%v, %v) outside owner box", pos.X, pos.Y)
		}
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if p.VelocityY >= 0 {
			t.Errorf("ambient particle should rise, vy=%v", p.VelocityY)
		}
	}
}
