package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/entities"
	"github.com/gonewx/folio/pkg/game"
)

const frameDT = 1.0 / 60.0

// testWorld 测试用的最小世界：一个角色加三个收集物
type testWorld struct {
	em           *ecs.EntityManager
	gs           *game.GameState
	tuning       *config.Tuning
	actor        ecs.EntityID
	collectibles []ecs.EntityID
	rng          *rand.Rand
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	tuning := config.DefaultTuning()
	projects := []config.Project{
		{Title: "first", Icon: "A"},
		{Title: "second", Icon: "B"},
		{Title: "third", Icon: "C"},
	}

	em := ecs.NewEntityManager()
	w := &testWorld{
		em:     em,
		gs:     game.NewGameState(len(projects)),
		tuning: tuning,
		rng:    rand.New(rand.NewSource(1)),
	}
	w.actor = entities.NewActor(em, tuning.World)
	w.collectibles = entities.NewCollectibles(em, tuning.Collectibles, projects)
	return w
}

func (w *testWorld) actorState(t *testing.T) (*components.PositionComponent, *components.ActorComponent) {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, w.actor)
	if !ok {
		t.Fatal("actor has no position")
	}
	actor, ok := ecs.GetComponent[*components.ActorComponent](w.em, w.actor)
	if !ok {
		t.Fatal("actor has no actor component")
	}
	return pos, actor
}

func (w *testWorld) collectible(t *testing.T, i int) *components.CollectibleComponent {
	t.Helper()
	c, ok := ecs.GetComponent[*components.CollectibleComponent](w.em, w.collectibles[i])
	if !ok {
		t.Fatalf("collectible %d missing", i)
	}
	return c
}
