// Package platformer 横版收集小游戏的模拟引擎
//
// Engine 不依赖任何绘图或计时原语：宿主每个刷新周期调用一次
// Step(dt, events)，拿到的 render.Frame 交给 Painter 绘制即可。
// 这样模拟逻辑可以用合成输入逐帧驱动，做确定性测试。
package platformer

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/entities"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/input"
	"github.com/gonewx/folio/pkg/render"
	"github.com/gonewx/folio/pkg/systems"
)

// State 引擎所处阶段
type State = game.Phase

const (
	// Running 挂载后的默认阶段
	Running = game.PhaseRunning
	// Complete 全部收集并经过展示延迟后进入的终止阶段
	Complete = game.PhaseComplete
)

// Callbacks 引擎向展示层发出的单向通知
// 两个回调都可以为 nil
type Callbacks struct {
	// OnCollected 每个收集物被收集时调用一次
	OnCollected func(index int, p config.Project)
	// OnComplete 进入 Complete 阶段时调用一次
	OnComplete func()
}

// Engine 一次挂载的游戏实例
type Engine struct {
	tuning   *config.Tuning
	projects []config.Project
	em       *ecs.EntityManager
	state    *game.GameState

	actor        ecs.EntityID
	collectibles []ecs.EntityID

	starfield   *systems.StarfieldSystem
	input       *systems.InputSystem
	camera      *systems.CameraSystem
	physics     *systems.PhysicsSystem
	collectible *systems.CollectibleSystem
	particles   *systems.ParticleSystem
	collection  *systems.CollectionSystem
	renderer    *systems.RenderSystem
	completion  *systems.CompletionSystem

	sources  []input.Source
	frame    *render.Frame
	frames   int
	tornDown bool
}

// New 创建引擎，每个项目对应一个收集物，顺序与项目列表一致
//
// 参数:
//   - tuning: 物理与画面参数，nil 时使用默认值
//   - projects: 项目列表（只读）
//   - cb: 收集与完成通知
//   - rng: 随机源，nil 时使用以当前时间为种子的随机源
//
// 返回:
//   - *Engine: 处于 Running 阶段的新引擎
func New(tuning *config.Tuning, projects []config.Project, cb Callbacks, rng *rand.Rand) *Engine {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(len(projects))

	e := &Engine{
		tuning:   tuning,
		projects: projects,
		em:       em,
		state:    gs,
		frame:    render.NewFrame(512),
	}

	w := tuning.World
	// 星星先创建，绘制时位于最底层
	entities.NewStarfield(em, tuning.Starfield, w.Width, w.Height, rng)
	e.actor = entities.NewActor(em, w)
	e.collectibles = entities.NewCollectibles(em, tuning.Collectibles, projects)

	e.starfield = systems.NewStarfieldSystem(em, tuning.Starfield, w.Width, rng)
	e.input = systems.NewInputSystem(em, gs, e.actor, w)
	e.camera = systems.NewCameraSystem(gs, w)
	e.physics = systems.NewPhysicsSystem(em, e.actor, w)
	e.collectible = systems.NewCollectibleSystem(em, tuning.Collectibles, rng)
	e.particles = systems.NewParticleSystem(em)
	e.collection = systems.NewCollectionSystem(em, gs, e.actor, tuning.Collectibles, rng, cb.OnCollected)
	e.renderer = systems.NewRenderSystem(em, gs, e.actor, w)
	e.completion = systems.NewCompletionSystem(em, gs, w.CompleteDelay, cb.OnComplete)

	log.Printf("[Platformer] 新游戏: %d 个收集物, 世界 %.0fx%.0f", len(projects), w.Width, w.Height)
	return e
}

// Attach 登记输入来源，Teardown 时统一分离
// 同一个来源只登记一次
func (e *Engine) Attach(src input.Source) {
	if src == nil || e.tornDown {
		return
	}
	for _, s := range e.sources {
		if s == src {
			return
		}
	}
	e.sources = append(e.sources, src)
}

// Poll 从已登记的来源收集本帧事件
func (e *Engine) Poll() []input.Event {
	if e.tornDown {
		return nil
	}
	var events []input.Event
	for _, s := range e.sources {
		events = append(events, s.Poll()...)
	}
	return events
}

// Step 推进一帧并返回绘制命令
//
// 只有 Running 阶段会推进模拟；Complete 阶段或 Teardown 之后返回 nil，
// 宿主应继续显示上一帧。返回的 Frame 在下一次 Step 前有效。
func (e *Engine) Step(dt float64, events []input.Event) *render.Frame {
	if e.tornDown || !e.state.IsRunning() {
		return nil
	}
	e.frames++

	e.starfield.Update(dt)
	e.input.Update(events)
	e.camera.Update(dt)
	e.physics.Update(dt)
	e.collectible.Update(dt)
	e.particles.Update(dt)
	e.collection.Update()

	e.frame.Reset()
	e.renderer.Draw(e.frame)

	e.completion.Update(dt)
	return e.frame
}

// State 返回当前阶段
func (e *Engine) State() State {
	return e.state.Phase
}

// Collected 返回已收集数量
func (e *Engine) Collected() int {
	return e.state.Collected
}

// Total 返回收集物总数
func (e *Engine) Total() int {
	return e.state.Total
}

// ScrollOffset 返回当前滚动偏移
func (e *Engine) ScrollOffset() float64 {
	return e.state.ScrollOffset
}

// Frames 返回已推进的帧数
func (e *Engine) Frames() int {
	return e.frames
}

// Entities 返回当前存活的实体数量（星星、角色、收集物、粒子和计时器）
func (e *Engine) Entities() int {
	return e.em.Count()
}

// Tuning 返回引擎使用的参数
func (e *Engine) Tuning() *config.Tuning {
	return e.tuning
}

// TornDown 报告是否已卸载
func (e *Engine) TornDown() bool {
	return e.tornDown
}

// CompletionPending 报告是否有尚未触发的完成计时器
func (e *Engine) CompletionPending() bool {
	return e.completion.Pending()
}

// Teardown 卸载引擎：停止推进、取消挂起的完成计时器、分离所有输入来源
// 可以重复调用
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.tornDown = true
	e.completion.Cancel()
	for _, s := range e.sources {
		s.Detach()
	}
	e.sources = nil
	e.state.Keys.Clear()
	log.Printf("[Platformer] 已卸载 (%d 帧, 收集 %d/%d, %d 个实体)", e.frames, e.state.Collected, e.state.Total, e.em.Count())
}
