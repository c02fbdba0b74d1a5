package systems

import (
	"log"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/game"
)

const completeTimerName = "complete"

// CompletionSystem 全部收集后延时进入完成阶段
//
// 最后一个收集物被收集时创建一个一次性计时器，计时结束后切换到
// PhaseComplete 并调用 onComplete，整个挂载周期内只会触发一次。
// Cancel 之后计时器不再推进，也不会触发。
type CompletionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	delay         float64
	onComplete    func()
	timer         ecs.EntityID
}

// NewCompletionSystem 创建完成系统
func NewCompletionSystem(em *ecs.EntityManager, gs *game.GameState, delay float64, onComplete func()) *CompletionSystem {
	return &CompletionSystem{
		entityManager: em,
		gameState:     gs,
		delay:         delay,
		onComplete:    onComplete,
	}
}

// Update 推进计时器
func (s *CompletionSystem) Update(dt float64) {
	if !s.gameState.IsRunning() {
		return
	}

	if s.gameState.AllCollected() && !s.gameState.CompletionScheduled {
		s.schedule()
	}

	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.timer)
	if !ok || timer.Cancelled || timer.IsReady {
		return
	}

	timer.CurrentTime += dt
	if timer.CurrentTime < timer.TargetTime {
		return
	}

	timer.IsReady = true
	s.gameState.Phase = game.PhaseComplete
	log.Printf("[CompletionSystem] 全部收集完成，进入 %s", s.gameState.Phase)
	if s.onComplete != nil {
		s.onComplete()
	}
}

// Pending 报告是否有尚未触发的计时器
func (s *CompletionSystem) Pending() bool {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.timer)
	return ok && !timer.Cancelled && !timer.IsReady
}

// Cancel 取消尚未触发的计时器
func (s *CompletionSystem) Cancel() {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.timer)
	if !ok || timer.IsReady || timer.Cancelled {
		return
	}
	timer.Cancelled = true
	log.Printf("[CompletionSystem] 取消完成计时器 (已计时 %.2fs)", timer.CurrentTime)
}

func (s *CompletionSystem) schedule() {
	s.gameState.CompletionScheduled = true
	s.timer = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.timer, &components.TimerComponent{
		Name:       completeTimerName,
		TargetTime: s.delay,
	})
	log.Printf("[CompletionSystem] %.1fs 后进入完成阶段", s.delay)
}
