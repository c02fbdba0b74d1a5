package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重新挂载当前场景（得到全新的状态），避免循环依赖
type SceneFactory func() Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重新挂载
	mounts       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Remount to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is torn down first if it implements Teardowner.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if td, ok := sm.currentScene.(Teardowner); ok {
		td.Teardown()
	}
	sm.currentScene = scene
	if scene != nil {
		sm.mounts++
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Mounts 返回挂载过的场景数量
func (sm *SceneManager) Mounts() int {
	return sm.mounts
}

// Remount 用工厂函数创建新场景并替换当前场景
func (sm *SceneManager) Remount() {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景")
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 场景已重新挂载 (第 %d 次)", sm.mounts)
}

// Teardown tears down the active scene, if any, and leaves the manager empty.
func (sm *SceneManager) Teardown() {
	sm.SwitchTo(nil)
}

// Resize forwards a window size change to the active scene if it implements Resizer.
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
