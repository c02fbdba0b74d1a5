package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g. the portfolio page with its game view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Teardowner 是一个可选接口，场景被替换时由 SceneManager 调用
//
// 实现方需要停止推进、取消挂起的延时回调并分离输入来源。
// 多次调用必须是安全的。
type Teardowner interface {
	Teardown()
}

// Resizer 是一个可选接口，窗口尺寸变化时由 App 调用
type Resizer interface {
	Resize(width, height int)
}
