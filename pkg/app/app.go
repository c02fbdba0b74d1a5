// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/folio/pkg/ambient"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/render"
	"github.com/gonewx/folio/pkg/scenes"
	"github.com/gonewx/folio/pkg/utils"
)

const (
	// DefaultTuningPath 内置参数文件
	DefaultTuningPath = "data/tuning.yaml"
	// DefaultProjectsPath 内置项目列表
	DefaultProjectsPath = "data/projects.yaml"

	// ambientOpacity 背景层叠加到页面时的透明度
	ambientOpacity = 0.4
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 参数文件路径，为空时使用内置文件
	TuningPath string
	// ProjectsPath 项目列表路径，为空时使用内置文件
	ProjectsPath string
	// Touch 强制显示屏幕按键（移动端总是显示）
	Touch bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	ambient                  *scenes.AmbientLayer
	verbose                  bool
	width, height            int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 加载配置并挂载作品集场景
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuningPath := cfg.TuningPath
	if tuningPath == "" {
		tuningPath = DefaultTuningPath
	}
	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		return nil, fmt.Errorf("参数加载失败: %w", err)
	}
	log.Printf("[Config] 加载参数: %s", tuningPath)

	projectsPath := cfg.ProjectsPath
	if projectsPath == "" {
		projectsPath = DefaultProjectsPath
	}
	projects, err := config.LoadProjects(projectsPath)
	if err != nil {
		return nil, fmt.Errorf("项目列表加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个项目: %s", len(projects), projectsPath)

	painter, err := render.NewPainter()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		verbose: cfg.Verbose,
		width:   config.DefaultWindowWidth,
		height:  config.DefaultWindowHeight,
	}

	field := ambient.NewField(float64(a.width), float64(a.height), tuning.Ambient, nil)
	a.ambient = scenes.NewAmbientLayer(field, painter, ambientOpacity)

	touch := cfg.Touch || utils.IsMobile()

	// 创建场景管理器，R 键重新挂载时由工厂创建新场景
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewPortfolioScene(scenes.PortfolioSceneOptions{
			SceneManager: sceneManager,
			Tuning:       tuning,
			Projects:     projects,
			Painter:      painter,
			Ambient:      a.ambient,
			Touch:        touch,
			Width:        a.width,
			Height:       a.height,
		})
	})
	sceneManager.Remount()
	a.sceneManager = sceneManager

	log.Printf("[App] 初始化完成 (触屏按键=%v)", touch)
	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// verbose 模式下左上角显示 TPS/FPS
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	if a.verbose {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f  mounts %d", ebiten.ActualTPS(), ebiten.ActualFPS(), a.sceneManager.Mounts()),
			4, 4)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸跟随窗口，背景层铺满整个窗口，游戏画布保持固定尺寸居中
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
		log.Printf("[App] 视口尺寸变化: %dx%d", outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 拆除当前场景
func (a *App) Close() {
	a.sceneManager.Teardown()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
