package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/input"
	"github.com/gonewx/folio/pkg/platformer"
	"github.com/gonewx/folio/pkg/render"
	"github.com/gonewx/folio/pkg/utils"
)

// PortfolioSceneOptions 创建 PortfolioScene 所需的依赖
type PortfolioSceneOptions struct {
	SceneManager *game.SceneManager
	Tuning       *config.Tuning
	Projects     []config.Project
	Painter      *render.Painter
	// Ambient 页面背景层，跨场景共享，可为 nil
	Ambient *AmbientLayer
	// Touch 是否显示屏幕按键
	Touch bool
	// Rand 游戏随机源，nil 时按时间播种
	Rand *rand.Rand
	// Width, Height 当前窗口尺寸
	Width, Height int
}

// PortfolioScene 作品集页面
//
// 背景星座层之上是游戏画布，收集到项目时弹出项目面板，
// 全部收集后画布换成总结视图。按 R 重新挂载整个场景。
type PortfolioScene struct {
	sceneManager *game.SceneManager
	tuning       *config.Tuning
	painter      *render.Painter
	ambient      *AmbientLayer

	engine   *platformer.Engine
	keyboard *input.Keyboard
	touch    *input.TouchControls

	canvas *ebiten.Image
	frame  *render.Frame // 引擎最近一次产出的帧，仅在 Running 阶段更新
	dirty  bool

	width, height int

	panel     *config.Project
	panelAge  float64
	panelHit  PanelLayout
	collected []config.Project
	complete  bool
	tornDown  bool
}

// NewPortfolioScene 创建场景并挂载一个新的引擎
func NewPortfolioScene(opts PortfolioSceneOptions) *PortfolioScene {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.DefaultTuning()
	}

	s := &PortfolioScene{
		sceneManager: opts.SceneManager,
		tuning:       tuning,
		painter:      opts.Painter,
		ambient:      opts.Ambient,
		width:        opts.Width,
		height:       opts.Height,
	}

	s.engine = platformer.New(tuning, opts.Projects, platformer.Callbacks{
		OnCollected: s.onCollected,
		OnComplete:  s.onComplete,
	}, opts.Rand)

	s.keyboard = input.NewKeyboard()
	sources := []input.Source{s.keyboard}

	if opts.Touch {
		w := tuning.World
		s.touch = input.NewTouchControls(w.Width, w.Height,
			config.TouchButtonSize, config.TouchButtonGap, config.TouchButtonMargin,
			utils.ActivePointers)
		sources = append(sources, s.touch)
	}
	// 键盘与触屏合并为一个来源，Teardown 时一并分离
	s.engine.Attach(input.Merge(sources...))

	log.Printf("[PortfolioScene] 已挂载: %d 个项目, 触屏按键=%v", len(opts.Projects), opts.Touch)
	return s
}

// Engine 返回当前挂载的引擎
func (s *PortfolioScene) Engine() *platformer.Engine {
	return s.engine
}

func (s *PortfolioScene) onCollected(index int, p config.Project) {
	project := p
	s.panel = &project
	s.panelAge = 0
	s.collected = append(s.collected, p)
	log.Printf("[PortfolioScene] 解锁项目 #%d: %s", index, p.Title)
}

func (s *PortfolioScene) onComplete() {
	s.complete = true
	log.Printf("[PortfolioScene] 全部收集完成")
}

// canvasOrigin 游戏画布在窗口中的左上角
func (s *PortfolioScene) canvasOrigin() (float64, float64) {
	w := s.tuning.World
	return config.CanvasOrigin(float64(s.width), float64(s.height), w.Width, w.Height)
}

// Update 更新背景层、面板与引擎
func (s *PortfolioScene) Update(deltaTime float64) {
	if s.tornDown {
		return
	}
	s.ambient.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		// Remount 会拆除当前场景，之后不再访问 s
		s.sceneManager.Remount()
		return
	}

	if s.touch != nil {
		s.touch.SetOrigin(s.canvasOrigin())
	}

	if s.panel != nil {
		s.panelAge += deltaTime
		s.updatePanel()
	}

	if s.engine.State() != platformer.Running {
		return
	}
	if frame := s.engine.Step(deltaTime, s.engine.Poll()); frame != nil {
		s.frame = frame
		s.dirty = true
	}
}

// updatePanel 处理面板的关闭操作
func (s *PortfolioScene) updatePanel() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.dismissPanel()
		return
	}

	clicked, x, y := utils.IsJustTouchedOrClicked()
	if !clicked {
		return
	}
	fx, fy := float64(x), float64(y)
	if s.onTouchButton(fx, fy) {
		return
	}
	// 点在面板外或 CONTINUE 上都会关闭，点在面板内容上不关闭
	if s.panelHit.Button.Contains(fx, fy) || !s.panelHit.Bounds.Contains(fx, fy) {
		s.dismissPanel()
	}
}

func (s *PortfolioScene) onTouchButton(x, y float64) bool {
	if s.touch == nil {
		return false
	}
	ox, oy := s.canvasOrigin()
	for _, b := range s.touch.Buttons {
		if b.Contains(x-ox, y-oy) {
			return true
		}
	}
	return false
}

func (s *PortfolioScene) dismissPanel() {
	s.panel = nil
	s.panelAge = 0
	s.panelHit = PanelLayout{}
}

// PanelOpen 是否正在显示项目面板
func (s *PortfolioScene) PanelOpen() bool {
	return s.panel != nil
}

// Draw 绘制背景层、标题、画布与面板
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	if screen == nil || s.painter == nil {
		return
	}
	screen.Fill(render.Black)
	s.ambient.Draw(screen)

	w := s.tuning.World
	ox, oy := s.canvasOrigin()
	s.painter.Paint(screen, LayoutHeader(ox, oy, w.Width, s.touch != nil), 0, 0)

	if s.complete {
		s.painter.Paint(screen, LayoutSummary(s.collected, w.Width, w.Height, s.measure), ox, oy)
	} else {
		s.drawCanvas(screen, ox, oy)
	}

	if s.panel != nil {
		s.panelHit = LayoutProjectPanel(*s.panel, float64(s.width), float64(s.height), s.panelAge, s.measure)
		s.painter.Paint(screen, s.panelHit.Frame, 0, 0)
	}
}

// drawCanvas 只在引擎产出新帧时重绘离屏画布
func (s *PortfolioScene) drawCanvas(screen *ebiten.Image, ox, oy float64) {
	w := s.tuning.World
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(int(w.Width), int(w.Height))
		s.dirty = true
	}
	if s.dirty && s.frame != nil {
		s.painter.Paint(s.canvas, s.frame, 0, 0)
		if s.touch != nil {
			overlay := render.NewFrame(12)
			s.touch.Draw(overlay)
			s.painter.Paint(s.canvas, overlay, 0, 0)
		}
		s.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(s.canvas, op)
}

func (s *PortfolioScene) measure(str string, size float64, font render.Font) float64 {
	w, _ := s.painter.MeasureTextIn(font, str, size)
	return w
}

// Resize 同步窗口尺寸
func (s *PortfolioScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.ambient.Resize(width, height)
}

// Teardown 拆除引擎并释放画布
// 可以重复调用
func (s *PortfolioScene) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	s.engine.Teardown()
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	log.Printf("[PortfolioScene] 已拆除")
}
