package systems

import (
	"fmt"
	"math"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
	"github.com/gonewx/folio/pkg/game"
	"github.com/gonewx/folio/pkg/render"
)

const (
	collectibleGlow = 30
	actorGlow       = 20
	iconFontSize    = 48
	eyeSize         = 8
)

// RenderSystem 将游戏世界转换为绘制命令
//
// 绘制顺序（后绘制的在上层）：
//  1. 黑色背景与星星
//  2. 地面与随滚动移动的网格线
//  3. 未收集的收集物（发光方框与图标）
//  4. 粒子
//  5. 角色（发光方块与两只眼睛）
//  6. HUD 收集计数
//
// 所有坐标都是画布坐标，世界X减去滚动偏移。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	world         config.WorldTuning
	actor         ecs.EntityID
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, actor ecs.EntityID, w config.WorldTuning) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		world:         w,
		actor:         actor,
	}
}

// Draw 将本帧的命令追加到 f
func (rs *RenderSystem) Draw(f *render.Frame) {
	rs.drawBackground(f)
	rs.drawGround(f)
	rs.drawCollectibles(f)
	rs.drawParticles(f)
	rs.drawActor(f)
	rs.drawHUD(f)
}

func (rs *RenderSystem) drawBackground(f *render.Frame) {
	f.FillRect(0, 0, rs.world.Width, rs.world.Height, render.Black)

	stars := ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](rs.entityManager)
	for _, id := range stars {
		star, _ := ecs.GetComponent[*components.StarComponent](rs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		f.FillRect(pos.X, pos.Y, star.Size, star.Size, render.WithAlpha(render.White, star.Bright))
	}
}

// drawGround 地面、地面线以及与滚动同步的竖向网格线
func (rs *RenderSystem) drawGround(f *render.Frame) {
	gy := rs.world.GroundY
	f.FillRect(0, gy, rs.world.Width, rs.world.Height-gy, render.Ground)

	if spacing := rs.world.GridSpacing; spacing > 0 {
		gridColor := render.WithAlpha(render.Violet, 0.15)
		start := -math.Mod(rs.gameState.ScrollOffset, spacing)
		for x := start; x < rs.world.Width; x += spacing {
			if x < 0 {
				continue
			}
			f.Line(x, gy, x, rs.world.Height, 1, gridColor)
		}
	}

	f.Line(0, gy, rs.world.Width, gy, 2, render.Violet)
}

func (rs *RenderSystem) drawCollectibles(f *render.Frame) {
	ids := ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](rs.entityManager)
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](rs.entityManager, id)
		if c.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)

		x := rs.gameState.ToScreenX(pos.X)
		y := pos.Y + c.Bob
		// 完全在画布外的收集物不产生命令
		if x+c.Size < -collectibleGlow || x > rs.world.Width+collectibleGlow {
			continue
		}

		f.Add(render.Command{
			Kind:      render.KindFillRect,
			X:         x,
			Y:         y,
			W:         c.Size,
			H:         c.Size,
			Color:     render.WithAlpha(render.Violet, 0.2),
			Glow:      collectibleGlow,
			GlowColor: render.VioletGlow,
		})
		f.StrokeRect(x, y, c.Size, c.Size, 3, render.Violet)
		f.Text(c.Project.Icon, x+c.Size/2, y+c.Size/2, iconFontSize, render.AlignCenter, render.White)
	}
}

func (rs *RenderSystem) drawParticles(f *render.Frame) {
	ids := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](rs.entityManager)
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](rs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)

		c := render.VioletGlow
		if p.Kind == components.ParticleBurst {
			c = render.Violet
		}
		f.Circle(rs.gameState.ToScreenX(pos.X), pos.Y, p.Size, render.WithAlpha(c, p.Life))
	}
}

func (rs *RenderSystem) drawActor(f *render.Frame) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](rs.entityManager, rs.actor)
	if !ok {
		return
	}
	actor, ok := ecs.GetComponent[*components.ActorComponent](rs.entityManager, rs.actor)
	if !ok {
		return
	}

	size := actor.Size
	f.Add(render.Command{
		Kind:      render.KindFillRect,
		X:         pos.X,
		Y:         pos.Y,
		W:         size,
		H:         size,
		Color:     render.Violet,
		Glow:      actorGlow,
		GlowColor: render.Violet,
	})

	// 眼睛位于中心上方，左右各一
	cx, cy := pos.X+size/2, pos.Y+size/2
	f.FillRect(cx-10, cy-10, eyeSize, eyeSize, render.Black)
	f.FillRect(cx+2, cy-10, eyeSize, eyeSize, render.Black)
}

func (rs *RenderSystem) drawHUD(f *render.Frame) {
	f.Text(HUDText(rs.gameState.Collected, rs.gameState.Total),
		config.HUDX, config.HUDY, config.HUDFontSize, render.AlignStart, render.White)
}

// HUDText 收集计数文字
func HUDText(collected, total int) string {
	return fmt.Sprintf("COLLECTED: %d/%d", collected, total)
}
