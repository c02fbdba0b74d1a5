package systems

import (
	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/ecs"
)

// PhysicsSystem 处理角色的重力与地面碰撞
type PhysicsSystem struct {
	em    *ecs.EntityManager
	actor ecs.EntityID
	world config.WorldTuning
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - actor: 角色实体ID
//   - w: 重力、站立高度等世界参数
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, actor ecs.EntityID, w config.WorldTuning) *PhysicsSystem {
	return &PhysicsSystem{
		em:    em,
		actor: actor,
		world: w,
	}
}

// Update 施加重力并处理落地
//
// 先累加速度再移动位置（半隐式欧拉），与逐帧 vy += g; y += vy 的写法一致。
// 角色顶部到达站立高度时钳制到地面、速度清零并清除离地标志。
func (ps *PhysicsSystem) Update(deltaTime float64) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](ps.em, ps.actor)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, ps.actor)
	if !ok {
		return
	}

	actor.VelocityY += ps.world.Gravity * deltaTime
	pos.Y += actor.VelocityY * deltaTime

	if pos.Y >= ps.world.ActorRestY {
		pos.Y = ps.world.ActorRestY
		actor.VelocityY = 0
		actor.Airborne = false
	}
}

// checkAABBCollision 检查两个轴对齐边界框是否重叠
// 位置为碰撞盒左上角（加上各自偏移），只接触边界不算重叠
//
// 参数:
//   - pos1, col1: 第一个实体的位置与碰撞组件
//   - pos2, col2: 第二个实体的位置与碰撞组件
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true，否则返回 false
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// 任一轴上没有重叠则没有碰撞
	return left1 < right2 &&
		right1 > left2 &&
		top1 < bottom2 &&
		bottom1 > top2
}
