package systems

import (
	"testing"

	"github.com/gonewx/folio/pkg/components"
	"github.com/gonewx/folio/pkg/input"
)

// TestCheckAABBCollision 测试AABB碰撞检测
func TestCheckAABBCollision(t *testing.T) {
	box := &components.CollisionComponent{Width: 50, Height: 50}

	tests := []struct {
		name  string
		pos1  *components.PositionComponent
		col1  *components.CollisionComponent
		pos2  *components.PositionComponent
		col2  *components.CollisionComponent
		want  bool
		descr string
	}{
		{
			name:  "完全重叠",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  box,
			pos2:  &components.PositionComponent{X: 100, Y: 100},
			col2:  box,
			want:  true,
			descr: "两个碰撞盒完全重叠应该检测到碰撞",
		},
		{
			name:  "部分重叠 - 右边",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  box,
			pos2:  &components.PositionComponent{X: 120, Y: 100},
			col2:  box,
			want:  true,
			descr: "碰撞盒部分重叠（右边）应该检测到碰撞",
		},
		{
			name:  "包含",
			pos1:  &components.PositionComponent{X: 50, Y: 300},
			col1:  &components.CollisionComponent{Width: 40, Height: 40},
			pos2:  &components.PositionComponent{X: 20, Y: 250},
			col2:  &components.CollisionComponent{Width: 120, Height: 120},
			want:  true,
			descr: "角色完全位于收集物内部应该检测到碰撞",
		},
		{
			name:  "边界刚好接触",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  box,
			pos2:  &components.PositionComponent{X: 150, Y: 100},
			col2:  box,
			want:  false,
			descr: "只接触边界不算重叠",
		},
		{
			name:  "水平分离",
			pos1:  &components.PositionComponent{X: 0, Y: 0},
			col1:  box,
			pos2:  &components.PositionComponent{X: 200, Y: 0},
			col2:  box,
			want:  false,
			descr: "水平方向没有重叠",
		},
		{
			name:  "垂直分离",
			pos1:  &components.PositionComponent{X: 0, Y: 0},
			col1:  box,
			pos2:  &components.PositionComponent{X: 0, Y: 60},
			col2:  box,
			want:  false,
			descr: "垂直方向没有重叠",
		},
		{
			name:  "偏移后重叠",
			pos1:  &components.PositionComponent{X: 0, Y: 0},
			col1:  &components.CollisionComponent{Width: 50, Height: 50, OffsetX: 30},
			pos2:  &components.PositionComponent{X: 60, Y: 0},
			col2:  box,
			want:  true,
			descr: "碰撞盒偏移应参与计算",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkAABBCollision(tt.pos1, tt.col1, tt.pos2, tt.col2)
			if got != tt.want {
				t.Errorf("%s: checkAABBCollision() = %v, want %v", tt.descr, got, tt.want)
			}
		})
	}
}

// TestPhysicsSystemKeepsActorOnGround 静止角色每帧被钳制在地面上
func TestPhysicsSystemKeepsActorOnGround(t *testing.T) {
	w := newTestWorld(t)
	ps := NewPhysicsSystem(w.em, w.actor, w.tuning.World)

	for i := 0; i < 120; i++ {
		ps.Update(frameDT)
	}

	pos, actor := w.actorState(t)
	if pos.Y != 300 || actor.VelocityY != 0 || actor.Airborne {
		t.Errorf("grounded actor drifted: y=%v vy=%v airborne=%v", pos.Y, actor.VelocityY, actor.Airborne)
	}
}

// TestJumpArc 起跳后上升、落回地面并清除离地标志，全程不低于地面
func TestJumpArc(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.gs, w.actor, w.tuning.World)
	ps := NewPhysicsSystem(w.em, w.actor, w.tuning.World)

	is.Update([]input.Event{input.Press(input.KeySpace)})
	pos, actor := w.actorState(t)
	if !actor.Airborne || actor.VelocityY != -900 {
		t.Fatalf("after jump: airborne=%v vy=%v, want true/-900", actor.Airborne, actor.VelocityY)
	}

	minY := pos.Y
	landed := -1
	for frame := 0; frame < 120; frame++ {
		ps.Update(frameDT)
		if pos.Y > 300 {
			t.Fatalf("frame %d: actor below ground (y=%v)", frame, pos.Y)
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if !actor.Airborne {
			landed = frame
			break
		}
	}

	if landed < 0 {
		t.Fatal("actor never landed")
	}
	if actor.VelocityY != 0 || pos.Y != 300 {
		t.Errorf("after landing: y=%v vy=%v, want 300/0", pos.Y, actor.VelocityY)
	}
	// 900²/(2*2880) ≈ 140 像素
	if peak := 300 - minY; peak < 130 || peak > 150 {
		t.Errorf("jump height = %.1f, want about 140", peak)
	}
	// 约 2*900/2880 s ≈ 37 帧
	if landed < 34 || landed > 40 {
		t.Errorf("landed after %d frames, want about 37", landed)
	}
}
