package components

import "github.com/gonewx/folio/pkg/config"

// CollectibleComponent 世界中的项目标记
//
// 位置由 PositionComponent 给出（WorldX 固定，Y 为基准高度，浮动偏移不参与碰撞）。
// Collected 只会从 false 变为 true 一次。
type CollectibleComponent struct {
	Index     int            // 在项目列表中的位置
	Project   config.Project // 被收集时通知给展示层
	Collected bool
	Phase     float64 // 浮动动画相位（弧度）
	Bob       float64 // 当前帧的浮动偏移，仅用于绘制
	Size      float64
}
