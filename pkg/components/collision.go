package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于收集系统检测角色与收集物的重叠
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移
}

// Bounds 返回给定左上角位置下碰撞盒的边界
func (c *CollisionComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	left = x + c.OffsetX
	top = y + c.OffsetY
	return left, top, left + c.Width, top + c.Height
}
