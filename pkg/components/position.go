package components

// PositionComponent 实体在世界坐标系中的位置（左上角，像素）
//
// 世界坐标到画布坐标的转换只在水平方向减去滚动偏移：
// screenX = X - ScrollOffset，screenY = Y
type PositionComponent struct {
	X float64
	Y float64
}
