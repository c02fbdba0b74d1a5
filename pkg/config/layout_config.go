package config

// 布局配置常量
// 窗口为逻辑像素，游戏画布居中放置，背景粒子层铺满整个窗口

const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1024
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 640

	// CanvasMarginTop 游戏画布距窗口顶部的最小距离（留给标题和操作提示）
	CanvasMarginTop = 96.0

	// HUDX, HUDY 收集计数文字左上角在画布内的位置（基线约在 y=30）
	HUDX = 20.0
	HUDY = 12.0
	// HUDFontSize 收集计数文字大小
	HUDFontSize = 20.0

	// TouchButtonSize 触屏按钮边长
	TouchButtonSize = 64.0
	// TouchButtonGap 触屏按钮间距
	TouchButtonGap = 16.0
	// TouchButtonMargin 触屏按钮距画布边缘的距离
	TouchButtonMargin = 12.0
)

// CanvasOrigin 返回游戏画布在窗口中的左上角坐标
// 水平居中；垂直方向在标题下方，窗口过矮时贴顶
func CanvasOrigin(windowW, windowH, canvasW, canvasH float64) (x, y float64) {
	x = (windowW - canvasW) / 2
	if x < 0 {
		x = 0
	}
	y = CanvasMarginTop
	if windowH-canvasH < CanvasMarginTop {
		y = (windowH - canvasH) / 2
		if y < 0 {
			y = 0
		}
	}
	return x, y
}
