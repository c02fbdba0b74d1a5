package scenes

import (
	"github.com/gonewx/folio/pkg/render"
)

const (
	headerTitle     = "02. selected work"
	headerHint      = "←/→ or A/D to move · SPACE/W/↑ to jump · R to restart"
	headerTouchHint = "use the on-screen buttons · tap the panel to continue"
	headerTitleSize = 28.0
	headerHintSize  = 14.0
)

// LayoutHeader 画布上方的标题与操作提示（窗口坐标）
// ox, oy 为画布左上角
func LayoutHeader(ox, oy, canvasW float64, touch bool) *render.Frame {
	f := render.NewFrame(4)
	hint := headerHint
	if touch {
		hint = headerTouchHint
	}
	f.TextIn(render.FontBold, headerTitle, ox+canvasW/2, oy-64, headerTitleSize, render.AlignCenter, render.White)
	f.TextIn(render.FontSans, hint, ox+canvasW/2, oy-24, headerHintSize, render.AlignCenter, render.Gray500)
	return f
}
