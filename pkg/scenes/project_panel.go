package scenes

import (
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/render"
	"github.com/gonewx/folio/pkg/utils"
)

// 面板布局参数
const (
	panelMaxWidth    = 560.0
	panelMargin      = 20.0
	panelPadding     = 28.0
	panelLabelSize   = 14.0
	panelTitleSize   = 28.0
	panelBodySize    = 15.0
	panelChipSize    = 13.0
	panelChipPadX    = 10.0
	panelChipHeight  = 26.0
	panelChipGap     = 8.0
	panelButtonH     = 44.0
	panelLineSpacing = 1.5
	panelSlide       = 24.0 // 弹出动画的位移
	panelAnimTime    = 0.25 // 弹出动画时长（秒）
)

// TextMeasure 按字体和字号测量文字宽度
type TextMeasure func(s string, size float64, font render.Font) float64

// PanelLayout 面板布局结果
type PanelLayout struct {
	Frame  *render.Frame
	Bounds utils.Rect // 面板本身
	Button utils.Rect // CONTINUE 按钮
}

// LayoutProjectPanel 生成 "UNLOCKED!" 项目面板的绘制命令（窗口坐标）
//
// 面板水平垂直居中，宽度不超过 panelMaxWidth，内容自上而下：
// 标签、标题与年份、描述、技术标签、影响、CONTINUE 按钮。
// age 为面板出现后经过的秒数，用于弹出动画。
func LayoutProjectPanel(p config.Project, windowW, windowH float64, age float64, measure TextMeasure) PanelLayout {
	f := render.NewFrame(64)

	t := utils.EaseOutCubic(utils.Progress(age, panelAnimTime))
	alpha := t

	// 遮罩
	f.FillRect(0, 0, windowW, windowH, render.RGBA(0, 0, 0, 0.8*alpha))

	width := windowW - 2*panelMargin
	if width > panelMaxWidth {
		width = panelMaxWidth
	}
	inner := width - 2*panelPadding
	wrap := func(s string, size float64) []string {
		if s == "" {
			return nil
		}
		return utils.WrapText(s, func(line string) float64 { return measure(line, size, render.FontSans) }, inner)
	}

	descLines := wrap(p.Desc, panelBodySize)
	impactLines := wrap(p.Impact, panelBodySize)
	chips, chipRows := layoutChips(p.TechList(), inner, measure)

	bodyLine := panelBodySize * panelLineSpacing
	height := panelPadding +
		panelLabelSize*panelLineSpacing +
		panelTitleSize*1.4 +
		float64(len(descLines))*bodyLine + panelPadding/2 +
		float64(chipRows)*(panelChipHeight+panelChipGap) + panelPadding/2 +
		panelLabelSize*panelLineSpacing + float64(len(impactLines))*bodyLine + panelPadding +
		panelButtonH + panelPadding

	x := (windowW - width) / 2
	y := (windowH-height)/2 + utils.Lerp(panelSlide, 0, t)
	bounds := utils.Rect{X: x, Y: y, W: width, H: height}

	f.FillRect(x, y, width, height, render.WithAlpha(render.Zinc900, alpha))
	f.StrokeRect(x, y, width, height, 2, render.WithAlpha(render.Violet, alpha))

	cx := x + panelPadding
	cy := y + panelPadding

	f.TextIn(render.FontBold, "UNLOCKED!", cx, cy, panelLabelSize, render.AlignStart, render.WithAlpha(render.VioletGlow, alpha))
	cy += panelLabelSize * panelLineSpacing

	f.TextIn(render.FontBold, p.Title, cx, cy, panelTitleSize, render.AlignStart, render.WithAlpha(render.White, alpha))
	if p.Year != "" {
		yearW := measure(p.Year, panelBodySize, render.FontSans)
		f.TextIn(render.FontSans, p.Year, x+width-panelPadding-yearW, cy+panelTitleSize-panelBodySize, panelBodySize,
			render.AlignStart, render.WithAlpha(render.Gray500, alpha))
	}
	cy += panelTitleSize * 1.4

	for _, line := range descLines {
		f.TextIn(render.FontSans, line, cx, cy, panelBodySize, render.AlignStart, render.WithAlpha(render.Gray400, alpha))
		cy += bodyLine
	}
	cy += panelPadding / 2

	for _, c := range chips {
		cxr, cyr := cx+c.X, cy+c.Y
		f.FillRect(cxr, cyr, c.W, c.H, render.WithAlpha(render.Zinc800, alpha))
		f.StrokeRect(cxr, cyr, c.W, c.H, 1, render.WithAlpha(render.Violet, 0.6*alpha))
		f.TextIn(render.FontSans, c.Label, cxr+c.W/2, cyr+c.H/2, panelChipSize, render.AlignCenter, render.WithAlpha(render.VioletGlow, alpha))
	}
	cy += float64(chipRows)*(panelChipHeight+panelChipGap) + panelPadding/2

	f.TextIn(render.FontSans, "impact:", cx, cy, panelLabelSize, render.AlignStart, render.WithAlpha(render.Gray500, alpha))
	cy += panelLabelSize * panelLineSpacing
	for _, line := range impactLines {
		f.TextIn(render.FontSans, line, cx, cy, panelBodySize, render.AlignStart, render.WithAlpha(render.VioletGlow, alpha))
		cy += bodyLine
	}
	cy += panelPadding

	button := utils.Rect{X: cx, Y: cy, W: inner, H: panelButtonH}
	f.FillRect(button.X, button.Y, button.W, button.H, render.WithAlpha(render.Violet, alpha))
	f.TextIn(render.FontBold, "CONTINUE", button.X+button.W/2, button.Y+button.H/2, panelBodySize, render.AlignCenter,
		render.WithAlpha(render.Black, alpha))

	return PanelLayout{Frame: f, Bounds: bounds, Button: button}
}

// chip 技术标签（相对内容区左上角）
type chip struct {
	Label      string
	X, Y, W, H float64
}

// layoutChips 将标签从左到右排列，超出宽度时换行，返回标签与行数
func layoutChips(labels []string, maxWidth float64, measure TextMeasure) ([]chip, int) {
	if len(labels) == 0 {
		return nil, 0
	}
	chips := make([]chip, 0, len(labels))
	x, y, rows := 0.0, 0.0, 1
	for _, label := range labels {
		w := measure(label, panelChipSize, render.FontSans) + 2*panelChipPadX
		if x > 0 && x+w > maxWidth {
			x = 0
			y += panelChipHeight + panelChipGap
			rows++
		}
		chips = append(chips, chip{Label: label, X: x, Y: y, W: w, H: panelChipHeight})
		x += w + panelChipGap
	}
	return chips, rows
}
