package scenes

import (
	"fmt"

	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/render"
	"github.com/gonewx/folio/pkg/utils"
)

const (
	summaryHeadingSize = 32.0
	summaryTitleSize   = 17.0
	summaryBodySize    = 13.0
	summaryCardGap     = 16.0
	summaryPadding     = 16.0
	summaryColumns     = 3
)

// LayoutSummary 生成 "ALL COLLECTED!" 总结视图的绘制命令（画布坐标）
//
// 替代游戏画布显示：标题、按收集顺序排列的项目卡片、重新开始提示。
// 卡片每行最多 summaryColumns 张。
func LayoutSummary(collected []config.Project, canvasW, canvasH float64, measure TextMeasure) *render.Frame {
	f := render.NewFrame(64)
	f.FillRect(0, 0, canvasW, canvasH, render.Black)
	f.StrokeRect(0, 0, canvasW, canvasH, 2, render.Violet)

	y := summaryPadding + 8
	f.TextIn(render.FontBold, "ALL COLLECTED!", canvasW/2, y+summaryHeadingSize/2, summaryHeadingSize, render.AlignCenter, render.VioletGlow)
	y += summaryHeadingSize + summaryPadding

	cols := summaryColumns
	if len(collected) < cols {
		cols = len(collected)
	}
	if cols > 0 {
		cardW := (canvasW - 2*summaryPadding - float64(cols-1)*summaryCardGap) / float64(cols)
		rows := (len(collected) + cols - 1) / cols
		footer := summaryBodySize * 3
		cardH := (canvasH - y - summaryPadding - footer - float64(rows-1)*summaryCardGap) / float64(rows)

		for i, p := range collected {
			col, row := i%cols, i/cols
			cx := summaryPadding + float64(col)*(cardW+summaryCardGap)
			cy := y + float64(row)*(cardH+summaryCardGap)
			drawSummaryCard(f, p, cx, cy, cardW, cardH, measure)
		}
	}

	f.TextIn(render.FontSans, fmt.Sprintf("%d projects unlocked · press R to play again", len(collected)),
		canvasW/2, canvasH-summaryPadding-summaryBodySize/2, summaryBodySize, render.AlignCenter, render.Gray500)
	return f
}

func drawSummaryCard(f *render.Frame, p config.Project, x, y, w, h float64, measure TextMeasure) {
	f.FillRect(x, y, w, h, render.Zinc900)
	f.StrokeRect(x, y, w, h, 1, render.WithAlpha(render.Violet, 0.5))

	inner := w - 2*summaryPadding
	cx, cy := x+summaryPadding, y+summaryPadding
	bottom := y + h - summaryPadding

	for _, line := range utils.WrapText(p.Title, func(s string) float64 { return measure(s, summaryTitleSize, render.FontBold) }, inner) {
		if cy+summaryTitleSize > bottom {
			return
		}
		f.TextIn(render.FontBold, line, cx, cy, summaryTitleSize, render.AlignStart, render.White)
		cy += summaryTitleSize * 1.3
	}
	if p.Year != "" {
		f.TextIn(render.FontSans, p.Year, cx, cy, summaryBodySize, render.AlignStart, render.Gray500)
		cy += summaryBodySize * 1.5
	}
	for _, line := range utils.WrapText(p.Impact, func(s string) float64 { return measure(s, summaryBodySize, render.FontSans) }, inner) {
		if line == "" {
			continue
		}
		if cy+summaryBodySize > bottom {
			return
		}
		f.TextIn(render.FontSans, line, cx, cy, summaryBodySize, render.AlignStart, render.VioletGlow)
		cy += summaryBodySize * 1.5
	}
}
