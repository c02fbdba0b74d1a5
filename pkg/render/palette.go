package render

import "image/color"

// 页面配色（violet 主题）
var (
	Black      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Violet     = color.NRGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 255} // #8b5cf6
	VioletGlow = color.NRGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 255} // #a78bfa
	Ground     = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255} // #1a1a1a
	Zinc900    = color.NRGBA{R: 0x18, G: 0x18, B: 0x1b, A: 255}
	Zinc800    = color.NRGBA{R: 0x27, G: 0x27, B: 0x2a, A: 255}
	Gray400    = color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 255}
	Gray500    = color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 255}
)

// WithAlpha 返回替换透明度后的颜色
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	return RGBA(c.R, c.G, c.B, alpha)
}
