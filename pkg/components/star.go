package components

// StarComponent 游戏画布内的背景星星
// 向左漂移，离开左边缘后从右边缘重新出现
type StarComponent struct {
	Speed  float64 // 像素/秒
	Size   float64
	Seed   float64 // 闪烁噪声的采样偏移，让每颗星的闪烁节奏不同
	Bright float64 // 当前亮度 [0,1]，由星空系统每帧更新
}
