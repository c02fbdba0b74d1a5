package components

// TimerComponent 一次性延时计时器
// 用于最后一个收集物被收集后延迟进入完成状态
type TimerComponent struct {
	Name        string  // 计时器名称，如 "complete"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Cancelled   bool    // 被取消的计时器不再计时，也不会触发
}
