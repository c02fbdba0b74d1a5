package components

// ActorComponent 玩家控制的方块角色
// 每个游戏实例只有一个
type ActorComponent struct {
	VelocityY float64 // 垂直速度（像素/秒），负值向上
	Airborne  bool    // 离地标志，为 true 时忽略跳跃输入
	Size      float64 // 正方形边长
}
