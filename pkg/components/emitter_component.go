package components

import "github.com/gonewx/folio/pkg/ecs"

// EmitterComponent 挂在收集物上的粒子发射器
//
// 收集物未被收集时按 SpawnRate 概率发射环境粒子；被收集时停止发射，
// 由收集系统一次性发射 BurstCount 个爆发粒子。
// ActiveParticles 记录该发射器拥有的粒子，粒子系统移除粒子时同步更新。
type EmitterComponent struct {
	Active          bool    // 是否持续发射环境粒子
	SpawnRate       float64 // 每秒期望发射数
	BurstCount      int
	ActiveParticles []ecs.EntityID
	TotalLaunched   int
}

// Release 从 ActiveParticles 中移除指定粒子
func (e *EmitterComponent) Release(id ecs.EntityID) {
	for i, pid := range e.ActiveParticles {
		if pid == id {
			e.ActiveParticles = append(e.ActiveParticles[:i], e.ActiveParticles[i+1:]...)
			return
		}
	}
}
