package config

import (
	"fmt"

	"github.com/gonewx/folio/internal/particle"
	"gopkg.in/yaml.v3"
)

// DefaultTuningPath 内置参数文件路径
const DefaultTuningPath = "data/tuning.yaml"

// Tuning 全部可调参数
//
// 配置文件位置: data/tuning.yaml
type Tuning struct {
	Ambient      AmbientTuning     `yaml:"ambient"`
	World        WorldTuning       `yaml:"world"`
	Starfield    StarfieldTuning   `yaml:"starfield"`
	Collectibles CollectibleTuning `yaml:"collectibles"`
}

// AmbientTuning 背景粒子连线层参数
type AmbientTuning struct {
	PointCount   int            `yaml:"pointCount"`
	LinkDistance float64        `yaml:"linkDistance"` // 连线距离阈值，超过则不连线
	Speed        particle.Range `yaml:"speed"`        // 每轴初始速度范围（像素/秒）
	Radius       particle.Range `yaml:"radius"`
	FadeAlpha    float64        `yaml:"fadeAlpha"` // 每帧覆盖的黑色透明度
	PointAlpha   float64        `yaml:"pointAlpha"`
	LinkAlpha    float64        `yaml:"linkAlpha"` // 距离为 0 时的连线透明度
	LinkWidth    float64        `yaml:"linkWidth"`
}

// WorldTuning 平台游戏世界与角色物理参数
type WorldTuning struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundY       float64 `yaml:"groundY"`
	ActorX        float64 `yaml:"actorX"`
	ActorRestY    float64 `yaml:"actorRestY"`
	ActorSize     float64 `yaml:"actorSize"`
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jumpImpulse"`
	ScrollSpeed   float64 `yaml:"scrollSpeed"`
	MaxScroll     float64 `yaml:"maxScroll"` // 0 表示不设上限
	GridSpacing   float64 `yaml:"gridSpacing"`
	CompleteDelay float64 `yaml:"completeDelay"`
}

// StarfieldTuning 游戏画布内的星空参数
type StarfieldTuning struct {
	Count   int            `yaml:"count"`
	Speed   particle.Range `yaml:"speed"`
	Size    particle.Range `yaml:"size"`
	Twinkle float64        `yaml:"twinkle"`
}

// CollectibleTuning 收集物及其粒子参数
type CollectibleTuning struct {
	FirstX          float64         `yaml:"firstX"`
	Spacing         float64         `yaml:"spacing"`
	Y               float64         `yaml:"y"`
	Size            float64         `yaml:"size"`
	FloatSpeed      float64         `yaml:"floatSpeed"`
	BobAmplitude    float64         `yaml:"bobAmplitude"`
	EmitRate        float64         `yaml:"emitRate"`
	BurstCount      int             `yaml:"burstCount"`
	AmbientParticle AmbientParticle `yaml:"ambientParticle"`
	BurstParticle   BurstParticle   `yaml:"burstParticle"`
}

// AmbientParticle 收集物周围持续发射的粒子
type AmbientParticle struct {
	SpeedX particle.Range `yaml:"speedX"`
	SpeedY particle.Range `yaml:"speedY"`
	Size   particle.Range `yaml:"size"`
	Decay  float64        `yaml:"decay"`
}

// BurstParticle 收集瞬间爆发的粒子（径向速度）
type BurstParticle struct {
	Speed particle.Range `yaml:"speed"`
	Size  particle.Range `yaml:"size"`
	Decay float64        `yaml:"decay"`
}

// DefaultTuning 返回与 data/tuning.yaml 相同的默认参数
func DefaultTuning() *Tuning {
	return &Tuning{
		Ambient: AmbientTuning{
			PointCount:   80,
			LinkDistance: 120,
			Speed:        particle.Range{Min: -15, Max: 15},
			Radius:       particle.Range{Min: 0, Max: 2},
			FadeAlpha:    0.05,
			PointAlpha:   0.3,
			LinkAlpha:    0.15,
			LinkWidth:    0.5,
		},
		World: WorldTuning{
			Width:         800,
			Height:        400,
			GroundY:       350,
			ActorX:        50,
			ActorRestY:    300,
			ActorSize:     40,
			Gravity:       2880,
			JumpImpulse:   -900,
			ScrollSpeed:   300,
			MaxScroll:     0,
			GridSpacing:   50,
			CompleteDelay: 2.0,
		},
		Starfield: StarfieldTuning{
			Count:   100,
			Speed:   particle.Range{Min: 30, Max: 150},
			Size:    particle.Range{Min: 0, Max: 2},
			Twinkle: 0.5,
		},
		Collectibles: CollectibleTuning{
			FirstX:       200,
			Spacing:      300,
			Y:            250,
			Size:         120,
			FloatSpeed:   3,
			BobAmplitude: 10,
			EmitRate:     6,
			BurstCount:   30,
			AmbientParticle: AmbientParticle{
				SpeedX: particle.Range{Min: -20, Max: 20},
				SpeedY: particle.Range{Min: -60, Max: -15},
				Size:   particle.Range{Min: 1, Max: 3},
				Decay:  1.2,
			},
			BurstParticle: BurstParticle{
				Speed: particle.Range{Min: 60, Max: 300},
				Size:  particle.Range{Min: 2, Max: 5},
				Decay: 1.5,
			},
		},
	}
}

// LoadTuning 加载参数文件
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *Tuning: 加载并验证后的参数
//   - error: 读取、解析或验证失败
func LoadTuning(path string) (*Tuning, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTuning(data)
}

// ParseTuning 解析 YAML 参数
// 文件中缺省的字段保留默认值
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate 验证参数有效性
func (t *Tuning) Validate() error {
	a := t.Ambient
	if a.PointCount < 0 {
		return fmt.Errorf("ambient.pointCount must be >= 0, got %d", a.PointCount)
	}
	if a.LinkDistance <= 0 {
		return fmt.Errorf("ambient.linkDistance must be > 0, got %.1f", a.LinkDistance)
	}
	if !a.Speed.Valid() || !a.Radius.Valid() {
		return fmt.Errorf("ambient ranges inverted: speed=%v radius=%v", a.Speed, a.Radius)
	}
	if a.FadeAlpha < 0 || a.FadeAlpha > 1 {
		return fmt.Errorf("ambient.fadeAlpha must be in [0,1], got %.2f", a.FadeAlpha)
	}

	w := t.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", w.Width, w.Height)
	}
	if w.ActorSize <= 0 {
		return fmt.Errorf("world.actorSize must be > 0, got %.1f", w.ActorSize)
	}
	if w.ActorRestY+w.ActorSize > w.Height {
		return fmt.Errorf("actor rest position %.1f (size %.1f) is below the canvas height %.1f",
			w.ActorRestY, w.ActorSize, w.Height)
	}
	if w.Gravity <= 0 {
		return fmt.Errorf("world.gravity must be > 0, got %.1f", w.Gravity)
	}
	if w.JumpImpulse >= 0 {
		return fmt.Errorf("world.jumpImpulse must be < 0 (upwards), got %.1f", w.JumpImpulse)
	}
	if w.ScrollSpeed < 0 {
		return fmt.Errorf("world.scrollSpeed must be >= 0, got %.1f", w.ScrollSpeed)
	}
	if w.MaxScroll < 0 {
		return fmt.Errorf("world.maxScroll must be >= 0 (0 = unbounded), got %.1f", w.MaxScroll)
	}
	if w.CompleteDelay < 0 {
		return fmt.Errorf("world.completeDelay must be >= 0, got %.2f", w.CompleteDelay)
	}

	s := t.Starfield
	if s.Count < 0 || !s.Speed.Valid() || !s.Size.Valid() {
		return fmt.Errorf("starfield invalid: count=%d speed=%v size=%v", s.Count, s.Speed, s.Size)
	}

	c := t.Collectibles
	if c.Size <= 0 {
		return fmt.Errorf("collectibles.size must be > 0, got %.1f", c.Size)
	}
	if c.EmitRate < 0 || c.BurstCount < 0 {
		return fmt.Errorf("collectibles emission invalid: emitRate=%.1f burstCount=%d", c.EmitRate, c.BurstCount)
	}
	if c.AmbientParticle.Decay <= 0 || c.BurstParticle.Decay <= 0 {
		return fmt.Errorf("particle decay must be > 0 (ambient=%.2f burst=%.2f)",
			c.AmbientParticle.Decay, c.BurstParticle.Decay)
	}
	if !c.AmbientParticle.SpeedX.Valid() || !c.AmbientParticle.SpeedY.Valid() ||
		!c.AmbientParticle.Size.Valid() || !c.BurstParticle.Speed.Valid() || !c.BurstParticle.Size.Valid() {
		return fmt.Errorf("collectible particle ranges inverted")
	}

	return nil
}

// ClampScroll 将滚动偏移限制在 [0, MaxScroll]，MaxScroll 为 0 时只限制下界
func (w WorldTuning) ClampScroll(offset float64) float64 {
	if offset < 0 {
		return 0
	}
	if w.MaxScroll > 0 && offset > w.MaxScroll {
		return w.MaxScroll
	}
	return offset
}
