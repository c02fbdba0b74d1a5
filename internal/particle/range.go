// Package particle provides the value syntax shared by particle tuning entries.
//
// 与粒子配置文件保持同一种写法：
//   - 固定值: "1.5"   → Min=1.5, Max=1.5
//   - 范围:   "[0 2]" → Min=0,   Max=2
package particle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range 表示一个闭区间 [Min, Max]，生成粒子时在区间内均匀取值
type Range struct {
	Min float64
	Max float64
}

// Fixed 返回 Min == Max 的区间
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// ParseRange 解析固定值或 "[min max]" 格式的范围字符串
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		if len(parts) != 2 {
			return Range{}, fmt.Errorf("range %q must have exactly two values", s)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: bad min: %w", s, err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: bad max: %w", s, err)
		}
		return Range{Min: lo, Max: hi}, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("bad value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// String 以配置文件的写法输出区间
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// Valid 报告区间是否非倒置
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Random 在区间内取一个随机值
// rng 为 nil 时使用全局随机源
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min >= r.Max {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.Float64()*(r.Max-r.Min)
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// UnmarshalYAML 支持在 YAML 中写数字或范围字符串
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar, got kind %d", node.Line, node.Kind)
	}
	parsed, err := ParseRange(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML 输出与 UnmarshalYAML 对称的写法
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
