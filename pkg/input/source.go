package input

// Source 输入来源
//
// Poll 每帧调用一次，返回自上次调用以来的事件；
// Detach 之后 Poll 不再产生事件。
type Source interface {
	Poll() []Event
	Detach()
}

// multiSource 合并多个输入来源
type multiSource struct {
	sources []Source
}

// Merge 将多个来源合并为一个，事件按来源顺序拼接
// nil 来源会被跳过
func Merge(sources ...Source) Source {
	m := &multiSource{}
	for _, s := range sources {
		if s != nil {
			m.sources = append(m.sources, s)
		}
	}
	return m
}

func (m *multiSource) Poll() []Event {
	var events []Event
	for _, s := range m.sources {
		events = append(events, s.Poll()...)
	}
	return events
}

func (m *multiSource) Detach() {
	for _, s := range m.sources {
		s.Detach()
	}
}

// Script 按帧回放预先录制的事件，用于测试和 cmd/verify_gameplay
type Script struct {
	frames   [][]Event
	cursor   int
	detached bool
}

// NewScript 创建空脚本
func NewScript() *Script {
	return &Script{}
}

// Then 追加一帧事件
func (s *Script) Then(events ...Event) *Script {
	s.frames = append(s.frames, events)
	return s
}

// Wait 追加 n 个空帧
func (s *Script) Wait(n int) *Script {
	for i := 0; i < n; i++ {
		s.frames = append(s.frames, nil)
	}
	return s
}

// Done 报告脚本是否已全部回放
func (s *Script) Done() bool {
	return s.cursor >= len(s.frames)
}

// Poll 返回当前帧的事件并前进一帧
func (s *Script) Poll() []Event {
	if s.detached || s.Done() {
		return nil
	}
	events := s.frames[s.cursor]
	s.cursor++
	return events
}

// Detach 停止回放
func (s *Script) Detach() {
	s.detached = true
}
