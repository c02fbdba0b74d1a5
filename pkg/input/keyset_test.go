package input

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
		ok   bool
	}{
		{"arrow up", "ArrowUp", KeyArrowUp, true},
		{"space", " ", KeySpace, true},
		{"lower w", "w", KeyW, true},
		{"upper W not recognized", "W", "", false},
		{"enter not recognized", "Enter", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKey(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeySetPressIsEdgeTriggered(t *testing.T) {
	ks := NewKeySet()

	if !ks.Apply(Press(KeySpace)) {
		t.Fatal("first press should report a transition")
	}
	if ks.Apply(Press(KeySpace)) {
		t.Error("repeated press while held should not report a transition")
	}
	if !ks.IsDown(KeySpace) {
		t.Error("space should be down")
	}

	ks.Apply(Release(KeySpace))
	if ks.IsDown(KeySpace) {
		t.Error("space should be up after release")
	}
	if !ks.Apply(Press(KeySpace)) {
		t.Error("press after release should report a transition")
	}
}

func TestKeySetHoldsPerOrigin(t *testing.T) {
	ks := NewKeySet()
	right := Press(KeyArrowRight)

	if !ks.Apply(right.From(OriginKeyboard)) {
		t.Fatal("keyboard press should report a transition")
	}
	// 触屏追加按住同一个键不是新的边沿
	if ks.Apply(right.From(OriginTouch)) {
		t.Error("second origin pressing a held key should not report a transition")
	}

	// 触屏松开后键盘仍按住
	ks.Apply(Release(KeyArrowRight).From(OriginTouch))
	if !ks.IsDown(KeyArrowRight) || !ks.Active(ActionRight) {
		t.Fatal("touch release must not clear a key the keyboard still holds")
	}

	// 未按住的来源抬起没有影响
	ks.Apply(Release(KeyArrowRight).From(OriginScript))
	if !ks.IsDown(KeyArrowRight) {
		t.Error("release from an origin that never pressed should be ignored")
	}

	ks.Apply(Release(KeyArrowRight).From(OriginKeyboard))
	if ks.IsDown(KeyArrowRight) || ks.Len() != 0 {
		t.Error("key should be up once every origin released it")
	}
	if !ks.Apply(right.From(OriginTouch)) {
		t.Error("press after full release should report a transition")
	}
}

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{OriginScript, "script"},
		{OriginKeyboard, "keyboard"},
		{OriginTouch, "touch"},
		{Origin(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("Origin(%d).String() = %q, want %q", int(tt.origin), got, tt.want)
		}
	}
}

func TestKeySetIgnoresUnknownKeys(t *testing.T) {
	ks := NewKeySet()
	if ks.Apply(Press(Key("Enter"))) {
		t.Error("unknown key should not report a transition")
	}
	if ks.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ks.Len())
	}
}

func TestKeySetActions(t *testing.T) {
	tests := []struct {
		name   string
		keys   []Key
		action Action
		want   bool
	}{
		{"arrow left", []Key{KeyArrowLeft}, ActionLeft, true},
		{"a is left", []Key{KeyA}, ActionLeft, true},
		{"d is right", []Key{KeyD}, ActionRight, true},
		{"w is jump", []Key{KeyW}, ActionJump, true},
		{"arrow up is jump", []Key{KeyArrowUp}, ActionJump, true},
		{"space is jump", []Key{KeySpace}, ActionJump, true},
		{"s is nothing", []Key{KeyS}, ActionJump, false},
		{"arrow down is not left", []Key{KeyArrowDown}, ActionLeft, false},
		{"nothing held", nil, ActionRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := NewKeySet()
			for _, k := range tt.keys {
				ks.Apply(Press(k))
			}
			if got := ks.Active(tt.action); got != tt.want {
				t.Errorf("Active(%s) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestKeySetClear(t *testing.T) {
	ks := NewKeySet()
	ks.Apply(Press(KeyA))
	ks.Apply(Press(KeyD))
	ks.Clear()
	if ks.Len() != 0 || ks.Active(ActionLeft) {
		t.Error("Clear should release every key")
	}
}

func TestTriggers(t *testing.T) {
	if !Triggers(KeySpace, ActionJump) {
		t.Error("space should trigger jump")
	}
	if Triggers(KeySpace, ActionLeft) {
		t.Error("space should not trigger left")
	}
	if len(KeysFor(ActionJump)) != 3 {
		t.Errorf("jump should map to 3 keys, got %d", len(KeysFor(ActionJump)))
	}
}
