// Package input turns raw device codes into logical actions.
package input

import "testing"

func TestActionSet(t *testing.T) {
	s := NewActionSet(ActionJump, ActionMoveLeft)
	if !s.Has(ActionJump) || !s.Has(ActionMoveLeft) {
		t.Errorf("NewActionSet(Jump, MoveLeft) = %b, want both set", s)
	}
	if s.Has(ActionMoveRight) {
		t.Error("set has MoveRight, want absent")
	}
	if NewActionSet(ActionNone).Has(ActionNone) {
		t.Error("ActionNone stored in set")
	}
	if !s.Any(ActionCancel, ActionJump) {
		t.Error("Any(Cancel, Jump) = false, want true")
	}
}

func TestFromCodes(t *testing.T) {
	defer ResetBindings()
	s := FromCodes([]string{"arrow_left", "unbound"}, []string{"space"})
	if !s.IsHeld(ActionMoveLeft) {
		t.Error("arrow_left held, IsHeld(MoveLeft) = false")
	}
	if s.JustPressed(ActionMoveLeft) {
		t.Error("held-only key reported as just pressed")
	}
	if !s.JustPressed(ActionJump) || !s.IsHeld(ActionJump) {
		t.Error("space pressed, want Jump pressed and held")
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for a := ActionMoveLeft; a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v, want %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("ParseAction(none) ok, want rejected")
	}
}

func TestApplyOverrides(t *testing.T) {
	defer ResetBindings()
	err := ApplyOverrides(map[string]string{"k": "jump", "p": "fly"})
	if err == nil {
		t.Error("ApplyOverrides with unknown action returned nil error")
	}
	if MapCode("k") != ActionJump {
		t.Errorf("MapCode(k) = %v, want jump", MapCode("k"))
	}
	if MapCode("p") != ActionNone {
		t.Errorf("MapCode(p) = %v, want none", MapCode("p"))
	}
}

func TestApplyOverrides_KeepsReservedCodes(t *testing.T) {
	defer ResetBindings()
	if err := ApplyOverrides(map[string]string{"escape": "move_left"}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if got := MapCode("escape"); got != ActionCancel {
		t.Errorf("MapCode(escape) = %v, want cancel", got)
	}
	if got := MapCode("arrow_left"); got != ActionMoveLeft {
		t.Errorf("MapCode(arrow_left) = %v, want move_left", got)
	}
}

func TestGetBindingsByAction(t *testing.T) {
	defer ResetBindings()
	codes := GetBindingsByAction()[ActionMoveLeft]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
	if len(codes) == 0 {
		t.Error("no codes bound to MoveLeft")
	}
}
