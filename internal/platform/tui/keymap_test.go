package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-breaker/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", spaceKey(), core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionFire, t0)
	if !h.Held(core.ActionFire, t0.Add(HoldWindow-time.Millisecond)) {
		t.Error("action should be held inside the window")
	}
	if h.Held(core.ActionFire, t0.Add(HoldWindow)) {
		t.Error("action should be released at the end of the window")
	}

	// Auto-repeat extends the window
	h.Press(core.ActionFire, t0.Add(100*time.Millisecond))
	if !h.Held(core.ActionFire, t0.Add(200*time.Millisecond)) {
		t.Error("repeat press should extend the hold")
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(20*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerFillForgetsExpired(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(100, 0)
	h.Press(core.ActionFire, t0)

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(time.Second))
	if frame.Has(core.ActionFire) {
		t.Error("expired action should not be set")
	}
	if len(h.until) != 0 {
		t.Errorf("expired actions should be forgotten, have %d", len(h.until))
	}

	h.Press(core.ActionLeft, t0)
	h.Reset()
	if h.Held(core.ActionLeft, t0) {
		t.Error("Reset should release every key")
	}
}

func TestIsHeld(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire} {
		if !isHeld(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionBack} {
		if isHeld(a) {
			t.Errorf("%v should be one-shot", a)
		}
	}
}
