package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blindrace/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"right arrow dodges left", keyMsg(tea.KeyRight), core.ActionDodgeLeft},
		{"left arrow dodges right", keyMsg(tea.KeyLeft), core.ActionDodgeRight},
		{"up arrow dodges center", keyMsg(tea.KeyUp), core.ActionDodgeCenter},
		{"down arrow dodges above", keyMsg(tea.KeyDown), core.ActionDodgeAbove},
		{"space breaks", keyMsg(tea.KeySpace), core.ActionBreak},
		{"enter breaks", keyMsg(tea.KeyEnter), core.ActionBreak},
		{"ctrl+space breaks", keyMsg(tea.KeyCtrlAt), core.ActionBreak},
		{"home toggles music", keyMsg(tea.KeyHome), core.ActionToggleMusic},
		{"v queries lives", runeMsg('v'), core.ActionQueryLives},
		{"V queries lives", runeMsg('V'), core.ActionQueryLives},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapKey(tt.msg)
			if !ok {
				t.Fatalf("MapKey(%q) not mapped", tt.msg.String())
			}
			if ev.Kind != core.EventKey || ev.Action != tt.want {
				t.Errorf("MapKey(%q) = %+v, want key %v", tt.msg.String(), ev, tt.want)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{keyMsg(tea.KeyEsc), keyMsg(tea.KeyCtrlC)} {
		ev, ok := km.MapKey(msg)
		if !ok || ev.Kind != core.EventQuit {
			t.Errorf("MapKey(%q) = %+v, want quit", msg.String(), ev)
		}
	}
}

func TestMapKeyIgnoresOthers(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeMsg('x'), runeMsg('q'), keyMsg(tea.KeyTab)} {
		if ev, ok := km.MapKey(msg); ok {
			t.Errorf("MapKey(%q) = %+v, want unmapped", msg.String(), ev)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyMsg(tea.KeyUp), MenuActionUp},
		{runeMsg('k'), MenuActionUp},
		{keyMsg(tea.KeyDown), MenuActionDown},
		{runeMsg('j'), MenuActionDown},
		{keyMsg(tea.KeyHome), MenuActionFirst},
		{keyMsg(tea.KeyEnd), MenuActionLast},
		{keyMsg(tea.KeyEnter), MenuActionSelect},
		{keyMsg(tea.KeyEsc), MenuActionBack},
		{runeMsg('q'), MenuActionQuit},
		{keyMsg(tea.KeyCtrlC), MenuActionQuit},
		{runeMsg('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
