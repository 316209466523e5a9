package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"q quits", char('q'), Intent{Type: IntentQuit}},
		{"escape quits", key(tcell.KeyEscape), Intent{Type: IntentQuit}},
		{"ctrl-c quits", key(tcell.KeyCtrlC), Intent{Type: IntentQuit}},
		{"c compose", char('c'), Intent{Type: IntentModeCompose}},
		{"d decompose", char('d'), Intent{Type: IntentModeDecompose}},
		{"tab toggles", key(tcell.KeyTab), Intent{Type: IntentModeToggle}},
		{"digit", char('7'), Intent{Type: IntentDigit, Char: '7'}},
		{"zero", char('0'), Intent{Type: IntentDigit, Char: '0'}},
		{"enter builds", key(tcell.KeyEnter), Intent{Type: IntentBuild}},
		{"backspace", key(tcell.KeyBackspace2), Intent{Type: IntentBackspace}},
		{"u", char('u'), Intent{Type: IntentQuickOnes}},
		{"t", char('t'), Intent{Type: IntentQuickTens}},
		{"h", char('h'), Intent{Type: IntentQuickHundred}},
		{"m mutes", char('m'), Intent{Type: IntentToggleMute}},
		{"page down", key(tcell.KeyPgDn), Intent{Type: IntentScroll, Scroll: ScrollDown, Page: true}},
		{"page up", key(tcell.KeyPgUp), Intent{Type: IntentScroll, Scroll: ScrollUp, Page: true}},
		{"arrow down", key(tcell.KeyDown), Intent{Type: IntentScroll, Scroll: ScrollDown}},
	}

	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			if got == nil {
				t.Fatalf("Process returned nil, want %s", tt.want.Type)
			}
			if *got != tt.want {
				t.Errorf("Process = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	m := NewMachine()
	for _, ev := range []tcell.Event{char('z'), char(' '), key(tcell.KeyF5)} {
		if got := m.Process(ev); got != nil {
			t.Errorf("Process(%v) = %+v, want nil", ev, *got)
		}
	}
}

func TestResize(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Fatalf("Process(resize) = %v, want resize intent", got)
	}
}

func TestClickFiresOnPressEdge(t *testing.T) {
	m := NewMachine()

	got := m.Process(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if got == nil || got.Type != IntentClick || got.X != 12 || got.Y != 7 {
		t.Fatalf("press = %+v, want click at 12,7", got)
	}

	// drag with the button held is not a second click
	if got := m.Process(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone)); got != nil {
		t.Errorf("drag = %+v, want nil", *got)
	}

	if got := m.Process(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("release = %+v, want nil", *got)
	}

	got = m.Process(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	if got == nil || got.Type != IntentClick {
		t.Fatalf("second press = %+v, want click", got)
	}
}

func TestWheelScrolls(t *testing.T) {
	m := NewMachine()

	got := m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if got == nil || got.Type != IntentScroll || got.Scroll != ScrollDown || got.Page {
		t.Fatalf("wheel down = %+v", got)
	}
	got = m.Process(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if got == nil || got.Scroll != ScrollUp {
		t.Fatalf("wheel up = %+v", got)
	}
}

func TestRightButtonIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone)); got != nil {
		t.Errorf("right press = %+v, want nil", *got)
	}
}
