package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic intents
// Mouse clicks fire on the press edge; tcell repeats button state on motion
type Machine struct {
	keyTable *KeyTable
	buttons  tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset clears pending mouse state
func (m *Machine) Reset() {
	m.buttons = tcell.ButtonNone
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if in, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return &in
		}
		return nil
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		return &Intent{Type: IntentDigit, Char: r}
	}
	if in, ok := m.keyTable.Runes[r]; ok {
		return &in
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	btn := ev.Buttons()
	pressed := btn &^ m.buttons
	m.buttons = btn &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	x, y := ev.Position()
	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentScroll, Scroll: ScrollUp}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentScroll, Scroll: ScrollDown}
	case pressed&tcell.Button1 != 0:
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	return nil
}

// NewMachineWithTable creates a machine over a customized key table
func NewMachineWithTable(table *KeyTable) *Machine {
	return &Machine{keyTable: table}
}
