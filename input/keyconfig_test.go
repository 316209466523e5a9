package input

import (
	"errors"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBindOverridesAndUnbinds(t *testing.T) {
	table := DefaultKeyTable()
	err := table.Bind(map[string]string{
		"x":     "quit",
		"q":     "none",
		"space": "mode_toggle",
		"F":     "quick_ones",
		"enter": "build",
		"tab":   "none",
	})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	m := NewMachineWithTable(table)
	if got := m.Process(char('x')); got == nil || got.Type != IntentQuit {
		t.Errorf("x = %v, want quit", got)
	}
	if got := m.Process(char('q')); got != nil {
		t.Errorf("q = %+v, want unbound", *got)
	}
	if got := m.Process(char(' ')); got == nil || got.Type != IntentModeToggle {
		t.Errorf("space = %v, want mode toggle", got)
	}
	if got := m.Process(char('F')); got == nil || got.Type != IntentQuickOnes {
		t.Errorf("F = %v, want quick ones", got)
	}
	if got := m.Process(key(tcell.KeyTab)); got != nil {
		t.Errorf("tab = %+v, want unbound", *got)
	}
	if got := m.Process(char('4')); got == nil || got.Type != IntentDigit {
		t.Errorf("digits must stay bound to the number field, got %v", got)
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		want     error
	}{
		{"unknown action", map[string]string{"x": "explode"}, ErrUnknownAction},
		{"multi-rune key", map[string]string{"xy": "quit"}, ErrUnknownKey},
		{"digit key", map[string]string{"5": "quit"}, ErrUnknownKey},
		{"empty key", map[string]string{"": "quit"}, ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultKeyTable().Bind(tt.bindings)
			if !errors.Is(err, tt.want) {
				t.Errorf("Bind = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestActionNamesSorted(t *testing.T) {
	names := ActionNames()
	if !slices.IsSorted(names) {
		t.Errorf("ActionNames not sorted: %v", names)
	}
	if !slices.Contains(names, "quick_hundred") || !slices.Contains(names, "none") {
		t.Errorf("ActionNames missing entries: %v", names)
	}
}
