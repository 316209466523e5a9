package input

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Named keys accepted in bindings
var keyNames = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
}

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Bind overlays key → action bindings onto the table
// Digits stay reserved for the number field; action "none" unbinds
func (t *KeyTable) Bind(bindings map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		action := strings.ToLower(strings.TrimSpace(bindings[name]))
		in, ok := actionRegistry[action]
		if !ok {
			return fmt.Errorf("keymap %q: %w %q", name, ErrUnknownAction, action)
		}

		if k, ok := keyNames[strings.ToLower(name)]; ok {
			if in.Type == IntentNone {
				delete(t.SpecialKeys, k)
			} else {
				t.SpecialKeys[k] = in
			}
			continue
		}

		r, err := parseRune(name)
		if err != nil {
			return fmt.Errorf("keymap %q: %w", name, err)
		}
		if in.Type == IntentNone {
			delete(t.Runes, r)
		} else {
			t.Runes[r] = in
		}
	}
	return nil
}

func parseRune(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, ErrUnknownKey
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r >= '0' && r <= '9' {
		return 0, ErrUnknownKey
	}
	return r, nil
}
