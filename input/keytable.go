package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:      {Type: IntentQuit},
			tcell.KeyCtrlQ:      {Type: IntentQuit},
			tcell.KeyEscape:     {Type: IntentQuit},
			tcell.KeyTab:        {Type: IntentModeToggle},
			tcell.KeyEnter:      {Type: IntentBuild},
			tcell.KeyBackspace:  {Type: IntentBackspace},
			tcell.KeyBackspace2: {Type: IntentBackspace},
			tcell.KeyPgUp:       {Type: IntentScroll, Scroll: ScrollUp, Page: true},
			tcell.KeyPgDn:       {Type: IntentScroll, Scroll: ScrollDown, Page: true},
			tcell.KeyUp:         {Type: IntentScroll, Scroll: ScrollUp},
			tcell.KeyDown:       {Type: IntentScroll, Scroll: ScrollDown},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'c': {Type: IntentModeCompose},
			'd': {Type: IntentModeDecompose},
			'u': {Type: IntentQuickOnes},
			't': {Type: IntentQuickTens},
			'h': {Type: IntentQuickHundred},
			'm': {Type: IntentToggleMute},
			'k': {Type: IntentScroll, Scroll: ScrollUp},
			'j': {Type: IntentScroll, Scroll: ScrollDown},
		},
	}
}
