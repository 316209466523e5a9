package input

import (
	"maps"
	"slices"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": {},

	// System
	"quit":        {Type: IntentQuit},
	"toggle_mute": {Type: IntentToggleMute},

	// Modes
	"mode_compose":   {Type: IntentModeCompose},
	"mode_decompose": {Type: IntentModeDecompose},
	"mode_toggle":    {Type: IntentModeToggle},

	// Number field
	"build":     {Type: IntentBuild},
	"backspace": {Type: IntentBackspace},

	// Quick actions
	"quick_ones":    {Type: IntentQuickOnes},
	"quick_tens":    {Type: IntentQuickTens},
	"quick_hundred": {Type: IntentQuickHundred},

	// Scrolling
	"scroll_up":        {Type: IntentScroll, Scroll: ScrollUp},
	"scroll_down":      {Type: IntentScroll, Scroll: ScrollDown},
	"scroll_page_up":   {Type: IntentScroll, Scroll: ScrollUp, Page: true},
	"scroll_page_down": {Type: IntentScroll, Scroll: ScrollDown, Page: true},
}

// ActionNames returns the bindable action names, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}
