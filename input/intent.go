package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Mode switching
	IntentModeCompose   // c
	IntentModeDecompose // d
	IntentModeToggle    // Tab

	// Number field
	IntentDigit     // 0-9
	IntentBackspace // Backspace
	IntentBuild     // Enter

	// Quick actions
	IntentQuickOnes    // u: compose the first full ones-frame
	IntentQuickTens    // t: compose the first full tens-frame or decompose the last stick
	IntentQuickHundred // h: decompose the last hundred

	// Navigation
	IntentScroll // PgUp/PgDn, arrows, wheel

	// Mouse
	IntentClick // Left-button press
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentModeCompose:
		return "mode-compose"
	case IntentModeDecompose:
		return "mode-decompose"
	case IntentModeToggle:
		return "mode-toggle"
	case IntentDigit:
		return "digit"
	case IntentBackspace:
		return "backspace"
	case IntentBuild:
		return "build"
	case IntentQuickOnes:
		return "quick-ones"
	case IntentQuickTens:
		return "quick-tens"
	case IntentQuickHundred:
		return "quick-hundred"
	case IntentScroll:
		return "scroll"
	case IntentClick:
		return "click"
	default:
		return "none"
	}
}

// ScrollDir for content navigation
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Char   rune      // Digit for IntentDigit
	X, Y   int       // Screen cell for IntentClick
	Scroll ScrollDir // Direction for IntentScroll
	Page   bool      // IntentScroll moves a whole page
}
