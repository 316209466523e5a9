package constants

// HUD text
const (
	ModeTextCompose   = " COMPOSE "
	ModeTextDecompose = "DECOMPOSE"

	HelpCompose   = "Compose: click a full frame."
	HelpDecompose = "Decompose: click a ten-stick or a hundred."

	LockBadgeText = " ANIMATING "

	KeyHelp = "c/d mode  Tab toggle  0-9+Enter build  u/t/h quick  m mute  PgUp/PgDn scroll  q quit"
)

// Input field
const (
	// InputMaxDigits bounds the number field; 999 is the largest value
	InputMaxDigits = 3
)

// Glyphs
const (
	GlyphCube      = '■'
	GlyphEmptySlot = '·'
	GlyphGhostSlot = '□'
	GlyphStickSlot = '┆'
)
