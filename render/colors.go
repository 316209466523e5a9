package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Default text
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Labels, key help, empty slots

	// Place-value colors, one per column
	RgbHundred = tcell.NewRGBColor(255, 140, 80)  // Warm orange
	RgbTen     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbOne     = tcell.NewRGBColor(0, 200, 0)     // Normal Green

	// Motion
	RgbFlying = tcell.NewRGBColor(255, 255, 0)   // Bright yellow while flying
	RgbGhost  = tcell.NewRGBColor(180, 180, 90)  // Destination slots
	RgbFlip   = tcell.NewRGBColor(255, 255, 200) // Sliding units

	// Containers
	RgbFrame     = tcell.NewRGBColor(90, 90, 110)  // Frame border
	RgbFrameFull = tcell.NewRGBColor(50, 255, 50)  // Full frame, composable
	RgbBlock     = tcell.NewRGBColor(140, 90, 60)  // Hundred-block border
	RgbBlockHot  = tcell.NewRGBColor(255, 120, 120) // Hundred-block in decompose mode

	// Status bar backgrounds
	RgbModeComposeBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModeDecomposeBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbLockBg          = tcell.NewRGBColor(200, 50, 50)   // Red while animating
	RgbInputBg         = tcell.NewRGBColor(50, 50, 50)    // Number field
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)
