package constants

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 256
)

// Animation timing
const (
	// FlyDuration is how long units take to reach the slots of a new container
	FlyDuration = 450 * time.Millisecond

	// FlipDuration is how long repacked units slide to their new slots
	FlipDuration = 260 * time.Millisecond

	// FlipSettle is the hold after the slide before input unlocks
	FlipSettle = 30 * time.Millisecond

	// FlipEpsilon is the per-axis delta (cells) below which a unit does not slide
	FlipEpsilon = 0.5
)
