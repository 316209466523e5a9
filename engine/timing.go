package engine

import (
	"time"

	"github.com/lixenwraith/base-ten/constants"
)

// Timing configures the two animation phases
type Timing struct {
	Fly    time.Duration
	Flip   time.Duration
	Settle time.Duration

	// Epsilon is the per-axis delta below which a unit is not slid
	Epsilon float64
}

// DefaultTiming returns the interactive durations
func DefaultTiming() Timing {
	return Timing{
		Fly:     constants.FlyDuration,
		Flip:    constants.FlipDuration,
		Settle:  constants.FlipSettle,
		Epsilon: constants.FlipEpsilon,
	}
}

// InstantTiming completes every transition inside the request call
func InstantTiming() Timing {
	return Timing{Epsilon: constants.FlipEpsilon}
}
