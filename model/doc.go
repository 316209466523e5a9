// Package model holds the structural state of the base-ten manipulative.
//
// A State owns loose units, loose ten-sticks and hundred-blocks. Frames are
// not state: OnesFrames and TensFrames pack the loose sequences into groups
// of ten on every read, so every frame but the last is always full.
//
// Build is the bulk path that rebuilds everything for a target number.
// ComposeOnes, DecomposeTen, ComposeTens and DecomposeHundred are the four
// regrouping moves; each is a no-op returning false when its precondition
// does not hold.
package model
