// Package bot implements the per-tick decision engine for a duelling tank:
// an oscillating radar sweep that re-acquires a tracked enemy, an evasive
// strafing movement pattern, and a linear-intercept firing solution.
//
// The engine is synchronous and stateless across ticks except for two
// direction flags: every decision is recomputed from the current sensor
// snapshot, so a bad tick self-corrects on the next one.
package bot

import "math"

// NormalizeBearing wraps an angle in degrees to the signed range
// (-180, 180] by repeated ±360 adjustment. It is idempotent: an already
// normalized angle is returned unchanged.
func NormalizeBearing(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// NormalizeAbsolute wraps an angle in degrees to the range [0, 360).
func NormalizeAbsolute(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
