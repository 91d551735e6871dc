package bot

// strafeTurn returns the body turn that points the hull roughly
// perpendicular to the enemy: 90° off the bearing, biased strafeInset
// degrees inward in the current move direction so the orbit closes.
func strafeTurn(enemyBearing float64, moveDir int) float64 {
	return NormalizeBearing(enemyBearing + 90 - strafeInset*float64(moveDir))
}

// shouldReverse reports whether the strafe direction flips this tick:
// on the periodic reversal beat, or immediately when velocity is exactly
// zero — the engine clamps a tank that drove into a wall or another hull,
// and reversing is the only way out of the stall.
func shouldReverse(tick int, velocity float64) bool {
	return tick%reversalPeriod == 0 || velocity == 0
}
