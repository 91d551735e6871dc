package bot

import "math"

// SolverInput is the kinematic state the firing solver reads each call.
// Everything is in degrees and the engine's axes: 0° is north, angles grow
// clockwise, x = sin, y = cos.
type SolverInput struct {
	SelfX, SelfY     float64
	SelfHeading      float64
	GunHeading       float64
	GunTurnRemaining float64

	EnemyBearing  float64
	EnemyDistance float64
	EnemyHeading  float64
	EnemyVelocity float64
}

// firingSolution computes the signed gun turn that points the turret at the
// enemy's predicted position, assuming the enemy keeps its current heading
// and speed (no acceleration or curve modelling).
//
// The projectile speed used for the time-to-impact estimate is
// 20 - 3*min(3, |remainingGunTurn|): a derating of usable bullet speed by
// how far the turret still has to settle. This is a tuned approximation of
// firing readiness, not the engine's ballistics — the two happen to share
// the 20-3x shape, which is what makes the heuristic work.
func firingSolution(in SolverInput) float64 {
	absBearing := (in.SelfHeading + in.EnemyBearing) * math.Pi / 180.0

	enemyX := in.SelfX + in.EnemyDistance*math.Sin(absBearing)
	enemyY := in.SelfY + in.EnemyDistance*math.Cos(absBearing)

	projectileSpeed := 20.0 - 3.0*math.Min(3, math.Abs(in.GunTurnRemaining))
	timeToImpact := in.EnemyDistance / projectileSpeed

	enemyRad := in.EnemyHeading * math.Pi / 180.0
	enemyX += in.EnemyVelocity * math.Sin(enemyRad) * timeToImpact
	enemyY += in.EnemyVelocity * math.Cos(enemyRad) * timeToImpact

	theta := NormalizeAbsolute(math.Atan2(enemyX-in.SelfX, enemyY-in.SelfY) * 180.0 / math.Pi)
	return NormalizeBearing(theta - in.GunHeading)
}

// firePower scales shot power inversely with distance, capped at the
// engine maximum: full-power slugs up close, fast cheap bullets at range
// where travel time dominates hit probability.
func firePower(distance float64) float64 {
	return math.Min(powerNumerator/distance, maxPower)
}

// readyToFire gates the trigger: the gun must be cold and within fireGate
// degrees of its commanded solution.
func readyToFire(gunHeat, gunTurnRemaining float64) bool {
	return gunHeat == 0 && math.Abs(gunTurnRemaining) < fireGate
}
