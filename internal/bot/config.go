package bot

import "image/color"

// Tuning constants for the three decision policies. These are behavioural
// parameters, not engine physics; change them and the bot fights
// differently but stays legal.
const (
	// Radar: degrees of overshoot past the enemy bearing per tracking
	// sweep. The radar swings past the target and re-detects it on the
	// way back, oscillating around the last known bearing.
	radarOvershoot = 30.0

	// Radar: one-directional sweep issued per idle loop while searching.
	searchSweep = 360.0

	// Radar: ticks without a detection before a tracked target is
	// considered lost and the radar falls back to the search sweep.
	trackTimeout = 8

	// Movement: offset from true perpendicular toward the enemy, degrees.
	// Strafing at 90° never closes distance; biasing 15° in keeps the
	// orbit slowly tightening.
	strafeInset = 15.0

	// Movement: strafe direction reverses every reversalPeriod ticks, and
	// immediately on a stall (velocity exactly zero means the engine
	// clamped us against a wall or another tank).
	reversalPeriod = 20
	strafeLeg      = 150.0

	// Gun: power is powerNumerator/distance capped at maxPower — full
	// power inside ~133px, cheaper faster bullets beyond.
	powerNumerator = 400.0
	maxPower       = 3.0

	// Gun: fire only when the turret is within this many degrees of the
	// solution. Shots while the gun is still swinging are wasted.
	fireGate = 10.0
)

// Appearance for the duellist: black hull, light grey gun, blue radar,
// red bullets.
var (
	bodyColor   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	gunColor    = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	radarColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	bulletColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)
