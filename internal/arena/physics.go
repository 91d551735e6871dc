package arena

import "math"

// --- Battle physics constants ---
//
// These follow the classic tank-game rules the bots are tuned against:
// per-subsystem turn caps, a trapezoid velocity profile, and a gun that
// trades shot power for bullet speed and cooldown.

const (
	// Arena defaults.
	defaultArenaWidth  = 800.0
	defaultArenaHeight = 600.0

	tankSize   = 36.0            // side of the square hull
	tankRadius = tankSize / 2.0  // hit radius used for bullet collision
	scanRange  = 1200.0          // max radar detection distance

	// Movement model.
	maxSpeed     = 8.0 // px per tick, either direction
	acceleration = 1.0 // px/tick^2 when speeding up
	deceleration = 2.0 // px/tick^2 when braking

	// Per-tick turn caps, degrees.
	maxGunTurn   = 20.0
	maxRadarTurn = 45.0

	// Gun model.
	maxFirePower   = 3.0
	minFirePower   = 0.1
	initialGunHeat = 3.0
	gunCoolingRate = 0.1 // heat removed per tick

	startEnergy = 100.0
)

// maxBodyTurn returns the body turn cap in degrees for the given speed.
// A fast hull turns slower: 10° at rest down to 4° at full speed.
func maxBodyTurn(velocity float64) float64 {
	return 10.0 - 0.75*math.Abs(velocity)
}

// bulletSpeed returns the bullet velocity for a shot of the given power.
func bulletSpeed(power float64) float64 {
	return 20.0 - 3.0*power
}

// bulletDamage returns the energy removed from a struck tank.
// Shots above power 1 carry a bonus.
func bulletDamage(power float64) float64 {
	d := 4.0 * power
	if power > 1.0 {
		d += 2.0 * (power - 1.0)
	}
	return d
}

// heatGenerated returns the gun heat added by firing at the given power.
func heatGenerated(power float64) float64 {
	return 1.0 + power/5.0
}

// wallDamage returns the energy cost of hitting a wall at the given speed.
func wallDamage(velocity float64) float64 {
	return math.Max(0, math.Abs(velocity)/2.0-1.0)
}

// clampPower bounds a requested fire power to the legal range.
func clampPower(power float64) float64 {
	if power < minFirePower {
		return minFirePower
	}
	if power > maxFirePower {
		return maxFirePower
	}
	return power
}

// normalizeRelative wraps an angle in degrees to (-180, 180].
func normalizeRelative(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// normalizeAbsolute wraps an angle in degrees to [0, 360).
func normalizeAbsolute(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// absoluteAngleTo returns the world angle in degrees from (ox,oy) to (tx,ty).
// 0° is north (+y), angles grow clockwise, matching tank headings.
func absoluteAngleTo(ox, oy, tx, ty float64) float64 {
	return normalizeAbsolute(math.Atan2(tx-ox, ty-oy) * 180.0 / math.Pi)
}

// distanceBetween returns the euclidean distance between two points.
func distanceBetween(ox, oy, tx, ty float64) float64 {
	dx := tx - ox
	dy := ty - oy
	return math.Sqrt(dx*dx + dy*dy)
}
