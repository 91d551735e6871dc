package arena

import (
	"image/color"
	"math"
)

// commandBatch holds the intents a robot queued since its last Execute.
// Turn and move intents are "set" semantics: issuing a new turn overwrites
// whatever remained of the previous one once the batch is flushed.
type commandBatch struct {
	bodyTurn  float64
	gunTurn   float64
	radarTurn float64
	distance  float64
	firePower float64

	hasBodyTurn  bool
	hasGunTurn   bool
	hasRadarTurn bool
	hasMove      bool
	hasFire      bool
}

// Appearance is the cosmetic paint job applied once at setup.
type Appearance struct {
	Body   color.RGBA
	Gun    color.RGBA
	Radar  color.RGBA
	Bullet color.RGBA
}

// Tank is one combatant: kinematic state, remaining-command accumulators,
// and the queued batch for the current tick. It implements Controller.
type Tank struct {
	engine *Engine
	robot  Robot

	name  string
	alive bool

	x, y         float64
	heading      float64 // body, absolute degrees
	gunHeading   float64
	radarHeading float64
	velocity     float64
	energy       float64
	gunHeat      float64

	// Remaining portions of executed commands, consumed by the physics step.
	bodyTurnRemaining  float64
	gunTurnRemaining   float64
	radarTurnRemaining float64
	distanceRemaining  float64

	// Pending batch, flushed by Execute.
	batch commandBatch

	// Frame-composition flags: when set, the engine counter-rotates the
	// mounted subsystem so a body (or gun) turn does not drag it along.
	adjustRadarForGun bool
	adjustGunForBody  bool

	appearance Appearance

	// Scan event detected during the previous physics step, delivered at
	// the start of the next tick.
	pendingScan *Scan

	// Radar heading at the start of the last physics step, used to compute
	// the swept arc for detection.
	prevRadarHeading float64

	setupDone bool

	// Per-round tallies surfaced in reports.
	shotsFired int
	shotsHit   int
	wallHits   int
}

// NewTank creates a tank at the given position and heading with all three
// subsystems aligned.
func NewTank(name string, robot Robot, x, y, heading float64) *Tank {
	return &Tank{
		name:         name,
		robot:        robot,
		alive:        true,
		x:            x,
		y:            y,
		heading:      normalizeAbsolute(heading),
		gunHeading:   normalizeAbsolute(heading),
		radarHeading: normalizeAbsolute(heading),
		energy:       startEnergy,
		gunHeat:      initialGunHeat,
		appearance: Appearance{
			Body:   color.RGBA{R: 70, G: 90, B: 70, A: 255},
			Gun:    color.RGBA{R: 140, G: 140, B: 140, A: 255},
			Radar:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
			Bullet: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}
}

// Name returns the tank's display name.
func (t *Tank) Name() string { return t.name }

// Alive reports whether the tank still has energy.
func (t *Tank) Alive() bool { return t.alive }

// Appearance returns the configured paint job.
func (t *Tank) Appearance() Appearance { return t.appearance }

// ShotsFired returns the number of bullets fired this round.
func (t *Tank) ShotsFired() int { return t.shotsFired }

// ShotsHit returns the number of bullets that struck an enemy.
func (t *Tank) ShotsHit() int { return t.shotsHit }

// WallHits returns the number of wall collisions this round.
func (t *Tank) WallHits() int { return t.wallHits }

// --- Controller: reads ---

func (t *Tank) X() float64            { return t.x }
func (t *Tank) Y() float64            { return t.y }
func (t *Tank) Heading() float64      { return t.heading }
func (t *Tank) GunHeading() float64   { return t.gunHeading }
func (t *Tank) RadarHeading() float64 { return t.radarHeading }
func (t *Tank) Velocity() float64     { return t.velocity }
func (t *Tank) Energy() float64       { return t.energy }
func (t *Tank) Tick() int             { return t.engine.tick }

func (t *Tank) TurnRemaining() float64      { return t.bodyTurnRemaining }
func (t *Tank) GunTurnRemaining() float64   { return t.gunTurnRemaining }
func (t *Tank) RadarTurnRemaining() float64 { return t.radarTurnRemaining }
func (t *Tank) GunHeat() float64            { return t.gunHeat }

func (t *Tank) ArenaWidth() float64  { return t.engine.width }
func (t *Tank) ArenaHeight() float64 { return t.engine.height }

// --- Controller: queued writes ---

func (t *Tank) TurnRight(deg float64) {
	t.batch.bodyTurn = deg
	t.batch.hasBodyTurn = true
}

func (t *Tank) TurnGunRight(deg float64) {
	t.batch.gunTurn = deg
	t.batch.hasGunTurn = true
}

func (t *Tank) TurnRadarRight(deg float64) {
	t.batch.radarTurn = deg
	t.batch.hasRadarTurn = true
}

func (t *Tank) Ahead(distance float64) {
	t.batch.distance = distance
	t.batch.hasMove = true
}

func (t *Tank) Fire(power float64) {
	t.batch.firePower = clampPower(power)
	t.batch.hasFire = true
}

// Execute flushes the queued batch into the remaining-command accumulators.
// Until Execute is called, queued commands have no effect; afterwards each
// issued turn fully overwrites the prior remaining turn for its subsystem.
func (t *Tank) Execute() {
	if t.batch.hasBodyTurn {
		t.bodyTurnRemaining = t.batch.bodyTurn
	}
	if t.batch.hasGunTurn {
		t.gunTurnRemaining = t.batch.gunTurn
	}
	if t.batch.hasRadarTurn {
		t.radarTurnRemaining = t.batch.radarTurn
	}
	if t.batch.hasMove {
		t.distanceRemaining = t.batch.distance
	}
	if t.batch.hasFire && t.gunHeat == 0 && t.alive {
		t.engine.spawnBullet(t, t.batch.firePower)
	}
	t.batch = commandBatch{}
}

// --- Controller: one-time setup ---

func (t *Tank) SetColors(body, gun, radar, bullet color.RGBA) {
	if t.setupDone {
		return
	}
	t.appearance = Appearance{Body: body, Gun: gun, Radar: radar, Bullet: bullet}
}

func (t *Tank) SetAdjustRadarForGunTurn(adjust bool) {
	if t.setupDone {
		return
	}
	t.adjustRadarForGun = adjust
}

func (t *Tank) SetAdjustGunForBodyTurn(adjust bool) {
	if t.setupDone {
		return
	}
	t.adjustGunForBody = adjust
}

// --- Physics ---

// applyTurns rotates the three subsystems against their per-tick caps,
// composing the mounted frames: the gun rides the body and the radar rides
// the gun unless the corresponding adjust flag counter-rotates it.
func (t *Tank) applyTurns() {
	t.prevRadarHeading = t.radarHeading

	bodyDelta := clampTurn(t.bodyTurnRemaining, maxBodyTurn(t.velocity))
	t.bodyTurnRemaining -= bodyDelta
	t.heading = normalizeAbsolute(t.heading + bodyDelta)

	gunCarry := bodyDelta
	if t.adjustGunForBody {
		gunCarry = 0
	}
	gunDelta := clampTurn(t.gunTurnRemaining, maxGunTurn)
	t.gunTurnRemaining -= gunDelta
	t.gunHeading = normalizeAbsolute(t.gunHeading + gunDelta + gunCarry)

	// The radar is dragged by everything that rotated its gun mount,
	// minus the gun's own turn when the adjust flag compensates it.
	radarCarry := gunCarry + gunDelta
	if t.adjustRadarForGun {
		radarCarry -= gunDelta
	}
	radarDelta := clampTurn(t.radarTurnRemaining, maxRadarTurn)
	t.radarTurnRemaining -= radarDelta
	t.radarHeading = normalizeAbsolute(t.radarHeading + radarDelta + radarCarry)
}

// clampTurn limits a remaining turn to the per-tick cap, preserving sign.
func clampTurn(remaining, limit float64) float64 {
	if remaining > limit {
		return limit
	}
	if remaining < -limit {
		return -limit
	}
	return remaining
}

// applyMovement advances the hull along the trapezoid velocity profile and
// clamps against the arena walls. A wall strike zeroes velocity and the
// remaining move, costs wallDamage energy, and counts as a wall hit.
func (t *Tank) applyMovement() {
	t.velocity = nextVelocity(t.velocity, t.distanceRemaining)
	t.distanceRemaining -= t.velocity
	// Avoid an endless creep once the commanded distance is spent.
	if math.Abs(t.distanceRemaining) < 1e-9 {
		t.distanceRemaining = 0
	}

	rad := t.heading * math.Pi / 180.0
	t.x += t.velocity * math.Sin(rad)
	t.y += t.velocity * math.Cos(rad)

	minX, minY := tankRadius, tankRadius
	maxX := t.engine.width - tankRadius
	maxY := t.engine.height - tankRadius
	hitWall := false
	if t.x < minX {
		t.x, hitWall = minX, true
	} else if t.x > maxX {
		t.x, hitWall = maxX, true
	}
	if t.y < minY {
		t.y, hitWall = minY, true
	} else if t.y > maxY {
		t.y, hitWall = maxY, true
	}
	if hitWall {
		dmg := wallDamage(t.velocity)
		t.velocity = 0
		t.distanceRemaining = 0
		t.wallHits++
		t.damage(dmg)
		t.engine.log.Add(t.engine.tick, t.name, "wall", "hit",
			"stopped against arena wall", dmg)
	}
}

// nextVelocity steps the signed speed toward covering the remaining
// distance: accelerate at 1 px/tick², brake at 2, never exceed ±8, and
// brake early enough not to overshoot the commanded distance.
func nextVelocity(v, remaining float64) float64 {
	if remaining == 0 && v == 0 {
		return 0
	}
	dir := 1.0
	if remaining < 0 || (remaining == 0 && v < 0) {
		dir = -1.0
	}
	// Work in the frame where we want to move forward.
	fv := v * dir
	fRemaining := remaining * dir

	if fv < 0 {
		// Moving against the commanded direction: brake hard.
		fv += deceleration
		if fv > 0 {
			fv = 0
		}
		return fv * dir
	}

	// Max speed we may hold and still brake to a stop within fRemaining.
	stoppable := maxSpeedToStopWithin(fRemaining)
	target := math.Min(stoppable, maxSpeed)
	if fv < target {
		fv = math.Min(fv+acceleration, target)
	} else if fv > target {
		fv = math.Max(fv-deceleration, target)
	}
	return fv * dir
}

// maxSpeedToStopWithin returns the highest speed from which braking at
// deceleration px/tick² still stops within the given distance.
func maxSpeedToStopWithin(distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	// Distance covered braking from speed s: s/2 * (s/decel + 1) ticks worth.
	// Solve incrementally; speeds are tiny integersish so a loop is fine.
	speed := 0.0
	for braked := 0.0; ; {
		next := speed + deceleration
		braked += next
		if braked > distance {
			// Partial step: whatever distance is left over this tick.
			return speed + (distance - (braked - next))
		}
		speed = next
		if speed >= maxSpeed {
			return maxSpeed
		}
	}
}

// damage removes energy and kills the tank at zero.
func (t *Tank) damage(amount float64) {
	if !t.alive || amount <= 0 {
		return
	}
	t.energy -= amount
	if t.energy <= 0 {
		t.energy = 0
		t.alive = false
		t.velocity = 0
		t.engine.log.Add(t.engine.tick, t.name, "round", "destroyed",
			"energy depleted", 0)
	}
}

// coolGun removes one tick of gun heat. Residue from repeated float
// subtraction is snapped to zero so the heat==0 fire gate can ever pass.
func (t *Tank) coolGun() {
	t.gunHeat -= gunCoolingRate
	if t.gunHeat < 1e-9 {
		t.gunHeat = 0
	}
}
