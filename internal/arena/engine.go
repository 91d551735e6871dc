package arena

import (
	"fmt"
	"math"
)

// Engine advances one round of a battle tick by tick. It is single-threaded
// and event-driven: each tick it delivers at most one sensor callback per
// robot (a scan event if the radar found someone last tick, an idle tick
// otherwise), then integrates the physics of whatever command batches the
// robots flushed.
type Engine struct {
	width  float64
	height float64

	tanks   []*Tank
	bullets []*Bullet

	tick    int
	log     *BattleLog
	started bool

	roundOver bool
	winner    *Tank
}

// NewEngine creates an engine for an arena of the given size, logging to bl.
func NewEngine(width, height float64, bl *BattleLog) *Engine {
	if bl == nil {
		bl = NewBattleLog(false)
	}
	return &Engine{width: width, height: height, log: bl}
}

// AddTank registers a tank before the battle starts.
func (e *Engine) AddTank(t *Tank) {
	t.engine = e
	e.tanks = append(e.tanks, t)
}

// Tanks returns all registered tanks, dead or alive.
func (e *Engine) Tanks() []*Tank { return e.tanks }

// Bullets returns the bullets currently in flight.
func (e *Engine) Bullets() []*Bullet { return e.bullets }

// TickCount returns the current tick.
func (e *Engine) TickCount() int { return e.tick }

// Log returns the battle log.
func (e *Engine) Log() *BattleLog { return e.log }

// Over reports whether the round has been decided.
func (e *Engine) Over() bool { return e.roundOver }

// Winner returns the winning tank, or nil while the round is undecided.
func (e *Engine) Winner() *Tank { return e.winner }

// Width returns the arena width in px.
func (e *Engine) Width() float64 { return e.width }

// Height returns the arena height in px.
func (e *Engine) Height() float64 { return e.height }

// Step advances the battle by one tick:
//
//	1. deliver events / idle ticks to robots (they queue and flush commands)
//	2. rotate subsystems and move hulls
//	3. advance bullets and resolve impacts
//	4. sweep radars and queue next tick's scan events
//	5. cool guns, resolve round end
func (e *Engine) Step() {
	if !e.started {
		for _, t := range e.tanks {
			t.robot.Setup(t)
			t.setupDone = true
		}
		e.started = true
	}
	e.tick++

	// 1. SENSE + THINK: one callback per robot.
	for _, t := range e.tanks {
		if !t.alive {
			continue
		}
		if t.pendingScan != nil && !e.roundOver {
			scan := *t.pendingScan
			t.pendingScan = nil
			t.robot.OnScanned(t, scan)
		} else {
			t.robot.Tick(t)
		}
	}

	// 2. ACT: physics integration.
	for _, t := range e.tanks {
		if !t.alive {
			continue
		}
		t.applyTurns()
		t.applyMovement()
		e.log.AddVerbose(e.tick, t.name, "move", "position",
			fmt.Sprintf("(%.1f,%.1f) v=%.1f", t.x, t.y, t.velocity), t.velocity)
	}

	e.advanceBullets()
	e.sweepRadars()

	for _, t := range e.tanks {
		t.coolGun()
	}

	e.resolveRound()
}

// spawnBullet fires a bullet from the tank's current gun position. Called
// from Execute when a fire intent passes the heat gate.
func (e *Engine) spawnBullet(t *Tank, power float64) {
	t.gunHeat += heatGenerated(power)
	t.energy -= power
	t.shotsFired++
	e.bullets = append(e.bullets, &Bullet{
		owner:   t,
		x:       t.x,
		y:       t.y,
		heading: t.gunHeading,
		power:   power,
		speed:   bulletSpeed(power),
	})
	e.log.Add(e.tick, t.name, "gun", "fire",
		fmt.Sprintf("power=%.1f heading=%.1f", power, t.gunHeading), power)
	if t.energy <= 0 {
		t.energy = 0
		t.alive = false
		e.log.Add(e.tick, t.name, "round", "destroyed", "fired itself dry", 0)
	}
}

// advanceBullets moves every bullet one tick and resolves impacts.
func (e *Engine) advanceBullets() {
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		victim, gone := b.advance(e.tanks)
		if victim != nil {
			dmg := bulletDamage(b.power)
			victim.damage(dmg)
			b.owner.energy += 3.0 * b.power
			b.owner.shotsHit++
			e.log.Add(e.tick, b.owner.name, "bullet", "hit",
				fmt.Sprintf("struck %s for %.1f", victim.name, dmg), dmg)
		}
		if !gone {
			kept = append(kept, b)
		}
	}
	e.bullets = kept
}

// sweepRadars computes each tank's radar arc for this tick and queues a
// scan event for the nearest enemy inside it. Events are delivered at the
// start of the next tick.
func (e *Engine) sweepRadars() {
	for _, t := range e.tanks {
		if !t.alive {
			continue
		}
		delta := normalizeRelative(t.radarHeading - t.prevRadarHeading)
		var nearest *Tank
		nearestDist := math.Inf(1)
		for _, other := range e.tanks {
			if other == t || !other.alive {
				continue
			}
			dist := distanceBetween(t.x, t.y, other.x, other.y)
			if dist > scanRange {
				continue
			}
			angle := absoluteAngleTo(t.x, t.y, other.x, other.y)
			if !arcContains(t.prevRadarHeading, delta, angle) {
				continue
			}
			if dist < nearestDist {
				nearest, nearestDist = other, dist
			}
		}
		if nearest == nil {
			continue
		}
		bearing := normalizeRelative(absoluteAngleTo(t.x, t.y, nearest.x, nearest.y) - t.heading)
		t.pendingScan = &Scan{
			Bearing:  bearing,
			Distance: nearestDist,
			Heading:  nearest.heading,
			Velocity: nearest.velocity,
			Energy:   nearest.energy,
		}
		e.log.AddVerbose(e.tick, t.name, "radar", "scan",
			fmt.Sprintf("%s bearing=%.1f dist=%.1f", nearest.name, bearing, nearestDist), nearestDist)
	}
}

// arcContains reports whether the absolute angle lies within the arc swept
// from start by delta degrees (delta may be negative). A zero-width sweep
// still detects targets sitting exactly on the beam.
func arcContains(start, delta, angle float64) bool {
	const eps = 1e-6
	off := normalizeRelative(angle - start)
	if delta >= 0 {
		return off >= -eps && off <= delta+eps
	}
	return off <= eps && off >= delta-eps
}

// resolveRound declares a winner once at most one tank is left standing.
// The winner keeps receiving idle ticks afterwards so a victory routine can
// play out.
func (e *Engine) resolveRound() {
	if e.roundOver {
		return
	}
	var alive []*Tank
	for _, t := range e.tanks {
		if t.alive {
			alive = append(alive, t)
		}
	}
	if len(e.tanks) < 2 || len(alive) > 1 {
		return
	}
	e.roundOver = true
	if len(alive) == 1 {
		e.winner = alive[0]
		e.log.Add(e.tick, e.winner.name, "round", "win", "last tank standing", 0)
		e.winner.robot.OnWin(e.winner)
	} else {
		e.log.Add(e.tick, "--", "round", "draw", "mutual destruction", 0)
	}
}
