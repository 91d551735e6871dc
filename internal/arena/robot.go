package arena

import "image/color"

// Scan is the sensor snapshot delivered when a tank's radar beam sweeps
// over an enemy. It is valid for one tick only: the engine produces a fresh
// snapshot on every detection and bots are expected not to retain it.
type Scan struct {
	Bearing  float64 // degrees from the scanning tank's heading to the enemy, signed
	Distance float64 // px from hull centre to hull centre
	Heading  float64 // enemy's absolute heading, degrees
	Velocity float64 // enemy's current speed, signed px/tick
	Energy   float64 // enemy's remaining energy
}

// Controller is the per-tank command surface the engine hands to a Robot.
// Reads reflect the state at the start of the current tick. Writes queue
// intents that take effect only after Execute — the engine applies each
// tick's batch as one unit, so a robot never exposes a partial command set.
type Controller interface {
	// Kinematic state, read-only.
	X() float64
	Y() float64
	Heading() float64      // absolute body heading, degrees
	GunHeading() float64   // absolute gun heading, degrees
	RadarHeading() float64 // absolute radar heading, degrees
	Velocity() float64     // signed px/tick
	Energy() float64
	Tick() int // engine tick counter, shared by all tanks

	// Remaining portions of previously executed turn commands.
	TurnRemaining() float64
	GunTurnRemaining() float64
	RadarTurnRemaining() float64
	GunHeat() float64

	ArenaWidth() float64
	ArenaHeight() float64

	// Queued commands. Each setter overwrites the pending intent for its
	// subsystem; Execute flushes the whole batch to the engine.
	TurnRight(deg float64)
	TurnGunRight(deg float64)
	TurnRadarRight(deg float64)
	Ahead(distance float64)
	Fire(power float64)
	Execute()

	// One-time setup, honoured only before the first tick.
	SetColors(body, gun, radar, bullet color.RGBA)
	SetAdjustRadarForGunTurn(adjust bool)
	SetAdjustGunForBodyTurn(adjust bool)
}

// Robot is an autonomous tank brain. The engine calls exactly one of
// OnScanned or Tick per simulation tick (OnScanned when the radar produced
// a detection last tick, Tick otherwise), and OnWin once when the robot is
// the last one standing.
type Robot interface {
	// Setup runs once at round start, before the first tick.
	Setup(ctl Controller)

	// Tick runs on every tick that delivered no scan event.
	Tick(ctl Controller)

	// OnScanned runs when the radar detected an enemy.
	OnScanned(ctl Controller, scan Scan)

	// OnWin runs once when the round is decided in this robot's favour.
	// Ticks keep flowing afterwards so the robot can celebrate.
	OnWin(ctl Controller)
}
