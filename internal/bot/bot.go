package bot

import (
	"tankduel/internal/arena"
)

// Bot is the duelling decision engine. All persistent state across ticks is
// here: the radar mode, the two direction flags, and the victory routine
// queue. Everything else is recomputed from the tick's sensor snapshot.
type Bot struct {
	mode    Mode
	moveDir int // +1 or -1, flipped only by the movement policy
	scanDir int // +1 or -1, flipped only by the radar policy

	lastScanTick int
	won          bool
	dance        []danceStep
}

// New creates a bot with both direction flags at +1, in searching mode.
func New() *Bot {
	return &Bot{
		mode:    ModeSearching,
		moveDir: 1,
		scanDir: 1,
	}
}

// Mode returns the current radar mode.
func (b *Bot) Mode() Mode { return b.mode }

// Setup applies the one-time cosmetic and frame-composition configuration:
// the radar turns independently of the gun and the gun independently of the
// body, so each policy commands its subsystem in a stable frame.
func (b *Bot) Setup(ctl arena.Controller) {
	ctl.SetColors(bodyColor, gunColor, radarColor, bulletColor)
	ctl.SetAdjustRadarForGunTurn(true)
	ctl.SetAdjustGunForBodyTurn(true)
}

// Tick runs on every tick without a detection. While searching, it keeps
// the radar spinning one full rotation at a time; while tracking, it lets
// the pending oscillation sweep play out, falling back to searching if the
// target has gone stale.
func (b *Bot) Tick(ctl arena.Controller) {
	if b.won {
		b.danceTick(ctl)
		return
	}
	if b.mode == ModeTracking && ctl.Tick()-b.lastScanTick > trackTimeout {
		b.mode = ModeSearching
	}
	if b.mode == ModeSearching && ctl.RadarTurnRemaining() == 0 {
		ctl.TurnRadarRight(searchSweep)
		ctl.Execute()
	}
}

// OnScanned is the per-tick decision entry point: radar, then movement,
// then gun, then one atomic flush of the whole command batch.
func (b *Bot) OnScanned(ctl arena.Controller, scan arena.Scan) {
	if b.won {
		return
	}
	b.mode = ModeTracking
	b.lastScanTick = ctl.Tick()

	b.doRadar(ctl, scan)
	b.doMove(ctl, scan)
	b.doGun(ctl, scan)
	ctl.Execute()
}

// doRadar oscillates the beam 30° past the detected bearing, then reverses
// the sweep direction for the next detection.
func (b *Bot) doRadar(ctl arena.Controller, scan arena.Scan) {
	turn := radarSweepTurn(ctl.Heading(), ctl.RadarHeading(), scan.Bearing, b.scanDir)
	ctl.TurnRadarRight(turn)
	b.scanDir *= -1
}

// doMove turns the hull near-perpendicular to the enemy and, on reversal
// ticks, flips the strafe direction and drives the next leg.
func (b *Bot) doMove(ctl arena.Controller, scan arena.Scan) {
	ctl.TurnRight(strafeTurn(scan.Bearing, b.moveDir))

	if shouldReverse(ctl.Tick(), ctl.Velocity()) {
		b.moveDir *= -1
		ctl.Ahead(strafeLeg * float64(b.moveDir))
	}
}

// doGun aims the turret at the predicted intercept point and fires when the
// gun is cold and the commanded turn is inside the fire gate. The solver
// reads the turn still remaining from the previous tick; the gate applies
// to the fresh solution, which becomes the remaining turn once flushed.
func (b *Bot) doGun(ctl arena.Controller, scan arena.Scan) {
	solution := firingSolution(SolverInput{
		SelfX:            ctl.X(),
		SelfY:            ctl.Y(),
		SelfHeading:      ctl.Heading(),
		GunHeading:       ctl.GunHeading(),
		GunTurnRemaining: ctl.GunTurnRemaining(),
		EnemyBearing:     scan.Bearing,
		EnemyDistance:    scan.Distance,
		EnemyHeading:     scan.Heading,
		EnemyVelocity:    scan.Velocity,
	})
	ctl.TurnGunRight(solution)

	if readyToFire(ctl.GunHeat(), solution) {
		ctl.Fire(firePower(scan.Distance))
	}
}

// --- Victory routine ---

// danceStep is one segment of the fixed celebratory sequence. A step is
// issued once all three subsystems have finished the previous one.
type danceStep struct {
	body  float64
	gun   float64
	radar float64
}

// OnWin queues the celebratory spin: three full body rotations each way,
// interleaved with gun/radar counter-swings. Pure choreography — no
// decision content, never mixed with targeting.
func (b *Bot) OnWin(ctl arena.Controller) {
	b.won = true
	b.dance = b.dance[:0]
	for i := 0; i < 3; i++ {
		b.dance = append(b.dance, danceStep{body: 360}, danceStep{body: -360})
		for j := 0; j < 3; j++ {
			b.dance = append(b.dance,
				danceStep{gun: 180},
				danceStep{radar: -180},
				danceStep{gun: -180},
				danceStep{radar: 180},
			)
		}
	}
}

// danceTick issues the next dance step once the previous one has settled.
func (b *Bot) danceTick(ctl arena.Controller) {
	if len(b.dance) == 0 {
		return
	}
	if ctl.TurnRemaining() != 0 || ctl.GunTurnRemaining() != 0 || ctl.RadarTurnRemaining() != 0 {
		return
	}
	step := b.dance[0]
	b.dance = b.dance[1:]
	if step.body != 0 {
		ctl.TurnRight(step.body)
	}
	if step.gun != 0 {
		ctl.TurnGunRight(step.gun)
	}
	if step.radar != 0 {
		ctl.TurnRadarRight(step.radar)
	}
	ctl.Execute()
}
