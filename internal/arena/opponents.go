package arena

import "math"

// Sparring opponents with fixed, non-adaptive behaviour. They exist so
// duels exercise a bot's prediction against real enemy motion without
// bringing a second decision engine into the repo.

// SittingDuck holds position and never fires. Its radar spins so that it
// still generates scan traffic for the log.
type SittingDuck struct{}

func (SittingDuck) Setup(ctl Controller) {
	ctl.SetAdjustRadarForGunTurn(true)
}

func (SittingDuck) Tick(ctl Controller) {
	if ctl.RadarTurnRemaining() == 0 {
		ctl.TurnRadarRight(360)
	}
	ctl.Execute()
}

func (SittingDuck) OnScanned(ctl Controller, scan Scan) {
	if ctl.RadarTurnRemaining() == 0 {
		ctl.TurnRadarRight(360)
	}
	ctl.Execute()
}

func (SittingDuck) OnWin(ctl Controller) {}

// Drifter circles the arena at a steady speed and fires straight at
// whatever its radar last saw, with no lead. Lateral motion at constant
// speed makes it the canonical target for an intercept solver.
type Drifter struct {
	legLen float64
}

// NewDrifter creates a drifter that drives in legs of the given length.
func NewDrifter(legLen float64) *Drifter {
	if legLen <= 0 {
		legLen = 120
	}
	return &Drifter{legLen: legLen}
}

func (d *Drifter) Setup(ctl Controller) {
	ctl.SetAdjustRadarForGunTurn(true)
	ctl.SetAdjustGunForBodyTurn(true)
}

func (d *Drifter) Tick(ctl Controller) {
	d.drive(ctl)
	if ctl.RadarTurnRemaining() == 0 {
		ctl.TurnRadarRight(360)
	}
	ctl.Execute()
}

func (d *Drifter) OnScanned(ctl Controller, scan Scan) {
	d.drive(ctl)

	// Point the gun straight at the scan bearing, no lead.
	gunTurn := normalizeRelative(ctl.Heading() + scan.Bearing - ctl.GunHeading())
	ctl.TurnGunRight(gunTurn)
	if ctl.GunHeat() == 0 && math.Abs(gunTurn) < 15 {
		ctl.Fire(2)
	}

	// Keep the radar moving so the target is not lost behind the beam.
	ctl.TurnRadarRight(normalizeRelative(scan.Bearing + ctl.Heading() - ctl.RadarHeading() + 20))
	ctl.Execute()
}

// drive renews the current leg and bends the course into a wide circle.
func (d *Drifter) drive(ctl Controller) {
	if ctl.Velocity() == 0 {
		ctl.Ahead(d.legLen)
	}
	if ctl.TurnRemaining() == 0 {
		ctl.TurnRight(30)
	}
}

func (d *Drifter) OnWin(ctl Controller) {}
