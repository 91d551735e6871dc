package bot

// Mode selects which of the two radar behaviours is active. The two are
// mutually exclusive: a continuous one-directional sweep while no target is
// known, and a narrow oscillation around the last bearing while tracking.
type Mode int

const (
	ModeSearching Mode = iota
	ModeTracking
)

func (m Mode) String() string {
	switch m {
	case ModeSearching:
		return "searching"
	case ModeTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// radarSweepTurn returns the radar turn that snaps the beam onto the
// enemy's absolute bearing plus an overshoot in the current scan direction.
// The overshoot carries the beam past the enemy so it re-triggers a
// detection on the return swing; alternating scanDir each call makes the
// beam oscillate around the target.
func radarSweepTurn(selfHeading, radarHeading, enemyBearing float64, scanDir int) float64 {
	turn := selfHeading - radarHeading + enemyBearing
	turn += radarOvershoot * float64(scanDir)
	return NormalizeBearing(turn)
}
