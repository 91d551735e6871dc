package bot

import (
	"image/color"

	"tankduel/internal/arena"
)

// fakeController records everything the bot commands without simulating
// physics. Read-side fields are set directly by each test.
type fakeController struct {
	x, y         float64
	heading      float64
	gunHeading   float64
	radarHeading float64
	velocity     float64
	energy       float64
	tick         int

	turnRemaining      float64
	gunTurnRemaining   float64
	radarTurnRemaining float64
	gunHeat            float64

	bodyTurns  []float64
	gunTurns   []float64
	radarTurns []float64
	moves      []float64
	fires      []float64
	executes   int

	adjustRadarForGun bool
	adjustGunForBody  bool
	colorsSet         bool
}

var _ arena.Controller = (*fakeController)(nil)

func (f *fakeController) X() float64            { return f.x }
func (f *fakeController) Y() float64            { return f.y }
func (f *fakeController) Heading() float64      { return f.heading }
func (f *fakeController) GunHeading() float64   { return f.gunHeading }
func (f *fakeController) RadarHeading() float64 { return f.radarHeading }
func (f *fakeController) Velocity() float64     { return f.velocity }
func (f *fakeController) Energy() float64       { return f.energy }
func (f *fakeController) Tick() int             { return f.tick }

func (f *fakeController) TurnRemaining() float64      { return f.turnRemaining }
func (f *fakeController) GunTurnRemaining() float64   { return f.gunTurnRemaining }
func (f *fakeController) RadarTurnRemaining() float64 { return f.radarTurnRemaining }
func (f *fakeController) GunHeat() float64            { return f.gunHeat }

func (f *fakeController) ArenaWidth() float64  { return 800 }
func (f *fakeController) ArenaHeight() float64 { return 600 }

func (f *fakeController) TurnRight(deg float64)      { f.bodyTurns = append(f.bodyTurns, deg) }
func (f *fakeController) TurnGunRight(deg float64)   { f.gunTurns = append(f.gunTurns, deg) }
func (f *fakeController) TurnRadarRight(deg float64) { f.radarTurns = append(f.radarTurns, deg) }
func (f *fakeController) Ahead(distance float64)     { f.moves = append(f.moves, distance) }
func (f *fakeController) Fire(power float64)         { f.fires = append(f.fires, power) }
func (f *fakeController) Execute()                   { f.executes++ }

func (f *fakeController) SetColors(body, gun, radar, bullet color.RGBA) { f.colorsSet = true }
func (f *fakeController) SetAdjustRadarForGunTurn(adjust bool)          { f.adjustRadarForGun = adjust }
func (f *fakeController) SetAdjustGunForBodyTurn(adjust bool)           { f.adjustGunForBody = adjust }

// lastRadarTurn returns the most recent radar command, or 0 if none.
func (f *fakeController) lastRadarTurn() float64 {
	if len(f.radarTurns) == 0 {
		return 0
	}
	return f.radarTurns[len(f.radarTurns)-1]
}
