package arena

import "math/rand"

// BattleSim is a headless battle harness used by tests, the report command
// and the spectator server. It mirrors the viewer's update loop but has no
// rendering dependency and supports deterministic seeding and structured
// logging.
type BattleSim struct {
	Width   float64
	Height  float64
	Engine  *Engine
	Log     *BattleLog
	rng     *rand.Rand
	verbose bool

	pendingTanks []pendingTank
}

type pendingTank struct {
	name    string
	robot   Robot
	x, y    float64
	heading float64
	random  bool // place at a seeded random spot instead of (x,y)
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // arena size, seed, verbose — applied first
	simOptTank                       // add tanks — applied after infra
)

// SimOption is a builder function applied to a BattleSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*BattleSim)
}

// WithArenaSize sets the battlefield dimensions.
func WithArenaSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(bs *BattleSim) {
		bs.Width = w
		bs.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(bs *BattleSim) {
		bs.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- battle harness
	}}
}

// WithVerbose enables per-tick kinematic logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(bs *BattleSim) {
		bs.verbose = v
	}}
}

// WithTank adds a tank at a fixed position and heading.
func WithTank(name string, robot Robot, x, y, heading float64) SimOption {
	return SimOption{simOptTank, func(bs *BattleSim) {
		bs.pendingTanks = append(bs.pendingTanks, pendingTank{
			name: name, robot: robot, x: x, y: y, heading: heading,
		})
	}}
}

// WithRandomTank adds a tank at a seeded random position and heading.
func WithRandomTank(name string, robot Robot) SimOption {
	return SimOption{simOptTank, func(bs *BattleSim) {
		bs.pendingTanks = append(bs.pendingTanks, pendingTank{
			name: name, robot: robot, random: true,
		})
	}}
}

// NewBattleSim constructs a BattleSim from the given options in two ordered
// passes: infrastructure first (size, seed, verbose), then tanks.
func NewBattleSim(opts ...SimOption) *BattleSim {
	bs := &BattleSim{
		Width:  defaultArenaWidth,
		Height: defaultArenaHeight,
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- battle harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(bs)
		}
	}
	bs.Log = NewBattleLog(bs.verbose)
	bs.Engine = NewEngine(bs.Width, bs.Height, bs.Log)
	for _, o := range opts {
		if o.kind == simOptTank {
			o.fn(bs)
		}
	}
	for _, pt := range bs.pendingTanks {
		x, y, heading := pt.x, pt.y, pt.heading
		if pt.random {
			x = tankRadius + bs.rng.Float64()*(bs.Width-2*tankRadius)
			y = tankRadius + bs.rng.Float64()*(bs.Height-2*tankRadius)
			heading = bs.rng.Float64() * 360.0
		}
		bs.Engine.AddTank(NewTank(pt.name, pt.robot, x, y, heading))
	}
	return bs
}

// RunTicks advances the battle n ticks.
func (bs *BattleSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		bs.Engine.Step()
	}
}

// RunUntil advances the battle up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (bs *BattleSim) RunUntil(predicate func(*BattleSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		bs.Engine.Step()
		if predicate(bs) {
			return bs.Engine.TickCount()
		}
	}
	return -1
}

// TankSnapshot is a lightweight copy of one tank's state at a tick.
type TankSnapshot struct {
	Name         string  `json:"name"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Heading      float64 `json:"heading"`
	GunHeading   float64 `json:"gunHeading"`
	RadarHeading float64 `json:"radarHeading"`
	Velocity     float64 `json:"velocity"`
	Energy       float64 `json:"energy"`
	Alive        bool    `json:"alive"`
}

// BulletSnapshot is a lightweight copy of one bullet in flight.
type BulletSnapshot struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
	Power   float64 `json:"power"`
}

// SimSnapshot captures the battle state at one tick.
type SimSnapshot struct {
	Tick    int              `json:"tick"`
	Over    bool             `json:"over"`
	Winner  string           `json:"winner,omitempty"`
	Tanks   []TankSnapshot   `json:"tanks"`
	Bullets []BulletSnapshot `json:"bullets"`
}

// Snapshot returns the current state of all tanks and bullets.
func (bs *BattleSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{
		Tick: bs.Engine.TickCount(),
		Over: bs.Engine.Over(),
	}
	if w := bs.Engine.Winner(); w != nil {
		snap.Winner = w.Name()
	}
	for _, t := range bs.Engine.Tanks() {
		snap.Tanks = append(snap.Tanks, TankSnapshot{
			Name:         t.Name(),
			X:            t.X(),
			Y:            t.Y(),
			Heading:      t.Heading(),
			GunHeading:   t.GunHeading(),
			RadarHeading: t.RadarHeading(),
			Velocity:     t.Velocity(),
			Energy:       t.Energy(),
			Alive:        t.Alive(),
		})
	}
	for _, b := range bs.Engine.Bullets() {
		snap.Bullets = append(snap.Bullets, BulletSnapshot{
			X: b.x, Y: b.y, Heading: b.heading, Power: b.power,
		})
	}
	return snap
}
