package arena

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the battlefield.
const borderWidth = 16

// hudHeight is the strip under the battlefield for per-tank readouts.
const hudHeight = 48

// ticksPerFrame is how many sim ticks advance per rendered frame at 1x.
const ticksPerFrame = 1

var (
	fieldColor  = color.RGBA{R: 28, G: 30, B: 26, A: 255}
	borderColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	beamAlpha   = uint8(70)
)

// View renders a BattleSim with ebiten. It drives the simulation one tick
// per frame and draws hulls, turrets, radar beams, bullets and a HUD.
type View struct {
	sim    *BattleSim
	paused bool

	prevSpace bool
}

// NewView wraps a prepared battle for rendering.
func NewView(sim *BattleSim) *View {
	return &View{sim: sim}
}

// WindowSize returns the pixel size the window should use.
func (v *View) WindowSize() (int, int) {
	return int(v.sim.Width) + 2*borderWidth, int(v.sim.Height) + 2*borderWidth + hudHeight
}

// Update advances the battle unless paused. Space toggles pause.
func (v *View) Update() error {
	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	if space && !v.prevSpace {
		v.paused = !v.paused
	}
	v.prevSpace = space

	if !v.paused {
		for i := 0; i < ticksPerFrame; i++ {
			v.sim.Engine.Step()
		}
	}
	return nil
}

// Draw renders the battlefield and HUD.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(borderColor)
	vector.DrawFilledRect(screen,
		borderWidth, borderWidth,
		float32(v.sim.Width), float32(v.sim.Height),
		fieldColor, false)

	for _, b := range v.sim.Engine.Bullets() {
		v.drawBullet(screen, b)
	}
	for _, t := range v.sim.Engine.Tanks() {
		v.drawTank(screen, t)
	}
	v.drawHUD(screen)
}

// Layout reports the fixed logical screen size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.WindowSize()
}

// toScreen maps sim coordinates to screen pixels. Sim y grows north, screen
// y grows down, so the battlefield is flipped vertically.
func (v *View) toScreen(x, y float64) (float32, float32) {
	return float32(x) + borderWidth, float32(v.sim.Height-y) + borderWidth
}

func (v *View) drawTank(screen *ebiten.Image, t *Tank) {
	sx, sy := v.toScreen(t.x, t.y)
	ap := t.Appearance()

	hull := ap.Body
	if !t.alive {
		hull = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	}
	vector.DrawFilledCircle(screen, sx, sy, float32(tankRadius), hull, true)

	if !t.alive {
		return
	}

	// Radar beam: translucent wedge drawn as two edge lines.
	beam := color.RGBA{R: ap.Radar.R, G: ap.Radar.G, B: ap.Radar.B, A: beamAlpha}
	bx, by := v.headingPoint(t.x, t.y, t.radarHeading, 90)
	vector.StrokeLine(screen, sx, sy, bx, by, 1, beam, true)

	// Gun barrel.
	gx, gy := v.headingPoint(t.x, t.y, t.gunHeading, tankRadius+14)
	vector.StrokeLine(screen, sx, sy, gx, gy, 3, ap.Gun, true)

	// Body heading marker.
	hx, hy := v.headingPoint(t.x, t.y, t.heading, tankRadius)
	vector.StrokeLine(screen, sx, sy, hx, hy, 1.5, color.RGBA{R: 255, G: 255, B: 255, A: 120}, true)
}

func (v *View) drawBullet(screen *ebiten.Image, b *Bullet) {
	sx, sy := v.toScreen(b.x, b.y)
	vector.DrawFilledCircle(screen, sx, sy, 2+float32(b.power), b.owner.Appearance().Bullet, true)
}

// headingPoint returns the screen position dist px from (x,y) along an
// absolute heading in degrees.
func (v *View) headingPoint(x, y, heading, dist float64) (float32, float32) {
	rad := heading * math.Pi / 180.0
	return v.toScreen(x+dist*math.Sin(rad), y+dist*math.Cos(rad))
}

func (v *View) drawHUD(screen *ebiten.Image) {
	y := int(v.sim.Height) + 2*borderWidth
	line := fmt.Sprintf("T=%05d", v.sim.Engine.TickCount())
	if v.paused {
		line += "  [paused]"
	}
	if w := v.sim.Engine.Winner(); w != nil {
		line += "  winner: " + w.Name()
	}
	ebitenutil.DebugPrintAt(screen, line, borderWidth, y)

	x := borderWidth
	for _, t := range v.sim.Engine.Tanks() {
		stat := fmt.Sprintf("%s  e=%5.1f  heat=%.1f  v=%+.1f",
			t.Name(), t.energy, t.gunHeat, t.velocity)
		ebitenutil.DebugPrintAt(screen, stat, x, y+16)
		x += 260
	}
}
