package arena

import "math"

// Bullet is a projectile in flight. It moves in a straight line at a speed
// fixed by its power at fire time and is removed on impact or when it
// leaves the arena.
type Bullet struct {
	owner   *Tank
	x, y    float64
	heading float64 // absolute, degrees
	power   float64
	speed   float64
}

// advance moves the bullet one tick and reports whether it struck the given
// tanks or left the arena. The flight segment from the old to the new
// position is tested against each hull so fast bullets cannot tunnel
// through a tank between ticks.
func (b *Bullet) advance(tanks []*Tank) (victim *Tank, gone bool) {
	rad := b.heading * math.Pi / 180.0
	nx := b.x + b.speed*math.Sin(rad)
	ny := b.y + b.speed*math.Cos(rad)

	for _, t := range tanks {
		if t == b.owner || !t.alive {
			continue
		}
		if segmentHitsCircle(b.x, b.y, nx, ny, t.x, t.y, tankRadius) {
			b.x, b.y = t.x, t.y
			return t, true
		}
	}

	b.x, b.y = nx, ny
	if b.x < 0 || b.y < 0 || b.x > b.owner.engine.width || b.y > b.owner.engine.height {
		return nil, true
	}
	return nil, false
}

// segmentHitsCircle reports whether the segment (x1,y1)-(x2,y2) passes
// within radius r of the point (cx,cy).
func segmentHitsCircle(x1, y1, x2, y2, cx, cy, r float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((cx-x1)*dx + (cy-y1)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	px := x1 + t*dx
	py := y1 + t*dy
	ddx := cx - px
	ddy := cy - py
	return ddx*ddx+ddy*ddy <= r*r
}
