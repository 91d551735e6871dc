package arena

import (
	"math"
	"testing"
)

func TestMaxBodyTurn_SlowsWithSpeed(t *testing.T) {
	if got := maxBodyTurn(0); got != 10 {
		t.Errorf("maxBodyTurn(0) = %v, want 10", got)
	}
	if got := maxBodyTurn(8); got != 4 {
		t.Errorf("maxBodyTurn(8) = %v, want 4", got)
	}
	if got := maxBodyTurn(-8); got != 4 {
		t.Errorf("maxBodyTurn(-8) = %v, want 4 (speed is unsigned)", got)
	}
}

func TestBulletModel(t *testing.T) {
	if got := bulletSpeed(3); got != 11 {
		t.Errorf("bulletSpeed(3) = %v, want 11", got)
	}
	if got := bulletSpeed(0.1); math.Abs(got-19.7) > 1e-12 {
		t.Errorf("bulletSpeed(0.1) = %v, want 19.7", got)
	}
	if got := bulletDamage(1); got != 4 {
		t.Errorf("bulletDamage(1) = %v, want 4", got)
	}
	if got := bulletDamage(3); got != 16 {
		t.Errorf("bulletDamage(3) = %v, want 16 (4*3 + 2*2 bonus)", got)
	}
	if got := heatGenerated(3); math.Abs(got-1.6) > 1e-12 {
		t.Errorf("heatGenerated(3) = %v, want 1.6", got)
	}
}

func TestClampPower(t *testing.T) {
	if got := clampPower(5); got != maxFirePower {
		t.Errorf("clampPower(5) = %v, want %v", got, maxFirePower)
	}
	if got := clampPower(0); got != minFirePower {
		t.Errorf("clampPower(0) = %v, want %v", got, minFirePower)
	}
	if got := clampPower(2); got != 2 {
		t.Errorf("clampPower(2) = %v, want 2", got)
	}
}

func TestNextVelocity_RampAndBrake(t *testing.T) {
	// From rest with plenty of runway: accelerate 1 px/tick² up to 8.
	v := 0.0
	remaining := 1000.0
	wantRamp := []float64{1, 2, 3, 4, 5, 6, 7, 8, 8}
	for i, want := range wantRamp {
		v = nextVelocity(v, remaining)
		if v != want {
			t.Fatalf("ramp tick %d: v = %v, want %v", i, v, want)
		}
		remaining -= v
	}

	// Commanded direction flipped mid-flight: brake at 2 px/tick².
	v = nextVelocity(8, -1000)
	if v != 6 {
		t.Errorf("braking from 8 = %v, want 6", v)
	}

	// No command, no speed: stay put.
	if got := nextVelocity(0, 0); got != 0 {
		t.Errorf("nextVelocity(0, 0) = %v, want 0", got)
	}
}

func TestNextVelocity_StopsNearTarget(t *testing.T) {
	// Drive a full leg and confirm the hull settles with no runaway creep.
	v, remaining := 0.0, 150.0
	for i := 0; i < 60; i++ {
		v = nextVelocity(v, remaining)
		remaining -= v
		if v == 0 && remaining == 0 {
			return
		}
	}
	if math.Abs(remaining) > 2 || math.Abs(v) > 1 {
		t.Errorf("after 60 ticks: v=%v remaining=%v, want settled near 0", v, remaining)
	}
}

func TestAbsoluteAngleTo_CompassConvention(t *testing.T) {
	cases := []struct {
		tx, ty float64
		want   float64
	}{
		{0, 100, 0},    // north
		{100, 0, 90},   // east
		{0, -100, 180}, // south
		{-100, 0, 270}, // west
	}
	for _, c := range cases {
		if got := absoluteAngleTo(0, 0, c.tx, c.ty); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("absoluteAngleTo(0,0,%v,%v) = %v, want %v", c.tx, c.ty, got, c.want)
		}
	}
}

func TestArcContains(t *testing.T) {
	if !arcContains(0, 45, 20) {
		t.Error("20° should be inside a 0→45 sweep")
	}
	if arcContains(0, 45, 50) {
		t.Error("50° should be outside a 0→45 sweep")
	}
	if !arcContains(350, 30, 10) {
		t.Error("sweep across north should contain 10°")
	}
	if !arcContains(90, -45, 60) {
		t.Error("negative sweep should contain angles behind the start")
	}
	if !arcContains(90, 0, 90) {
		t.Error("zero-width sweep should still detect a target on the beam")
	}
}

func TestSegmentHitsCircle(t *testing.T) {
	if !segmentHitsCircle(0, 0, 100, 0, 50, 10, 18) {
		t.Error("segment passing 10px from centre should hit an 18px hull")
	}
	if segmentHitsCircle(0, 0, 100, 0, 50, 30, 18) {
		t.Error("segment passing 30px away should miss an 18px hull")
	}
	// Bullet faster than the gap: the swept segment must still connect.
	if !segmentHitsCircle(0, 0, 0, 200, 0, 100, 18) {
		t.Error("fast bullet should not tunnel through a hull on its path")
	}
}
