package bot

import (
	"math"
	"testing"

	"tankduel/internal/arena"
)

func TestRadarSweepTurn_SnapsOntoBearingWithOvershoot(t *testing.T) {
	// Radar already on the body heading, enemy 30° to the right:
	// the beam should swing to the enemy plus 30° of overshoot.
	if got := radarSweepTurn(0, 0, 30, 1); got != 60 {
		t.Errorf("sweep turn = %v, want 60", got)
	}
	// Opposite scan direction undershoots by the same margin.
	if got := radarSweepTurn(0, 0, 30, -1); got != 0 {
		t.Errorf("sweep turn = %v, want 0", got)
	}
}

func TestRadarSweepTurn_CompensatesRadarOffset(t *testing.T) {
	// Radar pointing 90° right of the body, enemy dead ahead: the beam
	// must swing back across the body heading.
	got := radarSweepTurn(0, 90, 0, 1)
	if got != -60 {
		t.Errorf("sweep turn = %v, want -60", got)
	}
}

func TestRadarSweepTurn_Normalized(t *testing.T) {
	got := radarSweepTurn(350, 10, 170, 1)
	if got <= -180 || got > 180 {
		t.Errorf("sweep turn %v outside (-180, 180]", got)
	}
}

func TestBot_ScanDirectionAlternates(t *testing.T) {
	b := New()
	ctl := &fakeController{tick: 3, velocity: 5}
	scan := arena.Scan{Bearing: 10, Distance: 200}

	// Same bearing every call: successive radar commands must differ by
	// exactly the flipped overshoot (+30 then -30 then +30 ...).
	var turns []float64
	for i := 0; i < 4; i++ {
		ctl.tick++
		b.OnScanned(ctl, scan)
		turns = append(turns, ctl.lastRadarTurn())
	}
	want := []float64{40, -20, 40, -20}
	for i := range want {
		if math.Abs(turns[i]-want[i]) > 1e-12 {
			t.Errorf("radar turn %d = %v, want %v", i, turns[i], want[i])
		}
	}
}

func TestBot_ModeTransitions(t *testing.T) {
	b := New()
	ctl := &fakeController{}

	if b.Mode() != ModeSearching {
		t.Fatalf("new bot mode = %v, want searching", b.Mode())
	}

	// A detection switches to tracking.
	ctl.tick = 5
	ctl.velocity = 3
	b.OnScanned(ctl, arena.Scan{Bearing: 0, Distance: 300})
	if b.Mode() != ModeTracking {
		t.Fatalf("mode after scan = %v, want tracking", b.Mode())
	}

	// Quiet ticks inside the timeout keep tracking.
	ctl.tick = 5 + trackTimeout
	b.Tick(ctl)
	if b.Mode() != ModeTracking {
		t.Errorf("mode before timeout = %v, want tracking", b.Mode())
	}

	// One past the timeout falls back to searching.
	ctl.tick = 5 + trackTimeout + 1
	b.Tick(ctl)
	if b.Mode() != ModeSearching {
		t.Errorf("mode after timeout = %v, want searching", b.Mode())
	}
}

func TestBot_SearchingSpinsRadar(t *testing.T) {
	b := New()
	ctl := &fakeController{tick: 1}

	b.Tick(ctl)
	if got := ctl.lastRadarTurn(); got != searchSweep {
		t.Errorf("idle radar turn = %v, want %v", got, searchSweep)
	}
	if ctl.executes != 1 {
		t.Errorf("executes = %d, want 1", ctl.executes)
	}

	// A sweep still in progress is left alone.
	ctl.radarTurnRemaining = 120
	before := len(ctl.radarTurns)
	b.Tick(ctl)
	if len(ctl.radarTurns) != before {
		t.Error("bot renewed the search sweep before it finished")
	}
}
