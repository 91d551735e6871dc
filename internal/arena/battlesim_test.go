package arena

import (
	"testing"
)

func TestBattleSim_DeterministicUnderSeed(t *testing.T) {
	run := func() SimSnapshot {
		bs := NewBattleSim(
			WithSeed(99),
			WithRandomTank("a", NewDrifter(120)),
			WithRandomTank("b", NewDrifter(90)),
		)
		bs.RunTicks(500)
		return bs.Snapshot()
	}

	first := run()
	second := run()

	if len(first.Tanks) != len(second.Tanks) {
		t.Fatal("tank counts differ between identical runs")
	}
	for i := range first.Tanks {
		a, b := first.Tanks[i], second.Tanks[i]
		if a != b {
			t.Errorf("tank %d diverged: %+v vs %+v", i, a, b)
		}
	}
}

func TestBattleSim_DifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) SimSnapshot {
		bs := NewBattleSim(
			WithSeed(seed),
			WithRandomTank("a", NewDrifter(120)),
			WithRandomTank("b", SittingDuck{}),
		)
		bs.RunTicks(50)
		return bs.Snapshot()
	}
	if run(1).Tanks[0] == run(2).Tanks[0] {
		t.Error("different seeds produced identical placements")
	}
}

func TestBattleSim_RunUntil(t *testing.T) {
	bs := NewBattleSim(
		WithSeed(7),
		WithTank("a", SittingDuck{}, 200, 300, 0),
		WithTank("b", SittingDuck{}, 600, 300, 0),
	)
	tick := bs.RunUntil(func(b *BattleSim) bool {
		return b.Engine.TickCount() >= 25
	}, 100)
	if tick != 25 {
		t.Errorf("RunUntil returned %d, want 25", tick)
	}

	// Unsatisfiable predicate runs out the budget.
	tick = bs.RunUntil(func(b *BattleSim) bool { return false }, 10)
	if tick != -1 {
		t.Errorf("RunUntil returned %d, want -1 for an unmet predicate", tick)
	}
}

func TestBattleSim_SnapshotShape(t *testing.T) {
	bs := NewBattleSim(
		WithArenaSize(400, 400),
		WithTank("only", SittingDuck{}, 200, 200, 90),
	)
	bs.RunTicks(3)
	snap := bs.Snapshot()

	if snap.Tick != 3 {
		t.Errorf("snapshot tick = %d, want 3", snap.Tick)
	}
	if len(snap.Tanks) != 1 {
		t.Fatalf("snapshot tanks = %d, want 1", len(snap.Tanks))
	}
	ts := snap.Tanks[0]
	if ts.Name != "only" || !ts.Alive {
		t.Errorf("unexpected tank snapshot: %+v", ts)
	}
	if ts.X != 200 || ts.Y != 200 {
		t.Errorf("tank moved without commands: (%v,%v)", ts.X, ts.Y)
	}
}

func TestBattleSim_RandomPlacementInsideWalls(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		bs := NewBattleSim(
			WithSeed(seed),
			WithRandomTank("a", SittingDuck{}),
			WithRandomTank("b", SittingDuck{}),
		)
		for _, ts := range bs.Snapshot().Tanks {
			if ts.X < tankRadius || ts.X > bs.Width-tankRadius ||
				ts.Y < tankRadius || ts.Y > bs.Height-tankRadius {
				t.Errorf("seed %d: tank %s spawned at (%v,%v), outside the walls",
					seed, ts.Name, ts.X, ts.Y)
			}
		}
	}
}
