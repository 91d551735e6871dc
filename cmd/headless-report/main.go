package main

import (
	"flag"
	"fmt"
	"sort"

	"tankduel/internal/arena"
	"tankduel/internal/bot"
)

// runStats summarises one seeded duel from its battle log.
type runStats struct {
	runIndex int
	seed     int64

	winner         string
	endTick        int
	firstScanTick  int
	firstShotTick  int
	firstBloodTick int

	shotsFired map[string]int
	shotsHit   map[string]int
	wallHits   map[string]int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var opponent string

	flag.IntVar(&runs, "runs", 10, "number of headless duels")
	flag.IntVar(&ticks, "ticks", 5000, "tick cap per duel")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&opponent, "opponent", "drifter", "opponent: drifter or duck")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if opponent != "drifter" && opponent != "duck" {
		fmt.Printf("error: unsupported opponent %q (supported: drifter, duck)\n", opponent)
		return
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("opponent=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		opponent, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runDuel(i+1, seed, ticks, opponent)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all, opponent)
}

func runDuel(runIndex int, seed int64, ticks int, opponent string) runStats {
	var foe arena.Robot
	if opponent == "drifter" {
		foe = arena.NewDrifter(120)
	} else {
		foe = arena.SittingDuck{}
	}

	bs := arena.NewBattleSim(
		arena.WithSeed(seed),
		arena.WithRandomTank("ronaldo", bot.New()),
		arena.WithRandomTank(opponent, foe),
	)
	end := bs.RunUntil(func(b *arena.BattleSim) bool {
		return b.Engine.Over()
	}, ticks)
	if end < 0 {
		end = bs.Engine.TickCount()
	}

	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		endTick:    end,
		shotsFired: map[string]int{},
		shotsHit:   map[string]int{},
		wallHits:   map[string]int{},
	}
	if w := bs.Engine.Winner(); w != nil {
		rs.winner = w.Name()
	} else {
		rs.winner = "none"
	}
	rs.firstScanTick = firstTick(bs.Log, "radar", "scan")
	rs.firstShotTick = firstTick(bs.Log, "gun", "fire")
	rs.firstBloodTick = firstTick(bs.Log, "bullet", "hit")

	for _, t := range bs.Engine.Tanks() {
		rs.shotsFired[t.Name()] = t.ShotsFired()
		rs.shotsHit[t.Name()] = t.ShotsHit()
		rs.wallHits[t.Name()] = t.WallHits()
	}
	return rs
}

func firstTick(bl *arena.BattleLog, category, key string) int {
	if e, ok := bl.FirstOf(category, key); ok {
		return e.Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("winner=%s end_tick=%d first_shot=%d first_blood=%d\n",
		rs.winner, rs.endTick, rs.firstShotTick, rs.firstBloodTick)
	names := make([]string, 0, len(rs.shotsFired))
	for name := range rs.shotsFired {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fired := rs.shotsFired[name]
		fmt.Printf("  %-8s shots=%d hits=%d hit_rate=%s wall_hits=%d\n",
			name, fired, rs.shotsHit[name], rateString(rs.shotsHit[name], fired), rs.wallHits[name])
	}
	fmt.Println()
}

func printAggregate(all []runStats, opponent string) {
	wins := 0
	draws := 0
	totalFired := 0
	totalHit := 0
	totalWalls := 0
	endTicks := make([]int, 0, len(all))

	for _, rs := range all {
		switch rs.winner {
		case "ronaldo":
			wins++
		case "none":
			draws++
		}
		totalFired += rs.shotsFired["ronaldo"]
		totalHit += rs.shotsHit["ronaldo"]
		totalWalls += rs.wallHits["ronaldo"]
		endTicks = append(endTicks, rs.endTick)
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d losses=%d draws=%d win_rate=%s\n",
		len(all), wins, len(all)-wins-draws, draws, rateString(wins, len(all)))
	fmt.Printf("ronaldo_totals: shots=%d hits=%d hit_rate=%s wall_hits=%d\n",
		totalFired, totalHit, rateString(totalHit, totalFired), totalWalls)
	fmt.Printf("avg_duel_length=%s ticks (vs %s)\n", avgTickString(endTicks), opponent)
}

func rateString(num, den int) string {
	if den == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(num)/float64(den)*100)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
