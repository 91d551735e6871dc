package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tankduel/internal/arena"
	"tankduel/internal/bot"
)

func main() {
	var seed int64
	var opponent string
	flag.Int64Var(&seed, "seed", 42, "battle RNG seed")
	flag.StringVar(&opponent, "opponent", "drifter", "opponent: drifter or duck")
	flag.Parse()

	var foe arena.Robot
	switch opponent {
	case "drifter":
		foe = arena.NewDrifter(120)
	case "duck":
		foe = arena.SittingDuck{}
	default:
		log.Fatalf("unknown opponent %q (supported: drifter, duck)", opponent)
	}

	sim := arena.NewBattleSim(
		arena.WithSeed(seed),
		arena.WithTank("ronaldo", bot.New(), 150, 150, 0),
		arena.WithTank(opponent, foe, 650, 450, 180),
	)

	view := arena.NewView(sim)
	ebiten.SetWindowTitle("Tank Duel")
	ebiten.SetWindowSize(view.WindowSize())
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal(err)
	}
}
