package main

import (
	"flag"
	"log"
	"net/http"

	"tankduel/internal/arena"
	"tankduel/internal/bot"
	"tankduel/internal/spectate"
)

func main() {
	var addr string
	var logFile string
	var seed int64
	var maxTicks int
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&logFile, "log", "arena-server.log", "server log file")
	flag.Int64Var(&seed, "seed", 42, "battle RNG seed")
	flag.IntVar(&maxTicks, "max-ticks", 20000, "ticks before the session ends")
	flag.Parse()

	if err := spectate.InitLogger(logFile); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer spectate.SyncLogger()

	sim := arena.NewBattleSim(
		arena.WithSeed(seed),
		arena.WithRandomTank("ronaldo", bot.New()),
		arena.WithRandomTank("drifter", arena.NewDrifter(120)),
	)
	hub := spectate.NewHub(sim)
	hub.Start(maxTicks)

	http.HandleFunc("/ws", hub.HandleWS)
	spectate.Log.Infow("arena server listening", "addr", addr, "seed", seed)
	if err := http.ListenAndServe(addr, nil); err != nil {
		spectate.Log.Fatalw("server stopped", "err", err)
	}
}
