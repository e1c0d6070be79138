package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/levels"
	"github.com/automoto/platformer-core/server/core"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (ticks per second)")
	ticks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	levelDir := flag.String("dir", "", "Directory of .tmx levels (empty = bundled levels)")
	level := flag.String("level", "", "Level name inside -dir (empty = default platform)")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	direction := flag.Int("direction", 0, "Held direction: -1 left, 1 right, 0 none")
	logCollisions := flag.Bool("log-collisions", false, "Log every resolved contact")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *logCollisions {
		config.Debug.LogCollisions = true
	}

	opts := core.Options{
		TickRate:  *tickRate,
		MaxTicks:  *ticks,
		Direction: *direction,
	}

	if *level != "" {
		var set *core.LevelSet
		var err error
		if *levelDir == "" {
			set, err = core.LoadLevelSet(levels.FS, ".")
		} else {
			set, err = core.LoadLevelSet(os.DirFS(*levelDir), ".")
		}
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		if opts.Level, err = set.Get(*level); err != nil {
			log.Fatalf("Failed to select level: %v", err)
		}
	}

	server, err := core.NewServer(opts)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[server] shutting down...")
		server.Stop()
	}()

	log.Printf("[server] starting headless simulation (tick rate: %d/s, level: %q)", *tickRate, *level)
	server.Start()
}
