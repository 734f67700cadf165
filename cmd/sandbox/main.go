package main

import (
	"flag"
	"log"

	"sandbox2d/internal/config"
	"sandbox2d/internal/game"
)

func main() {
	scenePath := flag.String("scene", "scenes/demo.yaml", "scene file to load (empty for a blank world)")
	configPath := flag.String("config", config.Path, "config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game.New(cfg, *scenePath).Run()
}
