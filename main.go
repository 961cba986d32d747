package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flappyshooter/assets"
	"github.com/milk9111/flappyshooter/config"
	"github.com/milk9111/flappyshooter/ecs/system"
	"github.com/milk9111/flappyshooter/prefabs"
)

func main() {
	cfgFile := flag.String("config", "", "settings file (default is $HOME/.flappyshooter.yaml)")
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Uint64("seed", 0, "random seed for spawns (0 picks one)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	v, err := config.InitSettings(*cfgFile)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	settings := config.Load(v)
	if *debug {
		settings.Debug = true
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	art, err := assets.LoadLibrary(spec)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	game, err := NewGame(spec, art, settings, system.NewEbitenInput())
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	defer game.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	scale := settings.WindowScale
	ebiten.SetWindowSize(int(float64(spec.Screen.Width)*scale), int(float64(spec.Screen.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Flappy Shooter")
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
