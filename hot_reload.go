package main

import (
	"log"

	"github.com/milk9111/flappyshooter/assets"
	"github.com/milk9111/flappyshooter/prefabs"
)

func (g *Game) startWatcher() {
	dirs := prefabs.Dirs()
	if len(dirs) == 0 {
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
		return
	}
	g.watcher = w
	log.Printf("hot reload: watching %v", dirs)
}

// reloadIfChanged rebuilds the run from fresh tuning after a prefab or
// script edit. A bad edit is logged and the current run carries on.
func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	if !g.watcher.Changed(func(err error) { log.Printf("hot reload: %v", err) }) {
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("hot reload: keeping previous tuning: %v", err)
		return
	}
	art := g.art
	if len(g.art.Birds) > 0 {
		if art, err = assets.LoadLibrary(spec); err != nil {
			log.Printf("hot reload: keeping previous tuning: %v", err)
			return
		}
	}

	if err := g.build(spec, art); err != nil {
		log.Printf("hot reload: keeping previous tuning: %v", err)
		return
	}
	log.Printf("hot reload: applied %s", prefabs.GameFile)
}
