package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flappyshooter/assets"
	"github.com/milk9111/flappyshooter/config"
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/entity"
	"github.com/milk9111/flappyshooter/ecs/system"
	"github.com/milk9111/flappyshooter/prefabs"
)

type Game struct {
	spec     *prefabs.GameSpec
	art      *assets.Library
	settings config.Settings

	world    *ecs.World
	builder  *entity.Builder
	pipeline *system.Pipeline
	input    *latchedInput
	overlay  *ebitenui.UI
	watcher  *prefabs.Watcher
}

// latchedInput merges the overlay's restart click into the device input.
type latchedInput struct {
	source  system.InputSource
	restart bool
}

func (l *latchedInput) Poll() system.RawInput {
	var raw system.RawInput
	if l.source != nil {
		raw = l.source.Poll()
	}
	raw.Restart = raw.Restart || l.restart
	l.restart = false
	return raw
}

func NewGame(spec *prefabs.GameSpec, art *assets.Library, settings config.Settings, source system.InputSource) (*Game, error) {
	g := &Game{
		settings: settings,
		input:    &latchedInput{source: source},
	}
	if err := g.build(spec, art); err != nil {
		return nil, err
	}
	if settings.Debug {
		g.startWatcher()
	}
	return g, nil
}

// build replaces the world with a fresh one for spec. On error the game is
// left as it was.
func (g *Game) build(spec *prefabs.GameSpec, art *assets.Library) error {
	if art == nil {
		art = &assets.Library{}
	}
	builder, err := entity.NewBuilder(spec, art, g.settings.EffectiveVolume())
	if err != nil {
		return err
	}

	var wave system.Wave = system.SineWave{}
	if spec.Enemy.Script != "" {
		script, err := system.NewWaveScript(spec.Enemy.Script)
		if err != nil {
			return err
		}
		wave = script
	}

	seed := g.settings.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w := ecs.NewWorld()
	if _, err := builder.NewBackground(w); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if _, err := builder.NewSession(w); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if _, err := builder.NewPlayer(w); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.spec = spec
	g.art = art
	g.builder = builder
	g.world = w
	g.pipeline = system.NewPipeline(builder, g.input, wave, rng)
	g.overlay = nil
	if art.GameOver != nil && art.Restart != nil {
		g.overlay = NewGameOverUI(art, spec, g.requestRestart)
	}
	if g.settings.Debug {
		log.Printf("game: %s ready (seed %d)", spec.Name, seed)
	}
	return nil
}

func (g *Game) requestRestart() {
	g.input.restart = true
}

func (g *Game) phase() component.Phase {
	e, ok := g.world.First(component.SessionComponent.Kind())
	if !ok {
		return component.PhaseReady
	}
	s, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	return s.Phase
}

func (g *Game) quitRequested() bool {
	e, ok := g.world.First(component.InputComponent.Kind())
	if !ok {
		return false
	}
	in, _ := ecs.Get(g.world, e, component.InputComponent.Kind())
	return in.Quit
}

func (g *Game) Update() error {
	g.reloadIfChanged()

	g.pipeline.Scheduler.Update(g.world)
	if g.quitRequested() {
		return ebiten.Termination
	}

	if g.settings.Debug {
		for _, evt := range g.world.Events().Pending() {
			log.Printf("event: %s %v", evt.Type, evt.Data)
		}
	}

	if g.overlay != nil && g.phase() == component.PhaseGameOver {
		g.overlay.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.pipeline.Scheduler.Draw(g.world, screen)

	if g.overlay != nil && g.phase() == component.PhaseGameOver {
		g.overlay.Draw(screen)
	}

	if g.settings.Debug {
		g.pipeline.Debug.Draw(g.world, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Screen.Width), float64(g.spec.Screen.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
