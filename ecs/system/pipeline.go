package system

import (
	"math/rand/v2"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/entity"
)

// Pipeline is the full per-tick system order plus handles the game needs
// between ticks.
type Pipeline struct {
	Scheduler *ecs.Scheduler
	Phase     *PhaseSystem
	Debug     *DebugSystem
}

// NewPipeline wires every gameplay system in update order; the render and
// HUD passes draw in that order after it.
func NewPipeline(b *entity.Builder, source InputSource, wave Wave, rng *rand.Rand) *Pipeline {
	spec := b.Spec
	p := &Pipeline{
		Phase: NewPhaseSystem(b),
		Debug: NewDebugSystem(),
	}

	p.Scheduler = ecs.NewScheduler(
		NewInputSystem(source),
		p.Phase,
		NewBirdSystem(spec.GroundY),
		NewShootSystem(b),
		NewSpawnSystem(b, rng),
		NewScrollSystem(),
		NewParallaxSystem(),
		NewEnemySystem(wave, spec.Pipe.ScrollSpeed, spec.GroundY),
		NewBulletSystem(),
		NewAnimationSystem(),
		NewCollisionSystem(spec.GroundY),
		NewScoringSystem(),
		NewCullSystem(float64(spec.Screen.Width)),
		NewAudioSystem(),
	)
	p.Scheduler.AddRenderer(NewRenderSystem())
	p.Scheduler.AddRenderer(NewHUDSystem(b.Art.Digits, spec.Screen.Width, spec.HUD.ScoreY))

	return p
}
