package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/entity"
)

// SpawnSystem releases pipe pairs and enemies off the right screen edge on
// tick timers while playing.
type SpawnSystem struct {
	builder *entity.Builder
	rng     *rand.Rand
}

func NewSpawnSystem(builder *entity.Builder, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpawnSystem{builder: builder, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s.builder == nil || currentPhase(w) != component.PhasePlaying {
		return
	}
	e, ok := w.First(component.SpawnerComponent.Kind())
	if !ok {
		return
	}
	sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())

	spec := s.builder.Spec
	width := float64(spec.Screen.Width)

	sp.PipeTimer++
	if sp.PipeTimer >= spec.Pipe.IntervalTicks {
		sp.PipeTimer = 0
		offset := s.between(spec.Pipe.OffsetMin, spec.Pipe.OffsetMax)
		centre := float64(spec.Screen.Height/2 + offset)
		if _, err := s.builder.NewPipePair(w, width, centre, sp.NextPair); err != nil {
			log.Printf("spawn: %v", err)
		}
		sp.NextPair++
	}

	sp.EnemyTimer++
	if sp.EnemyTimer >= spec.Enemy.IntervalTicks {
		sp.EnemyTimer = 0
		y := float64(s.between(spec.Enemy.MinY, spec.Enemy.MaxY))
		color := spec.Enemy.Colors[s.rng.IntN(len(spec.Enemy.Colors))]
		if _, err := s.builder.NewEnemy(w, width, y, color); err != nil {
			log.Printf("spawn: %v", err)
		}
	}
}

// between is uniform over [lo, hi].
func (s *SpawnSystem) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
