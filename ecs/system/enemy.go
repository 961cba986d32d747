package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// EnemySystem flies enemy birds left at the ground scroll speed plus their
// own speed, bobbing on a wave until they reach the ground.
type EnemySystem struct {
	wave        Wave
	scrollSpeed float64
	groundY     float64
}

func NewEnemySystem(wave Wave, scrollSpeed, groundY float64) *EnemySystem {
	if wave == nil {
		wave = SineWave{}
	}
	return &EnemySystem{wave: wave, scrollSpeed: scrollSpeed, groundY: groundY}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if currentPhase(w) == component.PhaseGameOver {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, t *component.Transform, c *component.Collider) {
		t.X += -s.scrollSpeed + en.SpeedX
		en.WaveTimer += en.WaveStep

		if t.Y+c.Height/2 < s.groundY {
			t.Y += s.wave.DY(en.WaveTimer, en.Amplitude)
		} else {
			t.Y--
		}
	})
}
