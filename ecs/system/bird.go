package system

import (
	"math"

	"github.com/milk9111/flappyshooter/common"
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

type BirdSystem struct {
	groundY float64
}

func NewBirdSystem(groundY float64) *BirdSystem {
	return &BirdSystem{groundY: groundY}
}

func (b *BirdSystem) Update(w *ecs.World) {
	phase := currentPhase(w)
	input := sessionInput(w)

	ecs.ForEach3(w, component.BirdComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, bird *component.Bird, t *component.Transform, c *component.Collider) {
		if phase == component.PhasePlaying {
			bird.Velocity = min(bird.Velocity+bird.Acceleration, bird.MaxSpeed)
			if t.Y+c.Height/2 < b.groundY {
				t.Y += bird.Velocity
			}
		}

		if phase != component.PhaseGameOver && input.JumpPressed {
			bird.Velocity = -bird.JumpForce
			requestCue(w, CueFlap)
		}

		switch phase {
		case component.PhasePlaying:
			t.Rotation = common.Radians(bird.Velocity * bird.Tilt)
		case component.PhaseGameOver:
			t.Rotation = math.Pi / 2
		default:
			t.Rotation = 0
		}
	})
}
