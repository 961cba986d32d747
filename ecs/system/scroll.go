package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// ScrollSystem moves pipes and gates left while playing.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if currentPhase(w) != component.PhasePlaying {
		return
	}
	ecs.ForEach2(w, component.ScrollComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sc *component.Scroll, t *component.Transform) {
		t.X -= sc.Speed
	})
}

// ParallaxSystem scrolls background layers while playing.
type ParallaxSystem struct{}

func NewParallaxSystem() *ParallaxSystem {
	return &ParallaxSystem{}
}

func (p *ParallaxSystem) Update(w *ecs.World) {
	if currentPhase(w) != component.PhasePlaying {
		return
	}
	ecs.ForEach2(w, component.ParallaxComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, px *component.Parallax, t *component.Transform) {
		t.X -= px.Speed
		if t.X <= -px.Wrap {
			t.X = 0
		}
	})
}
