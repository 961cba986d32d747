package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if currentPhase(w) == component.PhaseGameOver {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		Advance(anim)
		if len(anim.Frames) > 0 {
			sprite.Image = anim.Frames[anim.Index]
		}
	})
}

// Advance steps anim by one tick. The frame changes once Counter exceeds
// TickLength; past the last frame it wraps to LoopFrom.
func Advance(anim *component.Animation) {
	n := len(anim.Frames)
	if n == 0 {
		return
	}

	anim.Counter++
	if anim.Counter <= anim.TickLength {
		return
	}
	anim.Counter = 0
	anim.Index++
	if anim.Index >= n {
		anim.Index = anim.LoopFrom
		if anim.Index < 0 || anim.Index >= n {
			anim.Index = 0
		}
	}
}
