package entity

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

func (b *Builder) NewPlayer(w *ecs.World) (ecs.Entity, error) {
	ps := b.Spec.Player
	frames := b.birdFrames(ps.Color)

	a := newAdder(w)
	add(a, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(a, component.BirdComponent.Kind(), &component.Bird{
		Acceleration: ps.Acceleration,
		MaxSpeed:     ps.MaxSpeed,
		JumpForce:    ps.JumpForce,
		Tilt:         ps.Tilt,
		StartX:       ps.StartX,
		StartY:       ps.StartY,
	})
	add(a, component.TransformComponent.Kind(), newTransform(ps.StartX, ps.StartY))
	add(a, component.ColliderComponent.Kind(), collider(ps.Collider))
	add(a, component.SpriteComponent.Kind(), centredSprite(firstFrame(frames), ps.Collider.Width, ps.Collider.Height))
	add(a, component.AnimationComponent.Kind(), &component.Animation{Frames: frames, TickLength: ps.FrameTicks})
	add(a, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer})
	return a.done("player")
}

// ResetPlayer puts the bird back at its start position, level and at rest,
// with the wing animation rewound.
func ResetPlayer(w *ecs.World, e ecs.Entity) {
	bird, ok := ecs.Get(w, e, component.BirdComponent.Kind())
	if !ok {
		return
	}
	bird.Velocity = 0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = bird.StartX
		t.Y = bird.StartY
		t.Rotation = 0
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Index = 0
		anim.Counter = 0
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && len(anim.Frames) > 0 {
			s.Image = anim.Frames[0]
		}
	}
}
