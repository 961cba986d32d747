package entity

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// PipePair holds the three entities of one obstacle.
type PipePair struct {
	Top    ecs.Entity
	Bottom ecs.Entity
	Gate   ecs.Entity
}

// NewPipePair spawns a pipe pair whose left edge is at x and whose gap is
// centred on centreY.
func (b *Builder) NewPipePair(w *ecs.World, x, centreY float64, pair int) (PipePair, error) {
	ps := b.Spec.Pipe
	pw, ph := ps.Collider.Width, ps.Collider.Height
	cx := x + pw/2
	scroll := &component.Scroll{Speed: ps.ScrollSpeed}

	pipe := func(cy float64, flipped bool) (ecs.Entity, error) {
		a := newAdder(w)
		add(a, component.PipeComponent.Kind(), &component.Pipe{Pair: pair, Flipped: flipped})
		add(a, component.TransformComponent.Kind(), newTransform(cx, cy))
		add(a, component.ColliderComponent.Kind(), collider(ps.Collider))
		sprite := centredSprite(b.Art.Pipe, pw, ph)
		sprite.FlipY = flipped
		add(a, component.SpriteComponent.Kind(), sprite)
		s := *scroll
		add(a, component.ScrollComponent.Kind(), &s)
		add(a, component.CullComponent.Kind(), &component.Cull{Left: true})
		add(a, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPipes})
		return a.done("pipe")
	}

	var out PipePair
	var err error
	if out.Bottom, err = pipe(centreY+ps.Gap/2+ph/2, false); err != nil {
		return PipePair{}, err
	}
	if out.Top, err = pipe(centreY-ps.Gap/2-ph/2, true); err != nil {
		ecs.DestroyEntity(w, out.Bottom)
		return PipePair{}, err
	}

	a := newAdder(w)
	add(a, component.GateComponent.Kind(), &component.Gate{Pair: pair})
	add(a, component.TransformComponent.Kind(), newTransform(cx, centreY))
	add(a, component.ColliderComponent.Kind(), &component.Collider{Width: pw, Height: ps.Gap})
	s := *scroll
	add(a, component.ScrollComponent.Kind(), &s)
	add(a, component.CullComponent.Kind(), &component.Cull{Left: true})
	if out.Gate, err = a.done("gate"); err != nil {
		ecs.DestroyEntity(w, out.Bottom)
		ecs.DestroyEntity(w, out.Top)
		return PipePair{}, err
	}
	return out, nil
}

// NewEnemy spawns an enemy bird centred on (x, y), facing left.
func (b *Builder) NewEnemy(w *ecs.World, x, y float64, color string) (ecs.Entity, error) {
	es := b.Spec.Enemy
	frames := b.birdFrames(color)

	a := newAdder(w)
	add(a, component.EnemyComponent.Kind(), &component.Enemy{
		SpeedX:    es.SpeedX,
		Amplitude: es.Amplitude,
		WaveStep:  es.WaveStep,
		Color:     color,
	})
	add(a, component.TransformComponent.Kind(), newTransform(x, y))
	add(a, component.ColliderComponent.Kind(), collider(es.Collider))
	sprite := centredSprite(firstFrame(frames), es.Collider.Width, es.Collider.Height)
	sprite.FacingLeft = true
	add(a, component.SpriteComponent.Kind(), sprite)
	add(a, component.AnimationComponent.Kind(), &component.Animation{Frames: frames, TickLength: es.FrameTicks})
	add(a, component.CullComponent.Kind(), &component.Cull{Left: true})
	add(a, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerEnemies})
	return a.done("enemy")
}

// NewBullet spawns a projectile centred on (x, y).
func (b *Builder) NewBullet(w *ecs.World, x, y float64) (ecs.Entity, error) {
	bs := b.Spec.Bullet

	a := newAdder(w)
	add(a, component.BulletComponent.Kind(), &component.Bullet{Speed: bs.Speed, Direction: bs.Direction})
	add(a, component.TransformComponent.Kind(), newTransform(x, y))
	add(a, component.ColliderComponent.Kind(), collider(bs.Collider))
	add(a, component.SpriteComponent.Kind(), centredSprite(firstFrame(b.Art.Bullet), bs.Collider.Width, bs.Collider.Height))
	add(a, component.AnimationComponent.Kind(), &component.Animation{
		Frames:     b.Art.Bullet,
		TickLength: bs.FrameTicks,
		LoopFrom:   bs.LoopFrom,
	})
	add(a, component.CullComponent.Kind(), &component.Cull{Left: true, Right: true})
	add(a, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBullets})
	return a.done("bullet")
}
