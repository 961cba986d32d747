package entity

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flappyshooter/assets"
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/prefabs"
)

// Builder turns tuning plus loaded art into entities. Art may be an empty
// Library; entities are then built without images.
type Builder struct {
	Spec   *prefabs.GameSpec
	Art    *assets.Library
	Volume float64
}

// NewBuilder checks spec and fills in an empty Library when art is nil.
func NewBuilder(spec *prefabs.GameSpec, art *assets.Library, volume float64) (*Builder, error) {
	if spec == nil {
		return nil, errors.New("entity: nil game spec")
	}
	if art == nil {
		art = &assets.Library{}
	}
	return &Builder{Spec: spec, Art: art, Volume: volume}, nil
}

func (b *Builder) birdFrames(color string) []*ebiten.Image {
	if b.Art == nil {
		return nil
	}
	return b.Art.Birds[color]
}

func firstFrame(frames []*ebiten.Image) *ebiten.Image {
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}

func centredSprite(img *ebiten.Image, w, h float64) *component.Sprite {
	if img != nil {
		w = float64(img.Bounds().Dx())
		h = float64(img.Bounds().Dy())
	}
	return &component.Sprite{Image: img, OriginX: w / 2, OriginY: h / 2}
}

func newTransform(x, y float64) *component.Transform {
	return &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func collider(spec prefabs.ColliderSpec) *component.Collider {
	return &component.Collider{Width: spec.Width, Height: spec.Height}
}

// adder collects the first error of a run of ecs.Add calls.
type adder struct {
	w   *ecs.World
	e   ecs.Entity
	err error
}

func add[T any](a *adder, kind component.ComponentKind[T], value *T) {
	if a.err != nil {
		return
	}
	if err := ecs.Add(a.w, a.e, kind, value); err != nil {
		a.err = err
	}
}

func (a *adder) done(what string) (ecs.Entity, error) {
	if a.err != nil {
		ecs.DestroyEntity(a.w, a.e)
		return 0, fmt.Errorf("%s: %w", what, a.err)
	}
	return a.e, nil
}

func newAdder(w *ecs.World) *adder {
	return &adder{w: w, e: ecs.CreateEntity(w)}
}
