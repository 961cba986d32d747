package entity

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// NewBackground creates one entity per parallax layer. Layer transforms are
// top-left anchored.
func (b *Builder) NewBackground(w *ecs.World) ([]ecs.Entity, error) {
	bg := b.Spec.Background
	out := make([]ecs.Entity, 0, len(bg.Layers))
	for _, layer := range bg.Layers {
		index := component.LayerBackground
		if layer.Foreground {
			index = component.LayerGround
		}

		a := newAdder(w)
		add(a, component.TransformComponent.Kind(), newTransform(0, layer.Y))
		add(a, component.SpriteComponent.Kind(), &component.Sprite{Image: b.Art.Layers[layer.Image]})
		add(a, component.ParallaxComponent.Kind(), &component.Parallax{Speed: layer.Speed, Wrap: bg.Wrap})
		add(a, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index})
		e, err := a.done("background " + layer.Image)
		if err != nil {
			for _, prev := range out {
				ecs.DestroyEntity(w, prev)
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
