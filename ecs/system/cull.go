package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// CullSystem destroys entities that have fully left the screen.
type CullSystem struct {
	screenW float64
}

func NewCullSystem(screenW float64) *CullSystem {
	return &CullSystem{screenW: screenW}
}

func (c *CullSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.CullComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, cull *component.Cull, t *component.Transform, col *component.Collider) {
		bb := component.Bounds(t, col)
		if (cull.Left && bb.R < 0) || (cull.Right && bb.L > c.screenW) {
			ecs.DestroyEntity(w, e)
		}
	})
}
