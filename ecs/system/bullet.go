package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (b *BulletSystem) Update(w *ecs.World) {
	if currentPhase(w) != component.PhasePlaying {
		return
	}
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bullet *component.Bullet, t *component.Transform) {
		t.X += bullet.Speed * bullet.Direction
	})
}
