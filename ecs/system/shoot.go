package system

import (
	"log"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/entity"
)

type ShootSystem struct {
	builder *entity.Builder
}

func NewShootSystem(builder *entity.Builder) *ShootSystem {
	return &ShootSystem{builder: builder}
}

func (s *ShootSystem) Update(w *ecs.World) {
	if s.builder == nil || currentPhase(w) != component.PhasePlaying || !sessionInput(w).ShootPressed {
		return
	}

	_, t, _, _, ok := playerBody(w)
	if !ok {
		return
	}

	if _, err := s.builder.NewBullet(w, t.X+s.builder.Spec.Bullet.MuzzleOffsetX, t.Y); err != nil {
		log.Printf("shoot: %v", err)
		return
	}
	requestCue(w, CueShoot)
}
