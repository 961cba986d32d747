package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// CollisionSystem resolves bullet kills and ends the run when the player
// hits a pipe, an enemy, the screen top or the ground.
type CollisionSystem struct {
	groundY float64
}

func NewCollisionSystem(groundY float64) *CollisionSystem {
	return &CollisionSystem{groundY: groundY}
}

type body struct {
	e  ecs.Entity
	bb cp.BB
}

func bodies(w *ecs.World, kind component.Kind) []body {
	ents := w.Query(kind, component.TransformComponent.Kind(), component.ColliderComponent.Kind())
	out := make([]body, 0, len(ents))
	for _, e := range ents {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		out = append(out, body{e: e, bb: component.Bounds(t, c)})
	}
	return out
}

func (c *CollisionSystem) Update(w *ecs.World) {
	s := sessionState(w)
	if s == nil || s.Phase != component.PhasePlaying {
		return
	}

	enemies := bodies(w, component.EnemyComponent.Kind())
	killed := make(map[ecs.Entity]bool, len(enemies))
	for _, bullet := range bodies(w, component.BulletComponent.Kind()) {
		for _, enemy := range enemies {
			if killed[enemy.e] || !component.Overlaps(bullet.bb, enemy.bb) {
				continue
			}
			killed[enemy.e] = true
			ecs.DestroyEntity(w, enemy.e)
			ecs.DestroyEntity(w, bullet.e)
			addScore(w, s, ecs.EventEnemyKilled)
			break
		}
	}

	_, t, col, _, ok := playerBody(w)
	if !ok {
		return
	}
	bird := component.Bounds(t, col)

	hit := bird.B < 0 || bird.T >= c.groundY
	for _, pipe := range bodies(w, component.PipeComponent.Kind()) {
		if hit {
			break
		}
		hit = component.Overlaps(bird, pipe.bb)
	}
	for _, enemy := range enemies {
		if hit {
			break
		}
		hit = !killed[enemy.e] && component.Overlaps(bird, enemy.bb)
	}
	if !hit {
		return
	}

	requestCue(w, CueHit)
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: s.Score})
	setPhase(w, s, component.PhaseGameOver)
}
