package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/entity"
)

// PhaseSystem owns the ready, playing and game-over transitions that input
// drives. Collision decides when a run ends.
type PhaseSystem struct {
	builder        *entity.Builder
	restartToReady bool
}

func NewPhaseSystem(builder *entity.Builder) *PhaseSystem {
	p := &PhaseSystem{builder: builder}
	if builder != nil && builder.Spec != nil {
		p.restartToReady = builder.Spec.RestartToReady
	}
	return p
}

func (p *PhaseSystem) Update(w *ecs.World) {
	s := sessionState(w)
	if s == nil {
		return
	}
	input := sessionInput(w)

	switch s.Phase {
	case component.PhaseReady:
		if input.JumpPressed || input.ShootPressed {
			setPhase(w, s, component.PhasePlaying)
		}
	case component.PhaseGameOver:
		if input.Restart {
			p.Restart(w)
		}
	}

	if s.Phase == component.PhasePlaying {
		s.Ticks++
	}
}

// Restart clears the obstacles, enemies and bullets of the last run and
// puts the player, score and spawn timers back to their starting state.
func (p *PhaseSystem) Restart(w *ecs.World) {
	s := sessionState(w)
	if s == nil {
		return
	}

	for _, e := range w.Query(component.PipeComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.GateComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.EnemyComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.BulletComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		entity.ResetPlayer(w, player)
	}

	s.Score = 0
	s.Ticks = 0
	if e, ok := w.First(component.SpawnerComponent.Kind()); ok && p.builder != nil {
		sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())
		*sp = *p.builder.FreshSpawner()
	}

	w.Events().Push(ecs.Event{Type: ecs.EventRestarted, Data: 0})
	if p.restartToReady {
		setPhase(w, s, component.PhaseReady)
	} else {
		setPhase(w, s, component.PhasePlaying)
	}
}
