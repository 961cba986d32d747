package entity

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// NewSession creates the singleton carrying phase, score, input, sound cues
// and spawn timers. The pipe timer starts full so the first pair appears on
// the first playing tick.
func (b *Builder) NewSession(w *ecs.World) (ecs.Entity, error) {
	a := newAdder(w)
	add(a, component.SessionComponent.Kind(), &component.Session{Phase: component.PhaseReady})
	add(a, component.InputComponent.Kind(), &component.Input{})
	add(a, component.AudioComponent.Kind(), buildAudioComponent(b.Spec.Audio, b.Art.Sounds, b.Volume))
	add(a, component.SpawnerComponent.Kind(), b.FreshSpawner())
	return a.done("session")
}

// FreshSpawner returns spawn timers for the start of a run.
func (b *Builder) FreshSpawner() *component.Spawner {
	return &component.Spawner{PipeTimer: b.Spec.Pipe.IntervalTicks}
}
