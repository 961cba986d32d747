package system

import (
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// sessionState returns the singleton session, or nil before one exists.
func sessionState(w *ecs.World) *component.Session {
	e, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}

// currentPhase reports PhaseReady when no session exists.
func currentPhase(w *ecs.World) component.Phase {
	if s := sessionState(w); s != nil {
		return s.Phase
	}
	return component.PhaseReady
}

func sessionInput(w *ecs.World) component.Input {
	e, ok := w.First(component.InputComponent.Kind())
	if !ok {
		return component.Input{}
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return component.Input{}
	}
	return *in
}

func requestCue(w *ecs.World, name string) {
	e, ok := w.First(component.AudioComponent.Kind())
	if !ok {
		return
	}
	a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	a.Request(name)
}

func setPhase(w *ecs.World, s *component.Session, phase component.Phase) {
	if s == nil || s.Phase == phase {
		return
	}
	s.Phase = phase
	w.Events().Push(ecs.Event{Type: ecs.EventPhaseChanged, Data: phase})
}

func addScore(w *ecs.World, s *component.Session, eventType string) {
	if s == nil {
		return
	}
	s.Score++
	requestCue(w, CueScore)
	w.Events().Push(ecs.Event{Type: eventType, Data: s.Score})
}

// playerBody returns the player's transform, collider and flight model.
func playerBody(w *ecs.World) (ecs.Entity, *component.Transform, *component.Collider, *component.Bird, bool) {
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, nil, nil, false
	}
	t, ok1 := ecs.Get(w, e, component.TransformComponent.Kind())
	c, ok2 := ecs.Get(w, e, component.ColliderComponent.Kind())
	b, ok3 := ecs.Get(w, e, component.BirdComponent.Kind())
	if !ok1 || !ok2 || !ok3 {
		return 0, nil, nil, nil, false
	}
	return e, t, c, b, true
}

// Sound cue names requested by systems.
const (
	CueFlap  = "flap"
	CueScore = "score"
	CueHit   = "hit"
	CueShoot = "shoot"
)
