package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
)

// ScoringSystem scores the earliest gate the player has not cleared yet.
type ScoringSystem struct{}

func NewScoringSystem() *ScoringSystem {
	return &ScoringSystem{}
}

func (sc *ScoringSystem) Update(w *ecs.World) {
	s := sessionState(w)
	if s == nil || s.Phase != component.PhasePlaying {
		return
	}
	_, t, col, _, ok := playerBody(w)
	if !ok {
		return
	}
	bird := component.Bounds(t, col)

	var target *component.Gate
	var gateBB cp.BB
	for _, g := range bodies(w, component.GateComponent.Kind()) {
		gate, _ := ecs.Get(w, g.e, component.GateComponent.Kind())
		if gate.Cleared {
			continue
		}
		if target == nil || g.bb.L < gateBB.L {
			target, gateBB = gate, g.bb
		}
	}
	if target == nil {
		return
	}

	if !target.Passed && bird.L > gateBB.L && bird.R < gateBB.R {
		target.Passed = true
		addScore(w, s, ecs.EventPipePassed)
	}
	if bird.L > gateBB.R {
		target.Passed = false
		target.Cleared = true
	}
}
