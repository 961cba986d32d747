package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flappyshooter/config"
	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/system"
	"github.com/milk9111/flappyshooter/prefabs"
)

type stubInput struct {
	next system.RawInput
}

func (s *stubInput) Poll() system.RawInput {
	return s.next
}

func newTestGame(t *testing.T) (*Game, *stubInput) {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	in := &stubInput{}
	g, err := NewGame(spec, nil, config.Settings{Seed: 11, Volume: 1}, in)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g, in
}

func (g *Game) mustUpdate(t *testing.T, n int) {
	t.Helper()
	for range n {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestGameLayout(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.LayoutF(100, 100)
	if w != 864 || h != 936 {
		t.Fatalf("LayoutF = %vx%v, want 864x936", w, h)
	}
}

func TestGameQuit(t *testing.T) {
	g, in := newTestGame(t)
	g.mustUpdate(t, 3)

	in.next = system.RawInput{Quit: true}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update with quit = %v, want ebiten.Termination", err)
	}
}

func TestOverlayRestartLatch(t *testing.T) {
	g, in := newTestGame(t)

	in.next = system.RawInput{Jump: true}
	g.mustUpdate(t, 1)
	in.next = system.RawInput{}

	for i := 0; g.phase() != component.PhaseGameOver; i++ {
		if i > 300 {
			t.Fatal("run never ended")
		}
		g.mustUpdate(t, 1)
	}

	g.mustUpdate(t, 5)
	if g.phase() != component.PhaseGameOver {
		t.Fatal("game over should hold without a restart")
	}

	g.requestRestart()
	g.mustUpdate(t, 1)
	if g.phase() != component.PhasePlaying {
		t.Fatalf("phase after restart click = %v, want playing", g.phase())
	}

	e, _ := g.world.First(component.SessionComponent.Kind())
	s, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	if s.Score != 0 {
		t.Fatalf("score after restart = %d", s.Score)
	}

	g.mustUpdate(t, 1)
	in2, _ := g.world.First(component.InputComponent.Kind())
	input, _ := ecs.Get(g.world, in2, component.InputComponent.Kind())
	if input.Restart {
		t.Fatal("restart latch should clear after one tick")
	}
}

func TestSeededRunsMatch(t *testing.T) {
	heights := func() []float64 {
		g, in := newTestGame(t)
		in.next = system.RawInput{Jump: true}
		g.mustUpdate(t, 1)
		in.next = system.RawInput{}
		var out []float64
		for _, e := range g.world.Query(component.GateComponent.Kind()) {
			tr, _ := ecs.Get(g.world, e, component.TransformComponent.Kind())
			out = append(out, tr.Y)
		}
		return out
	}

	a, b := heights(), heights()
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("same seed gave different first gaps: %v vs %v", a, b)
	}
}
