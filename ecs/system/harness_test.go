package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/flappyshooter/ecs"
	"github.com/milk9111/flappyshooter/ecs/component"
	"github.com/milk9111/flappyshooter/ecs/entity"
	"github.com/milk9111/flappyshooter/prefabs"
)

type scriptedInput struct {
	next RawInput
}

func (s *scriptedInput) Poll() RawInput {
	return s.next
}

type fakeCue struct {
	plays   int
	rewinds int
	volume  float64
}

func (f *fakeCue) Rewind() error {
	f.rewinds++
	return nil
}

func (f *fakeCue) Play() {
	f.plays++
}

func (f *fakeCue) SetVolume(v float64) {
	f.volume = v
}

type harness struct {
	t        *testing.T
	w        *ecs.World
	builder  *entity.Builder
	input    *scriptedInput
	cues     map[string]*fakeCue
	pipeline *Pipeline
	player   ecs.Entity
	session  ecs.Entity
}

func newHarness(t *testing.T, tweak func(*prefabs.GameSpec)) *harness {
	t.Helper()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if tweak != nil {
		tweak(spec)
	}
	b, err := entity.NewBuilder(spec, nil, 1)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	h := &harness{
		t:       t,
		w:       ecs.NewWorld(),
		builder: b,
		input:   &scriptedInput{},
		cues:    make(map[string]*fakeCue),
	}

	if _, err := b.NewBackground(h.w); err != nil {
		t.Fatalf("NewBackground: %v", err)
	}
	if h.session, err = b.NewSession(h.w); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if h.player, err = b.NewPlayer(h.w); err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	a, _ := ecs.Get(h.w, h.session, component.AudioComponent.Kind())
	for i, name := range a.Names {
		cue := &fakeCue{}
		h.cues[name] = cue
		a.Players[i] = cue
	}

	h.pipeline = NewPipeline(b, h.input, SineWave{}, rand.New(rand.NewPCG(1, 2)))
	return h
}

func (h *harness) tick(n int) {
	for range n {
		h.pipeline.Scheduler.Update(h.w)
	}
}

// press holds the given input for one tick, then releases it for one tick.
func (h *harness) press(raw RawInput) {
	h.input.next = raw
	h.tick(1)
	h.input.next = RawInput{}
	h.tick(1)
}

func (h *harness) sessionState() *component.Session {
	s, ok := ecs.Get(h.w, h.session, component.SessionComponent.Kind())
	if !ok {
		h.t.Fatal("session missing")
	}
	return s
}

func (h *harness) playerTransform() *component.Transform {
	tr, ok := ecs.Get(h.w, h.player, component.TransformComponent.Kind())
	if !ok {
		h.t.Fatal("player transform missing")
	}
	return tr
}

func (h *harness) count(kind component.Kind) int {
	return len(h.w.Query(kind))
}

// runUntil ticks until cond holds, failing after limit ticks.
func (h *harness) runUntil(limit int, cond func() bool) int {
	for i := 1; i <= limit; i++ {
		h.tick(1)
		if cond() {
			return i
		}
	}
	h.t.Fatalf("condition not met within %d ticks", limit)
	return 0
}
