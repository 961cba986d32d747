package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World)
}

// Renderer is implemented by systems that draw.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

type Scheduler struct {
	systems   []System
	renderers []Renderer
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends system to the update order. Systems that also implement
// Renderer join the draw order too.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	if r, ok := system.(Renderer); ok {
		s.renderers = append(s.renderers, r)
	}
}

// AddRenderer appends a draw-only system.
func (s *Scheduler) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Update runs one tick. Events pushed during the previous tick are dropped
// first, so whatever is queued after Update returns belongs to this tick.
func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	w.events.flush()
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, r := range s.renderers {
		r.Draw(w, screen)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
