package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World)
}

// RenderSystem is implemented by systems that also draw.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs startup systems once, on the first Update, then the update
// systems every frame.
type Scheduler struct {
	startup []System
	systems []System
	started bool
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// AddStartup registers a system for the one-time startup stage.
func (s *Scheduler) AddStartup(system System) {
	if system == nil {
		return
	}
	s.startup = append(s.startup, system)
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Reset re-arms the startup stage so it runs again on the next Update.
func (s *Scheduler) Reset() {
	s.started = false
}

// Started reports whether the startup stage has run.
func (s *Scheduler) Started() bool {
	return s.started
}

func (s *Scheduler) Update(w *World) {
	w.Events().flush()
	if !s.started {
		s.started = true
		for _, system := range s.startup {
			system.Update(w)
		}
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Draw calls every scheduled system that implements RenderSystem.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, system := range s.systems {
		if rs, ok := system.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.startup)+len(s.systems))
	systems = append(systems, s.startup...)
	return append(systems, s.systems...)
}
