package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
)

// TileFadeSystem advances color fades and removes them once they finish.
type TileFadeSystem struct {
	// Step is the simulated time per update in seconds. Zero means one tick
	// at the current TPS.
	Step float64
}

func NewTileFadeSystem() *TileFadeSystem {
	return &TileFadeSystem{}
}

func (fs *TileFadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := float32(fs.step())

	var done []ecs.Entity
	ecs.ForEach2(w, component.TileFadeComponent.Kind(), component.TileColorComponent.Kind(), func(e ecs.Entity, fade *component.TileFade, c *component.TileColor) {
		channels := [4]*float32{&c.R, &c.G, &c.B, &c.A}
		finished := true
		for i, tw := range fade.Tweens {
			if tw == nil {
				continue
			}
			v, ok := tw.Update(dt)
			*channels[i] = v
			finished = finished && ok
		}
		if finished {
			*c = fade.Target
			done = append(done, e)
		}
	})

	for _, e := range done {
		ecs.Remove(w, e, component.TileFadeComponent.Kind())
	}
}

func (fs *TileFadeSystem) step() float64 {
	if fs.Step > 0 {
		return fs.Step
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}
