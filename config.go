package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexboard/ecs/entity"
	"github.com/milk9111/hexboard/prefabs"
)

// MaxRadius is the largest -radius accepted. A radius of 256 is already
// close to 200k tiles.
const MaxRadius = 256

// Config holds the command line options.
type Config struct {
	Board       string
	Radius      uint
	Picker      string
	Scale       float64
	TPS         int
	Watch       bool
	BaseMonitor bool
	Debug       bool
	Outline     bool
}

func DefaultConfig() Config {
	return Config{
		Board: prefabs.DefaultBoard,
		Scale: 1,
		TPS:   ebiten.DefaultTPS,
	}
}

// Bind registers the flags on fs, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Board, "board", c.Board, "board spec in prefabs/ (basename, .yaml optional)")
	fs.UintVar(&c.Radius, "radius", c.Radius, "hexagon radius; overrides the board spec when > 0")
	fs.StringVar(&c.Picker, "picker", c.Picker, "tile picker: axial or shape; empty keeps the board spec")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "rebuild the board when files under prefabs/ change")
	fs.BoolVar(&c.BaseMonitor, "m", c.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug mode")
	fs.BoolVar(&c.Outline, "outline", c.Outline, "outline the selected tile")
}

func (c Config) Validate() error {
	switch c.Picker {
	case "", entity.PickerAxial, entity.PickerShape:
	default:
		return fmt.Errorf("config: unknown picker %q", c.Picker)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if c.Radius > MaxRadius {
		return fmt.Errorf("config: radius %d is larger than %d", c.Radius, MaxRadius)
	}
	return nil
}
