package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/system"
	"github.com/milk9111/hexboard/prefabs"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var backgroundColor = color.NRGBA{R: 0x1c, G: 0x1e, B: 0x24, A: 0xff}

type Game struct {
	cfg    Config
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	spawn     *system.TileSpawnSystem
	camera    *system.CameraSystem

	hud       *HUD
	watcher   *prefabs.Watcher
	clipboard bool
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		world:  ecs.NewWorld(),
		spawn:  system.NewTileSpawnSystem(cfg.Board),
		camera: system.NewCameraSystem(),
	}
	g.spawn.Radius = uint32(cfg.Radius)
	g.spawn.Picker = cfg.Picker

	renderer := system.NewRenderSystem()
	renderer.Outline = cfg.Outline

	g.scheduler = ecs.NewScheduler(
		g.camera,
		system.NewInputSystem(),
		system.NewHighlightSystem(),
		system.NewTileFadeSystem(),
		renderer,
	)
	g.scheduler.AddStartup(g.spawn)

	g.hud = NewHUD(g.clearBoard)

	if cfg.Watch {
		w, err := prefabs.NewDiskWatcher()
		if err != nil {
			return nil, fmt.Errorf("hexboard: watch %s: %w", prefabs.DiskDir, err)
		}
		g.watcher = w
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("hexboard: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("hexboard: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.pollWatcher()

	g.hud.Update()
	g.scheduler.Update(g.world)

	g.drainEvents()
	if err := g.spawn.Err(); err != nil {
		g.hud.SetStatus("board: " + err.Error())
	}

	if copyPressed() {
		g.copySelection()
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Poll()
	for _, name := range changed {
		log.Printf("hexboard: %s changed, rebuilding board", name)
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("hexboard: watch: %v", err)
		}
	default:
	}
	if len(changed) > 0 {
		g.hud.SetStatus("")
		g.scheduler.Reset()
	}
}

// clearBoard runs from the HUD callback, before the scheduler flushes the
// event queue, so it hands its own events to the HUD.
func (g *Game) clearBoard() {
	n := system.ClearHighlights(g.world)
	g.drainEvents()
	g.hud.SetStatus(fmt.Sprintf("cleared %d tiles", n))
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		g.hud.HandleEvent(evt)
	}
}

func copyPressed() bool {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func (g *Game) copySelection() {
	sel, ok := system.SelectedTile(g.world)
	if !ok {
		return
	}
	text := formatSelection(sel)
	if !g.clipboard {
		log.Printf("hexboard: selection %s (clipboard unavailable)", text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.hud.SetStatus("copied " + text)
}

// formatSelection renders a selection as "x,y".
func formatSelection(sel component.Selection) string {
	return fmt.Sprintf("%d,%d", sel.Pos.X, sel.Pos.Y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scheduler.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, g.debugLine(), 8, screen.Bounds().Dy()-20)
	}
}

func (g *Game) debugLine() string {
	tiles := len(g.world.Query(component.TilePosComponent.Kind()))
	line := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    Tiles: %d", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), tiles)
	if sel, ok := system.SelectedTile(g.world); ok {
		line += fmt.Sprintf("    Selected: %s (%d clicks)", formatSelection(sel), sel.Clicks)
	}
	return line
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
