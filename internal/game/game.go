package game

import (
	"log"
	"math/rand"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sandbox2d/internal/config"
	"sandbox2d/internal/physics"
	"sandbox2d/internal/scene"
	"sandbox2d/internal/vmath"
)

// Game owns the window loop, the physics world and the UI state.
type Game struct {
	cfg     config.Config
	world   *physics.World
	stepper *physics.Stepper

	scenePath string
	watcher   *scene.Watcher

	paused     bool
	stepMs     float64
	spawnKind  physics.ShapeKind
	strategy   int
	strategies []string

	showGrid      bool
	showVelocity  bool
	showCounters  bool
	showInspector bool
}

func New(cfg config.Config, scenePath string) *Game {
	w := physics.NewWorld(vmath.New(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.Gravity = vmath.New(0, cfg.Physics.GravityY)
	if cfg.Physics.BruteForceThreshold > 0 {
		w.BruteForceThreshold = cfg.Physics.BruteForceThreshold
	}
	if cfg.Physics.BroadPhaseInterval > 0 {
		w.BroadPhaseInterval = cfg.Physics.BroadPhaseInterval
	}
	if cfg.Physics.NeighborInterval > 0 {
		w.NeighborInterval = cfg.Physics.NeighborInterval
	}
	if cfg.Physics.PeriodicInterval > 0 {
		w.PeriodicCheckInterval = cfg.Physics.PeriodicInterval
	}
	if cfg.Physics.Workers > 1 {
		w.SetWorkers(cfg.Physics.Workers)
	}

	g := &Game{
		cfg:           cfg,
		world:         w,
		stepper:       physics.NewStepper(w),
		scenePath:     scenePath,
		strategies:    []string{"grid", "adaptive", "quadtree", "sweep"},
		showGrid:      cfg.Overlay.ShowGrid,
		showVelocity:  cfg.Overlay.ShowVelocity,
		showCounters:  cfg.Overlay.ShowCounters,
		showInspector: cfg.Overlay.ShowInspector,
	}
	if cfg.Physics.StepDT > 0 {
		g.stepper.DT = cfg.Physics.StepDT
	}
	g.setStrategy(cfg.Physics.BroadPhase)
	return g
}

func (g *Game) setStrategy(name string) {
	bounds := g.world.Bounds()
	switch name {
	case "adaptive":
		g.world.SetBroadPhase(physics.NewAdaptiveGridBroadPhase(bounds))
		g.strategy = 1
	case "quadtree":
		g.world.SetBroadPhase(physics.NewQuadtreeBroadPhase(bounds))
		g.strategy = 2
	case "sweep":
		g.world.SetBroadPhase(physics.NewSweepBroadPhase())
		g.strategy = 3
	default:
		g.world.SetBroadPhase(physics.NewGridBroadPhase(g.cfg.Physics.CellSize))
		g.strategy = 0
	}
}

// Run opens the window and drives the update/draw loop until close.
func (g *Game) Run() {
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(g.cfg.Window.FPS))

	g.loadScene()
	g.startWatcher()
	defer g.stopWatcher()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) loadScene() {
	if g.scenePath == "" {
		return
	}
	s, err := scene.Load(g.scenePath)
	if err != nil {
		log.Printf("game: scene load: %v", err)
		return
	}
	g.world.Clear()
	n := s.Spawn(g.world)
	log.Printf("game: scene %q: %d bodies", s.Name, n)
}

func (g *Game) startWatcher() {
	if g.scenePath == "" {
		return
	}
	w, err := scene.NewWatcher(filepath.Dir(g.scenePath))
	if err != nil {
		log.Printf("game: scene watcher: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) stopWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Update handles input, hot reload and advances the simulation.
func (g *Game) Update() {
	g.drainWatcher()
	g.handleKeys()
	g.handleMouse()

	if !g.paused {
		start := time.Now()
		if steps := g.stepper.Advance(rl.GetFrameTime()); steps > 0 {
			stepMs := float64(time.Since(start).Microseconds()) / 1000 / float64(steps)
			// Smoothed so the HUD number is readable.
			g.stepMs = g.stepMs*0.9 + stepMs*0.1
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: scene watcher: %v", err)
		default:
			if reload {
				g.loadScene()
			}
			return
		}
	}
}

func (g *Game) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		g.paused = !g.paused
	case rl.IsKeyPressed(rl.KeyOne):
		g.spawnKind = physics.KindCircle
	case rl.IsKeyPressed(rl.KeyTwo):
		g.spawnKind = physics.KindRect
	case rl.IsKeyPressed(rl.KeyThree):
		g.spawnKind = physics.KindTriangle
	case rl.IsKeyPressed(rl.KeyB):
		g.strategy = (g.strategy + 1) % len(g.strategies)
		g.setStrategy(g.strategies[g.strategy])
	case rl.IsKeyPressed(rl.KeyG):
		g.showGrid = !g.showGrid
	case rl.IsKeyPressed(rl.KeyV):
		g.showVelocity = !g.showVelocity
	case rl.IsKeyPressed(rl.KeyC):
		g.showCounters = !g.showCounters
	case rl.IsKeyPressed(rl.KeyI):
		g.showInspector = !g.showInspector
	case rl.IsKeyPressed(rl.KeyR):
		g.loadScene()
	case rl.IsKeyPressed(rl.KeyDelete), rl.IsKeyPressed(rl.KeyX):
		if sel := g.world.Selected(); sel != nil {
			g.world.RemoveBody(sel)
		}
	}
}

func (g *Game) handleMouse() {
	mouse := rl.GetMousePosition()
	point := vmath.New(mouse.X, mouse.Y)

	// The inspector panel owns its rectangle; clicks there never reach the
	// world.
	if g.showInspector && g.inspectorContains(mouse) {
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if b := g.world.BeginDrag(point); b == nil {
			g.world.Select(nil)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		g.world.UpdateDrag(point)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.world.EndDrag()
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		g.spawnAt(point)
	}
}

func (g *Game) spawnAt(point vmath.Vector2) {
	var shape physics.Shape
	switch g.spawnKind {
	case physics.KindRect:
		shape = physics.NewRect(20+rand.Float32()*40, 20+rand.Float32()*40)
	case physics.KindTriangle:
		shape = physics.NewTriangle(20 + rand.Float32()*40)
	default:
		shape = physics.NewCircle(10 + rand.Float32()*20)
	}

	b := physics.NewBody(shape, point, 1+rand.Float32()*4)
	b.Color = physics.Color{
		R: uint8(60 + rand.Intn(196)),
		G: uint8(60 + rand.Intn(196)),
		B: uint8(60 + rand.Intn(196)),
		A: 255,
	}
	g.world.AddBody(b)
	g.world.Select(b)
}
