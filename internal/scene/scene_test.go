package scene

import (
	"testing"

	"sandbox2d/internal/physics"
	"sandbox2d/internal/vmath"
)

const sampleScene = `
name: stack test
bodies:
  - shape: rect
    x: 600
    y: 780
    width: 1200
    height: 40
    static: true
  - shape: circle
    x: 100
    y: 100
    radius: 20
    mass: 2
    vx: 50
    restitution: 0.9
    color: {r: 230, g: 41, b: 55}
  - shape: triangle
    x: 300
    y: 100
    side: 40
    count: 3
    spacing_x: 60
`

func TestParseAndSpawn(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Name != "stack test" {
		t.Errorf("Expected scene name 'stack test', got %q", s.Name)
	}

	w := physics.NewWorld(vmath.New(1200, 800))
	if n := s.Spawn(w); n != 5 {
		t.Fatalf("Expected 5 bodies spawned (1 + 1 + 3), got %d", n)
	}

	bodies := w.Bodies()
	floor := bodies[0]
	if !floor.Static || floor.Shape.Kind != physics.KindRect {
		t.Error("Expected static rect floor")
	}

	ball := bodies[1]
	if ball.Mass != 2 || ball.Velocity.X != 50 {
		t.Errorf("Expected mass 2 velocity 50, got %v and %v", ball.Mass, ball.Velocity.X)
	}
	if ball.Restitution != 0.9 {
		t.Errorf("Expected restitution override 0.9, got %v", ball.Restitution)
	}
	if ball.Color != (physics.Color{R: 230, G: 41, B: 55, A: 255}) {
		t.Errorf("Expected color with full alpha default, got %+v", ball.Color)
	}

	// Row of triangles offset by spacing.
	if bodies[2].Position.X != 300 || bodies[3].Position.X != 360 || bodies[4].Position.X != 420 {
		t.Errorf("Expected triangle row at 300/360/420, got %v/%v/%v",
			bodies[2].Position.X, bodies[3].Position.X, bodies[4].Position.X)
	}
}

func TestSpawnGravityOverride(t *testing.T) {
	s, err := Parse([]byte("bodies:\n  - shape: circle\n    x: 50\n    y: 50\n    radius: 10\n    gravity: -200\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	w := physics.NewWorld(vmath.New(800, 600))
	s.Spawn(w)

	b := w.Bodies()[0]
	if b.UseWorldGravity {
		t.Error("Expected gravity override to disable world gravity")
	}
	if b.Gravity != -200 {
		t.Errorf("Expected per-body gravity -200, got %v", b.Gravity)
	}
}

func TestParseRejectsUnknownShape(t *testing.T) {
	_, err := Parse([]byte("bodies:\n  - shape: hexagon\n"))
	if err == nil {
		t.Fatal("Expected error for unknown shape")
	}
}

func TestSpawnKeepsBodyDefaults(t *testing.T) {
	s, err := Parse([]byte("bodies:\n  - shape: circle\n    x: 50\n    y: 50\n    radius: 10\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	w := physics.NewWorld(vmath.New(800, 600))
	s.Spawn(w)

	b := w.Bodies()[0]
	if b.Friction != 0.1 || b.Restitution != 0.8 {
		t.Errorf("Expected default friction/restitution, got %v/%v", b.Friction, b.Restitution)
	}
	if b.Mass != 1 {
		t.Errorf("Expected zero mass clamped to 1, got %v", b.Mass)
	}
}

func TestIsSceneFile(t *testing.T) {
	if !isSceneFile("scenes/demo.yaml") || !isSceneFile("DEMO.YML") {
		t.Error("Expected yaml extensions accepted")
	}
	if isSceneFile("scenes/demo.json") {
		t.Error("Expected non-yaml extensions rejected")
	}
}
