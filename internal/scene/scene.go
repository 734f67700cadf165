// Package scene loads YAML body layouts and spawns them into a physics
// world. Scenes are data, not code: the sandbox hot-reloads them on save.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sandbox2d/internal/physics"
	"sandbox2d/internal/vmath"
)

// Scene is a declarative body layout.
type Scene struct {
	Name   string     `yaml:"name"`
	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec describes one body. Shape is circle, rect or triangle; the size
// fields matching the shape apply and the rest are ignored. Zero-value
// physics fields take the body defaults.
type BodySpec struct {
	Shape  string  `yaml:"shape"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Radius float32 `yaml:"radius"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Side   float32 `yaml:"side"`

	Mass        float32 `yaml:"mass"`
	VelocityX   float32 `yaml:"vx"`
	VelocityY   float32 `yaml:"vy"`
	Friction    float32 `yaml:"friction"`
	Restitution float32 `yaml:"restitution"`
	Static      bool    `yaml:"static"`
	// Gravity, when present, overrides the world vector for this body.
	Gravity  *float32 `yaml:"gravity"`
	Count    int      `yaml:"count"`
	SpacingX float32  `yaml:"spacing_x"`
	SpacingY float32  `yaml:"spacing_y"`

	Color *ColorSpec `yaml:"color"`
}

type ColorSpec struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Load parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes scene YAML and validates every body spec.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	for i := range s.Bodies {
		if _, err := s.Bodies[i].shape(); err != nil {
			return nil, fmt.Errorf("scene: body %d: %w", i, err)
		}
	}
	return &s, nil
}

func (bs *BodySpec) shape() (physics.Shape, error) {
	switch bs.Shape {
	case "circle", "":
		return physics.NewCircle(bs.Radius), nil
	case "rect":
		return physics.NewRect(bs.Width, bs.Height), nil
	case "triangle":
		return physics.NewTriangle(bs.Side), nil
	}
	return physics.Shape{}, fmt.Errorf("unknown shape %q", bs.Shape)
}

// Spawn adds the scene's bodies to the world and returns how many were
// created. A spec with Count > 1 spawns a row of copies offset by the
// spacing fields.
func (s *Scene) Spawn(w *physics.World) int {
	created := 0
	for i := range s.Bodies {
		bs := &s.Bodies[i]
		shape, err := bs.shape()
		if err != nil {
			continue
		}

		count := bs.Count
		if count < 1 {
			count = 1
		}
		for n := 0; n < count; n++ {
			pos := vmath.New(bs.X+float32(n)*bs.SpacingX, bs.Y+float32(n)*bs.SpacingY)
			b := physics.NewBody(shape, pos, bs.Mass)
			b.Velocity = vmath.New(bs.VelocityX, bs.VelocityY)
			b.Static = bs.Static
			if bs.Friction != 0 {
				b.Friction = bs.Friction
			}
			if bs.Restitution != 0 {
				b.Restitution = bs.Restitution
			}
			if bs.Gravity != nil {
				b.Gravity = *bs.Gravity
				b.UseWorldGravity = false
			}
			if bs.Color != nil {
				a := bs.Color.A
				if a == 0 {
					a = 255
				}
				b.Color = physics.Color{R: bs.Color.R, G: bs.Color.G, B: bs.Color.B, A: a}
			}
			w.AddBody(b)
			created++
		}
	}
	return created
}
