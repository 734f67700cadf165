package physics

// Fixed-timestep defaults. Frame time is clamped so a stall (debugger,
// window drag) cannot queue up seconds of catch-up simulation.
const (
	DefaultStepDT = float32(1.0 / 120.0)
	MaxFrameTime  = float32(0.25)
)

// Stepper decouples the render rate from the simulation rate: it accumulates
// real frame time and advances the world in fixed dt slices, carrying the
// remainder into the next frame.
type Stepper struct {
	World *World
	DT    float32

	accumulator float32
}

func NewStepper(w *World) *Stepper {
	return &Stepper{World: w, DT: DefaultStepDT}
}

// Advance consumes frameTime seconds of wall clock and returns how many
// fixed steps were run.
func (s *Stepper) Advance(frameTime float32) int {
	if frameTime < 0 {
		return 0
	}
	if frameTime > MaxFrameTime {
		frameTime = MaxFrameTime
	}
	s.accumulator += frameTime

	steps := 0
	for s.accumulator >= s.DT {
		s.World.Step(s.DT)
		s.accumulator -= s.DT
		steps++
	}
	return steps
}

// Alpha reports the leftover fraction of a step, usable for render
// interpolation.
func (s *Stepper) Alpha() float32 {
	return s.accumulator / s.DT
}
