package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Button is the state of a single input button during a tick.
type Button struct {
	// Held is true while the button is physically held down.
	Held bool
	// Pressed is true only on the tick the button went down.
	Pressed bool
}

// NextButton derives the button state for this tick from whether it is held now and whether it was held
// on the previous tick.
func NextButton(held, wasHeld bool) Button {
	return Button{Held: held, Pressed: held && !wasHeld}
}

// Inputs is the snapshot of everything a character consumes in one physics tick. It is built fresh for
// every tick and never retained.
type Inputs struct {
	// Move is the movement input in character-local space: X strafes right, Y moves forward.
	Move mgl32.Vec2

	Jump   Button
	Sprint Button
	Crouch Button
	Pause  Button
	// Interact reveals the item the view ray rests on.
	Interact Button

	// Delta is the elapsed time of the tick, in seconds.
	Delta float32

	// Grounded and CeilingLow are the contact samples taken before the character moves this tick.
	Grounded   bool
	CeilingLow bool
}

// Moving returns true if the movement input is large enough to count as moving.
func (in Inputs) Moving() bool {
	return in.Move.LenSqr() > game.MovingThreshold
}

// Frame is the mutable kinematic state of a character. The integrator owns the velocity fields and the
// camera owns the rotation fields, so the two never write to the same data within a tick.
type Frame struct {
	Vel, LastVel mgl32.Vec3

	// Yaw and Pitch are in radians. A positive pitch looks up.
	Yaw, Pitch float32

	// Grounded is the ground contact sampled on the most recent tick, and Sampled is set once the first
	// sample was taken.
	Grounded bool
	Sampled  bool
}

// SetVel sets the velocity of the frame, keeping the previous one in LastVel.
func (f *Frame) SetVel(newVel mgl32.Vec3) {
	f.LastVel = f.Vel
	f.Vel = newVel
}
