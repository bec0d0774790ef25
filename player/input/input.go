package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player/camera"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Flags is a set of input flags, such as the InputData bitset of a PlayerAuthInput packet.
type Flags interface {
	Load(flag int) bool
}

// Reader turns the inputs a client sends every tick into movement inputs. It remembers the buttons and
// rotation of the previous tick to derive just-pressed edges and look deltas, so one Reader must be used
// per character.
type Reader struct {
	jump, sprint, crouch, interact bool

	pause, pauseHeld bool

	lastYaw, lastPitch float32
	rotated            bool
}

// NewReader returns a reader with every button released.
func NewReader() *Reader {
	return &Reader{}
}

// SetPause reports whether the pause button is held. Clients do not send a pause button, so the host
// reads it from its own input devices before calling Read.
func (r *Reader) SetPause(held bool) {
	r.pauseHeld = held
}

// Read converts a PlayerAuthInput packet. The ground and ceiling samples come from the physics
// collaborator, since the client cannot be trusted with them.
func (r *Reader) Read(pk *packet.PlayerAuthInput, dt float32, grounded, ceilingLow bool) (movement.Inputs, camera.Look) {
	return r.ReadFlags(pk.InputData, pk.MoveVector, pk.Pitch, pk.Yaw, dt, grounded, ceilingLow)
}

// ReadFlags converts raw input flags, a move vector and an absolute rotation in degrees. The X axis of the
// move vector points left, like it does on the wire.
func (r *Reader) ReadFlags(flags Flags, move mgl32.Vec2, pitch, yaw, dt float32, grounded, ceilingLow bool) (movement.Inputs, camera.Look) {
	jump := flags.Load(packet.InputFlagJumping)
	sprint := flags.Load(packet.InputFlagSprinting)
	crouch := flags.Load(packet.InputFlagSneaking)
	interact := flags.Load(packet.InputFlagPerformItemInteraction)

	in := movement.Inputs{
		Move:       mgl32.Vec2{-move.X(), move.Y()},
		Jump:       movement.NextButton(jump, r.jump),
		Sprint:     movement.NextButton(sprint, r.sprint),
		Crouch:     movement.NextButton(crouch, r.crouch),
		Pause:      movement.NextButton(r.pauseHeld, r.pause),
		Interact:   movement.NextButton(interact, r.interact),
		Delta:      dt,
		Grounded:   grounded,
		CeilingLow: ceilingLow,
	}
	r.jump, r.sprint, r.crouch, r.interact = jump, sprint, crouch, interact
	r.pause = r.pauseHeld

	var look camera.Look
	if r.rotated {
		look.Turn = mgl32.Vec2{
			-mgl32.DegToRad(wrapYawDelta(yaw - r.lastYaw)),
			-mgl32.DegToRad(pitch - r.lastPitch),
		}
	}
	r.lastYaw, r.lastPitch, r.rotated = yaw, pitch, true
	return in, look
}

// wrapYawDelta wraps a yaw difference in degrees into [-180, 180).
func wrapYawDelta(d float32) float32 {
	for d >= 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}
