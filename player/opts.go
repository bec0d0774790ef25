package player

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player/probe"
)

// Mover is the physics collaborator that performs the swept move of a character. It moves the character
// by vel over dt, resolving collisions, and returns the velocity left after the move.
type Mover interface {
	MoveAndSlide(vel mgl32.Vec3, dt float32) mgl32.Vec3
}

// Opts holds the collaborators of a Player.
type Opts struct {
	// Mover and Ceiling are required.
	Mover   Mover
	Ceiling probe.CeilingProbe

	// Sight casts the view ray used to detect items. Items are not detected without one.
	Sight probe.Sight

	// Handler receives the events of every tick. It defaults to NopHandler.
	Handler Handler
	// Log defaults to slog.Default.
	Log *slog.Logger
	// Debug lists the debug modes enabled from the start.
	Debug []int
}
