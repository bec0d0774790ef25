package movement

import (
	"fmt"

	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/settings"
)

// State is the locomotion state of a character. Exactly one state is active at any time, and it alone
// decides the target horizontal speed.
type State uint8

const (
	StateNormal State = iota
	StateCrouching
	StateSprinting
)

// String ...
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateCrouching:
		return "crouching"
	case StateSprinting:
		return "sprinting"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// SpeedFor returns the configured target speed of the given state.
func SpeedFor(cfg settings.MovementConfig, s State) float32 {
	switch s {
	case StateNormal:
		return cfg.BaseSpeed
	case StateCrouching:
		return cfg.CrouchSpeed
	case StateSprinting:
		return cfg.SprintSpeed
	}
	panic(oerror.New("movement: speed requested for unknown state %v", s))
}

// Posture is the crouch posture change that accompanies a state transition. Only transitions into and
// out of StateCrouching change posture.
type Posture uint8

const (
	PostureUnchanged Posture = iota
	// PostureCrouch plays the crouch posture transition forwards.
	PostureCrouch
	// PostureStand plays the crouch posture transition backwards.
	PostureStand
)

// Transition is a single state change emitted by the StateMachine.
type Transition struct {
	From, To State
	Posture  Posture
}
