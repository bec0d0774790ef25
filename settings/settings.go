package settings

import (
	"errors"
	"fmt"

	"github.com/oomph-ac/locomotion/game"
)

// SprintMode decides whether sprinting lasts while the sprint button is held or is switched by presses.
type SprintMode uint8

const (
	HoldToSprint SprintMode = iota
	ToggleSprint
)

// String ...
func (m SprintMode) String() string {
	switch m {
	case HoldToSprint:
		return "hold"
	case ToggleSprint:
		return "toggle"
	}
	return fmt.Sprintf("SprintMode(%d)", uint8(m))
}

// CrouchMode decides whether crouching lasts while the crouch button is held or is switched by presses.
type CrouchMode uint8

const (
	HoldToCrouch CrouchMode = iota
	ToggleCrouch
)

// String ...
func (m CrouchMode) String() string {
	switch m {
	case HoldToCrouch:
		return "hold"
	case ToggleCrouch:
		return "toggle"
	}
	return fmt.Sprintf("CrouchMode(%d)", uint8(m))
}

var (
	ErrInvalidSpeed      = errors.New("speed must be finite and non-negative")
	ErrInvalidPhysics    = errors.New("acceleration, jump velocity and gravity must be finite and non-negative")
	ErrInvalidPitchRange = errors.New("pitch lower limit must not exceed the upper limit")
	ErrInvalidMode       = errors.New("unknown mode")
	ErrInvalidFOV        = errors.New("field of view must be within (0, 180)")
	ErrInvalidFacing     = errors.New("initial facing direction must be finite")
)

// MovementConfig is the tuning of a single character. It is treated as immutable once a character has
// been created with it: a changed config is applied by handing a whole new value to the character.
type MovementConfig struct {
	// BaseSpeed, SprintSpeed and CrouchSpeed are the horizontal target speeds of the Normal, Sprinting
	// and Crouching states respectively.
	BaseSpeed   float32
	SprintSpeed float32
	CrouchSpeed float32

	// Acceleration scales how fast the horizontal velocity approaches its target when motion smoothing
	// is enabled. The blend weight for a tick is clamp01(Acceleration * dt).
	Acceleration float32
	// JumpVelocity is added to the vertical velocity when a jump is accepted.
	JumpVelocity float32
	// Gravity is subtracted from the vertical velocity every second the character is airborne.
	Gravity float32

	// PitchLowerLimit and PitchUpperLimit bound the camera pitch, in degrees.
	PitchLowerLimit float32
	PitchUpperLimit float32

	SprintMode SprintMode
	CrouchMode CrouchMode

	MotionSmoothing   bool
	InAirMomentum     bool
	ContinuousJumping bool

	SprintEnabled bool
	CrouchEnabled bool
	JumpEnabled   bool

	// Immobile ignores the movement input entirely. The camera still turns.
	Immobile bool
	// ViewBobbing emits a head bob signal every tick.
	ViewBobbing bool
	// JumpEvents reports jumps and landings to the handler. Outputs carry them either way.
	JumpEvents bool

	// InitialYaw and InitialPitch, in degrees, are the facing direction a character starts with.
	InitialYaw   float32
	InitialPitch float32

	// DynamicFOV eases the field of view towards SprintFOV while sprinting and BaseFOV otherwise.
	DynamicFOV bool
	BaseFOV    float32
	SprintFOV  float32

	// MouseSensitivity is the rotation, in radians, applied per unit of look input.
	MouseSensitivity float32
}

// Default returns the stock movement config.
func Default() MovementConfig {
	return MovementConfig{
		BaseSpeed:   game.DefaultBaseSpeed,
		SprintSpeed: game.DefaultSprintSpeed,
		CrouchSpeed: game.DefaultCrouchSpeed,

		Acceleration: game.DefaultAcceleration,
		JumpVelocity: game.DefaultJumpVelocity,
		Gravity:      game.DefaultGravity,

		PitchLowerLimit: game.DefaultPitchLowerLimit,
		PitchUpperLimit: game.DefaultPitchUpperLimit,

		SprintMode: HoldToSprint,
		CrouchMode: HoldToCrouch,

		MotionSmoothing:   true,
		InAirMomentum:     true,
		ContinuousJumping: true,

		SprintEnabled: true,
		CrouchEnabled: true,
		JumpEnabled:   true,

		ViewBobbing: true,
		JumpEvents:  true,

		DynamicFOV: true,
		BaseFOV:    game.DefaultBaseFOV,
		SprintFOV:  game.DefaultSprintFOV,

		MouseSensitivity: game.DefaultMouseSensitivity,
	}
}

// Validate checks the config for values the movement core cannot work with.
func (c MovementConfig) Validate() error {
	speeds := []struct {
		name string
		v    float32
	}{
		{"base speed", c.BaseSpeed},
		{"sprint speed", c.SprintSpeed},
		{"crouch speed", c.CrouchSpeed},
	}
	for _, s := range speeds {
		if !game.Finite(s.v) || s.v < 0 {
			return fmt.Errorf("%s %v: %w", s.name, s.v, ErrInvalidSpeed)
		}
	}

	physics := []struct {
		name string
		v    float32
	}{
		{"acceleration", c.Acceleration},
		{"jump velocity", c.JumpVelocity},
		{"gravity", c.Gravity},
		{"mouse sensitivity", c.MouseSensitivity},
	}
	for _, p := range physics {
		if !game.Finite(p.v) || p.v < 0 {
			return fmt.Errorf("%s %v: %w", p.name, p.v, ErrInvalidPhysics)
		}
	}

	if !game.Finite(c.PitchLowerLimit) || !game.Finite(c.PitchUpperLimit) || c.PitchLowerLimit > c.PitchUpperLimit {
		return fmt.Errorf("pitch range [%v, %v]: %w", c.PitchLowerLimit, c.PitchUpperLimit, ErrInvalidPitchRange)
	}

	if !game.Finite(c.InitialYaw) || !game.Finite(c.InitialPitch) {
		return fmt.Errorf("initial facing (%v, %v): %w", c.InitialYaw, c.InitialPitch, ErrInvalidFacing)
	}

	if c.SprintMode > ToggleSprint {
		return fmt.Errorf("sprint mode %v: %w", c.SprintMode, ErrInvalidMode)
	}
	if c.CrouchMode > ToggleCrouch {
		return fmt.Errorf("crouch mode %v: %w", c.CrouchMode, ErrInvalidMode)
	}

	for _, fov := range []float32{c.BaseFOV, c.SprintFOV} {
		if !game.Finite(fov) || fov <= 0 || fov >= 180 {
			return fmt.Errorf("fov %v: %w", fov, ErrInvalidFOV)
		}
	}
	return nil
}
