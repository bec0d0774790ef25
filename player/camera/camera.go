package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/settings"
)

// Clamp clamps a pitch in radians to the range given in degrees. A NaN pitch is treated as level.
func Clamp(pitch, lowerDeg, upperDeg float32) float32 {
	if math32.IsNaN(pitch) {
		pitch = 0
	}
	return mgl32.Clamp(pitch, mgl32.DegToRad(lowerDeg), mgl32.DegToRad(upperDeg))
}

// EaseFOV moves fov a fixed fraction of the way to target. It never snaps.
func EaseFOV(fov, target float32) float32 {
	return game.Lerp(fov, target, game.FOVLerpWeight)
}

// Look is the look input of a single presentation tick.
type Look struct {
	// Mouse is a pointer delta in pixels, scaled by the mouse sensitivity.
	Mouse mgl32.Vec2
	// Turn is a rotation delta in radians (yaw, pitch) applied as is.
	Turn mgl32.Vec2
}

// Camera runs the presentation tick of a character: mouse look, the pitch clamp, FOV easing and the
// pause toggle. It only writes the rotation fields of a frame.
type Camera struct {
	cfg settings.MovementConfig

	// FOV is the current field of view in degrees.
	FOV float32
	// Paused is toggled by the pause button. Look input is ignored while paused.
	Paused bool
}

// New returns a camera at the base field of view.
func New(cfg settings.MovementConfig) *Camera {
	return &Camera{cfg: cfg, FOV: cfg.BaseFOV}
}

// SetConfig replaces the config. The FOV eases towards the new targets over the following ticks.
func (c *Camera) SetConfig(cfg settings.MovementConfig) {
	c.cfg = cfg
}

// Update runs one presentation tick against frame. It must run after the physics tick of the same
// frame.
func (c *Camera) Update(frame *movement.Frame, look Look, pausePressed, sprinting bool) {
	if pausePressed {
		c.Paused = !c.Paused
	}
	if !c.Paused {
		s := c.cfg.MouseSensitivity
		frame.Yaw -= look.Mouse.X()*s - look.Turn.X()
		frame.Pitch -= look.Mouse.Y()*s - look.Turn.Y()
		frame.Yaw = game.WrapAngle(frame.Yaw)
	}
	frame.Pitch = Clamp(frame.Pitch, c.cfg.PitchLowerLimit, c.cfg.PitchUpperLimit)

	if !c.cfg.DynamicFOV {
		return
	}
	target := c.cfg.BaseFOV
	if sprinting {
		target = c.cfg.SprintFOV
	}
	c.FOV = EaseFOV(c.FOV, target)
}
