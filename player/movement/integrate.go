package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/settings"
)

// JumpAccepted returns true if a jump impulse should be applied this tick. Jumps are only accepted while
// grounded and under a clear ceiling. With continuous jumping a held button is enough, otherwise the
// button has to have been pressed this tick.
func JumpAccepted(cfg settings.MovementConfig, in Inputs) bool {
	if !cfg.JumpEnabled || !in.Grounded || in.CeilingLow {
		return false
	}
	if cfg.ContinuousJumping {
		return in.Jump.Held
	}
	return in.Jump.Pressed
}

// IntegrateVertical applies gravity to an airborne character or the jump impulse to a grounded one. The
// two branches are exclusive within a tick. Free fall is not capped. The second return value reports
// whether a jump was accepted.
func IntegrateVertical(vel mgl32.Vec3, cfg settings.MovementConfig, in Inputs) (mgl32.Vec3, bool) {
	if !in.Grounded {
		vel[1] -= cfg.Gravity * in.Delta
		return vel, false
	}
	if !JumpAccepted(cfg, in) {
		return vel, false
	}
	vel[1] += cfg.JumpVelocity
	return vel, true
}

// IntegrateHorizontal moves the horizontal velocity towards dir * speed. It does nothing while the
// character is airborne with in-air momentum enabled, so the velocity the character left the ground with
// is kept. With motion smoothing both horizontal axes are blended by clamp01(acceleration * dt),
// otherwise they snap to the target.
func IntegrateHorizontal(vel, dir mgl32.Vec3, speed float32, cfg settings.MovementConfig, in Inputs) mgl32.Vec3 {
	if cfg.InAirMomentum && !in.Grounded {
		return vel
	}

	target := dir.Mul(speed)
	if !cfg.MotionSmoothing {
		vel[0], vel[2] = target[0], target[2]
		return vel
	}

	weight := game.Clamp01(cfg.Acceleration * in.Delta)
	vel[0] = game.Lerp(vel[0], target[0], weight)
	vel[2] = game.Lerp(vel[2], target[2], weight)
	return vel
}

// Integrate runs the vertical and the horizontal step back to back and returns the resulting velocity.
// It has no side effects. Characters driven by a physics collaborator run the two steps separately so
// that the swept move happens in between.
func Integrate(frame Frame, cfg settings.MovementConfig, in Inputs, dir mgl32.Vec3, speed float32) mgl32.Vec3 {
	vel, _ := IntegrateVertical(frame.Vel, cfg, in)
	return IntegrateHorizontal(vel, dir, speed, cfg, in)
}
