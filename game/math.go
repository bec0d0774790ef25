package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp linearly interpolates from a towards b by t. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp01 clamps t to the [0, 1] range.
func Clamp01(t float32) float32 {
	return ClampFloat(t, 0, 1)
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Finite returns true if f is neither NaN nor infinite.
func Finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HorizontalDirection rotates a (strafe, forward) input by yaw radians around the Y axis and
// returns the resulting unit direction on the XZ plane. Forward at a yaw of zero points towards
// -Z. A zero input returns a zero vector.
func HorizontalDirection(move mgl32.Vec2, yaw float32) mgl32.Vec3 {
	if move.LenSqr() <= MovingThreshold {
		return mgl32.Vec3{}
	}
	sin, cos := math32.Sincos(yaw)
	strafe, forward := move.X(), move.Y()
	dir := mgl32.Vec3{
		strafe*cos - forward*sin,
		0,
		-strafe*sin - forward*cos,
	}
	return dir.Normalize()
}

// WrapAngle wraps a radian angle into the (-pi, pi] range.
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a <= 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// DirectionVector returns the unit view direction for a yaw and pitch in radians. A yaw of zero looks
// towards -Z and a positive pitch looks up.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)
	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		math32.Sin(pitch),
		-m * math32.Cos(yaw),
	}
}
