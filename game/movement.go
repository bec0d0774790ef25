package game

// Stock tuning used by settings.Default. Speeds are in units per second, accelerations in units per
// second squared.
const (
	DefaultBaseSpeed    = float32(3)
	DefaultSprintSpeed  = float32(6)
	DefaultCrouchSpeed  = float32(1)
	DefaultAcceleration = float32(10)
	DefaultJumpVelocity = float32(4.5)
	DefaultGravity      = float32(9.8)

	DefaultPitchLowerLimit = float32(-60)
	DefaultPitchUpperLimit = float32(60)

	DefaultBaseFOV          = float32(75)
	DefaultSprintFOV        = float32(85)
	DefaultMouseSensitivity = float32(0.005)

	// FOVLerpWeight is the fraction of the remaining distance to the target FOV covered every
	// presentation tick.
	FOVLerpWeight = float32(0.3)

	// HeadBobRateScale multiplies the ratio of actual to base speed to get the head bob rate.
	HeadBobRateScale = float32(1.75)
	// ItemRayLength is the reach of the view ray used to detect items, in units.
	ItemRayLength = float32(10)

	// FixedStep is the default physics step, in seconds.
	FixedStep = float32(1.0 / 60.0)

	// MovingThreshold is the squared length of the move input above which the character counts
	// as moving.
	MovingThreshold = float32(1e-6)
)
