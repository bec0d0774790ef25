package movement

import (
	"fmt"

	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/settings"
)

// Gait is the head bob cycle a character plays.
type Gait uint8

const (
	// GaitRest returns the head to its resting position.
	GaitRest Gait = iota
	GaitWalk
	GaitSprint
)

// String ...
func (g Gait) String() string {
	switch g {
	case GaitRest:
		return "rest"
	case GaitWalk:
		return "walk"
	case GaitSprint:
		return "sprint"
	}
	return fmt.Sprintf("Gait(%d)", uint8(g))
}

// HeadBob is the head bob signal of a tick. Rate scales the playback speed of the cycle.
type HeadBob struct {
	Gait Gait
	Rate float32
}

// HeadBobFor returns the head bob of a character in state s moving at actualSpeed. Only a character moving
// on the ground bobs: Sprinting uses the sprint cycle, every other state the walk cycle.
func HeadBobFor(cfg settings.MovementConfig, s State, actualSpeed float32, moving, grounded bool) HeadBob {
	if !moving || !grounded {
		return HeadBob{Gait: GaitRest, Rate: 1}
	}
	b := HeadBob{Gait: GaitWalk}
	if s == StateSprinting {
		b.Gait = GaitSprint
	}
	if cfg.BaseSpeed > 0 {
		b.Rate = actualSpeed / cfg.BaseSpeed * game.HeadBobRateScale
	}
	return b
}
