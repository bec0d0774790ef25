package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// scriptedInput returns the input a client would send on the given tick of the course.
func scriptedInput(tick int) *packet.PlayerAuthInput {
	pk := &packet.PlayerAuthInput{
		InputData: protocol.NewBitset(packet.PlayerAuthInputBitsetSize),
	}
	switch {
	case tick < 60:
		// Stand still and look around.
		pk.Yaw = float32(tick%30) - 15
	case tick < 120:
		pk.MoveVector = mgl32.Vec2{0, 1}
	case tick < 240:
		pk.MoveVector = mgl32.Vec2{0, 1}
		pk.InputData.Set(packet.InputFlagSprinting)
		if tick >= 180 && tick < 183 {
			pk.InputData.Set(packet.InputFlagJumping)
		}
	case tick < 420:
		// Crouch under the slab and let go of crouch halfway through.
		pk.MoveVector = mgl32.Vec2{0, 1}
		if tick < 330 {
			pk.InputData.Set(packet.InputFlagSneaking)
		}
	case tick < 480:
		pk.Pitch = -30
	default:
		pk.MoveVector = mgl32.Vec2{0, 1}
		if tick == 560 {
			pk.InputData.Set(packet.InputFlagPerformItemInteraction)
		}
	}
	return pk
}

// scriptedPause returns whether the pause key is held on the given tick. The camera is paused for a
// while during the stop.
func scriptedPause(tick int) bool {
	return tick == 430 || tick == 470
}
