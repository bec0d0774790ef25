package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

type fakeFlags map[int]bool

func (f fakeFlags) Load(flag int) bool {
	return f[flag]
}

func TestReadFlagsEdges(t *testing.T) {
	r := NewReader()

	in, _ := r.ReadFlags(fakeFlags{packet.InputFlagJumping: true, packet.InputFlagSneaking: true}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	if in.Jump != (movement.Button{Held: true, Pressed: true}) || in.Crouch != (movement.Button{Held: true, Pressed: true}) {
		t.Fatalf("expected jump and crouch to be just pressed, got %+v", in)
	}
	if in.Sprint != (movement.Button{}) {
		t.Fatalf("expected sprint released, got %+v", in.Sprint)
	}
	if !in.Grounded || in.CeilingLow || in.Delta != 0.05 {
		t.Fatalf("expected contacts and delta to be forwarded, got %+v", in)
	}

	in, _ = r.ReadFlags(fakeFlags{packet.InputFlagJumping: true, packet.InputFlagSprinting: true}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	if in.Jump != (movement.Button{Held: true}) {
		t.Fatalf("expected jump held without a new press, got %+v", in.Jump)
	}
	if in.Sprint != (movement.Button{Held: true, Pressed: true}) {
		t.Fatalf("expected sprint just pressed, got %+v", in.Sprint)
	}
	if in.Crouch != (movement.Button{}) {
		t.Fatalf("expected crouch released, got %+v", in.Crouch)
	}
}

func TestReadMoveVector(t *testing.T) {
	r := NewReader()
	in, _ := r.ReadFlags(fakeFlags{}, mgl32.Vec2{1, 1}, 0, 0, 0.05, true, false)
	if in.Move != (mgl32.Vec2{-1, 1}) {
		t.Fatalf("expected left/forward to become strafe left/forward, got %v", in.Move)
	}
	if !in.Moving() {
		t.Fatal("expected the input to count as moving")
	}
}

func TestReadLookDeltas(t *testing.T) {
	r := NewReader()
	if _, look := r.ReadFlags(fakeFlags{}, mgl32.Vec2{}, 30, 170, 0.05, true, false); look.Turn != (mgl32.Vec2{}) {
		t.Fatalf("expected no turn on the first read, got %v", look.Turn)
	}

	_, look := r.ReadFlags(fakeFlags{}, mgl32.Vec2{}, 20, -170, 0.05, true, false)
	if !game.Float32ApproxEq(look.Turn.X(), -mgl32.DegToRad(20)) {
		t.Fatalf("expected the yaw delta to wrap to 20 degrees, got %v", look.Turn.X())
	}
	if !game.Float32ApproxEq(look.Turn.Y(), mgl32.DegToRad(10)) {
		t.Fatalf("expected looking up by 10 degrees, got %v", look.Turn.Y())
	}
}

func TestReadPacket(t *testing.T) {
	r := NewReader()
	pk := &packet.PlayerAuthInput{
		MoveVector: mgl32.Vec2{0, 1},
		Yaw:        90,
		InputData:  protocol.NewBitset(packet.PlayerAuthInputBitsetSize),
	}
	pk.InputData.Set(packet.InputFlagSprinting)

	in, _ := r.Read(pk, 0.05, true, false)
	if !in.Sprint.Pressed || in.Move != (mgl32.Vec2{0, 1}) {
		t.Fatalf("expected sprint pressed while moving forward, got %+v", in)
	}
}

func TestReadPauseAndInteract(t *testing.T) {
	r := NewReader()

	r.SetPause(true)
	in, _ := r.ReadFlags(fakeFlags{packet.InputFlagPerformItemInteraction: true}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	if in.Pause != (movement.Button{Held: true, Pressed: true}) {
		t.Fatalf("expected pause just pressed, got %+v", in.Pause)
	}
	if in.Interact != (movement.Button{Held: true, Pressed: true}) {
		t.Fatalf("expected interact just pressed, got %+v", in.Interact)
	}

	in, _ = r.ReadFlags(fakeFlags{}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	if in.Pause != (movement.Button{Held: true}) || in.Interact != (movement.Button{}) {
		t.Fatalf("expected pause held and interact released, got %+v", in)
	}

	r.SetPause(false)
	_, _ = r.ReadFlags(fakeFlags{}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	r.SetPause(true)
	in, _ = r.ReadFlags(fakeFlags{}, mgl32.Vec2{}, 0, 0, 0.05, true, false)
	if !in.Pause.Pressed {
		t.Fatal("expected a second press after releasing pause")
	}
}
