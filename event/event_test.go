package event

import (
	"bytes"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/player/camera"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/player/probe"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/utils"
)

type stillMover struct{}

func (stillMover) MoveAndSlide(vel mgl32.Vec3, _ float32) mgl32.Vec3 {
	return vel
}

// script walks forward while turning, sprints, jumps and pauses the camera for a while.
func script() []TickEvent {
	var list []TickEvent
	var sprint, jump, pause bool
	for i := range 120 {
		in := movement.Inputs{Move: mgl32.Vec2{0, 1}, Delta: 1.0 / 60.0, Grounded: i%40 < 30}
		wantSprint, wantJump, wantPause := i >= 20, i%40 == 10, i == 60 || i == 90
		in.Sprint = movement.NextButton(wantSprint, sprint)
		in.Jump = movement.NextButton(wantJump, jump)
		in.Pause = movement.NextButton(wantPause, pause)
		sprint, jump, pause = wantSprint, wantJump, wantPause

		look := camera.Look{Mouse: mgl32.Vec2{float32(i % 7), -2}, Turn: mgl32.Vec2{math32.Pi / 2, 0}}
		list = append(list, TickEvent{Tick: uint64(i + 1), Inputs: in, Look: look})
	}
	return list
}

func TestRecordDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	events := script()
	events[5].Inputs.Interact = movement.Button{Held: true, Pressed: true}
	for _, ev := range events {
		if err := rec.Record(ev.Tick, ev.Inputs, ev.Look); err != nil {
			t.Fatalf("unexpected error recording: %v", err)
		}
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected error decoding: %v", err)
	}
	if len(decoded) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(decoded))
	}
	for i, ev := range decoded {
		if ev != events[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, events[i], ev)
		}
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("nope"))); err == nil {
		t.Fatal("expected an error for a bad magic")
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	_ = utils.WriteLUint64(&buf, EventsVersion+1)
	if _, err := Decode(&buf); err == nil {
		t.Fatal("expected an error for an unknown version")
	}

	buf.Reset()
	_ = NewRecorder(&buf).Record(1, movement.Inputs{Delta: 0.1}, camera.Look{})
	truncated := buf.Bytes()[:buf.Len()-3]
	if events, err := Decode(bytes.NewReader(truncated)); err == nil || len(events) != 0 {
		t.Fatalf("expected a truncated event to fail, got %v (%v)", events, err)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	events := script()

	cfg := settings.Default()
	a, err := Replay(cfg, events, stillMover{}, probe.Static(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Replay(cfg, events, stillMover{}, probe.Static(false))
	if a != b {
		t.Fatalf("expected identical digests, got %x and %x", a, b)
	}

	cfg.SprintSpeed = 7
	c, _ := Replay(cfg, events, stillMover{}, probe.Static(false))
	if c == a {
		t.Fatal("expected a different config to change the digest")
	}
}

func TestReplayMatchesDigest(t *testing.T) {
	cfg := settings.Default()
	p := player.MustNew(cfg, player.Opts{Mover: stillMover{}, Ceiling: probe.Static(false)})

	events := script()
	var outputs []player.Output
	for _, ev := range events {
		outputs = append(outputs, p.Tick(ev.Inputs))
		p.Present(ev.Look, ev.Inputs.Pause.Pressed)
	}

	replayed, err := Replay(cfg, events, stillMover{}, probe.Static(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replayed != Digest(outputs) {
		t.Fatal("expected the replay to reproduce the live run")
	}
}

func TestReplayFollowsTheCamera(t *testing.T) {
	events := script()
	turned, _ := Replay(settings.Default(), events, stillMover{}, probe.Static(false))

	for i := range events {
		events[i].Look = camera.Look{}
	}
	still, _ := Replay(settings.Default(), events, stillMover{}, probe.Static(false))
	if turned == still {
		t.Fatal("expected the recorded look input to change the replay")
	}
}

func TestReplayRejectsMissingMover(t *testing.T) {
	if _, err := Replay(settings.Default(), nil, nil, probe.Static(false)); err == nil {
		t.Fatal("expected an error without a mover")
	}
}
