package event

import (
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/player/probe"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/zeebo/xxh3"
)

// Digest hashes the outputs of a run. Two runs produce the same digest only if every tick produced the
// same velocity, facing, state, speed and events.
func Digest(outputs []player.Output) uint64 {
	h := xxh3.New()
	for _, out := range outputs {
		writeOutput(h, out)
	}
	return h.Sum64()
}

func writeOutput(h *xxh3.Hasher, out player.Output) {
	_ = utils.WriteLUint64(h, out.Tick)
	for _, f := range out.Velocity {
		_ = utils.WriteLFloat32(h, f)
	}
	_ = utils.WriteLFloat32(h, out.Yaw)
	_ = utils.WriteLFloat32(h, out.Pitch)
	_ = utils.WriteLFloat32(h, out.Speed)
	_, _ = h.Write([]byte{byte(out.State)})
	_ = utils.WriteBool(h, out.Grounded)
	_ = utils.WriteBool(h, out.CeilingLow)
	_ = utils.WriteBool(h, out.Jumped)
	_ = utils.WriteBool(h, out.Landed)
	_, _ = h.Write([]byte{byte(out.HeadBob.Gait)})
	_ = utils.WriteLFloat32(h, out.HeadBob.Rate)
	for _, t := range out.Transitions {
		_, _ = h.Write([]byte{byte(t.From), byte(t.To), byte(t.Posture)})
	}
}

// Replay feeds recorded inputs into a fresh player and returns the digest of its outputs. Every tick is
// followed by the recorded presentation tick, so the facing evolves as it did live. The recorded contact
// samples are used as they are; mover and ceiling stand in for the physics of the recording.
func Replay(cfg settings.MovementConfig, events []TickEvent, mover player.Mover, ceiling probe.CeilingProbe) (uint64, error) {
	p, err := player.New(cfg, player.Opts{Mover: mover, Ceiling: ceiling})
	if err != nil {
		return 0, err
	}
	h := xxh3.New()
	for _, ev := range events {
		out := p.Tick(ev.Inputs)
		// Ticks are numbered by the recording, not by the fresh player.
		out.Tick = ev.Tick
		writeOutput(h, out)
		p.Present(ev.Look, ev.Inputs.Pause.Pressed)
	}
	return h.Sum64(), nil
}
