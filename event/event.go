package event

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/internal"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/player/camera"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/utils"
)

// EventsVersion is the version of the recording format. Recordings of another version are rejected.
const EventsVersion uint64 = 2

var magic = [4]byte{'L', 'O', 'C', 'O'}

// TickEvent is the recorded input of a single tick: the physics inputs and the look input of the
// presentation tick that followed it.
type TickEvent struct {
	Tick   uint64
	Inputs movement.Inputs
	Look   camera.Look
}

// Recorder writes tick events to a stream. The header is written with the first event.
type Recorder struct {
	w      io.Writer
	header bool
}

// NewRecorder returns a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes the inputs of a tick. The pause edge is part of in.
func (r *Recorder) Record(tick uint64, in movement.Inputs, look camera.Look) error {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if !r.header {
		buf.Write(magic[:])
		_ = utils.WriteLUint64(buf, EventsVersion)
		r.header = true
	}
	TickEvent{Tick: tick, Inputs: in, Look: look}.encode(buf)

	_, err := r.w.Write(buf.Bytes())
	return err
}

func (ev TickEvent) encode(buf *bytes.Buffer) {
	in := ev.Inputs
	_ = utils.WriteLUint64(buf, ev.Tick)
	_ = utils.WriteLFloat32(buf, in.Move.X())
	_ = utils.WriteLFloat32(buf, in.Move.Y())
	for _, b := range [...]movement.Button{in.Jump, in.Sprint, in.Crouch, in.Pause, in.Interact} {
		_ = utils.WriteBool(buf, b.Held)
		_ = utils.WriteBool(buf, b.Pressed)
	}
	_ = utils.WriteLFloat32(buf, in.Delta)
	_ = utils.WriteBool(buf, in.Grounded)
	_ = utils.WriteBool(buf, in.CeilingLow)
	for _, f := range [...]float32{ev.Look.Mouse.X(), ev.Look.Mouse.Y(), ev.Look.Turn.X(), ev.Look.Turn.Y()} {
		_ = utils.WriteLFloat32(buf, f)
	}
}

// Decode reads every tick event from a recording.
func Decode(r io.Reader) ([]TickEvent, error) {
	br := bufio.NewReader(r)

	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, oerror.New("error reading recording header: %v", err)
	}
	if m != magic {
		return nil, oerror.New("not a locomotion recording")
	}
	version, err := utils.ReadLUint64(br)
	if err != nil {
		return nil, oerror.New("error reading recording version: %v", err)
	}
	if version != EventsVersion {
		return nil, oerror.New("unsupported recording version %d (expected %d)", version, EventsVersion)
	}

	var events []TickEvent
	for {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			return events, nil
		}
		ev, err := decodeTick(br)
		if err != nil {
			return events, oerror.New("error decoding event %d: %v", len(events), err)
		}
		events = append(events, ev)
	}
}

func decodeTick(r io.Reader) (ev TickEvent, err error) {
	// The first failing read sticks; the fields after it are left zero.
	readF := func() float32 {
		if err != nil {
			return 0
		}
		var v float32
		v, err = utils.ReadLFloat32(r)
		return v
	}
	readB := func() bool {
		if err != nil {
			return false
		}
		var v bool
		v, err = utils.ReadBool(r)
		return v
	}
	readButton := func() movement.Button {
		held := readB()
		return movement.Button{Held: held, Pressed: readB()}
	}

	if ev.Tick, err = utils.ReadLUint64(r); err != nil {
		return ev, err
	}
	in := &ev.Inputs
	in.Move = mgl32.Vec2{readF(), readF()}
	in.Jump, in.Sprint, in.Crouch = readButton(), readButton(), readButton()
	in.Pause, in.Interact = readButton(), readButton()
	in.Delta = readF()
	in.Grounded = readB()
	in.CeilingLow = readB()
	ev.Look.Mouse = mgl32.Vec2{readF(), readF()}
	ev.Look.Turn = mgl32.Vec2{readF(), readF()}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return ev, err
}
