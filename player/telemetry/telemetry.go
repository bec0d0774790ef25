package telemetry

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/utils"
)

// Recorder is the debug telemetry collaborator of a character. It keeps the outputs of the most recent
// ticks and, when verbose, logs one line per tick in a fixed key order.
type Recorder struct {
	log     *slog.Logger
	verbose bool

	history *utils.CircularQueue[player.Output]

	jumps, lands, transitions, items int
}

// NewRecorder returns a recorder keeping the last size ticks.
func NewRecorder(log *slog.Logger, size int, verbose bool) *Recorder {
	assert.IsTrue(size > 0, "telemetry history size must be positive, got %d", size)
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{
		log:     log,
		verbose: verbose,
		history: utils.NewCircularQueue[player.Output](size),
	}
}

// HandleTransition ...
func (r *Recorder) HandleTransition(movement.Transition) {
	r.transitions++
}

// HandleJump ...
func (r *Recorder) HandleJump() {
	r.jumps++
}

// HandleLand ...
func (r *Recorder) HandleLand() {
	r.lands++
}

// HandleHeadBob ...
func (r *Recorder) HandleHeadBob(movement.HeadBob) {}

// HandleItem ...
func (r *Recorder) HandleItem(ev player.ItemEvent, name string) {
	r.items++
	if r.verbose {
		r.log.Debug("item", "event", ev, "name", name)
	}
}

// HandleTick ...
func (r *Recorder) HandleTick(out player.Output) {
	_ = r.history.Append(out)
	if r.verbose {
		r.log.Debug("tick", "data", utils.OrderedMapToString(Fields(out)))
	}
}

// History returns the recorded outputs, oldest first.
func (r *Recorder) History() []player.Output {
	list := make([]player.Output, 0, r.history.Len())
	for out := range r.history.All() {
		list = append(list, out)
	}
	return list
}

// Last returns the output of the most recent tick.
func (r *Recorder) Last() (player.Output, bool) {
	return r.history.Last()
}

// Counts returns the number of jumps, landings and transitions seen so far.
func (r *Recorder) Counts() (jumps, lands, transitions int) {
	return r.jumps, r.lands, r.transitions
}

// Items returns the number of item events seen so far.
func (r *Recorder) Items() int {
	return r.items
}

// Fields returns the telemetry of a tick as ordered key/value pairs, in the order a debug panel shows
// them.
func Fields(out player.Output) *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("tick", out.Tick)
	data.Set("state", out.State)
	if !out.Grounded {
		data.Set("airborne", true)
	}
	data.Set("speed", out.Speed)
	data.Set("actual_speed", math32.Sqrt(game.Vec3HzDistSqr(out.Velocity)))
	data.Set("vel", out.Velocity)
	data.Set("grounded", out.Grounded)
	data.Set("ceiling_low", out.CeilingLow)
	if out.Jumped {
		data.Set("jumped", true)
	}
	if out.Landed {
		data.Set("landed", true)
	}
	return data
}
