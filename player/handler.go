package player

import "github.com/oomph-ac/locomotion/player/movement"

// Handler receives the semantic events a character emits every physics tick. Animation, audio and
// telemetry collaborators implement it to translate events into clips, sounds or debug output. Handlers
// are called on the tick thread. Item events are emitted before the character moves, every other event
// after the state machine ran.
type Handler interface {
	// HandleTransition is called for every state change of the tick, in the order they happened.
	HandleTransition(t movement.Transition)
	// HandleJump is called on the tick a jump impulse was applied.
	HandleJump()
	// HandleLand is called on the first grounded tick after the character was airborne.
	HandleLand()
	// HandleHeadBob is called every tick while view bobbing is enabled.
	HandleHeadBob(b movement.HeadBob)
	// HandleItem is called when the view ray detects an item, or when an item is shown or hidden. name
	// is empty for ItemHidden.
	HandleItem(ev ItemEvent, name string)
	// HandleTick is called once at the end of every tick.
	HandleTick(out Output)
}

// NopHandler implements Handler and does nothing. It may be embedded to only implement some methods.
type NopHandler struct{}

func (NopHandler) HandleTransition(movement.Transition) {}
func (NopHandler) HandleJump()                          {}
func (NopHandler) HandleLand()                          {}
func (NopHandler) HandleHeadBob(movement.HeadBob)       {}
func (NopHandler) HandleItem(ItemEvent, string)         {}
func (NopHandler) HandleTick(Output)                    {}

// MultiHandler fans events out to several handlers in order.
type MultiHandler []Handler

func (m MultiHandler) HandleTransition(t movement.Transition) {
	for _, h := range m {
		h.HandleTransition(t)
	}
}

func (m MultiHandler) HandleJump() {
	for _, h := range m {
		h.HandleJump()
	}
}

func (m MultiHandler) HandleLand() {
	for _, h := range m {
		h.HandleLand()
	}
}

func (m MultiHandler) HandleHeadBob(b movement.HeadBob) {
	for _, h := range m {
		h.HandleHeadBob(b)
	}
}

func (m MultiHandler) HandleItem(ev ItemEvent, name string) {
	for _, h := range m {
		h.HandleItem(ev, name)
	}
}

func (m MultiHandler) HandleTick(out Output) {
	for _, h := range m {
		h.HandleTick(out)
	}
}
