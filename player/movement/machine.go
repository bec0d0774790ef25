package movement

import "github.com/oomph-ac/locomotion/settings"

// StateMachine owns the locomotion state of a character and the speed that goes with it. The state and
// speed only ever change together, inside enter.
type StateMachine struct {
	cfg settings.MovementConfig

	state State
	speed float32

	// sprintLatched is set when a press in toggle mode turned sprinting off, and cleared once the sprint
	// button is released. While set, holding sprint does not re-enter StateSprinting.
	sprintLatched bool

	transitions []Transition
}

// NewStateMachine returns a state machine in StateNormal.
func NewStateMachine(cfg settings.MovementConfig) *StateMachine {
	return &StateMachine{
		cfg:         cfg,
		state:       StateNormal,
		speed:       SpeedFor(cfg, StateNormal),
		transitions: make([]Transition, 0, 2),
	}
}

// State returns the active state.
func (m *StateMachine) State() State {
	return m.state
}

// Speed returns the target horizontal speed of the active state.
func (m *StateMachine) Speed() float32 {
	return m.speed
}

// SetConfig replaces the config. The speed is re-derived for the active state straight away.
func (m *StateMachine) SetConfig(cfg settings.MovementConfig) {
	m.cfg = cfg
	m.speed = SpeedFor(cfg, m.state)
}

// Update evaluates the sprint rules and then the crouch rules for one tick. ceilingLow must be the
// ceiling sample taken after the character moved. The returned transitions are only valid until the
// next call. Update never fails: disallowed combinations leave the state as it is.
func (m *StateMachine) Update(in Inputs, moving, ceilingLow bool) []Transition {
	m.transitions = m.transitions[:0]

	if m.cfg.SprintEnabled {
		switch m.cfg.SprintMode {
		case settings.HoldToSprint:
			m.holdSprint(in, moving)
		case settings.ToggleSprint:
			m.toggleSprint(in, moving, ceilingLow)
		}
	}
	if !in.Sprint.Held {
		m.sprintLatched = false
	}

	if m.cfg.CrouchEnabled {
		switch m.cfg.CrouchMode {
		case settings.HoldToCrouch:
			m.holdCrouch(in, ceilingLow)
		case settings.ToggleCrouch:
			m.toggleCrouch(in, ceilingLow)
		}
	}
	return m.transitions
}

func (m *StateMachine) holdSprint(in Inputs, moving bool) {
	if in.Sprint.Held && m.state != StateCrouching {
		if moving {
			m.enter(StateSprinting)
		} else if m.state == StateSprinting {
			m.enter(StateNormal)
		}
		return
	}
	if m.state == StateSprinting {
		m.enter(StateNormal)
	}
}

func (m *StateMachine) toggleSprint(in Inputs, moving, ceilingLow bool) {
	if !moving {
		if m.state == StateSprinting {
			m.enter(StateNormal)
		}
		return
	}

	// Holding sprint before starting to move sprints straight away.
	if in.Sprint.Held && m.state == StateNormal && !m.sprintLatched {
		m.enter(StateSprinting)
		return
	}
	if !in.Sprint.Pressed {
		return
	}
	switch m.state {
	case StateNormal:
		m.enter(StateSprinting)
	case StateSprinting:
		m.enter(StateNormal)
		m.sprintLatched = true
	case StateCrouching:
		// A press while crouched stands up without sprinting.
		if !ceilingLow {
			m.enter(StateNormal)
		}
	}
}

func (m *StateMachine) holdCrouch(in Inputs, ceilingLow bool) {
	if in.Crouch.Held && m.state != StateSprinting {
		m.enter(StateCrouching)
		return
	}
	if m.state == StateCrouching && !ceilingLow {
		m.enter(StateNormal)
	}
}

func (m *StateMachine) toggleCrouch(in Inputs, ceilingLow bool) {
	if !in.Crouch.Pressed {
		return
	}
	switch m.state {
	case StateNormal:
		m.enter(StateCrouching)
	case StateCrouching:
		if !ceilingLow {
			m.enter(StateNormal)
		}
	case StateSprinting:
	}
}

// enter switches to the given state, updating the speed in the same step. Entering the active state is a
// no-op.
func (m *StateMachine) enter(to State) {
	if to == m.state {
		return
	}
	t := Transition{From: m.state, To: to}
	switch {
	case to == StateCrouching:
		t.Posture = PostureCrouch
	case m.state == StateCrouching:
		t.Posture = PostureStand
	}
	m.state, m.speed = to, SpeedFor(m.cfg, to)
	m.transitions = append(m.transitions, t)
}
