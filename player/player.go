package player

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/player/camera"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/player/probe"
	"github.com/oomph-ac/locomotion/settings"
)

// Output is the result of a single physics tick.
type Output struct {
	Tick uint64

	Velocity   mgl32.Vec3
	Yaw, Pitch float32

	State movement.State
	Speed float32

	// Grounded is the ground contact the tick ran with. CeilingLow is the ceiling sample taken after
	// the move.
	Grounded   bool
	CeilingLow bool

	Jumped bool
	Landed bool

	// HeadBob is zero when view bobbing is disabled.
	HeadBob movement.HeadBob

	Transitions []movement.Transition
}

// Player is a single first-person character. It owns the kinematic frame, the locomotion state machine
// and the camera, and runs them in a fixed order every tick. A Player is not safe for concurrent use:
// Tick and Present must be called from the same goroutine.
type Player struct {
	cfg settings.MovementConfig

	frame  movement.Frame
	states *movement.StateMachine
	cam    *camera.Camera

	mover   Mover
	ceiling probe.CeilingProbe
	sight   probe.Sight
	handler Handler

	item itemState

	log *slog.Logger
	Dbg *Debugger

	tick uint64
}

// New creates a player in the normal state, facing the initial direction of the config. It returns an error if the config is invalid or a required
// collaborator is missing.
func New(cfg settings.MovementConfig, opts Opts) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movement config: %w", err)
	}
	if opts.Mover == nil {
		return nil, oerror.New("player: no mover set")
	}
	if opts.Ceiling == nil {
		return nil, oerror.New("player: no ceiling probe set")
	}
	if opts.Handler == nil {
		opts.Handler = NopHandler{}
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	p := &Player{
		cfg:     cfg,
		states:  movement.NewStateMachine(cfg),
		cam:     camera.New(cfg),
		mover:   opts.Mover,
		ceiling: opts.Ceiling,
		sight:   opts.Sight,
		handler: opts.Handler,
		log:     opts.Log,
		Dbg:     NewDebugger(opts.Log),
	}
	for _, mode := range opts.Debug {
		p.Dbg.Enable(mode)
	}
	p.frame.Yaw = game.WrapAngle(mgl32.DegToRad(cfg.InitialYaw))
	p.frame.Pitch = camera.Clamp(mgl32.DegToRad(cfg.InitialPitch), cfg.PitchLowerLimit, cfg.PitchUpperLimit)
	return p, nil
}

// MustNew calls New and panics if it fails.
func MustNew(cfg settings.MovementConfig, opts Opts) *Player {
	p, err := New(cfg, opts)
	assert.IsTrue(err == nil, "unable to create player: %v", err)
	return p
}

// Tick runs one physics step. The grounded and ceiling samples in the inputs must be taken before the
// character moves this tick; the ceiling is sampled again through the probe after the move. An immobile
// character ignores the move input.
func (p *Player) Tick(in movement.Inputs) Output {
	p.tick++
	if p.cfg.Immobile {
		in.Move = mgl32.Vec2{}
	}

	p.detectItems()
	if in.Interact.Pressed {
		p.interact()
	}

	// Contacts.
	landed := p.frame.Sampled && !p.frame.Grounded && in.Grounded
	p.frame.Grounded, p.frame.Sampled = in.Grounded, true

	vel, jumped := movement.IntegrateVertical(p.frame.Vel, p.cfg, in)
	p.Dbg.Notify(DebugModeMovement, jumped, "jump accepted, vel=%v", vel)

	vel = p.mover.MoveAndSlide(vel, in.Delta)
	p.Dbg.Notify(DebugModeMovement, true, "post-move vel=%v grounded=%v", vel, in.Grounded)

	dir := game.HorizontalDirection(in.Move, p.frame.Yaw)
	vel = movement.IntegrateHorizontal(vel, dir, p.states.Speed(), p.cfg, in)
	p.frame.SetVel(vel)

	ceilingLow := p.ceiling.LowCeiling()
	transitions := p.states.Update(in, in.Moving(), ceilingLow)
	for _, t := range transitions {
		p.Dbg.Notify(DebugModeState, true, "%v -> %v (posture=%d)", t.From, t.To, t.Posture)
	}

	var bob movement.HeadBob
	if p.cfg.ViewBobbing {
		bob = movement.HeadBobFor(p.cfg, p.states.State(), vel.Len(), in.Moving(), in.Grounded)
	}

	out := Output{
		Tick:        p.tick,
		Velocity:    vel,
		Yaw:         p.frame.Yaw,
		Pitch:       p.frame.Pitch,
		State:       p.states.State(),
		Speed:       p.states.Speed(),
		Grounded:    in.Grounded,
		CeilingLow:  ceilingLow,
		Jumped:      jumped,
		Landed:      landed,
		HeadBob:     bob,
		Transitions: append([]movement.Transition(nil), transitions...),
	}

	for _, t := range out.Transitions {
		p.handler.HandleTransition(t)
	}
	if jumped && p.cfg.JumpEvents {
		p.handler.HandleJump()
	}
	if landed && p.cfg.JumpEvents {
		p.handler.HandleLand()
	}
	if p.cfg.ViewBobbing {
		p.handler.HandleHeadBob(bob)
	}
	p.handler.HandleTick(out)
	return out
}

// Present runs the presentation tick: mouse look, pitch clamp, the pause toggle and FOV easing. It must be
// called after Tick.
func (p *Player) Present(look camera.Look, pausePressed bool) {
	p.cam.Update(&p.frame, look, pausePressed, p.states.State() == movement.StateSprinting)
	p.Dbg.Notify(DebugModeCamera, true, "yaw=%.4f pitch=%.4f fov=%.2f paused=%v", p.frame.Yaw, p.frame.Pitch, p.cam.FOV, p.cam.Paused)
}

// SetConfig replaces the movement config between ticks. The speed of the current state is re-derived
// from the new config straight away.
func (p *Player) SetConfig(cfg settings.MovementConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid movement config: %w", err)
	}
	p.cfg = cfg
	p.states.SetConfig(cfg)
	p.cam.SetConfig(cfg)
	p.log.Info("movement config updated", "state", p.states.State(), "speed", p.states.Speed())
	return nil
}

// Config returns the movement config in use.
func (p *Player) Config() settings.MovementConfig {
	return p.cfg
}

// Frame returns a copy of the kinematic frame.
func (p *Player) Frame() movement.Frame {
	return p.frame
}

// State returns the current locomotion state.
func (p *Player) State() movement.State {
	return p.states.State()
}

// Speed returns the target horizontal speed of the current state.
func (p *Player) Speed() float32 {
	return p.states.Speed()
}

// Camera returns the camera of the player.
func (p *Player) Camera() *camera.Camera {
	return p.cam
}

// Log returns the logger of the player.
func (p *Player) Log() *slog.Logger {
	return p.log
}
