package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/event"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/player/input"
	"github.com/oomph-ac/locomotion/player/movement"
	"github.com/oomph-ac/locomotion/player/probe"
	"github.com/oomph-ac/locomotion/player/telemetry"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/oomph-ac/locomotion/world"
)

const (
	bodyWidth      = 0.6
	standingHeight = 1.8
	crouchHeight   = 1.2
)

type options struct {
	config    string
	ticks     int
	rate      int
	logLevel  string
	logFormat string
	record    string
	debug     string
}

// The following program runs a single character through a scripted course: it walks, sprints, jumps,
// crouches under a low slab, stands back up once the slab is cleared and picks up the item behind it.
func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "movement settings file (.toml, .yaml or .yml), created with defaults if missing")
	flag.IntVar(&o.ticks, "ticks", 600, "number of physics ticks to run")
	flag.IntVar(&o.rate, "rate", 60, "physics ticks per second")
	flag.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.StringVar(&o.logFormat, "log-format", "text", "log format (text or json)")
	flag.StringVar(&o.record, "record", "", "file to record the tick inputs to")
	flag.StringVar(&o.debug, "debug", "", "comma separated debug modes ("+strings.Join(player.DebugModeList, ", ")+")")
	flag.Parse()

	log, err := newLogger(o.logLevel, o.logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(log)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Error("unable to initialise sentry", "err", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	var g worker.Group
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		g.Go(func() {
			_ = mgr.Start()
		})
		defer mgr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, log, &g); err != nil {
		log.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(level, format string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: l}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

func loadConfig(path string, log *slog.Logger) (settings.MovementConfig, error) {
	if path == "" {
		return settings.Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.MovementConfig{}, err
		}
		log.Info("wrote default movement settings", "path", path)
	}
	return settings.Load(path)
}

func run(ctx context.Context, o options, log *slog.Logger, g *worker.Group) error {
	if o.rate <= 0 {
		return oerror.New("tick rate must be positive, got %d", o.rate)
	}
	cfg, err := loadConfig(o.config, log)
	if err != nil {
		return err
	}

	var debugModes []int
	for _, name := range strings.Split(o.debug, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		mode, err := player.ParseDebugMode(name)
		if err != nil {
			return err
		}
		debugModes = append(debugModes, mode)
	}

	w := world.New(
		cube.Box(-50, 0, -50, 50, 1, 50),
		// A slab 1.4 above the floor: too low to stand under, high enough to crouch under.
		cube.Box(-3, 2.4, -22, 3, 3, -16),
	)
	w.AddItem("lantern", cube.Box(-1, 1, -30, 1, 3.2, -29))
	body := world.NewBody(w, mgl32.Vec3{0, 1, 0}, bodyWidth, standingHeight)
	ceiling := probe.NewBoxProbe(w, body, bodyWidth, standingHeight)
	rec := telemetry.NewRecorder(log, o.rate, log.Enabled(ctx, slog.LevelDebug))

	p, err := player.New(cfg, player.Opts{
		Mover:   body,
		Ceiling: ceiling,
		Sight:   body,
		Handler: player.MultiHandler{&animation{log: log, body: body}, rec},
		Log:     log,
		Debug:   debugModes,
	})
	if err != nil {
		return err
	}

	var watcher *settings.Watcher
	if o.config != "" {
		if watcher, err = settings.Watch(o.config); err != nil {
			return err
		}
		defer watcher.Close()
		g.Go(func() {
			for err := range watcher.Errors {
				log.Warn("unable to reload movement settings", "path", o.config, "err", err)
			}
		})
	}

	var recorder *event.Recorder
	if o.record != "" {
		f, err := os.Create(o.record)
		if err != nil {
			return err
		}
		defer f.Close()
		recorder = event.NewRecorder(f)
	}

	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("component", "tick")
			})
			hub.Recover(err)
			hub.Flush(time.Second * 5)
			panic(err)
		}
	}()

	dt := float32(1) / float32(o.rate)
	ticker := time.NewTicker(time.Second / time.Duration(o.rate))
	defer ticker.Stop()

	reader := input.NewReader()
	outputs := make([]player.Output, 0, o.ticks)
	log.Info("simulation started", "ticks", o.ticks, "rate", o.rate, "sprint_mode", cfg.SprintMode, "crouch_mode", cfg.CrouchMode)

	for tick := 1; tick <= o.ticks; tick++ {
		select {
		case <-ctx.Done():
			log.Info("simulation interrupted", "tick", tick)
			return nil
		case <-ticker.C:
		}

		if watcher != nil {
			select {
			case c, ok := <-watcher.Configs:
				if ok {
					if err := p.SetConfig(c); err != nil {
						log.Warn("rejected movement settings", "err", err)
					}
				}
			default:
			}
		}

		reader.SetPause(scriptedPause(tick))
		in, look := reader.Read(scriptedInput(tick), dt, body.Grounded(), ceiling.LowCeiling())
		if recorder != nil {
			if err := recorder.Record(uint64(tick), in, look); err != nil {
				return err
			}
		}
		outputs = append(outputs, p.Tick(in))
		p.Present(look, in.Pause.Pressed)
	}

	jumps, lands, transitions := rec.Counts()
	log.Info("simulation finished",
		"pos", body.Position(),
		"state", p.State(),
		"fov", p.Camera().FOV,
		"items", rec.Items(),
		"jumps", jumps,
		"lands", lands,
		"transitions", transitions,
		"digest", fmt.Sprintf("%016x", event.Digest(outputs)),
	)
	return nil
}

// animation stands in for the animation collaborator: it logs the events a clip player would react to
// and resizes the body when the crouch posture changes.
type animation struct {
	player.NopHandler

	log  *slog.Logger
	body *world.Body

	gait movement.Gait
	item string
}

func (a *animation) HandleTransition(t movement.Transition) {
	switch t.Posture {
	case movement.PostureCrouch:
		a.body.SetHeight(crouchHeight)
	case movement.PostureStand:
		a.body.SetHeight(standingHeight)
	}
	a.log.Info("entered "+t.To.String(), "from", t.From)
}

func (a *animation) HandleJump() {
	a.log.Info("jumped", "pos", a.body.Position())
}

func (a *animation) HandleLand() {
	a.log.Info("landed", "pos", a.body.Position())
}

func (a *animation) HandleHeadBob(b movement.HeadBob) {
	if b.Gait != a.gait {
		a.log.Debug("head bob", "gait", b.Gait, "rate", b.Rate)
	}
	a.gait = b.Gait
}

func (a *animation) HandleItem(ev player.ItemEvent, name string) {
	if ev == player.ItemDetected && name == a.item {
		return
	}
	a.item = name
	a.log.Info("item "+ev.String(), "name", name)
}
