package player

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oomph-ac/locomotion/oerror"
)

const (
	DebugModeMovement = iota
	DebugModeState
	DebugModeCamera
	DebugModeItem
	debugModeCount
)

var DebugModeList = []string{
	"movement",
	"state",
	"camera",
	"item",
}

// ParseDebugMode returns the debug mode with the given name.
func ParseDebugMode(name string) (int, error) {
	for mode, n := range DebugModeList {
		if strings.EqualFold(n, name) {
			return mode, nil
		}
	}
	return 0, oerror.New("unknown debug mode %q", name)
}

// Debugger writes per-tick trace lines for the debug modes that are enabled. Lines are logged at debug
// level, so the handler of the logger must let them through as well.
type Debugger struct {
	log   *slog.Logger
	modes uint32
}

// NewDebugger returns a debugger with every mode disabled.
func NewDebugger(log *slog.Logger) *Debugger {
	return &Debugger{log: log}
}

// Toggle flips the given debug mode.
func (d *Debugger) Toggle(mode int) {
	d.check(mode)
	d.modes ^= 1 << mode
}

// Enable turns the given debug mode on.
func (d *Debugger) Enable(mode int) {
	d.check(mode)
	d.modes |= 1 << mode
}

// Enabled returns true if the given debug mode is on.
func (d *Debugger) Enabled(mode int) bool {
	d.check(mode)
	return d.modes&(1<<mode) != 0
}

// Notify logs a formatted message if cond is true and the mode is enabled.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debug(fmt.Sprintf(format, args...), "mode", DebugModeList[mode])
}

func (d *Debugger) check(mode int) {
	if mode < 0 || mode >= debugModeCount {
		panic(oerror.New("unknown debug mode %d", mode))
	}
}
