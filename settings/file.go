package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// file is the on-disk form of a MovementConfig. Modes are spelled out so that files stay readable.
type file struct {
	BaseSpeed   float64 `toml:"base_speed" yaml:"base_speed"`
	SprintSpeed float64 `toml:"sprint_speed" yaml:"sprint_speed"`
	CrouchSpeed float64 `toml:"crouch_speed" yaml:"crouch_speed"`

	Acceleration float64 `toml:"acceleration" yaml:"acceleration"`
	JumpVelocity float64 `toml:"jump_velocity" yaml:"jump_velocity"`
	Gravity      float64 `toml:"gravity" yaml:"gravity"`

	PitchLowerLimit float64 `toml:"pitch_lower_limit" yaml:"pitch_lower_limit"`
	PitchUpperLimit float64 `toml:"pitch_upper_limit" yaml:"pitch_upper_limit"`

	SprintMode string `toml:"sprint_mode" yaml:"sprint_mode"`
	CrouchMode string `toml:"crouch_mode" yaml:"crouch_mode"`

	MotionSmoothing   bool `toml:"motion_smoothing" yaml:"motion_smoothing"`
	InAirMomentum     bool `toml:"in_air_momentum" yaml:"in_air_momentum"`
	ContinuousJumping bool `toml:"continuous_jumping" yaml:"continuous_jumping"`

	SprintEnabled bool `toml:"sprint_enabled" yaml:"sprint_enabled"`
	CrouchEnabled bool `toml:"crouch_enabled" yaml:"crouch_enabled"`
	JumpEnabled   bool `toml:"jump_enabled" yaml:"jump_enabled"`

	Immobile    bool `toml:"immobile" yaml:"immobile"`
	ViewBobbing bool `toml:"view_bobbing" yaml:"view_bobbing"`
	JumpEvents  bool `toml:"jump_events" yaml:"jump_events"`

	InitialYaw   float64 `toml:"initial_yaw" yaml:"initial_yaw"`
	InitialPitch float64 `toml:"initial_pitch" yaml:"initial_pitch"`

	DynamicFOV bool    `toml:"dynamic_fov" yaml:"dynamic_fov"`
	BaseFOV    float64 `toml:"base_fov" yaml:"base_fov"`
	SprintFOV  float64 `toml:"sprint_fov" yaml:"sprint_fov"`

	MouseSensitivity float64 `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
}

func toFile(c MovementConfig) file {
	return file{
		BaseSpeed:         float64(c.BaseSpeed),
		SprintSpeed:       float64(c.SprintSpeed),
		CrouchSpeed:       float64(c.CrouchSpeed),
		Acceleration:      float64(c.Acceleration),
		JumpVelocity:      float64(c.JumpVelocity),
		Gravity:           float64(c.Gravity),
		PitchLowerLimit:   float64(c.PitchLowerLimit),
		PitchUpperLimit:   float64(c.PitchUpperLimit),
		SprintMode:        c.SprintMode.String(),
		CrouchMode:        c.CrouchMode.String(),
		MotionSmoothing:   c.MotionSmoothing,
		InAirMomentum:     c.InAirMomentum,
		ContinuousJumping: c.ContinuousJumping,
		SprintEnabled:     c.SprintEnabled,
		CrouchEnabled:     c.CrouchEnabled,
		JumpEnabled:       c.JumpEnabled,
		Immobile:          c.Immobile,
		ViewBobbing:       c.ViewBobbing,
		JumpEvents:        c.JumpEvents,
		InitialYaw:        float64(c.InitialYaw),
		InitialPitch:      float64(c.InitialPitch),
		DynamicFOV:        c.DynamicFOV,
		BaseFOV:           float64(c.BaseFOV),
		SprintFOV:         float64(c.SprintFOV),
		MouseSensitivity:  float64(c.MouseSensitivity),
	}
}

func (f file) config() (MovementConfig, error) {
	sprintMode, err := ParseSprintMode(f.SprintMode)
	if err != nil {
		return MovementConfig{}, err
	}
	crouchMode, err := ParseCrouchMode(f.CrouchMode)
	if err != nil {
		return MovementConfig{}, err
	}
	return MovementConfig{
		BaseSpeed:         float32(f.BaseSpeed),
		SprintSpeed:       float32(f.SprintSpeed),
		CrouchSpeed:       float32(f.CrouchSpeed),
		Acceleration:      float32(f.Acceleration),
		JumpVelocity:      float32(f.JumpVelocity),
		Gravity:           float32(f.Gravity),
		PitchLowerLimit:   float32(f.PitchLowerLimit),
		PitchUpperLimit:   float32(f.PitchUpperLimit),
		SprintMode:        sprintMode,
		CrouchMode:        crouchMode,
		MotionSmoothing:   f.MotionSmoothing,
		InAirMomentum:     f.InAirMomentum,
		ContinuousJumping: f.ContinuousJumping,
		SprintEnabled:     f.SprintEnabled,
		CrouchEnabled:     f.CrouchEnabled,
		JumpEnabled:       f.JumpEnabled,
		Immobile:          f.Immobile,
		ViewBobbing:       f.ViewBobbing,
		JumpEvents:        f.JumpEvents,
		InitialYaw:        float32(f.InitialYaw),
		InitialPitch:      float32(f.InitialPitch),
		DynamicFOV:        f.DynamicFOV,
		BaseFOV:           float32(f.BaseFOV),
		SprintFOV:         float32(f.SprintFOV),
		MouseSensitivity:  float32(f.MouseSensitivity),
	}, nil
}

// ParseSprintMode parses "hold" or "toggle". An empty string is treated as "hold".
func ParseSprintMode(s string) (SprintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hold":
		return HoldToSprint, nil
	case "toggle":
		return ToggleSprint, nil
	}
	return 0, fmt.Errorf("sprint mode %q: %w", s, ErrInvalidMode)
}

// ParseCrouchMode parses "hold" or "toggle". An empty string is treated as "hold".
func ParseCrouchMode(s string) (CrouchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hold":
		return HoldToCrouch, nil
	case "toggle":
		return ToggleCrouch, nil
	}
	return 0, fmt.Errorf("crouch mode %q: %w", s, ErrInvalidMode)
}

// Encode encodes the config in the format matching the extension of path.
func Encode(path string, c MovementConfig) ([]byte, error) {
	f := toFile(c)
	switch format(path) {
	case "toml":
		return toml.Marshal(f)
	case "yaml":
		return yaml.Marshal(f)
	}
	return nil, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(path))
}

// Decode decodes data in the format matching the extension of path. Fields missing from data keep
// their default value. The decoded config is validated.
func Decode(path string, data []byte) (MovementConfig, error) {
	f := toFile(Default())
	var err error
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, &f)
	case "yaml":
		err = yaml.Unmarshal(data, &f)
	default:
		return MovementConfig{}, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return MovementConfig{}, fmt.Errorf("error decoding settings: %w", err)
	}

	c, err := f.config()
	if err != nil {
		return MovementConfig{}, err
	}
	if err := c.Validate(); err != nil {
		return MovementConfig{}, fmt.Errorf("invalid settings: %w", err)
	}
	return c, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := Encode(path, Default())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (MovementConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return MovementConfig{}, errors.New("settings file doesn't exist")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return MovementConfig{}, fmt.Errorf("error reading settings: %w", err)
	}
	return Decode(path, data)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
