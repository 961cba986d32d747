package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameFile is the tuning file every run starts from.
const GameFile = "game.yaml"

// GameSpec is the designer-facing tuning of the whole game.
type GameSpec struct {
	Name           string         `yaml:"name"`
	Screen         ScreenSpec     `yaml:"screen"`
	GroundY        float64        `yaml:"ground_y"`
	RestartToReady bool           `yaml:"restart_to_ready"`
	Player         PlayerSpec     `yaml:"player"`
	Pipe           PipeSpec       `yaml:"pipe"`
	Enemy          EnemySpec      `yaml:"enemy"`
	Bullet         BulletSpec     `yaml:"bullet"`
	Background     BackgroundSpec `yaml:"background"`
	HUD            HUDSpec        `yaml:"hud"`
	Overlay        OverlaySpec    `yaml:"overlay"`
	Audio          []AudioSpec    `yaml:"audio"`
}

// LoadGameSpec loads and validates game.yaml.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameFile, err)
	}
	return &spec, nil
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSpec struct {
	Color        string       `yaml:"color"`
	StartX       float64      `yaml:"start_x"`
	StartY       float64      `yaml:"start_y"`
	Acceleration float64      `yaml:"acceleration"`
	MaxSpeed     float64      `yaml:"max_speed"`
	JumpForce    float64      `yaml:"jump_force"`
	Tilt         float64      `yaml:"tilt"`
	FrameTicks   int          `yaml:"frame_ticks"`
	Collider     ColliderSpec `yaml:"collider"`
}

type PipeSpec struct {
	Gap           float64      `yaml:"gap"`
	IntervalTicks int          `yaml:"interval_ticks"`
	OffsetMin     int          `yaml:"offset_min"`
	OffsetMax     int          `yaml:"offset_max"`
	ScrollSpeed   float64      `yaml:"scroll_speed"`
	Collider      ColliderSpec `yaml:"collider"`
}

type EnemySpec struct {
	IntervalTicks int          `yaml:"interval_ticks"`
	SpeedX        float64      `yaml:"speed_x"`
	Amplitude     float64      `yaml:"amplitude"`
	WaveStep      float64      `yaml:"wave_step"`
	MinY          int          `yaml:"min_y"`
	MaxY          int          `yaml:"max_y"`
	Colors        []string     `yaml:"colors"`
	FrameTicks    int          `yaml:"frame_ticks"`
	Script        string       `yaml:"script"`
	Collider      ColliderSpec `yaml:"collider"`
}

type BulletSpec struct {
	Speed         float64      `yaml:"speed"`
	Direction     float64      `yaml:"direction"`
	MuzzleOffsetX float64      `yaml:"muzzle_offset_x"`
	FrameTicks    int          `yaml:"frame_ticks"`
	LoopFrom      int          `yaml:"loop_from"`
	Collider      ColliderSpec `yaml:"collider"`
}

type BackgroundSpec struct {
	Wrap   float64     `yaml:"wrap"`
	Layers []LayerSpec `yaml:"layers"`
}

type LayerSpec struct {
	Image      string  `yaml:"image"`
	Y          float64 `yaml:"y"`
	Speed      float64 `yaml:"speed"`
	Foreground bool    `yaml:"foreground"`
}

type HUDSpec struct {
	ScoreY float64 `yaml:"score_y"`
}

type OverlaySpec struct {
	Hint      string     `yaml:"hint"`
	HintColor *YAMLColor `yaml:"hint_color"`
	Spacing   int        `yaml:"spacing"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Validate rejects tuning the game loop cannot run with.
func (s *GameSpec) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.Screen.Width, s.Screen.Height))
	}
	if s.GroundY <= 0 || (s.Screen.Height > 0 && s.GroundY > float64(s.Screen.Height)) {
		errs = append(errs, fmt.Errorf("ground_y %.0f outside the screen", s.GroundY))
	}
	if s.Player.MaxSpeed <= 0 {
		errs = append(errs, errors.New("player.max_speed must be positive"))
	}
	if s.Pipe.IntervalTicks <= 0 || s.Enemy.IntervalTicks <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if s.Pipe.OffsetMin > s.Pipe.OffsetMax {
		errs = append(errs, fmt.Errorf("pipe offset range [%d, %d] is empty", s.Pipe.OffsetMin, s.Pipe.OffsetMax))
	}
	if s.Enemy.MinY > s.Enemy.MaxY {
		errs = append(errs, fmt.Errorf("enemy height range [%d, %d] is empty", s.Enemy.MinY, s.Enemy.MaxY))
	}
	if len(s.Enemy.Colors) == 0 {
		errs = append(errs, errors.New("enemy.colors is empty"))
	}
	for name, c := range map[string]ColliderSpec{
		"player": s.Player.Collider,
		"pipe":   s.Pipe.Collider,
		"enemy":  s.Enemy.Collider,
		"bullet": s.Bullet.Collider,
	} {
		if c.Width <= 0 || c.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s collider must have a positive size", name))
		}
	}
	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
