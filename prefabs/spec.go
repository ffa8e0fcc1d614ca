package prefabs

import (
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

// WorldSpec holds the logical playfield size. It is read once at startup.
type WorldSpec struct {
	GameWidth  float64 `yaml:"game_width"`
	GameHeight float64 `yaml:"game_height"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if spec.GameWidth <= 0 || spec.GameHeight <= 0 {
		return nil, fmt.Errorf("prefabs: world.yaml: game size %gx%g must be positive", spec.GameWidth, spec.GameHeight)
	}
	return &spec, nil
}

type StarSpec struct {
	Name      string        `yaml:"name"`
	Frames    int           `yaml:"frames"`
	Size      int           `yaml:"size"`
	FrameMs   float64       `yaml:"frame_ms"`
	Transform TransformSpec `yaml:"transform"`
	Color     YAMLColor     `yaml:"color"`
	GlowColor YAMLColor     `yaml:"glow_color"`
}

func LoadStarSpec() (*StarSpec, error) {
	spec, err := LoadSpec[StarSpec]("star.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Frames <= 0 || spec.Size <= 0 {
		return nil, fmt.Errorf("prefabs: star.yaml: need positive frames and size, got %d and %d", spec.Frames, spec.Size)
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name       string    `yaml:"name"`
	TileWidth  int       `yaml:"tile_width"`
	TileHeight int       `yaml:"tile_height"`
	MinUnits   int       `yaml:"min_units"`
	MaxUnits   int       `yaml:"max_units"`
	MinGap     float64   `yaml:"min_gap"`
	MaxGap     float64   `yaml:"max_gap"`
	DarkChance float64   `yaml:"dark_chance"`
	Light      YAMLColor `yaml:"light"`
	Dark       YAMLColor `yaml:"dark"`
	Edge       YAMLColor `yaml:"edge"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TileWidth <= 0 || spec.TileHeight <= 0 {
		return nil, fmt.Errorf("prefabs: platform.yaml: tile size %dx%d must be positive", spec.TileWidth, spec.TileHeight)
	}
	if spec.MinUnits <= 0 || spec.MaxUnits < spec.MinUnits {
		return nil, fmt.Errorf("prefabs: platform.yaml: invalid unit range [%d, %d]", spec.MinUnits, spec.MaxUnits)
	}
	if spec.MinGap <= 0 || spec.MaxGap < spec.MinGap {
		return nil, fmt.Errorf("prefabs: platform.yaml: invalid gap range [%g, %g]", spec.MinGap, spec.MaxGap)
	}
	return &spec, nil
}

// TuningSpec holds values that may be hot reloaded while the game runs.
// Speeds are world units per millisecond.
type TuningSpec struct {
	Gravity      float64 `yaml:"gravity"`
	BounceSpeed  float64 `yaml:"bounce_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
	ScrollLead   float64 `yaml:"scroll_lead"`
	ScrollSmooth float64 `yaml:"scroll_smooth"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
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

// Or returns the parsed color, or fallback when the field was left empty.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
