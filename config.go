package texpack

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSize is the default width/height used as the maximum extent of an atlas page.
const DefaultSize = 1024

// ErrInvalidConfig is returned when a configuration cannot be used to build a packer.
var ErrInvalidConfig = errors.New("invalid packer configuration")

// Config describes how textures are packed. A packer copies its configuration when it is
// created, so changes made afterward have no effect on it.
type Config struct {
	// MaxWidth is the maximum width of an atlas page.
	MaxWidth int `toml:"max_width" json:"max_width"`
	// MaxHeight is the maximum height of an atlas page.
	MaxHeight int `toml:"max_height" json:"max_height"`
	// AllowRotation lets textures be turned 90° clockwise when that fits better.
	AllowRotation bool `toml:"allow_rotation" json:"allow_rotation"`
	// ForceMaxDimensions makes the atlas report MaxWidth and MaxHeight as its size instead of
	// the extent of its frames.
	ForceMaxDimensions bool `toml:"force_max_dimensions" json:"force_max_dimensions"`
	// BorderPadding is the empty space kept along the edges of the atlas.
	BorderPadding int `toml:"border_padding" json:"border_padding"`
	// TexturePadding is the empty space kept to the right of and below each texture.
	TexturePadding int `toml:"texture_padding" json:"texture_padding"`
	// TextureExtrusion is the number of edge pixels repeated outward around each texture.
	TextureExtrusion int `toml:"texture_extrusion" json:"texture_extrusion"`
	// Trim removes fully transparent rows and columns from the edges of textures.
	Trim bool `toml:"trim" json:"trim"`
	// TextureOutlines draws the outline color along the edge of every frame.
	TextureOutlines bool `toml:"texture_outlines" json:"texture_outlines"`
	// Heuristic selects the free-space tracker and how it places rectangles.
	Heuristic Heuristic `toml:"heuristic" json:"heuristic"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxWidth:           DefaultSize,
		MaxHeight:          DefaultSize,
		AllowRotation:      true,
		ForceMaxDimensions: false,
		BorderPadding:      0,
		TexturePadding:     2,
		TextureExtrusion:   0,
		Trim:               true,
		TextureOutlines:    false,
		Heuristic:          SkylineBL,
	}
}

// Validate tests whether a packer can be built from the configuration. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MaxWidth <= 0 || c.MaxHeight <= 0:
		return fmt.Errorf("%w: max size %dx%d must be positive", ErrInvalidConfig, c.MaxWidth, c.MaxHeight)
	case c.BorderPadding < 0:
		return fmt.Errorf("%w: negative border padding %d", ErrInvalidConfig, c.BorderPadding)
	case c.BorderPadding*2 >= c.MaxWidth || c.BorderPadding*2 >= c.MaxHeight:
		return fmt.Errorf("%w: border padding %d leaves no room in %dx%d", ErrInvalidConfig, c.BorderPadding, c.MaxWidth, c.MaxHeight)
	case c.TexturePadding < 0:
		return fmt.Errorf("%w: negative texture padding %d", ErrInvalidConfig, c.TexturePadding)
	case c.TextureExtrusion < 0:
		return fmt.Errorf("%w: negative texture extrusion %d", ErrInvalidConfig, c.TextureExtrusion)
	}
	if err := c.Heuristic.Validate(); err != nil {
		return fmt.Errorf("%w: heuristic %v: %w", ErrInvalidConfig, c.Heuristic, err)
	}
	return nil
}

// trackerSize returns the area handed to the free-space tracker. Padding only reserves space
// between textures, so the padding of the right-most and bottom-most textures may extend into
// the border without any frame or extrusion leaving the atlas.
func (c Config) trackerSize() Size {
	return Size{
		Width:  c.MaxWidth - c.BorderPadding*2 + c.TexturePadding,
		Height: c.MaxHeight - c.BorderPadding*2 + c.TexturePadding,
	}
}

// DecodeConfig reads a TOML configuration. Keys that are not present keep their default value,
// and unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a TOML configuration file, see DecodeConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, key := range undecoded {
		keys[i] = key.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
}

// WriteTOML writes the configuration as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// vim: ts=4
