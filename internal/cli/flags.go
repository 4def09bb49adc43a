package cli

import (
	"github.com/spf13/pflag"

	"github.com/ForeverZer0/texpack"
)

// configFlags binds the packer configuration to command-line flags. Flags override the values
// of a configuration file only when they are given explicitly.
type configFlags struct {
	path string
	cfg  texpack.Config
}

func (f *configFlags) register(fs *pflag.FlagSet) {
	f.cfg = texpack.DefaultConfig()

	fs.StringVarP(&f.path, "config", "c", "", "TOML configuration file")
	fs.IntVar(&f.cfg.MaxWidth, "max-width", f.cfg.MaxWidth, "maximum page width")
	fs.IntVar(&f.cfg.MaxHeight, "max-height", f.cfg.MaxHeight, "maximum page height")
	fs.BoolVar(&f.cfg.AllowRotation, "rotate", f.cfg.AllowRotation, "allow textures to be rotated")
	fs.BoolVar(&f.cfg.ForceMaxDimensions, "force-max", f.cfg.ForceMaxDimensions, "always output pages of the maximum size")
	fs.IntVar(&f.cfg.BorderPadding, "border", f.cfg.BorderPadding, "padding along the page edges")
	fs.IntVar(&f.cfg.TexturePadding, "padding", f.cfg.TexturePadding, "padding between textures")
	fs.IntVar(&f.cfg.TextureExtrusion, "extrude", f.cfg.TextureExtrusion, "edge pixels repeated around textures")
	fs.BoolVar(&f.cfg.Trim, "trim", f.cfg.Trim, "trim transparent borders")
	fs.BoolVar(&f.cfg.TextureOutlines, "outlines", f.cfg.TextureOutlines, "draw frame outlines")
	fs.Var(&f.cfg.Heuristic, "heuristic", "packing strategy, e.g. Skyline-BL, MaxRects-BSSF, Guillotine-BAF-SAS, Shelf")
}

// resolve returns the effective configuration: the defaults, then the configuration file, then
// the flags that were set.
func (f *configFlags) resolve(fs *pflag.FlagSet) (texpack.Config, error) {
	cfg := texpack.DefaultConfig()
	if f.path != "" {
		var err error
		if cfg, err = texpack.LoadConfig(f.path); err != nil {
			return texpack.Config{}, err
		}
	}

	overrides := map[string]func(){
		"max-width":  func() { cfg.MaxWidth = f.cfg.MaxWidth },
		"max-height": func() { cfg.MaxHeight = f.cfg.MaxHeight },
		"rotate":     func() { cfg.AllowRotation = f.cfg.AllowRotation },
		"force-max":  func() { cfg.ForceMaxDimensions = f.cfg.ForceMaxDimensions },
		"border":     func() { cfg.BorderPadding = f.cfg.BorderPadding },
		"padding":    func() { cfg.TexturePadding = f.cfg.TexturePadding },
		"extrude":    func() { cfg.TextureExtrusion = f.cfg.TextureExtrusion },
		"trim":       func() { cfg.Trim = f.cfg.Trim },
		"outlines":   func() { cfg.TextureOutlines = f.cfg.TextureOutlines },
		"heuristic":  func() { cfg.Heuristic = f.cfg.Heuristic },
	}
	fs.Visit(func(flag *pflag.Flag) {
		if apply, ok := overrides[flag.Name]; ok {
			apply()
		}
	})

	return cfg, cfg.Validate()
}

// vim: ts=4
