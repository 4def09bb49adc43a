package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ForeverZer0/texpack"
	"github.com/ForeverZer0/texpack/imageio"
)

// inputExts lists the file extensions picked up when a directory is given as input.
var inputExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type packOptions struct {
	config         configFlags
	out            string
	format         imageio.Format
	manifest       string
	sort           string
	alphaThreshold uint8
}

func newPackCmd() *cobra.Command {
	opts := packOptions{format: imageio.PNG}

	cmd := &cobra.Command{
		Use:   "pack [flags] <inputs...>",
		Short: "Pack images into texture atlases",
		Long: `Pack images into one or more atlas pages.

Inputs are image files or directories, which are searched recursively. Each texture is keyed by
its path relative to the directory it was found in, without the extension. Every page is written
as <out>-<n> with a manifest next to it describing where each texture was placed.`,
		Example: `  texpack pack -o build/sprites sprites/
  texpack pack --config atlas.toml --heuristic MaxRects-BSSF --format tiff *.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runPack(cmd, cfg, opts, args)
		},
	}

	flags := cmd.Flags()
	opts.config.register(flags)
	flags.StringVarP(&opts.out, "out", "o", "atlas", "output path prefix")
	flags.Var(&opts.format, "format", "image format: png, bmp or tiff")
	flags.StringVar(&opts.manifest, "manifest", "json", "manifest format: json or toml")
	flags.StringVar(&opts.sort, "sort", "area", "presort order: area, perimeter, diff, minside, maxside, ratio or none")
	flags.Uint8Var(&opts.alphaThreshold, "alpha-threshold", 0, "drop pixels with alpha below this value")

	return cmd
}

func runPack(cmd *cobra.Command, cfg texpack.Config, opts packOptions, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.manifest != "json" && opts.manifest != "toml" {
		return fmt.Errorf("unknown manifest format %q", opts.manifest)
	}
	sortFunc, err := texpack.ParseSortFunc(opts.sort)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	items, err := loadTextures(ctx, args)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printWarning(cmd.OutOrStdout(), "No images found")
		return nil
	}
	prog.done(fmt.Sprintf("Loaded %d textures", len(items)))

	logger.Debug("packing", "heuristic", cfg.Heuristic, "max", texpack.NewSize(cfg.MaxWidth, cfg.MaxHeight))
	packer, err := texpack.NewMulti[texpack.RGBA8](cfg)
	if err != nil {
		return err
	}
	packer.Logger = logger

	prog = newProgress(logger)
	if err := packer.PackAll(items, sortFunc); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d pages", len(packer.Pages())))

	if dir := filepath.Dir(opts.out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var summary []pageSummary
	for i, page := range packer.Pages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := writePage(page, i, opts)
		if err != nil {
			return err
		}
		logger.Debug("wrote page", "image", s.image, "manifest", s.manifest)
		summary = append(summary, s)
	}

	printSummary(cmd.OutOrStdout(), len(items), summary)
	return nil
}

// loadTextures imports every input, expanding directories.
func loadTextures(ctx context.Context, args []string) ([]texpack.Item[texpack.RGBA8], error) {
	logger := loggerFromContext(ctx)

	var items []texpack.Item[texpack.RGBA8]
	seen := make(map[string]string)

	add := func(root, path string) error {
		key := textureKey(root, path)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s both map to key %q", prev, path, key)
		}
		tex, err := imageio.ImportFile(path)
		if err != nil {
			return err
		}
		logger.Debug("imported", "key", key, "size", texpack.NewSize(tex.Width(), tex.Height()))
		seen[key] = path
		items = append(items, texpack.Item[texpack.RGBA8]{Key: key, Texture: tex})
		return nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(filepath.Dir(arg), arg); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() || !slices.Contains(inputExts, strings.ToLower(filepath.Ext(path))) {
				return nil
			}
			return add(arg, path)
		})
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// writePage exports one page and its manifest.
func writePage(page *texpack.Packer[texpack.RGBA8], index int, opts packOptions) (pageSummary, error) {
	base := fmt.Sprintf("%s-%d", opts.out, index)
	s := pageSummary{
		image:     base + opts.format.Ext(),
		manifest:  base + "." + opts.manifest,
		width:     page.Width(),
		height:    page.Height(),
		frames:    len(page.Keys()),
		occupancy: page.Occupancy(),
	}

	img, err := imageio.Export[texpack.RGBA8](page, imageio.WithAlphaThreshold(opts.alphaThreshold))
	if err != nil {
		return s, fmt.Errorf("export page %d: %w", index, err)
	}
	if err := imageio.WriteFile(s.image, img); err != nil {
		return s, err
	}

	m := texpack.NewManifest(filepath.Base(s.image), page)
	f, err := os.Create(s.manifest)
	if err != nil {
		return s, fmt.Errorf("create %s: %w", s.manifest, err)
	}
	defer f.Close()

	if opts.manifest == "toml" {
		err = m.WriteTOML(f)
	} else {
		err = m.WriteJSON(f)
	}
	if err != nil {
		return s, fmt.Errorf("write %s: %w", s.manifest, err)
	}
	return s, f.Close()
}

// vim: ts=4
