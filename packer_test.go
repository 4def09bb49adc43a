package texpack

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

// testConfig returns a configuration without padding, trimming or rotation.
func testConfig(width, height int) Config {
	cfg := DefaultConfig()
	cfg.MaxWidth = width
	cfg.MaxHeight = height
	cfg.TexturePadding = 0
	cfg.AllowRotation = false
	cfg.Trim = false
	return cfg
}

// patternTexture returns an opaque texture where every pixel encodes its own location.
func patternTexture(width, height int) *MemoryTexture {
	tex := NewMemoryTexture(width, height)
	for y, loopN := 0, height; y < loopN; y++ {
		for x, loopN := 0, width; x < loopN; x++ {
			tex.Set(x, y, RGBA8{R: uint8(x), G: uint8(y), B: 1, A: 255})
		}
	}
	return tex
}

func mustNew(t *testing.T, cfg Config) *Packer[RGBA8] {
	t.Helper()
	p, err := New[RGBA8](cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestPackerRoundTrip(t *testing.T) {
	p := mustNew(t, testConfig(64, 64))
	textures := map[string]*MemoryTexture{
		"a": patternTexture(5, 3),
		"b": patternTexture(4, 4),
		"c": patternTexture(7, 2),
	}
	for _, key := range []string{"a", "b", "c"} {
		if err := p.PackOwn(key, textures[key]); err != nil {
			t.Fatalf("PackOwn(%q): %v", key, err)
		}
	}

	for key, tex := range textures {
		frame, ok := p.Frame(key)
		if !ok {
			t.Fatalf("frame %q missing", key)
		}
		if frame.Rotated || frame.Trimmed {
			t.Errorf("frame %q rotated=%v trimmed=%v", key, frame.Rotated, frame.Trimmed)
		}
		if want := NewRect(0, 0, tex.Width(), tex.Height()); !frame.Source.Eq(want) {
			t.Errorf("frame %q source = %v, want %v", key, frame.Source, want)
		}
		for y, loopN := 0, tex.Height(); y < loopN; y++ {
			for x, loopN := 0, tex.Width(); x < loopN; x++ {
				got, ok := p.Get(frame.Frame.X+x, frame.Frame.Y+y)
				want, _ := tex.Get(x, y)
				if !ok || got != want {
					t.Fatalf("%q (%d, %d) = %v, %v, want %v", key, x, y, got, ok, want)
				}
			}
		}
	}

	if got := p.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys = %v", got)
	}
}

func TestPackerRotation(t *testing.T) {
	cfg := testConfig(4, 10)
	cfg.AllowRotation = true
	p := mustNew(t, cfg)

	tex := patternTexture(10, 4)
	if err := p.PackOwn("wide", tex); err != nil {
		t.Fatal(err)
	}

	frame, _ := p.Frame("wide")
	if !frame.Rotated {
		t.Fatal("texture was not rotated")
	}
	if !frame.Frame.Eq(NewRect(0, 0, 4, 10)) {
		t.Fatalf("frame = %v, want <0, 0, 4, 10>", frame.Frame)
	}

	for j, loopN := 0, 10; j < loopN; j++ {
		for i, loopN := 0, 4; i < loopN; i++ {
			got, ok := p.Get(frame.Frame.X+i, frame.Frame.Y+j)
			want, _ := tex.Get(j, tex.Height()-1-i)
			if !ok || got != want {
				t.Fatalf("(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestPackerTrim(t *testing.T) {
	cfg := testConfig(32, 32)
	cfg.Trim = true
	p := mustNew(t, cfg)

	tex := NewMemoryTexture(6, 5)
	for y := 2; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			tex.Set(x, y, RGBA8{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	if err := p.PackOwn("sprite", tex); err != nil {
		t.Fatal(err)
	}

	frame, _ := p.Frame("sprite")
	if !frame.Trimmed {
		t.Error("frame not marked as trimmed")
	}
	if want := NewRect(1, 2, 6, 5); !frame.Source.Eq(want) {
		t.Errorf("source = %v, want %v", frame.Source, want)
	}
	if frame.Frame.W != 3 || frame.Frame.H != 2 {
		t.Fatalf("frame size = %v, want 3x2", frame.Frame.Size())
	}

	got, _ := p.Get(frame.Frame.X, frame.Frame.Y)
	if want, _ := tex.Get(1, 2); got != want {
		t.Errorf("top-left pixel = %v, want %v", got, want)
	}

	// Packing the trimmed pixels again finds nothing left to trim.
	trimmed := NewMemoryTexture(frame.Frame.W, frame.Frame.H)
	for y, loopN := 0, trimmed.Height(); y < loopN; y++ {
		for x, loopN := 0, trimmed.Width(); x < loopN; x++ {
			px, _ := p.Get(frame.Frame.X+x, frame.Frame.Y+y)
			trimmed.Set(x, y, px)
		}
	}
	again := mustNew(t, cfg)
	if err := again.PackOwn("sprite", trimmed); err != nil {
		t.Fatal(err)
	}
	frame, _ = again.Frame("sprite")
	if frame.Trimmed || !frame.Source.Eq(NewRect(0, 0, 3, 2)) {
		t.Errorf("second trim: trimmed=%v source=%v", frame.Trimmed, frame.Source)
	}
}

func TestPackerTrimTransparent(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.Trim = true
	p := mustNew(t, cfg)

	if err := p.PackOwn("empty", NewMemoryTexture(4, 4)); err != nil {
		t.Fatal(err)
	}
	frame, _ := p.Frame("empty")
	if frame.Frame.W != 1 || frame.Frame.H != 1 {
		t.Errorf("frame size = %v, want 1x1", frame.Frame.Size())
	}
	if !frame.Trimmed || !frame.Source.Eq(NewRect(0, 0, 4, 4)) {
		t.Errorf("trimmed=%v source=%v", frame.Trimmed, frame.Source)
	}
}

func TestPackerOverflow(t *testing.T) {
	for _, rotate := range []bool{false, true} {
		t.Run(fmt.Sprintf("rotate=%v", rotate), func(t *testing.T) {
			cfg := testConfig(1, 1)
			cfg.AllowRotation = rotate
			p := mustNew(t, cfg)

			tex := patternTexture(2, 1)
			if p.CanPack(tex) {
				t.Error("CanPack = true for an oversized texture")
			}
			if err := p.PackOwn("big", tex); !errors.Is(err, ErrTextureTooLarge) {
				t.Fatalf("PackOwn error = %v, want %v", err, ErrTextureTooLarge)
			}
			if len(p.Frames()) != 0 || len(p.Keys()) != 0 {
				t.Errorf("failed pack left frames %v", p.Frames())
			}
			if p.Occupancy() != 0 {
				t.Errorf("Occupancy = %v, want 0", p.Occupancy())
			}
		})
	}
}

func TestPackerEmptyTexture(t *testing.T) {
	p := mustNew(t, testConfig(16, 16))
	tex := NewMemoryTexture(0, 3)
	if p.CanPack(tex) {
		t.Error("CanPack = true for an empty texture")
	}
	if err := p.PackOwn("empty", tex); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("PackOwn error = %v, want %v", err, ErrEmptyTexture)
	}
}

func TestPackerCanPack(t *testing.T) {
	p := mustNew(t, testConfig(8, 8))
	tex := patternTexture(8, 8)
	if !p.CanPack(tex) {
		t.Fatal("CanPack = false for a texture filling the atlas")
	}
	if len(p.Keys()) != 0 || p.Occupancy() != 0 {
		t.Fatal("CanPack changed the packer")
	}
	if err := p.PackOwn("full", tex); err != nil {
		t.Fatal(err)
	}
	if p.CanPack(patternTexture(1, 1)) {
		t.Error("CanPack = true for a full atlas")
	}
	if p.Occupancy() != 1 {
		t.Errorf("Occupancy = %v, want 1", p.Occupancy())
	}
}

func TestPackerDimensions(t *testing.T) {
	cfg := testConfig(64, 64)
	cfg.BorderPadding = 1

	t.Run("frame", func(t *testing.T) {
		p := mustNew(t, cfg)
		p.frames["a"] = Frame{Key: "a", Frame: NewRect(0, 0, 10, 10)}
		p.keys = append(p.keys, "a")
		if p.Width() != 11 || p.Height() != 11 {
			t.Errorf("size = %dx%d, want 11x11", p.Width(), p.Height())
		}
	})

	t.Run("empty", func(t *testing.T) {
		p := mustNew(t, cfg)
		if p.Width() != 0 || p.Height() != 0 {
			t.Errorf("size = %dx%d, want 0x0", p.Width(), p.Height())
		}
	})

	t.Run("packed", func(t *testing.T) {
		p := mustNew(t, cfg)
		if err := p.PackOwn("a", patternTexture(10, 10)); err != nil {
			t.Fatal(err)
		}
		frame, _ := p.Frame("a")
		if !frame.Frame.Eq(NewRect(1, 1, 10, 10)) {
			t.Errorf("frame = %v, want <1, 1, 10, 10>", frame.Frame)
		}
		if p.Width() != 12 || p.Height() != 12 {
			t.Errorf("size = %dx%d, want 12x12", p.Width(), p.Height())
		}
	})

	t.Run("force max", func(t *testing.T) {
		forced := cfg
		forced.ForceMaxDimensions = true
		p := mustNew(t, forced)
		if p.Width() != 64 || p.Height() != 64 {
			t.Errorf("size = %dx%d, want 64x64", p.Width(), p.Height())
		}
	})
}

func TestPackerOutlines(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.TextureOutlines = true
	p := mustNew(t, cfg)

	tex := patternTexture(3, 3)
	if err := p.PackOwn("a", tex); err != nil {
		t.Fatal(err)
	}

	outline := RGBA8{}.Outline()
	for y, loopN := 0, 3; y < loopN; y++ {
		for x, loopN := 0, 3; x < loopN; x++ {
			got, ok := p.Get(x, y)
			want := outline
			if x == 1 && y == 1 {
				want, _ = tex.Get(1, 1)
			}
			if !ok || got != want {
				t.Errorf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if _, ok := p.Get(5, 5); ok {
		t.Error("background pixel reported as covered")
	}
}

func TestPackerExtrusion(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.TextureExtrusion = 1
	p := mustNew(t, cfg)

	tex := patternTexture(2, 2)
	if err := p.PackOwn("a", tex); err != nil {
		t.Fatal(err)
	}
	frame, _ := p.Frame("a")
	if !frame.Frame.Eq(NewRect(1, 1, 2, 2)) {
		t.Fatalf("frame = %v, want <1, 1, 2, 2>", frame.Frame)
	}

	// Extruded pixels repeat the nearest edge.
	tests := []struct{ x, y, srcX, srcY int }{
		{0, 0, 0, 0},
		{3, 0, 1, 0},
		{0, 2, 0, 1},
		{3, 3, 1, 1},
		{2, 1, 1, 0},
	}
	for _, tt := range tests {
		got, ok := p.Get(tt.x, tt.y)
		want, _ := tex.Get(tt.srcX, tt.srcY)
		if !ok || got != want {
			t.Errorf("(%d, %d) = %v, want %v", tt.x, tt.y, got, want)
		}
	}
	if p.Width() != 4 || p.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", p.Width(), p.Height())
	}
}

func TestPackerReplaceKey(t *testing.T) {
	p := mustNew(t, testConfig(32, 32))
	for _, key := range []string{"a", "b"} {
		if err := p.PackOwn(key, patternTexture(4, 4)); err != nil {
			t.Fatal(err)
		}
	}

	replacement := NewMemoryTexture(2, 2)
	replacement.Set(0, 0, RGBA8{B: 200, A: 255})
	if err := p.PackRef("a", replacement); err != nil {
		t.Fatal(err)
	}

	if got := p.Keys(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("Keys = %v, want [b a]", got)
	}
	if len(p.Frames()) != 2 {
		t.Errorf("Frames = %v", p.Frames())
	}

	frame, _ := p.Frame("a")
	if frame.Frame.W != 2 || frame.Frame.H != 2 {
		t.Errorf("frame = %v, want 2x2", frame.Frame)
	}
	if got, _ := p.Get(frame.Frame.X, frame.Frame.Y); got != (RGBA8{B: 200, A: 255}) {
		t.Errorf("replaced pixel = %v", got)
	}
	if p.textures["a"].Owned() {
		t.Error("PackRef stored an owned texture")
	}

	// The old frame keeps its space.
	if want := float64(16+16+4) / float64(32*32); p.Occupancy() != want {
		t.Errorf("Occupancy = %v, want %v", p.Occupancy(), want)
	}
}

func TestPackerSetPanics(t *testing.T) {
	p := mustNew(t, testConfig(8, 8))
	mustPanic(t, "Set", func() { p.Set(0, 0, RGBA8{}) })
}

func TestPackerInvalidConfig(t *testing.T) {
	cfg := testConfig(8, 8)
	cfg.BorderPadding = 4
	if _, err := New[RGBA8](cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New error = %v, want %v", err, ErrInvalidConfig)
	}
}

func TestPackerBounds(t *testing.T) {
	for _, heuristic := range allHeuristics {
		t.Run(heuristic.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MaxWidth = 256
			cfg.MaxHeight = 256
			cfg.BorderPadding = 3
			cfg.TexturePadding = 2
			cfg.TextureExtrusion = 1
			cfg.Trim = false
			cfg.Heuristic = heuristic
			p := mustNew(t, cfg)

			rng := rand.New(rand.NewSource(7))
			sizes := make(map[string]Size)
			for i, loopN := 0, 80; i < loopN; i++ {
				size := randomSize(rng, NewSize(4, 4), NewSize(40, 40))
				key := fmt.Sprintf("tex%02d", i)
				err := p.PackOwn(key, NewMemoryTexture(size.Width, size.Height))
				if errors.Is(err, ErrTextureTooLarge) {
					continue
				}
				if err != nil {
					t.Fatal(err)
				}
				sizes[key] = size
			}
			if len(sizes) == 0 {
				t.Fatal("nothing was packed")
			}

			inner := NewRect(cfg.BorderPadding, cfg.BorderPadding,
				cfg.MaxWidth-2*cfg.BorderPadding, cfg.MaxHeight-2*cfg.BorderPadding)
			ext := cfg.TextureExtrusion
			frames := p.Frames()
			reserved := make(map[string]Rect, len(frames))
			for key, frame := range frames {
				size := sizes[key]
				if frame.Rotated {
					size = size.Flip()
				}
				if !frame.Frame.Size().Eq(size) {
					t.Errorf("%s frame %v, want size %v", key, frame.Frame, size)
				}
				if outer := frame.Frame.Inflate(ext, ext); !inner.ContainsRect(outer) {
					t.Errorf("%s frame %v leaves the atlas %v", key, outer, inner)
				}
				reserved[key] = NewRect(frame.Frame.X-ext, frame.Frame.Y-ext,
					frame.Frame.W+2*ext+cfg.TexturePadding, frame.Frame.H+2*ext+cfg.TexturePadding)
			}

			for a, ra := range reserved {
				for b, rb := range reserved {
					if a < b && ra.Intersects(rb) {
						t.Errorf("%s %v overlaps %s %v", a, ra, b, rb)
					}
				}
			}

			if p.Width() > cfg.MaxWidth || p.Height() > cfg.MaxHeight {
				t.Errorf("atlas %dx%d exceeds %dx%d", p.Width(), p.Height(), cfg.MaxWidth, cfg.MaxHeight)
			}
		})
	}
}

// vim: ts=4
