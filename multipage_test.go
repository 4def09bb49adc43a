package texpack

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestMultiPacker(t *testing.T) {
	m, err := NewMulti[RGBA8](testConfig(50, 20))
	if err != nil {
		t.Fatal(err)
	}

	for i, loopN := 0, 20; i < loopN; i++ {
		if err := m.PackOwn(fmt.Sprintf("tile%02d", i), patternTexture(10, 10)); err != nil {
			t.Fatalf("PackOwn(%d): %v", i, err)
		}
	}

	pages := m.Pages()
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	for i, page := range pages {
		if n := len(page.Keys()); n != 10 {
			t.Errorf("page %d holds %d frames, want 10", i, n)
		}
		if page.Occupancy() != 1 {
			t.Errorf("page %d occupancy = %v, want 1", i, page.Occupancy())
		}
	}
	if _, ok := pages[1].Frame("tile10"); !ok {
		t.Error("tile10 is not on the second page")
	}
}

func TestMultiPackerTooLarge(t *testing.T) {
	m, err := NewMulti[RGBA8](testConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.PackOwn("big", patternTexture(9, 1)); !errors.Is(err, ErrTextureTooLarge) {
		t.Fatalf("PackOwn error = %v, want %v", err, ErrTextureTooLarge)
	}
	if len(m.Pages()) != 0 {
		t.Error("a page was opened for a texture that fits nowhere")
	}
	if err := m.PackRef("empty", NewMemoryTexture(0, 0)); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("PackRef error = %v, want %v", err, ErrEmptyTexture)
	}
}

func TestMultiPackerPackAll(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m, err := NewMulti[RGBA8](testConfig(16, 16))
	if err != nil {
		t.Fatal(err)
	}
	m.Logger = logger

	items := []Item[RGBA8]{
		{Key: "small", Texture: patternTexture(2, 2)},
		{Key: "large", Texture: patternTexture(16, 16)},
		{Key: "medium", Texture: patternTexture(8, 8)},
	}
	if err := m.PackAll(items, SortArea); err != nil {
		t.Fatal(err)
	}

	pages := m.Pages()
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	if keys := pages[0].Keys(); len(keys) != 1 || keys[0] != "large" {
		t.Errorf("first page keys = %v, want [large]", keys)
	}
	if items[0].Key != "small" {
		t.Error("PackAll reordered the caller's slice")
	}
	if n := strings.Count(buf.String(), "opened atlas page"); n != 2 {
		t.Errorf("logged %d page openings, want 2:\n%s", n, buf.String())
	}

	buf.Reset()
	err = m.PackAll([]Item[RGBA8]{{Key: "huge", Texture: patternTexture(17, 1)}}, nil)
	if !errors.Is(err, ErrTextureTooLarge) {
		t.Fatalf("PackAll error = %v, want %v", err, ErrTextureTooLarge)
	}
	if !strings.Contains(buf.String(), "huge") {
		t.Errorf("oversized texture was not logged:\n%s", buf.String())
	}
}

func TestNewMultiInvalidConfig(t *testing.T) {
	cfg := testConfig(8, 8)
	cfg.Heuristic = Skyline | ContactPoint
	if _, err := NewMulti[RGBA8](cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewMulti error = %v, want %v", err, ErrInvalidConfig)
	}
}

// vim: ts=4
