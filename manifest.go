package texpack

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes one atlas page for the consumers of the exported image.
type Manifest struct {
	// Image is the file name of the exported page.
	Image  string  `json:"image" toml:"image"`
	Width  int     `json:"width" toml:"width"`
	Height int     `json:"height" toml:"height"`
	Frames []Frame `json:"frames" toml:"frames"`
}

// NewManifest builds the manifest of a page. Frames are sorted by key.
func NewManifest[P Pixel[P]](image string, page *Packer[P]) Manifest {
	frames := make([]Frame, 0, len(page.frames))
	for _, frame := range page.frames {
		frames = append(frames, frame)
	}
	slices.SortFunc(frames, func(a, b Frame) int {
		return strings.Compare(a.Key, b.Key)
	})

	return Manifest{
		Image:  image,
		Width:  page.Width(),
		Height: page.Height(),
		Frames: frames,
	}
}

// Frame returns the frame with the given key.
func (m Manifest) Frame(key string) (Frame, bool) {
	i, found := slices.BinarySearchFunc(m.Frames, key, func(f Frame, key string) int {
		return strings.Compare(f.Key, key)
	})
	if !found {
		return Frame{}, false
	}
	return m.Frames[i], true
}

// WriteJSON encodes the manifest as indented JSON.
func (m Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes the manifest as TOML.
func (m Manifest) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a manifest written by WriteJSON.
func ReadJSON(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode: %w", err)
	}
	m.sort()
	return m, nil
}

// ReadTOML decodes a manifest written by WriteTOML.
func ReadTOML(r io.Reader) (Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode: %w", err)
	}
	m.sort()
	return m, nil
}

func (m *Manifest) sort() {
	slices.SortFunc(m.Frames, func(a, b Frame) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// vim: ts=4
