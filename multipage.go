package texpack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// MultiPacker packs textures into as many atlas pages as needed. Every page is built from the
// same configuration, and a texture is never moved once it has been placed.
//
// A MultiPacker is not safe for concurrent use.
type MultiPacker[P Pixel[P]] struct {
	config Config
	pages  []*Packer[P]

	// Logger, when set, receives a debug message each time a page is opened.
	Logger *log.Logger
}

// NewMulti creates a multi-page packer with no pages.
func NewMulti[P Pixel[P]](cfg Config) (*MultiPacker[P], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MultiPacker[P]{config: cfg}, nil
}

// PackOwn packs a texture the packer takes ownership of into the first page that can hold it,
// opening a new page when none can. An error wrapping ErrTextureTooLarge is returned only when
// the texture does not fit into an empty page.
func (m *MultiPacker[P]) PackOwn(key string, texture Texture[P]) error {
	return m.pack(key, texture, (*Packer[P]).PackOwn)
}

// PackRef packs a borrowed texture, see PackOwn.
func (m *MultiPacker[P]) PackRef(key string, texture Texture[P]) error {
	return m.pack(key, texture, (*Packer[P]).PackRef)
}

func (m *MultiPacker[P]) pack(key string, texture Texture[P], packFn func(*Packer[P], string, Texture[P]) error) error {
	if texture.Width() <= 0 || texture.Height() <= 0 {
		return fmt.Errorf("pack %q: %w", key, ErrEmptyTexture)
	}

	for _, page := range m.pages {
		if page.CanPack(texture) {
			return packFn(page, key, texture)
		}
	}

	page, err := New[P](m.config)
	if err != nil {
		return err
	}
	if err := packFn(page, key, texture); err != nil {
		return err
	}

	m.pages = append(m.pages, page)
	if m.Logger != nil {
		m.Logger.Debug("opened atlas page", "page", len(m.pages)-1, "key", key)
	}
	return nil
}

// Pages returns the atlas pages in the order they were opened.
func (m *MultiPacker[P]) Pages() []*Packer[P] {
	return slices.Clone(m.pages)
}

// Config returns the configuration every page is built from.
func (m *MultiPacker[P]) Config() Config {
	return m.config
}

// Item is a keyed texture for batch packing.
type Item[P Pixel[P]] struct {
	Key     string
	Texture Texture[P]
}

// PackAll packs a batch of textures, taking ownership of them. When compare is not nil the batch
// is first ordered by texture size, which usually packs tighter than the input order. Packing
// stops at the first error.
func (m *MultiPacker[P]) PackAll(items []Item[P], compare SortFunc) error {
	items = slices.Clone(items)
	if compare != nil {
		slices.SortStableFunc(items, func(a, b Item[P]) int {
			return compare(
				NewSize(a.Texture.Width(), a.Texture.Height()),
				NewSize(b.Texture.Width(), b.Texture.Height()),
			)
		})
	}

	for _, item := range items {
		if err := m.PackOwn(item.Key, item.Texture); err != nil {
			if m.Logger != nil && errors.Is(err, ErrTextureTooLarge) {
				m.Logger.Error("texture does not fit an empty page", "key", item.Key,
					"size", NewSize(item.Texture.Width(), item.Texture.Height()))
			}
			return err
		}
	}
	return nil
}

// vim: ts=4
