package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// A Format is an output image encoding.
type Format uint32

const (
	// UnknownFormat is an unknown or missing format.
	UnknownFormat Format = iota
	// PNG is the Portable Network Graphics format.
	PNG
	// BMP is the Windows bitmap format.
	BMP
	// TIFF is the Tagged Image File Format, written with deflate compression.
	TIFF
)

var formats = [...]struct {
	name string
	ext  string
}{
	PNG:  {name: "png", ext: ".png"},
	BMP:  {name: "bmp", ext: ".bmp"},
	TIFF: {name: "tiff", ext: ".tiff"},
}

// String returns the name of the format.
func (f Format) String() string {
	if i := int(f); i < len(formats) && formats[i].name != "" {
		return formats[i].name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Ext returns the file extension of the format, including the dot.
func (f Format) Ext() string {
	if i := int(f); i < len(formats) {
		return formats[i].ext
	}
	return ""
}

// Set sets the format to a string value.
func (f *Format) Set(s string) error {
	for i, n := range formats {
		if n.name != "" && strings.EqualFold(s, n.name) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("unknown format: %q", s)
}

// Type returns the flag type name.
func (f *Format) Type() string {
	return "format"
}

// FormatFromPath returns the format matching the extension of a file path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return UnknownFormat, fmt.Errorf("no output format for extension %q", ext)
}

// Encode writes an image in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("encode: unsupported format %v", format)
	}
	if err != nil {
		return fmt.Errorf("encode %v: %w", format, err)
	}
	return nil
}

// WriteFile encodes an image into a file, choosing the format from the file extension.
func WriteFile(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Encode(f, img, format)
}

// vim: ts=4
