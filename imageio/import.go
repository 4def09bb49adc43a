package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Import decodes an image in any registered format.
func Import(r io.Reader) (*ImageTexture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %s image: empty bounds %v", format, b)
	}
	return NewImageTexture(img), nil
}

// ImportBytes decodes an image held in memory.
func ImportBytes(b []byte) (*ImageTexture, error) {
	return Import(bytes.NewReader(b))
}

// ImportFile decodes an image file.
func ImportFile(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tex, err := Import(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return tex, nil
}

// vim: ts=4
