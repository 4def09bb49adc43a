package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ForeverZer0/texpack"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImportBytes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 200})

	tex, err := ImportBytes(encodePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 3 || tex.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", tex.Width(), tex.Height())
	}
	if got, _ := tex.Get(2, 1); got != (texpack.RGBA8{R: 1, G: 2, B: 3, A: 200}) {
		t.Errorf("Get(2, 1) = %v", got)
	}

	if _, err := ImportBytes([]byte("not an image")); err == nil {
		t.Error("ImportBytes accepted garbage")
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	if err := os.WriteFile(path, encodePNG(t, image.NewNRGBA(image.Rect(0, 0, 4, 4))), 0o644); err != nil {
		t.Fatal(err)
	}

	tex, err := ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 4 {
		t.Errorf("Width = %d, want 4", tex.Width())
	}

	if _, err := ImportFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("ImportFile succeeded for a missing file")
	}
}

// vim: ts=4
