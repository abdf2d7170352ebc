package images

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/benoitkugler/gridlayout/logger"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestMain(m *testing.M) {
	logger.ProgressLogger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func writeRaster(t *testing.T, path string, encode func(io.Writer, image.Image) error) {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 20))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadLocalImages(t *testing.T) {
	dir := t.TempDir()
	writeRaster(t, filepath.Join(dir, "icon.png"), png.Encode)
	writeRaster(t, filepath.Join(dir, "icon.bmp"), bmp.Encode)
	// wrong extension: the SVG is detected after the raster decoders
	err := os.WriteFile(filepath.Join(dir, "pattern.img"), []byte(`<svg width="4" height="4"></svg>`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cache := NewCache(dir)
	for _, src := range []string{"icon.png", "icon.bmp", "file://" + filepath.Join(dir, "icon.png")} {
		size, err := cache.Get(src)
		if err != nil {
			t.Fatal(err)
		}
		tu.AssertEqual(t, size, Size{30, 20})
	}
	size, err := cache.Get("pattern.img")
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, size, Size{4, 4})
	tu.AssertEqual(t, len(cache.entries), 4)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache(dir)
	for _, src := range []string{"missing.png", "broken.png", "http://example.com/a.png", "data:image/png;base64,AAAA"} {
		if _, err := cache.Get(src); err == nil {
			t.Fatalf("expected error for %s", src)
		}
	}
	// failures are cached too
	_, err := cache.Get("missing.png")
	if err == nil || !strings.Contains(err.Error(), "missing.png") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSVGDisplayedSize(t *testing.T) {
	for _, test := range []struct {
		svg  string
		size Size
	}{
		{`<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"></svg>`, Size{4, 4}},
		{`<?xml version="1.0"?><svg width="1in" height="48pt"></svg>`, Size{96, 64}},
		{`<svg viewBox="0 0 40 20"></svg>`, Size{40, 20}},
		{`<svg width="10" viewBox="0 0 40 20"></svg>`, Size{10, 5}},
		{`<svg height="10" viewBox="0,0,40,20"></svg>`, Size{20, 10}},
		{`<svg width="100%" viewBox="0 0 40 20"></svg>`, Size{40, 20}},
	} {
		size, err := decodeSize([]byte(test.svg), true)
		if err != nil {
			t.Fatal(err)
		}
		tu.AssertApprox(t, size, test.size)
		if test.size.Ratio() == 0 {
			t.Fatal("unexpected empty ratio")
		}
	}
}

func TestSVGInvalid(t *testing.T) {
	for _, svg := range []string{
		`<svg></svg>`,
		`<svg viewBox="0 0 40"></svg>`,
		`<svg width="auto" height="2"></svg>`,
		`<p>no svg</p>`,
	} {
		if _, err := decodeSize([]byte(svg), true); err == nil {
			t.Fatalf("expected error for %s", svg)
		}
	}
}
