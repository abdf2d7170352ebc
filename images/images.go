// Package images reads the intrinsic size of images,
// used to lay out <img> elements without explicit dimensions.
package images

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is the intrinsic size of an image, in pixels.
type Size struct {
	Width, Height utils.Fl
}

// Ratio returns Width / Height, or 0 for an empty image.
func (s Size) Ratio() utils.Fl {
	if s.Height == 0 {
		return 0
	}
	return s.Width / s.Height
}

// An error occured when loading an image.
// The image data is probably corrupted or in an invalid format.
func imageLoadingError(err error) error {
	return fmt.Errorf("error loading image : %s", err)
}

type cached struct {
	size Size
	err  error
}

// Cache stores the result of reading an image, failures included.
type Cache struct {
	baseDir string
	entries map[string]cached
}

// NewCache resolves relative sources against [baseDir],
// or the working directory if it is empty.
func NewCache(baseDir string) *Cache {
	return &Cache{baseDir: baseDir, entries: make(map[string]cached)}
}

// Get returns the intrinsic size of the image at [src],
// a local path or a file:// URL.
func (c *Cache) Get(src string) (Size, error) {
	if res, in := c.entries[src]; in {
		return res.size, res.err
	}
	size, err := c.load(src)
	c.entries[src] = cached{size, err}
	return size, err
}

func (c *Cache) resolve(src string) (string, error) {
	path := src
	if strings.HasPrefix(path, "file://") {
		path = strings.TrimPrefix(path, "file://")
	} else if strings.Contains(path, "://") || strings.HasPrefix(path, "data:") {
		return "", fmt.Errorf("unsupported image source %q", src)
	}
	if !filepath.IsAbs(path) && c.baseDir != "" {
		path = filepath.Join(c.baseDir, path)
	}
	return path, nil
}

func (c *Cache) load(src string) (Size, error) {
	path, err := c.resolve(src)
	if err != nil {
		return Size{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Size{}, fmt.Errorf(`Failed to load image at "%s" (%s)`, src, err)
	}
	logger.ProgressLogger.Printf("Reading image %s", path)
	return decodeSize(content, strings.EqualFold(filepath.Ext(path), ".svg"))
}

// decodeSize tries SVG first when [isSVG] is true, then the raster
// decoders, and SVG as a last chance.
func decodeSize(content []byte, isSVG bool) (Size, error) {
	var errSvg error
	if isSVG {
		var size Size
		if size, errSvg = svgSize(bytes.NewReader(content)); errSvg == nil {
			return size, nil
		}
	}

	config, _, errRaster := image.DecodeConfig(bytes.NewReader(content))
	if errRaster == nil {
		return Size{Width: utils.Fl(config.Width), Height: utils.Fl(config.Height)}, nil
	}
	if errSvg != nil { // tried SVG then raster for a SVG, abort
		return Size{}, imageLoadingError(errSvg)
	}

	size, errSvg := svgSize(bytes.NewReader(content))
	if errSvg != nil {
		return Size{}, imageLoadingError(errRaster)
	}
	return size, nil
}
