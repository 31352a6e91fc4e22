// Package img implements the image-side plumbing: loading a raster image
// into per-channel planes, splitting planes into blocks, driving the
// per-block compression/decompression pipeline, and (de)serializing the
// result to the binary container format.
package img

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load reads any registered raster format (PNG, JPEG, GIF, BMP, TIFF) from
// path and returns the decoded image.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("img: open %s: %w", path, err)
	}
	defer f.Close()

	im, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("img: decode %s: %w", path, err)
	}
	return im, nil
}

// Save writes im to path, picking an encoder from path's extension. ".jp2"
// and ".j2k" use the JPEG 2000 encoder; everything else is written as PNG.
func Save(im image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("img: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jp2":
		return saveJPEG2000(f, im, jpeg2000.FormatJP2)
	case ".j2k":
		return saveJPEG2000(f, im, jpeg2000.FormatJ2K)
	default:
		return png.Encode(f, im)
	}
}

func saveJPEG2000(w io.Writer, im image.Image, format jpeg2000.Format) error {
	return jpeg2000.Encode(w, im, &jpeg2000.Options{Format: format})
}
