// Package export encodes view snapshots for files and pipes.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"cellgrid/internal/gridview"

	"golang.org/x/image/draw"
)

// ErrScale is returned for a non-positive upscale factor.
var ErrScale = errors.New("export: scale must be positive")

// Upscale returns snap as an image enlarged by an integer factor with
// nearest-neighbor sampling, so cell edges stay crisp.
func Upscale(snap gridview.Snapshot, scale int) (*image.NRGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrScale, scale)
	}
	src := snap.Image()
	if scale == 1 {
		return src, nil
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// WritePNG encodes snap, upscaled by scale, to w.
func WritePNG(w io.Writer, snap gridview.Snapshot, scale int) error {
	img, err := Upscale(snap, scale)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}
