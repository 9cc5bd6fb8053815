// Package rescale implements the box-average resize the comparison
// pipeline uses to bring an arbitrary-sized image down (or up) to a fixed
// square before grayscale reduction and DCT projection.
package rescale

import (
	"fmt"

	"github.com/AnyUserName/imgphash/internal/raster"
)

// Scale produces a new image of the requested dimensions by averaging,
// per destination pixel, the source pixels whose footprint falls under
// it. Returns a structurally-equal clone when (w, h) already match the
// source. Fails with raster.ErrInvalidInput when w or h is zero.
//
// The footprint for destination pixel (x', y') is the integer rectangle
//
//	[floor(x'/sx), ceil((x'+1)/sx)) x [floor(y'/sy), ceil((y'+1)/sy))
//
// where sx = w/srcWidth, sy = h/srcHeight computed in floating point. When
// the footprint collapses to a single source pixel (upscale), that pixel
// is replicated.
func Scale(img *raster.Image, w, h int) (*raster.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target dimensions must be positive, got %dx%d", raster.ErrInvalidInput, w, h)
	}
	if w == img.Width() && h == img.Height() {
		return img.Clone(), nil
	}

	channels := img.ChannelsPerPixel()
	scaleX := float64(w) / float64(img.Width())
	scaleY := float64(h) / float64(img.Height())

	out := make([]byte, w*h*channels)
	avg := make([]uint32, channels)

	for dy := 0; dy < h; dy++ {
		top, bottom := footprint(dy, scaleY, img.Height())
		for dx := 0; dx < w; dx++ {
			left, right := footprint(dx, scaleX, img.Width())

			for c := range avg {
				avg[c] = 0
			}
			var count uint32
			for y := top; y < bottom; y++ {
				for x := left; x < right; x++ {
					px := img.Pixel(x, y)
					for c := 0; c < channels; c++ {
						avg[c] += uint32(px[c])
					}
					count++
				}
			}

			off := (dy*w + dx) * channels
			for c := 0; c < channels; c++ {
				out[off+c] = byte(float64(avg[c]) / float64(count))
			}
		}
	}

	return raster.FromBytes(out, w, channels)
}

// footprint returns the [lo, hi) source-index range destination index d
// (out of dstSize) draws from, clamped into [0, srcSize) and guaranteed
// non-empty.
func footprint(d int, scale float64, srcSize int) (int, int) {
	lo := int(float64(d) / scale)
	hi := int(ceilDiv(float64(d+1), scale))
	if hi <= lo {
		hi = lo + 1
	}
	if hi > srcSize {
		hi = srcSize
	}
	if lo >= srcSize {
		lo = srcSize - 1
	}
	if lo >= hi {
		lo = hi - 1
	}
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

func ceilDiv(numerator, scale float64) float64 {
	v := numerator / scale
	if f := float64(int(v)); f == v {
		return v
	}
	return float64(int(v) + 1)
}
