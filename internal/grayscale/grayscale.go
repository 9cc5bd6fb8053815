// Package grayscale collapses a multi-channel image to a single luminance
// channel by arithmetic mean, ahead of DCT projection.
package grayscale

import "github.com/AnyUserName/imgphash/internal/raster"

// Reduce returns a new single-channel image where each pixel is the
// floored arithmetic mean of the source pixel's channels. Dimensions are
// preserved; the source is left untouched.
func Reduce(img *raster.Image) (*raster.Image, error) {
	out := img.Clone()
	err := out.ApplyInPlace(func(px []byte) []byte {
		var sum int
		for _, b := range px {
			sum += int(b)
		}
		return []byte{byte(sum / len(px))}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
