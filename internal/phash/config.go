package phash

import (
	"fmt"

	"github.com/AnyUserName/imgphash/internal/raster"
)

// Config bounds the comparison: the DCT dimension, how many of its
// low-frequency coefficients to keep, and the Hamming-distance threshold
// at or below which two images are considered the same picture.
type Config struct {
	DCTDimension        int // N: square dimension images are rescaled to
	DCTReducedDimension int // R: side of the low-frequency sub-block kept
	AllowedDistance     int // T: maximum Hamming distance still counted as "same"
}

// DefaultConfig returns the spec's defaults: N=32, R=8, T=0.
func DefaultConfig() Config {
	return Config{DCTDimension: 32, DCTReducedDimension: 8, AllowedDistance: 0}
}

// validate enforces 1 <= R <= N, R*R <= 64, and T <= 64.
func (c Config) validate() error {
	if c.DCTReducedDimension < 1 || c.DCTReducedDimension > c.DCTDimension {
		return fmt.Errorf("%w: dct_reduced_dimension %d must satisfy 1 <= R <= N (N=%d)",
			raster.ErrInvalidInput, c.DCTReducedDimension, c.DCTDimension)
	}
	if c.DCTReducedDimension*c.DCTReducedDimension > 64 {
		return fmt.Errorf("%w: dct_reduced_dimension %d gives R*R=%d > 64",
			raster.ErrInvalidInput, c.DCTReducedDimension, c.DCTReducedDimension*c.DCTReducedDimension)
	}
	if c.AllowedDistance > 64 {
		return fmt.Errorf("%w: allowed_distance %d must be <= 64", raster.ErrInvalidInput, c.AllowedDistance)
	}
	return nil
}
