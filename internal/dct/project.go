package dct

import (
	"fmt"
	"math"

	"github.com/AnyUserName/imgphash/internal/raster"
)

// invSqrt2 is alpha(0) in the orthonormal DCT-II normalization.
var invSqrt2 = 1 / math.Sqrt2

// Coefficients is an N×N matrix of DCT-II coefficients, row-major.
type Coefficients struct {
	n    int
	vals []float64
}

// NewCoefficients builds a Coefficients matrix directly from a row-major
// slice of values, for tests and for callers that already have DCT
// coefficients from elsewhere.
func NewCoefficients(n int, vals []float64) *Coefficients {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	return &Coefficients{n: n, vals: cp}
}

// N returns the coefficient matrix dimension.
func (c *Coefficients) N() int { return c.n }

// At returns C[k,l].
func (c *Coefficients) At(k, l int) float64 { return c.vals[k*c.n+l] }

func (c *Coefficients) set(k, l int, v float64) { c.vals[k*c.n+l] = v }

// Project computes the orthonormal 2-D DCT-II of a single-channel N×N
// image against the cached basis:
//
//	C[k,l] = (1/4) * alpha(k) * alpha(l) * sum_{m,n} pixel(m,n) * B[k,l][m,n]
//	alpha(0) = 1/sqrt(2), alpha(i>0) = 1
//
// img must be single-channel and exactly N×N where N = basis.N().
func Project(img *raster.Image, basis *BasisCache) (*Coefficients, error) {
	n := basis.N()
	if img.ChannelsPerPixel() != 1 {
		return nil, fmt.Errorf("%w: projector requires a single-channel image, got %d channels",
			raster.ErrInvalidInput, img.ChannelsPerPixel())
	}
	if img.Width() != n || img.Height() != n {
		return nil, fmt.Errorf("%w: projector requires a %dx%d image, got %dx%d",
			raster.ErrInvalidInput, n, n, img.Width(), img.Height())
	}

	pixels := make([]float64, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pixels[y*n+x] = float64(img.Pixel(x, y)[0])
		}
	}

	out := &Coefficients{n: n, vals: make([]float64, n*n)}
	for k := 0; k < n; k++ {
		alphaK := alpha(k)
		for l := 0; l < n; l++ {
			alphaL := alpha(l)
			row := basis.row(k, l)

			var sum float64
			for m := 0; m < n; m++ {
				rowOff := m * n
				pixOff := m * n
				for nn := 0; nn < n; nn++ {
					sum += pixels[pixOff+nn] * row[rowOff+nn]
				}
			}

			out.set(k, l, 0.25*alphaK*alphaL*sum)
		}
	}

	return out, nil
}

func alpha(i int) float64 {
	if i == 0 {
		return invSqrt2
	}
	return 1
}
