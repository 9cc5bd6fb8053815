// Package dct computes the 2-D Discrete Cosine Transform (type II) used
// to extract an image's low-frequency content: a BasisCache of cosine
// products for a chosen square dimension N, and a Project step that sums
// a single-channel N×N image against that basis.
package dct

import "math"

// BasisCache holds the full set of N×N cosine-product basis matrices for
// dimension N: BasisCache[k][l] is itself an N×N matrix over (m, n). It
// is built once per comparison and is read-only thereafter, so it may be
// shared freely between the two images being hashed.
type BasisCache struct {
	n      int
	values []float64 // flat [k][l][m][n], row-major in that nesting order
}

// NewBasisCache computes the basis for dimension n:
//
//	B[k,l][m,n] = cos(pi*(2m+1)*k/(2N)) * cos(pi*(2n+1)*l/(2N))
//
// Cost is O(N^4) floats, as documented in spec.md §4.4.
func NewBasisCache(n int) *BasisCache {
	bc := &BasisCache{n: n, values: make([]float64, n*n*n*n)}

	// Precompute the two independent 1-D cosine families; the basis is
	// their outer product, computed once per (k,m) / (l,n) pair and reused
	// across the other index.
	cos := make([][]float64, n) // cos[k][m] = cos(pi*(2m+1)*k/(2N))
	for k := 0; k < n; k++ {
		cos[k] = make([]float64, n)
		for m := 0; m < n; m++ {
			cos[k][m] = math.Cos(math.Pi * float64(2*m+1) * float64(k) / float64(2*n))
		}
	}

	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			base := ((k*n)+l)*n*n
			for m := 0; m < n; m++ {
				rowBase := base + m*n
				cm := cos[k][m]
				for nn := 0; nn < n; nn++ {
					bc.values[rowBase+nn] = cm * cos[l][nn]
				}
			}
		}
	}

	return bc
}

// N returns the basis dimension.
func (bc *BasisCache) N() int { return bc.n }

// At returns B[k,l][m,n].
func (bc *BasisCache) At(k, l, m, n int) float64 {
	return bc.values[(((k*bc.n)+l)*bc.n+m)*bc.n+n]
}

// row returns the contiguous m,n plane for a fixed (k,l), for fast
// sequential access inside Project.
func (bc *BasisCache) row(k, l int) []float64 {
	n := bc.n
	start := ((k*n)+l) * n * n
	return bc.values[start : start+n*n]
}
