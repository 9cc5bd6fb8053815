// Package bits reduces a DCT coefficient matrix to a bit grid and packs
// that grid into a 64-bit hash, then compares hashes by Hamming distance.
package bits

import (
	"fmt"
	"math/bits"

	"github.com/AnyUserName/imgphash/internal/dct"
)

// ErrHashOversize is returned by Pack when the bit matrix has more than
// 64 cells.
var ErrHashOversize = fmt.Errorf("bits: matrix has more than 64 cells")

// Matrix is an R×R grid of 0/1 values, row-major.
type Matrix struct {
	r    int
	bits []bool
}

// R returns the matrix dimension.
func (m *Matrix) R() int { return m.r }

// At returns the bit at (row i, col j).
func (m *Matrix) At(i, j int) bool { return m.bits[i*m.r+j] }

// ReduceAndBinarize keeps the top-left r×r sub-block of c, zeros the DC
// term, computes the mean over all r*r entries (including the zeroed
// DC), and emits a 1 where the coefficient is >= that mean.
func ReduceAndBinarize(c *dct.Coefficients, r int) *Matrix {
	sub := make([]float64, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			sub[i*r+j] = c.At(i, j)
		}
	}
	sub[0] = 0 // DC-exclusion (spec.md §4.6)

	var sum float64
	for _, v := range sub {
		sum += v
	}
	mean := sum / float64(r*r)

	out := &Matrix{r: r, bits: make([]bool, r*r)}
	for i, v := range sub {
		out.bits[i] = v >= mean
	}
	return out
}

// Pack packs the bit matrix into a uint64 in column-major scan order:
// bit 0 of the result corresponds to the first visited cell, (row 0, col
// 0); the scan proceeds down each column before moving to the next.
// Fails with ErrHashOversize when the matrix has more than 64 cells.
func Pack(m *Matrix) (uint64, error) {
	r := m.r
	if r*r > 64 {
		return 0, fmt.Errorf("%w: %dx%d matrix", ErrHashOversize, r, r)
	}

	var hash uint64
	bitIdx := 0
	for j := 0; j < r; j++ {
		for i := 0; i < r; i++ {
			if m.At(i, j) {
				hash |= 1 << uint(bitIdx)
			}
			bitIdx++
		}
	}
	return hash, nil
}

// Distance returns the Hamming distance between two hashes: the
// population count of their XOR.
func Distance(h1, h2 uint64) uint8 {
	return uint8(bits.OnesCount64(h1 ^ h2))
}
