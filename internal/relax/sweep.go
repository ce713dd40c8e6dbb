package relax

import (
	"math"

	"github.com/commanderjcc/hotplate/internal/plate"
)

// Sweep computes one Jacobi relaxation pass: every interior cell of dst
// becomes the mean of src's four orthogonal neighbors. Boundary cells
// of dst are left untouched, so callers must seed them before the first
// sweep. Pure function of src; src and dst must not alias.
func Sweep(src, dst *plate.Plate) error {
	if !src.SameSize(dst) {
		return plate.ErrDimensionMismatch
	}
	for row := 1; row < src.Rows()-1; row++ {
		for col := 1; col < src.Cols()-1; col++ {
			sum := src.At(row-1, col) + src.At(row, col-1) + src.At(row, col+1) + src.At(row+1, col)
			dst.Set(row, col, sum/4)
		}
	}
	return nil
}

// Changed reports whether any interior cell differs between prev and
// next by more than epsilon. The scan is row-major and short-circuits
// on the first violation; a delta of exactly epsilon counts as
// unchanged. Boundary cells are ignored.
func Changed(prev, next *plate.Plate, epsilon float64) (bool, error) {
	if !prev.SameSize(next) {
		return false, plate.ErrDimensionMismatch
	}
	for row := 1; row < prev.Rows()-1; row++ {
		for col := 1; col < prev.Cols()-1; col++ {
			if math.Abs(next.At(row, col)-prev.At(row, col)) > epsilon {
				return true, nil
			}
		}
	}
	return false, nil
}

// MaxDelta returns the largest absolute interior change between two
// same-sized plates.
func MaxDelta(prev, next *plate.Plate) float64 {
	max := 0.0
	for row := 1; row < prev.Rows()-1; row++ {
		for col := 1; col < prev.Cols()-1; col++ {
			d := math.Abs(next.At(row, col) - prev.At(row, col))
			if d > max {
				max = d
			}
		}
	}
	return max
}
