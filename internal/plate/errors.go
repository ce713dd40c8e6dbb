package plate

import "errors"

// MinDim is the smallest legal plate dimension; anything smaller has no
// interior cells to relax.
const MinDim = 3

var (
	// ErrPlateTooSmall indicates a requested dimension below MinDim.
	ErrPlateTooSmall = errors.New("plate: dimensions must be at least 3x3")

	// ErrDimensionMismatch indicates two plates of different sizes were
	// passed to an operation that requires identical dimensions.
	ErrDimensionMismatch = errors.New("plate: dimension mismatch")
)
