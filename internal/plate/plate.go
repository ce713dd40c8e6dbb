package plate

import "math"

// Plate is a rows x cols temperature grid backed by a row-major slice.
// The outer border (row 0, row rows-1, column 0, column cols-1) holds
// fixed boundary values that relaxation never touches.
type Plate struct {
	rows, cols int
	cells      []float64
}

// New returns a zeroed plate. Both dimensions must be at least 3 so the
// grid has at least one interior cell.
func New(rows, cols int) (*Plate, error) {
	if rows < MinDim || cols < MinDim {
		return nil, ErrPlateTooSmall
	}
	return &Plate{
		rows:  rows,
		cols:  cols,
		cells: make([]float64, rows*cols),
	}, nil
}

// NewWithBoundary returns a plate with temp on the interior columns of
// the top and bottom rows, zero corners and zero interior cells.
func NewWithBoundary(rows, cols int, temp float64) (*Plate, error) {
	p, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	p.ApplyBoundary(temp)
	return p, nil
}

func (p *Plate) Rows() int { return p.rows }
func (p *Plate) Cols() int { return p.cols }

// At returns the cell at (row, col). Indices are not bounds-checked;
// callers iterate within p.Rows()/p.Cols().
func (p *Plate) At(row, col int) float64 { return p.cells[row*p.cols+col] }

// Set writes the cell at (row, col).
func (p *Plate) Set(row, col int, v float64) { p.cells[row*p.cols+col] = v }

// ApplyBoundary writes temp to the interior columns of the top and
// bottom rows. Corners, side columns and interior cells are untouched.
func (p *Plate) ApplyBoundary(temp float64) {
	last := p.rows - 1
	for col := 1; col < p.cols-1; col++ {
		p.Set(0, col, temp)
		p.Set(last, col, temp)
	}
}

// Clone returns a deep copy.
func (p *Plate) Clone() *Plate {
	c := &Plate{
		rows:  p.rows,
		cols:  p.cols,
		cells: make([]float64, len(p.cells)),
	}
	copy(c.cells, p.cells)
	return c
}

// CopyFrom overwrites every cell of p with the corresponding value from
// src, leaving src unmodified. Dimensions must match.
func (p *Plate) CopyFrom(src *Plate) error {
	if p.rows != src.rows || p.cols != src.cols {
		return ErrDimensionMismatch
	}
	copy(p.cells, src.cells)
	return nil
}

// SameSize reports whether other has identical dimensions.
func (p *Plate) SameSize(other *Plate) bool {
	return p.rows == other.rows && p.cols == other.cols
}

// IsValid reports whether the plate is free of NaN and Inf values.
func (p *Plate) IsValid() bool {
	for _, v := range p.cells {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MinMaxMean returns the minimum, maximum and mean over all cells.
func (p *Plate) MinMaxMean() (min, max, mean float64) {
	min = p.cells[0]
	max = p.cells[0]
	sum := 0.0
	for _, v := range p.cells {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(p.cells))
}

// MeanInterior returns the mean over interior cells only.
func (p *Plate) MeanInterior() float64 {
	sum := 0.0
	n := 0
	for row := 1; row < p.rows-1; row++ {
		for col := 1; col < p.cols-1; col++ {
			sum += p.At(row, col)
			n++
		}
	}
	return sum / float64(n)
}
