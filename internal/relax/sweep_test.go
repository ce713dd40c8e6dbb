package relax

import (
	"testing"

	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_OneIteration(t *testing.T) {
	src, err := plate.NewWithBoundary(10, 10, 100.0)
	require.NoError(t, err)
	dst := src.Clone()

	require.NoError(t, Sweep(src, dst))

	// neighbors of (1,1): 100 above, zeros left/right/below
	assert.InDelta(t, 25.0, dst.At(1, 1), 1e-12)
	assert.InDelta(t, 25.0, dst.At(1, 8), 1e-12)
	assert.InDelta(t, 25.0, dst.At(8, 1), 1e-12)
	assert.InDelta(t, 0.0, dst.At(5, 5), 1e-12)

	// interior boundary-row neighbors only
	assert.InDelta(t, 25.0, dst.At(1, 4), 1e-12)

	// boundary untouched
	assert.Equal(t, 100.0, dst.At(0, 1))
	assert.Equal(t, 100.0, dst.At(9, 5))
	assert.Equal(t, 0.0, dst.At(0, 0))
	assert.Equal(t, 0.0, dst.At(5, 0))
}

func TestSweep_IdempotentOnEquilibrium(t *testing.T) {
	// A field linear in the row index is its own neighbor average.
	src, _ := plate.New(8, 8)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			src.Set(row, col, float64(row))
		}
	}
	dst := src.Clone()

	require.NoError(t, Sweep(src, dst))

	for row := 1; row < 7; row++ {
		for col := 1; col < 7; col++ {
			assert.InDelta(t, src.At(row, col), dst.At(row, col), 1e-12,
				"equilibrated cell (%d,%d) changed", row, col)
		}
	}
}

func TestSweep_DimensionMismatch(t *testing.T) {
	a, _ := plate.New(5, 5)
	b, _ := plate.New(6, 5)
	assert.ErrorIs(t, Sweep(a, b), plate.ErrDimensionMismatch)
}

func TestChanged_ThresholdInclusive(t *testing.T) {
	const eps = 0.1

	base, _ := plate.New(5, 5)

	tests := []struct {
		name  string
		delta float64
		want  bool
	}{
		{"no change", 0.0, false},
		{"below threshold", eps / 2, false},
		{"exactly threshold", eps, false},
		{"just above threshold", eps + 1e-9, true},
		{"well above threshold", 5.0, true},
		{"negative change above threshold", -(eps + 1e-9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base.Clone()
			next.Set(2, 2, base.At(2, 2)+tt.delta)

			changed, err := Changed(base, next, eps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
		})
	}
}

func TestChanged_IgnoresBoundary(t *testing.T) {
	base, _ := plate.New(5, 5)
	next := base.Clone()
	next.Set(0, 2, 1000.0)
	next.Set(2, 0, 1000.0)
	next.Set(4, 4, 1000.0)

	changed, err := Changed(base, next, 0.1)
	require.NoError(t, err)
	assert.False(t, changed, "boundary deltas must not count")
}

func TestChanged_DimensionMismatch(t *testing.T) {
	a, _ := plate.New(5, 5)
	b, _ := plate.New(5, 6)
	_, err := Changed(a, b, 0.1)
	assert.ErrorIs(t, err, plate.ErrDimensionMismatch)
}

func TestMaxDelta(t *testing.T) {
	a, _ := plate.New(5, 5)
	b := a.Clone()
	b.Set(1, 1, 0.3)
	b.Set(3, 3, -0.7)
	b.Set(0, 0, 99.0) // boundary, ignored

	assert.InDelta(t, 0.7, MaxDelta(a, b), 1e-12)
}

func BenchmarkSweep(b *testing.B) {
	src, _ := plate.NewWithBoundary(100, 100, 100.0)
	dst := src.Clone()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Sweep(src, dst); err != nil {
			b.Fatal(err)
		}
		src, dst = dst, src
	}
}
