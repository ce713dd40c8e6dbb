package relax

import (
	"context"
	"testing"

	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverRun_Converges(t *testing.T) {
	p, err := plate.NewWithBoundary(10, 10, 100.0)
	require.NoError(t, err)

	result, err := NewSolver().Run(context.Background(), p, DefaultConfig())
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Less(t, result.Iterations, DefaultMaxIterations, "must not hit the cap")
	assert.GreaterOrEqual(t, result.Iterations, 2)
	assert.Len(t, result.Deltas, result.Iterations)
	assert.True(t, result.Plate.IsValid())

	// final sweep's delta is within the threshold
	assert.LessOrEqual(t, result.Deltas[len(result.Deltas)-1], DefaultEpsilon)

	// boundary invariant holds after the whole solve
	for col := 1; col < 9; col++ {
		assert.Equal(t, 100.0, result.Plate.At(0, col))
		assert.Equal(t, 100.0, result.Plate.At(9, col))
	}
	assert.Equal(t, 0.0, result.Plate.At(0, 0))
	assert.Equal(t, 0.0, result.Plate.At(9, 9))
	assert.Equal(t, 0.0, result.Plate.At(5, 0))
}

func TestSolverRun_SteadyStateShape(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	result, err := NewSolver().Run(context.Background(), p, DefaultConfig())
	require.NoError(t, err)
	final := result.Plate

	// temperatures drop monotonically from the heated boundary toward
	// the center rows
	assert.Greater(t, final.At(1, 5), final.At(3, 5))
	assert.Greater(t, final.At(3, 5), final.At(5, 5))
	assert.Greater(t, final.At(8, 5), final.At(6, 5))

	// everything stays within the boundary range
	for row := 1; row < 9; row++ {
		for col := 1; col < 9; col++ {
			v := final.At(row, col)
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 100.0)
		}
	}

	// left-right and top-bottom symmetry of the configuration survives
	for row := 1; row < 9; row++ {
		for col := 1; col < 9; col++ {
			assert.InDelta(t, final.At(row, col), final.At(row, 9-col), 1e-9)
			assert.InDelta(t, final.At(row, col), final.At(9-row, col), 1e-9)
		}
	}
}

func TestSolverRun_FirstIterationUnconditional(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	// Even with an absurdly generous threshold the solver sweeps once
	// unconditionally and can only report convergence from iteration 2.
	cfg := Config{Epsilon: 1e9, MaxIterations: DefaultMaxIterations}
	result, err := NewSolver().Run(context.Background(), p, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Iterations)
	assert.True(t, result.Converged)
}

func TestSolverRun_IterationCap(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	cfg := Config{Epsilon: 1e-12, MaxIterations: 5}
	result, err := NewSolver().Run(context.Background(), p, cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Iterations)
	assert.False(t, result.Converged)
}

func TestSolverRun_InputNotMutated(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)
	before := p.Clone()

	_, err := NewSolver().Run(context.Background(), p, DefaultConfig())
	require.NoError(t, err)

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			assert.Equal(t, before.At(row, col), p.At(row, col))
		}
	}
}

func TestSolverRun_InvalidConfig(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero epsilon", Config{Epsilon: 0, MaxIterations: 10}},
		{"negative epsilon", Config{Epsilon: -0.1, MaxIterations: 10}},
		{"zero cap", Config{Epsilon: 0.1, MaxIterations: 0}},
		{"negative cap", Config{Epsilon: 0.1, MaxIterations: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSolver().Run(context.Background(), p, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSolverRun_ContextCanceled(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver().Run(ctx, p, DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolverRun_ObserverSeesEverySweep(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	var iterations []int
	s := NewSolver()
	s.AddObserver(ObserverFunc(func(plt *plate.Plate, iteration int, delta float64) {
		iterations = append(iterations, iteration)
		assert.NotNil(t, plt)
		assert.GreaterOrEqual(t, delta, 0.0)
	}))

	result, err := s.Run(context.Background(), p, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, iterations, result.Iterations)
	for i, it := range iterations {
		assert.Equal(t, i+1, it)
	}
}

type lastIterMetric struct {
	last int
}

func (m *lastIterMetric) Name() string { return "last_iter" }

func (m *lastIterMetric) Observe(p *plate.Plate, iteration int) { m.last = iteration }

func (m *lastIterMetric) Value() float64 { return float64(m.last) }

func (m *lastIterMetric) Reset() { m.last = 0 }

func TestSolverRun_MetricsCollected(t *testing.T) {
	p, _ := plate.NewWithBoundary(10, 10, 100.0)

	s := NewSolver()
	s.AddMetric(&lastIterMetric{})

	result, err := s.Run(context.Background(), p, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, float64(result.Iterations), result.Metrics["last_iter"])
}

func TestRunSweeps_MatchesManualApplication(t *testing.T) {
	p, _ := plate.New(6, 6)
	// arbitrary loaded values, asymmetric on purpose
	v := 0.0
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			p.Set(row, col, v)
			v += 1.25
		}
	}

	result, err := NewSolver().RunSweeps(context.Background(), p, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)
	assert.False(t, result.Converged)

	// manual: sweep into a scratch buffer, transfer back, three times
	cur := p.Clone()
	next := p.Clone()
	for i := 0; i < 3; i++ {
		require.NoError(t, Sweep(cur, next))
		require.NoError(t, cur.CopyFrom(next))
	}

	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			assert.InDelta(t, cur.At(row, col), result.Plate.At(row, col), 1e-12,
				"cell (%d,%d)", row, col)
		}
	}
}

func TestRunSweeps_ZeroSweeps(t *testing.T) {
	p, _ := plate.NewWithBoundary(5, 5, 100.0)

	result, err := NewSolver().RunSweeps(context.Background(), p, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Iterations)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			assert.Equal(t, p.At(row, col), result.Plate.At(row, col))
		}
	}
}
