package relax

import (
	"context"

	"github.com/commanderjcc/hotplate/internal/plate"
)

// Solver drives repeated relaxation sweeps over a pair of plate
// buffers. Buffers are promoted by swapping handles rather than deep
// copying; the observable results are identical to a copy-based
// transfer.
type Solver struct {
	observers []Observer
	metrics   []Metric
}

func NewSolver() *Solver {
	return &Solver{
		observers: make([]Observer, 0),
		metrics:   make([]Metric, 0),
	}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }

// Run relaxes p until steady state or until cfg.MaxIterations sweeps
// have been performed. The first sweep is unconditional; from the
// second sweep on, the solver stops as soon as no interior cell changed
// by more than cfg.Epsilon. The input plate is not mutated.
func (s *Solver) Run(ctx context.Context, p *plate.Plate, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	cur := p.Clone()
	next := p.Clone() // seeds next's boundary; Sweep never writes it

	result := &Result{
		Deltas:  make([]float64, 0, 64),
		Metrics: make(map[string]float64),
	}

	for result.Iterations < cfg.MaxIterations {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := Sweep(cur, next); err != nil {
			return nil, err
		}
		result.Iterations++
		delta := MaxDelta(cur, next)
		result.Deltas = append(result.Deltas, delta)

		cur, next = next, cur

		for _, m := range s.metrics {
			m.Observe(cur, result.Iterations)
		}
		for _, o := range s.observers {
			o.OnSweep(cur, result.Iterations, delta)
		}

		// Iteration 1 always runs to completion before convergence is
		// considered.
		if result.Iterations > 1 && delta <= cfg.Epsilon {
			result.Converged = true
			break
		}
	}

	result.Plate = cur
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// RunSweeps performs exactly n relaxation+transfer cycles with no
// convergence check and no cap, as used for externally loaded plates.
func (s *Solver) RunSweeps(ctx context.Context, p *plate.Plate, n int) (*Result, error) {
	for _, m := range s.metrics {
		m.Reset()
	}

	cur := p.Clone()
	next := p.Clone()

	result := &Result{
		Deltas:  make([]float64, 0, n),
		Metrics: make(map[string]float64),
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := Sweep(cur, next); err != nil {
			return nil, err
		}
		result.Iterations++
		delta := MaxDelta(cur, next)
		result.Deltas = append(result.Deltas, delta)

		cur, next = next, cur

		for _, m := range s.metrics {
			m.Observe(cur, result.Iterations)
		}
		for _, o := range s.observers {
			o.OnSweep(cur, result.Iterations, delta)
		}
	}

	result.Plate = cur
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
