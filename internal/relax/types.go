package relax

import (
	"fmt"

	"github.com/commanderjcc/hotplate/internal/plate"
)

const (
	// DefaultEpsilon is the per-cell change below which the plate is
	// considered steady.
	DefaultEpsilon = 0.1

	// DefaultMaxIterations guards against non-termination on
	// pathological inputs. Not expected to be hit in normal operation.
	DefaultMaxIterations = 999999
)

// Config holds the solver's convergence policy.
type Config struct {
	Epsilon       float64
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

func (c Config) validate() error {
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

// Result describes a finished solve.
type Result struct {
	// Plate is the final grid. The input plate is never mutated.
	Plate *plate.Plate

	// Iterations is the number of sweeps performed.
	Iterations int

	// Converged is true when the solver stopped because no interior
	// cell changed by more than epsilon, false when the iteration cap
	// cut it off or a fixed sweep count was requested.
	Converged bool

	// Deltas holds the maximum interior change of each sweep.
	Deltas []float64

	Metrics map[string]float64
}

// Observer is notified after every sweep with the freshly computed
// plate, the 1-based iteration count and the sweep's maximum delta.
type Observer interface {
	OnSweep(p *plate.Plate, iteration int, delta float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(p *plate.Plate, iteration int, delta float64)

func (f ObserverFunc) OnSweep(p *plate.Plate, iteration int, delta float64) { f(p, iteration, delta) }

// Metric accumulates a scalar observation over the course of a solve.
type Metric interface {
	Name() string
	Observe(p *plate.Plate, iteration int)
	Value() float64
	Reset()
}
