// Package relax implements Jacobi-style iterative relaxation for
// steady-state heat diffusion.
//
// The core primitives are [Sweep], which averages each interior cell
// with its four orthogonal neighbors into a destination buffer, and
// [Changed], which reports whether two successive grids still differ by
// more than an epsilon threshold. [Solver] ties them together in a
// two-buffer ping-pong loop:
//
//	s := relax.NewSolver()
//	result, err := s.Run(ctx, p, relax.DefaultConfig())
//
// Solver instances are not safe for concurrent use; each solve owns its
// two buffers exclusively.
package relax
