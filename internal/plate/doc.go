// Package plate provides the 2D temperature grid underlying the
// hotplate simulation.
//
// A [Plate] carries explicit row/column dimensions rather than a
// compile-time size, so solvers and I/O routines work on any geometry:
//
//	p, _ := plate.NewWithBoundary(10, 10, 100.0)
//	v := p.At(1, 1)
//
// Boundary cells (the outer border) are seeded once, by
// [Plate.ApplyBoundary] or by loading from a file, and are never
// written by the relaxation step in package relax.
package plate
