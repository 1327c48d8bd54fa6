// Package grid provides the N-dimensional likelihood grid used by the
// contour engine.
//
// A Grid is a dense, C-ordered (last axis fastest, the NumPy default) buffer
// of non-negative finite weights, one axis per free parameter. The package
// offers:
//
//   - safe accessors (At/Set return errors instead of panicking);
//   - whole-grid statistics (Sum, Max, ArgMax) backed by gonum/floats;
//   - the reductions the contour engine is built from: SumAxis
//     (marginalisation over one axis), SumAllBut (marginal of one axis),
//     SliceAxis (hyperplane at a fixed index) and Normalized.
//
// Every reduction returns a new Grid; the receiver is never mutated, so a
// single loaded likelihood can be reduced many times (also concurrently).
//
// Numeric policy: by default NaN, ±Inf and negative weights are rejected on
// ingestion and Set. WithNoValidation relaxes the check for callers that
// sanitise data themselves.
package grid
