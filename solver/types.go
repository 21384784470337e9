// Package solver: variant tag, callback slots and the Solver contract.
// This file intentionally contains ONLY the capability types; the
// status taxonomy lives in status.go per the global conventions.
package solver

import "github.com/katalvlaran/bandprec/nvec"

// Type tags the form of the nonlinear system a solver targets.
type Type int

const (
	// RootFind solves F(y) = 0.
	RootFind Type = iota

	// Stationary solves G(y) = y (fixed-point form).
	Stationary
)

// String returns the symbolic name of t.
func (t Type) String() string {
	if t == RootFind {
		return "root-finding"
	}

	return "stationary"
}

// SysFn evaluates the nonlinear system at y into f: the residual
// F(y) for root-finding solvers, the fixed-point map G(y) for
// stationary solvers. Return StatusSuccess, a positive status for a
// recoverable evaluation failure (e.g. y left the feasible domain) or
// a negative status for a fatal one.
type SysFn func(y, f nvec.Vector) Status

// LSetupFn rebuilds any cached linear-system state (typically a
// preconditioner) at the current iterate y with residual f. Positive
// return values are recoverable (the step will be retried), negative
// ones abort the solve.
type LSetupFn func(y, f nvec.Vector) Status

// LSolveFn solves the cached linear system with right-hand side b in
// place (b holds the correction on return), at iterate y. Called once
// per inner linear iteration.
type LSolveFn func(y, b nvec.Vector) Status

// ConvTestFn judges convergence after iteration iter given the
// weighted-RMS norm delnrm of the last correction and the target
// tolerance tol. Return StatusSuccess when converged, StatusContinue
// to keep iterating, or any other status to stop with that code.
type ConvTestFn func(iter int, delnrm, tol float64) Status

// Solver is the capability contract every nonlinear solver satisfies.
//
// Invariant: every operation a caller actually invokes must behave;
// optional operations an implementation does not support are no-ops
// returning StatusSuccess. Lifecycle: construct once per problem,
// Init once per distinct template vector shape, Free releases all
// owned state.
type Solver interface {
	// Type returns the variant tag (RootFind or Stationary).
	Type() Type

	// Init sizes internal workspace from the template vector tmpl.
	Init(tmpl nvec.Vector) Status

	// Setup rebuilds cached state ahead of a Solve at iterate y with
	// current residual f; may trigger the linear-setup slot.
	Setup(y, f nvec.Vector) Status

	// Solve iterates a correction from initial guess y0 until the
	// weighted-RMS norm (weights w) of the increment falls below tol,
	// writing the final correction into ycor. callLSetup forces a
	// fresh linear setup before the first iteration.
	Solve(y0, ycor, w nvec.Vector, tol float64, callLSetup bool) Status

	// Free releases all state owned by the solver.
	Free()

	// SetSysFn wires the system-evaluation callback (required).
	SetSysFn(fn SysFn) Status
	// SetLSetupFn wires the linear-setup callback (optional; nil clears).
	SetLSetupFn(fn LSetupFn) Status
	// SetLSolveFn wires the linear-solve callback (optional; nil clears).
	SetLSolveFn(fn LSolveFn) Status
	// SetConvTestFn overrides the convergence test (optional; nil
	// restores the implementation default).
	SetConvTestFn(fn ConvTestFn) Status

	// SetMaxIters caps the iterations per Solve call.
	SetMaxIters(n int) Status
	// NumIters returns the cumulative iteration count across Solve calls.
	NumIters() int64
}
