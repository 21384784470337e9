// Package bbd: user-supplied callback contracts.
// This file intentionally contains ONLY the callback types; state and
// options live in bbd.go and options.go per the global conventions.
package bbd

import (
	"github.com/katalvlaran/bandprec/nvec"
	"github.com/katalvlaran/bandprec/solver"
)

// LocalFn is the user's local approximate residual function Gloc: a
// pure mapping from the local slice of the iterate u (with halo data
// already exchanged by the communication function) to the local
// residual g. It stands in for the true, possibly expensive, nonlinear
// residual and is used only to approximate the Jacobian.
//
// Return solver.StatusSuccess on success, a positive status for a
// recoverable evaluation failure and a negative status for a fatal
// one; the preconditioner propagates both unmodified in kind.
type LocalFn func(u, g nvec.Vector) solver.Status

// CommFn performs all inter-process communication the subsequent
// LocalFn evaluations need (halo exchange on the current iterate u).
// It is invoked exactly once per Setup, before any local evaluation
// reads neighbor-owned data. A nil CommFn means Gloc needs no
// neighbor data and the step is skipped.
type CommFn func(u nvec.Vector) solver.Status
