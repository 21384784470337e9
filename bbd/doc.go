// Package bbd implements a band-block-diagonal preconditioner for
// Krylov-based linear solves inside Newton-type nonlinear solvers:
// one banded block per process, assembled by grouped finite
// differences of a user-supplied local residual function, factored
// once per solver setup and backsolved once per Krylov iteration.
//
// 🚀 Why band-block-diagonal?
//
//	Discretized differential/algebraic operators couple mostly nearby
//	unknowns, so within one process the true Jacobian is dominated by
//	a narrow band.  Approximating it by the banded part of each local
//	block — and ignoring cross-process coupling entirely — yields a
//	preconditioner that factors and solves with zero inter-process
//	communication, trading approximation accuracy for scalability.
//
// ✨ Key features:
//   - grouped difference quotients: 1 + min(mudq+mldq+1, n) local
//     residual evaluations per Setup, independent of problem size
//   - separate probe bandwidths (mudq/mldq) and retained storage
//     bandwidths (mu/ml) — probe wide, keep narrow
//   - recoverable zero-pivot reporting (1-based row index) up through
//     Setup, matching the owning solver's linear-setup convention
//   - ReInit reuses matrix/pivot/scratch storage across problems of
//     identical dimensions
//   - adapters wiring Setup/Solve into the solver.Solver callback slots
//
// ⚙️ Usage:
//
//	prec, err := bbd.New(nls, n, mudq, mldq, mu, ml, gloc,
//	  bbd.WithCommFn(gcomm), bbd.WithRelIncrement(0))
//	if err != nil { ... }
//	prec.BindScaling(uscale, fscale)
//	_ = nls.SetLSetupFn(prec.LSetupFn())
//	_ = nls.SetLSolveFn(prec.LSolveFn())
//
// Concurrency: one owner per Precond; Setup and Solve on the same
// state must never overlap (the owning solver's sequencing serializes
// them — no internal locking is provided).
//
// Complexity per Setup: 1+min(mudq+mldq+1, n) Gloc evaluations plus
// the banded factorization O(n·(mu+ml)·ml); per Solve: O(n·(mu+ml)).
package bbd
