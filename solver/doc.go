// Package solver defines the generic nonlinear-solver capability
// contract: the interface any solver implementation satisfies, the
// callback slots an owning integrator wires into it, and the canonical
// status taxonomy shared by every implementation.
//
// 🚀 What is the contract?
//
//	Iterative nonlinear solvers handle systems in root-finding
//	(F(y) = 0) or stationary (G(y) = y) form.  A caller constructs a
//	concrete solver (e.g. newton.New), wires the system-evaluation,
//	linear-setup and linear-solve callbacks, then drives Init / Setup /
//	Solve.  Every operation reports a Status: zero on success, positive
//	for recoverable conditions (the caller may retry with adjusted
//	inputs), negative for unrecoverable failures (abort the attempt).
//
// ✨ Key pieces:
//   - Type       — RootFind vs Stationary variant tag
//   - Status     — one canonical, non-overlapping return-code set
//   - SysFn / LSetupFn / LSolveFn / ConvTestFn — callback slots
//   - Solver     — the capability interface itself
//
// ⚙️ Usage:
//
//	nls := newton.New()
//	_ = nls.SetSysFn(mySys)
//	_ = nls.SetLSolveFn(prec.LSolveFn())
//	if st := nls.Init(tmpl); st != solver.StatusSuccess { ... }
//	st := nls.Solve(y0, ycor, weights, tol, true)
//	if st.Recoverable() { /* shrink the step and retry */ }
//
// Concrete solvers are independent types satisfying Solver, selected at
// construction — no operation tables, no inheritance.
package solver
