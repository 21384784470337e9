// Package newton implements a full-Newton root-finding solver behind
// the generic solver.Solver capability contract.
//
// 🚀 What does "full" Newton mean?
//
//	The linear-setup slot (Jacobian / preconditioner refresh) runs
//	before EVERY iteration, not only when heuristics suspect stale
//	data.  Each iteration then evaluates the residual F(y), solves the
//	Newton system J·δ = -F(y) through the linear-solve slot, applies
//	y ← y + δ and tests convergence on the weighted-RMS norm of δ.
//
// ✨ Key features:
//   - solver.RootFind variant, selected at construction — no tables
//   - recoverable vs fatal status propagation from every callback
//   - pluggable convergence test (default: ‖δ‖_wrms ≤ tol)
//   - cumulative iteration and convergence-failure counters
//
// ⚙️ Usage:
//
//	nls := newton.New()
//	_ = nls.SetSysFn(sys)            // required
//	_ = nls.SetLSetupFn(prec.LSetupFn())
//	_ = nls.SetLSolveFn(prec.LSolveFn())
//	if st := nls.Init(tmpl); st != solver.StatusSuccess { ... }
//	st := nls.Solve(y0, y, w, 1e-8, true)
//
// Complexity per iteration: one system evaluation, one linear setup,
// one linear solve, O(n) vector work.
package newton
