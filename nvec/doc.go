// Package nvec defines the small vector surface the bandprec solvers
// consume: lengths, clones, elementwise arithmetic and weighted norms.
//
// 🚀 Why a vector interface?
//
//	The nonlinear solver and the preconditioner never care how a vector
//	stores its entries — only that a fixed set of elementwise operations
//	exists.  Any backend implementing Vector plugs in; backends that can
//	additionally expose their local storage as a contiguous []float64
//	implement Raw, which the band-block-diagonal preconditioner requires
//	(it perturbs and reads entries by index during Jacobian assembly).
//
// ✨ Key pieces:
//   - Vector   — capability interface: Len, Clone, CopyFrom, Scale,
//     LinearSum, AddConst, Prod, Div, WrmsNorm, MaxNorm
//   - Raw      — optional capability: Data() []float64 (contiguous storage)
//   - Dense    — the serial reference implementation (flat []float64)
//
// ⚙️ Usage:
//
//	u, _ := nvec.NewDense(100)         // zero vector of length 100
//	w := nvec.WrapDense(weights)       // no-copy wrap of an existing slice
//	_ = u.LinearSum(1, u, -0.5, w)     // u = u - 0.5*w
//	nrm, _ := u.WrmsNorm(w)            // weighted RMS norm
//
// All binary operations are length-checked and return
// ErrDimensionMismatch instead of panicking.
//
// Complexity: every operation is O(n) time, O(1) extra memory
// (Clone is O(n) memory).
package nvec
