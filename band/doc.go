// Package band implements a square banded matrix with in-place LU
// factorization (partial pivoting) and backsolve — the linear-algebra
// leaf under the band-block-diagonal preconditioner.
//
// 🚀 What is band storage?
//
//	An n×n matrix whose nonzeros live on the main diagonal, mu
//	super-diagonals and ml sub-diagonals needs only (mu+ml+1)·n cells.
//	Partial pivoting can push fill into up to mu+ml super-diagonals,
//	so the stored band is widened to smu = min(n-1, mu+ml) rows of
//	upper fill space.  Storage is column-major: column j occupies a
//	contiguous run of smu+ml+1 cells with the diagonal at offset smu,
//	i.e. A(i,j) lives at data[j*(smu+ml+1) + i - j + smu].
//
// ✨ Key features:
//   - validated At/Set: out-of-range indices and out-of-band positions
//     are rejected with sentinels, never written
//   - Factor: banded Gaussian elimination with partial pivoting
//     restricted to the band; a zero pivot at row r reports r+1
//     (1-based) and ErrZeroPivot — no internal regularization
//   - Backsolve: permutation + forward elimination + back substitution,
//     in place on the caller's slice
//
// ⚙️ Usage:
//
//	a, _ := band.New(n, mu, ml)
//	// ... fill via a.Set(i, j, v) ...
//	piv := make([]int, n)
//	if _, err := a.Factor(piv); err != nil {
//	  // errors.Is(err, band.ErrZeroPivot) → recoverable singularity
//	}
//	_ = a.Backsolve(piv, rhs) // rhs now holds the solution
//
// Complexity: Factor is O(n·(mu+ml)·ml) time; Backsolve is
// O(n·(mu+ml)) time; both O(1) extra memory.
package band
