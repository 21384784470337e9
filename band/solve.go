// Package band: in-place backsolve using the stored LU factors.
package band

// Backsolve solves A·x = b in place using the factors and pivot
// sequence produced by Factor: it applies the row permutation and the
// stored multipliers (forward elimination, L·y = P·b), then back
// substitution (U·x = y). On return b holds x.
//
// Returns ErrNotFactored when no successful Factor precedes the call
// and ErrDimensionMismatch on wrong slice lengths. Numeric semantics:
// plain float64 arithmetic, no iterative refinement.
//
// Complexity: O(n·(smu+ml)) time, O(1) extra memory.
func (m *Matrix) Backsolve(piv []int, b []float64) error {
	// Stage 1: validate sequencing and shapes.
	if !m.factored {
		return ErrNotFactored
	}
	if len(piv) != m.n || len(b) != m.n {
		return ErrDimensionMismatch
	}

	n, ml, smu, ldim := m.n, m.ml, m.smu, m.ldim

	// Stage 2: forward elimination, L·y = P·b.
	for k := 0; k < n-1; k++ {
		l := piv[k]
		mult := b[l]
		if l != k {
			b[l], b[k] = b[k], mult
		}
		colK := m.data[k*ldim : (k+1)*ldim]
		lastRowK := k + ml
		if lastRowK > n-1 {
			lastRowK = n - 1
		}
		for i := k + 1; i <= lastRowK; i++ {
			b[i] += mult * colK[i-k+smu]
		}
	}

	// Stage 3: back substitution, U·x = y.
	for k := n - 1; k >= 0; k-- {
		colK := m.data[k*ldim : (k+1)*ldim]
		firstRowK := k - smu
		if firstRowK < 0 {
			firstRowK = 0
		}
		b[k] /= colK[smu]
		mult := -b[k]
		for i := firstRowK; i < k; i++ {
			b[i] += mult * colK[i-k+smu]
		}
	}

	return nil
}
