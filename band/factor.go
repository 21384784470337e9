// Package band: in-place LU factorization with partial pivoting.
package band

import "math"

// Factor performs banded Gaussian elimination with partial pivoting in
// place, recording the pivot sequence in piv (len n). Row interchanges
// stay inside the band; fill lands in the smu-mu upper fill rows.
//
// On success it returns (0, nil) and the matrix holds L (unit lower,
// multipliers stored negated below the diagonal) and U (upper).
// A computed pivot of exactly zero at row r stops elimination and
// returns (r+1, ErrZeroPivot) — the 1-based index is the recoverable
// singularity signal the owning solver's linear-setup slot expects.
//
// Complexity: O(n·(mu+ml)·ml) time, O(1) extra memory.
func (m *Matrix) Factor(piv []int) (int, error) {
	// Stage 1: validate the pivot slice.
	if len(piv) != m.n {
		return 0, ErrDimensionMismatch
	}

	n, ml, smu, ldim := m.n, m.ml, m.smu, m.ldim

	// Stage 2: clear the fill rows above the retained band so stale
	// values from a previous factorization cannot leak into this one.
	if m.smu > m.mu {
		for j := 0; j < n; j++ {
			colJ := m.data[j*ldim : (j+1)*ldim]
			for k := smu - m.mu - 1; k >= 0; k-- {
				colJ[k] = 0
			}
		}
	}

	// Stage 3: eliminate column by column.
	for k := 0; k < n-1; k++ {
		colK := m.data[k*ldim : (k+1)*ldim]
		lastRowK := k + ml
		if lastRowK > n-1 {
			lastRowK = n - 1
		}

		// Select the pivot row l in rows k..lastRowK of column k.
		l := k
		max := math.Abs(colK[smu])
		for i := k + 1; i <= lastRowK; i++ {
			if a := math.Abs(colK[i-k+smu]); a > max {
				l, max = i, a
			}
		}
		piv[k] = l

		if colK[l-k+smu] == 0 {
			return k + 1, ErrZeroPivot
		}

		// Swap A(l,k) and A(k,k) so the pivot sits on the diagonal.
		swap := l != k
		if swap {
			colK[l-k+smu], colK[smu] = colK[smu], colK[l-k+smu]
		}

		// Store the negated multipliers -A(i,k)/A(k,k) below the
		// diagonal of column k.
		mult := -1 / colK[smu]
		for i := k + 1; i <= lastRowK; i++ {
			colK[i-k+smu] *= mult
		}

		// Update the trailing columns k+1..min(k+smu, n-1), one column
		// at a time: row_i += A(i,k)-multiplier * row_k.
		lastColK := k + smu
		if lastColK > n-1 {
			lastColK = n - 1
		}
		for j := k + 1; j <= lastColK; j++ {
			colJ := m.data[j*ldim : (j+1)*ldim]
			sl := l - j + smu // storage offset of A(l,j)
			sk := k - j + smu // storage offset of A(k,j)
			akj := colJ[sl]
			if swap {
				colJ[sl] = colJ[sk]
				colJ[sk] = akj
			}
			if akj == 0 {
				continue
			}
			for i := k + 1; i <= lastRowK; i++ {
				colJ[i-j+smu] += akj * colK[i-k+smu]
			}
		}
	}

	// Stage 4: the last pivot row is fixed; reject a zero trailing pivot.
	piv[n-1] = n - 1
	if m.data[(n-1)*ldim+smu] == 0 {
		return n, ErrZeroPivot
	}
	m.factored = true

	return 0, nil
}
