// Package band: storage layout and validated accessors.
//
// Purpose:
//   - Provide the column-major band buffer with the explicit index
//     formula j*ldim + (i-j) + smu.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking, and never touch out-of-band cells.
//   - Keep algorithmic determinism (fixed loop orders, no hidden state).
package band

// Matrix is an n×n banded matrix with mu retained super-diagonals and
// ml retained sub-diagonals, stored column-major with smu = min(n-1,
// mu+ml) super-diagonals of factorization fill space.
//
// Only positions with j-mu <= i <= j+ml are externally addressable;
// everything else is implicitly zero.
type Matrix struct {
	n        int       // logical dimension
	mu       int       // retained super half-bandwidth
	ml       int       // retained sub half-bandwidth
	smu      int       // storage super half-bandwidth (fill room)
	ldim     int       // column stride: smu + ml + 1
	data     []float64 // column-major band buffer, len n*ldim
	factored bool      // set by a successful Factor, cleared by Zero/Set
}

// New allocates a zero banded matrix of dimension n with retained
// half-bandwidths mu (upper) and ml (lower).
// Returns ErrBadShape when n <= 0 and ErrBadBandwidth when mu or ml
// falls outside [0, n).
// Complexity: O(n*(mu+ml)) zero-init.
func New(n, mu, ml int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if mu < 0 || mu >= n || ml < 0 || ml >= n {
		return nil, ErrBadBandwidth
	}

	smu := mu + ml // partial pivoting fills up to mu+ml super-diagonals
	if smu > n-1 {
		smu = n - 1
	}
	ldim := smu + ml + 1

	return &Matrix{
		n:    n,
		mu:   mu,
		ml:   ml,
		smu:  smu,
		ldim: ldim,
		data: make([]float64, n*ldim),
	}, nil
}

// Size returns the logical dimension n.
func (m *Matrix) Size() int { return m.n }

// Bandwidths returns the retained half-bandwidths and the storage
// super half-bandwidth (mu, ml, smu).
func (m *Matrix) Bandwidths() (mu, ml, smu int) { return m.mu, m.ml, m.smu }

// Storage returns the total number of stored float64 cells,
// n*(smu+ml+1); used for workspace accounting.
func (m *Matrix) Storage() int { return len(m.data) }

// inBand reports whether (i, j) lies inside the retained band.
func (m *Matrix) inBand(i, j int) bool {
	return i >= j-m.mu && i <= j+m.ml
}

// index maps (i, j) to its flat position. Callers must have validated
// the coordinates first.
func (m *Matrix) index(i, j int) int {
	return j*m.ldim + i - j + m.smu
}

// At retrieves A(i, j). In-band positions return their stored value;
// valid indices outside the band return 0 (the implicit value).
// Returns ErrOutOfRange for indices outside [0, n).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}
	if !m.inBand(i, j) {
		return 0, nil
	}

	return m.data[m.index(i, j)], nil
}

// Set assigns A(i, j) = v.
// Returns ErrOutOfRange for indices outside [0, n) and ErrOutOfBand for
// positions outside the retained band — those cells are never written.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}
	if !m.inBand(i, j) {
		return ErrOutOfBand
	}
	m.data[m.index(i, j)] = v
	m.factored = false

	return nil
}

// Col returns the storage slice of column j (length smu+ml+1, diagonal
// at offset smu). Hot loops index it via ColIndex. The caller must keep
// writes inside the retained band.
func (m *Matrix) Col(j int) []float64 {
	return m.data[j*m.ldim : (j+1)*m.ldim]
}

// ColIndex maps row i to its offset inside Col(j).
func (m *Matrix) ColIndex(i, j int) int { return i - j + m.smu }

// Zero clears every stored cell (including fill space) and drops any
// previous factorization.
// Complexity: O(n*(smu+ml)).
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
	m.factored = false
}

// Clone returns a deep, independent copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := *m
	out.data = make([]float64, len(m.data))
	copy(out.data, m.data)

	return &out
}
