package band

import "errors"

var (
	// ErrBadShape indicates a requested dimension n <= 0.
	ErrBadShape = errors.New("band: dimension must be > 0")
	// ErrBadBandwidth indicates a half-bandwidth outside [0, n).
	ErrBadBandwidth = errors.New("band: half-bandwidth out of range")
	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("band: index out of range")
	// ErrOutOfBand indicates an access outside the retained band
	// [j-mu, j+ml] of column j. Out-of-band positions are implicitly
	// zero and must never be written.
	ErrOutOfBand = errors.New("band: position outside retained band")
	// ErrZeroPivot indicates elimination met an exactly zero pivot;
	// the accompanying row index (1-based) identifies where.
	ErrZeroPivot = errors.New("band: zero pivot encountered")
	// ErrDimensionMismatch indicates a pivot or right-hand-side slice
	// whose length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("band: dimension mismatch")
	// ErrNotFactored indicates Backsolve was called before a
	// successful Factor on this matrix.
	ErrNotFactored = errors.New("band: matrix is not factored")
)
