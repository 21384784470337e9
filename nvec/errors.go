package nvec

import "errors"

var (
	// ErrBadLength indicates a requested vector length <= 0.
	ErrBadLength = errors.New("nvec: length must be > 0")
	// ErrDimensionMismatch indicates operands of differing lengths.
	ErrDimensionMismatch = errors.New("nvec: dimension mismatch")
	// ErrNilVector indicates a nil Vector operand.
	ErrNilVector = errors.New("nvec: nil vector")
	// ErrNoRaw indicates an operand backend without the Raw capability
	// was mixed into an operation that needs direct storage access.
	ErrNoRaw = errors.New("nvec: operand does not expose raw storage")
)
