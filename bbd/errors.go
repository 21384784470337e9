package bbd

import "errors"

var (
	// ErrNilSolver indicates a nil owning solver handle at allocation.
	ErrNilSolver = errors.New("bbd: owning solver is nil")
	// ErrNilLocalFn indicates the local residual function was not supplied.
	ErrNilLocalFn = errors.New("bbd: local residual function is nil")
	// ErrBadLocalSize indicates a local problem size <= 0.
	ErrBadLocalSize = errors.New("bbd: local size must be > 0")
	// ErrBadBandwidth indicates a negative half-bandwidth parameter.
	ErrBadBandwidth = errors.New("bbd: half-bandwidth must be >= 0")
	// ErrBadIncrement indicates a negative relative increment factor.
	ErrBadIncrement = errors.New("bbd: relative increment must be >= 0")
	// ErrBadVector indicates an incompatible vector backend: one that
	// does not expose contiguous local storage (nvec.Raw).
	ErrBadVector = errors.New("bbd: vector backend lacks raw storage access")
	// ErrDimensionMismatch indicates a vector whose length differs from
	// the configured local size.
	ErrDimensionMismatch = errors.New("bbd: vector length differs from local size")
	// ErrNotAllocated indicates use of a freed or zero-value Precond.
	ErrNotAllocated = errors.New("bbd: preconditioner state not allocated")

	// ErrRecoverable marks failures the owning solver may retry after
	// adjusting the iterate or the step; match with errors.Is.
	ErrRecoverable = errors.New("bbd: recoverable failure")
	// ErrLocalFnFail indicates the user's local residual function
	// signalled a failure during Jacobian assembly.
	ErrLocalFnFail = errors.New("bbd: local residual function failed")
	// ErrCommFnFail indicates the user's communication function
	// signalled a failure.
	ErrCommFnFail = errors.New("bbd: communication function failed")
)
