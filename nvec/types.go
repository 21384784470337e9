// Package nvec: capability interfaces consumed by the solver packages.
// This file intentionally contains ONLY the interface contracts; the
// reference implementation lives in dense.go per the global conventions.
package nvec

// Vector is the elementwise-operation contract the nonlinear solver and
// the preconditioner require from a vector backend.
//
// Semantics follow the usual "destination receiver" convention: binary
// operations write their result into the receiver, which may alias
// either operand.
//
// Complexity notes: all methods are O(Len()) except Len (O(1)) and
// Clone (O(Len()) time and memory).
type Vector interface {
	// Len returns the number of locally stored entries.
	// Complexity: O(1).
	Len() int

	// Clone returns a deep, independent copy of the vector.
	Clone() Vector

	// CopyFrom overwrites the receiver with src.
	// Returns ErrDimensionMismatch on differing lengths.
	CopyFrom(src Vector) error

	// Scale multiplies every entry of the receiver by c in place.
	Scale(c float64)

	// LinearSum sets the receiver to a*x + b*y.
	// The receiver may alias x and/or y.
	// Returns ErrDimensionMismatch on differing lengths.
	LinearSum(a float64, x Vector, b float64, y Vector) error

	// AddConst sets the receiver to x + c (entrywise).
	AddConst(c float64, x Vector) error

	// Prod sets the receiver to x.*y (entrywise product).
	Prod(x, y Vector) error

	// Div sets the receiver to x./y (entrywise quotient).
	// Divisor entries must be nonzero wherever used; no guard is applied.
	Div(x, y Vector) error

	// WrmsNorm returns sqrt( (1/n) * sum_i (v_i * w_i)^2 ), the weighted
	// root-mean-square norm with weight vector w.
	WrmsNorm(w Vector) (float64, error)

	// MaxNorm returns max_i |v_i|.
	MaxNorm() float64
}

// Raw is the optional capability of exposing contiguous local storage.
// Backends that cannot provide it are incompatible with the
// band-block-diagonal preconditioner, which indexes entries directly
// during difference-quotient assembly and backsolves in place.
type Raw interface {
	// Data returns the backing slice; mutations are visible to the vector.
	Data() []float64
}

// RawData extracts the backing slice of v, reporting whether the
// backend supports the Raw capability.
func RawData(v Vector) ([]float64, bool) {
	r, ok := v.(Raw)
	if !ok {
		return nil, false
	}

	return r.Data(), true
}
