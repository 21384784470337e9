// Package nvec: Dense storage — the serial reference Vector backend.
//
// Purpose:
//   - Provide a flat []float64 implementation with the explicit index i.
//   - Guarantee safety at the public surface: binary ops return errors
//     instead of panicking on shape mismatch.
//   - Keep algorithmic determinism (fixed loop orders, no hidden state).
package nvec

import "math"

// Dense is a vector backed by a flat, contiguous []float64.
// It implements both Vector and Raw.
type Dense struct {
	data []float64 // backing storage, length fixed at construction
}

// compile-time capability checks
var (
	_ Vector = (*Dense)(nil)
	_ Raw    = (*Dense)(nil)
)

// NewDense allocates a zero-initialized vector of length n.
// Returns ErrBadLength when n <= 0.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}

	return &Dense{data: make([]float64, n)}, nil
}

// WrapDense wraps an existing slice without copying; mutations through
// either alias are visible to both. The slice must be non-empty.
func WrapDense(data []float64) *Dense {
	return &Dense{data: data}
}

// Data returns the backing slice (Raw capability).
func (v *Dense) Data() []float64 { return v.data }

// Len returns the number of entries.
func (v *Dense) Len() int { return len(v.data) }

// Clone returns a deep copy of v.
func (v *Dense) Clone() Vector {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return &Dense{data: out}
}

// CopyFrom overwrites v with src.
func (v *Dense) CopyFrom(src Vector) error {
	if src == nil {
		return ErrNilVector
	}
	if src.Len() != len(v.data) {
		return ErrDimensionMismatch
	}
	if s, ok := src.(*Dense); ok { // fast path: slice copy
		copy(v.data, s.data)

		return nil
	}
	sd, ok := RawData(src)
	if !ok {
		return ErrNoRaw
	}
	copy(v.data, sd)

	return nil
}

// Scale multiplies every entry by c in place.
func (v *Dense) Scale(c float64) {
	for i := range v.data {
		v.data[i] *= c
	}
}

// LinearSum sets v = a*x + b*y. The receiver may alias x and/or y.
func (v *Dense) LinearSum(a float64, x Vector, b float64, y Vector) error {
	xd, yd, err := v.operands(x, y)
	if err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = a*xd[i] + b*yd[i]
	}

	return nil
}

// AddConst sets v = x + c entrywise.
func (v *Dense) AddConst(c float64, x Vector) error {
	xd, _, err := v.operands(x, x)
	if err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = xd[i] + c
	}

	return nil
}

// Prod sets v = x.*y entrywise.
func (v *Dense) Prod(x, y Vector) error {
	xd, yd, err := v.operands(x, y)
	if err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = xd[i] * yd[i]
	}

	return nil
}

// Div sets v = x./y entrywise. Divisors are the caller's contract;
// a zero divisor propagates ±Inf/NaN exactly as float64 division does.
func (v *Dense) Div(x, y Vector) error {
	xd, yd, err := v.operands(x, y)
	if err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = xd[i] / yd[i]
	}

	return nil
}

// WrmsNorm returns the weighted root-mean-square norm of v with weights w.
func (v *Dense) WrmsNorm(w Vector) (float64, error) {
	wd, _, err := v.operands(w, w)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := range v.data {
		p := v.data[i] * wd[i]
		sum += p * p
	}

	return math.Sqrt(sum / float64(len(v.data))), nil
}

// MaxNorm returns max_i |v_i|.
func (v *Dense) MaxNorm() float64 {
	var m float64
	for i := range v.data {
		if a := math.Abs(v.data[i]); a > m {
			m = a
		}
	}

	return m
}

// operands validates x and y against the receiver and extracts their
// backing slices; operands must expose Raw storage.
func (v *Dense) operands(x, y Vector) ([]float64, []float64, error) {
	if x == nil || y == nil {
		return nil, nil, ErrNilVector
	}
	if x.Len() != len(v.data) || y.Len() != len(v.data) {
		return nil, nil, ErrDimensionMismatch
	}
	xd, ok := RawData(x)
	if !ok {
		return nil, nil, ErrNoRaw
	}
	yd, ok := RawData(y)
	if !ok {
		return nil, nil, ErrNoRaw
	}

	return xd, yd, nil
}
