package bbd_test

import (
	"fmt"

	"github.com/katalvlaran/bandprec/bbd"
	"github.com/katalvlaran/bandprec/newton"
	"github.com/katalvlaran/bandprec/nvec"
	"github.com/katalvlaran/bandprec/solver"
)

// ExamplePrecond_Setup assembles and factors one banded block and
// reports the evaluation economy: 1 + bandwidth local residual calls,
// independent of the problem size.
func ExamplePrecond_Setup() {
	const n = 100

	// Gloc(u) = u: the Jacobian block is the identity.
	gloc := func(u, g nvec.Vector) solver.Status {
		if err := g.CopyFrom(u); err != nil {
			return solver.StatusVectorOpErr
		}

		return solver.StatusSuccess
	}

	nls := newton.New()
	prec, err := bbd.New(nls, n, 1, 1, 1, 1, gloc)
	if err != nil {
		fmt.Println("allocation failed:", err)

		return
	}

	u, _ := nvec.NewDense(n)
	scale := make([]float64, n)
	for i := range scale {
		scale[i] = 1
	}

	r, err := prec.Setup(u, nvec.WrapDense(scale), nil, nil)
	fmt.Println("zero-pivot row:", r, "err:", err)
	fmt.Println("gloc evaluations:", prec.NumGlocEvals())

	// Output:
	// zero-pivot row: 0 err: <nil>
	// gloc evaluations: 4
}
