package band_test

import (
	"fmt"

	"github.com/katalvlaran/bandprec/band"
)

// ExampleMatrix_Factor solves a small tridiagonal system in place.
func ExampleMatrix_Factor() {
	// A = [ 2 -1  0 ]
	//     [-1  2 -1 ]
	//     [ 0 -1  2 ]
	m, _ := band.New(3, 1, 1)
	for i := 0; i < 3; i++ {
		_ = m.Set(i, i, 2)
		if i > 0 {
			_ = m.Set(i, i-1, -1)
			_ = m.Set(i-1, i, -1)
		}
	}

	piv := make([]int, 3)
	if _, err := m.Factor(piv); err != nil {
		fmt.Println("factor failed:", err)

		return
	}

	// Solve A·x = [1, 0, 1] → x = [1, 1, 1].
	b := []float64{1, 0, 1}
	_ = m.Backsolve(piv, b)
	fmt.Printf("x = [%.0f %.0f %.0f]\n", b[0], b[1], b[2])

	// Output:
	// x = [1 1 1]
}
