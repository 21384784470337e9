// Package bbd: grouped difference-quotient Jacobian assembly.
//
// The coloring argument: two columns j and j' with j ≡ j' (mod width),
// width = mudq+mldq+1, are at least width apart, so their perturbations
// cannot influence any shared output row — every column of one group
// can be probed in a single residual evaluation. Total evaluations per
// assembly: 1 + min(width, n), independent of n.
package bbd

import (
	"math"

	"github.com/katalvlaran/bandprec/nvec"
	"github.com/katalvlaran/bandprec/solver"
)

// dqJacobian fills the banded block with difference quotients of the
// local residual around iterate u. ud and usd are the raw slices of
// the iterate and its scaling vector (validated by the caller).
//
// The increment for column j is dq * max(|u_j|, 1/uscale_j); the
// 1/uscale_j floor guarantees a nonzero increment even at u_j = 0.
// Quotients are computed over the probe band [j-mudq, j+mldq] pattern
// but only rows inside the retained band [j-mu, j+ml] are stored; the
// rest are discarded.
func (p *Precond) dqJacobian(u nvec.Vector, ud, usd []float64) error {
	utd := p.utemp.Data()
	gtd := p.gtemp.Data()
	gbd := p.gbase.Data()

	// Load the scratch iterate with u.
	copy(utd, ud)

	// Base residual G0 = Gloc(u): one evaluation.
	if st := p.gloc(u, p.gbase); st != solver.StatusSuccess {
		return callbackError("dqJacobian", ErrLocalFnFail, st)
	}

	width := p.mudq + p.mldq + 1
	ngroups := width
	if ngroups > p.nlocal {
		ngroups = p.nlocal
	}

	// Probe one group per evaluation.
	for group := 1; group <= ngroups; group++ {
		// Perturb every column of the group: j ≡ group-1 (mod width).
		for j := group - 1; j < p.nlocal; j += width {
			utd[j] += p.increment(ud[j], usd[j])
		}

		// One evaluation covers the whole group.
		if st := p.gloc(p.utemp, p.gtemp); st != solver.StatusSuccess {
			copy(utd, ud) // leave the scratch iterate clean

			return callbackError("dqJacobian", ErrLocalFnFail, st)
		}

		// Restore each column, then store its in-band quotients.
		for j := group - 1; j < p.nlocal; j += width {
			utd[j] = ud[j]
			incInv := 1 / p.increment(ud[j], usd[j])
			colJ := p.pp.Col(j)
			i1 := j - p.mu
			if i1 < 0 {
				i1 = 0
			}
			i2 := j + p.ml
			if i2 > p.nlocal-1 {
				i2 = p.nlocal - 1
			}
			for i := i1; i <= i2; i++ {
				colJ[p.pp.ColIndex(i, j)] = incInv * (gtd[i] - gbd[i])
			}
		}
	}

	p.nge += int64(1 + ngroups)

	return nil
}

// increment returns the perturbation for one column: relative to the
// iterate magnitude, floored by the inverse scale so it never vanishes.
func (p *Precond) increment(uj, usj float64) float64 {
	return p.dq * math.Max(math.Abs(uj), 1/usj)
}
