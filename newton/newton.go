// Package newton: the full-Newton iteration loop and its bookkeeping.
package newton

import (
	"github.com/katalvlaran/bandprec/nvec"
	"github.com/katalvlaran/bandprec/solver"
)

// DefaultMaxIters caps the iterations of a single Solve call unless
// overridden via SetMaxIters.
const DefaultMaxIters = 10

// Newton is a full-Newton root-finding solver. It satisfies
// solver.Solver; construct with New, wire callbacks, then Init once per
// template vector shape.
type Newton struct {
	sys    solver.SysFn      // F(y) evaluation (required)
	lsetup solver.LSetupFn   // linear setup slot (optional)
	lsolve solver.LSolveFn   // linear solve slot (required for Solve)
	ctest  solver.ConvTestFn // convergence test (default wrms <= tol)

	maxIters int // per-Solve iteration cap

	fval  nvec.Vector // residual workspace
	delta nvec.Vector // Newton correction workspace

	niters     int64 // cumulative iterations across Solve calls
	nconvfails int64 // cumulative convergence failures
}

var _ solver.Solver = (*Newton)(nil)

// New constructs a full-Newton solver with default settings.
// Callbacks start unset; SetSysFn and SetLSolveFn must be wired before
// Solve.
func New() *Newton {
	return &Newton{maxIters: DefaultMaxIters}
}

// Type returns solver.RootFind.
func (n *Newton) Type() solver.Type { return solver.RootFind }

// Init sizes the internal workspace from the template vector tmpl.
// Call once per distinct vector shape, before Setup/Solve.
func (n *Newton) Init(tmpl nvec.Vector) solver.Status {
	if tmpl == nil {
		return solver.StatusIllInput
	}
	n.fval = tmpl.Clone()
	n.delta = tmpl.Clone()

	return solver.StatusSuccess
}

// Setup refreshes cached linear-system state at iterate y with residual
// f by invoking the linear-setup slot, when wired.
func (n *Newton) Setup(y, f nvec.Vector) solver.Status {
	if n.lsetup == nil {
		return solver.StatusSuccess
	}

	return mapStatus(n.lsetup(y, f), solver.StatusLSetupRecoverable, solver.StatusLSetupFail)
}

// Solve runs the full-Newton iteration from initial guess y0, writing
// the final iterate into y. Weights w and tolerance tol feed the
// convergence test on the weighted-RMS norm of each correction.
// callLSetup is accepted for contract compatibility; full Newton
// refreshes the linear setup every iteration regardless.
//
// Returns StatusSuccess on convergence, StatusConvRecoverable when the
// iteration cap is reached without convergence, and the mapped
// recoverable/fatal status of whichever callback failed otherwise.
func (n *Newton) Solve(y0, y, w nvec.Vector, tol float64, callLSetup bool) solver.Status {
	// Stage 1: validate wiring and workspace.
	if n.sys == nil || n.lsolve == nil {
		return solver.StatusMemNull
	}
	if n.fval == nil || n.delta == nil {
		return solver.StatusMemNull
	}
	if y0 == nil || y == nil || w == nil || tol <= 0 {
		return solver.StatusIllInput
	}
	if err := y.CopyFrom(y0); err != nil {
		return solver.StatusVectorOpErr
	}
	_ = callLSetup // full Newton: setup runs every iteration anyway

	// Stage 2: iterate.
	for iter := 0; iter < n.maxIters; iter++ {
		// Residual at the current iterate.
		if st := mapStatus(n.sys(y, n.fval), solver.StatusSysRecoverable, solver.StatusSysFail); st != solver.StatusSuccess {
			return st
		}

		// Full Newton: fresh linear setup before every correction.
		if n.lsetup != nil {
			if st := mapStatus(n.lsetup(y, n.fval), solver.StatusLSetupRecoverable, solver.StatusLSetupFail); st != solver.StatusSuccess {
				n.nconvfails++

				return st
			}
		}

		// Solve J·δ = -F(y): load δ with -F(y), then apply the slot.
		if err := n.delta.LinearSum(-1, n.fval, 0, n.fval); err != nil {
			return solver.StatusVectorOpErr
		}
		if st := mapStatus(n.lsolve(y, n.delta), solver.StatusLSolveRecoverable, solver.StatusLSolveFail); st != solver.StatusSuccess {
			n.nconvfails++

			return st
		}

		// Apply the correction and measure it.
		if err := y.LinearSum(1, y, 1, n.delta); err != nil {
			return solver.StatusVectorOpErr
		}
		delnrm, err := n.delta.WrmsNorm(w)
		if err != nil {
			return solver.StatusVectorOpErr
		}
		n.niters++

		// Convergence test: default or caller-supplied.
		st := n.convTest(iter, delnrm, tol)
		if st == solver.StatusSuccess {
			return solver.StatusSuccess
		}
		if st != solver.StatusContinue {
			n.nconvfails++

			return st
		}
	}

	// Stage 3: cap reached without convergence — recoverable.
	n.nconvfails++

	return solver.StatusConvRecoverable
}

// Free releases the workspace vectors. The solver may be re-Init'ed.
func (n *Newton) Free() {
	n.fval = nil
	n.delta = nil
}

// SetSysFn wires the system-evaluation callback.
func (n *Newton) SetSysFn(fn solver.SysFn) solver.Status {
	if fn == nil {
		return solver.StatusIllInput
	}
	n.sys = fn

	return solver.StatusSuccess
}

// SetLSetupFn wires the linear-setup callback; nil clears it.
func (n *Newton) SetLSetupFn(fn solver.LSetupFn) solver.Status {
	n.lsetup = fn

	return solver.StatusSuccess
}

// SetLSolveFn wires the linear-solve callback; nil clears it.
func (n *Newton) SetLSolveFn(fn solver.LSolveFn) solver.Status {
	n.lsolve = fn

	return solver.StatusSuccess
}

// SetConvTestFn overrides the convergence test; nil restores the
// default (‖δ‖_wrms ≤ tol).
func (n *Newton) SetConvTestFn(fn solver.ConvTestFn) solver.Status {
	n.ctest = fn

	return solver.StatusSuccess
}

// SetMaxIters caps the iterations per Solve call; n must be positive.
func (n *Newton) SetMaxIters(m int) solver.Status {
	if m <= 0 {
		return solver.StatusIllInput
	}
	n.maxIters = m

	return solver.StatusSuccess
}

// NumIters returns the cumulative iteration count across Solve calls.
func (n *Newton) NumIters() int64 { return n.niters }

// NumConvFails returns the cumulative number of convergence failures.
func (n *Newton) NumConvFails() int64 { return n.nconvfails }

// convTest applies the caller-supplied test when set, else the default.
func (n *Newton) convTest(iter int, delnrm, tol float64) solver.Status {
	if n.ctest != nil {
		return n.ctest(iter, delnrm, tol)
	}
	if delnrm <= tol {
		return solver.StatusSuccess
	}

	return solver.StatusContinue
}

// mapStatus folds an arbitrary callback status onto the canonical
// recoverable/fatal pair for that slot, passing success through and
// preserving already-canonical fatal codes.
func mapStatus(st, recoverable, fatal solver.Status) solver.Status {
	switch {
	case st == solver.StatusSuccess:
		return solver.StatusSuccess
	case st.Fatal():
		return fatal
	default:
		return recoverable
	}
}
