// Package bbd: preconditioner state management and lifecycle.
//
// Purpose:
//   - Own the banded block, pivot sequence, scratch vectors, parameters
//     and counters for one process's preconditioner.
//   - Expose the Setup / Solve / Free lifecycle plus the adapters that
//     wire them into a solver.Solver's linear-setup/solve slots.
package bbd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bandprec/band"
	"github.com/katalvlaran/bandprec/nvec"
	"github.com/katalvlaran/bandprec/solver"
)

// Precond is the per-process band-block-diagonal preconditioner state.
// Exactly one owner (the solver wired at New) drives it; Setup and
// Solve must never overlap.
type Precond struct {
	nlocal int // local problem size

	mudq, mldq int // difference-quotient half-bandwidths (probe)
	mu, ml     int // retained half-bandwidths (storage)

	dq float64 // relative increment factor

	gloc  LocalFn // local approximate residual
	gcomm CommFn  // optional halo exchange

	pp  *band.Matrix // the banded block, overwritten by its LU factors
	piv []int        // pivot sequence, one entry per local row

	utemp *nvec.Dense // perturbed-iterate scratch
	gtemp *nvec.Dense // perturbed-residual scratch
	gbase *nvec.Dense // base-residual scratch

	uscale, fscale nvec.Vector // scaling bound for the LSetupFn adapter

	nge int64 // cumulative Gloc evaluation count
}

// New allocates a preconditioner state for a local problem of size
// nlocal, probing difference quotients over half-bandwidths
// mudq/mldq and retaining mu/ml, driven by the local residual gloc and
// owned by nls.
//
// Fails fast with ErrNilSolver / ErrNilLocalFn / ErrBadLocalSize /
// ErrBadBandwidth / ErrBadIncrement / ErrBadVector before touching any
// storage; half-bandwidths are clamped to [0, nlocal-1] after the
// negativity check. On any failure no partially constructed state is
// reachable by the caller.
func New(nls solver.Solver, nlocal, mudq, mldq, mu, ml int, gloc LocalFn, opts ...Option) (*Precond, error) {
	// Stage 1: validate configuration — all of it — before allocating.
	if nls == nil {
		return nil, fmt.Errorf("New: %w", ErrNilSolver)
	}
	if gloc == nil {
		return nil, fmt.Errorf("New: %w", ErrNilLocalFn)
	}
	if nlocal <= 0 {
		return nil, fmt.Errorf("New: %w", ErrBadLocalSize)
	}
	if mudq < 0 || mldq < 0 || mu < 0 || ml < 0 {
		return nil, fmt.Errorf("New: %w", ErrBadBandwidth)
	}
	cfg := gatherOptions(opts)
	if cfg.dq < 0 {
		return nil, fmt.Errorf("New: %w", ErrBadIncrement)
	}
	if cfg.dq == 0 {
		cfg.dq = DefaultRelIncrement
	}
	if cfg.template != nil {
		if _, ok := nvec.RawData(cfg.template); !ok {
			return nil, fmt.Errorf("New: %w", ErrBadVector)
		}
	}

	p := &Precond{
		nlocal: nlocal,
		mudq:   clamp(mudq, nlocal),
		mldq:   clamp(mldq, nlocal),
		mu:     clamp(mu, nlocal),
		ml:     clamp(ml, nlocal),
		dq:     cfg.dq,
		gloc:   gloc,
		gcomm:  cfg.gcomm,
	}

	// Stage 2: allocate matrix, pivots, scratch — in that order.
	// A failure at any step lets everything before it be collected;
	// nothing escapes to the caller.
	var err error
	if p.pp, err = band.New(nlocal, p.mu, p.ml); err != nil {
		return nil, fmt.Errorf("New: matrix: %w", err)
	}
	p.piv = make([]int, nlocal)
	if p.utemp, err = nvec.NewDense(nlocal); err != nil {
		return nil, fmt.Errorf("New: scratch: %w", err)
	}
	if p.gtemp, err = nvec.NewDense(nlocal); err != nil {
		return nil, fmt.Errorf("New: scratch: %w", err)
	}
	if p.gbase, err = nvec.NewDense(nlocal); err != nil {
		return nil, fmt.Errorf("New: scratch: %w", err)
	}

	return p, nil
}

// clamp restricts a half-bandwidth to [0, n-1].
func clamp(v, n int) int {
	if v > n-1 {
		return n - 1
	}

	return v
}

// ReInit reconfigures the probe half-bandwidths and relative increment
// for a new problem of identical local size, REUSING the existing
// matrix, pivot and scratch storage. dq <= 0 selects
// DefaultRelIncrement. The retained bandwidths (mu, ml) are fixed at
// allocation and remain unchanged.
func (p *Precond) ReInit(mudq, mldq int, dq float64) error {
	if p.pp == nil {
		return fmt.Errorf("ReInit: %w", ErrNotAllocated)
	}
	if mudq < 0 || mldq < 0 {
		return fmt.Errorf("ReInit: %w", ErrBadBandwidth)
	}
	p.mudq = clamp(mudq, p.nlocal)
	p.mldq = clamp(mldq, p.nlocal)
	if dq <= 0 {
		dq = DefaultRelIncrement
	}
	p.dq = dq

	return nil
}

// Setup assembles a fresh banded block at iterate u (scaled by uscale)
// and factors it in place: one communication-callback invocation, the
// grouped difference-quotient assembly, then banded LU.
//
// Returns (0, nil) on success. A zero pivot during factorization
// returns its 1-based row index with an error matching both
// ErrRecoverable and band.ErrZeroPivot — the owning solver may retry
// after adjusting the step. Callback failures return (0, err) with err
// matching ErrCommFnFail or ErrLocalFnFail, plus ErrRecoverable when
// the callback's status was positive.
//
// fval and fscale (the current residual and its scaling) are accepted
// for slot-signature compatibility; the banded approximation reads
// only u and uscale.
func (p *Precond) Setup(u, uscale, fval, fscale nvec.Vector) (int, error) {
	// Stage 1: validate state and operands.
	if p.pp == nil {
		return 0, fmt.Errorf("Setup: %w", ErrNotAllocated)
	}
	ud, err := p.rawOperand(u)
	if err != nil {
		return 0, fmt.Errorf("Setup: iterate: %w", err)
	}
	usd, err := p.rawOperand(uscale)
	if err != nil {
		return 0, fmt.Errorf("Setup: iterate scale: %w", err)
	}
	_, _ = fval, fscale // unused by the banded approximation

	// Stage 2: halo exchange, exactly once, before any local read.
	if p.gcomm != nil {
		if st := p.gcomm(u); st != solver.StatusSuccess {
			return 0, callbackError("Setup", ErrCommFnFail, st)
		}
	}

	// Stage 3: grouped difference-quotient assembly into the band.
	p.pp.Zero()
	if err := p.dqJacobian(u, ud, usd); err != nil {
		return 0, fmt.Errorf("Setup: %w", err)
	}

	// Stage 4: factor in place; a zero pivot is the recoverable signal.
	r, err := p.pp.Factor(p.piv)
	if err != nil {
		return r, fmt.Errorf("Setup: %w: %w (row %d)", ErrRecoverable, err, r)
	}

	return 0, nil
}

// Solve performs the banded back-substitution in place on z using the
// most recent successful factorization. It always succeeds when the
// preceding Setup succeeded; calling it without one is a sequencing
// error surfaced as band.ErrNotFactored.
func (p *Precond) Solve(z nvec.Vector) error {
	if p.pp == nil {
		return fmt.Errorf("Solve: %w", ErrNotAllocated)
	}
	zd, err := p.rawOperand(z)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	if err := p.pp.Backsolve(p.piv, zd); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	return nil
}

// Free releases the matrix, pivot and scratch storage. Idempotent;
// any later Setup/Solve reports ErrNotAllocated.
func (p *Precond) Free() {
	p.pp = nil
	p.piv = nil
	p.utemp, p.gtemp, p.gbase = nil, nil, nil
}

// BindScaling stores the iterate and residual scaling vectors the
// LSetupFn adapter passes through to Setup. Call before wiring the
// adapter into the owning solver.
func (p *Precond) BindScaling(uscale, fscale nvec.Vector) {
	p.uscale, p.fscale = uscale, fscale
}

// LSetupFn adapts Setup to the owning solver's linear-setup slot.
// Recoverable Setup failures (zero pivot, recoverable callback status)
// surface as solver.StatusLSetupRecoverable, fatal ones as
// solver.StatusLSetupFail.
func (p *Precond) LSetupFn() solver.LSetupFn {
	return func(y, f nvec.Vector) solver.Status {
		_, err := p.Setup(y, p.scaleOrUnit(p.uscale), f, p.scaleOrUnit(p.fscale))
		switch {
		case err == nil:
			return solver.StatusSuccess
		case Recoverable(err):
			return solver.StatusLSetupRecoverable
		default:
			return solver.StatusLSetupFail
		}
	}
}

// LSolveFn adapts Solve to the owning solver's linear-solve slot,
// invoked once per inner linear iteration with the right-hand side b
// overwritten in place.
func (p *Precond) LSolveFn() solver.LSolveFn {
	return func(y, b nvec.Vector) solver.Status {
		if err := p.Solve(b); err != nil {
			return solver.StatusLSolveFail
		}

		return solver.StatusSuccess
	}
}

// NumGlocEvals returns the cumulative number of local residual
// evaluations performed across all Setup calls on this state.
func (p *Precond) NumGlocEvals() int64 { return p.nge }

// Workspace returns the local real and integer workspace footprints
// (float64 and int cells) for capacity planning and telemetry.
func (p *Precond) Workspace() (lrw, liw int64) {
	if p.pp == nil {
		return 0, 0
	}

	return int64(p.pp.Storage() + 3*p.nlocal), int64(p.nlocal)
}

// Recoverable reports whether err carries the recoverable marker, i.e.
// the owning solver may retry after adjusting the iterate or the step.
func Recoverable(err error) bool { return errors.Is(err, ErrRecoverable) }

// rawOperand validates an operand vector and extracts its raw storage.
func (p *Precond) rawOperand(v nvec.Vector) ([]float64, error) {
	if v == nil {
		return nil, ErrBadVector
	}
	if v.Len() != p.nlocal {
		return nil, ErrDimensionMismatch
	}
	d, ok := nvec.RawData(v)
	if !ok {
		return nil, ErrBadVector
	}

	return d, nil
}

// scaleOrUnit substitutes unit scaling when none was bound.
func (p *Precond) scaleOrUnit(s nvec.Vector) nvec.Vector {
	if s != nil {
		return s
	}
	unit := make([]float64, p.nlocal)
	for i := range unit {
		unit[i] = 1
	}

	return nvec.WrapDense(unit)
}

// callbackError wraps a user-callback status into the package's error
// taxonomy: positive statuses additionally match ErrRecoverable.
func callbackError(ctx string, kind error, st solver.Status) error {
	if st.Recoverable() {
		return fmt.Errorf("%s: %w: %w (status %d)", ctx, ErrRecoverable, kind, int(st))
	}

	return fmt.Errorf("%s: %w (status %d)", ctx, kind, int(st))
}
