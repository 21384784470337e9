// Package solver: the canonical status taxonomy.
// Exactly one enumeration, no value reused for two names: zero means
// success, positive values are recoverable, negative values are fatal.
package solver

import (
	"errors"
	"fmt"
)

// Status is the return code of every solver operation and callback.
type Status int

const (
	// StatusSuccess reports a successful (or converged) operation.
	StatusSuccess Status = 0

	// StatusContinue is internal to iteration loops: not converged yet,
	// no error. Implementations must never return it to callers.
	StatusContinue Status = 6
)

// Recoverable conditions: the caller may retry after perturbing the
// iterate or shrinking the step.
const (
	// StatusSysRecoverable — the system function failed recoverably.
	StatusSysRecoverable Status = 1
	// StatusLSetupRecoverable — the linear-setup callback failed
	// recoverably (e.g. singular preconditioner block).
	StatusLSetupRecoverable Status = 2
	// StatusLSolveRecoverable — the linear-solve callback failed recoverably.
	StatusLSolveRecoverable Status = 3
	// StatusConvRecoverable — the iteration hit its cap or diverged
	// without converging; a retry with a fresh setup may succeed.
	StatusConvRecoverable Status = 4
)

// Unrecoverable conditions: the current solve attempt must be aborted.
const (
	// StatusMemNull — a required solver handle is nil.
	StatusMemNull Status = -1
	// StatusIllInput — an illegal input value was supplied.
	StatusIllInput Status = -2
	// StatusMemFail — a storage request was denied.
	StatusMemFail Status = -3
	// StatusLSetupFail — the linear-setup callback failed fatally.
	StatusLSetupFail Status = -6
	// StatusLSolveFail — the linear-solve callback failed fatally.
	StatusLSolveFail Status = -7
	// StatusSysFail — the system function failed fatally.
	StatusSysFail Status = -8
	// StatusVectorOpErr — a vector backend operation failed.
	StatusVectorOpErr Status = -28
)

// Recoverable reports whether s is a positive (retryable) condition.
func (s Status) Recoverable() bool { return s > StatusSuccess && s != StatusContinue }

// Fatal reports whether s is a negative (unrecoverable) condition.
func (s Status) Fatal() bool { return s < StatusSuccess }

// String returns the symbolic name of s.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusContinue:
		return "continue"
	case StatusSysRecoverable:
		return "system function recoverable failure"
	case StatusLSetupRecoverable:
		return "linear setup recoverable failure"
	case StatusLSolveRecoverable:
		return "linear solve recoverable failure"
	case StatusConvRecoverable:
		return "nonconvergence (recoverable)"
	case StatusMemNull:
		return "solver memory is nil"
	case StatusIllInput:
		return "illegal input"
	case StatusMemFail:
		return "allocation failure"
	case StatusLSetupFail:
		return "linear setup unrecoverable failure"
	case StatusLSolveFail:
		return "linear solve unrecoverable failure"
	case StatusSysFail:
		return "system function unrecoverable failure"
	case StatusVectorOpErr:
		return "vector operation error"
	default:
		return fmt.Sprintf("unknown status (%d)", int(s))
	}
}

// ErrStatus is the sentinel wrapped by Status.Err for every non-success
// status, so callers can gate on errors.Is(err, solver.ErrStatus).
var ErrStatus = errors.New("solver: operation failed")

// Err converts s into an error: nil for StatusSuccess, otherwise a
// wrapped ErrStatus carrying the symbolic name.
func (s Status) Err() error {
	if s == StatusSuccess {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrStatus, s)
}
