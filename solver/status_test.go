package solver_test

import (
	"testing"

	"github.com/katalvlaran/bandprec/solver"
	"github.com/stretchr/testify/assert"
)

// TestStatus_Taxonomy verifies the canonical split: zero success,
// positive recoverable, negative fatal, with no value reused.
func TestStatus_Taxonomy(t *testing.T) {
	assert.False(t, solver.StatusSuccess.Recoverable())
	assert.False(t, solver.StatusSuccess.Fatal())

	recoverables := []solver.Status{
		solver.StatusSysRecoverable,
		solver.StatusLSetupRecoverable,
		solver.StatusLSolveRecoverable,
		solver.StatusConvRecoverable,
	}
	fatals := []solver.Status{
		solver.StatusMemNull,
		solver.StatusIllInput,
		solver.StatusMemFail,
		solver.StatusLSetupFail,
		solver.StatusLSolveFail,
		solver.StatusSysFail,
		solver.StatusVectorOpErr,
	}

	seen := map[solver.Status]bool{solver.StatusSuccess: true, solver.StatusContinue: true}
	for _, st := range recoverables {
		assert.True(t, st.Recoverable(), "%v must be recoverable", st)
		assert.False(t, st.Fatal(), "%v must not be fatal", st)
		assert.False(t, seen[st], "%v reuses another status value", st)
		seen[st] = true
	}
	for _, st := range fatals {
		assert.True(t, st.Fatal(), "%v must be fatal", st)
		assert.False(t, st.Recoverable(), "%v must not be recoverable", st)
		assert.False(t, seen[st], "%v reuses another status value", st)
		seen[st] = true
	}
}

// TestStatus_Err verifies the error bridge: nil on success, ErrStatus
// wrapped otherwise.
func TestStatus_Err(t *testing.T) {
	assert.NoError(t, solver.StatusSuccess.Err())

	err := solver.StatusSysFail.Err()
	assert.ErrorIs(t, err, solver.ErrStatus)
	assert.Contains(t, err.Error(), "system function")
}

// TestStatus_String spot-checks symbolic names, including unknown codes.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", solver.StatusSuccess.String())
	assert.Equal(t, "allocation failure", solver.StatusMemFail.String())
	assert.Contains(t, solver.Status(99).String(), "unknown")
}

// TestType_String verifies the variant tag names.
func TestType_String(t *testing.T) {
	assert.Equal(t, "root-finding", solver.RootFind.String())
	assert.Equal(t, "stationary", solver.Stationary.String())
}
