package bbd

import (
	"github.com/katalvlaran/bandprec/band"
	"github.com/katalvlaran/bandprec/nvec"
)

// Test-only accessors: storage identity checks need to observe the
// owned buffers without widening the public surface.

// MatrixForTest exposes the banded block.
func (p *Precond) MatrixForTest() *band.Matrix { return p.pp }

// ScratchForTest exposes the perturbed-iterate scratch vector.
func (p *Precond) ScratchForTest() *nvec.Dense { return p.utemp }
