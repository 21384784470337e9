// Package bbd: functional configuration for the preconditioner.
// DefaultX constants are the single source of truth; WithX constructors
// record intent and New validates once, before any allocation.
package bbd

import (
	"math"

	"github.com/katalvlaran/bandprec/nvec"
)

// unitRoundoff is the double-precision unit roundoff (2^-52).
const unitRoundoff = 0x1p-52

// DefaultRelIncrement is the relative increment factor used when none
// is configured: sqrt of the unit roundoff.
var DefaultRelIncrement = math.Sqrt(unitRoundoff)

// Option configures a Precond at allocation time.
type Option func(*config)

// config gathers option state ahead of validation in New.
type config struct {
	gcomm    CommFn      // optional halo-exchange callback
	dq       float64     // relative increment; <= 0 means default
	template nvec.Vector // backend compatibility probe
}

// WithCommFn supplies the communication callback invoked once per
// Setup before any local evaluation. Omit it (or pass nil) when the
// local function needs no neighbor-owned data.
func WithCommFn(fn CommFn) Option {
	return func(c *config) { c.gcomm = fn }
}

// WithRelIncrement sets the relative increment factor for the
// difference quotients. A value of 0 selects DefaultRelIncrement;
// negative values are rejected by New with ErrBadIncrement.
func WithRelIncrement(dq float64) Option {
	return func(c *config) { c.dq = dq }
}

// WithTemplate supplies a template vector whose backend is checked for
// compatibility: the band-block-diagonal preconditioner requires raw
// contiguous storage (nvec.Raw). New fails with ErrBadVector when the
// template lacks it. Omitting the template defers the check to the
// first Setup call.
func WithTemplate(v nvec.Vector) Option {
	return func(c *config) { c.template = v }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) config {
	c := config{dq: 0} // 0 → DefaultRelIncrement, resolved in New
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
