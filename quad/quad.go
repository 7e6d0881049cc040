// Package quad provides adaptive numerical quadrature over finite
// intervals.
//
// The package defines a single integration contract, [Integrator], and
// two backends:
//
//   - [GaussKronrod]: adaptive Gauss-Kronrod G7/K15 with interval
//     bisection, the default. Handles integrable endpoint
//     singularities because no node lies on an interval endpoint.
//   - [Legendre]: fixed-order Gauss-Legendre backed by
//     gonum/integrate/quad, for smooth integrands.
package quad

import "errors"

// Func is a scalar integrand.
type Func func(x float64) float64

// Integrator estimates a definite integral over a finite interval
//
//	∫_a^b f(x) dx
//
// returning the estimate alongside an error estimate. A non-nil error
// means the estimate is not trustworthy: the integrand produced a
// non-finite value, or the tolerance was not reached within the
// refinement budget.
type Integrator interface {
	Integrate(f Func, a, b float64) (value, errEst float64, err error)
}

// Quadrature failure modes.
var (
	// ErrInvalidInterval indicates non-finite bounds or a >= b.
	ErrInvalidInterval = errors.New("quad: integration bounds must be finite with a < b")

	// ErrNotFinite indicates the integrand produced NaN or Inf.
	ErrNotFinite = errors.New("quad: integrand produced a non-finite value")

	// ErrMaxIntervals indicates the error tolerance was not reached
	// within the subdivision budget.
	ErrMaxIntervals = errors.New("quad: tolerance not reached within interval budget")
)
