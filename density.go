package invdens

import (
	"fmt"
	"math"

	"github.com/san-kum/invdens/quad"
)

// Potential is a scalar potential V whose negative gradient drives the
// drift of the underlying process. It must be integrable against
// exp(-theta/sigma·V) over R for the normalization integral to
// converge; convergence is the caller's responsibility.
type Potential func(x float64) float64

// Evaluator computes invariant densities and their parameter
// derivatives using an injected quadrature backend.
type Evaluator struct {
	integ quad.Integrator
}

// NewEvaluator builds an Evaluator around the given quadrature
// backend. A nil backend selects the default adaptive Gauss-Kronrod
// rule.
func NewEvaluator(integ quad.Integrator) *Evaluator {
	if integ == nil {
		integ = quad.NewGaussKronrod()
	}
	return &Evaluator{integ: integ}
}

func validateParams(theta, sigma float64) error {
	if math.IsNaN(theta) || math.IsInf(theta, 0) || theta <= 0 {
		return fmt.Errorf("%w: drift=%v", ErrInvalidParam, theta)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return fmt.Errorf("%w: diffusion=%v", ErrInvalidParam, sigma)
	}
	return nil
}

// weight is the unnormalized stationary weight exp(-theta/sigma·V(x)).
func weight(x, theta, sigma float64, v Potential) float64 {
	return math.Exp(-theta / sigma * v(x))
}

// normalization computes Z = ∫_R exp(-theta/sigma·V) dy by mapping the
// real line onto (-1, 1) with the rational transform.
func (e *Evaluator) normalization(theta, sigma float64, v Potential) (float64, error) {
	z, _, err := e.integ.Integrate(func(y float64) float64 {
		return weight(RationalMap(y), theta, sigma, v) * RationalMapDeriv(y)
	}, -1, 1)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDivergence, err)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return 0, fmt.Errorf("%w: Z=%v", ErrDegenerate, z)
	}
	return z, nil
}

// Density evaluates the invariant density
//
//	mu(x) = exp(-theta/sigma·V(x)) / Z
//
// The normalization constant is recomputed on every call.
func (e *Evaluator) Density(x, theta, sigma float64, v Potential) (float64, error) {
	if err := validateParams(theta, sigma); err != nil {
		return 0, err
	}
	z, err := e.normalization(theta, sigma, v)
	if err != nil {
		return 0, err
	}
	return weight(x, theta, sigma, v) / z, nil
}

// Density evaluates mu(x) with the default Gauss-Kronrod backend.
func Density(x, theta, sigma float64, v Potential) (float64, error) {
	return NewEvaluator(nil).Density(x, theta, sigma, v)
}
