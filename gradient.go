package invdens

import (
	"fmt"
	"math"
)

// potentialMoment computes ∫_R V(y)·exp(-theta/sigma·V(y)) dy, the
// integral shared by both parameter derivatives of Z.
func (e *Evaluator) potentialMoment(theta, sigma float64, v Potential) (float64, error) {
	m, _, err := e.integ.Integrate(func(y float64) float64 {
		t := RationalMap(y)
		return v(t) * weight(t, theta, sigma, v) * RationalMapDeriv(y)
	}, -1, 1)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDivergence, err)
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%w: potential moment=%v", ErrDivergence, m)
	}
	return m, nil
}

// DriftDeriv evaluates the derivative of the density with respect to
// the drift coefficient. Differentiating mu = exp(-theta/sigma·V)/Z
// under the integral sign gives
//
//	d(mu)/d(theta) = -(1/Z)·exp(-theta/sigma·V(x))·(V(x)/sigma + Z'/Z)
//	Z'             = -(1/sigma)·∫ V·exp(-theta/sigma·V)
//
// Two quadratures total: Z and the shared potential moment. The
// density factor is reconstructed from Z rather than spending a third
// quadrature on a Density call.
func (e *Evaluator) DriftDeriv(x, theta, sigma float64, v Potential) (float64, error) {
	if err := validateParams(theta, sigma); err != nil {
		return 0, err
	}
	z, err := e.normalization(theta, sigma, v)
	if err != nil {
		return 0, err
	}
	m, err := e.potentialMoment(theta, sigma, v)
	if err != nil {
		return 0, err
	}
	dz := -m / sigma
	return -(1 / z) * weight(x, theta, sigma, v) * (v(x)/sigma + dz/z), nil
}

// DiffusionDeriv evaluates the derivative of the density with respect
// to the diffusion coefficient:
//
//	d(mu)/d(sigma) = (1/Z)·exp(-theta/sigma·V(x))·(theta·V(x)/sigma² - Z'/Z)
//	Z'             = (theta/sigma²)·∫ V·exp(-theta/sigma·V)
func (e *Evaluator) DiffusionDeriv(x, theta, sigma float64, v Potential) (float64, error) {
	if err := validateParams(theta, sigma); err != nil {
		return 0, err
	}
	z, err := e.normalization(theta, sigma, v)
	if err != nil {
		return 0, err
	}
	m, err := e.potentialMoment(theta, sigma, v)
	if err != nil {
		return 0, err
	}
	dz := theta * m / (sigma * sigma)
	return (1 / z) * weight(x, theta, sigma, v) * (theta*v(x)/(sigma*sigma) - dz/z), nil
}

// Gradient evaluates both parameter derivatives at x. The two
// derivatives of Z are scalar multiples of the same potential moment,
// so the pair costs the same two quadratures as a single derivative.
func (e *Evaluator) Gradient(x, theta, sigma float64, v Potential) (drift, diffusion float64, err error) {
	if err := validateParams(theta, sigma); err != nil {
		return 0, 0, err
	}
	z, err := e.normalization(theta, sigma, v)
	if err != nil {
		return 0, 0, err
	}
	m, err := e.potentialMoment(theta, sigma, v)
	if err != nil {
		return 0, 0, err
	}

	w := weight(x, theta, sigma, v)
	vx := v(x)

	dzTheta := -m / sigma
	dzSigma := theta * m / (sigma * sigma)

	drift = -(1 / z) * w * (vx/sigma + dzTheta/z)
	diffusion = (1 / z) * w * (theta*vx/(sigma*sigma) - dzSigma/z)
	return drift, diffusion, nil
}

// DriftDeriv evaluates d(mu)/d(theta) at x with the default
// Gauss-Kronrod backend.
func DriftDeriv(x, theta, sigma float64, v Potential) (float64, error) {
	return NewEvaluator(nil).DriftDeriv(x, theta, sigma, v)
}

// DiffusionDeriv evaluates d(mu)/d(sigma) at x with the default
// Gauss-Kronrod backend.
func DiffusionDeriv(x, theta, sigma float64, v Potential) (float64, error) {
	return NewEvaluator(nil).DiffusionDeriv(x, theta, sigma, v)
}
