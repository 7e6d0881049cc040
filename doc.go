// Package invdens evaluates stationary ("invariant") densities of
// one-dimensional Langevin diffusions and their parameter derivatives.
//
// For a drift coefficient theta > 0, a diffusion coefficient sigma > 0,
// and a caller-supplied potential V, the invariant density is
//
//	mu(x) = exp(-theta/sigma * V(x)) / Z
//	Z     = integral over R of exp(-theta/sigma * V(y)) dy
//
// The package exposes:
//
//   - [Density]: mu(x)
//   - [DriftDeriv]: d(mu)/d(theta), for sensitivity analysis and
//     gradient-based parameter fitting
//   - [DiffusionDeriv]: d(mu)/d(sigma)
//   - [Curve]: concurrent evaluation over a grid of points
//
// The improper normalization integral is mapped onto (-1, 1) by the
// rational change of variables [RationalMap] and evaluated with the
// adaptive Gauss-Kronrod rule in [quad].
//
// # Example
//
//	v := potentials.NewDoubleWell()
//	mu, err := invdens.Density(0.5, 1.0, 1.0, v.Func())
//
// Callers needing a tuned quadrature inject one:
//
//	e := invdens.NewEvaluator(&quad.GaussKronrod{AbsTol: 1e-12, RelTol: 1e-10})
//	mu, err := e.Density(0.5, 1.0, 1.0, v.Func())
//
// # Thread Safety
//
// Every evaluation recomputes Z from scratch; nothing is cached between
// calls, so concurrent calls with different inputs are safe.
package invdens
