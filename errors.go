package invdens

import "errors"

// Domain errors for density evaluation.
var (
	// ErrInvalidParam indicates a drift or diffusion coefficient that is
	// not finite and strictly positive.
	ErrInvalidParam = errors.New("invdens: drift and diffusion coefficients must be finite and positive")

	// ErrDivergence indicates a normalization quadrature that failed to
	// converge, e.g. because the potential does not confine the density.
	ErrDivergence = errors.New("invdens: normalization integral did not converge")

	// ErrDegenerate indicates a normalization constant that converged to
	// a non-positive or non-finite value.
	ErrDegenerate = errors.New("invdens: normalization constant is not strictly positive")
)
