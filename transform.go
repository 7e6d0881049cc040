package invdens

// RationalMap is the bijection from the open interval (-1, 1) onto the
// whole real line
//
//	t(y) = y / (1 - y²)
//
// It rewrites an integral over R as an integral over (-1, 1) so that a
// finite-interval quadrature can evaluate it:
//
//	∫_R f(x) dx = ∫_{-1}^{1} f(t(y)) · t'(y) dy
//
// The Jacobian factor [RationalMapDeriv] blows up at y = ±1. The
// Gauss-Kronrod rule in quad only samples interior nodes, so the
// integrable endpoint singularity is never evaluated directly.
func RationalMap(y float64) float64 {
	return y / (1 - y*y)
}

// RationalMapDeriv is the derivative of RationalMap,
//
//	t'(y) = (1 + y²) / (1 - y²)²
func RationalMapDeriv(y float64) float64 {
	d := 1 - y*y
	return (1 + y*y) / (d * d)
}
