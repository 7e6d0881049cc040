package invdens_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/san-kum/invdens"
	"github.com/san-kum/invdens/potentials"
	"github.com/san-kum/invdens/quad"
)

// tightEvaluator keeps quadrature noise well below the finite
// difference step so the cross-checks compare derivative signal, not
// integration error.
func tightEvaluator() *invdens.Evaluator {
	return invdens.NewEvaluator(&quad.GaussKronrod{
		AbsTol:       1e-13,
		RelTol:       1e-12,
		MaxIntervals: 5000,
	})
}

func TestDriftDerivMatchesFiniteDifference(t *testing.T) {
	g := NewWithT(t)

	e := tightEvaluator()
	pot := potentials.NewDoubleWell().Func()
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}

	for x := -3.0; x <= 3.0; x += 0.5 {
		got, err := e.DriftDeriv(x, 1, 1, pot)
		g.Expect(err).NotTo(HaveOccurred())

		want := fd.Derivative(func(theta float64) float64 {
			mu, derr := e.Density(x, theta, 1, pot)
			g.Expect(derr).NotTo(HaveOccurred())
			return mu
		}, 1.0, settings)

		g.Expect(got).To(BeNumerically("~", want, 1e-6), "x=%v", x)
	}
}

func TestDiffusionDerivMatchesFiniteDifference(t *testing.T) {
	g := NewWithT(t)

	e := tightEvaluator()
	pot := potentials.NewDoubleWell().Func()
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}

	for x := -3.0; x <= 3.0; x += 0.5 {
		got, err := e.DiffusionDeriv(x, 1, 1, pot)
		g.Expect(err).NotTo(HaveOccurred())

		want := fd.Derivative(func(sigma float64) float64 {
			mu, derr := e.Density(x, 1, sigma, pot)
			g.Expect(derr).NotTo(HaveOccurred())
			return mu
		}, 1.0, settings)

		g.Expect(got).To(BeNumerically("~", want, 1e-6), "x=%v", x)
	}
}

func TestDerivsMatchGaussianClosedForm(t *testing.T) {
	// For V(x)=x²/2 the density is mu = sqrt(theta/(2·pi·sigma))·
	// exp(-theta·x²/(2·sigma)), so
	//
	//	d(mu)/d(theta) = mu·(1/(2·theta) - x²/(2·sigma))
	//	d(mu)/d(sigma) = mu·(theta·x²/(2·sigma²) - 1/(2·sigma))
	g := NewWithT(t)

	e := tightEvaluator()
	pot := potentials.NewHarmonic().Func()

	for _, x := range []float64{0, 0.5, 1, 2} {
		mu, err := e.Density(x, 1, 1, pot)
		g.Expect(err).NotTo(HaveOccurred())

		dTheta, err := e.DriftDeriv(x, 1, 1, pot)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(dTheta).To(BeNumerically("~", mu*(0.5-x*x/2), 1e-8), "x=%v", x)

		dSigma, err := e.DiffusionDeriv(x, 1, 1, pot)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(dSigma).To(BeNumerically("~", mu*(x*x/2-0.5), 1e-8), "x=%v", x)
	}
}

func TestGradientMatchesStandaloneDerivs(t *testing.T) {
	g := NewWithT(t)

	e := tightEvaluator()
	pot := potentials.NewDoubleWell().Func()

	for _, x := range []float64{-2, -0.5, 0, 1, 2.5} {
		drift, diffusion, err := e.Gradient(x, 1.2, 0.7, pot)
		g.Expect(err).NotTo(HaveOccurred())

		wantDrift, err := e.DriftDeriv(x, 1.2, 0.7, pot)
		g.Expect(err).NotTo(HaveOccurred())
		wantDiffusion, err := e.DiffusionDeriv(x, 1.2, 0.7, pot)
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(drift).To(Equal(wantDrift), "x=%v", x)
		g.Expect(diffusion).To(Equal(wantDiffusion), "x=%v", x)
	}
}
