package invdens

import (
	"context"
	"sync"
)

// Curve evaluates the density at each point of xs concurrently with
// the default backend. The returned slice is index-aligned with xs.
func Curve(ctx context.Context, xs []float64, theta, sigma float64, v Potential) ([]float64, error) {
	return NewEvaluator(nil).Curve(ctx, xs, theta, sigma, v)
}

// Curve evaluates the density at each point of xs. Evaluations are
// independent, so the work fans out one goroutine per point; the first
// error encountered wins.
func (e *Evaluator) Curve(ctx context.Context, xs []float64, theta, sigma float64, v Potential) ([]float64, error) {
	if err := validateParams(theta, sigma); err != nil {
		return nil, err
	}

	values := make([]float64, len(xs))
	errs := make([]error, len(xs))

	var wg sync.WaitGroup
	for i := range xs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			values[idx], errs[idx] = e.Density(xs[idx], theta, sigma, v)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// GradientCurve evaluates both parameter derivatives at each point of
// xs concurrently. Both returned slices are index-aligned with xs.
func (e *Evaluator) GradientCurve(ctx context.Context, xs []float64, theta, sigma float64, v Potential) (drift, diffusion []float64, err error) {
	if err := validateParams(theta, sigma); err != nil {
		return nil, nil, err
	}

	drift = make([]float64, len(xs))
	diffusion = make([]float64, len(xs))
	errs := make([]error, len(xs))

	var wg sync.WaitGroup
	for i := range xs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			drift[idx], diffusion[idx], errs[idx] = e.Gradient(xs[idx], theta, sigma, v)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return drift, diffusion, nil
}
