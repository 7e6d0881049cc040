// Package potentials provides named scalar potentials for the density
// evaluators. Each potential carries its parameters and exposes a
// Func adapter producing an [invdens.Potential].
package potentials

import "github.com/san-kum/invdens"

// Harmonic is the quadratic well V(x) = K·x²/2. Its invariant density
// is the centered Gaussian with variance sigma/(theta·K).
type Harmonic struct {
	K float64
}

func NewHarmonic() *Harmonic { return &Harmonic{1.0} }

func (h *Harmonic) Eval(x float64) float64 { return 0.5 * h.K * x * x }

func (h *Harmonic) Func() invdens.Potential { return h.Eval }

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"K": h.K}
}

func (h *Harmonic) SetParam(n string, v float64) error {
	switch n {
	case "K":
		h.K = v
	}
	return nil
}

// DoubleWell is the bistable quartic V(x) = A·x⁴/4 - B·x²/2 with
// minima at ±√(B/A). The invariant density is bimodal for small
// diffusion.
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell { return &DoubleWell{1.0, 1.0} }

func (d *DoubleWell) Eval(x float64) float64 {
	x2 := x * x
	return 0.25*d.A*x2*x2 - 0.5*d.B*x2
}

func (d *DoubleWell) Func() invdens.Potential { return d.Eval }

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B}
}

func (d *DoubleWell) SetParam(n string, v float64) error {
	switch n {
	case "A":
		d.A = v
	case "B":
		d.B = v
	}
	return nil
}

// Quartic is the heavy-walled well V(x) = C·x⁴/4, producing a density
// with lighter tails than any Gaussian.
type Quartic struct {
	C float64
}

func NewQuartic() *Quartic { return &Quartic{1.0} }

func (q *Quartic) Eval(x float64) float64 {
	x2 := x * x
	return 0.25 * q.C * x2 * x2
}

func (q *Quartic) Func() invdens.Potential { return q.Eval }

func (q *Quartic) GetParams() map[string]float64 {
	return map[string]float64{"C": q.C}
}

func (q *Quartic) SetParam(n string, v float64) error {
	switch n {
	case "C":
		q.C = v
	}
	return nil
}
