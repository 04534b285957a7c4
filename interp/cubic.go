// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/chk"

// Cubic is a natural cubic spline: twice-continuously differentiable,
// interpolating (x_i, y_i) exactly, with the second derivative set to zero at
// both ends. A Cubic built by NewPeriodicCubic uses the same natural end
// conditions; its first and second derivatives are not matched across the
// seam.
type Cubic struct {
	x, y   []float64
	m      []float64 // second derivatives at the knots
	period bool
}

// NewCubic fits a natural cubic spline through the given knots.
func NewCubic(x, y []float64) (*Cubic, error) {
	return newCubic(x, y, false)
}

// NewPeriodicCubic fits a cubic spline through knots whose end values agree;
// the caller must supply y[0] == y[len(y)-1]. Only that equality is checked:
// the fit itself has natural end conditions, as NewCubic's does.
func NewPeriodicCubic(x, y []float64) (*Cubic, error) {
	return newCubic(x, y, true)
}

func newCubic(x, y []float64, periodic bool) (*Cubic, error) {
	n := len(x)
	if n < 3 || len(y) != n {
		return nil, chk.Err("interp.NewCubic: need >=3 knots with matching x,y lengths; got %d,%d", n, len(y))
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, chk.Err("interp.NewCubic: knots must be strictly increasing (x[%d]=%v <= x[%d]=%v)", i, x[i], i-1, x[i-1])
		}
	}
	if periodic && y[0] != y[n-1] {
		return nil, chk.Err("interp.NewPeriodicCubic: y[0] must equal y[n-1] for a periodic fit")
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	m := solveSplineSystem(x, y, h, periodic)
	return &Cubic{x: x, y: y, m: m, period: periodic}, nil
}

// solveSplineSystem solves the standard not-a-knot-free tri-diagonal system
// for natural-spline second derivatives by the Thomas algorithm; see
// Burden & Faires, "Numerical Analysis", the algorithm every textbook cubic
// spline derivation reduces to.
func solveSplineSystem(x, y, h []float64, periodic bool) []float64 {
	n := len(x)
	a := make([]float64, n) // sub-diagonal
	b := make([]float64, n) // diagonal
	c := make([]float64, n) // super-diagonal
	d := make([]float64, n) // rhs

	b[0], b[n-1] = 1, 1
	for i := 1; i < n-1; i++ {
		a[i] = h[i-1]
		b[i] = 2 * (h[i-1] + h[i])
		c[i] = h[i]
		d[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}

	// Thomas algorithm (forward elimination + back substitution).
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = c[0] / b[0]
	dp[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		denom := b[i] - a[i]*cp[i-1]
		if i < n-1 {
			cp[i] = c[i] / denom
		}
		dp[i] = (d[i] - a[i]*dp[i-1]) / denom
	}
	m := make([]float64, n)
	m[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		m[i] = dp[i] - cp[i]*m[i+1]
	}
	return m
}

func (s *Cubic) locate(x float64) (int, error) {
	n := len(s.x)
	if x < s.x[0] || x > s.x[n-1] {
		return 0, &DomainError{Caller: "interp.Cubic", X: x, Lo: s.x[0], Hi: s.x[n-1]}
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.x[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// At evaluates the spline at x.
func (s *Cubic) At(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	a := (s.x[i+1] - x) / h
	b := (x - s.x[i]) / h
	return a*s.y[i] + b*s.y[i+1] +
		((a*a*a-a)*s.m[i]+(b*b*b-b)*s.m[i+1])*(h*h)/6.0, nil
}

// Deriv1 evaluates the spline's first derivative at x.
func (s *Cubic) Deriv1(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	a := (s.x[i+1] - x) / h
	b := (x - s.x[i]) / h
	return (s.y[i+1]-s.y[i])/h -
		(3*a*a-1)*h*s.m[i]/6.0 + (3*b*b-1)*h*s.m[i+1]/6.0, nil
}

// Deriv2 evaluates the spline's second derivative at x.
func (s *Cubic) Deriv2(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	a := (s.x[i+1] - x) / h
	b := (x - s.x[i]) / h
	return a*s.m[i] + b*s.m[i+1], nil
}
