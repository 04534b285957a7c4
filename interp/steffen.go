// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/chk"

// Steffen is a piecewise-cubic Hermite spline whose knot slopes follow
// Steffen (1990): the unique monotonicity-preserving choice that needs no
// tunable parameter, built from the same Hermite basis as Akima but with a
// different local-slope rule.
type Steffen struct {
	x, y, t []float64
}

// NewSteffen fits a Steffen spline through the given knots.
func NewSteffen(x, y []float64) (*Steffen, error) {
	n := len(x)
	if n < 3 || len(y) != n {
		return nil, chk.Err("interp.NewSteffen: need >=3 knots with matching x,y lengths; got %d,%d", n, len(y))
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, chk.Err("interp.NewSteffen: knots must be strictly increasing")
		}
	}

	h := make([]float64, n-1)
	s := make([]float64, n-1) // secant slopes
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		s[i] = (y[i+1] - y[i]) / h[i]
	}

	t := make([]float64, n)
	t[0] = s[0]
	t[n-1] = s[n-2]
	for i := 1; i < n-1; i++ {
		t[i] = steffenSlope(s[i-1], s[i], h[i-1], h[i])
	}

	return &Steffen{x: x, y: y, t: t}, nil
}

// steffenSlope implements the weighted-harmonic-mean rule that guarantees
// the interpolant never overshoots the data between two knots.
func steffenSlope(sLeft, sRight, hLeft, hRight float64) float64 {
	if sLeft*sRight <= 0 {
		return 0
	}
	pSlope := (hLeft*sRight + hRight*sLeft) / (hLeft + hRight)
	bound := 2 * minAbs(sLeft, sRight)
	if absf(pSlope) > bound {
		if pSlope > 0 {
			return bound
		}
		return -bound
	}
	return pSlope
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func minAbs(a, b float64) float64 {
	aa, ab := absf(a), absf(b)
	if aa < ab {
		return aa
	}
	return ab
}

func (s *Steffen) locate(x float64) (int, error) {
	n := len(s.x)
	if x < s.x[0] || x > s.x[n-1] {
		return 0, &DomainError{Caller: "interp.Steffen", X: x, Lo: s.x[0], Hi: s.x[n-1]}
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
	if lo == n-1 {
		lo = n - 2
	}
	return lo, nil
}

// At evaluates the spline at x.
func (s *Steffen) At(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	uu := (x - s.x[i]) / h
	h00 := 2*uu*uu*uu - 3*uu*uu + 1
	h10 := uu*uu*uu - 2*uu*uu + uu
	h01 := -2*uu*uu*uu + 3*uu*uu
	h11 := uu*uu*uu - uu*uu
	return h00*s.y[i] + h10*h*s.t[i] + h01*s.y[i+1] + h11*h*s.t[i+1], nil
}

// Deriv1 evaluates the first derivative at x.
func (s *Steffen) Deriv1(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	uu := (x - s.x[i]) / h
	dh00 := (6*uu*uu - 6*uu) / h
	dh10 := (3*uu*uu - 4*uu + 1) / h
	dh01 := (-6*uu*uu + 6*uu) / h
	dh11 := (3*uu*uu - 2*uu) / h
	return dh00*s.y[i] + dh10*h*s.t[i] + dh01*s.y[i+1] + dh11*h*s.t[i+1], nil
}

// Deriv2 evaluates the second derivative at x.
func (s *Steffen) Deriv2(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	uu := (x - s.x[i]) / h
	ddh00 := (12*uu - 6) / (h * h)
	ddh10 := (6*uu - 4) / (h * h)
	ddh01 := (-12*uu + 6) / (h * h)
	ddh11 := (6*uu - 2) / (h * h)
	return ddh00*s.y[i] + ddh10*h*s.t[i] + ddh01*s.y[i+1] + ddh11*h*s.t[i+1], nil
}
