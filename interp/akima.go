// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Akima is a piecewise-cubic Hermite spline whose knot slopes are the
// weighted local-secant estimator of Akima (1970), chosen because it
// suppresses overshoot near sharp changes in curvature without the global
// coupling of a natural cubic spline.
type Akima struct {
	x, y, t []float64 // t holds the fitted slope at each knot
}

// NewAkima fits an Akima spline through the given knots.
func NewAkima(x, y []float64) (*Akima, error) {
	n := len(x)
	if n < 5 || len(y) != n {
		return nil, chk.Err("interp.NewAkima: need >=5 knots with matching x,y lengths; got %d,%d", n, len(y))
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, chk.Err("interp.NewAkima: knots must be strictly increasing")
		}
	}

	// secant slopes, padded by two on each side via linear extrapolation,
	// as prescribed by Akima's original construction.
	m := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		m[i+2] = (y[i+1] - y[i]) / (x[i+1] - x[i])
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	t := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i + 2
		w1 := math.Abs(m[k+1] - m[k])
		w2 := math.Abs(m[k-1] - m[k-2])
		if w1+w2 == 0 {
			t[i] = 0.5 * (m[k-1] + m[k])
		} else {
			t[i] = (w1*m[k-1] + w2*m[k]) / (w1 + w2)
		}
	}

	return &Akima{x: x, y: y, t: t}, nil
}

func (s *Akima) locate(x float64) (int, error) {
	n := len(s.x)
	if x < s.x[0] || x > s.x[n-1] {
		return 0, &DomainError{Caller: "interp.Akima", X: x, Lo: s.x[0], Hi: s.x[n-1]}
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

// hermite returns the cubic Hermite basis functions and their first two
// derivatives (with respect to x) for the segment [x_i, x_i+1] at x.
func (s *Akima) hermite(i int, x float64) (h00, h10, h01, h11, dh00, dh10, dh01, dh11, ddh00, ddh10, ddh01, ddh11 float64) {
	h := s.x[i+1] - s.x[i]
	u := (x - s.x[i]) / h
	u2, u3 := u*u, u*u*u
	h00 = 2*u3 - 3*u2 + 1
	h10 = u3 - 2*u2 + u
	h01 = -2*u3 + 3*u2
	h11 = u3 - u2
	dh00 = (6*u2 - 6*u) / h
	dh10 = (3*u2 - 4*u + 1) / h
	dh01 = (-6*u2 + 6*u) / h
	dh11 = (3*u2 - 2*u) / h
	ddh00 = (12*u - 6) / (h * h)
	ddh10 = (6*u - 4) / (h * h)
	ddh01 = (-12*u + 6) / (h * h)
	ddh11 = (6*u - 2) / (h * h)
	return
}

// At evaluates the spline at x.
func (s *Akima) At(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	h00, h10, h01, h11, _, _, _, _, _, _, _, _ := s.hermite(i, x)
	return h00*s.y[i] + h10*h*s.t[i] + h01*s.y[i+1] + h11*h*s.t[i+1], nil
}

// Deriv1 evaluates the first derivative at x.
func (s *Akima) Deriv1(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	_, _, _, _, dh00, dh10, dh01, dh11, _, _, _, _ := s.hermite(i, x)
	return dh00*s.y[i] + dh10*h*s.t[i] + dh01*s.y[i+1] + dh11*h*s.t[i+1], nil
}

// Deriv2 evaluates the second derivative at x.
func (s *Akima) Deriv2(x float64) (float64, error) {
	i, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	h := s.x[i+1] - s.x[i]
	_, _, _, _, _, _, _, _, ddh00, ddh10, ddh01, ddh11 := s.hermite(i, x)
	return ddh00*s.y[i] + ddh10*h*s.t[i] + ddh01*s.y[i+1] + ddh11*h*s.t[i+1], nil
}
