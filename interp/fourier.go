// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// Factory1D builds an Interpolator1D from samples (x[i], y[i]); it abstracts
// over the concrete choice of Cubic, Akima or Steffen so Fourier does not
// depend on which one is used for each harmonic.
type Factory1D func(x, y []float64) (Interpolator1D, error)

// Fourier represents a complex-valued field over the (u,v) plane as
//
//	f(u,v) = sum_{p} A_p(u) * exp(i*m_p*v)
//
// where each harmonic amplitude A_p(u) is a complex function of u built by
// interpolating sampled real/imaginary data with the supplied factory. It is
// not an Interpolator2D itself since it returns complex values.
type Fourier struct {
	m     []int
	areal []Interpolator1D
	aimag []Interpolator1D
}

// NewFourier builds a Fourier representation with consecutive harmonics
// m = mi..mf. dreal and dimag must each hold len(m)*len(u) samples, harmonic
// p's block occupying dreal[p*len(u):(p+1)*len(u)].
func NewFourier(u []float64, dreal, dimag []float64, mi, mf int, factory Factory1D) (*Fourier, error) {
	m := make([]int, mf-mi+1)
	for p := range m {
		m[p] = mi + p
	}
	return newFourier(u, dreal, dimag, m, factory)
}

// NewFourierHarmonics builds a Fourier representation over an explicit,
// possibly non-contiguous, list of harmonics m.
func NewFourierHarmonics(u []float64, dreal, dimag []float64, m []int, factory Factory1D) (*Fourier, error) {
	return newFourier(u, dreal, dimag, m, factory)
}

func newFourier(u []float64, dreal, dimag []float64, m []int, factory Factory1D) (*Fourier, error) {
	if len(dreal) != len(dimag) {
		return nil, chk.Err("interp.NewFourier: mismatched dreal and dimag lengths")
	}
	if len(dreal) != len(u)*len(m) {
		return nil, chk.Err("interp.NewFourier: dreal/dimag must hold len(m)*len(u)=%d samples, got %d", len(u)*len(m), len(dreal))
	}
	f := &Fourier{m: append([]int(nil), m...)}
	n := len(u)
	for p := range m {
		block := dreal[p*n : (p+1)*n]
		ar, err := factory(u, block)
		if err != nil {
			return nil, chk.Err("interp.NewFourier: harmonic %d real part: %v", m[p], err)
		}
		block = dimag[p*n : (p+1)*n]
		ai, err := factory(u, block)
		if err != nil {
			return nil, chk.Err("interp.NewFourier: harmonic %d imag part: %v", m[p], err)
		}
		// each harmonic amplitude is queried twice per (u,v) evaluation (once
		// for the value, once when the caller also wants a u-derivative at the
		// same u), so a depth-1 cache per harmonic pays for itself immediately.
		f.areal = append(f.areal, NewCached1D(ar))
		f.aimag = append(f.aimag, NewCached1D(ai))
	}
	return f, nil
}

// At evaluates f(u,v).
func (f *Fourier) At(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].At(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].At(u)
		if err != nil {
			return 0, err
		}
		sum += complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}

// PartialU evaluates ∂f/∂u.
func (f *Fourier) PartialU(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].Deriv1(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].Deriv1(u)
		if err != nil {
			return 0, err
		}
		sum += complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}

// PartialV evaluates ∂f/∂v.
func (f *Fourier) PartialV(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].At(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].At(u)
		if err != nil {
			return 0, err
		}
		sum += complex(0, float64(m)) * complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}

// Partial2UU evaluates ∂²f/∂u².
func (f *Fourier) Partial2UU(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].Deriv2(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].Deriv2(u)
		if err != nil {
			return 0, err
		}
		sum += complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}

// Partial2UV evaluates ∂²f/∂u∂v.
func (f *Fourier) Partial2UV(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].Deriv1(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].Deriv1(u)
		if err != nil {
			return 0, err
		}
		sum += complex(0, float64(m)) * complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}

// Partial2VV evaluates ∂²f/∂v².
func (f *Fourier) Partial2VV(u, v float64) (complex128, error) {
	var sum complex128
	for p, m := range f.m {
		re, err := f.areal[p].At(u)
		if err != nil {
			return 0, err
		}
		im, err := f.aimag[p].At(u)
		if err != nil {
			return 0, err
		}
		sum += complex(-float64(m*m), 0) * complex(re, im) * cmplx.Exp(complex(0, float64(m)*v))
	}
	return sum, nil
}
