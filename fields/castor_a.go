// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/interp"
	"github.com/cpmech/gyronimo/metrics"
)

// CastorA is a CASTOR eigenmode vector-potential perturbation field: its
// covariant components are complex Fourier series in the poloidal angle,
//
//	A_k(s,chi,phi,t) = e^{lambda*t + i*nTor*phi} * sum_m Ahat_{k,m}(s) e^{i*m*chi}
//
// each Ahat_{k,m} a complex interp.Fourier harmonic amplitude fitted to a
// CASTOR eigenmode file. B_cas = curl(A_cas) relates it to the perturbed
// magnetic field (adimensional equation 2.18 in W. Kerner et al., J. Comput.
// Phys. 142, 271 (1998)).
type CastorA struct {
	Base
	eigenvalue complex128
	nTor       float64
	a1, a2, a3 *interp.Fourier
}

// NewCastorA builds a CastorA field over morphism (the HELENA-style flux
// coordinates, s, chi, phi, that a CASTOR run shares with its underlying
// equilibrium), normalised by mFactor and by the Alfven time tFactor =
// R0/vAlfven. a1Real/a1Imag, a2Real/a2Imag, a3Real/a3Imag are the three
// covariant components' complex poloidal Fourier coefficients as CASTOR
// writes them: one (real,imag) pair per entry of m, each flattened to
// len(m)*len(sgrid) samples the way interp.NewFourierHarmonics expects.
// eigenvalue is CASTOR's complex growth-rate/frequency and nTor the
// (real-valued) toroidal mode number.
//
// At construction the field is built twice: once with the coefficients as
// given, to sweep every flux surface in sgrid over a poloidal cross section
// (phi=0, t=0) and locate the magnitude's maximum over that sweep, and once
// more with every coefficient scaled by the reciprocal of that maximum, so
// the returned field's poloidal cross-section magnitude peaks at unity
// (eigenmode_castor_a.cc's norm_factor_ convention).
func NewCastorA(mFactor, tFactor float64, morphism metrics.Morphism, sgrid []float64, m []int,
	a1Real, a1Imag, a2Real, a2Imag, a3Real, a3Imag []float64,
	eigenvalue complex128, nTor float64, factory interp.Factory1D) (*CastorA, error) {
	raw, err := newCastorA(mFactor, tFactor, morphism, sgrid, m,
		a1Real, a1Imag, a2Real, a2Imag, a3Real, a3Imag, eigenvalue, nTor, factory)
	if err != nil {
		return nil, err
	}
	norm := 1.0 / maxPoloidalMagnitude(raw, sgrid, m)
	scale := func(d []float64) []float64 {
		out := make([]float64, len(d))
		for i, v := range d {
			out[i] = v * norm
		}
		return out
	}
	return newCastorA(mFactor, tFactor, morphism, sgrid, m,
		scale(a1Real), scale(a1Imag), scale(a2Real), scale(a2Imag), scale(a3Real), scale(a3Imag),
		eigenvalue, nTor, factory)
}

func newCastorA(mFactor, tFactor float64, morphism metrics.Morphism, sgrid []float64, m []int,
	a1Real, a1Imag, a2Real, a2Imag, a3Real, a3Imag []float64,
	eigenvalue complex128, nTor float64, factory interp.Factory1D) (*CastorA, error) {
	base, err := NewBase(mFactor, tFactor, morphism)
	if err != nil {
		return nil, err
	}
	a1, err := interp.NewFourierHarmonics(sgrid, a1Real, a1Imag, m, factory)
	if err != nil {
		return nil, err
	}
	a2, err := interp.NewFourierHarmonics(sgrid, a2Real, a2Imag, m, factory)
	if err != nil {
		return nil, err
	}
	a3, err := interp.NewFourierHarmonics(sgrid, a3Real, a3Imag, m, factory)
	if err != nil {
		return nil, err
	}
	return &CastorA{Base: base, eigenvalue: eigenvalue, nTor: nTor, a1: a1, a2: a2, a3: a3}, nil
}

// maxPoloidalMagnitude sweeps every flux surface in sgrid over a poloidal
// cross section (phi=0, t=0), sampling chi at a resolution proportional to
// the highest harmonic in m, and returns the overall maximum magnitude.
func maxPoloidalMagnitude(f FieldC0, sgrid []float64, m []int) float64 {
	highest := 0
	for _, mi := range m {
		a := mi
		if a < 0 {
			a = -a
		}
		if a > highest {
			highest = a
		}
	}
	if highest == 0 {
		highest = 1
	}
	n := 8 * highest
	deltaChi := 2 * math.Pi / float64(n)
	max := 0.0
	for _, s := range sgrid {
		for i := 0; i < n; i++ {
			chi := float64(i) * deltaChi
			mag := Magnitude(f, core.NewIR3(s, chi, 0), 0)
			if mag > max {
				max = mag
			}
		}
	}
	return max
}

// phaseFactor returns e^{lambda*t + i*nTor*phi}.
func (f *CastorA) phaseFactor(phi, time float64) complex128 {
	return cmplx.Exp(f.eigenvalue*complex(time, 0) + complex(0, f.nTor*phi))
}

// Covariant returns the covariant components of the perturbation at
// (s, chi, phi) and time.
func (f *CastorA) Covariant(position core.IR3, time float64) core.IR3 {
	s, chi, phi := position[core.U], position[core.V], position[core.W]
	factor := f.phaseFactor(phi, time)
	a1, _ := f.a1.At(s, chi)
	a2, _ := f.a2.At(s, chi)
	a3, _ := f.a3.At(s, chi)
	return core.NewIR3(real(factor*a1), real(factor*a2), real(factor*a3))
}

// Contravariant returns the contravariant components at (s, chi, phi) and
// time, obtained from Covariant through the field's own connected metric.
func (f *CastorA) Contravariant(position core.IR3, time float64) core.IR3 {
	return f.ConnectedMetric().ToContravariant(f.Covariant(position, time), position)
}
