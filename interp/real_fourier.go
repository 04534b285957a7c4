// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/chk"

// RealFourier reconstructs a real-valued cosine or sine series in one angle
// from Fourier's complex exp(i*m*v) composite: each supplied non-negative
// harmonic m is mirrored to the +-m pair of complex amplitudes that
// reproduce cos(m*v) or sin(m*v) exactly (the imaginary parts of the +m and
// -m terms cancel by construction), the way a real VMEC-style Fourier
// series (rmnc/zmns, one amplitude per non-negative m) is represented over
// the library's single complex Fourier composite. Satisfies Interpolator2D,
// so it can stand in for a Bicubic surface anywhere one is expected.
type RealFourier struct {
	f *Fourier
}

// NewCosineFourier builds f(u,v) = sum_i amp[i](u)*cos(m[i]*v), fitting each
// amp[i] (sampled at u=sgrid) with factory.
func NewCosineFourier(sgrid []float64, m []int, amp [][]float64, factory Factory1D) (*RealFourier, error) {
	mm, dreal, dimag, err := mirrorCosine(sgrid, m, amp)
	if err != nil {
		return nil, chk.Err("interp.NewCosineFourier: %v", err)
	}
	f, err := NewFourierHarmonics(sgrid, dreal, dimag, mm, factory)
	if err != nil {
		return nil, chk.Err("interp.NewCosineFourier: %v", err)
	}
	return &RealFourier{f: f}, nil
}

// NewSineFourier builds f(u,v) = sum_i amp[i](u)*sin(m[i]*v), the sine
// counterpart of NewCosineFourier.
func NewSineFourier(sgrid []float64, m []int, amp [][]float64, factory Factory1D) (*RealFourier, error) {
	mm, dreal, dimag, err := mirrorSine(sgrid, m, amp)
	if err != nil {
		return nil, chk.Err("interp.NewSineFourier: %v", err)
	}
	f, err := NewFourierHarmonics(sgrid, dreal, dimag, mm, factory)
	if err != nil {
		return nil, chk.Err("interp.NewSineFourier: %v", err)
	}
	return &RealFourier{f: f}, nil
}

// mirrorCosine expands non-negative harmonics m with amplitude amp[i](u)
// into the +-m complex-amplitude pair (amp[i]/2, 0) that reconstructs
// amp[i](u)*cos(m*v) once summed through Fourier's exp(i*m*v) composite.
func mirrorCosine(sgrid []float64, m []int, amp [][]float64) (mm []int, dreal, dimag []float64, err error) {
	if len(m) != len(amp) {
		return nil, nil, nil, chk.Err("mismatched m (%d) and amp (%d) lengths", len(m), len(amp))
	}
	n := len(sgrid)
	for i, mi := range m {
		if len(amp[i]) != n {
			return nil, nil, nil, chk.Err("amp[%d] must hold %d samples, got %d", i, n, len(amp[i]))
		}
		if mi == 0 {
			mm = append(mm, 0)
			dreal = append(dreal, amp[i]...)
			dimag = append(dimag, make([]float64, n)...)
			continue
		}
		half := make([]float64, n)
		for k, v := range amp[i] {
			half[k] = v / 2
		}
		mm = append(mm, mi, -mi)
		dreal = append(dreal, half...)
		dreal = append(dreal, half...)
		dimag = append(dimag, make([]float64, 2*n)...)
	}
	return mm, dreal, dimag, nil
}

// mirrorSine is mirrorCosine's sine counterpart: the +-m complex-amplitude
// pair (0, -+amp[i](u)/2) reconstructs amp[i](u)*sin(m*v).
func mirrorSine(sgrid []float64, m []int, amp [][]float64) (mm []int, dreal, dimag []float64, err error) {
	if len(m) != len(amp) {
		return nil, nil, nil, chk.Err("mismatched m (%d) and amp (%d) lengths", len(m), len(amp))
	}
	n := len(sgrid)
	for i, mi := range m {
		if len(amp[i]) != n {
			return nil, nil, nil, chk.Err("amp[%d] must hold %d samples, got %d", i, n, len(amp[i]))
		}
		if mi == 0 {
			mm = append(mm, 0)
			dreal = append(dreal, make([]float64, n)...)
			dimag = append(dimag, make([]float64, n)...)
			continue
		}
		halfPos, halfNeg := make([]float64, n), make([]float64, n)
		for k, v := range amp[i] {
			halfPos[k] = -v / 2
			halfNeg[k] = v / 2
		}
		mm = append(mm, mi, -mi)
		dreal = append(dreal, make([]float64, 2*n)...)
		dimag = append(dimag, halfPos...)
		dimag = append(dimag, halfNeg...)
	}
	return mm, dreal, dimag, nil
}

func (r *RealFourier) At(u, v float64) (float64, error) {
	c, err := r.f.At(u, v)
	return real(c), err
}

func (r *RealFourier) DerivU(u, v float64) (float64, error) {
	c, err := r.f.PartialU(u, v)
	return real(c), err
}

func (r *RealFourier) DerivV(u, v float64) (float64, error) {
	c, err := r.f.PartialV(u, v)
	return real(c), err
}

func (r *RealFourier) DerivUU(u, v float64) (float64, error) {
	c, err := r.f.Partial2UU(u, v)
	return real(c), err
}

func (r *RealFourier) DerivUV(u, v float64) (float64, error) {
	c, err := r.f.Partial2UV(u, v)
	return real(c), err
}

func (r *RealFourier) DerivVV(u, v float64) (float64, error) {
	c, err := r.f.Partial2VV(u, v)
	return real(c), err
}
