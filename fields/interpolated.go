// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/interp"
	"github.com/cpmech/gyronimo/metrics"
)

// Interpolated is a tokamak equilibrium field in flux coordinates
// (s, chi, phi): only the poloidal and toroidal contravariant components
// are non-zero, each a 2D scalar interpolant over the normalised radial
// flux label s and the poloidal angle chi. bChi/bPhi is a bicubic patch
// for a HELENA-style equilibrium (see NewInterpolated) or a real cosine
// Fourier composite for a VMEC-style one (see NewVMEC); both satisfy
// interp.Interpolator2D, so the rest of this type is agnostic to which.
type Interpolated struct {
	Base
	chart      *metrics.Interpolated
	bChi, bPhi interp.Interpolator2D
}

// NewInterpolated builds a HELENA-style Interpolated field over chart,
// normalised by mFactor (typically the on-axis field magnitude), with bChi
// and bPhi the bicubic interpolants of the poloidal and toroidal
// contravariant components.
func NewInterpolated(mFactor float64, chart *metrics.Interpolated, bChi, bPhi *interp.Bicubic) (*Interpolated, error) {
	return newInterpolated(mFactor, chart, bChi, bPhi)
}

// NewVMEC builds the axisymmetric (toroidal mode n=0) slice of a VMEC
// equilibrium field over chart (a metrics.Interpolated wrapping a
// metrics.NewVMECPoloidalMap): the two nonzero contravariant components,
// B^chi and B^phi, are given as VMEC-style cosine Fourier series in the
// poloidal angle (bsupumnc/bsupvmnc in VMEC's own naming) with mode numbers
// bChiM/bPhiM and per-mode radial amplitudes bChiAmp/bPhiAmp sampled over
// sgrid, reusing the same real-cosine-series construction
// metrics.NewVMECPoloidalMap uses for R.
func NewVMEC(mFactor float64, chart *metrics.Interpolated, sgrid []float64, bChiM []int, bChiAmp [][]float64, bPhiM []int, bPhiAmp [][]float64, factory interp.Factory1D) (*Interpolated, error) {
	bChi, err := interp.NewCosineFourier(sgrid, bChiM, bChiAmp, factory)
	if err != nil {
		return nil, chk.Err("fields.NewVMEC: B^chi: %v", err)
	}
	bPhi, err := interp.NewCosineFourier(sgrid, bPhiM, bPhiAmp, factory)
	if err != nil {
		return nil, chk.Err("fields.NewVMEC: B^phi: %v", err)
	}
	return newInterpolated(mFactor, chart, bChi, bPhi)
}

func newInterpolated(mFactor float64, chart *metrics.Interpolated, bChi, bPhi interp.Interpolator2D) (*Interpolated, error) {
	base, err := NewBase(mFactor, 1.0, chart)
	if err != nil {
		return nil, err
	}
	return &Interpolated{Base: base, chart: chart, bChi: bChi, bPhi: bPhi}, nil
}

// Contravariant returns the contravariant components {0, B^chi, B^phi} at
// (s, chi, phi).
func (f *Interpolated) Contravariant(position core.IR3, time float64) core.IR3 {
	s, chi := position[core.U], position[core.V]
	bChi, _ := f.bChi.At(s, chi)
	bPhi, _ := f.bPhi.At(s, chi)
	return core.NewIR3(0, bChi, bPhi)
}

// DelContravariant returns the partial derivatives of the contravariant
// components with respect to (s, chi, phi); the field has no toroidal
// dependence, so the third column is zero.
func (f *Interpolated) DelContravariant(position core.IR3, time float64) core.DIR3 {
	s, chi := position[core.U], position[core.V]
	chiU, _ := f.bChi.DerivU(s, chi)
	chiV, _ := f.bChi.DerivV(s, chi)
	phiU, _ := f.bPhi.DerivU(s, chi)
	phiV, _ := f.bPhi.DerivV(s, chi)
	return core.NewDIR3(
		0, 0, 0,
		chiU, chiV, 0,
		phiU, phiV, 0)
}

// PartialTContravariant is identically zero: an equilibrium field has no
// explicit time dependence.
func (f *Interpolated) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	return core.IR3{}
}
