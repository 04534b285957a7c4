// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/interp"
)

// PoloidalMap supplies a tabulated tokamak equilibrium's major-radius and
// vertical-elevation cartesian coordinates as a function of a normalised
// radial flux label s and a poloidal angle chi: a bicubic grid (a HELENA
// equilibrium file's R(s,chi)/Z(s,chi) mapping) or a Fourier-in-angle
// composite (a VMEC equilibrium's rmnc/zmns poloidal harmonics, axisymmetric
// slice) both qualify, via NewBicubicPoloidalMap and NewVMECPoloidalMap.
type PoloidalMap interface {
	R(s, chi float64) (float64, error)
	Z(s, chi float64) (float64, error)
	RDerivs(s, chi float64) (r, rs, rchi, rss, rschi, rchichi float64, err error)
	ZDerivs(s, chi float64) (z, zs, zchi, zss, zschi, zchichi float64, err error)
}

// genericPoloidalMap adapts any pair of interp.Interpolator2D surfaces
// (a bicubic patch, a real Fourier-in-angle composite, or either wrapped in
// interp.Cached2D) into a PoloidalMap.
type genericPoloidalMap struct {
	r, z interp.Interpolator2D
}

// NewBicubicPoloidalMap builds a PoloidalMap from two interp.Bicubic
// surfaces giving R(s,chi) and Z(s,chi). Each surface is wrapped in an
// interp.Cached2D: Del and DDel both re-derive R (or Z) and its first
// derivatives at the same (s,chi) already evaluated by Transform/Inverse
// within the same step, so the depth-1 cache turns a repeated patch locate
// into a hit.
func NewBicubicPoloidalMap(r, z *interp.Bicubic) PoloidalMap {
	return genericPoloidalMap{r: interp.NewCached2D(r), z: interp.NewCached2D(z)}
}

// NewVMECPoloidalMap builds a PoloidalMap from VMEC-style poloidal Fourier
// coefficients: for each non-negative poloidal mode number m[i], rc[i] and
// zs[i] hold R's cosine and Z's sine amplitude sampled over sgrid, so that
//
//	R(s,theta) = sum_i rc[i](s)*cos(m[i]*theta)
//	Z(s,theta) = sum_i zs[i](s)*sin(m[i]*theta)
//
// matching the rmnc/zmns arrays a VMEC wout file stores per flux surface.
// Only the axisymmetric (toroidal mode n=0) slice is represented: phi never
// enters R or Z, exactly as it doesn't in the surrounding Interpolated
// morphism's own (s,chi,phi) split. Each surface is wrapped in
// interp.Cached2D for the same reason as NewBicubicPoloidalMap.
func NewVMECPoloidalMap(sgrid []float64, m []int, rc, zs [][]float64, factory interp.Factory1D) (PoloidalMap, error) {
	r, err := interp.NewCosineFourier(sgrid, m, rc, factory)
	if err != nil {
		return nil, chk.Err("metrics.NewVMECPoloidalMap: R: %v", err)
	}
	z, err := interp.NewSineFourier(sgrid, m, zs, factory)
	if err != nil {
		return nil, chk.Err("metrics.NewVMECPoloidalMap: Z: %v", err)
	}
	return genericPoloidalMap{r: interp.NewCached2D(r), z: interp.NewCached2D(z)}, nil
}

func (m genericPoloidalMap) R(s, chi float64) (float64, error) { return m.r.At(s, chi) }
func (m genericPoloidalMap) Z(s, chi float64) (float64, error) { return m.z.At(s, chi) }

func (m genericPoloidalMap) RDerivs(s, chi float64) (r, rs, rchi, rss, rschi, rchichi float64, err error) {
	if r, err = m.r.At(s, chi); err != nil {
		return
	}
	if rs, err = m.r.DerivU(s, chi); err != nil {
		return
	}
	if rchi, err = m.r.DerivV(s, chi); err != nil {
		return
	}
	if rss, err = m.r.DerivUU(s, chi); err != nil {
		return
	}
	if rschi, err = m.r.DerivUV(s, chi); err != nil {
		return
	}
	rchichi, err = m.r.DerivVV(s, chi)
	return
}

func (m genericPoloidalMap) ZDerivs(s, chi float64) (z, zs, zchi, zss, zschi, zchichi float64, err error) {
	if z, err = m.z.At(s, chi); err != nil {
		return
	}
	if zs, err = m.z.DerivU(s, chi); err != nil {
		return
	}
	if zchi, err = m.z.DerivV(s, chi); err != nil {
		return
	}
	if zss, err = m.z.DerivUU(s, chi); err != nil {
		return
	}
	if zschi, err = m.z.DerivUV(s, chi); err != nil {
		return
	}
	zchichi, err = m.z.DerivVV(s, chi)
	return
}

// Interpolated is a tokamak-equilibrium morphism in flux coordinates
// q=(s,chi,phi): s is the normalised radial flux label, chi the poloidal
// angle and phi the toroidal angle, related to cartesian space by
// x=R(s,chi)cos(phi), y=R(s,chi)sin(phi), z=Z(s,chi). It is deliberately
// agnostic to how R and Z were fitted: over a NewBicubicPoloidalMap it is a
// HELENA-style morphism, over a NewVMECPoloidalMap it is the axisymmetric
// slice of a VMEC morphism. Since R and Z have no closed-form inverse,
// Inverse solves the 2x2 nonlinear system for (s,chi) with
// gosl/num.NlSolver, seeded from the cartesian point's own (R,Z) guess.
type Interpolated struct {
	Lref float64
	Map  PoloidalMap
}

// NewInterpolated builds an Interpolated morphism over poloidal map m,
// normalising lengths by lref.
func NewInterpolated(lref float64, m PoloidalMap) (*Interpolated, error) {
	if m == nil {
		return nil, chk.Err("metrics.NewInterpolated: nil poloidal map")
	}
	return &Interpolated{Lref: lref, Map: m}, nil
}

func (m *Interpolated) Transform(q core.IR3) core.IR3 {
	s, chi, phi := q[core.U], q[core.V], q[core.W]
	r, _ := m.Map.R(s, chi)
	z, _ := m.Map.Z(s, chi)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	return core.NewIR3(m.Lref*r*cosPhi, m.Lref*r*sinPhi, m.Lref*z)
}

// Inverse solves for (s,chi,phi) given a cartesian point, seeding the
// Newton iteration from s=0.5, chi=atan2(z-z0,R-R0) over the magnetic axis
// estimate (s=0).
func (m *Interpolated) Inverse(x core.IR3) core.IR3 {
	R := math.Hypot(x[core.U], x[core.V]) / m.Lref
	Z := x[core.W] / m.Lref
	phi := math.Atan2(x[core.V], x[core.U])

	R0, _ := m.Map.R(0, 0)
	Z0, _ := m.Map.Z(0, 0)
	guess := []float64{0.5, math.Atan2(Z-Z0, R-R0)}

	var nls num.NlSolver
	nls.Init(2, func(fx, y []float64) error {
		r, z := y[0], y[1]
		rVal, _ := m.Map.R(r, z)
		zVal, _ := m.Map.Z(r, z)
		fx[0] = rVal - R
		fx[1] = zVal - Z
		return nil
	}, nil, func(J [][]float64, y []float64) error {
		_, rs, rchi, _, _, _, err := m.Map.RDerivs(y[0], y[1])
		if err != nil {
			return err
		}
		_, zs, zchi, _, _, _, err := m.Map.ZDerivs(y[0], y[1])
		if err != nil {
			return err
		}
		J[0][0], J[0][1] = rs, rchi
		J[1][0], J[1][1] = zs, zchi
		return nil
	}, true, false, nil)
	nls.SetTols(1e-12, 1e-12, 1e-14, num.EPS)
	silent := true
	if err := nls.Solve(guess, silent); err != nil {
		chk.Panic("metrics.Interpolated: Inverse: non-linear solver failed:\n%v", err)
	}
	s, chi := guess[0], guess[1]
	if s < 0 {
		s, chi = -s, math.Remainder(chi+math.Pi, 2*math.Pi)
	}
	return core.NewIR3(s, chi, phi)
}

func (m *Interpolated) Del(q core.IR3) core.DIR3 {
	s, chi, phi := q[core.U], q[core.V], q[core.W]
	r, rs, rchi, _, _, _, _ := m.Map.RDerivs(s, chi)
	_, zs, zchi, _, _, _, _ := m.Map.ZDerivs(s, chi)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	L := m.Lref
	return core.NewDIR3(
		L*rs*cosPhi, L*rchi*cosPhi, -L*r*sinPhi,
		L*rs*sinPhi, L*rchi*sinPhi, L*r*cosPhi,
		L*zs, L*zchi, 0)
}

func (m *Interpolated) DDel(q core.IR3) core.DDIR3 {
	s, chi, phi := q[core.U], q[core.V], q[core.W]
	r, rs, rchi, rss, rschi, rchichi, _ := m.Map.RDerivs(s, chi)
	_, zs, zchi, zss, zschi, zchichi, _ := m.Map.ZDerivs(s, chi)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	L := m.Lref

	var d core.DDIR3
	d.Set(core.U, core.U, core.U, L*rss*cosPhi)
	d.Set(core.U, core.U, core.V, L*rschi*cosPhi)
	d.Set(core.U, core.U, core.W, -L*rs*sinPhi)
	d.Set(core.U, core.V, core.V, L*rchichi*cosPhi)
	d.Set(core.U, core.V, core.W, -L*rchi*sinPhi)
	d.Set(core.U, core.W, core.W, -L*r*cosPhi)
	d.Set(core.V, core.U, core.U, L*rss*sinPhi)
	d.Set(core.V, core.U, core.V, L*rschi*sinPhi)
	d.Set(core.V, core.U, core.W, L*rs*cosPhi)
	d.Set(core.V, core.V, core.V, L*rchichi*sinPhi)
	d.Set(core.V, core.V, core.W, L*rchi*cosPhi)
	d.Set(core.V, core.W, core.W, -L*r*sinPhi)
	d.Set(core.W, core.U, core.U, L*zss)
	d.Set(core.W, core.U, core.V, L*zschi)
	d.Set(core.W, core.U, core.W, 0)
	d.Set(core.W, core.V, core.V, L*zchichi)
	d.Set(core.W, core.V, core.W, 0)
	d.Set(core.W, core.W, core.W, 0)
	return d
}
