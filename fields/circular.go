// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

// RadialProfile is a scalar function of the minor-radial coordinate r, used
// for the safety-factor profile q(r) and its derivative q'(r).
type RadialProfile func(r float64) float64

// Circular is a static toroidal equilibrium with centred circular magnetic
// surfaces over a metrics.PolarTorus chart: the poloidal flux is constant on
// circles of constant r, and the field magnitude's poloidal dependence comes
// from the 1/R toroidal term alone. The radial dependence is set by a
// safety-factor profile q(r) and its derivative.
type Circular struct {
	Base
	torus         *metrics.PolarTorus
	q, qprime     RadialProfile
}

// NewCircular builds a Circular equilibrium over the given polar-torus
// geometry, with magnitude normalisation mFactor (t_factor is fixed at 1,
// i.e. this field has no explicit time dependence).
func NewCircular(mFactor float64, torus *metrics.PolarTorus, q, qprime RadialProfile) (*Circular, error) {
	base, err := NewBase(mFactor, 1.0, torus)
	if err != nil {
		return nil, err
	}
	if q == nil || qprime == nil {
		return nil, chk.Err("fields.NewCircular: nil radial profile")
	}
	return &Circular{Base: base, torus: torus, q: q, qprime: qprime}, nil
}

// Magnitude overrides the general formula with the closed-form expression.
func (c *Circular) Magnitude(position core.IR3, time float64) float64 {
	epsR := c.torus.IAspectRatio() * position[core.U]
	q := c.q(position[core.U])
	l := math.Sqrt(q*q + epsR*epsR)
	R := 1.0 + epsR*math.Cos(position[core.V])
	return l / (q * R)
}

// ContravariantVersor overrides the general formula with the closed-form
// unit direction (zero radial component, by construction).
func (c *Circular) ContravariantVersor(position core.IR3, time float64) core.IR3 {
	R0 := c.torus.MajorRadius
	r, theta := position[core.U], position[core.V]
	epsR := c.torus.IAspectRatio() * r
	q := c.q(r)
	R := 1.0 + epsR*math.Cos(theta)
	aux := 1.0 / (R0 * R * math.Sqrt(q*q+epsR*epsR))
	return core.NewIR3(0, R*aux, q*aux)
}

// CovariantVersor overrides the general formula, reusing ContravariantVersor.
func (c *Circular) CovariantVersor(position core.IR3, time float64) core.IR3 {
	b := c.ContravariantVersor(position, time)
	cm := metrics.NewConnectedMetric(c.torus)
	return cm.ToCovariant(b, position)
}

// Contravariant returns the contravariant components of the equilibrium
// field, built from Magnitude and ContravariantVersor.
func (c *Circular) Contravariant(position core.IR3, time float64) core.IR3 {
	m := c.Magnitude(position, time)
	return c.ContravariantVersor(position, time).Scale(m)
}

// Covariant returns the covariant components of the equilibrium field.
func (c *Circular) Covariant(position core.IR3, time float64) core.IR3 {
	m := c.Magnitude(position, time)
	return c.CovariantVersor(position, time).Scale(m)
}

// DelContravariant returns the partial derivatives of the contravariant
// components with respect to position.
func (c *Circular) DelContravariant(position core.IR3, time float64) core.DIR3 {
	R0 := c.torus.MajorRadius
	eps := c.torus.IAspectRatio()
	r, theta := position[core.U], position[core.V]
	q, qprime := c.q(r), c.qprime(r)
	dRdr := eps * math.Cos(theta)
	dRdtheta := -r * eps * math.Sin(theta)
	R := 1.0 + r*dRdr
	dBvu := -(qprime*R + q*dRdr) / (R0 * q * q * R * R)
	dBvv := -q * dRdtheta / (R0 * q * q * R * R)
	dBwu := -2.0 * dRdr / (R0 * R * R * R)
	dBwv := -2.0 * dRdtheta / (R0 * R * R * R)
	return core.NewDIR3(
		0, 0, 0,
		dBvu, dBvv, 0,
		dBwu, dBwv, 0)
}

// PartialTContravariant is identically zero: the equilibrium has no time
// dependence.
func (c *Circular) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	return core.IR3{}
}

// Curl overrides the general formula with the closed form for this
// equilibrium: only the toroidal component of the curl is non-zero.
func (c *Circular) Curl(position core.IR3, time float64) core.IR3 {
	cm := metrics.NewConnectedMetric(c.torus)
	J := cm.Jacobian(position)
	dB := DelCovariant(c, position, time)
	return core.NewIR3(0, 0, dB.At(core.V, core.U)/J)
}

// DelMagnitude overrides the general formula with the closed form.
func (c *Circular) DelMagnitude(position core.IR3, time float64) core.IR3 {
	r, theta := position[core.U], position[core.V]
	eps := c.torus.IAspectRatio()
	epsR := eps * r
	q, qprime := c.q(r), c.qprime(r)
	l := math.Sqrt(q*q + epsR*epsR)
	lprime := (q*qprime + eps*epsR) / l
	duR := eps * math.Cos(theta)
	R := 1.0 + r*duR
	aux := 1.0 / (q * R * q * R)
	return core.NewIR3(
		(q*R*lprime-l*(R*qprime+q*duR))*aux,
		q*l*epsR*math.Sin(theta)*aux,
		0)
}

// PartialTMagnitude is identically zero: the equilibrium has no time
// dependence.
func (c *Circular) PartialTMagnitude(position core.IR3, time float64) float64 {
	return 0
}
