// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/cpmech/gyronimo/core"
)

// Spherical is the morphism from curvilinear q=(r,phi,theta) into cartesian
// coordinates, phi measured from the polar axis and theta the azimuth.
type Spherical struct {
	Lref  float64
	iLref float64
}

// NewSpherical builds a Spherical morphism with the given reference length.
func NewSpherical(lref float64) *Spherical {
	return &Spherical{Lref: lref, iLref: 1 / lref}
}

func (m *Spherical) Transform(q core.IR3) core.IR3 {
	rSI, phi, theta := m.Lref*q[core.U], q[core.V], q[core.W]
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	return core.NewIR3(rSI*cosTheta*sinPhi, rSI*sinTheta*sinPhi, rSI*cosPhi)
}

func (m *Spherical) Inverse(x core.IR3) core.IR3 {
	xs, ys, zs := x[core.U], x[core.V], x[core.W]
	rho2 := xs*xs + ys*ys
	return core.NewIR3(
		m.iLref*math.Sqrt(rho2+zs*zs),
		math.Atan2(math.Sqrt(rho2), zs),
		math.Atan2(ys, xs))
}

func (m *Spherical) Del(q core.IR3) core.DIR3 {
	r, phi, theta := q[core.U], q[core.V], q[core.W]
	cosPhi, sinPhi := m.Lref*math.Cos(phi), m.Lref*math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	return core.NewDIR3(
		cosTheta*sinPhi, r*cosTheta*cosPhi, -r*sinTheta*sinPhi,
		sinTheta*sinPhi, r*sinTheta*cosPhi, r*cosTheta*sinPhi,
		cosPhi, -r*sinPhi, 0)
}

func (m *Spherical) DDel(q core.IR3) core.DDIR3 {
	r, phi, theta := q[core.U], q[core.V], q[core.W]
	cosPhi, sinPhi := m.Lref*math.Cos(phi), m.Lref*math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	var d core.DDIR3
	// i=U (x-component)
	d.Set(core.U, core.V, core.V, -r*cosTheta*sinPhi)
	d.Set(core.U, core.V, core.W, -r*sinTheta*cosPhi)
	d.Set(core.U, core.W, core.W, -r*cosTheta*sinPhi)
	d.Set(core.U, core.U, core.V, cosTheta*cosPhi)
	d.Set(core.U, core.V, core.U, cosTheta*cosPhi)
	d.Set(core.U, core.U, core.W, -sinTheta*sinPhi)
	d.Set(core.U, core.W, core.U, -sinTheta*sinPhi)
	// i=V (y-component)
	d.Set(core.V, core.V, core.V, -r*sinTheta*sinPhi)
	d.Set(core.V, core.V, core.W, r*cosTheta*cosPhi)
	d.Set(core.V, core.W, core.W, -r*sinTheta*sinPhi)
	d.Set(core.V, core.U, core.V, sinTheta*cosPhi)
	d.Set(core.V, core.V, core.U, sinTheta*cosPhi)
	d.Set(core.V, core.U, core.W, cosTheta*sinPhi)
	d.Set(core.V, core.W, core.U, cosTheta*sinPhi)
	// i=W (z-component)
	d.Set(core.W, core.V, core.V, -r*cosPhi)
	d.Set(core.W, core.U, core.V, -sinPhi)
	d.Set(core.W, core.V, core.U, -sinPhi)
	return d
}

// Jacobian short-circuits the general determinant with the closed form
// Lref^3 * r^2 * sin(phi).
func (m *Spherical) Jacobian(q core.IR3) float64 {
	r, phi := q[core.U], q[core.V]
	l3 := m.Lref * m.Lref * m.Lref
	return l3 * r * r * math.Sin(phi)
}

// DelInverse short-circuits the general 3x3 inverse with the closed form.
func (m *Spherical) DelInverse(q core.IR3) core.DIR3 {
	ir, phi, theta := 1/q[core.U], q[core.V], q[core.W]
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	cosPhi := m.iLref * math.Cos(phi)
	sinPhi := math.Sin(phi)
	cscPhi := m.iLref / sinPhi
	sinPhi *= m.iLref
	return core.NewDIR3(
		cosTheta*sinPhi, sinTheta*sinPhi, cosPhi,
		ir*cosTheta*cosPhi, ir*sinTheta*cosPhi, -ir*sinPhi,
		-ir*sinTheta*cscPhi, ir*cosTheta*cscPhi, 0)
}
