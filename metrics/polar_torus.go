// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/cpmech/gyronimo/core"
)

// PolarTorus is the morphism from geometrical toroidal coordinates
// q=(r,theta,phi): r is the normalized minor-radial distance from the
// circular axis at MajorRadius, theta the poloidal angle measured from the
// low-field-side midplane, and phi the toroidal angle.
type PolarTorus struct {
	MinorRadius, MajorRadius float64
	iAspectRatio             float64
	volumeFactor             float64
	iMinorRadius             float64
}

// IAspectRatio returns MinorRadius/MajorRadius.
func (m *PolarTorus) IAspectRatio() float64 { return m.iAspectRatio }

// NewPolarTorus builds a PolarTorus morphism with the given minor and major
// radii (SI units).
func NewPolarTorus(minorRadius, majorRadius float64) *PolarTorus {
	return &PolarTorus{
		MinorRadius:  minorRadius,
		MajorRadius:  majorRadius,
		iAspectRatio: minorRadius / majorRadius,
		volumeFactor: minorRadius * minorRadius * majorRadius,
		iMinorRadius: 1 / minorRadius,
	}
}

func (m *PolarTorus) Transform(q core.IR3) core.IR3 {
	r, theta, phi := q[core.U], q[core.V], q[core.W]
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	R := m.MajorRadius * (1.0 + m.iAspectRatio*r*cosTheta)
	return core.NewIR3(R*cosPhi, -R*sinPhi, m.MinorRadius*r*sinTheta)
}

func (m *PolarTorus) Inverse(x core.IR3) core.IR3 {
	xs, ys, zs := x[core.U], x[core.V], x[core.W]
	R := math.Sqrt(xs*xs + ys*ys)
	deltaR := R - m.MajorRadius
	return core.NewIR3(
		m.iMinorRadius*math.Sqrt(zs*zs+deltaR*deltaR),
		math.Atan2(zs, deltaR),
		math.Atan2(-ys, xs))
}

func (m *PolarTorus) Del(q core.IR3) core.DIR3 {
	r, theta, phi := q[core.U], q[core.V], q[core.W]
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	R := m.MajorRadius * (1.0 + m.iAspectRatio*r*cosTheta)
	aCosTheta := m.MinorRadius * cosTheta
	arCosTheta := r * aCosTheta
	aSinTheta := m.MinorRadius * sinTheta
	arSinTheta := r * aSinTheta
	return core.NewDIR3(
		aCosTheta*cosPhi, -arSinTheta*cosPhi, -R*sinPhi,
		-aCosTheta*sinPhi, arSinTheta*sinPhi, -R*cosPhi,
		aSinTheta, arCosTheta, 0)
}

func (m *PolarTorus) DDel(q core.IR3) core.DDIR3 {
	r, theta, phi := q[core.U], q[core.V], q[core.W]
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	R := m.MajorRadius * (1.0 + m.iAspectRatio*r*cosTheta)
	aCosTheta := m.MinorRadius * cosTheta
	arCosTheta := r * aCosTheta
	aSinTheta := m.MinorRadius * sinTheta
	arSinTheta := r * aSinTheta

	var d core.DDIR3
	d.Set(core.U, core.U, core.V, -aSinTheta*cosPhi)
	d.Set(core.U, core.U, core.W, -aCosTheta*sinPhi)
	d.Set(core.U, core.V, core.V, -arCosTheta*cosPhi)
	d.Set(core.U, core.V, core.W, arSinTheta*sinPhi)
	d.Set(core.U, core.W, core.W, -R*cosPhi)

	d.Set(core.V, core.U, core.V, aSinTheta*sinPhi)
	d.Set(core.V, core.U, core.W, -aCosTheta*cosPhi)
	d.Set(core.V, core.V, core.V, arCosTheta*sinPhi)
	d.Set(core.V, core.V, core.W, arSinTheta*cosPhi)
	d.Set(core.V, core.W, core.W, R*sinPhi)

	d.Set(core.W, core.U, core.V, aCosTheta)
	d.Set(core.W, core.V, core.V, -arSinTheta)
	return d
}

// Jacobian short-circuits the general determinant with the closed form.
func (m *PolarTorus) Jacobian(q core.IR3) float64 {
	r := q[core.U]
	Rfactor := 1.0 + m.iAspectRatio*r*math.Cos(q[core.V])
	return m.volumeFactor * r * Rfactor
}

// DelInverse short-circuits the general 3x3 inverse with the closed form.
func (m *PolarTorus) DelInverse(q core.IR3) core.DIR3 {
	r, theta, phi := q[core.U], q[core.V], q[core.W]
	ir := 1 / r
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	iR := 1.0 / (m.MajorRadius * (1.0 + m.iAspectRatio*r*cosTheta))
	iaCosTheta := m.iMinorRadius * cosTheta
	iarCosTheta := ir * iaCosTheta
	iaSinTheta := m.iMinorRadius * sinTheta
	iarSinTheta := ir * iaSinTheta
	return core.NewDIR3(
		iaCosTheta*cosPhi, -iaCosTheta*sinPhi, iaSinTheta,
		-iarSinTheta*cosPhi, iarSinTheta*sinPhi, iarCosTheta,
		-iR*sinPhi, -iR*cosPhi, 0)
}
