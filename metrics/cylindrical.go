// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/cpmech/gyronimo/core"
)

// Cylindrical is the morphism from curvilinear q=(r,phi,z) into cartesian
// x = Lref*(r*cos(phi), r*sin(phi), z).
type Cylindrical struct {
	Lref  float64
	iLref float64
}

// NewCylindrical builds a Cylindrical morphism with the given reference length.
func NewCylindrical(lref float64) *Cylindrical {
	return &Cylindrical{Lref: lref, iLref: 1 / lref}
}

func (m *Cylindrical) Transform(q core.IR3) core.IR3 {
	r, phi, z := q[core.U], q[core.V], q[core.W]
	return core.NewIR3(m.Lref*r*math.Cos(phi), m.Lref*r*math.Sin(phi), m.Lref*z)
}

func (m *Cylindrical) Inverse(x core.IR3) core.IR3 {
	xs, ys, zs := x[core.U], x[core.V], x[core.W]
	rs := math.Sqrt(xs*xs + ys*ys)
	return core.NewIR3(m.iLref*rs, math.Atan2(ys, xs), m.iLref*zs)
}

func (m *Cylindrical) Del(q core.IR3) core.DIR3 {
	r, phi := q[core.U], q[core.V]
	lsin, lcos := m.Lref*math.Sin(phi), m.Lref*math.Cos(phi)
	return core.NewDIR3(
		lcos, -r*lsin, 0,
		lsin, r*lcos, 0,
		0, 0, m.Lref)
}

func (m *Cylindrical) DDel(q core.IR3) core.DDIR3 {
	r, phi := q[core.U], q[core.V]
	lsin, lcos := m.Lref*math.Sin(phi), m.Lref*math.Cos(phi)
	var d core.DDIR3
	d.Set(core.U, core.V, core.V, -r*lcos)
	d.Set(core.U, core.U, core.V, -lsin)
	d.Set(core.U, core.V, core.U, -lsin)
	d.Set(core.V, core.U, core.V, lcos)
	d.Set(core.V, core.V, core.U, lcos)
	d.Set(core.V, core.V, core.V, -r*lsin)
	return d
}

// Jacobian short-circuits ConnectedMetric's general determinant with the
// closed form Lref^3 * r.
func (m *Cylindrical) Jacobian(q core.IR3) float64 {
	return m.Lref * m.Lref * m.Lref * q[core.U]
}

// DelInverse short-circuits the general 3x3 inverse with the closed form.
func (m *Cylindrical) DelInverse(q core.IR3) core.DIR3 {
	ir, phi := 1/q[core.U], q[core.V]
	isin, icos := m.iLref*math.Sin(phi), m.iLref*math.Cos(phi)
	return core.NewDIR3(
		icos, isin, 0,
		-isin*ir, icos*ir, 0,
		0, 0, m.iLref)
}
