// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import "github.com/cpmech/gyronimo/core"

// Cartesian is the trivial morphism x(q) = Lref*q, q in SI units scaled by a
// reference length Lref (Lref=1 recovers the identity map).
type Cartesian struct {
	Lref  float64
	iLref float64
}

// NewCartesian builds a Cartesian morphism with the given reference length.
func NewCartesian(lref float64) *Cartesian {
	return &Cartesian{Lref: lref, iLref: 1 / lref}
}

func (m *Cartesian) Transform(q core.IR3) core.IR3 {
	return core.NewIR3(m.Lref*q[core.U], m.Lref*q[core.V], m.Lref*q[core.W])
}

func (m *Cartesian) Inverse(x core.IR3) core.IR3 {
	return core.NewIR3(m.iLref*x[core.U], m.iLref*x[core.V], m.iLref*x[core.W])
}

func (m *Cartesian) Del(q core.IR3) core.DIR3 {
	return core.NewDIR3(
		m.Lref, 0, 0,
		0, m.Lref, 0,
		0, 0, m.Lref)
}

func (m *Cartesian) DDel(q core.IR3) core.DDIR3 {
	return core.DDIR3{}
}

// Jacobian short-circuits ConnectedMetric's general determinant with the
// closed form Lref^3.
func (m *Cartesian) Jacobian(q core.IR3) float64 {
	return m.Lref * m.Lref * m.Lref
}
