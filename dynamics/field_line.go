// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/fields"
)

// FieldLine is the equations of motion of a field line, parametrised by
// length over Lref: d(q)/ds = Lref * versor(B)(q).
type FieldLine struct {
	lref  float64
	field fields.FieldC0
}

// NewFieldLine builds a FieldLine tracer over field, scaling lengths by lref.
func NewFieldLine(lref float64, field fields.FieldC0) (*FieldLine, error) {
	if field == nil {
		return nil, chk.Err("dynamics.NewFieldLine: nil field")
	}
	return &FieldLine{lref: lref, field: field}, nil
}

func (f *FieldLine) Lref() float64          { return f.lref }
func (f *FieldLine) Field() fields.FieldC0  { return f.field }

// Derivative returns dq/ds at arclength s.
func (f *FieldLine) Derivative(q core.IR3, s float64) core.IR3 {
	return fields.ContravariantVersor(f.field, q, s).Scale(f.lref)
}

// RHS adapts Derivative to the gosl/ode.ODE right-hand-side signature.
func (f *FieldLine) RHS(dqds []float64, dS, s float64, q []float64, args ...interface{}) error {
	d := f.Derivative(core.NewIR3(q[0], q[1], q[2]), s)
	dqds[0], dqds[1], dqds[2] = d[core.U], d[core.V], d[core.W]
	return nil
}
