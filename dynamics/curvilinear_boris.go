// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"github.com/cpmech/gyronimo/fields"
)

// CurvilinearBoris advances the cartesian velocity exactly as ClassicalBoris
// does, but avoids the morphism inversion in metrics.ConnectedMetric.Translation
// by advancing the curvilinear position with a midpoint (RK2) scheme built
// from metrics.ConnectedMetric.ToContravariant alone [G. L. Delzanno and
// E. Camporeale, SIAM J. Sci. Comput. 35, B1212 (2013)].
type CurvilinearBoris struct {
	*ClassicalBoris
}

// NewCurvilinearBoris builds a CurvilinearBoris stepper.
func NewCurvilinearBoris(lref, vref, qom float64, magnetic, electric fields.FieldC0) (*CurvilinearBoris, error) {
	base, err := NewClassicalBoris(lref, vref, qom, magnetic, electric)
	if err != nil {
		return nil, err
	}
	return &CurvilinearBoris{base}, nil
}

// DoStep advances the state by a single time step dt.
func (c *CurvilinearBoris) DoStep(s BorisState, time, dt float64) BorisState {
	q := c.GetPosition(s)
	updatedV := c.cartesianVelocityUpdate(s, time, dt)
	dotQStar := c.metric.ToContravariant(updatedV, q)
	qHalfStep := q.AddScaled(0.5*c.lref*dt, dotQStar)
	dotQHalfStep := c.metric.ToContravariant(updatedV, qHalfStep)
	updatedQ := q.AddScaled(c.lref*dt, dotQHalfStep)
	return c.GenerateState(updatedQ, updatedV)
}
