// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/codata"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/fields"
	"github.com/cpmech/gyronimo/metrics"
)

// ClassicalBoris advances a charged particle's cartesian velocity and
// curvilinear position with the Boris algorithm: the velocity is rotated in
// the cartesian space carried by the morphism underlying the electromagnetic
// fields, and the curvilinear position is advanced with
// metrics.ConnectedMetric.Translation. The conventional cartesian Boris
// stepper is recovered whenever that morphism is metrics.Cartesian.
type ClassicalBoris struct {
	lref, vref, tref, qom, oref float64
	magnetic, electric          fields.FieldC0
	iBTimeFactor, iETimeFactor  float64
	tildeEref                   float64
	morphism                    metrics.Morphism
	metric                      metrics.ConnectedMetric
}

// NewClassicalBoris builds a ClassicalBoris stepper. The magnetic field is
// mandatory; the electric field may be nil, but if supplied must share the
// magnetic field's metrics.Morphism.
func NewClassicalBoris(lref, vref, qom float64, magnetic, electric fields.FieldC0) (*ClassicalBoris, error) {
	if magnetic == nil {
		return nil, chk.Err("dynamics.NewClassicalBoris: nil magnetic field")
	}
	if electric != nil && electric.Metric() != magnetic.Metric() {
		return nil, chk.Err("dynamics.NewClassicalBoris: mismatched E/B coordinates")
	}
	tref := lref / vref
	oref := qom * codata.ElementaryCharge / codata.ProtonMass * magnetic.MFactor() * tref
	c := &ClassicalBoris{
		lref: lref, vref: vref, tref: tref, qom: qom, oref: oref,
		magnetic:     magnetic,
		electric:     electric,
		iBTimeFactor: tref / magnetic.TFactor(),
		morphism:     magnetic.Metric(),
		metric:       magnetic.ConnectedMetric(),
	}
	if electric != nil {
		c.iETimeFactor = tref / electric.TFactor()
		c.tildeEref = oref * electric.MFactor() / (magnetic.MFactor() * vref)
	}
	return c, nil
}

func (c *ClassicalBoris) Lref() float64                 { return c.lref }
func (c *ClassicalBoris) Tref() float64                 { return c.tref }
func (c *ClassicalBoris) Vref() float64                 { return c.vref }
func (c *ClassicalBoris) Oref() float64                 { return c.oref }
func (c *ClassicalBoris) Qom() float64                  { return c.qom }
func (c *ClassicalBoris) MagneticField() fields.FieldC0 { return c.magnetic }
func (c *ClassicalBoris) ElectricField() fields.FieldC0 { return c.electric }
func (c *ClassicalBoris) Morphism() metrics.Morphism    { return c.morphism }

// GetPosition extracts the curvilinear position from a state.
func (c *ClassicalBoris) GetPosition(s BorisState) core.IR3 { return core.NewIR3(s[0], s[1], s[2]) }

// GetVelocity extracts the cartesian velocity from a state.
func (c *ClassicalBoris) GetVelocity(s BorisState) core.IR3 { return core.NewIR3(s[3], s[4], s[5]) }

// GetDotQ extracts the curvilinear normalised velocity from a state.
func (c *ClassicalBoris) GetDotQ(s BorisState) core.IR3 {
	q, v := c.GetPosition(s), c.GetVelocity(s)
	return c.metric.ToContravariant(v, q)
}

// GenerateState builds a state from a curvilinear position and a cartesian
// velocity.
func (c *ClassicalBoris) GenerateState(q, v core.IR3) BorisState {
	return BorisState{q[core.U], q[core.V], q[core.W], v[core.U], v[core.V], v[core.W]}
}

// cartesianFieldData returns the cartesian magnetic magnitude and versor plus
// the cartesian electric field (zero if none), all at the state's position.
func (c *ClassicalBoris) cartesianFieldData(s BorisState, time float64) (magnitude float64, versor, E core.IR3) {
	q := c.GetPosition(s)
	if c.electric != nil {
		Econtra := c.electric.Contravariant(q, time*c.iETimeFactor)
		E = c.metric.FromContravariant(Econtra, q)
	}
	Bcontra := c.magnetic.Contravariant(q, time*c.iBTimeFactor)
	B := c.metric.FromContravariant(Bcontra, q)
	magnitude = B.Norm()
	versor = B.Scale(1 / magnitude)
	return
}

// cartesianVelocityUpdate performs the Boris rotation-and-kick in the
// cartesian space carried by the morphism, returning the updated cartesian
// velocity.
func (c *ClassicalBoris) cartesianVelocityUpdate(s BorisState, time, dt float64) core.IR3 {
	magnitude, versor, E := c.cartesianFieldData(s, time)
	halfEImpulse := E.Scale(0.5 * c.tildeEref * dt)
	vMinus := c.GetVelocity(s).Add(halfEImpulse)
	updated := BorisPush(vMinus, c.oref, magnitude, versor, dt)
	return updated.Add(halfEImpulse)
}

// DoStep advances the state by a single time step dt, inverting the morphism
// through metrics.ConnectedMetric.Translation to find the updated curvilinear
// position.
func (c *ClassicalBoris) DoStep(s BorisState, time, dt float64) BorisState {
	q := c.GetPosition(s)
	updatedV := c.cartesianVelocityUpdate(s, time, dt)
	updatedQ := c.metric.Translation(q, updatedV.Scale(c.lref*dt))
	return c.GenerateState(updatedQ, updatedV)
}

// EnergyKinetic returns the kinetic energy of the state, normalised to Uref.
func (c *ClassicalBoris) EnergyKinetic(s BorisState) float64 {
	v := c.GetVelocity(s)
	return core.InnerProduct(v, v)
}

// EnergyParallel returns the field-aligned kinetic energy of the state,
// normalised to Uref.
func (c *ClassicalBoris) EnergyParallel(s BorisState, time float64) float64 {
	q, v := c.GetPosition(s), c.GetVelocity(s)
	versor := fields.ContravariantVersor(c.magnetic, q, time*c.iBTimeFactor)
	b := c.metric.FromContravariant(versor, q)
	vParallel := core.InnerProduct(v, b)
	return vParallel * vParallel
}

// EnergyPerpendicular returns the gyration kinetic energy of the state,
// normalised to Uref.
func (c *ClassicalBoris) EnergyPerpendicular(s BorisState, time float64) float64 {
	q, v := c.GetPosition(s), c.GetVelocity(s)
	versor := fields.ContravariantVersor(c.magnetic, q, time*c.iBTimeFactor)
	b := c.metric.FromContravariant(versor, q)
	vPerp := core.CrossProduct(v, b)
	return core.InnerProduct(vPerp, vPerp)
}

// HalfBackStep integrates a Cauchy (position,velocity)-at-the-same-instant
// initial condition backwards by half a time step, staggering it into the
// leapfrog form the Boris algorithm expects.
func (c *ClassicalBoris) HalfBackStep(q, v core.IR3, time, dt float64) (BorisState, error) {
	lo, err := NewLorentz(c.lref, c.vref, c.qom, c.magnetic, c.electric)
	if err != nil {
		return BorisState{}, err
	}
	ls := lo.GenerateState(q, c.metric.ToContravariant(v, q))
	ls = rk4Step(lo.Derivative, ls, time, -0.5*dt)
	qHalfBack, dotQHalfBack := lo.GetPosition(ls), lo.GetVelocity(ls)
	vHalfBack := c.metric.FromContravariant(dotQHalfBack, qHalfBack)
	return c.GenerateState(q, vHalfBack), nil
}
