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

// BorisState is the six-component state shared by the Boris-family steppers:
// a position (cartesian for CartesianBoris, curvilinear for ClassicalBoris
// and CurvilinearBoris) followed by the cartesian velocity.
type BorisState [6]float64

// CartesianBoris advances a charged particle's cartesian velocity and
// position with the classic Boris algorithm, valid only over fields built on
// a metrics.Cartesian chart.
type CartesianBoris struct {
	lref, vref, tref, qom, oref float64
	magnetic, electric          fields.FieldC0
	iBTimeFactor, iETimeFactor  float64
	tildeEref                   float64
}

// NewCartesianBoris builds a CartesianBoris stepper. The magnetic field is
// mandatory and must carry a metrics.Cartesian chart; the electric field may
// be nil, but if supplied must share the magnetic field's chart.
func NewCartesianBoris(lref, vref, qom float64, magnetic, electric fields.FieldC0) (*CartesianBoris, error) {
	if magnetic == nil {
		return nil, chk.Err("dynamics.NewCartesianBoris: nil magnetic field")
	}
	if electric != nil && electric.Metric() != magnetic.Metric() {
		return nil, chk.Err("dynamics.NewCartesianBoris: mismatched E/B coordinates")
	}
	if _, ok := magnetic.Metric().(*metrics.Cartesian); !ok {
		return nil, chk.Err("dynamics.NewCartesianBoris: field has no cartesian chart")
	}
	tref := lref / vref
	oref := qom * codata.ElementaryCharge / codata.ProtonMass * magnetic.MFactor() * tref
	b := &CartesianBoris{
		lref: lref, vref: vref, tref: tref, qom: qom, oref: oref,
		magnetic:     magnetic,
		electric:     electric,
		iBTimeFactor: tref / magnetic.TFactor(),
	}
	if electric != nil {
		b.iETimeFactor = tref / electric.TFactor()
		b.tildeEref = oref * electric.MFactor() / (magnetic.MFactor() * vref)
	}
	return b, nil
}

func (b *CartesianBoris) Lref() float64                  { return b.lref }
func (b *CartesianBoris) Tref() float64                  { return b.tref }
func (b *CartesianBoris) Vref() float64                  { return b.vref }
func (b *CartesianBoris) Oref() float64                  { return b.oref }
func (b *CartesianBoris) Qom() float64                   { return b.qom }
func (b *CartesianBoris) MagneticField() fields.FieldC0  { return b.magnetic }
func (b *CartesianBoris) ElectricField() fields.FieldC0  { return b.electric }

// GetPosition extracts the cartesian position from a state.
func (b *CartesianBoris) GetPosition(s BorisState) core.IR3 { return core.NewIR3(s[0], s[1], s[2]) }

// GetVelocity extracts the cartesian velocity from a state.
func (b *CartesianBoris) GetVelocity(s BorisState) core.IR3 { return core.NewIR3(s[3], s[4], s[5]) }

// GenerateState builds a state from a cartesian position and velocity.
func (b *CartesianBoris) GenerateState(x, v core.IR3) BorisState {
	return BorisState{x[core.U], x[core.V], x[core.W], v[core.U], v[core.V], v[core.W]}
}

// DoStep advances the state by a single time step dt.
func (b *CartesianBoris) DoStep(s BorisState, time, dt float64) BorisState {
	bTime := time * b.iBTimeFactor
	x, v := b.GetPosition(s), b.GetVelocity(s)
	magnitude := fields.Magnitude(b.magnetic, x, bTime)
	versor := fields.ContravariantVersor(b.magnetic, x, bTime)
	var updatedV core.IR3
	if b.electric != nil {
		E := b.electric.Contravariant(x, time*b.iETimeFactor)
		updatedV = BorisPushE(v, b.oref, b.tildeEref, E, magnitude, versor, dt)
	} else {
		updatedV = BorisPush(v, b.oref, magnitude, versor, dt)
	}
	updatedX := x.AddScaled(b.lref*dt, updatedV)
	return b.GenerateState(updatedX, updatedV)
}

// EnergyKinetic returns the kinetic energy of the state, normalised to Uref.
func (b *CartesianBoris) EnergyKinetic(s BorisState) float64 {
	v := b.GetVelocity(s)
	return core.InnerProduct(v, v)
}

// EnergyParallel returns the field-aligned kinetic energy of the state,
// normalised to Uref.
func (b *CartesianBoris) EnergyParallel(s BorisState, time float64) float64 {
	x, v := b.GetPosition(s), b.GetVelocity(s)
	versor := fields.ContravariantVersor(b.magnetic, x, time*b.iBTimeFactor)
	vParallel := core.InnerProduct(v, versor)
	return vParallel * vParallel
}

// EnergyPerpendicular returns the gyration kinetic energy of the state,
// normalised to Uref.
func (b *CartesianBoris) EnergyPerpendicular(s BorisState, time float64) float64 {
	x, v := b.GetPosition(s), b.GetVelocity(s)
	versor := fields.ContravariantVersor(b.magnetic, x, time*b.iBTimeFactor)
	vPerp := core.CrossProduct(v, versor)
	return core.InnerProduct(vPerp, vPerp)
}

// HalfBackStep integrates a Cauchy (position,velocity)-at-the-same-instant
// initial condition backwards by half a time step, staggering it into the
// leapfrog form the Boris algorithm expects.
func (b *CartesianBoris) HalfBackStep(q, v core.IR3, time, dt float64) (BorisState, error) {
	lo, err := NewLorentz(b.lref, b.vref, b.qom, b.magnetic, b.electric)
	if err != nil {
		return BorisState{}, err
	}
	ls := lo.GenerateState(q, v)
	ls = rk4Step(lo.Derivative, ls, time, -0.5*dt)
	return b.GenerateState(q, lo.GetVelocity(ls)), nil
}
