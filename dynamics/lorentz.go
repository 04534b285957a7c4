// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// Package dynamics implements the equations of motion of a charged particle
// moving in a background electromagnetic field: the full Lorentz-force
// dynamics, the guiding-centre reduction, and the explicit Boris pushers used
// to advance them in time. Every equation is written in a coordinate-free
// form over a fields.FieldC0/FieldC1 pair, so it works unmodified with any
// metrics.Morphism chart.
package dynamics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/codata"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/fields"
	"github.com/cpmech/gyronimo/metrics"
)

// State is the six-component dynamical state of the full Lorentz-force
// equations: the curvilinear position normalised by Lref followed by the
// three contravariant components of the velocity normalised by Vref.
type State [6]float64

// Lorentz implements the Lorentz-force equations of motion for a charged
// particle under a background electromagnetic field, written in general
// curvilinear coordinates:
//
//	d(q~)/d(tau) = v~
//	d(v~)/d(tau) = Lref*inertial_force(q~,v~) + Oref~ (v~ x B~) + Eref~ E~
//
// with q~ = q/Lref the curvilinear position normalised by the reference
// length and v~ = v/Vref the contravariant velocity normalised by the
// reference velocity. The equations work out-of-the-box with whatever
// coordinates the fields' shared metrics.Morphism defines.
type Lorentz struct {
	lref, vref, tref, qomTilde float64
	magnetic, electric         fields.FieldC0
	iBTimeFactor, iETimeFactor float64
	orefTilde, erefTilde       float64
	metric                     metrics.ConnectedMetric
}

// NewLorentz builds the Lorentz equations of motion for a particle with
// charge-to-mass ratio qom (normalised to the proton's e/m_p), reference
// length Lref and reference velocity Vref, both in SI units. The magnetic
// field is mandatory; the electric field may be nil. If supplied, the
// electric field must share the magnetic field's metrics.Morphism.
func NewLorentz(lref, vref, qom float64, magnetic, electric fields.FieldC0) (*Lorentz, error) {
	if magnetic == nil {
		return nil, chk.Err("dynamics.NewLorentz: nil magnetic field")
	}
	if electric != nil && electric.Metric() != magnetic.Metric() {
		return nil, chk.Err("dynamics.NewLorentz: mismatched E/B coordinates")
	}
	tref := lref / vref
	orefTilde := qom * codata.ElementaryCharge / codata.ProtonMass * magnetic.MFactor() * tref
	l := &Lorentz{
		lref: lref, vref: vref, tref: tref, qomTilde: qom,
		magnetic: magnetic, electric: electric,
		iBTimeFactor: tref / magnetic.TFactor(),
		orefTilde:    orefTilde,
		metric:       magnetic.ConnectedMetric(),
	}
	if electric != nil {
		l.iETimeFactor = tref / electric.TFactor()
		l.erefTilde = orefTilde * electric.MFactor() / (magnetic.MFactor() * vref)
	}
	return l, nil
}

func (l *Lorentz) Lref() float64                  { return l.lref }
func (l *Lorentz) Tref() float64                  { return l.tref }
func (l *Lorentz) Vref() float64                  { return l.vref }
func (l *Lorentz) QomTilde() float64              { return l.qomTilde }
func (l *Lorentz) OrefTilde() float64             { return l.orefTilde }
func (l *Lorentz) ErefTilde() float64             { return l.erefTilde }
func (l *Lorentz) MagneticField() fields.FieldC0  { return l.magnetic }
func (l *Lorentz) ElectricField() fields.FieldC0  { return l.electric }

// GetPosition extracts the curvilinear position from a state.
func (l *Lorentz) GetPosition(s State) core.IR3 {
	return core.NewIR3(l.lref*s[0], l.lref*s[1], l.lref*s[2])
}

// GetVelocity extracts the curvilinear normalised velocity from a state.
func (l *Lorentz) GetVelocity(s State) core.IR3 {
	return core.NewIR3(s[3], s[4], s[5])
}

// GenerateState builds a state from a curvilinear position q in SI units,
// which is divided by the reference length, and a normalised contravariant
// velocity v, which is stored as given.
func (l *Lorentz) GenerateState(q, v core.IR3) State {
	return State{
		q[core.U] / l.lref, q[core.V] / l.lref, q[core.W] / l.lref,
		v[core.U], v[core.V], v[core.W],
	}
}

// Derivative evaluates d(s)/d(tau) at state s and normalised time tau.
func (l *Lorentz) Derivative(s State, tau float64) State {
	q, v := l.GetPosition(s), l.GetVelocity(s)
	B := l.magnetic.Contravariant(q, l.iBTimeFactor*tau)
	jacobian := l.metric.Jacobian(q)
	vCrossB := core.CrossProductV(core.Covariant, v, B, jacobian)
	dotV := l.metric.InertialForce(q, v).Scale(l.lref).
		Add(l.metric.ToContravariant(vCrossB, q).Scale(l.orefTilde))
	if l.electric != nil {
		E := l.electric.Contravariant(q, l.iETimeFactor*tau)
		dotV = dotV.Add(E.Scale(l.erefTilde))
	}
	return State{v[core.U], v[core.V], v[core.W], dotV[core.U], dotV[core.V], dotV[core.W]}
}

// RHS evaluates the derivative of y at time T into f, matching the
// signature gosl/ode.ODE.Init expects of its right-hand-side function.
func (l *Lorentz) RHS(f []float64, dT, T float64, y []float64, args ...interface{}) error {
	var s State
	copy(s[:], y)
	ds := l.Derivative(s, T)
	copy(f, ds[:])
	return nil
}

// EnergyKinetic returns the kinetic energy of the state, normalised to Uref.
func (l *Lorentz) EnergyKinetic(s State) float64 {
	q, v := l.GetPosition(s), l.GetVelocity(s)
	return core.InnerProduct(v, l.metric.ToCovariant(v, q))
}

// EnergyParallel returns the field-aligned kinetic energy of the state,
// normalised to Uref.
func (l *Lorentz) EnergyParallel(s State, tau float64) float64 {
	q, v := l.GetPosition(s), l.GetVelocity(s)
	b := fields.CovariantVersor(l.magnetic, q, l.iBTimeFactor*tau)
	vParallel := core.InnerProduct(v, b)
	return vParallel * vParallel
}

// EnergyPerpendicular returns the gyration kinetic energy of the state,
// normalised to Uref.
func (l *Lorentz) EnergyPerpendicular(s State, tau float64) float64 {
	q, v := l.GetPosition(s), l.GetVelocity(s)
	b := fields.ContravariantVersor(l.magnetic, q, l.iBTimeFactor*tau)
	jacobian := l.metric.Jacobian(q)
	vPerp := core.CrossProductV(core.Covariant, v, b, jacobian)
	return core.InnerProduct(vPerp, l.metric.ToContravariant(vPerp, q))
}
