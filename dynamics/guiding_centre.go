// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/codata"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/fields"
	"github.com/cpmech/gyronimo/metrics"
)

// VppSign selects the sign GenerateState assigns to the parallel velocity it
// derives from a kinetic energy.
type VppSign int

const (
	VppMinus VppSign = -1
	VppPlus  VppSign = 1
)

// GCState is the four-component dynamical state of the guiding-centre
// equations: the curvilinear position normalised by Lref followed by the
// parallel velocity normalised by Vref.
type GCState [4]float64

// GuidingCentre implements the guiding-centre equations of motion [R.
// Littlejohn, J. Plasma Phys. 29, 111 (1983)] for a charged particle under a
// background electromagnetic field, written in general curvilinear
// coordinates. The reduction replaces the fast gyration with an adiabatic
// magnetic moment mu, trading the full Lorentz six-component state for the
// guiding centre's four components and one averaged drift velocity.
type GuidingCentre struct {
	lref, vref, tref, qomTilde, muTilde float64
	magnetic                            fields.FieldC1
	electric                            fields.FieldC0
	iBTimeFactor, iETimeFactor          float64
	orefTilde, iOrefTilde               float64
	metric                              metrics.ConnectedMetric
}

// NewGuidingCentre builds the guiding-centre equations of motion for a
// particle with charge-to-mass ratio qom (normalised to the proton's e/m_p)
// and magnetic moment mu (normalised to Uref/Bref). The magnetic field is
// mandatory and must be continuously differentiable; the electric field may
// be nil, but if supplied must share the magnetic field's metrics.Morphism.
func NewGuidingCentre(lref, vref, qom, mu float64, magnetic fields.FieldC1, electric fields.FieldC0) (*GuidingCentre, error) {
	if magnetic == nil {
		return nil, chk.Err("dynamics.NewGuidingCentre: nil magnetic field")
	}
	if electric != nil && electric.Metric() != magnetic.Metric() {
		return nil, chk.Err("dynamics.NewGuidingCentre: mismatched E/B coordinates")
	}
	tref := lref / vref
	orefTilde := qom * codata.ElementaryCharge / codata.ProtonMass * magnetic.MFactor() * tref
	g := &GuidingCentre{
		lref: lref, vref: vref, tref: tref, qomTilde: qom, muTilde: mu,
		magnetic:     magnetic,
		electric:     electric,
		iBTimeFactor: tref / magnetic.TFactor(),
		orefTilde:    orefTilde,
		iOrefTilde:   1 / orefTilde,
		metric:       magnetic.ConnectedMetric(),
	}
	if electric != nil {
		g.iETimeFactor = tref / electric.TFactor()
	}
	return g, nil
}

func (g *GuidingCentre) Lref() float64                  { return g.lref }
func (g *GuidingCentre) Tref() float64                  { return g.tref }
func (g *GuidingCentre) Vref() float64                  { return g.vref }
func (g *GuidingCentre) MuTilde() float64               { return g.muTilde }
func (g *GuidingCentre) QomTilde() float64               { return g.qomTilde }
func (g *GuidingCentre) OrefTilde() float64              { return g.orefTilde }
func (g *GuidingCentre) MagneticField() fields.FieldC1   { return g.magnetic }
func (g *GuidingCentre) ElectricField() fields.FieldC0   { return g.electric }

// GetVpp extracts the normalised parallel velocity from a state.
func (g *GuidingCentre) GetVpp(s GCState) float64 { return s[3] }

// GetPosition extracts the curvilinear position from a state.
func (g *GuidingCentre) GetPosition(s GCState) core.IR3 {
	return core.NewIR3(g.lref*s[0], g.lref*s[1], g.lref*s[2])
}

// GenerateState builds a state at the given curvilinear position and
// normalised kinetic energy, choosing the parallel-velocity sign.
func (g *GuidingCentre) GenerateState(position core.IR3, energyTilde float64, sign VppSign, time float64) GCState {
	iLref := 1 / g.lref
	bTime := time * g.iBTimeFactor
	B := fields.Magnitude(g.magnetic, position, bTime)
	vpp := float64(sign) * math.Sqrt(energyTilde-g.muTilde*B)
	return GCState{iLref * position[core.U], iLref * position[core.V], iLref * position[core.W], vpp}
}

// EnergyParallel returns the parallel kinetic energy of the state, normalised
// to Uref.
func (g *GuidingCentre) EnergyParallel(s GCState) float64 {
	vpp := g.GetVpp(s)
	return vpp * vpp
}

// EnergyPerpendicular returns the perpendicular (gyration) kinetic energy of
// the state, normalised to Uref.
func (g *GuidingCentre) EnergyPerpendicular(s GCState, time float64) float64 {
	bTime := time * g.iBTimeFactor
	B := fields.Magnitude(g.magnetic, g.GetPosition(s), bTime)
	return g.muTilde * B
}

// Derivative evaluates d(s)/d(tau) at state s and normalised time tau.
func (g *GuidingCentre) Derivative(s GCState, tau float64) GCState {
	q := g.GetPosition(s)
	vpp := g.GetVpp(s)
	jacobian := g.metric.Jacobian(q)
	bTime := tau * g.iBTimeFactor
	covariantB := fields.CovariantVersor(g.magnetic, q, bTime)
	contravariantB := fields.ContravariantVersor(g.magnetic, q, bTime)

	iOmegaTilde, iota, cTilde, dTilde := g.dynamicalSystemCoefficients(q, vpp, bTime, jacobian, covariantB)

	inner := cTilde.Scale(vpp).Add(core.CrossProductV(core.Contravariant, covariantB, dTilde, jacobian))
	dotX := contravariantB.Scale(vpp).Add(inner.Scale(iOmegaTilde)).Scale(iota)
	dotVpp := -iota * core.InnerProduct(contravariantB.Add(cTilde.Scale(iOmegaTilde)), dTilde)
	return GCState{dotX[core.U], dotX[core.V], dotX[core.W], dotVpp}
}

// RHS evaluates the derivative of y at time T into f, matching the signature
// gosl/ode.ODE.Init expects of its right-hand-side function.
func (g *GuidingCentre) RHS(f []float64, dT, T float64, y []float64, args ...interface{}) error {
	var s GCState
	copy(s[:], y)
	ds := g.Derivative(s, T)
	copy(f, ds[:])
	return nil
}

// dynamicalSystemCoefficients returns {1/Omega~, iota, c~, d~}: the curvature
// drift c~ = vpp curl(b), the perpendicular-drift collector d~ = 1/2 mu~
// grad(B~) - E~ + vpp d(b)/d(tau), and the staggering factor iota = 1/(1 +
// (c~ . b)/Omega~).
func (g *GuidingCentre) dynamicalSystemCoefficients(q core.IR3, vpp, bTime, jacobian float64, covariantB core.IR3) (iOmegaTilde, iota float64, cTilde, dTilde core.IR3) {
	inverseB := 1.0 / fields.Magnitude(g.magnetic, q, bTime)
	gradB := fields.DelMagnitude(g.magnetic, q, bTime).Scale(g.lref)
	curlB, partialTB := g.delVersorB(q, bTime, inverseB, jacobian, gradB, covariantB)
	cTilde = curlB.Scale(vpp)
	dTilde = gradB.Scale(0.5 * g.muTilde).Add(partialTB.Scale(vpp))
	if g.electric != nil {
		eTime := bTime * (g.iETimeFactor / g.iBTimeFactor)
		dTilde = dTilde.Sub(fields.Covariant(g.electric, q, eTime).Scale(g.orefTilde))
	}
	iOmegaTilde = g.iOrefTilde * inverseB
	iota = 1.0 / (1.0 + iOmegaTilde*core.InnerProduct(covariantB, cTilde))
	return
}

// delVersorB returns {curl(b), d(b)/d(tau)}, built from B = b * |B| via curl
// B = |B| curl(b) + grad(|B|) x b and d(B)/d(tau) = |B| d(b)/d(tau) + b
// d(|B|)/d(tau).
func (g *GuidingCentre) delVersorB(q core.IR3, bTime, inverseB, jacobian float64, gradB, covariantB core.IR3) (curlB, partialTB core.IR3) {
	partialTBmag := g.iBTimeFactor * fields.PartialTMagnitude(g.magnetic, q, bTime)
	curlB = fields.Curl(g.magnetic, q, bTime).Scale(g.lref).
		Sub(core.CrossProductV(core.Contravariant, gradB, covariantB, jacobian)).
		Scale(inverseB)
	partialTB = fields.PartialTCovariant(g.magnetic, q, bTime).Scale(g.iBTimeFactor).
		Sub(covariantB.Scale(partialTBmag)).
		Scale(inverseB)
	return
}
