// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// Package fields implements adimensional, time-dependent vector fields over
// the curvilinear coordinates of a metrics.Morphism: FieldC0 for fields that
// only return contravariant components, and FieldC1 for fields that are also
// continuously differentiable and so can provide curl, gradient-of-magnitude
// and partial-time-derivative queries. The general-purpose derived queries
// (Covariant, Magnitude, Curl, ...) are package-level functions rather than
// interface methods, since Go has no way for a base type to call back into an
// overriding method the way the C++ original does.
package fields

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

const epsilon = 2.220446049250313e-16

// FieldC0 is a time-dependent field in R^3 whose only required query is its
// contravariant components at a curvilinear position and normalised time.
type FieldC0 interface {
	Contravariant(position core.IR3, time float64) core.IR3
	Metric() metrics.Morphism
	ConnectedMetric() metrics.ConnectedMetric
	MFactor() float64
	TFactor() float64
}

// FieldC1 additionally exposes the first-order partials of the contravariant
// components, with respect to position and to normalised time.
type FieldC1 interface {
	FieldC0
	DelContravariant(position core.IR3, time float64) core.DIR3
	PartialTContravariant(position core.IR3, time float64) core.IR3
}

// Base stores the normalisation factors and the morphism shared by every
// concrete field, plus the ConnectedMetric built once over that morphism at
// construction time; embed it and implement Contravariant (and, for FieldC1,
// DelContravariant/PartialTContravariant) to satisfy the interfaces above.
type Base struct {
	MFactorValue, TFactorValue float64
	MorphismValue              metrics.Morphism
	ConnectedMetricValue       metrics.ConnectedMetric
}

// NewBase validates the normalisation factors and builds a Base. mFactor and
// tFactor restore SI units to the adimensional field and time respectively.
func NewBase(mFactor, tFactor float64, m metrics.Morphism) (Base, error) {
	if m == nil {
		return Base{}, chk.Err("fields.NewBase: nil morphism")
	}
	if tFactor < epsilon {
		return Base{}, chk.Err("fields.NewBase: non-positive t_factor")
	}
	if mFactor < epsilon {
		return Base{}, chk.Err("fields.NewBase: non-positive m_factor")
	}
	return Base{
		MFactorValue: mFactor, TFactorValue: tFactor, MorphismValue: m,
		ConnectedMetricValue: metrics.NewConnectedMetric(m),
	}, nil
}

func (b Base) MFactor() float64 { return b.MFactorValue }
func (b Base) TFactor() float64 { return b.TFactorValue }
func (b Base) Metric() metrics.Morphism { return b.MorphismValue }

// ConnectedMetric returns the field's own metric, built once from its
// morphism at construction: callers on a hot path (an ODE right-hand side
// evaluated every step) should use this instead of re-deriving
// metrics.NewConnectedMetric(f.Metric()) each call.
func (b Base) ConnectedMetric() metrics.ConnectedMetric { return b.ConnectedMetricValue }

// Covariant returns the covariant components of f at (position, time).
func Covariant(f FieldC0, position core.IR3, time float64) core.IR3 {
	cm := f.ConnectedMetric()
	A := f.Contravariant(position, time)
	return cm.ToCovariant(A, position)
}

// Magnitude returns sqrt(A_i A^i) for f's contravariant field A.
func Magnitude(f FieldC0, position core.IR3, time float64) float64 {
	A := f.Contravariant(position, time)
	B := Covariant(f, position, time)
	return math.Sqrt(core.InnerProduct(A, B))
}

// CovariantVersor returns the unit covariant direction of f.
func CovariantVersor(f FieldC0, position core.IR3, time float64) core.IR3 {
	im := 1.0 / Magnitude(f, position, time)
	A := Covariant(f, position, time)
	return A.Scale(im)
}

// ContravariantVersor returns the unit contravariant direction of f.
func ContravariantVersor(f FieldC0, position core.IR3, time float64) core.IR3 {
	im := 1.0 / Magnitude(f, position, time)
	A := f.Contravariant(position, time)
	return A.Scale(im)
}

// DelCovariant returns the partial derivatives of the covariant components,
// d_i E_j = g_jk d_i(E^k) + d_i(g_jk) E^k, as entry (j,i) of the result. The
// metric derivative d_i(g_jk) = d_i(e_j).e_k + e_j.d_i(e_k) is taken from the
// morphism's Del and DDel.
func DelCovariant(f FieldC1, position core.IR3, time float64) core.DIR3 {
	cm := f.ConnectedMetric()
	g := cm.CovariantMetric(position)
	dE := f.DelContravariant(position, time)
	dEcov := core.ContractFirstDIR3SM3(dE, g)
	E := f.Contravariant(position, time)
	e, de := cm.M.Del(position), cm.M.DDel(position)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				for a := 0; a < 3; a++ {
					sum += E[k] * (de.At(a, j, i)*e.At(a, k) + e.At(a, j)*de.At(a, k, i))
				}
			}
			dEcov.Set(j, i, dEcov.At(j, i)+sum)
		}
	}
	return dEcov
}

// PartialTCovariant returns the partial time derivative of the covariant
// components, d_t E_j = g_jk d_t(E^k).
func PartialTCovariant(f FieldC1, position core.IR3, time float64) core.IR3 {
	cm := f.ConnectedMetric()
	dE := f.PartialTContravariant(position, time)
	return cm.ToCovariant(dE, position)
}

// Curl returns the contravariant components of the curl of f, J curl^k =
// e^kij (d_i E_j - d_j E_i).
func Curl(f FieldC1, position core.IR3, time float64) core.IR3 {
	cm := f.ConnectedMetric()
	ijacobian := 1.0 / cm.Jacobian(position)
	dE := DelCovariant(f, position, time)
	return core.NewIR3(
		(dE.At(core.W, core.V)-dE.At(core.V, core.W))*ijacobian,
		(dE.At(core.U, core.W)-dE.At(core.W, core.U))*ijacobian,
		(dE.At(core.V, core.U)-dE.At(core.U, core.V))*ijacobian)
}

// DelMagnitude returns the covariant components of the gradient of f's
// magnitude, from B^2=B_j B^j differentiated.
func DelMagnitude(f FieldC1, position core.IR3, time float64) core.IR3 {
	mag := Magnitude(f, position, time)
	dEcov := DelCovariant(f, position, time)
	A := f.Contravariant(position, time)
	dEcontra := f.DelContravariant(position, time)
	Acov := Covariant(f, position, time)
	term1 := core.ContractFirstDIR3(dEcov, A)
	term2 := core.ContractFirstDIR3(dEcontra, Acov)
	return term1.Add(term2).Scale(0.5 / mag)
}

// PartialTMagnitude returns the partial time derivative of f's magnitude.
func PartialTMagnitude(f FieldC1, position core.IR3, time float64) float64 {
	mag := Magnitude(f, position, time)
	dtCov := PartialTCovariant(f, position, time)
	dtContra := f.PartialTContravariant(position, time)
	A := f.Contravariant(position, time)
	Acov := Covariant(f, position, time)
	return (core.InnerProduct(dtCov, A) + core.InnerProduct(dtContra, Acov)) / (2 * mag)
}
