// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// Package metrics implements the differential-geometry layer that connects
// curvilinear flux coordinates q=(u,v,w) to cartesian space: a Morphism maps
// q into cartesian x and back, and a ConnectedMetric derives every metric
// quantity (covariant/contravariant metric, Jacobian, Christoffel-free
// raising/lowering of vectors) from that morphism alone.
package metrics

import "github.com/cpmech/gyronimo/core"

// Morphism maps curvilinear coordinates q into cartesian coordinates x (SI
// units) and back, exposing the map's first and second partial derivatives.
// Implementations must be immutable after construction so that concurrent
// readers are trivially safe.
type Morphism interface {
	// Transform returns x(q).
	Transform(q core.IR3) core.IR3
	// Inverse returns q(x), the inverse of Transform.
	Inverse(x core.IR3) core.IR3
	// Del returns the Jacobian matrix d(x^i)/d(q^j) at q.
	Del(q core.IR3) core.DIR3
	// DDel returns the second derivatives d^2(x^i)/d(q^j)d(q^k) at q.
	DDel(q core.IR3) core.DDIR3
}

// ConnectedMetric adapts any Morphism into the full metric API by deriving
// every quantity from Del/DDel/Transform/Inverse alone; a concrete metric
// need only embed this and supply a Morphism to get Jacobian, raising and
// lowering, and the tangent/dual bases for free. A Morphism may still
// override Jacobian and/or DelInverse with a closed-form shortcut (Cartesian,
// Cylindrical, PolarTorus and Spherical all do, e.g. a diagonal metric never
// needs the general matrix inverse); ConnectedMetric.Jacobian/DelInverse
// dispatch to that override via jacobianOverrider/delInverseOverrider when
// the wrapped Morphism satisfies it, and fall back to the generic
// Del-derived computation otherwise.
type ConnectedMetric struct {
	M Morphism
}

// NewConnectedMetric wraps m with the default metric implementation.
func NewConnectedMetric(m Morphism) ConnectedMetric {
	return ConnectedMetric{M: m}
}

// jacobianOverrider is a Morphism that short-circuits ConnectedMetric's
// generic determinant with a closed form.
type jacobianOverrider interface {
	Jacobian(q core.IR3) float64
}

// delInverseOverrider is a Morphism that short-circuits ConnectedMetric's
// generic 3x3 matrix inverse with a closed form.
type delInverseOverrider interface {
	DelInverse(q core.IR3) core.DIR3
}

// Jacobian returns e_u . (e_v x e_w), the determinant of Del(q), or the
// wrapped Morphism's own closed form when it overrides jacobianOverrider.
func (c ConnectedMetric) Jacobian(q core.IR3) float64 {
	if j, ok := c.M.(jacobianOverrider); ok {
		return j.Jacobian(q)
	}
	return c.M.Del(q).Determinant()
}

// DelInverse returns d(q^i)/d(x^j) at q, the inverse of Del(q), or the
// wrapped Morphism's own closed form when it overrides delInverseOverrider.
func (c ConnectedMetric) DelInverse(q core.IR3) core.DIR3 {
	if d, ok := c.M.(delInverseOverrider); ok {
		return d.DelInverse(q)
	}
	return c.M.Del(q).Inverse()
}

// ToCovariant returns the covariant components at q of the cartesian vector A.
func (c ConnectedMetric) ToCovariant(A core.IR3, q core.IR3) core.IR3 {
	return core.ContractFirstDIR3(c.M.Del(q), A)
}

// ToContravariant returns the contravariant components at q of the cartesian
// vector A.
func (c ConnectedMetric) ToContravariant(A core.IR3, q core.IR3) core.IR3 {
	return core.ContractSecondDIR3(c.DelInverse(q), A)
}

// FromCovariant returns the cartesian vector whose covariant components at q
// are A.
func (c ConnectedMetric) FromCovariant(A core.IR3, q core.IR3) core.IR3 {
	return core.ContractFirstDIR3(c.DelInverse(q), A)
}

// FromContravariant returns the cartesian vector whose contravariant
// components at q are A.
func (c ConnectedMetric) FromContravariant(A core.IR3, q core.IR3) core.IR3 {
	return core.ContractSecondDIR3(c.M.Del(q), A)
}

// Translation returns the curvilinear coordinates of x(q)+delta.
func (c ConnectedMetric) Translation(q, delta core.IR3) core.IR3 {
	x := c.M.Transform(q)
	return c.M.Inverse(x.Add(delta))
}

// TanBasis returns the tangent basis e_gamma = d(x)/d(q^gamma) at q, one
// vector per curvilinear direction.
func (c ConnectedMetric) TanBasis(q core.IR3) [3]core.IR3 {
	return exportBasisSet(c.M.Del(q))
}

// DualBasis returns the dual basis e^gamma = grad(q^gamma) at q.
func (c ConnectedMetric) DualBasis(q core.IR3) [3]core.IR3 {
	return exportBasisSet(c.DelInverse(q))
}

// CovariantMetric returns the covariant metric tensor g_ij = e_i . e_j at q.
func (c ConnectedMetric) CovariantMetric(q core.IR3) core.SM3 {
	e := c.TanBasis(q)
	return core.NewSM3(
		e[0].Dot(e[0]), e[0].Dot(e[1]), e[0].Dot(e[2]),
		e[1].Dot(e[1]), e[1].Dot(e[2]), e[2].Dot(e[2]))
}

// ContravariantMetric returns the contravariant metric tensor g^ij, the
// inverse of CovariantMetric.
func (c ConnectedMetric) ContravariantMetric(q core.IR3) core.SM3 {
	return c.CovariantMetric(q).Inverse()
}

// Christoffel returns the Christoffel symbols of the second kind at q,
// Gamma^k_ij = e^k . (d_i d_j x), obtained by contracting the dual basis
// (the rows of DelInverse) with the morphism's second derivatives.
func (c ConnectedMetric) Christoffel(q core.IR3) core.DDIR3 {
	return core.ContractSecondDIR3DDIR3(c.DelInverse(q), c.M.DDel(q))
}

// InertialForce returns the contravariant components of the fictitious force
// that a particle moving with contravariant velocity v at q experiences
// purely from the curvature of the coordinates, inertial_force^k =
// -Gamma^k_ij v^i v^j. Adding this term to d(v)/d(tau) is what turns the flat
// equation of motion in cartesian coordinates into the correct one in a
// general curvilinear chart.
func (c ConnectedMetric) InertialForce(q, v core.IR3) core.IR3 {
	gamma := c.Christoffel(q)
	var f core.IR3
	for k := 0; k < 3; k++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				sum += gamma.At(k, i, j) * v[i] * v[j]
			}
		}
		f[k] = -sum
	}
	return f
}

func exportBasisSet(d core.DIR3) [3]core.IR3 {
	return [3]core.IR3{
		core.NewIR3(d.At(core.U, core.U), d.At(core.V, core.U), d.At(core.W, core.U)),
		core.NewIR3(d.At(core.U, core.V), d.At(core.V, core.V), d.At(core.W, core.V)),
		core.NewIR3(d.At(core.U, core.W), d.At(core.V, core.W), d.At(core.W, core.W)),
	}
}
