// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// package core implements the tensor algebra over ℝ³ shared by the geometry
// and dynamics packages: IR3 vectors, dIR3/ddIR3 derivative tensors, SM3/dSM3
// symmetric metrics, and the contractions between them.
package core

import "math"

// Index names the three components of an IR3, and the two free indices of a
// dIR3/ddIR3/dSM3 row. Variance (covariant vs contravariant) is not carried by
// the type; it is carried by which conversion the caller invokes.
const (
	U = 0
	V = 1
	W = 2
)

// IR3 is a 3-tuple representing, depending on context, a point, a
// contravariant vector or a covariant vector.
type IR3 [3]float64

// NewIR3 builds an IR3 from its three components.
func NewIR3(u, v, w float64) IR3 { return IR3{u, v, w} }

// Add returns a+b, elementwise.
func (a IR3) Add(b IR3) IR3 { return IR3{a[U] + b[U], a[V] + b[V], a[W] + b[W]} }

// Sub returns a-b, elementwise.
func (a IR3) Sub(b IR3) IR3 { return IR3{a[U] - b[U], a[V] - b[V], a[W] - b[W]} }

// Scale returns s*a, elementwise.
func (a IR3) Scale(s float64) IR3 { return IR3{s * a[U], s * a[V], s * a[W]} }

// AddScaled returns a+s*b, elementwise; the common "a = b + s*c" shape used
// throughout the dynamics RHS evaluations, kept allocation-free because IR3
// is a plain value type returned on the stack.
func (a IR3) AddScaled(s float64, b IR3) IR3 {
	return IR3{a[U] + s*b[U], a[V] + s*b[V], a[W] + s*b[W]}
}

// Dot is the Cartesian (index-blind) inner product; callers that need the
// variance-aware contraction over a metric should use InnerProduct instead.
func (a IR3) Dot(b IR3) float64 { return a[U]*b[U] + a[V]*b[V] + a[W]*b[W] }

// Norm is the Cartesian Euclidean norm.
func (a IR3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// InnerProduct contracts a covariant with a contravariant IR3:
// A_u B^u + A_v B^v + A_w B^w. The caller is responsible for passing
// arguments of opposite variance; this is not checked at runtime.
func InnerProduct(a, b IR3) float64 { return a[U]*b[U] + a[V]*b[V] + a[W]*b[W] }

// CrossProduct returns the Cartesian cross product a×b; valid only under a
// Cartesian interpretation of the components (both arguments of the same,
// ordinary, variance).
func CrossProduct(a, b IR3) IR3 {
	return IR3{
		a[V]*b[W] - a[W]*b[V],
		a[W]*b[U] - a[U]*b[W],
		a[U]*b[V] - a[V]*b[U],
	}
}

// Variance selects which index convention CrossProductV resolves against.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
)

// CrossProductV returns the variance-aware cross product: for Covariant
// arguments (both a and b contravariant, result covariant) it returns
// CrossProduct(a,b)*J; for Contravariant arguments (both covariant, result
// contravariant) it returns CrossProduct(a,b)/J. J is the morphism jacobian
// at the evaluation point.
func CrossProductV(v Variance, a, b IR3, jacobian float64) IR3 {
	c := CrossProduct(a, b)
	if v == Covariant {
		return c.Scale(jacobian)
	}
	return c.Scale(1.0 / jacobian)
}
