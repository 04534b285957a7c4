// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

// dIR3 index convention: entries are ordered {uu,uv,uw,vu,vv,vw,wu,wv,ww},
// row i is the component index, column j is the differentiation index, i.e.
// entry (i,j) holds ∂_j A^i (or ∂_j A_i, depending on the variance of A).
const (
	Uu = 3*U + U
	Uv = 3*U + V
	Uw = 3*U + W
	Vu = 3*V + U
	Vv = 3*V + V
	Vw = 3*V + W
	Wu = 3*W + U
	Wv = 3*W + V
	Ww = 3*W + W
)

// DIR3 is a 9-tuple holding a first-derivative tensor ∂_j A^i.
type DIR3 [9]float64

// NewDIR3 builds a DIR3 from its nine entries in row-major (i,j) order.
func NewDIR3(uu, uv, uw, vu, vv, vw, wu, wv, ww float64) DIR3 {
	return DIR3{uu, uv, uw, vu, vv, vw, wu, wv, ww}
}

// At returns entry (i,j).
func (d DIR3) At(i, j int) float64 { return d[3*i+j] }

// Set writes entry (i,j).
func (d *DIR3) Set(i, j int, value float64) { d[3*i+j] = value }

// Determinant returns det(d) interpreted as a dense 3x3 matrix.
func (d DIR3) Determinant() float64 {
	return d[Uu]*(d[Vv]*d[Ww]-d[Vw]*d[Wv]) -
		d[Uv]*(d[Vu]*d[Ww]-d[Vw]*d[Wu]) +
		d[Uw]*(d[Vu]*d[Wv]-d[Vv]*d[Wu])
}

// Inverse returns the matrix inverse of d by adjugate/determinant, the same
// construction as SM3's Inverse. A singular (or near-singular) input is not
// rejected here: the caller gets a NaN/Inf-laden result, per the §7 default
// described for tensor inversion.
func (d DIR3) Inverse() DIR3 {
	det := d.Determinant()
	idet := 1.0 / det
	return DIR3{
		(d[Vv]*d[Ww] - d[Vw]*d[Wv]) * idet,
		(d[Uw]*d[Wv] - d[Uv]*d[Ww]) * idet,
		(d[Uv]*d[Vw] - d[Uw]*d[Vv]) * idet,
		(d[Vw]*d[Wu] - d[Vu]*d[Ww]) * idet,
		(d[Uu]*d[Ww] - d[Uw]*d[Wu]) * idet,
		(d[Uw]*d[Vu] - d[Uu]*d[Vw]) * idet,
		(d[Vu]*d[Wv] - d[Vv]*d[Wu]) * idet,
		(d[Uv]*d[Wu] - d[Uu]*d[Wv]) * idet,
		(d[Uu]*d[Vv] - d[Uv]*d[Vu]) * idet,
	}
}

// Mul returns the matrix product d*b, both interpreted as dense 3x3.
func (d DIR3) Mul(b DIR3) DIR3 {
	var r DIR3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += d.At(i, k) * b.At(k, j)
			}
			r.Set(i, j, s)
		}
	}
	return r
}

// ApplyContravariant returns d·v treating v as a contravariant vector (the
// usual matrix-vector product): (d·v)^i = d^i_j v^j.
func (d DIR3) ApplyContravariant(v IR3) IR3 {
	return IR3{
		d[Uu]*v[U] + d[Uv]*v[V] + d[Uw]*v[W],
		d[Vu]*v[U] + d[Vv]*v[V] + d[Vw]*v[W],
		d[Wu]*v[U] + d[Wv]*v[V] + d[Ww]*v[W],
	}
}

// Transpose returns the transpose of d.
func (d DIR3) Transpose() DIR3 {
	return DIR3{d[Uu], d[Vu], d[Wu], d[Uv], d[Vv], d[Wv], d[Uw], d[Vw], d[Ww]}
}
