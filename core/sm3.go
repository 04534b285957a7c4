// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

// SM3 is a symmetric 3x3 matrix with six independent entries, representing
// either g_ij (covariant metric) or g^ij (contravariant metric). Entries are
// ordered {uu,uv,uw,vv,vw,ww}.
const (
	SMuu = 0
	SMuv = 1
	SMuw = 2
	SMvv = 3
	SMvw = 4
	SMww = 5
)

// SM3 holds the six independent entries of a symmetric 3x3 matrix.
type SM3 [6]float64

// NewSM3 builds an SM3 from its six independent entries.
func NewSM3(uu, uv, uw, vv, vw, ww float64) SM3 {
	return SM3{uu, uv, uw, vv, vw, ww}
}

// smIndex maps a (row,col) pair, in any order, to the canonical offset.
func smIndex(row, col int) int {
	if row > col {
		row, col = col, row
	}
	switch {
	case row == U && col == U:
		return SMuu
	case row == U && col == V:
		return SMuv
	case row == U && col == W:
		return SMuw
	case row == V && col == V:
		return SMvv
	case row == V && col == W:
		return SMvw
	default:
		return SMww
	}
}

// At returns entry (row,col).
func (g SM3) At(row, col int) float64 { return g[smIndex(row, col)] }

// Determinant returns det(g).
func (g SM3) Determinant() float64 {
	return g[SMuu]*(g[SMvv]*g[SMww]-g[SMvw]*g[SMvw]) -
		g[SMuv]*(g[SMuv]*g[SMww]-g[SMvw]*g[SMuw]) +
		g[SMuw]*(g[SMuv]*g[SMvw]-g[SMvv]*g[SMuw])
}

// Inverse returns the matrix inverse of g by adjugate/determinant, itself
// symmetric. A singular input is not rejected: the result is NaN/Inf-laden.
func (g SM3) Inverse() SM3 {
	det := g.Determinant()
	idet := 1.0 / det
	return SM3{
		(g[SMvv]*g[SMww] - g[SMvw]*g[SMvw]) * idet,
		(g[SMuw]*g[SMvw] - g[SMuv]*g[SMww]) * idet,
		(g[SMuv]*g[SMvw] - g[SMuw]*g[SMvv]) * idet,
		(g[SMuu]*g[SMww] - g[SMuw]*g[SMuw]) * idet,
		(g[SMuw]*g[SMuv] - g[SMuu]*g[SMvw]) * idet,
		(g[SMuu]*g[SMvv] - g[SMuv]*g[SMuv]) * idet,
	}
}

// Contract returns C_i = g_ij B^j (or C^i = g^ij B_j): the covariant-metric
// contraction with an IR3 described in spec.md §4.1.
func (g SM3) Contract(b IR3) IR3 {
	return IR3{
		g[SMuu]*b[U] + g[SMuv]*b[V] + g[SMuw]*b[W],
		g[SMuv]*b[U] + g[SMvv]*b[V] + g[SMvw]*b[W],
		g[SMuw]*b[U] + g[SMvw]*b[V] + g[SMww]*b[W],
	}
}
