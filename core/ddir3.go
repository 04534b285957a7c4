// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

// ddIR3 holds the second-derivative tensor ∂_j∂_k A^i, symmetric in (j,k).
// Stored in canonical form with j <= k, 18 entries ordered by leading index i
// then the six (j,k) pairs {uu,uv,uw,vv,vw,ww}.
const (
	Uuu = 6*U + 0
	Uuv = 6*U + 1
	Uuw = 6*U + 2
	Uvv = 6*U + 3
	Uvw = 6*U + 4
	Uww = 6*U + 5
	Vuu = 6*V + 0
	Vuv = 6*V + 1
	Vuw = 6*V + 2
	Vvv = 6*V + 3
	Vvw = 6*V + 4
	Vww = 6*V + 5
	Wuu = 6*W + 0
	Wuv = 6*W + 1
	Wuw = 6*W + 2
	Wvv = 6*W + 3
	Wvw = 6*W + 4
	Www = 6*W + 5
)

// DDIR3 is an 18-tuple holding ∂_j∂_k A^i with j<=k.
type DDIR3 [18]float64

// jkIndex maps a (j,k) pair, in any order, to the canonical offset within the
// 6-entry block for a fixed leading index.
func jkIndex(j, k int) int {
	if j > k {
		j, k = k, j
	}
	switch {
	case j == U && k == U:
		return 0
	case j == U && k == V:
		return 1
	case j == U && k == W:
		return 2
	case j == V && k == V:
		return 3
	case j == V && k == W:
		return 4
	default:
		return 5
	}
}

// At returns entry (i,j,k); symmetric in (j,k).
func (d DDIR3) At(i, j, k int) float64 { return d[6*i+jkIndex(j, k)] }

// Set writes entry (i,j,k); symmetric in (j,k), so Set(i,j,k,.) and
// Set(i,k,j,.) address the same storage.
func (d *DDIR3) Set(i, j, k int, value float64) { d[6*i+jkIndex(j, k)] = value }

// Row returns the dIR3 obtained by fixing the second differentiation index
// to k, i.e. entry (i,j) of the result is ∂_j∂_k A^i for the given k.
func (d DDIR3) Row(k int) DIR3 {
	var r DIR3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, d.At(i, j, k))
		}
	}
	return r
}
