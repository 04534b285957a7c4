// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

// DSM3 holds ∂_k g_ij, symmetric in (i,j); 18 entries ordered by the six
// (i,j) pairs {uu,uv,uw,vv,vw,ww} (same order as SM3) then the differentiation
// index k.
type DSM3 [18]float64

// At returns entry (i,j,k); symmetric in (i,j).
func (d DSM3) At(i, j, k int) float64 { return d[3*smIndex(i, j)+k] }

// Set writes entry (i,j,k); symmetric in (i,j).
func (d *DSM3) Set(i, j, k int, value float64) { d[3*smIndex(i, j)+k] = value }

// Row returns the SM3 obtained by fixing the differentiation index to k,
// i.e. entry (i,j) of the result is ∂_k g_ij for the given k.
func (d DSM3) Row(k int) SM3 {
	var g SM3
	for pair := 0; pair < 6; pair++ {
		g[pair] = d[3*pair+k]
	}
	return g
}
