// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

// ContractFirstDIR3 returns C_i = B_j ∂_i A^j (or C_i = B^j ∂_i A_j): the
// first-index contraction of a dIR3 with an IR3. Respect the variances of A
// and B; not checked at runtime.
func ContractFirstDIR3(a DIR3, b IR3) IR3 {
	return IR3{
		a[Uu]*b[U] + a[Vu]*b[V] + a[Wu]*b[W],
		a[Uv]*b[U] + a[Vv]*b[V] + a[Wv]*b[W],
		a[Uw]*b[U] + a[Vw]*b[V] + a[Ww]*b[W],
	}
}

// ContractSecondDIR3 returns C^i = B^j ∂_j A^i (or C_i = B^j ∂_j A_i): the
// second-index contraction of a dIR3 with an IR3.
func ContractSecondDIR3(a DIR3, b IR3) IR3 {
	return IR3{
		a[Uu]*b[U] + a[Uv]*b[V] + a[Uw]*b[W],
		a[Vu]*b[U] + a[Vv]*b[V] + a[Vw]*b[W],
		a[Wu]*b[U] + a[Wv]*b[V] + a[Ww]*b[W],
	}
}

// ContractFirstDDIR3SM3 returns the first-index contraction of a ddIR3 with
// an SM3: C^k_ij = A_m,ij B^mk (or C_k,ij = A^m,ij B_mk).
func ContractFirstDDIR3SM3(a DDIR3, b SM3) DDIR3 {
	return DDIR3{
		b[SMuu]*a[Uuu] + b[SMuv]*a[Vuu] + b[SMuw]*a[Wuu],
		b[SMuu]*a[Uuv] + b[SMuv]*a[Vuv] + b[SMuw]*a[Wuv],
		b[SMuu]*a[Uuw] + b[SMuv]*a[Vuw] + b[SMuw]*a[Wuw],
		b[SMuu]*a[Uvv] + b[SMuv]*a[Vvv] + b[SMuw]*a[Wvv],
		b[SMuu]*a[Uvw] + b[SMuv]*a[Vvw] + b[SMuw]*a[Wvw],
		b[SMuu]*a[Uww] + b[SMuv]*a[Vww] + b[SMuw]*a[Www],
		b[SMuv]*a[Uuu] + b[SMvv]*a[Vuu] + b[SMvw]*a[Wuu],
		b[SMuv]*a[Uuv] + b[SMvv]*a[Vuv] + b[SMvw]*a[Wuv],
		b[SMuv]*a[Uuw] + b[SMvv]*a[Vuw] + b[SMvw]*a[Wuw],
		b[SMuv]*a[Uvv] + b[SMvv]*a[Vvv] + b[SMvw]*a[Wvv],
		b[SMuv]*a[Uvw] + b[SMvv]*a[Vvw] + b[SMvw]*a[Wvw],
		b[SMuv]*a[Uww] + b[SMvv]*a[Vww] + b[SMvw]*a[Www],
		b[SMuw]*a[Uuu] + b[SMvw]*a[Vuu] + b[SMww]*a[Wuu],
		b[SMuw]*a[Uuv] + b[SMvw]*a[Vuv] + b[SMww]*a[Wuv],
		b[SMuw]*a[Uuw] + b[SMvw]*a[Vuw] + b[SMww]*a[Wuw],
		b[SMuw]*a[Uvv] + b[SMvw]*a[Vvv] + b[SMww]*a[Wvv],
		b[SMuw]*a[Uvw] + b[SMvw]*a[Vvw] + b[SMww]*a[Wvw],
		b[SMuw]*a[Uww] + b[SMvw]*a[Vww] + b[SMww]*a[Www],
	}
}

// ContractFirstDIR3DDIR3 returns the first-index contraction of a dIR3 with
// a ddIR3: C_ijk = A^m,i B_m,jk.
func ContractFirstDIR3DDIR3(a DIR3, b DDIR3) DDIR3 {
	return DDIR3{
		a[Uu]*b[Uuu] + a[Vu]*b[Vuu] + a[Wu]*b[Wuu],
		a[Uu]*b[Uuv] + a[Vu]*b[Vuv] + a[Wu]*b[Wuv],
		a[Uu]*b[Uuw] + a[Vu]*b[Vuw] + a[Wu]*b[Wuw],
		a[Uu]*b[Uvv] + a[Vu]*b[Vvv] + a[Wu]*b[Wvv],
		a[Uu]*b[Uvw] + a[Vu]*b[Vvw] + a[Wu]*b[Wvw],
		a[Uu]*b[Uww] + a[Vu]*b[Vww] + a[Wu]*b[Www],
		a[Uv]*b[Uuu] + a[Vv]*b[Vuu] + a[Wv]*b[Wuu],
		a[Uv]*b[Uuv] + a[Vv]*b[Vuv] + a[Wv]*b[Wuv],
		a[Uv]*b[Uuw] + a[Vv]*b[Vuw] + a[Wv]*b[Wuw],
		a[Uv]*b[Uvv] + a[Vv]*b[Vvv] + a[Wv]*b[Wvv],
		a[Uv]*b[Uvw] + a[Vv]*b[Vvw] + a[Wv]*b[Wvw],
		a[Uv]*b[Uww] + a[Vv]*b[Vww] + a[Wv]*b[Www],
		a[Uw]*b[Uuu] + a[Vw]*b[Vuu] + a[Ww]*b[Wuu],
		a[Uw]*b[Uuv] + a[Vw]*b[Vuv] + a[Ww]*b[Wuv],
		a[Uw]*b[Uuw] + a[Vw]*b[Vuw] + a[Ww]*b[Wuw],
		a[Uw]*b[Uvv] + a[Vw]*b[Vvv] + a[Ww]*b[Wvv],
		a[Uw]*b[Uvw] + a[Vw]*b[Vvw] + a[Ww]*b[Wvw],
		a[Uw]*b[Uww] + a[Vw]*b[Vww] + a[Ww]*b[Www],
	}
}

// ContractSecondDIR3DDIR3 returns the second-index contraction of a dIR3
// with a ddIR3: C^i_jk = A^i,m B^m,jk.
func ContractSecondDIR3DDIR3(a DIR3, b DDIR3) DDIR3 {
	return DDIR3{
		a[Uu]*b[Uuu] + a[Uv]*b[Vuu] + a[Uw]*b[Wuu],
		a[Uu]*b[Uuv] + a[Uv]*b[Vuv] + a[Uw]*b[Wuv],
		a[Uu]*b[Uuw] + a[Uv]*b[Vuw] + a[Uw]*b[Wuw],
		a[Uu]*b[Uvv] + a[Uv]*b[Vvv] + a[Uw]*b[Wvv],
		a[Uu]*b[Uvw] + a[Uv]*b[Vvw] + a[Uw]*b[Wvw],
		a[Uu]*b[Uww] + a[Uv]*b[Vww] + a[Uw]*b[Www],
		a[Vu]*b[Uuu] + a[Vv]*b[Vuu] + a[Vw]*b[Wuu],
		a[Vu]*b[Uuv] + a[Vv]*b[Vuv] + a[Vw]*b[Wuv],
		a[Vu]*b[Uuw] + a[Vv]*b[Vuw] + a[Vw]*b[Wuw],
		a[Vu]*b[Uvv] + a[Vv]*b[Vvv] + a[Vw]*b[Wvv],
		a[Vu]*b[Uvw] + a[Vv]*b[Vvw] + a[Vw]*b[Wvw],
		a[Vu]*b[Uww] + a[Vv]*b[Vww] + a[Vw]*b[Www],
		a[Wu]*b[Uuu] + a[Wv]*b[Vuu] + a[Ww]*b[Wuu],
		a[Wu]*b[Uuv] + a[Wv]*b[Vuv] + a[Ww]*b[Wuv],
		a[Wu]*b[Uuw] + a[Wv]*b[Vuw] + a[Ww]*b[Wuw],
		a[Wu]*b[Uvv] + a[Wv]*b[Vvv] + a[Ww]*b[Wvv],
		a[Wu]*b[Uvw] + a[Wv]*b[Vvw] + a[Ww]*b[Wvw],
		a[Wu]*b[Uww] + a[Wv]*b[Vww] + a[Ww]*b[Www],
	}
}

// ContractFirstDSM3 returns the first-index contraction of a dSM3 with an
// IR3: C_ij = B^k ∂_j A_ki (or C^i_j = B_k ∂_j A^ki).
func ContractFirstDSM3(a DSM3, b IR3) DIR3 {
	return DIR3{
		a.At(U, U, U)*b[U] + a.At(V, U, U)*b[V] + a.At(W, U, U)*b[W],
		a.At(U, U, V)*b[U] + a.At(V, U, V)*b[V] + a.At(W, U, V)*b[W],
		a.At(U, U, W)*b[U] + a.At(V, U, W)*b[V] + a.At(W, U, W)*b[W],
		a.At(U, V, U)*b[U] + a.At(V, V, U)*b[V] + a.At(W, V, U)*b[W],
		a.At(U, V, V)*b[U] + a.At(V, V, V)*b[V] + a.At(W, V, V)*b[W],
		a.At(U, V, W)*b[U] + a.At(V, V, W)*b[V] + a.At(W, V, W)*b[W],
		a.At(U, W, U)*b[U] + a.At(V, W, U)*b[V] + a.At(W, W, U)*b[W],
		a.At(U, W, V)*b[U] + a.At(V, W, V)*b[V] + a.At(W, W, V)*b[W],
		a.At(U, W, W)*b[U] + a.At(V, W, W)*b[V] + a.At(W, W, W)*b[W],
	}
}

// ContractSecondDSM3 returns the second-index contraction of a dSM3 with an
// IR3; identical to ContractFirstDSM3 by the symmetry of dSM3 in its first
// two indices.
func ContractSecondDSM3(a DSM3, b IR3) DIR3 { return ContractFirstDSM3(a, b) }

// ContractThirdDSM3 returns the third-index contraction of a dSM3 with an
// IR3: C_ij = B^k ∂_k A_ij (or C^ij = B_k ∂_k A^ij).
func ContractThirdDSM3(a DSM3, b IR3) DIR3 {
	return DIR3{
		a.At(U, U, U)*b[U] + a.At(U, U, V)*b[V] + a.At(U, U, W)*b[W],
		a.At(U, V, U)*b[U] + a.At(U, V, V)*b[V] + a.At(U, V, W)*b[W],
		a.At(U, W, U)*b[U] + a.At(U, W, V)*b[V] + a.At(U, W, W)*b[W],
		a.At(V, U, U)*b[U] + a.At(V, U, V)*b[V] + a.At(V, U, W)*b[W],
		a.At(V, V, U)*b[U] + a.At(V, V, V)*b[V] + a.At(V, V, W)*b[W],
		a.At(V, W, U)*b[U] + a.At(V, W, V)*b[V] + a.At(V, W, W)*b[W],
		a.At(W, U, U)*b[U] + a.At(W, U, V)*b[V] + a.At(W, U, W)*b[W],
		a.At(W, V, U)*b[U] + a.At(W, V, V)*b[V] + a.At(W, V, W)*b[W],
		a.At(W, W, U)*b[U] + a.At(W, W, V)*b[V] + a.At(W, W, W)*b[W],
	}
}

// ContractFirstDIR3SM3 returns the first-index contraction of a dIR3 with an
// SM3: C_ij = B_ik ∂_j A^k (or C^i_j = B^ik ∂_j A_k).
func ContractFirstDIR3SM3(a DIR3, b SM3) DIR3 {
	return DIR3{
		b[SMuu]*a[Uu] + b[SMuv]*a[Vu] + b[SMuw]*a[Wu],
		b[SMuu]*a[Uv] + b[SMuv]*a[Vv] + b[SMuw]*a[Wv],
		b[SMuu]*a[Uw] + b[SMuv]*a[Vw] + b[SMuw]*a[Ww],
		b[SMuv]*a[Uu] + b[SMvv]*a[Vu] + b[SMvw]*a[Wu],
		b[SMuv]*a[Uv] + b[SMvv]*a[Vv] + b[SMvw]*a[Wv],
		b[SMuv]*a[Uw] + b[SMvv]*a[Vw] + b[SMvw]*a[Ww],
		b[SMuw]*a[Uu] + b[SMvw]*a[Vu] + b[SMww]*a[Wu],
		b[SMuw]*a[Uv] + b[SMvw]*a[Vv] + b[SMww]*a[Wv],
		b[SMuw]*a[Uw] + b[SMvw]*a[Vw] + b[SMww]*a[Ww],
	}
}

// ContractSecondDIR3SM3 returns the second-index contraction of a dIR3 with
// an SM3: C^ij = B^ki ∂_k A^j.
func ContractSecondDIR3SM3(a DIR3, b SM3) DIR3 {
	return DIR3{
		b[SMuu]*a[Uu] + b[SMuv]*a[Uv] + b[SMuw]*a[Uw],
		b[SMuu]*a[Vu] + b[SMuv]*a[Vv] + b[SMuw]*a[Vw],
		b[SMuu]*a[Wu] + b[SMuv]*a[Wv] + b[SMuw]*a[Ww],
		b[SMuv]*a[Uu] + b[SMvv]*a[Uv] + b[SMvw]*a[Uw],
		b[SMuv]*a[Vu] + b[SMvv]*a[Vv] + b[SMvw]*a[Vw],
		b[SMuv]*a[Wu] + b[SMvv]*a[Wv] + b[SMvw]*a[Ww],
		b[SMuw]*a[Uu] + b[SMvw]*a[Uv] + b[SMww]*a[Uw],
		b[SMuw]*a[Vu] + b[SMvw]*a[Vv] + b[SMww]*a[Vw],
		b[SMuw]*a[Wu] + b[SMvw]*a[Wv] + b[SMww]*a[Ww],
	}
}
