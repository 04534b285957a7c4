// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_sm3_inverse01(tst *testing.T) {

	chk.PrintTitle("sm3_inverse01")

	g := NewSM3(4, 1, 0, 3, 0.5, 2)
	ginv := g.Inverse()

	// cross-check against a dense la.Matrix inverse of the equivalent 3x3
	dense := la.MatAlloc(3, 3)
	dense[U][U], dense[U][V], dense[U][W] = g[SMuu], g[SMuv], g[SMuw]
	dense[V][U], dense[V][V], dense[V][W] = g[SMuv], g[SMvv], g[SMvw]
	dense[W][U], dense[W][V], dense[W][W] = g[SMuw], g[SMvw], g[SMww]
	denseInv := la.MatAlloc(3, 3)
	det, err := la.MatInv(denseInv, dense, 1e-13)
	if err != nil {
		tst.Fatalf("la.MatInv failed: %v", err)
	}
	if det == 0 {
		tst.Fatalf("singular test matrix")
	}

	chk.Float64(tst, "ginv[uu]", 1e-13, ginv[SMuu], denseInv[U][U])
	chk.Float64(tst, "ginv[uv]", 1e-13, ginv[SMuv], denseInv[U][V])
	chk.Float64(tst, "ginv[uw]", 1e-13, ginv[SMuw], denseInv[U][W])
	chk.Float64(tst, "ginv[vv]", 1e-13, ginv[SMvv], denseInv[V][V])
	chk.Float64(tst, "ginv[vw]", 1e-13, ginv[SMvw], denseInv[V][W])
	chk.Float64(tst, "ginv[ww]", 1e-13, ginv[SMww], denseInv[W][W])
}

func Test_sm3_inverse_idempotent01(tst *testing.T) {

	chk.PrintTitle("sm3_inverse_idempotent01")

	g := NewSM3(2, 0.2, 0.1, 3, 0.3, 4)
	roundtrip := g.Inverse().Inverse()
	chk.Vector(tst, "inverse(inverse(g))", 1e-10, roundtrip[:], g[:])
}

func Test_sm3_contract01(tst *testing.T) {

	chk.PrintTitle("sm3_contract01")

	g := NewSM3(1, 0, 0, 1, 0, 1) // identity
	b := NewIR3(2, 3, 4)
	c := g.Contract(b)
	chk.Vector(tst, "I . b", 1e-15, c[:], b[:])
}
