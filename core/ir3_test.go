// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ir3_arithmetic01(tst *testing.T) {

	chk.PrintTitle("ir3_arithmetic01")

	a := NewIR3(1, 2, 3)
	b := NewIR3(4, 5, 6)

	sum := a.Add(b)
	chk.Vector(tst, "a+b", 1e-15, sum[:], []float64{5, 7, 9})

	diff := a.Sub(b)
	chk.Vector(tst, "a-b", 1e-15, diff[:], []float64{-3, -3, -3})

	scaled := a.Scale(2)
	chk.Vector(tst, "2*a", 1e-15, scaled[:], []float64{2, 4, 6})
}

func Test_ir3_cross_and_inner01(tst *testing.T) {

	chk.PrintTitle("ir3_cross_and_inner01")

	ex := NewIR3(1, 0, 0)
	ey := NewIR3(0, 1, 0)
	ez := NewIR3(0, 0, 1)

	c := CrossProduct(ex, ey)
	chk.Vector(tst, "ex x ey", 1e-15, c[:], ez[:])

	ip := InnerProduct(ex, ex)
	chk.Float64(tst, "ex . ex", 1e-15, ip, 1.0)
}

func Test_ir3_cross_variance01(tst *testing.T) {

	chk.PrintTitle("ir3_cross_variance01")

	a := NewIR3(1, 0, 0)
	b := NewIR3(0, 1, 0)
	J := 2.0

	cov := CrossProductV(Covariant, a, b, J)
	chk.Vector(tst, "covariant cross", 1e-15, cov[:], []float64{0, 0, 2})

	contra := CrossProductV(Contravariant, a, b, J)
	chk.Vector(tst, "contravariant cross", 1e-15, contra[:], []float64{0, 0, 0.5})
}
