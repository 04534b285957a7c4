// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_contraction_dsm3_symmetry01(tst *testing.T) {

	chk.PrintTitle("contraction_dsm3_symmetry01")

	var d DSM3
	for i := 0; i < 18; i++ {
		d[i] = float64(i + 1)
	}
	b := NewIR3(1, -1, 2)

	first := ContractFirstDSM3(d, b)
	second := ContractSecondDSM3(d, b)
	chk.Vector(tst, "contract<first>(dSM3,B) == contract<second>(dSM3,B)", 1e-15, first[:], second[:])
}

func Test_contraction_dir3_identity01(tst *testing.T) {

	chk.PrintTitle("contraction_dir3_identity01")

	// ∂_j A^i with A^i = q^i (the identity map): dA is the identity matrix.
	identity := NewDIR3(1, 0, 0, 0, 1, 0, 0, 0, 1)
	b := NewIR3(2, 3, 4)

	first := ContractFirstDIR3(identity, b)
	second := ContractSecondDIR3(identity, b)
	chk.Vector(tst, "contract<first>(I,b)", 1e-15, first[:], b[:])
	chk.Vector(tst, "contract<second>(I,b)", 1e-15, second[:], b[:])
}
