// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/interp"
	"github.com/cpmech/gyronimo/metrics"
)

func Test_vmec_field_contravariant_is_poloidal_toroidal_only01(tst *testing.T) {
	chk.PrintTitle("VMEC field has no radial contravariant component")

	sgrid := []float64{0.0, 0.5, 1.0}
	cubic := func(x, y []float64) (interp.Interpolator1D, error) { return interp.NewCubic(x, y) }
	rc := [][]float64{{3, 3, 3}, {1, 1, 1}}
	zs := [][]float64{{0, 0, 0}, {1, 1, 1}}
	poloidalMap, err := metrics.NewVMECPoloidalMap(sgrid, []int{0, 1}, rc, zs, cubic)
	if err != nil {
		tst.Fatalf("NewVMECPoloidalMap failed: %v", err)
	}
	chart, err := metrics.NewInterpolated(1.0, poloidalMap)
	if err != nil {
		tst.Fatalf("NewInterpolated failed: %v", err)
	}

	field, err := NewVMEC(1.0, chart, sgrid, []int{0}, [][]float64{{2, 2, 2}}, []int{0}, [][]float64{{5, 5, 5}}, cubic)
	if err != nil {
		tst.Fatalf("NewVMEC failed: %v", err)
	}

	B := field.Contravariant(core.NewIR3(0.5, 0.0, 0.0), 0)
	chk.Vector(tst, "B", 1e-12, []float64{B[0], B[1], B[2]}, []float64{0, 2, 5})
}
