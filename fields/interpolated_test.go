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

func newConstantBicubic(tst *testing.T, value float64) *interp.Bicubic {
	s := []float64{0.0, 0.5, 1.0}
	chi := []float64{-1.0, 0.0, 1.0}
	f := make([][]float64, len(s))
	for i := range f {
		f[i] = make([]float64, len(chi))
		for j := range f[i] {
			f[i][j] = value
		}
	}
	b, err := interp.NewBicubic(s, chi, f)
	if err != nil {
		tst.Fatalf("NewBicubic failed: %v", err)
	}
	return b
}

func Test_interpolated_field_contravariant_is_poloidal_toroidal_only01(tst *testing.T) {
	chk.PrintTitle("interpolated field has no radial contravariant component")

	s := []float64{0.0, 0.5, 1.0}
	chi := []float64{-1.0, 0.0, 1.0}
	R := [][]float64{{3, 3, 3}, {3.5, 3.5, 3.5}, {4, 4, 4}}
	Z := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	r, err := interp.NewBicubic(s, chi, R)
	if err != nil {
		tst.Fatalf("NewBicubic(R) failed: %v", err)
	}
	z, err := interp.NewBicubic(s, chi, Z)
	if err != nil {
		tst.Fatalf("NewBicubic(Z) failed: %v", err)
	}
	chart, err := metrics.NewInterpolated(1.0, metrics.NewBicubicPoloidalMap(r, z))
	if err != nil {
		tst.Fatalf("NewInterpolated failed: %v", err)
	}

	bChi := newConstantBicubic(tst, 2.0)
	bPhi := newConstantBicubic(tst, 5.0)
	field, err := NewInterpolated(1.0, chart, bChi, bPhi)
	if err != nil {
		tst.Fatalf("NewInterpolated failed: %v", err)
	}

	B := field.Contravariant(core.NewIR3(0.5, 0.0, 0.0), 0)
	chk.Vector(tst, "B", 1e-12, []float64{B[0], B[1], B[2]}, []float64{0, 2, 5})
}
