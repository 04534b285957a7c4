// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bicubic_plane01(tst *testing.T) {
	chk.PrintTitle("bicubic reproduces a bilinear surface exactly")

	u := []float64{0, 1, 2, 3}
	v := []float64{0, 1, 2}
	f := make([][]float64, len(u))
	plane := func(uu, vv float64) float64 { return 2.0 + 3.0*uu - 1.5*vv + 0.5*uu*vv }
	for i, uu := range u {
		f[i] = make([]float64, len(v))
		for j, vv := range v {
			f[i][j] = plane(uu, vv)
		}
	}

	bc, err := NewBicubic(u, v, f)
	if err != nil {
		tst.Fatalf("NewBicubic failed: %v", err)
	}

	val, err := bc.At(1.4, 0.7)
	if err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	chk.Float64(tst, "bicubic(1.4,0.7)", 1e-10, val, plane(1.4, 0.7))
}

func Test_bicubic_domain_error01(tst *testing.T) {
	chk.PrintTitle("bicubic rejects points outside the grid")

	u := []float64{0, 1, 2}
	v := []float64{0, 1, 2}
	f := [][]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	bc, err := NewBicubic(u, v, f)
	if err != nil {
		tst.Fatalf("NewBicubic failed: %v", err)
	}
	if _, err := bc.At(5, 0); err == nil {
		tst.Fatalf("expected a domain error for u=5")
	}
}
