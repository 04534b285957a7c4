// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fourier_single_harmonic01(tst *testing.T) {
	chk.PrintTitle("fourier reproduces a single m=1 mode")

	u := []float64{0, 0.5, 1.0}
	dreal := []float64{1, 2, 3} // A_1(u) = 1+2u
	dimag := []float64{0, 0, 0}

	f, err := NewFourier(u, dreal, dimag, 1, 1, func(x, y []float64) (Interpolator1D, error) {
		return NewCubic(x, y)
	})
	if err != nil {
		tst.Fatalf("NewFourier failed: %v", err)
	}

	got, err := f.At(0.5, math.Pi/2)
	if err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	want := complex(2, 0) * cmplx.Exp(complex(0, math.Pi/2))
	if cmplx.Abs(got-want) > 1e-9 {
		tst.Fatalf("fourier(0.5,pi/2) = %v, want %v", got, want)
	}
}

func Test_fourier_partial_v01(tst *testing.T) {
	chk.PrintTitle("fourier partial_v matches i*m scaling")

	u := []float64{0, 1, 2}
	dreal := []float64{1, 1, 1}
	dimag := []float64{0, 0, 0}

	f, err := NewFourier(u, dreal, dimag, 2, 2, func(x, y []float64) (Interpolator1D, error) {
		return NewCubic(x, y)
	})
	if err != nil {
		tst.Fatalf("NewFourier failed: %v", err)
	}

	at, err := f.At(1, 0.3)
	if err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	dv, err := f.PartialV(1, 0.3)
	if err != nil {
		tst.Fatalf("PartialV failed: %v", err)
	}
	want := complex(0, 2) * at
	if cmplx.Abs(dv-want) > 1e-9 {
		tst.Fatalf("partial_v = %v, want %v", dv, want)
	}
}
