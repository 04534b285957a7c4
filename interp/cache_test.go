// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type countingInterp struct {
	calls int
	inner *Cubic
}

func (c *countingInterp) At(x float64) (float64, error) {
	c.calls++
	return c.inner.At(x)
}
func (c *countingInterp) Deriv1(x float64) (float64, error) { return c.inner.Deriv1(x) }
func (c *countingInterp) Deriv2(x float64) (float64, error) { return c.inner.Deriv2(x) }

func Test_cached1d_hits01(tst *testing.T) {
	chk.PrintTitle("depth-1 cache avoids a repeated evaluation at the same point")

	spline, err := NewCubic([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	if err != nil {
		tst.Fatalf("NewCubic failed: %v", err)
	}
	inner := &countingInterp{inner: spline}
	cached := NewCached1D(inner)

	v1, err := cached.At(1.5)
	if err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	v2, err := cached.At(1.5)
	if err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	chk.Float64(tst, "repeated query", 1e-15, v1, v2)
	if inner.calls != 1 {
		tst.Fatalf("expected exactly 1 underlying call, got %d", inner.calls)
	}

	if _, err := cached.At(2.5); err != nil {
		tst.Fatalf("At failed: %v", err)
	}
	if inner.calls != 2 {
		tst.Fatalf("expected underlying call on a new point, got %d calls", inner.calls)
	}
}

func Test_cached1d_transparent01(tst *testing.T) {
	chk.PrintTitle("cached interpolant matches the wrapped one at arbitrary points")

	spline, err := NewAkima([]float64{0, 1, 2, 3, 4, 5}, []float64{0, 1, 0, -1, 0, 1})
	if err != nil {
		tst.Fatalf("NewAkima failed: %v", err)
	}
	cached := NewCached1D(spline)

	for _, x := range []float64{0.3, 1.7, 2.2, 4.9} {
		direct, err := spline.At(x)
		if err != nil {
			tst.Fatalf("At failed: %v", err)
		}
		wrapped, err := cached.At(x)
		if err != nil {
			tst.Fatalf("At failed: %v", err)
		}
		chk.Float64(tst, "cached vs direct", 1e-15, direct, wrapped)
	}
}
