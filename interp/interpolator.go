// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// package interp implements the scalar-interpolant layer: 1D flavours
// (natural cubic, with a constructor for equal end values, Akima), a bicubic 2D flavour, a Fourier
// composite of 1D interpolants, and an optional memoising decorator. These
// sit strictly below the geometry packages: a concrete morphism or field
// wraps one or more interpolants, but nothing here knows about IR3 or
// metrics.
package interp

// Interpolator1D is a fitted scalar function of one variable exposing value
// and first/second derivative queries, all pure.
type Interpolator1D interface {
	At(x float64) (float64, error)
	Deriv1(x float64) (float64, error)
	Deriv2(x float64) (float64, error)
}

// Interpolator2D is a fitted scalar function of two variables exposing value
// and first/second partial derivative queries, all pure.
type Interpolator2D interface {
	At(u, v float64) (float64, error)
	DerivU(u, v float64) (float64, error)
	DerivV(u, v float64) (float64, error)
	DerivUU(u, v float64) (float64, error)
	DerivUV(u, v float64) (float64, error)
	DerivVV(u, v float64) (float64, error)
}
