// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/chk"

// Bicubic is a tensor-product bicubic patch interpolant over a rectangular
// (u,v) grid: within each cell the patch is built from the function value,
// both first partials, and the cross partial at the four corners (the
// classical Numerical-Recipes bicubic construction), giving continuous value
// and first partials across cell boundaries.
type Bicubic struct {
	u, v []float64
	f    [][]float64 // f[i][j] = value at (u[i],v[j])
	fu   [][]float64 // ∂f/∂u, central differences
	fv   [][]float64 // ∂f/∂v, central differences
	fuv  [][]float64 // ∂²f/∂u∂v, central differences
}

// NewBicubic fits a bicubic patch interpolant over the grid u×v with sampled
// values f[i][j] = F(u[i], v[j]).
func NewBicubic(u, v []float64, f [][]float64) (*Bicubic, error) {
	nu, nv := len(u), len(v)
	if nu < 3 || nv < 3 {
		return nil, chk.Err("interp.NewBicubic: need >=3 knots on each axis; got %d,%d", nu, nv)
	}
	if len(f) != nu {
		return nil, chk.Err("interp.NewBicubic: f must have %d rows, got %d", nu, len(f))
	}
	for i := range f {
		if len(f[i]) != nv {
			return nil, chk.Err("interp.NewBicubic: f row %d must have %d entries, got %d", i, nv, len(f[i]))
		}
	}
	for i := 1; i < nu; i++ {
		if u[i] <= u[i-1] {
			return nil, chk.Err("interp.NewBicubic: u must be strictly increasing")
		}
	}
	for j := 1; j < nv; j++ {
		if v[j] <= v[j-1] {
			return nil, chk.Err("interp.NewBicubic: v must be strictly increasing")
		}
	}

	b := &Bicubic{u: u, v: v, f: f}
	b.fu = centralDiff2D(u, v, f, true, false)
	b.fv = centralDiff2D(u, v, f, false, true)
	b.fuv = centralDiff2D(u, v, b.fv, true, false)
	return b, nil
}

// centralDiff2D returns the central-difference derivative of f along u
// (alongU=true) or v (alongV=true, mutually exclusive), one-sided at the
// boundary rows/columns.
func centralDiff2D(u, v []float64, f [][]float64, alongU, alongV bool) [][]float64 {
	nu, nv := len(u), len(v)
	d := make([][]float64, nu)
	for i := range d {
		d[i] = make([]float64, nv)
	}
	if alongU {
		for j := 0; j < nv; j++ {
			for i := 0; i < nu; i++ {
				switch {
				case i == 0:
					d[i][j] = (f[1][j] - f[0][j]) / (u[1] - u[0])
				case i == nu-1:
					d[i][j] = (f[nu-1][j] - f[nu-2][j]) / (u[nu-1] - u[nu-2])
				default:
					d[i][j] = (f[i+1][j] - f[i-1][j]) / (u[i+1] - u[i-1])
				}
			}
		}
		return d
	}
	if alongV {
		for i := 0; i < nu; i++ {
			for j := 0; j < nv; j++ {
				switch {
				case j == 0:
					d[i][j] = (f[i][1] - f[i][0]) / (v[1] - v[0])
				case j == nv-1:
					d[i][j] = (f[i][nv-1] - f[i][nv-2]) / (v[nv-1] - v[nv-2])
				default:
					d[i][j] = (f[i][j+1] - f[i][j-1]) / (v[j+1] - v[j-1])
				}
			}
		}
	}
	return d
}

func (b *Bicubic) locate(u, v float64) (int, int, error) {
	nu, nv := len(b.u), len(b.v)
	if u < b.u[0] || u > b.u[nu-1] {
		return 0, 0, &DomainError{Caller: "interp.Bicubic", X: u, Lo: b.u[0], Hi: b.u[nu-1]}
	}
	if v < b.v[0] || v > b.v[nv-1] {
		return 0, 0, &DomainError{Caller: "interp.Bicubic", X: v, Lo: b.v[0], Hi: b.v[nv-1]}
	}
	i := locateIn(b.u, u)
	j := locateIn(b.v, v)
	return i, j, nil
}

func locateIn(grid []float64, x float64) int {
	lo, hi := 0, len(grid)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if grid[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	if lo == len(grid)-1 {
		lo = len(grid) - 2
	}
	return lo
}

// hermiteWeights returns the cubic Hermite basis {h00,h10,h01,h11} at
// parameter t in [0,1]; hermiteDeriv and hermiteDeriv2 return its first and
// second derivatives with respect to t.
func hermiteWeights(t float64) (h00, h10, h01, h11 float64) {
	t2, t3 := t*t, t*t*t
	h00 = 2*t3 - 3*t2 + 1
	h10 = t3 - 2*t2 + t
	h01 = -2*t3 + 3*t2
	h11 = t3 - t2
	return
}

func hermiteDeriv(t float64) (dh00, dh10, dh01, dh11 float64) {
	t2 := t * t
	dh00 = 6*t2 - 6*t
	dh10 = 3*t2 - 4*t + 1
	dh01 = -6*t2 + 6*t
	dh11 = 3*t2 - 2*t
	return
}

func hermiteDeriv2(t float64) (ddh00, ddh10, ddh01, ddh11 float64) {
	ddh00 = 12*t - 6
	ddh10 = 6*t - 4
	ddh01 = -12*t + 6
	ddh11 = 6*t - 2
	return
}

// patchValue evaluates the tensor-product bicubic Hermite patch at (u,v)
// inside cell (i,j), differentiating nu times along u and nv times along v
// (nu,nv in {0,1,2}).
func (b *Bicubic) patchValue(i, j int, u, v float64, nu, nv int) float64 {
	hu := b.u[i+1] - b.u[i]
	hv := b.v[j+1] - b.v[j]
	s := (u - b.u[i]) / hu
	t := (v - b.v[j]) / hv

	var Hs, Ht [4]float64 // basis along u, along v, selected by derivative order
	switch nu {
	case 0:
		Hs[0], Hs[1], Hs[2], Hs[3] = hermiteWeights(s)
	case 1:
		Hs[0], Hs[1], Hs[2], Hs[3] = hermiteDeriv(s)
		Hs[0], Hs[1], Hs[2], Hs[3] = Hs[0]/hu, Hs[1]/hu, Hs[2]/hu, Hs[3]/hu
	default:
		Hs[0], Hs[1], Hs[2], Hs[3] = hermiteDeriv2(s)
		Hs[0], Hs[1], Hs[2], Hs[3] = Hs[0]/(hu*hu), Hs[1]/(hu*hu), Hs[2]/(hu*hu), Hs[3]/(hu*hu)
	}
	switch nv {
	case 0:
		Ht[0], Ht[1], Ht[2], Ht[3] = hermiteWeights(t)
	case 1:
		Ht[0], Ht[1], Ht[2], Ht[3] = hermiteDeriv(t)
		Ht[0], Ht[1], Ht[2], Ht[3] = Ht[0]/hv, Ht[1]/hv, Ht[2]/hv, Ht[3]/hv
	default:
		Ht[0], Ht[1], Ht[2], Ht[3] = hermiteDeriv2(t)
		Ht[0], Ht[1], Ht[2], Ht[3] = Ht[0]/(hv*hv), Ht[1]/(hv*hv), Ht[2]/(hv*hv), Ht[3]/(hv*hv)
	}

	// corner data: value, hu*fu, hv*fv, hu*hv*fuv at (i,j),(i+1,j),(i,j+1),(i+1,j+1)
	f00, f10, f01, f11 := b.f[i][j], b.f[i+1][j], b.f[i][j+1], b.f[i+1][j+1]
	fu00, fu10, fu01, fu11 := b.fu[i][j]*hu, b.fu[i+1][j]*hu, b.fu[i][j+1]*hu, b.fu[i+1][j+1]*hu
	fv00, fv10, fv01, fv11 := b.fv[i][j]*hv, b.fv[i+1][j]*hv, b.fv[i][j+1]*hv, b.fv[i+1][j+1]*hv
	fuv00, fuv10, fuv01, fuv11 := b.fuv[i][j]*hu*hv, b.fuv[i+1][j]*hu*hv, b.fuv[i][j+1]*hu*hv, b.fuv[i+1][j+1]*hu*hv

	value := Hs[0]*Ht[0]*f00 + Hs[2]*Ht[0]*f10 + Hs[0]*Ht[2]*f01 + Hs[2]*Ht[2]*f11
	value += Hs[1]*Ht[0]*fu00 + Hs[3]*Ht[0]*fu10 + Hs[1]*Ht[2]*fu01 + Hs[3]*Ht[2]*fu11
	value += Hs[0]*Ht[1]*fv00 + Hs[2]*Ht[1]*fv10 + Hs[0]*Ht[3]*fv01 + Hs[2]*Ht[3]*fv11
	value += Hs[1]*Ht[1]*fuv00 + Hs[3]*Ht[1]*fuv10 + Hs[1]*Ht[3]*fuv01 + Hs[3]*Ht[3]*fuv11
	return value
}

// At evaluates the patch at (u,v).
func (b *Bicubic) At(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 0, 0), nil
}

// DerivU evaluates ∂f/∂u at (u,v).
func (b *Bicubic) DerivU(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 1, 0), nil
}

// DerivV evaluates ∂f/∂v at (u,v).
func (b *Bicubic) DerivV(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 0, 1), nil
}

// DerivUU evaluates ∂²f/∂u² at (u,v).
func (b *Bicubic) DerivUU(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 2, 0), nil
}

// DerivUV evaluates ∂²f/∂u∂v at (u,v).
func (b *Bicubic) DerivUV(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 1, 1), nil
}

// DerivVV evaluates ∂²f/∂v² at (u,v).
func (b *Bicubic) DerivVV(u, v float64) (float64, error) {
	i, j, err := b.locate(u, v)
	if err != nil {
		return 0, err
	}
	return b.patchValue(i, j, u, v, 0, 2), nil
}
