// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gyronimo/metrics"
)

// allocators maps a field name to its constructor; fields whose geometry
// needs more than scalar parameters (e.g. Interpolated's tabulated
// equilibrium) are built directly by client code instead of through this
// registry.
var allocators = make(map[string]func(m metrics.Morphism, prms fun.Prms) (FieldC0, error))

func init() {
	allocators["circular"] = func(m metrics.Morphism, prms fun.Prms) (FieldC0, error) {
		torus, ok := m.(*metrics.PolarTorus)
		if !ok {
			return nil, chk.Err("fields.circular: morphism is not a polar torus")
		}
		mFactor, q0, shear := 1.0, 1.0, 0.0
		for _, p := range prms {
			switch p.N {
			case "m_factor":
				mFactor = p.V
			case "q0":
				q0 = p.V
			case "shear":
				shear = p.V
			}
		}
		q := func(r float64) float64 { return q0 + shear*r }
		qprime := func(r float64) float64 { return shear }
		return NewCircular(mFactor, torus, q, qprime)
	}
	allocators["dipole"] = func(m metrics.Morphism, prms fun.Prms) (FieldC0, error) {
		radius, smooth, dipoleFactor, csheetFactor, mFactor :=
			EarthRadius, 1.0, 0.31, 0.15, EarthSurfaceAvgField
		for _, p := range prms {
			switch p.N {
			case "radius":
				radius = p.V
			case "smooth_factor":
				smooth = p.V
			case "dipole_factor":
				dipoleFactor = p.V
			case "csheet_factor":
				csheetFactor = p.V
			case "m_factor":
				mFactor = p.V
			}
		}
		return NewDipole(radius, smooth, dipoleFactor, csheetFactor, mFactor)
	}
}

// New builds a registered field by name over morphism m, passing prms to its
// constructor.
func New(name string, m metrics.Morphism, prms fun.Prms) (FieldC0, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("fields.New: unknown field %q", name)
	}
	return allocator(m, prms)
}

// Register adds (or overrides) a named field constructor.
func Register(name string, allocator func(m metrics.Morphism, prms fun.Prms) (FieldC0, error)) {
	allocators[name] = allocator
}
