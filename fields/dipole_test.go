// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
)

func Test_dipole_equatorial_field_has_no_radial_component01(tst *testing.T) {
	chk.PrintTitle("dipole field without current sheet has no radial component on the equator")

	field, err := NewDipole(EarthRadius, 1.0, 0.31, 0.0, EarthSurfaceAvgField)
	if err != nil {
		tst.Fatalf("NewDipole failed: %v", err)
	}

	position := core.NewIR3(3.0, math.Pi/2, 0.0)
	B := field.Contravariant(position, 0)
	chk.Float64(tst, "radial component at equator", 1e-12, B[core.U], 0.0)
}

func Test_dipole_del_contravariant_matches_finite_difference01(tst *testing.T) {
	chk.PrintTitle("dipole del_contravariant matches a centred finite difference")

	field, err := NewDipole(EarthRadius, 0.8, 0.31, 0.15, EarthSurfaceAvgField)
	if err != nil {
		tst.Fatalf("NewDipole failed: %v", err)
	}

	position := core.NewIR3(4.0, 1.1, 0.3)
	dB := field.DelContravariant(position, 0)

	h := 1e-6
	plus := field.Contravariant(core.NewIR3(position[0]+h, position[1], position[2]), 0)
	minus := field.Contravariant(core.NewIR3(position[0]-h, position[1], position[2]), 0)
	dBduNumeric := (plus[core.W] - minus[core.W]) / (2 * h)
	chk.Float64(tst, "dBw/du", 1e-5, dB.At(core.W, core.U), dBduNumeric)
}

func Test_dipole_rejects_invalid_factors01(tst *testing.T) {
	chk.PrintTitle("dipole rejects a non-positive m_factor")
	if _, err := NewDipole(EarthRadius, 1.0, 0.31, 0.15, 0); err == nil {
		tst.Fatalf("expected an error for m_factor=0")
	}
}
