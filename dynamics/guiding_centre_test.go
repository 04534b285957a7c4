// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

// constantFieldC1 extends constantField with the trivial (zero) partials a
// spatially and temporally uniform field has.
type constantFieldC1 struct {
	constantField
}

func (f constantFieldC1) DelContravariant(position core.IR3, time float64) core.DIR3 {
	return core.DIR3{}
}
func (f constantFieldC1) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	return core.IR3{}
}

func Test_guiding_centre_straight_line_in_uniform_field01(tst *testing.T) {
	chk.PrintTitle("guiding centre in a uniform field drifts along b at constant vpp")

	cartesian := metrics.NewCartesian(1.0)
	B := constantFieldC1{constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}}
	eom, err := NewGuidingCentre(1.0, 1.0, 1.0, 0.0, B, nil)
	if err != nil {
		tst.Fatalf("NewGuidingCentre failed: %v", err)
	}

	s := eom.GenerateState(core.NewIR3(0.1, 0.2, 0.3), 1.0, VppPlus, 0)
	ds := eom.Derivative(s, 0)
	chk.Float64(tst, "dot_vpp", 1e-12, ds[3], 0.0)
	chk.Vector(tst, "dot_X == vpp*b", 1e-12, []float64{ds[0], ds[1], ds[2]}, []float64{0, 0, eom.GetVpp(s)})
}

func Test_guiding_centre_generate_state_energy01(tst *testing.T) {
	chk.PrintTitle("guiding centre generate_state splits kinetic energy between vpp and mu*B")

	cartesian := metrics.NewCartesian(1.0)
	B := constantFieldC1{constantField{value: core.NewIR3(0, 0, 2), mFactor: 1.0, tFactor: 1.0, metric: cartesian}}
	eom, err := NewGuidingCentre(1.0, 1.0, 1.0, 0.5, B, nil)
	if err != nil {
		tst.Fatalf("NewGuidingCentre failed: %v", err)
	}

	s := eom.GenerateState(core.NewIR3(0, 0, 0), 5.0, VppMinus, 0)
	vpp := eom.GetVpp(s)
	mub := eom.EnergyPerpendicular(s, 0)
	chk.Float64(tst, "vpp^2 + mu*B == energy", 1e-12, vpp*vpp+mub, 5.0)
	if vpp >= 0 {
		tst.Fatalf("expected a negative vpp for VppMinus, got %v", vpp)
	}
}

func Test_guiding_centre_rejects_nil_magnetic_field01(tst *testing.T) {
	chk.PrintTitle("guiding centre rejects a nil magnetic field")
	if _, err := NewGuidingCentre(1.0, 1.0, 1.0, 0.0, nil, nil); err == nil {
		tst.Fatalf("expected an error for a nil magnetic field")
	}
}
