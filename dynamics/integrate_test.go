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

func Test_integrator_conserves_speed_for_lorentz_in_uniform_field01(tst *testing.T) {
	chk.PrintTitle("gosl/ode integrator conserves speed for the lorentz equations in a uniform field")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	eom, err := NewLorentz(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewLorentz failed: %v", err)
	}

	s := eom.GenerateState(core.NewIR3(0.1, 0.2, 0.3), core.NewIR3(1.0, 0.5, 0.2))
	initial := eom.EnergyKinetic(s)

	it := NewIntegrator("Dopri5", 6, eom.RHS)
	y := append([]float64(nil), s[:]...)
	if err := it.Advance(y, 0, 1.0, 0.01); err != nil {
		tst.Fatalf("Advance failed: %v", err)
	}

	var final State
	copy(final[:], y)
	chk.Float64(tst, "kinetic energy", 1e-6, eom.EnergyKinetic(final), initial)
}
