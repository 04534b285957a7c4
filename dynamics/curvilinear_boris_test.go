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

func Test_curvilinear_boris_preserves_speed_in_uniform_field01(tst *testing.T) {
	chk.PrintTitle("curvilinear boris conserves speed under a uniform magnetic field")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: metrics.NewCylindrical(1.0)}
	stepper, err := NewCurvilinearBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewCurvilinearBoris failed: %v", err)
	}

	s := stepper.GenerateState(core.NewIR3(1.0, 0.0, 0.0), core.NewIR3(0.2, 0.5, 0.1))
	initial := stepper.EnergyKinetic(s)
	for i := 0; i < 100; i++ {
		s = stepper.DoStep(s, float64(i)*1e-2, 1e-2)
	}
	chk.Float64(tst, "kinetic energy", 1e-6, stepper.EnergyKinetic(s), initial)
}

func Test_curvilinear_boris_close_to_classical_boris_for_small_steps01(tst *testing.T) {
	chk.PrintTitle("curvilinear boris agrees with classical boris to second order in dt")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: metrics.NewCylindrical(1.0)}
	curvilinear, err := NewCurvilinearBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewCurvilinearBoris failed: %v", err)
	}
	classical, err := NewClassicalBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewClassicalBoris failed: %v", err)
	}

	q, v := core.NewIR3(1.0, 0.0, 0.0), core.NewIR3(0.1, 0.2, 0.05)
	sCurvilinear := curvilinear.GenerateState(q, v)
	sClassical := classical.GenerateState(q, v)
	sCurvilinear = curvilinear.DoStep(sCurvilinear, 0, 1e-3)
	sClassical = classical.DoStep(sClassical, 0, 1e-3)
	chk.Vector(tst, "position", 1e-6, sCurvilinear[:3], sClassical[:3])
}
