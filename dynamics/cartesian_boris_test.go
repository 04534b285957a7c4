// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

func Test_cartesian_boris_preserves_speed_in_uniform_field01(tst *testing.T) {
	chk.PrintTitle("cartesian boris conserves speed under a uniform magnetic field")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	stepper, err := NewCartesianBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewCartesianBoris failed: %v", err)
	}

	s := stepper.GenerateState(core.NewIR3(0, 0, 0), core.NewIR3(1.0, 0.0, 0.3))
	initial := stepper.EnergyKinetic(s)
	for i := 0; i < 200; i++ {
		s = stepper.DoStep(s, float64(i)*1e-2, 1e-2)
	}
	chk.Float64(tst, "kinetic energy", 1e-8, stepper.EnergyKinetic(s), initial)
}

func Test_cartesian_boris_half_back_step_preserves_speed01(tst *testing.T) {
	chk.PrintTitle("cartesian boris half-back-step preserves the speed under a uniform magnetic field")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	stepper, err := NewCartesianBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewCartesianBoris failed: %v", err)
	}

	q, v := core.NewIR3(0.1, 0.2, 0.3), core.NewIR3(0.5, 0.0, 0.1)
	s, err := stepper.HalfBackStep(q, v, 0, 1e-2)
	if err != nil {
		tst.Fatalf("HalfBackStep failed: %v", err)
	}
	backSpeed := math.Sqrt(stepper.EnergyKinetic(s))
	foreSpeed := math.Sqrt(v.Dot(v))
	chk.Float64(tst, "speed preserved by half back step", 1e-6, backSpeed, foreSpeed)
}

func Test_cartesian_boris_rejects_non_cartesian_chart01(tst *testing.T) {
	chk.PrintTitle("cartesian boris rejects a field without a cartesian chart")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: metrics.NewCylindrical(1.0)}
	if _, err := NewCartesianBoris(1.0, 1.0, 1.0, B, nil); err == nil {
		tst.Fatalf("expected an error for a non-cartesian chart")
	}
}
