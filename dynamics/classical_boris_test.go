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

func Test_classical_boris_agrees_with_cartesian_boris_over_cartesian_chart01(tst *testing.T) {
	chk.PrintTitle("classical boris matches cartesian boris when the chart is cartesian")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}

	classical, err := NewClassicalBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewClassicalBoris failed: %v", err)
	}
	reference, err := NewCartesianBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewCartesianBoris failed: %v", err)
	}

	q, v := core.NewIR3(0.1, -0.2, 0.3), core.NewIR3(1.0, 0.0, 0.2)
	sClassical := classical.GenerateState(q, v)
	sReference := reference.GenerateState(q, v)
	for i := 0; i < 50; i++ {
		sClassical = classical.DoStep(sClassical, float64(i)*1e-2, 1e-2)
		sReference = reference.DoStep(sReference, float64(i)*1e-2, 1e-2)
	}
	chk.Vector(tst, "position", 1e-8, sClassical[:3], sReference[:3])
	chk.Vector(tst, "velocity", 1e-8, sClassical[3:], sReference[3:])
}

func Test_classical_boris_preserves_speed_in_uniform_field01(tst *testing.T) {
	chk.PrintTitle("classical boris conserves speed under a uniform magnetic field")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: metrics.NewCylindrical(1.0)}
	stepper, err := NewClassicalBoris(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewClassicalBoris failed: %v", err)
	}

	s := stepper.GenerateState(core.NewIR3(1.0, 0.0, 0.0), core.NewIR3(0.2, 0.5, 0.1))
	initial := stepper.EnergyKinetic(s)
	for i := 0; i < 100; i++ {
		s = stepper.DoStep(s, float64(i)*1e-2, 1e-2)
	}
	chk.Float64(tst, "kinetic energy", 1e-6, stepper.EnergyKinetic(s), initial)
}

func Test_classical_boris_rejects_mismatched_metrics01(tst *testing.T) {
	chk.PrintTitle("classical boris rejects E/B fields over different metrics")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1, tFactor: 1, metric: metrics.NewCartesian(1.0)}
	E := constantField{value: core.NewIR3(1, 0, 0), mFactor: 1, tFactor: 1, metric: metrics.NewCylindrical(1.0)}
	if _, err := NewClassicalBoris(1.0, 1.0, 1.0, B, E); err == nil {
		tst.Fatalf("expected an error for mismatched E/B metrics")
	}
}
