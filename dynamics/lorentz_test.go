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

// constantField is a uniform test field used only to exercise the equations
// of motion: its contravariant components do not depend on position or time.
type constantField struct {
	value            core.IR3
	mFactor, tFactor float64
	metric           metrics.Morphism
}

func (f constantField) Contravariant(position core.IR3, time float64) core.IR3 { return f.value }
func (f constantField) Metric() metrics.Morphism                               { return f.metric }
func (f constantField) MFactor() float64                                       { return f.mFactor }
func (f constantField) TFactor() float64                                       { return f.tFactor }

func (f constantField) ConnectedMetric() metrics.ConnectedMetric {
	return metrics.NewConnectedMetric(f.metric)
}

func Test_lorentz_magnetic_force_does_no_work01(tst *testing.T) {
	chk.PrintTitle("lorentz magnetic force is orthogonal to the velocity")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	eom, err := NewLorentz(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewLorentz failed: %v", err)
	}

	s := eom.GenerateState(core.NewIR3(0.3, -0.2, 0.1), core.NewIR3(1.0, 0.5, 0.2))
	ds := eom.Derivative(s, 0)
	v := eom.GetVelocity(s)
	dotV := core.NewIR3(ds[3], ds[4], ds[5])
	chk.Float64(tst, "v.dotV", 1e-12, core.InnerProduct(v, dotV), 0.0)
}

func Test_lorentz_energy_kinetic_matches_speed_squared01(tst *testing.T) {
	chk.PrintTitle("lorentz kinetic energy over cartesian coordinates is |v|^2")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	eom, err := NewLorentz(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewLorentz failed: %v", err)
	}

	v := core.NewIR3(1.0, 0.5, 0.2)
	s := eom.GenerateState(core.NewIR3(0, 0, 0), v)
	chk.Float64(tst, "kinetic energy", 1e-12, eom.EnergyKinetic(s), v.Dot(v))
}

func Test_lorentz_rejects_nil_magnetic_field01(tst *testing.T) {
	chk.PrintTitle("lorentz rejects a nil magnetic field")
	if _, err := NewLorentz(1.0, 1.0, 1.0, nil, nil); err == nil {
		tst.Fatalf("expected an error for a nil magnetic field")
	}
}

func Test_lorentz_rejects_mismatched_metrics01(tst *testing.T) {
	chk.PrintTitle("lorentz rejects E/B fields over different metrics")

	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1, tFactor: 1, metric: metrics.NewCartesian(1.0)}
	E := constantField{value: core.NewIR3(1, 0, 0), mFactor: 1, tFactor: 1, metric: metrics.NewCartesian(1.0)}
	if _, err := NewLorentz(1.0, 1.0, 1.0, B, E); err == nil {
		tst.Fatalf("expected an error for mismatched E/B metrics")
	}
}
