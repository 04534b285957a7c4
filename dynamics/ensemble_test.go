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

func Test_ensemble_evaluates_every_member01(tst *testing.T) {
	chk.PrintTitle("ensemble evaluates every member's derivative concurrently")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}

	const n = 16
	members := make([]Gyron[State], n)
	f := make([]State, n)
	for i := range members {
		eom, err := NewLorentz(1.0, 1.0, 1.0, B, nil)
		if err != nil {
			tst.Fatalf("NewLorentz failed: %v", err)
		}
		members[i] = eom
		f[i] = eom.GenerateState(core.NewIR3(0, 0, 0), core.NewIR3(float64(i), 0, 0.1))
	}
	ensemble := NewEnsemble(members)
	if ensemble.Size() != n {
		tst.Fatalf("expected %v members, got %v", n, ensemble.Size())
	}
	dfdt := make([]State, n)
	ensemble.Derivatives(f, dfdt, 0)
	for i := range dfdt {
		expected := members[i].Derivative(f[i], 0)
		chk.Vector(tst, "member derivative", 1e-12, dfdt[i][:], expected[:])
	}
}
