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

func Test_predicated_freezes_outside_domain01(tst *testing.T) {
	chk.PrintTitle("predicated gyron freezes the derivative once the guard fails")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 1), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	eom, err := NewLorentz(1.0, 1.0, 1.0, B, nil)
	if err != nil {
		tst.Fatalf("NewLorentz failed: %v", err)
	}

	insideRadius := func(s State) bool {
		q := eom.GetPosition(s)
		return q.Dot(q) < 1.0
	}
	frozen := State{}
	guarded := NewPredicated(insideRadius, frozen, eom.Derivative)

	sInside := eom.GenerateState(core.NewIR3(0, 0, 0), core.NewIR3(1, 0, 0))
	chk.Vector(tst, "inside domain", 1e-12, guarded.Eval(sInside, 0)[:], eom.Derivative(sInside, 0)[:])

	sOutside := eom.GenerateState(core.NewIR3(10, 0, 0), core.NewIR3(1, 0, 0))
	chk.Vector(tst, "outside domain", 1e-12, guarded.Eval(sOutside, 0)[:], frozen[:])
}
