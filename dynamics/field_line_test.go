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

func Test_field_line_follows_straight_uniform_field01(tst *testing.T) {
	chk.PrintTitle("a field line in a uniform field is a straight line along B")

	cartesian := metrics.NewCartesian(1.0)
	B := constantField{value: core.NewIR3(0, 0, 2), mFactor: 1.0, tFactor: 1.0, metric: cartesian}
	tracer, err := NewFieldLine(1.0, B)
	if err != nil {
		tst.Fatalf("NewFieldLine failed: %v", err)
	}

	d := tracer.Derivative(core.NewIR3(0.1, 0.2, 0.3), 0)
	chk.Vector(tst, "dq/ds", 1e-12, []float64{d[0], d[1], d[2]}, []float64{0, 0, 1})
}

func Test_field_line_rejects_nil_field01(tst *testing.T) {
	chk.PrintTitle("field line rejects a nil field")
	if _, err := NewFieldLine(1.0, nil); err == nil {
		tst.Fatalf("expected an error for a nil field")
	}
}
