// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

// constantFieldC1 is a uniform, time-independent test field.
type constantFieldC1 struct {
	Base
	value core.IR3
}

func (f constantFieldC1) Contravariant(position core.IR3, time float64) core.IR3 { return f.value }
func (f constantFieldC1) DelContravariant(position core.IR3, time float64) core.DIR3 {
	return core.DIR3{}
}
func (f constantFieldC1) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	return core.IR3{}
}

func Test_linear_combination_sums_weighted_members01(tst *testing.T) {
	chk.PrintTitle("linear combination adds members weighted by their own m_factor")

	cartesian := metrics.NewCartesian(1.0)
	base1, err := NewBase(2.0, 1.0, cartesian)
	if err != nil {
		tst.Fatalf("NewBase failed: %v", err)
	}
	base2, err := NewBase(4.0, 1.0, cartesian)
	if err != nil {
		tst.Fatalf("NewBase failed: %v", err)
	}
	f1 := constantFieldC1{Base: base1, value: core.NewIR3(1, 0, 0)}
	f2 := constantFieldC1{Base: base2, value: core.NewIR3(0, 1, 0)}

	combo, err := NewLinearCombination(1.0, 1.0, []FieldC1{f1, f2})
	if err != nil {
		tst.Fatalf("NewLinearCombination failed: %v", err)
	}

	B := combo.Contravariant(core.NewIR3(0, 0, 0), 0)
	chk.Vector(tst, "weighted sum", 1e-12, []float64{B[0], B[1], B[2]}, []float64{2, 4, 0})
}

func Test_linear_combination_rejects_mismatched_metrics01(tst *testing.T) {
	chk.PrintTitle("linear combination rejects members over different metrics")

	base1, err := NewBase(1.0, 1.0, metrics.NewCartesian(1.0))
	if err != nil {
		tst.Fatalf("NewBase failed: %v", err)
	}
	base2, err := NewBase(1.0, 1.0, metrics.NewCylindrical(1.0))
	if err != nil {
		tst.Fatalf("NewBase failed: %v", err)
	}
	f1 := constantFieldC1{Base: base1, value: core.NewIR3(1, 0, 0)}
	f2 := constantFieldC1{Base: base2, value: core.NewIR3(0, 1, 0)}

	if _, err := NewLinearCombination(1.0, 1.0, []FieldC1{f1, f2}); err == nil {
		tst.Fatalf("expected an error for mismatched metrics")
	}
}
