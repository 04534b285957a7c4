// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gyronimo/metrics"
)

func Test_factory_builds_circular01(tst *testing.T) {
	chk.PrintTitle("factory builds a circular field by name")

	torus := metrics.NewPolarTorus(0.3, 1.0)
	field, err := New("circular", torus, fun.Prms{&fun.Prm{N: "m_factor", V: 2.0}, &fun.Prm{N: "q0", V: 1.5}})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if _, ok := field.(*Circular); !ok {
		tst.Fatalf("expected a *Circular field")
	}
}

func Test_factory_rejects_unknown_name01(tst *testing.T) {
	chk.PrintTitle("factory rejects an unregistered field name")
	if _, err := New("nonexistent", metrics.NewCartesian(1.0), nil); err == nil {
		tst.Fatalf("expected an error for an unknown field name")
	}
}
