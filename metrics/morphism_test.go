// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
)

func Test_cartesian_identity01(tst *testing.T) {
	chk.PrintTitle("cartesian morphism is the identity map at lref=1")

	m := NewCartesian(1.0)
	q := core.NewIR3(1.2, -0.7, 3.1)
	x := m.Transform(q)
	chk.Vector(tst, "x==q", 1e-15, x[:], q[:])

	back := m.Inverse(x)
	chk.Vector(tst, "inverse(x)==q", 1e-15, back[:], q[:])

	cm := NewConnectedMetric(m)
	g := cm.CovariantMetric(q)
	chk.Float64(tst, "g_uu", 1e-15, g.At(core.U, core.U), 1.0)
	chk.Float64(tst, "g_uv", 1e-15, g.At(core.U, core.V), 0.0)
}

func Test_cylindrical_jacobian01(tst *testing.T) {
	chk.PrintTitle("cylindrical jacobian matches the closed form Lref^3*r")

	m := NewCylindrical(2.0)
	q := core.NewIR3(1.5, 0.4, -2.0)

	cm := NewConnectedMetric(m)
	jGeneral := cm.M.Del(q).Determinant()
	jClosed := m.Jacobian(q)
	chk.Float64(tst, "jacobian", 1e-10, jGeneral, jClosed)
}

func Test_cylindrical_roundtrip01(tst *testing.T) {
	chk.PrintTitle("cylindrical inverse undoes transform")

	m := NewCylindrical(1.0)
	q := core.NewIR3(2.3, 1.1, -0.4)
	x := m.Transform(q)
	back := m.Inverse(x)
	chk.Vector(tst, "inverse(transform(q))==q", 1e-12, back[:], q[:])
}

func Test_spherical_orthonormal_at_equator01(tst *testing.T) {
	chk.PrintTitle("spherical tangent basis is orthogonal")

	m := NewSpherical(1.0)
	q := core.NewIR3(1.0, math.Pi/2, 0.3)
	cm := NewConnectedMetric(m)
	g := cm.CovariantMetric(q)
	chk.Float64(tst, "g_uv", 1e-10, g.At(core.U, core.V), 0.0)
	chk.Float64(tst, "g_uw", 1e-10, g.At(core.U, core.W), 0.0)
}

func Test_polar_torus_jacobian01(tst *testing.T) {
	chk.PrintTitle("polar torus jacobian matches the closed form")

	m := NewPolarTorus(0.3, 1.0)
	q := core.NewIR3(0.5, 0.8, 1.2)
	cm := NewConnectedMetric(m)
	jGeneral := cm.M.Del(q).Determinant()
	jClosed := m.Jacobian(q)
	chk.Float64(tst, "jacobian", 1e-9, jGeneral, jClosed)
}

func Test_factory_lookup01(tst *testing.T) {
	chk.PrintTitle("factory builds morphisms by name")

	m, err := New("cylindrical", nil)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if _, ok := m.(*Cylindrical); !ok {
		tst.Fatalf("expected *Cylindrical, got %T", m)
	}

	if _, err := New("does-not-exist", nil); err == nil {
		tst.Fatalf("expected an error for an unregistered name")
	}
}
