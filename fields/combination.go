// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gyronimo/core"
)

// LinearCombination combines an arbitrary number of FieldC1 fields sharing
// the same metrics.Morphism into a single differentiable field, normalised
// to its own mFactor/tFactor: the k-th member contributes weighted by
// member.MFactor()/mFactor, evaluated at member.TFactor()-rescaled time.
type LinearCombination struct {
	Base
	members []FieldC1
	mRatio  []float64
	tRatio  []float64
}

// NewLinearCombination builds a LinearCombination over members, all of
// which must share the same metrics.Morphism.
func NewLinearCombination(mFactor, tFactor float64, members []FieldC1) (*LinearCombination, error) {
	if len(members) == 0 {
		return nil, chk.Err("fields.NewLinearCombination: empty member list")
	}
	base, err := NewBase(mFactor, tFactor, members[0].Metric())
	if err != nil {
		return nil, err
	}
	mRatio := make([]float64, len(members))
	tRatio := make([]float64, len(members))
	for i, m := range members {
		if m.Metric() != members[0].Metric() {
			return nil, chk.Err("fields.NewLinearCombination: incompatible metrics")
		}
		mRatio[i] = m.MFactor() / mFactor
		tRatio[i] = tFactor / m.TFactor()
	}
	return &LinearCombination{Base: base, members: members, mRatio: mRatio, tRatio: tRatio}, nil
}

// Contravariant returns the weighted sum of every member's contravariant
// components.
func (c *LinearCombination) Contravariant(position core.IR3, time float64) core.IR3 {
	var acc core.IR3
	for i, m := range c.members {
		acc = acc.AddScaled(c.mRatio[i], m.Contravariant(position, c.tRatio[i]*time))
	}
	return acc
}

// DelContravariant returns the weighted sum of every member's contravariant
// partials.
func (c *LinearCombination) DelContravariant(position core.IR3, time float64) core.DIR3 {
	var acc core.DIR3
	for i, m := range c.members {
		del := m.DelContravariant(position, c.tRatio[i]*time)
		for j := 0; j < 9; j++ {
			acc[j] += c.mRatio[i] * del[j]
		}
	}
	return acc
}

// PartialTContravariant returns the weighted sum of every member's
// time-partials, chained through each member's own time rescaling.
func (c *LinearCombination) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	var acc core.IR3
	for i, m := range c.members {
		dt := m.PartialTContravariant(position, c.tRatio[i]*time)
		acc = acc.AddScaled(c.mRatio[i]*c.tRatio[i], dt)
	}
	return acc
}
