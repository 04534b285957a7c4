// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import "sync"

// Gyron is any equations-of-motion object exposing a single derivative
// evaluation over its own state type.
type Gyron[S any] interface {
	Derivative(s S, time float64) S
}

// Ensemble assembles a collection of independently-evolving Gyrons into a
// single collective derivative, evaluating each member concurrently. It
// lets client code integrate an entire particle population through one
// gosl/ode.ODE system instead of one solver instance per particle.
type Ensemble[S any] struct {
	members []Gyron[S]
}

// NewEnsemble builds an Ensemble over members. The slice is held by
// reference; client code may still mutate its order and length before the
// ensemble is advanced, but must not do so concurrently with Derivatives.
func NewEnsemble[S any](members []Gyron[S]) Ensemble[S] {
	return Ensemble[S]{members: members}
}

// Size returns the number of members in the ensemble.
func (e Ensemble[S]) Size() int { return len(e.members) }

// Member returns the i-th member of the ensemble.
func (e Ensemble[S]) Member(i int) Gyron[S] { return e.members[i] }

// Derivatives evaluates every member's derivative at its corresponding
// state in f, writing the results into dfdt, which must have the same
// length as the ensemble. Members are evaluated concurrently, one goroutine
// per member, since each member's derivative is independent of the others.
func (e Ensemble[S]) Derivatives(f []S, dfdt []S, time float64) {
	var wg sync.WaitGroup
	wg.Add(len(e.members))
	for i, member := range e.members {
		go func(i int, member Gyron[S]) {
			defer wg.Done()
			dfdt[i] = member.Derivative(f[i], time)
		}(i, member)
	}
	wg.Wait()
}
