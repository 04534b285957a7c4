// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"github.com/cpmech/gosl/ode"
)

// Integrator wraps a gosl/ode.ODE solver around any equations-of-motion
// object exposing an RHS method with the gosl/ode right-hand-side
// signature, giving the long-horizon adaptive-step integration that the
// fixed-step Boris family and the hand-rolled rk4Step do not attempt.
type Integrator struct {
	sol  ode.ODE
	ndim int
}

// RHSFunc is the gosl/ode.ODE right-hand-side signature shared by
// Lorentz.RHS, GuidingCentre.RHS and FieldLine.RHS.
type RHSFunc func(f []float64, dT, T float64, y []float64, args ...interface{}) error

// NewIntegrator builds an Integrator over ndim dependent variables, using
// method (e.g. "Dopri5" or "Radau5") to step rhs.
func NewIntegrator(method string, ndim int, rhs RHSFunc) *Integrator {
	silent := true
	it := &Integrator{ndim: ndim}
	it.sol.Init(method, ndim, rhs, nil, nil, nil, silent)
	it.sol.Distr = false
	return it
}

// Advance integrates y from t0 to t0+span in a single controlled-step call,
// mutating y in place, and optionally forwarding args to the right-hand
// side (e.g. a field-line tracer's step-scaling length).
func (it *Integrator) Advance(y []float64, t0, span float64, fixedStep float64, args ...interface{}) error {
	return it.sol.Solve(y, t0, t0+span, fixedStep, false, args...)
}

// Trajectory repeatedly advances y by span, nSteps times, recording a copy
// of y after every step alongside the time it was reached.
func (it *Integrator) Trajectory(y []float64, t0, span float64, fixedStep float64, nSteps int, args ...interface{}) ([]float64, [][]float64, error) {
	times := make([]float64, nSteps+1)
	states := make([][]float64, nSteps+1)
	times[0] = t0
	states[0] = append([]float64(nil), y...)
	t := t0
	for i := 1; i <= nSteps; i++ {
		if err := it.Advance(y, t, span, fixedStep, args...); err != nil {
			return times[:i], states[:i], err
		}
		t += span
		times[i] = t
		states[i] = append([]float64(nil), y...)
	}
	return times, states, nil
}
