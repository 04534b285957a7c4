// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

// rk4Step advances a Lorentz State by dt from time using a fixed 4-stage
// Runge-Kutta step of deriv. The Boris steppers' half-back-step only ever
// integrates a short, fixed sub-step (half a Boris time step, backwards) to
// stagger a Cauchy initial condition into leapfrog form, so a fixed-step RK4
// is the right tool; gosl/ode targets adaptive long-horizon integration,
// which is unnecessary overhead for this single short hop.
func rk4Step(deriv func(State, float64) State, s State, time, dt float64) State {
	k1 := deriv(s, time)
	k2 := deriv(stateAddScaled(s, 0.5*dt, k1), time+0.5*dt)
	k3 := deriv(stateAddScaled(s, 0.5*dt, k2), time+0.5*dt)
	k4 := deriv(stateAddScaled(s, dt, k3), time+dt)
	var out State
	for i := range out {
		out[i] = s[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}

func stateAddScaled(s State, h float64, k State) State {
	var out State
	for i := range out {
		out[i] = s[i] + h*k[i]
	}
	return out
}
