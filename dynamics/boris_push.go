// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"

	"github.com/cpmech/gyronimo/core"
)

// BorisPush advances a cartesian velocity by a time step dt under the
// magnetic-only Boris rotation [C. K. Birdsall and A. B. Langdon, Plasma
// Physics via Computer Simulation, CRC Press, 1991]: b is the magnetic
// field's cartesian unit direction and B its adimensional magnitude.
func BorisPush(velocity core.IR3, tildeOref, B float64, b core.IR3, dt float64) core.IR3 {
	T := math.Tan(0.5 * tildeOref * dt * B)
	S := 2 * T / (1 + T*T)
	vPrime := velocity.Add(core.CrossProduct(velocity, b).Scale(T))
	return velocity.Add(core.CrossProduct(vPrime, b).Scale(S))
}

// BorisPushE advances a cartesian velocity by dt under the full Boris
// rotation-and-kick scheme, splitting the electric-field impulse into two
// half-steps around the magnetic rotation.
func BorisPushE(velocity core.IR3, tildeOref, tildeEref float64, E core.IR3, B float64, b core.IR3, dt float64) core.IR3 {
	halfEImpulse := E.Scale(0.5 * tildeEref * dt)
	vMinus := velocity.Add(halfEImpulse)
	vPlus := BorisPush(vMinus, tildeOref, B, b, dt)
	return vPlus.Add(halfEImpulse)
}
