// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

// package codata lists the CODATA physical constants (SI units) needed to
// normalise and denormalise particle-dynamics quantities.
package codata

const (
	// SpeedOfLight is c, in m/s.
	SpeedOfLight = 2.99792458e8
	// ElementaryCharge is e, in C.
	ElementaryCharge = 1.602176634e-19
	// VacuumPermeability is μ0, in N/A².
	VacuumPermeability = 1.25663706212e-6
	// AlphaParticleMass is m_alpha, in kg.
	AlphaParticleMass = 6.6446573357e-27
	// ProtonMass is m_p, in kg.
	ProtonMass = 1.67262192369e-27
	// NeutronMass is m_n, in kg.
	NeutronMass = 1.67492749804e-27
	// ElectronMass is m_e, in kg.
	ElectronMass = 9.1093837015e-31
)
