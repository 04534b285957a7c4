// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package fields

import (
	"math"

	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/metrics"
)

// EarthRadius is the mean equatorial radius used to normalise Dipole's
// spherical chart, in metres.
const EarthRadius = 6378137.0

// EarthSurfaceAvgField is the default magnitude normalisation for Dipole, in
// tesla.
const EarthSurfaceAvgField = 0.5e-4

// Dipole is an analytical model of a planetary magnetosphere: a linear
// combination of a magnetic dipole and an equatorial current sheet smoothed
// by a tanh profile [J. Luhmann and L. Friesen, J. Geophys. Res. 84, 4405
// (1979)], over a metrics.Spherical chart normalised to radius. The
// azimuthal angle is measured from the sunward direction.
//
//	B = dipoleFactor * grad(cos(theta)/r^2) +
//	    csheetFactor * tanh(r*cos(theta)/smoothFactor) * u_x
type Dipole struct {
	Base
	sphere             *metrics.Spherical
	cBar, dBar, iDelta float64
}

// NewDipole builds a Dipole field over a spherical chart normalised to
// radius. dipoleFactor and csheetFactor are given in units of Gauss*radius^3
// and mGauss respectively (default, recommended values 0.31 and 0.15);
// smoothFactor is the current-sheet half-width in radius units; mFactor
// restores SI field units (default EarthSurfaceAvgField).
func NewDipole(radius, smoothFactor, dipoleFactor, csheetFactor, mFactor float64) (*Dipole, error) {
	sphere := metrics.NewSpherical(radius)
	base, err := NewBase(mFactor, 1.0, sphere)
	if err != nil {
		return nil, err
	}
	return &Dipole{
		Base:   base,
		sphere: sphere,
		cBar:   0.001 * csheetFactor / (radius * mFactor),
		dBar:   dipoleFactor / (radius * mFactor),
		iDelta: 1.0 / smoothFactor,
	}, nil
}

// Contravariant returns the contravariant components of the dipole+sheet
// field over the spherical chart (r, theta, phi).
func (d *Dipole) Contravariant(position core.IR3, time float64) core.IR3 {
	r := position[core.U]
	r3 := r * r * r
	r4 := r3 * r
	cosV, sinV := math.Cos(position[core.V]), math.Sin(position[core.V])
	cosW, sinW := math.Cos(position[core.W]), math.Sin(position[core.W])
	tanhFactor := d.cBar * math.Tanh(d.iDelta*r*cosV)
	Bu := -2.0*d.dBar*cosV/r3 + tanhFactor*sinV*cosW
	Bv := -d.dBar*sinV/r4 + tanhFactor*cosV*cosW/r
	Bw := -tanhFactor * sinW / (r * sinV)
	return core.NewIR3(Bu, Bv, Bw)
}

// DelContravariant returns the partial derivatives of the contravariant
// components with respect to (r, theta, phi).
func (d *Dipole) DelContravariant(position core.IR3, time float64) core.DIR3 {
	r := position[core.U]
	r2 := r * r
	r3, r4, r5 := r2*r, r2*r2, r2*r2*r
	cosV, sinV := math.Cos(position[core.V]), math.Sin(position[core.V])
	cosW, sinW := math.Cos(position[core.W]), math.Sin(position[core.W])
	tanhFactor := d.cBar * math.Tanh(d.iDelta*r*cosV)
	sechSquare := math.Pow(math.Cosh(d.iDelta*r*cosV), -2)
	dBuu := cosV * (6*d.dBar/r4 + d.cBar*cosW*d.iDelta*sinV*sechSquare)
	dBuv := 2*d.dBar*sinV/r3 +
		cosW*(cosV*tanhFactor-d.cBar*d.iDelta*r*sinV*sinV*sechSquare)
	dBuw := -sinV * sinW * tanhFactor
	dBvu := 4*d.dBar*sinV/r5 + cosV*cosW*(
		d.cBar*cosV*d.iDelta*r*sechSquare-tanhFactor)/r2
	dBvv := -cosV*d.dBar/r4 - cosW*sinV*(
		d.cBar*cosV*d.iDelta*r*sechSquare+tanhFactor)/r
	dBvw := -cosV * sinW * tanhFactor / r
	dBwu := sinW * (tanhFactor/(r2*sinV) - d.cBar*cosV*d.iDelta*sechSquare/(r*sinV))
	dBwv := sinW * (d.cBar*d.iDelta*sechSquare + cosV*tanhFactor/(r*sinV*sinV))
	dBww := -cosW * tanhFactor / (r * sinV)
	return core.NewDIR3(
		dBuu, dBuv, dBuw,
		dBvu, dBvv, dBvw,
		dBwu, dBwv, dBww)
}

// PartialTContravariant is identically zero: the model has no explicit time
// dependence.
func (d *Dipole) PartialTContravariant(position core.IR3, time float64) core.IR3 {
	return core.IR3{}
}
