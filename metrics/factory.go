// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// allocators maps a morphism name to its constructor; new geometries
// register themselves here from an init() function, following the same
// name-keyed factory idiom used for material models.
var allocators = make(map[string]func(prms fun.Prms) (Morphism, error))

func init() {
	allocators["cartesian"] = func(prms fun.Prms) (Morphism, error) {
		lref := 1.0
		for _, p := range prms {
			if p.N == "lref" {
				lref = p.V
			}
		}
		return NewCartesian(lref), nil
	}
	allocators["cylindrical"] = func(prms fun.Prms) (Morphism, error) {
		lref := 1.0
		for _, p := range prms {
			if p.N == "lref" {
				lref = p.V
			}
		}
		return NewCylindrical(lref), nil
	}
	allocators["spherical"] = func(prms fun.Prms) (Morphism, error) {
		lref := 1.0
		for _, p := range prms {
			if p.N == "lref" {
				lref = p.V
			}
		}
		return NewSpherical(lref), nil
	}
	allocators["polar_torus"] = func(prms fun.Prms) (Morphism, error) {
		var minor, major float64
		haveMinor, haveMajor := false, false
		for _, p := range prms {
			switch p.N {
			case "minor_radius":
				minor, haveMinor = p.V, true
			case "major_radius":
				major, haveMajor = p.V, true
			}
		}
		if !haveMinor || !haveMajor {
			return nil, chk.Err("metrics.polar_torus: missing minor_radius/major_radius")
		}
		return NewPolarTorus(minor, major), nil
	}
}

// New builds a registered morphism by name, passing prms to its constructor.
func New(name string, prms fun.Prms) (Morphism, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("metrics.New: unknown morphism %q", name)
	}
	return allocator(prms)
}

// Register adds (or overrides) a named morphism constructor; interpolated
// (HELENA-style) charts built outside this package use this to join the same
// registry instead of a separate lookup mechanism.
func Register(name string, allocator func(prms fun.Prms) (Morphism, error)) {
	allocators[name] = allocator
}
