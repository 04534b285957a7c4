// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gyronimo/core"
	"github.com/cpmech/gyronimo/dynamics"
	"github.com/cpmech/gyronimo/fields"
	"github.com/cpmech/gyronimo/metrics"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// message
	if mpi.Rank() == 0 {
		io.PfWhite("\ngyronimo -- charged-particle and field-line tracing\n\n")
		io.Pf("Copyright 2026 The Gyronimo-Go Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a GPL-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	// flags
	morphismName := flag.String("morphism", "cartesian", "morphism name, e.g. cartesian, cylindrical, polar_torus")
	morphismPrms := flag.String("morphism-prms", "", "comma-separated name:value morphism parameters, e.g. minor_radius:0.3,major_radius:1.0")
	fieldName := flag.String("field", "", "field name, e.g. circular, dipole")
	fieldPrms := flag.String("field-prms", "", "comma-separated name:value field parameters, e.g. m_factor:2,q0:1.5")
	lref := flag.Float64("lref", 1.0, "reference length scale")
	q0 := flag.String("q0", "0,0,0", "comma-separated initial position, in the morphism's natural coordinates")
	span := flag.Float64("span", 0.1, "arclength-over-lref span of one recorded step")
	nsteps := flag.Int("nsteps", 100, "number of recorded steps")
	method := flag.String("method", "Dopri5", "gosl/ode stepping method")
	outfn := flag.String("o", "fieldline.dat", "output filename")
	plotfn := flag.String("plot", "", "if non-empty, also save a (q0, q1) projection plot under this filename")
	flag.Parse()

	if *fieldName == "" {
		chk.Panic("Please, provide a field name with -field. Ex.: -field=circular\n")
	}

	// build morphism and field
	morphism, err := metrics.New(*morphismName, parsePrms(*morphismPrms))
	if err != nil {
		chk.Panic("%v\n", err)
	}
	field, err := fields.New(*fieldName, morphism, parsePrms(*fieldPrms))
	if err != nil {
		chk.Panic("%v\n", err)
	}

	// initial condition
	q := parseIR3(*q0)
	tracer, err := dynamics.NewFieldLine(*lref, field)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	// trace the field line and record it
	y := []float64{q[core.U], q[core.V], q[core.W]}
	integrator := dynamics.NewIntegrator(*method, 3, tracer.RHS)
	_, states, err := integrator.Trajectory(y, 0.0, *span, *span, *nsteps)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	// write output
	var buf bytes.Buffer
	io.Ff(&buf, "# s q0 q1 q2\n")
	for i, state := range states {
		io.Ff(&buf, "%23.15e %23.15e %23.15e %23.15e\n", float64(i)*(*span), state[0], state[1], state[2])
	}
	io.WriteFileV(*outfn, &buf)

	if mpi.Rank() == 0 {
		io.Pf("file <%s> written with %d steps\n", *outfn, len(states))
	}

	// optional projection plot
	if *plotfn != "" && mpi.Rank() == 0 {
		x0 := make([]float64, len(states))
		x1 := make([]float64, len(states))
		for i, state := range states {
			x0[i], x1[i] = state[0], state[1]
		}
		plt.Plot(x0, x1, "'b-', clip_on=0")
		plt.Save("", *plotfn)
		io.Pf("file <%s> written\n", *plotfn)
	}
}

// parsePrms splits a "name:value,name:value" string into fun.Prms.
func parsePrms(s string) fun.Prms {
	if s == "" {
		return nil
	}
	var prms fun.Prms
	for _, field := range strings.Split(s, ",") {
		kv := strings.SplitN(field, ":", 2)
		if len(kv) != 2 {
			chk.Panic("invalid parameter %q, expected name:value\n", field)
		}
		v, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			chk.Panic("invalid parameter value %q: %v\n", kv[1], err)
		}
		prms = append(prms, &fun.Prm{N: kv[0], V: v})
	}
	return prms
}

// parseIR3 splits a "x,y,z" string into an core.IR3.
func parseIR3(s string) core.IR3 {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		chk.Panic("invalid position %q, expected x,y,z\n", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			chk.Panic("invalid position component %q: %v\n", p, err)
		}
		v[i] = f
	}
	return core.NewIR3(v[0], v[1], v[2])
}
