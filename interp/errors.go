// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/io"

// DomainError reports an evaluation request outside an interpolant's support.
// The core never silently extrapolates; every Interpolator1D/2D returns this
// instead.
type DomainError struct {
	Caller string
	X      float64
	Lo, Hi float64
}

func (e *DomainError) Error() string {
	return io.Sf("%s: x=%v outside support [%v,%v]", e.Caller, e.X, e.Lo, e.Hi)
}
