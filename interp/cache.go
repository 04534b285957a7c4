// Copyright 2026 The Gyronimo-Go Authors. All rights reserved.
// Use of this source code is governed by a GPL-style
// license that can be found in the LICENSE file.

package interp

import "sync"

// Cached1D wraps an Interpolator1D with a depth-1 memoisation of the last
// query, exploiting the temporal locality of an ODE step that repeatedly
// evaluates the same interpolant at the same point (value, then first and
// second derivative). The cache lives entirely in this wrapper instance, not
// in any process-wide table, so uncached and cached interpolants behave
// identically up to the hit fast path.
type Cached1D struct {
	inner Interpolator1D

	mu       sync.Mutex
	lastX    float64
	haveAt   bool
	atVal    float64
	haveD1   bool
	d1Val    float64
	haveD2   bool
	d2Val    float64
}

// NewCached1D wraps inner with a depth-1 cache.
func NewCached1D(inner Interpolator1D) *Cached1D {
	return &Cached1D{inner: inner}
}

func (c *Cached1D) resetIfStale(x float64) {
	if !c.haveAt && !c.haveD1 && !c.haveD2 {
		c.lastX = x
		return
	}
	if x != c.lastX {
		c.lastX = x
		c.haveAt, c.haveD1, c.haveD2 = false, false, false
	}
}

// At evaluates the wrapped interpolant, reusing the cached value if x matches
// the last query.
func (c *Cached1D) At(x float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(x)
	if c.haveAt {
		return c.atVal, nil
	}
	v, err := c.inner.At(x)
	if err != nil {
		return 0, err
	}
	c.atVal, c.haveAt = v, true
	return v, nil
}

// Deriv1 evaluates the wrapped interpolant's first derivative.
func (c *Cached1D) Deriv1(x float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(x)
	if c.haveD1 {
		return c.d1Val, nil
	}
	v, err := c.inner.Deriv1(x)
	if err != nil {
		return 0, err
	}
	c.d1Val, c.haveD1 = v, true
	return v, nil
}

// Deriv2 evaluates the wrapped interpolant's second derivative.
func (c *Cached1D) Deriv2(x float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(x)
	if c.haveD2 {
		return c.d2Val, nil
	}
	v, err := c.inner.Deriv2(x)
	if err != nil {
		return 0, err
	}
	c.d2Val, c.haveD2 = v, true
	return v, nil
}

// Cached2D wraps an Interpolator2D with the same depth-1 memoisation
// strategy as Cached1D, keyed on the (u,v) pair.
type Cached2D struct {
	inner Interpolator2D

	mu                                     sync.Mutex
	lastU, lastV                           float64
	haveAt, haveU, haveV, haveUU, haveUV, haveVV bool
	at, du, dv, duu, duv, dvv              float64
}

// NewCached2D wraps inner with a depth-1 cache.
func NewCached2D(inner Interpolator2D) *Cached2D {
	return &Cached2D{inner: inner}
}

func (c *Cached2D) resetIfStale(u, v float64) {
	anyCached := c.haveAt || c.haveU || c.haveV || c.haveUU || c.haveUV || c.haveVV
	if !anyCached {
		c.lastU, c.lastV = u, v
		return
	}
	if u != c.lastU || v != c.lastV {
		c.lastU, c.lastV = u, v
		c.haveAt, c.haveU, c.haveV, c.haveUU, c.haveUV, c.haveVV = false, false, false, false, false, false
	}
}

// At evaluates the wrapped interpolant.
func (c *Cached2D) At(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveAt {
		return c.at, nil
	}
	val, err := c.inner.At(u, v)
	if err != nil {
		return 0, err
	}
	c.at, c.haveAt = val, true
	return val, nil
}

// DerivU evaluates ∂f/∂u of the wrapped interpolant.
func (c *Cached2D) DerivU(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveU {
		return c.du, nil
	}
	val, err := c.inner.DerivU(u, v)
	if err != nil {
		return 0, err
	}
	c.du, c.haveU = val, true
	return val, nil
}

// DerivV evaluates ∂f/∂v of the wrapped interpolant.
func (c *Cached2D) DerivV(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveV {
		return c.dv, nil
	}
	val, err := c.inner.DerivV(u, v)
	if err != nil {
		return 0, err
	}
	c.dv, c.haveV = val, true
	return val, nil
}

// DerivUU evaluates ∂²f/∂u² of the wrapped interpolant.
func (c *Cached2D) DerivUU(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveUU {
		return c.duu, nil
	}
	val, err := c.inner.DerivUU(u, v)
	if err != nil {
		return 0, err
	}
	c.duu, c.haveUU = val, true
	return val, nil
}

// DerivUV evaluates ∂²f/∂u∂v of the wrapped interpolant.
func (c *Cached2D) DerivUV(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveUV {
		return c.duv, nil
	}
	val, err := c.inner.DerivUV(u, v)
	if err != nil {
		return 0, err
	}
	c.duv, c.haveUV = val, true
	return val, nil
}

// DerivVV evaluates ∂²f/∂v² of the wrapped interpolant.
func (c *Cached2D) DerivVV(u, v float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfStale(u, v)
	if c.haveVV {
		return c.dvv, nil
	}
	val, err := c.inner.DerivVV(u, v)
	if err != nil {
		return 0, err
	}
	c.dvv, c.haveVV = val, true
	return val, nil
}
