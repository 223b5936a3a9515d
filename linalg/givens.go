// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GivensRotation is a 2×2 plane rotation
//
//	G = [c -s]
//	    [s  c]
//
// with c²+s² = 1. It is the elementary transform used to introduce and
// chase bulges through a tridiagonal matrix during QR-style iteration.
type GivensRotation struct {
	c, s float64
}

// NewGivensRotation builds a rotation from the possibly unnormalized
// components (x, y), so that c = x/r and s = y/r with r = ‖(x, y)‖.
//
// It returns ok as false if r is not greater than eps, in which case no
// meaningful rotation can be derived from the input.
func NewGivensRotation(x, y, eps float64) (g GivensRotation, ok bool) {
	r := math.Hypot(x, y)
	if r <= eps {
		return GivensRotation{}, false
	}
	return GivensRotation{c: x / r, s: y / r}, true
}

// GivensCancelY builds the rotation G such that G·(x, y)ᵀ = (norm, 0)ᵀ,
// where norm has the sign of x.
//
// It returns ok as false if y is zero: the second component is already
// cancelled and no rotation is needed.
func GivensCancelY(x, y float64) (g GivensRotation, norm float64, ok bool) {
	if y == 0 {
		return GivensRotation{}, 0, false
	}
	sign := math.Copysign(1, x)
	r := math.Hypot(x, y)
	g = GivensRotation{
		c: math.Abs(x) / r,
		s: -y / (sign * r),
	}
	return g, sign * r, true
}

// C returns the cosine component of the rotation.
func (g GivensRotation) C() float64 { return g.c }

// S returns the sine component of the rotation.
func (g GivensRotation) S() float64 { return g.s }

// Inverse returns the inverse rotation, which for a plane rotation is its
// transpose.
func (g GivensRotation) Inverse() GivensRotation {
	return GivensRotation{c: g.c, s: -g.s}
}

// Apply returns the image (x', y') of the vector (x, y) under the rotation.
func (g GivensRotation) Apply(x, y float64) (float64, float64) {
	return g.c*x - g.s*y, g.s*x + g.c*y
}

// RotateCols right-multiplies columns i and j of a by the rotation,
// replacing the n×2 column block [aᵢ aⱼ] with [aᵢ aⱼ]·G. The remaining
// columns are untouched.
func (g GivensRotation) RotateCols(a *mat.Dense, i, j int) {
	r, _ := a.Dims()
	for k := 0; k < r; k++ {
		ai := a.At(k, i)
		aj := a.At(k, j)
		a.Set(k, i, g.c*ai+g.s*aj)
		a.Set(k, j, -g.s*ai+g.c*aj)
	}
}
