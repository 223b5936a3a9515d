// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides structured rigid transformations: plane
// rotations and two- and three-dimensional isometries.
package transform // import "gonum.org/v1/linear/spatial/transform"

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation2 is a rotation in the plane, stored as the cosine and sine of
// its angle.
type Rotation2 struct {
	c, s float64
}

// NewRotation2 returns the rotation by alpha radians, counterclockwise.
func NewRotation2(alpha float64) Rotation2 {
	s, c := math.Sincos(alpha)
	return Rotation2{c: c, s: s}
}

// Angle returns the rotation angle in (-π, π].
func (r Rotation2) Angle() float64 {
	return math.Atan2(r.s, r.c)
}

// Mul returns the composed rotation r∘o.
func (r Rotation2) Mul(o Rotation2) Rotation2 {
	return Rotation2{
		c: r.c*o.c - r.s*o.s,
		s: r.s*o.c + r.c*o.s,
	}
}

// Inverse returns the rotation by the opposite angle.
func (r Rotation2) Inverse() Rotation2 {
	return Rotation2{c: r.c, s: -r.s}
}

// Apply returns the image of v under the rotation.
func (r Rotation2) Apply(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: r.c*v.X - r.s*v.Y,
		Y: r.s*v.X + r.c*v.Y,
	}
}

// Isometry2 is a two dimensional isometry: the composition of a rotation
// followed by a translation. Vectors are not affected by the translational
// component of the transformation while points are. Isometries conserve
// angles and distances, hence do not allow shearing nor scaling.
type Isometry2 struct {
	// Rotation is the rotation applicable by this isometry.
	Rotation Rotation2
	// Translation is the translation applicable by this isometry.
	Translation r2.Vec
}

// NewIsometry2 returns the isometry rotating by alpha radians and
// translating by translation.
func NewIsometry2(translation r2.Vec, alpha float64) Isometry2 {
	return Isometry2{Rotation: NewRotation2(alpha), Translation: translation}
}

// Mul returns the composed isometry iso∘o, transforming by o first.
func (iso Isometry2) Mul(o Isometry2) Isometry2 {
	return Isometry2{
		Rotation:    iso.Rotation.Mul(o.Rotation),
		Translation: r2.Add(iso.Rotation.Apply(o.Translation), iso.Translation),
	}
}

// Inverse returns the inverse isometry.
func (iso Isometry2) Inverse() Isometry2 {
	inv := iso.Rotation.Inverse()
	return Isometry2{
		Rotation:    inv,
		Translation: r2.Scale(-1, inv.Apply(iso.Translation)),
	}
}

// TransformPoint returns the image of the point p under the isometry.
func (iso Isometry2) TransformPoint(p r2.Vec) r2.Vec {
	return r2.Add(iso.Rotation.Apply(p), iso.Translation)
}

// TransformVector returns the image of the vector v under the isometry,
// which is unaffected by the translational component.
func (iso Isometry2) TransformVector(v r2.Vec) r2.Vec {
	return iso.Rotation.Apply(v)
}

// ToHomogeneous returns the 3×3 homogeneous matrix of the isometry.
func (iso Isometry2) ToHomogeneous() *mat.Dense {
	r := iso.Rotation
	return mat.NewDense(3, 3, []float64{
		r.c, -r.s, iso.Translation.X,
		r.s, r.c, iso.Translation.Y,
		0, 0, 1,
	})
}

// Isometry3 is a three dimensional isometry: the composition of a rotation
// followed by a translation. Vectors are not affected by the translational
// component of the transformation while points are.
type Isometry3 struct {
	// Rotation is the 3×3 orthonormal rotation matrix applicable by this
	// isometry.
	Rotation *mat.Dense
	// Translation is the translation applicable by this isometry.
	Translation r3.Vec
}

// NewIsometry3 returns the isometry rotating by alpha radians around axis
// and translating by translation. A zero axis or angle yields the identity
// rotation.
func NewIsometry3(translation r3.Vec, axis r3.Vec, alpha float64) Isometry3 {
	return Isometry3{
		Rotation:    rodrigues(axis, alpha),
		Translation: translation,
	}
}

// rodrigues builds the rotation matrix I + sinθ·K + (1−cosθ)·K² where K is
// the skew-symmetric cross-product matrix of the unit axis.
func rodrigues(axis r3.Vec, alpha float64) *mat.Dense {
	r := eye3()
	n := r3.Norm(axis)
	if n == 0 || alpha == 0 {
		return r
	}
	u := r3.Scale(1/n, axis)
	s, c := math.Sincos(alpha)
	k := mat.NewDense(3, 3, []float64{
		0, -u.Z, u.Y,
		u.Z, 0, -u.X,
		-u.Y, u.X, 0,
	})
	var k2 mat.Dense
	k2.Mul(k, k)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, r.At(i, j)+s*k.At(i, j)+(1-c)*k2.At(i, j))
		}
	}
	return r
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// rotate returns the image of v under the rotation matrix r.
func rotate(r *mat.Dense, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r.At(0, 0)*v.X + r.At(0, 1)*v.Y + r.At(0, 2)*v.Z,
		Y: r.At(1, 0)*v.X + r.At(1, 1)*v.Y + r.At(1, 2)*v.Z,
		Z: r.At(2, 0)*v.X + r.At(2, 1)*v.Y + r.At(2, 2)*v.Z,
	}
}

// Mul returns the composed isometry iso∘o, transforming by o first.
func (iso Isometry3) Mul(o Isometry3) Isometry3 {
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(iso.Rotation, o.Rotation)
	return Isometry3{
		Rotation:    rot,
		Translation: r3.Add(rotate(iso.Rotation, o.Translation), iso.Translation),
	}
}

// Inverse returns the inverse isometry.
func (iso Isometry3) Inverse() Isometry3 {
	rot := mat.NewDense(3, 3, nil)
	rot.Copy(iso.Rotation.T())
	return Isometry3{
		Rotation:    rot,
		Translation: r3.Scale(-1, rotate(rot, iso.Translation)),
	}
}

// TransformPoint returns the image of the point p under the isometry.
func (iso Isometry3) TransformPoint(p r3.Vec) r3.Vec {
	return r3.Add(rotate(iso.Rotation, p), iso.Translation)
}

// TransformVector returns the image of the vector v under the isometry,
// which is unaffected by the translational component.
func (iso Isometry3) TransformVector(v r3.Vec) r3.Vec {
	return rotate(iso.Rotation, v)
}

// ToHomogeneous returns the 4×4 homogeneous matrix of the isometry.
func (iso Isometry3) ToHomogeneous() *mat.Dense {
	h := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			h.Set(i, j, iso.Rotation.At(i, j))
		}
	}
	h.Set(0, 3, iso.Translation.X)
	h.Set(1, 3, iso.Translation.Y)
	h.Set(2, 3, iso.Translation.Z)
	h.Set(3, 3, 1)
	return h
}

// minDirNorm is the smallest direction norm accepted when building an
// orientation frame.
const minDirNorm = 1e-12

// LookAt returns the isometry translating to eye and orienting its local
// x axis toward at. up fixes the roll around the view direction and must
// not be colinear with at−eye.
//
// If at−eye or its cross product with up is degenerate, LookAt returns a
// DegenerateInputError.
func LookAt(eye, at, up r3.Vec) (Isometry3, error) {
	x, y, z, err := frame(r3.Sub(at, eye), up)
	if err != nil {
		return Isometry3{}, err
	}
	return Isometry3{Rotation: frameMatrix(x, y, z), Translation: eye}, nil
}

// LookAtZ returns the isometry translating to eye and orienting its local
// z axis toward at. up fixes the roll around the view direction and must
// not be colinear with at−eye.
//
// If at−eye or its cross product with up is degenerate, LookAtZ returns a
// DegenerateInputError.
func LookAtZ(eye, at, up r3.Vec) (Isometry3, error) {
	dir, y, cross, err := frame(r3.Sub(at, eye), up)
	if err != nil {
		return Isometry3{}, err
	}
	// frame aligns the first basis vector with the view direction;
	// reorder the basis so the direction lands on the local z axis
	// instead, negating the remaining axis to keep the frame
	// right-handed.
	x := r3.Scale(-1, cross)
	return Isometry3{Rotation: frameMatrix(x, y, dir), Translation: eye}, nil
}

// frame returns a right-handed orthonormal basis (x, y, z) with x aligned
// to dir and z orthogonal to both dir and up.
func frame(dir, up r3.Vec) (x, y, z r3.Vec, err error) {
	n := r3.Norm(dir)
	if n < minDirNorm {
		return x, y, z, DegenerateInputError(n)
	}
	x = r3.Scale(1/n, dir)
	cross := r3.Cross(up, x)
	cn := r3.Norm(cross)
	if cn < minDirNorm {
		return x, y, z, DegenerateInputError(cn)
	}
	z = r3.Scale(1/cn, cross)
	y = r3.Cross(z, x)
	return x, y, z, nil
}

// frameMatrix returns the rotation matrix with columns x, y and z.
func frameMatrix(x, y, z r3.Vec) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	})
}
