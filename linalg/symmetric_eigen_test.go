// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// randSymmetric returns a random n×n symmetric matrix with entries in
// [-1, 1).
func randSymmetric(n int, rnd *rand.Rand) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := 2*rnd.Float64() - 1
			a.Set(i, j, v)
			a.Set(j, i, v)
		}
	}
	return a
}

func maxAbs(a mat.Matrix) float64 {
	r, c := a.Dims()
	var m float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m = math.Max(m, math.Abs(a.At(i, j)))
		}
	}
	return m
}

// expectedShift returns the eigenvalue of [a00 a01; a01 a11] closest to
// a11, computed with the closed-form 2×2 solver.
func expectedShift(a00, a11, a01 float64) float64 {
	v0, v1 := eigenvalues2(a00, a11, a01)
	if math.Abs(v0-a11) < math.Abs(v1-a11) {
		return v0
	}
	return v1
}

func TestWilkinsonShiftRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for trial := 0; trial < 1000; trial++ {
		b00 := rnd.NormFloat64()
		b01 := rnd.NormFloat64()
		b10 := rnd.NormFloat64()
		b11 := rnd.NormFloat64()

		// M = B·Bᵀ is symmetric.
		m00 := b00*b00 + b01*b01
		m01 := b00*b10 + b01*b11
		m11 := b10*b10 + b11*b11

		want := expectedShift(m00, m11, m01)
		got := WilkinsonShift(m00, m11, m01)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-7, 1e-7) {
			t.Errorf("trial %d: unexpected shift for [%v %v; %v %v]: got %v want %v",
				trial, m00, m01, m01, m11, got, want)
		}
	}
}

func TestWilkinsonShiftSpecial(t *testing.T) {
	for _, test := range []struct {
		name          string
		a00, a11, a01 float64
	}{
		{"zero matrix", 0, 0, 0},
		{"zero diagonal", 0, 0, 42},
		{"zero off-diagonal", 42, 64, 0},
		{"zero trace", 42, -42, 20},
		{"equal diagonal, zero off-diagonal", 42, 42, 0},
		{"equal diagonal", 42, 42, 7},
		{"zero determinant", 2, 8, 4},
	} {
		want := expectedShift(test.a00, test.a11, test.a01)
		got := WilkinsonShift(test.a00, test.a11, test.a01)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-12) {
			t.Errorf("%s: unexpected shift: got %v want %v", test.name, got, want)
		}
	}
}

func TestSymmetricEigenRecompose(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{1, 2, 3, 4, 5, 10, 25, 50} {
		for trial := 0; trial < 5; trial++ {
			a := randSymmetric(n, rnd)
			se := NewSymmetricEigen(a)

			got := se.Recompose()
			tol := 1e-11 * float64(n) * math.Max(1, maxAbs(a))
			if !mat.EqualApprox(got, a, tol) {
				t.Errorf("n=%d trial=%d: recomposition mismatch", n, trial)
			}
		}
	}
}

func TestSymmetricEigenIgnoresUpperTriangle(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	const n = 8

	// a is filled with garbage above the diagonal; want is its
	// symmetrized lower triangle.
	a := mat.NewDense(n, n, nil)
	want := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rnd.NormFloat64()
			a.Set(i, j, v)
			if j <= i {
				want.Set(i, j, v)
				want.Set(j, i, v)
			}
		}
	}

	se := NewSymmetricEigen(a)
	if !mat.EqualApprox(se.Recompose(), want, 1e-10*float64(n)*maxAbs(want)) {
		t.Errorf("decomposition does not ignore the upper triangle")
	}
}

func TestSymmetricEigenOrthonormal(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{1, 2, 3, 5, 10, 30} {
		for trial := 0; trial < 5; trial++ {
			a := randSymmetric(n, rnd)
			se := NewSymmetricEigen(a)
			v := se.VectorsTo(nil)

			var gram mat.Dense
			gram.Mul(v.T(), v)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					if math.Abs(gram.At(i, j)-want) > 1e-10 {
						t.Errorf("n=%d trial=%d: eigenvector columns not orthonormal: (VᵀV)[%d,%d]=%v",
							n, trial, i, j, gram.At(i, j))
					}
				}
			}
		}
	}
}

func TestSymmetricEigenvaluesConsistency(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{1, 2, 3, 5, 10, 30} {
		a := randSymmetric(n, rnd)

		fast := SymmetricEigenvalues(a)
		full := NewSymmetricEigen(a).Values(nil)
		if len(fast) != n || len(full) != n {
			t.Fatalf("n=%d: unexpected eigenvalue count: %d and %d", n, len(fast), len(full))
		}

		sort.Float64s(fast)
		sort.Float64s(full)
		if !floats.EqualApprox(fast, full, 1e-10) {
			t.Errorf("n=%d: eigenvalue-only path disagrees with full decomposition:\nfast=%v\nfull=%v",
				n, fast, full)
		}
	}
}

func TestSymmetricEigen1x1(t *testing.T) {
	se := NewSymmetricEigen(mat.NewDense(1, 1, []float64{3.5}))
	if got := se.Values(nil); got[0] != 3.5 {
		t.Errorf("unexpected eigenvalue for 1×1 matrix: got %v want 3.5", got[0])
	}
	if v := se.VectorsTo(nil); v.At(0, 0) != 1 {
		t.Errorf("unexpected eigenvector for 1×1 matrix: got %v want 1", v.At(0, 0))
	}
}

func TestSymmetricEigenDiagonal(t *testing.T) {
	d := []float64{5, -3, 2, 0, 11}
	n := len(d)
	a := mat.NewDense(n, n, nil)
	for i, v := range d {
		a.Set(i, i, v)
	}

	se := NewSymmetricEigen(a)
	got := se.Values(nil)
	sort.Float64s(got)
	want := append([]float64(nil), d...)
	sort.Float64s(want)
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("unexpected eigenvalues for diagonal matrix: got %v want %v", got, want)
	}
}

func TestSymmetricEigenZero(t *testing.T) {
	n := 4
	se := NewSymmetricEigen(mat.NewDense(n, n, nil))
	for i, v := range se.Values(nil) {
		if v != 0 {
			t.Errorf("eigenvalue %d of the zero matrix is %v, want 0", i, v)
		}
	}
}

func TestTrySymmetricEigenMaxIter(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	a := randSymmetric(10, rnd)

	se, ok := TrySymmetricEigen(a, defaultEpsilon, 1)
	if ok || se != nil {
		t.Errorf("expected non-convergence signal with a one-iteration budget")
	}

	se, ok = TrySymmetricEigen(a, defaultEpsilon, 10000)
	if !ok {
		t.Fatalf("decomposition did not converge within 10000 iterations")
	}
	if !mat.EqualApprox(se.Recompose(), a, 1e-10) {
		t.Errorf("recomposition mismatch after bounded iteration")
	}
}

func TestSymmetricEigenNonSquare(t *testing.T) {
	for _, decompose := range []func(mat.Matrix){
		func(a mat.Matrix) { NewSymmetricEigen(a) },
		func(a mat.Matrix) { TrySymmetricEigen(a, defaultEpsilon, 0) },
		func(a mat.Matrix) { SymmetricEigenvalues(a) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for non-square input")
				}
			}()
			decompose(mat.NewDense(2, 3, nil))
		}()
	}
}

func TestSymmetricEigenSetValue(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	a := randSymmetric(6, rnd)
	se := NewSymmetricEigen(a)

	// Zeroing all eigenvalues must rebuild the zero matrix.
	for i := 0; i < se.Len(); i++ {
		se.SetValue(i, 0)
	}
	if !mat.EqualApprox(se.Recompose(), mat.NewDense(6, 6, nil), 1e-12) {
		t.Errorf("recomposition with zeroed eigenvalues is not the zero matrix")
	}
}
