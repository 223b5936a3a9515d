// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// SymmetricTridiagonal is the tridiagonal reduction of a symmetric matrix
//
//	A = Q·T·Qᵀ
//
// where T is symmetric tridiagonal and Q is orthogonal. The reduction is
// computed by a sequence of Householder reflections applied as similarity
// transforms, reading only the lower triangle of A.
type SymmetricTridiagonal struct {
	n   int
	lda int

	// a holds the reduced lower triangle. The strictly sub-subdiagonal
	// part of column i stores the tail of the i-th Householder vector,
	// whose leading element is implicitly 1.
	a []float64

	diag    []float64
	offDiag []float64
	taus    []float64
}

// NewSymmetricTridiagonal computes the tridiagonal reduction of the
// symmetric matrix a. Only the lower triangle of a, including the diagonal,
// is read; the upper triangle may hold anything.
//
// NewSymmetricTridiagonal panics if a is not square.
func NewSymmetricTridiagonal(a mat.Matrix) *SymmetricTridiagonal {
	n, c := a.Dims()
	if n != c {
		panic("linalg: tridiagonalization of a non-square matrix")
	}
	t := &SymmetricTridiagonal{
		n:       n,
		lda:     max(1, n),
		a:       make([]float64, n*n),
		diag:    make([]float64, n),
		offDiag: make([]float64, max(0, n-1)),
		taus:    make([]float64, max(0, n-1)),
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			t.a[i*t.lda+j] = a.At(i, j)
		}
	}
	t.reduce()
	return t
}

// reduce performs the unblocked reduction. For each column i it generates
// an elementary reflector H(i) = I - τ·v·vᵀ annihilating A[i+2:n, i] and
// applies it from both sides to the trailing submatrix:
//
//	A ← H(i)·A·H(i) = A - v·wᵀ - w·vᵀ,  w = τ·A·v - (τ²/2)(vᵀ·A·v)·v.
func (t *SymmetricTridiagonal) reduce() {
	n, lda, a := t.n, t.lda, t.a
	if n == 0 {
		return
	}
	bi := blas64.Implementation()
	w := make([]float64, n)
	for i := 0; i < n-2; i++ {
		m := n - i - 1

		// Generate the reflector zeroing A[i+2:n, i].
		alpha := a[(i+1)*lda+i]
		xnorm := bi.Dnrm2(m-1, a[(i+2)*lda+i:], lda)
		beta, tau := alpha, 0.0
		if xnorm != 0 {
			beta = -math.Copysign(math.Hypot(alpha, xnorm), alpha)
			tau = (beta - alpha) / beta
			bi.Dscal(m-1, 1/(alpha-beta), a[(i+2)*lda+i:], lda)
		}
		t.diag[i] = a[i*lda+i]
		t.offDiag[i] = beta
		t.taus[i] = tau
		if tau == 0 {
			continue
		}

		// Apply the reflector to the trailing submatrix A[i+1:, i+1:].
		a[(i+1)*lda+i] = 1
		v := a[(i+1)*lda+i:]
		sub := a[(i+1)*lda+i+1:]
		bi.Dsymv(blas.Lower, m, tau, sub, lda, v, lda, 0, w, 1)
		c := -0.5 * tau * bi.Ddot(m, w, 1, v, lda)
		bi.Daxpy(m, c, v, lda, w, 1)
		bi.Dsyr2(blas.Lower, m, -1, v, lda, w, 1, sub, lda)
	}
	if n > 1 {
		t.diag[n-2] = a[(n-2)*lda+n-2]
		t.offDiag[n-2] = a[(n-1)*lda+n-2]
	}
	t.diag[n-1] = a[(n-1)*lda+n-1]
}

// Unpack returns the orthogonal factor Q together with the diagonal and
// subdiagonal of T. Q is formed by applying the stored reflectors to the
// identity, from the last reflector to the first.
//
// The returned slices are owned by the receiver.
func (t *SymmetricTridiagonal) Unpack() (q *mat.Dense, diag, offDiag []float64) {
	n := t.n
	q = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		q.Set(i, i, 1)
	}
	rm := q.RawMatrix()
	bi := blas64.Implementation()
	work := make([]float64, n)
	for i := n - 3; i >= 0; i-- {
		tau := t.taus[i]
		if tau == 0 {
			continue
		}
		// Q[i+1:, :] ← (I - τ·v·vᵀ)·Q[i+1:, :]
		m := n - i - 1
		v := t.a[(i+1)*t.lda+i:]
		rows := rm.Data[(i+1)*rm.Stride:]
		bi.Dgemv(blas.Trans, m, n, 1, rows, rm.Stride, v, t.lda, 0, work, 1)
		bi.Dger(m, n, -tau, v, t.lda, work, 1, rows, rm.Stride)
	}
	return q, t.diag, t.offDiag
}

// UnpackTridiagonal returns the diagonal and subdiagonal of T without
// forming Q. It is the cheap path for eigenvalue-only computations.
//
// The returned slices are owned by the receiver.
func (t *SymmetricTridiagonal) UnpackTridiagonal() (diag, offDiag []float64) {
	return t.diag, t.offDiag
}
