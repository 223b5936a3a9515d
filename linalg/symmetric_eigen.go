// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// defaultEpsilon is the machine epsilon for float64, used as the default
// convergence tolerance.
var defaultEpsilon = math.Nextafter(1, 2) - 1

// SymmetricEigen is the eigendecomposition of a symmetric matrix
//
//	A = V·diag(λ)·Vᵀ
//
// where the columns of V are unit eigenvectors and λ holds the matching
// eigenvalues. The eigenvalues are not sorted; callers needing an order
// must sort the eigenvalues together with the eigenvector columns.
type SymmetricEigen struct {
	values  []float64
	vectors *mat.Dense
}

// NewSymmetricEigen computes the eigendecomposition of the symmetric
// matrix a using the default tolerance and no iteration limit.
//
// Only the lower triangle of a, including the diagonal, is read; the upper
// triangle may hold anything.
//
// NewSymmetricEigen panics if a is not square.
func NewSymmetricEigen(a mat.Matrix) *SymmetricEigen {
	se, ok := TrySymmetricEigen(a, defaultEpsilon, 0)
	if !ok {
		// Unreachable: an unbounded iteration count cannot be exhausted.
		panic("linalg: symmetric eigendecomposition failed to converge")
	}
	return se
}

// TrySymmetricEigen computes the eigendecomposition of the symmetric
// matrix a with user-specified convergence parameters.
//
// Only the lower triangle of a, including the diagonal, is read.
//
// eps is the tolerance used to decide when an off-diagonal value has
// converged to zero. maxNiter is the maximum total number of iterations
// performed by the algorithm; if it is exceeded, TrySymmetricEigen returns
// ok as false and no decomposition. A maxNiter of zero means the iteration
// continues until convergence.
//
// TrySymmetricEigen panics if a is not square.
func TrySymmetricEigen(a mat.Matrix, eps float64, maxNiter int) (se *SymmetricEigen, ok bool) {
	values, vectors, ok := doDecompose(a, true, eps, maxNiter)
	if !ok {
		return nil, false
	}
	return &SymmetricEigen{values: values, vectors: vectors}, true
}

// SymmetricEigenvalues returns the unsorted eigenvalues of the symmetric
// matrix a. It skips the eigenvector accumulation and is cheaper than a
// full decomposition.
//
// Only the lower triangle of a, including the diagonal, is read.
//
// SymmetricEigenvalues panics if a is not square.
func SymmetricEigenvalues(a mat.Matrix) []float64 {
	values, _, _ := doDecompose(a, false, defaultEpsilon, 0)
	return values
}

// Len returns the order of the decomposed matrix.
func (se *SymmetricEigen) Len() int { return len(se.values) }

// Values returns the unsorted eigenvalues. If dst is nil a new slice is
// allocated, otherwise the eigenvalues are stored into dst, which must
// have length equal to the order of the decomposed matrix.
func (se *SymmetricEigen) Values(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(se.values))
	}
	if len(dst) != len(se.values) {
		panic("linalg: eigenvalue slice length mismatch")
	}
	copy(dst, se.values)
	return dst
}

// SetValue replaces the i-th eigenvalue. It allows manual eigenvalue
// editing, for example zeroing negligible eigenvalues, before rebuilding a
// matrix with Recompose.
func (se *SymmetricEigen) SetValue(i int, v float64) {
	se.values[i] = v
}

// VectorsTo returns the matrix whose columns are the unit eigenvectors,
// positionally matching the eigenvalues. If dst is nil a new matrix is
// allocated, otherwise the eigenvectors are stored into dst, which must be
// of the order of the decomposed matrix.
func (se *SymmetricEigen) VectorsTo(dst *mat.Dense) *mat.Dense {
	n := len(se.values)
	if dst == nil {
		dst = mat.NewDense(n, n, nil)
	} else {
		r, c := dst.Dims()
		if r != n || c != n {
			panic("linalg: eigenvector matrix dimension mismatch")
		}
	}
	dst.Copy(se.vectors)
	return dst
}

// Recompose rebuilds the decomposed matrix as V·diag(λ)·Vᵀ.
//
// This is useful if some of the eigenvalues have been modified with
// SetValue. Recompose does not mutate the receiver.
func (se *SymmetricEigen) Recompose() *mat.Dense {
	n := len(se.values)
	vl := mat.NewDense(n, n, nil)
	vl.Copy(se.vectors)
	for j := 0; j < n; j++ {
		v := se.values[j]
		for i := 0; i < n; i++ {
			vl.Set(i, j, vl.At(i, j)*v)
		}
	}
	res := mat.NewDense(n, n, nil)
	res.Mul(vl, se.vectors.T())
	return res
}

// doDecompose runs the implicit-shift QR iteration on the tridiagonal
// reduction of a. It returns the unsorted eigenvalues and, when
// wantVectors is true, the accumulated orthogonal factor. It returns ok as
// false if maxNiter is positive and reached before convergence, in which
// case no partial result is returned.
func doDecompose(a mat.Matrix, wantVectors bool, eps float64, maxNiter int) (values []float64, q *mat.Dense, ok bool) {
	n, c := a.Dims()
	if n != c {
		panic("linalg: eigendecomposition of a non-square matrix")
	}

	// Pre-scale by the largest absolute entry of the lower triangle to
	// stabilize the conditioning of the iteration.
	var amax float64
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			amax = math.Max(amax, math.Abs(a.At(i, j)))
		}
	}
	work := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := a.At(i, j)
			if amax != 0 {
				v /= amax
			}
			work.Set(i, j, v)
		}
	}

	tri := NewSymmetricTridiagonal(work)
	var diag, offDiag []float64
	if wantVectors {
		q, diag, offDiag = tri.Unpack()
	} else {
		diag, offDiag = tri.UnpackTridiagonal()
	}

	if n == 1 {
		diag[0] *= amax
		return diag, q, true
	}

	niter := 0
	start, end := delimitSubproblem(diag, offDiag, n-1, eps)

	for end != start {
		subdim := end - start + 1

		if subdim > 2 {
			m := end - 1
			vx := diag[start] - WilkinsonShift(diag[m], diag[end], offDiag[m])
			vy := offDiag[start]

			for i := start; i < end; i++ {
				j := i + 1

				g, norm, gok := GivensCancelY(vx, vy)
				if !gok {
					// The rotation is degenerate: the block has
					// decoupled and the next delimiter pass will
					// detect it.
					break
				}
				if i > start {
					offDiag[i-1] = norm
				}

				// Similarity update of the 2×2 block coupling
				// rows i and j.
				mii := diag[i]
				mjj := diag[j]
				mij := offDiag[i]
				cc := g.c * g.c
				ss := g.s * g.s
				cs := g.c * g.s
				b := 2 * cs * mij

				diag[i] = cc*mii + ss*mjj - b
				diag[j] = ss*mii + cc*mjj + b
				offDiag[i] = cs*(mii-mjj) + mij*(cc-ss)

				if i != end-1 {
					// Chase the bulge into the next row pair.
					vx = offDiag[i]
					vy = -g.s * offDiag[i+1]
					offDiag[i+1] *= g.c
				}

				if q != nil {
					g.Inverse().RotateCols(q, i, j)
				}
			}

			if math.Abs(offDiag[m]) <= eps*(math.Abs(diag[m])+math.Abs(diag[end])) {
				end--
			}
		} else if subdim == 2 {
			a00 := diag[start]
			a11 := diag[start+1]
			a01 := offDiag[start]

			val0, val1 := eigenvalues2(a00, a11, a01)
			basisX := val0 - a11
			basisY := a01

			diag[start] = val0
			diag[start+1] = val1

			if q != nil {
				if g, gok := NewGivensRotation(basisX, basisY, eps); gok {
					g.RotateCols(q, start, start+1)
				}
			}

			end--
		}

		// Re-delimit the subproblem in case some decoupling occurred.
		start, end = delimitSubproblem(diag, offDiag, end, eps)

		niter++
		if niter == maxNiter {
			return nil, nil, false
		}
	}

	for i := range diag {
		diag[i] *= amax
	}
	return diag, q, true
}

// delimitSubproblem locates the largest trailing unreduced block
// [start, end] of the tridiagonal matrix, scanning backward from end. An
// off-diagonal entry is considered negligible when its magnitude does not
// exceed eps times the sum of the magnitudes of its neighboring diagonal
// entries; the entry bounding the block start is zeroed so later passes
// skip it. Both returned indices are zero when the whole leading range has
// deflated.
func delimitSubproblem(diag, offDiag []float64, end int, eps float64) (int, int) {
	n := end
	for n > 0 {
		m := n - 1
		if math.Abs(offDiag[m]) > eps*(math.Abs(diag[n])+math.Abs(diag[m])) {
			break
		}
		n--
	}
	if n == 0 {
		return 0, 0
	}

	newStart := n - 1
	for newStart > 0 {
		m := newStart - 1
		if offDiag[m] == 0 || math.Abs(offDiag[m]) <= eps*(math.Abs(diag[newStart])+math.Abs(diag[m])) {
			offDiag[m] = 0
			break
		}
		newStart--
	}
	return newStart, n
}

// WilkinsonShift computes the eigenvalue of the symmetric 2×2 matrix
//
//	[tmm tmn]
//	[tmn tnn]
//
// closest to its trailing component tnn. The form used avoids the
// catastrophic cancellation the naive quadratic formula suffers from when
// tmm and tnn are close; the sign of zero is taken as positive so the
// denominator cannot vanish.
func WilkinsonShift(tmm, tnn, tmn float64) float64 {
	sq := tmn * tmn
	if sq == 0 {
		return tnn
	}
	d := 0.5 * (tmm - tnn)
	return tnn - sq/(d+math.Copysign(1, d)*math.Sqrt(d*d+sq))
}

// eigenvalues2 returns the eigenvalues of the symmetric 2×2 matrix
//
//	[a00 a01]
//	[a01 a11]
//
// in increasing order.
func eigenvalues2(a00, a11, a01 float64) (float64, float64) {
	half := 0.5 * (a00 + a11)
	delta := math.Hypot(0.5*(a00-a11), a01)
	return half - delta, half + delta
}
