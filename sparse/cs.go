// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse provides compressed-storage sparse matrices.
package sparse // import "gonum.org/v1/linear/sparse"

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSMatrix is an abstract compressed-storage matrix. It stores the
// nonzero entries of its major dimension lanes contiguously: lane i holds
// the entries values[offsets[i]:offsets[i+1]] at the strictly increasing
// minor indices indices[offsets[i]:offsets[i+1]].
//
// A CSR matrix is obtained by associating rows with the major dimension,
// while a CSC matrix is obtained by associating columns with the major
// dimension.
type CSMatrix struct {
	majorDim, minorDim int

	offsets []int // len majorDim+1, offsets[0] == 0, non-decreasing.
	indices []int
	values  []float64
}

// NewCSMatrix returns a majorDim×minorDim matrix with no explicitly
// stored entries.
func NewCSMatrix(majorDim, minorDim int) *CSMatrix {
	if majorDim < 0 || minorDim < 0 {
		panic("sparse: negative dimension")
	}
	return &CSMatrix{
		majorDim: majorDim,
		minorDim: minorDim,
		offsets:  make([]int, majorDim+1),
	}
}

// NewCSMatrixFromParts assembles a matrix from raw compressed-storage
// data without copying. It validates the sparsity pattern and returns
// ErrOffsets, ErrMinorIndices or ErrValueLength describing the first
// violation found.
func NewCSMatrixFromParts(majorDim, minorDim int, offsets, indices []int, values []float64) (*CSMatrix, error) {
	if majorDim < 0 || minorDim < 0 {
		panic("sparse: negative dimension")
	}
	if len(offsets) != majorDim+1 || offsets[0] != 0 || offsets[majorDim] != len(indices) {
		return nil, ErrOffsets
	}
	for i := 0; i < majorDim; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, ErrOffsets
		}
	}
	for i := 0; i < majorDim; i++ {
		prev := -1
		for _, j := range indices[offsets[i]:offsets[i+1]] {
			if j <= prev || j >= minorDim {
				return nil, ErrMinorIndices
			}
			prev = j
		}
	}
	if len(values) != len(indices) {
		return nil, ErrValueLength
	}
	return &CSMatrix{
		majorDim: majorDim,
		minorDim: minorDim,
		offsets:  offsets,
		indices:  indices,
		values:   values,
	}, nil
}

// Identity returns the n×n identity matrix in compressed storage.
func Identity(n int) *CSMatrix {
	m := NewCSMatrix(n, n)
	m.indices = make([]int, n)
	m.values = make([]float64, n)
	for i := 0; i < n; i++ {
		m.offsets[i+1] = i + 1
		m.indices[i] = i
		m.values[i] = 1
	}
	return m
}

// MajorDim returns the number of lanes of the matrix.
func (m *CSMatrix) MajorDim() int { return m.majorDim }

// MinorDim returns the length of each lane of the matrix.
func (m *CSMatrix) MinorDim() int { return m.minorDim }

// NNZ returns the number of explicitly stored entries.
func (m *CSMatrix) NNZ() int { return len(m.indices) }

// Values returns the stored entry values. Mutating the returned slice
// changes the matrix entries but cannot change its sparsity pattern.
func (m *CSMatrix) Values() []float64 { return m.values }

// LaneRange returns the index range of lane major into the indices and
// values slices.
func (m *CSMatrix) LaneRange(major int) (start, end int) {
	if major < 0 || major >= m.majorDim {
		panic("sparse: major index out of range")
	}
	return m.offsets[major], m.offsets[major+1]
}

// Lane returns the minor indices and values of the entries stored in lane
// major. The returned slices share storage with the matrix.
func (m *CSMatrix) Lane(major int) (indices []int, values []float64) {
	start, end := m.LaneRange(major)
	return m.indices[start:end], m.values[start:end]
}

// Entry returns the value stored at (major, minor) and whether the entry
// is explicitly stored. The lookup is a binary search within the lane,
// costing O(log nnz).
func (m *CSMatrix) Entry(major, minor int) (float64, bool) {
	if minor < 0 || minor >= m.minorDim {
		panic("sparse: minor index out of range")
	}
	indices, values := m.Lane(major)
	i := sort.SearchInts(indices, minor)
	if i == len(indices) || indices[i] != minor {
		return 0, false
	}
	return values[i], true
}

// Disassemble returns the raw compressed-storage data of the matrix. The
// returned slices share storage with the matrix.
func (m *CSMatrix) Disassemble() (offsets, indices []int, values []float64) {
	return m.offsets, m.indices, m.values
}

// DenseTo expands the matrix into dst with lanes as rows, allocating a
// new matrix if dst is nil.
func (m *CSMatrix) DenseTo(dst *mat.Dense) *mat.Dense {
	if dst == nil {
		dst = mat.NewDense(m.majorDim, m.minorDim, nil)
	} else {
		r, c := dst.Dims()
		if r != m.majorDim || c != m.minorDim {
			panic("sparse: dense matrix dimension mismatch")
		}
		dst.Zero()
	}
	for i := 0; i < m.majorDim; i++ {
		indices, values := m.Lane(i)
		for k, j := range indices {
			dst.Set(i, j, values[k])
		}
	}
	return dst
}

// Lanes returns an iterator over the lanes of the matrix.
func (m *CSMatrix) Lanes() *LaneIter {
	return &LaneIter{m: m, lane: -1}
}

// LaneIter iterates over the lanes of a CSMatrix in major order.
type LaneIter struct {
	m    *CSMatrix
	lane int
}

// Next advances the iterator to the next lane, returning false when all
// lanes have been visited.
func (it *LaneIter) Next() bool {
	it.lane++
	return it.lane < it.m.majorDim
}

// Major returns the major index of the current lane.
func (it *LaneIter) Major() int { return it.lane }

// Indices returns the minor indices of the current lane.
func (it *LaneIter) Indices() []int {
	indices, _ := it.m.Lane(it.lane)
	return indices
}

// Values returns the values of the current lane.
func (it *LaneIter) Values() []float64 {
	_, values := it.m.Lane(it.lane)
	return values
}
