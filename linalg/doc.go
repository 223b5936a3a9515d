// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides dense linear algebra kernels: plane rotations,
// symmetric tridiagonalization, the symmetric eigendecomposition and
// vector convolution.
package linalg // import "gonum.org/v1/linear/linalg"
