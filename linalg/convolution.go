// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "gonum.org/v1/gonum/mat"

// ConvolveFull returns the full discrete convolution of v with kernel,
// a vector of length v.Len()+kernel.Len()-1.
//
// ConvolveFull panics unless v.Len() >= kernel.Len() > 0.
func ConvolveFull(v, kernel mat.Vector) *mat.VecDense {
	vl, kl := checkConvolve(v, kernel)
	conv := mat.NewVecDense(vl+kl-1, nil)
	for i := 0; i < vl+kl-1; i++ {
		lo := max(0, i-kl+1)
		hi := min(i, vl-1)
		var sum float64
		for u := lo; u <= hi; u++ {
			sum += v.AtVec(u) * kernel.AtVec(i-u)
		}
		conv.SetVec(i, sum)
	}
	return conv
}

// ConvolveValid returns the discrete convolution of v with kernel
// restricted to the elements that do not rely on zero-padding, a vector of
// length v.Len()-kernel.Len()+1.
//
// ConvolveValid panics unless v.Len() >= kernel.Len() > 0.
func ConvolveValid(v, kernel mat.Vector) *mat.VecDense {
	vl, kl := checkConvolve(v, kernel)
	conv := mat.NewVecDense(vl-kl+1, nil)
	for i := 0; i < vl-kl+1; i++ {
		var sum float64
		for j := 0; j < kl; j++ {
			sum += v.AtVec(i+j) * kernel.AtVec(kl-j-1)
		}
		conv.SetVec(i, sum)
	}
	return conv
}

// ConvolveSame returns the discrete convolution of v with kernel, centered
// with respect to the full convolution and of the same length as v.
//
// ConvolveSame panics unless v.Len() >= kernel.Len() > 0.
func ConvolveSame(v, kernel mat.Vector) *mat.VecDense {
	vl, kl := checkConvolve(v, kernel)
	off := (kl - 1) / 2
	conv := mat.NewVecDense(vl, nil)
	for i := 0; i < vl; i++ {
		var sum float64
		for j := 0; j < kl; j++ {
			k := i + j - off
			if k < 0 || k >= vl {
				continue
			}
			sum += v.AtVec(k) * kernel.AtVec(kl-j-1)
		}
		conv.SetVec(i, sum)
	}
	return conv
}

func checkConvolve(v, kernel mat.Vector) (vl, kl int) {
	vl = v.Len()
	kl = kernel.Len()
	if kl == 0 || kl > vl {
		panic("linalg: convolution expects v.Len() >= kernel.Len() > 0")
	}
	return vl, kl
}
