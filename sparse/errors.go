// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "errors"

var (
	// ErrOffsets is returned when major offsets do not describe a valid
	// lane partition of the stored entries.
	ErrOffsets = errors.New("sparse: malformed major offsets")

	// ErrMinorIndices is returned when the minor indices of a lane are
	// not strictly increasing or are out of range.
	ErrMinorIndices = errors.New("sparse: minor indices out of order or out of range")

	// ErrValueLength is returned when the number of values does not
	// match the number of stored indices.
	ErrValueLength = errors.New("sparse: length of values does not match indices")
)
