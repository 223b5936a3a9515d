// Copyright ©2025 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "fmt"

// DegenerateInputError represents an error due to an input direction with
// norm below a threshold, from which no well-defined orientation frame can
// be built.
type DegenerateInputError float64

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("transform: direction norm too low: %v", float64(e))
}
