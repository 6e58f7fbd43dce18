// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/bits"

// MulSmall computes the exact 576-bit value multiplicand * multiplier,
// storing the low 512 bits in product and returning the high 64 bits as the
// overflow. The overflow is zero when the mathematical product fits in 512
// bits. MulSmall never fails.
//
// product may alias multiplicand (an in-place update); the multiplicand is
// snapshotted before product is written so aliasing is safe.
func MulSmall(product *U512, multiplicand *U512, multiplier uint64) (overflow uint64) {
	src := *multiplicand

	var out U512
	var carry uint64
	for i := 7; i >= 0; i-- {
		hi, lo := bits.Mul64(src[i], multiplier)
		sum, c := bits.Add64(lo, carry, 0)
		out[i] = sum
		// hi is at most 2^64-2, so hi+c never overflows a uint64.
		carry = hi + c
	}
	*product = out
	return carry
}
