// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/bits"

// Add sets dst to a + b mod 2^512 and returns the carry out of the most
// significant word (0 or 1). dst may alias a or b.
func Add(dst, a, b *U512) uint64 {
	var out U512
	var carry uint64
	for i := 7; i >= 0; i-- {
		var sum uint64
		sum, carry = bits.Add64(a[i], b[i], carry)
		out[i] = sum
	}
	*dst = out
	return carry
}

// AddUint64 sets dst to a + n mod 2^512 and returns the carry out of the
// most significant word (0 or 1). dst may alias a.
func AddUint64(dst, a *U512, n uint64) uint64 {
	var out U512
	sum, carry := bits.Add64(a[7], n, 0)
	out[7] = sum
	for i := 6; i >= 0; i-- {
		sum, carry = bits.Add64(a[i], 0, carry)
		out[i] = sum
	}
	*dst = out
	return carry
}
