// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/bits"

// Sub sets dst to a - b mod 2^512 and returns the borrow out of the most
// significant word (0 or 1, i.e. 1 when a < b). dst may alias a or b.
func Sub(dst, a, b *U512) uint64 {
	var out U512
	var borrow uint64
	for i := 7; i >= 0; i-- {
		var diff uint64
		diff, borrow = bits.Sub64(a[i], b[i], borrow)
		out[i] = diff
	}
	*dst = out
	return borrow
}

// SubUint64 sets dst to a - n mod 2^512 and returns the borrow out of the
// most significant word (0 or 1). dst may alias a.
func SubUint64(dst, a *U512, n uint64) uint64 {
	var out U512
	diff, borrow := bits.Sub64(a[7], n, 0)
	out[7] = diff
	for i := 6; i >= 0; i-- {
		diff, borrow = bits.Sub64(a[i], 0, borrow)
		out[i] = diff
	}
	*dst = out
	return borrow
}
