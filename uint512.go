// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

// U512 is a fixed-precision unsigned 512-bit integer represented as eight
// 64-bit words in big-endian order.
//
//	 ---------------------------------------------------------------------
//	|   n[0]   |   n[1]   |   ...    |   n[6]   |   n[7]   |
//	| 64 bits  | 64 bits  |          | 64 bits  | 64 bits  |
//	| most significant                           least significant |
//	 ---------------------------------------------------------------------
//
// The value is sum(n[i] * 2^(64*(7-i))) for i in 0..7. This word order
// matches the C calling convention the original ui512md assembly routines
// were written against: callers pass a pointer to 8 contiguous words with
// index 0 as the most significant.
//
// The zero value is the integer zero and is ready to use.
type U512 [8]uint64

// Zero sets dst to zero.
func Zero(dst *U512) {
	*dst = U512{}
}

// Copy duplicates src's eight words into dst. dst and src may be the same
// value.
func Copy(dst, src *U512) {
	*dst = *src
}

// Set copies v2 into v and returns v to support chaining.
func (v *U512) Set(v2 *U512) *U512 {
	*v = *v2
	return v
}

// SetUint64 sets v to the given native unsigned integer and returns v to
// support chaining.
func (v *U512) SetUint64(n uint64) *U512 {
	*v = U512{7: n}
	return v
}

// IsZero reports whether v is the integer zero.
func (v *U512) IsZero() bool {
	return *v == U512{}
}

// One returns the U512 value 1.
func One() U512 {
	return U512{7: 1}
}
