// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/bits"

// Lsh sets dst to src logically shifted left by k bits (0 <= k <= 512) and
// returns dst. Bits shifted past the most significant bit are discarded;
// k == 0 copies src and k == 512 zeros dst. dst and src may be the same
// value.
func Lsh(dst, src *U512, k uint) *U512 {
	wordShift := int(k / 64)
	bitShift := k % 64

	var out U512
	for i := 0; i < 8; i++ {
		srcIdx := i + wordShift
		var hi, lo uint64
		if srcIdx < 8 {
			hi = src[srcIdx]
		}
		if srcIdx+1 < 8 {
			lo = src[srcIdx+1]
		}
		// When bitShift is 0 the shifts below degrade to hi<<0 and lo>>64,
		// both of which are well defined in Go (the latter yields 0), so no
		// special case is required.
		out[i] = (hi << bitShift) | (lo >> (64 - bitShift))
	}
	*dst = out
	return dst
}

// Rsh sets dst to src logically shifted right by k bits (0 <= k <= 512) and
// returns dst. Bits shifted past the least significant bit are discarded;
// k == 0 copies src and k == 512 zeros dst. dst and src may be the same
// value.
func Rsh(dst, src *U512, k uint) *U512 {
	wordShift := int(k / 64)
	bitShift := k % 64

	var out U512
	for i := 7; i >= 0; i-- {
		srcIdx := i - wordShift
		var hi, lo uint64
		if srcIdx >= 0 {
			lo = src[srcIdx]
		}
		if srcIdx-1 >= 0 {
			hi = src[srcIdx-1]
		}
		out[i] = (lo >> bitShift) | (hi << (64 - bitShift))
	}
	*dst = out
	return dst
}

// Not sets dst to the bitwise complement of src and returns dst.
func Not(dst, src *U512) *U512 {
	for i := 0; i < 8; i++ {
		dst[i] = ^src[i]
	}
	return dst
}

// Or sets dst to the bitwise OR of a and b and returns dst.
func Or(dst, a, b *U512) *U512 {
	for i := 0; i < 8; i++ {
		dst[i] = a[i] | b[i]
	}
	return dst
}

// And sets dst to the bitwise AND of a and b and returns dst.
func And(dst, a, b *U512) *U512 {
	for i := 0; i < 8; i++ {
		dst[i] = a[i] & b[i]
	}
	return dst
}

// MSBit returns the index of the most significant set bit of v, from 0
// (least significant) to 511 (most significant), or -1 if v is zero.
func (v *U512) MSBit() int {
	for i := 0; i < 8; i++ {
		if v[i] != 0 {
			return (7-i)*64 + bits.Len64(v[i]) - 1
		}
	}
	return -1
}

// LSBit returns the index of the least significant set bit of v, or -1 if v
// is zero.
func (v *U512) LSBit() int {
	for i := 7; i >= 0; i-- {
		if v[i] != 0 {
			return (7-i)*64 + bits.TrailingZeros64(v[i])
		}
	}
	return -1
}

// significantWords returns the number of leading-zero-trimmed big-endian
// words in v: 0 for the zero value, otherwise floor(MSBit()/64)+1. It is an
// internal sizing helper used by Mul and Div to bound their working loops.
func significantWords(v *U512) int {
	msb := v.MSBit()
	if msb < 0 {
		return 0
	}
	return msb/64 + 1
}
