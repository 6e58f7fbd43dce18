// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "encoding/binary"

// SetBytes interprets b as the bytes of a 512-bit big-endian unsigned
// integer, sets v to that value, and returns v. If b is shorter than 64
// bytes it is treated as if left-padded with zeros; if it is longer, only
// the rightmost 64 bytes are used (mirroring the behavior of math/big's
// SetBytes for oversized input).
//
// SetBytes is a storage-layout convenience: none of the other arithmetic
// operations in this package depend on it, only tests, benchmarks, and the
// CLI front end.
func (v *U512) SetBytes(b []byte) *U512 {
	if len(b) > 64 {
		b = b[len(b)-64:]
	}
	var buf [64]byte
	copy(buf[64-len(b):], b)
	for i := 0; i < 8; i++ {
		v[i] = binary.BigEndian.Uint64(buf[i*8 : i*8+8])
	}
	return v
}

// Bytes returns the 64-byte big-endian encoding of v.
func (v *U512) Bytes() [64]byte {
	var buf [64]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], v[i])
	}
	return buf
}
