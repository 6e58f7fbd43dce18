// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/big"

// lcgNext mirrors the linear congruential generator used by the original
// ui512 C/ASM test harness (Knuth, TAOCP Vol. 2, §3.2.1) to produce
// deterministic pseudo-random test vectors without depending on math/rand.
func lcgNext(seed *uint64) uint64 {
	var m uint64 = 9223372036854775807 // 2^63 - 1
	var a uint64 = 68719476721         // 2^36 - 15
	var c uint64 = 268435399           // closest prime below 2^28
	if *seed == 0 {
		*seed = 4294967291
	}
	*seed = (a**seed + c) % m
	return *seed
}

// randomU512 fills every word of v with successive lcgNext output.
func randomU512(seed *uint64) U512 {
	var v U512
	for i := 0; i < 8; i++ {
		v[i] = lcgNext(seed)
	}
	return v
}

// toBig converts v to a math/big reference value.
func toBig(v *U512) *big.Int {
	b := v.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// fromBigMod512 converts a big.Int to a U512, reducing modulo 2^512 and
// left-padding with zeros as needed.
func fromBigMod512(x *big.Int) U512 {
	mod := new(big.Int).Lsh(big.NewInt(1), 512)
	r := new(big.Int).Mod(x, mod)
	b := r.Bytes()
	var full [64]byte
	copy(full[64-len(b):], b)
	var v U512
	v.SetBytes(full[:])
	return v
}
