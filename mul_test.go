// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import (
	"math/big"
	"testing"
)

func TestMulEdgeCases(t *testing.T) {
	t.Parallel()

	a := U512{7: 0xdeadbeefcafebabe}

	tests := []struct {
		name         string
		a, b         U512
		wantProduct  U512
		wantOverflow U512
	}{
		{
			name:         "a * 1 = a",
			a:            a,
			b:            U512{7: 1},
			wantProduct:  a,
			wantOverflow: U512{},
		},
		{
			name:         "1 * a = a",
			a:            U512{7: 1},
			b:            a,
			wantProduct:  a,
			wantOverflow: U512{},
		},
		{
			name:         "a * 0 = 0",
			a:            a,
			b:            U512{},
			wantProduct:  U512{},
			wantOverflow: U512{},
		},
		{
			name:         "0 * a = 0",
			a:            U512{},
			b:            a,
			wantProduct:  U512{},
			wantOverflow: U512{},
		},
		{
			// mul(2^511, 2) -> product = 0, overflow = 1 (i.e. 2^512).
			name:         "2^511 * 2 overflows to 2^512",
			a:            U512{0: 0x8000000000000000},
			b:            U512{7: 2},
			wantProduct:  U512{},
			wantOverflow: U512{7: 1},
		},
		{
			// mul(2^511, 2^511) -> overflow = 2^1022, i.e. word[0] =
			// 0x4000000000000000 of the overflow half.
			name:         "2^511 * 2^511 = 2^1022",
			a:            U512{0: 0x8000000000000000},
			b:            U512{0: 0x8000000000000000},
			wantProduct:  U512{},
			wantOverflow: U512{0: 0x4000000000000000},
		},
	}

	for _, test := range tests {
		var product, overflow U512
		Mul(&product, &overflow, &test.a, &test.b)
		if product != test.wantProduct || overflow != test.wantOverflow {
			t.Errorf("%s: got (%x, %x) want (%x, %x)", test.name, product, overflow,
				test.wantProduct, test.wantOverflow)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	t.Parallel()

	var seed uint64 = 7
	for i := 0; i < 64; i++ {
		a := randomU512(&seed)
		b := randomU512(&seed)

		var p1, o1, p2, o2 U512
		Mul(&p1, &o1, &a, &b)
		Mul(&p2, &o2, &b, &a)

		if p1 != p2 || o1 != o2 {
			t.Fatalf("iteration %d: mul(a,b) != mul(b,a): (%x,%x) vs (%x,%x)",
				i, p1, o1, p2, o2)
		}
	}
}

// TestMulAgainstBig cross-checks the full 1024-bit product against
// math/big across a range of pseudo-random values.
func TestMulAgainstBig(t *testing.T) {
	t.Parallel()

	var seed uint64 = 99
	for i := 0; i < 64; i++ {
		a := randomU512(&seed)
		b := randomU512(&seed)

		var product, overflow U512
		Mul(&product, &overflow, &a, &b)

		want := new(big.Int).Mul(toBig(&a), toBig(&b))
		wantLo := fromBigMod512(want)
		wantHi := fromBigMod512(new(big.Int).Rsh(want, 512))

		if product != wantLo || overflow != wantHi {
			t.Fatalf("iteration %d: got (%x,%x) want (%x,%x)", i, product, overflow,
				wantLo, wantHi)
		}
	}
}

func TestMulShiftEquivalence(t *testing.T) {
	t.Parallel()

	var seed uint64 = 123
	a := randomU512(&seed)

	for k := uint(0); k < 512; k += 37 {
		pow2k := U512{}
		Lsh(&pow2k, &one, k)

		var product, overflow U512
		Mul(&product, &overflow, &a, &pow2k)

		var wantProduct, wantOverflow U512
		Lsh(&wantProduct, &a, k)
		Rsh(&wantOverflow, &a, 512-k)
		if k == 0 {
			wantOverflow = U512{}
		}

		if product != wantProduct || overflow != wantOverflow {
			t.Fatalf("k=%d: got (%x,%x) want (%x,%x)", k, product, overflow,
				wantProduct, wantOverflow)
		}
	}
}
