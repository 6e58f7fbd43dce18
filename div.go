// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "math/bits"

// Div computes quotient = floor(dividend / divisor) and
// remainder = dividend - quotient*divisor.
//
// If divisor is zero, both quotient and remainder are zeroed and
// ErrDivByZero is returned. All four buffers should be mutually distinct;
// in-place operation is not guaranteed.
func Div(quotient, remainder, dividend, divisor *U512) error {
	if divisor.IsZero() {
		Zero(quotient)
		Zero(remainder)
		return mathError(ErrDivByZero, "ui512: division by zero")
	}
	if Eq(divisor, &one) {
		*quotient = *dividend
		Zero(remainder)
		return nil
	}

	dn := significantWords(divisor)
	if dn <= 1 {
		// The divisor fits in a single 64-bit word: delegate to the 2-by-1
		// division primitive and place its remainder in the
		// least-significant word.
		r, _ := DivSmall(quotient, dividend, divisor[7])
		Zero(remainder)
		remainder[7] = r
		return nil
	}
	if Cmp(dividend, divisor) < 0 {
		Zero(quotient)
		*remainder = *dividend
		return nil
	}

	divKnuth(quotient, remainder, dividend, divisor, dn)
	return nil
}

// divKnuth implements Knuth's Algorithm D (TAOCP Vol. 2, §4.3.1) for the
// general multi-word case: the divisor occupies dn (2..8) significant
// words, and it is already known that dividend >= divisor and divisor > 1.
//
// The algorithm is carried out on little-endian word slices (index 0 least
// significant) since that is the natural orientation for Knuth's D1-D8
// steps; inputs and outputs are converted to/from this package's
// big-endian U512 layout at the boundary.
func divKnuth(quotient, remainder, dividend, divisor *U512, dn int) {
	var aLE, bLE [8]uint64
	for i := 0; i < 8; i++ {
		aLE[i] = dividend[7-i]
		bLE[i] = divisor[7-i]
	}

	dvn := significantWords(dividend)
	n := dn
	m := dvn - n

	// D1: normalize so the divisor's leading word has its top bit set.
	s := uint(bits.LeadingZeros64(bLE[n-1]))

	var vn [8]uint64
	vn[0] = bLE[0] << s
	for i := 1; i < n; i++ {
		vn[i] = (bLE[i] << s) | (bLE[i-1] >> (64 - s))
	}

	var un [9]uint64
	un[dvn] = aLE[dvn-1] >> (64 - s)
	for i := dvn - 1; i >= 1; i-- {
		un[i] = (aLE[i] << s) | (aLE[i-1] >> (64 - s))
	}
	un[0] = aLE[0] << s

	var qLE [8]uint64

	// D2-D7: one quotient digit per iteration, most significant first.
	for j := m; j >= 0; j-- {
		// D3: estimate the trial digit q-hat from the top two words of the
		// current window, then refine using the third word so q-hat is
		// either exact or exactly one too large.
		ujn := un[j+n]
		ujn1 := un[j+n-1]

		var qhat, rhat uint64
		var rhatOverflow bool
		if ujn >= vn[n-1] {
			qhat = ^uint64(0)
			var c uint64
			rhat, c = bits.Add64(ujn1, vn[n-1], 0)
			rhatOverflow = c != 0
		} else {
			qhat, rhat = bits.Div64(ujn, ujn1, vn[n-1])
		}

		ujn2 := un[j+n-2]
		for !rhatOverflow {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= ujn2) {
				break
			}
			qhat--
			var c uint64
			rhat, c = bits.Add64(rhat, vn[n-1], 0)
			rhatOverflow = c != 0
		}

		// D4: multiply qhat by the normalized divisor and subtract the
		// result from the window un[j..j+n], propagating borrow.
		var borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			s1, b1 := bits.Sub64(un[i+j], lo, 0)
			s2, b2 := bits.Sub64(s1, borrow, 0)
			un[i+j] = s2
			borrow = hi + b1 + b2
		}
		top, borrowOut := bits.Sub64(un[j+n], borrow, 0)
		un[j+n] = top

		// D5: record the quotient digit.
		qLE[j] = qhat

		// D6: add-back correction. q-hat was exactly one too large; this
		// occurs with probability roughly 2/2^64 per iteration.
		if borrowOut != 0 {
			log.Tracef("ui512: div add-back at digit %d", j)
			qLE[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				sum, c := bits.Add64(un[i+j], vn[i], carry)
				un[i+j] = sum
				carry = c
			}
			un[j+n] += carry
		}
	}

	// D8: de-normalize the remainder, which occupies un[0:n].
	var remLE [8]uint64
	for i := 0; i < n; i++ {
		lo := un[i] >> s
		var hi uint64
		if i+1 < n {
			hi = un[i+1] << (64 - s)
		}
		remLE[i] = lo | hi
	}

	for i := 0; i < 8; i++ {
		quotient[7-i] = qLE[i]
		remainder[7-i] = remLE[i]
	}
}
