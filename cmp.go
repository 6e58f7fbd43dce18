// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

// Cmp compares a and b and returns -1 if a < b, 0 if a == b, and +1 if
// a > b. Comparison proceeds from the most significant word (index 0) down,
// so it short-circuits on the first differing word.
func Cmp(a, b *U512) int {
	for i := 0; i < 8; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Eq reports whether a and b hold the same value.
func Eq(a, b *U512) bool {
	return *a == *b
}
