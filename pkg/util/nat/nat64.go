// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package nat

import "math/bits"

// The 64-bit variants below back the binary extension fields, where addition
// is exclusive-or and there is never a carry to report.

// Xor64 sets z = x ^ y.
func Xor64(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

// XorTo64 sets z = z ^ x.
func XorTo64(z, x []uint64) {
	for i := range z {
		z[i] ^= x[i]
	}
}

// IsZero64 returns true if every word of x is zero.
func IsZero64(x []uint64) bool {
	var acc uint64
	//
	for _, w := range x {
		acc |= w
	}
	//
	return acc == 0
}

// IsOne64 returns true if x represents the value one.
func IsOne64(x []uint64) bool {
	acc := x[0] ^ 1
	//
	for _, w := range x[1:] {
		acc |= w
	}
	//
	return acc == 0
}

// Eq64 returns true if x == y.
func Eq64(x, y []uint64) bool {
	var acc uint64
	//
	for i := range x {
		acc |= x[i] ^ y[i]
	}
	//
	return acc == 0
}

// ShiftUpBits64 shifts x up by n bits (0 < n < 64) into z, shifting the low n
// bits of c in at the bottom and returning the n bits shifted out of the top.
// z may equal x.
func ShiftUpBits64(z, x []uint64, n uint, c uint64) uint64 {
	for i := range z {
		next := x[i]
		z[i] = next<<n | c
		c = next >> (64 - n)
	}
	//
	return c
}

// ShiftDownBits64 shifts x down by n bits (0 < n < 64) into z, shifting the low
// n bits of c in at the top and returning the n bits shifted out of the
// bottom.  z may equal x.
func ShiftDownBits64(z, x []uint64, n uint, c uint64) uint64 {
	mask := uint64(1)<<n - 1
	//
	for i := len(z) - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>n | c<<(64-n)
		c = next & mask
	}
	//
	return c
}

// BitLen64 returns the position of the most significant set bit plus one, or 0
// for zero.  For a polynomial over GF(2) this is its degree plus one.
func BitLen64(x []uint64) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(i)*64 + uint(bits.Len64(x[i]))
		}
	}
	//
	return 0
}
