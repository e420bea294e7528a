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

// Package nat implements fixed-width natural number arithmetic over little-endian
// limb vectors.  A vector's length is its word count: every operation writes an
// output of the same length as its inputs and reports anything which does not
// fit through an explicit carry or borrow, rather than silently truncating.
//
// Unless stated otherwise, outputs may alias inputs only when they are the
// same slice (i.e. z == x exactly, not partially overlapping).
package nat

import "math/bits"

// Add sets z = x + y and returns the carry out of the most significant word (0
// or 1).
func Add(z, x, y []uint32) uint32 {
	var c uint64
	//
	for i := range z {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(c)
}

// AddTo sets z = z + x and returns the carry (0 or 1).
func AddTo(z, x []uint32) uint32 {
	var c uint64
	//
	for i := range z {
		c += uint64(z[i]) + uint64(x[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(c)
}

// AddBothTo sets z = z + x + y and returns the carry (0, 1 or 2).
func AddBothTo(z, x, y []uint32) uint32 {
	var c uint64
	//
	for i := range z {
		c += uint64(z[i]) + uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(c)
}

// Sub sets z = x - y and returns the borrow out of the most significant word (0
// or 1).
func Sub(z, x, y []uint32) uint32 {
	var c int64
	//
	for i := range z {
		c += int64(x[i]) - int64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(-c)
}

// SubFrom sets z = z - x and returns the borrow (0 or 1).
func SubFrom(z, x []uint32) uint32 {
	var c int64
	//
	for i := range z {
		c += int64(z[i]) - int64(x[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(-c)
}

// Inc increments z in place, returning 1 if it wrapped around to zero.
func Inc(z []uint32) uint32 {
	return IncAt(z, 0)
}

// IncAt adds one at word position i, propagating upwards, and returns the
// carry out of the most significant word.
func IncAt(z []uint32, i int) uint32 {
	for ; i < len(z); i++ {
		z[i]++
		if z[i] != 0 {
			return 0
		}
	}
	//
	return 1
}

// Dec decrements z in place, returning 1 if it wrapped around from zero.
func Dec(z []uint32) uint32 {
	return DecAt(z, 0)
}

// DecAt subtracts one at word position i, propagating upwards, and returns the
// borrow out of the most significant word.
func DecAt(z []uint32, i int) uint32 {
	for ; i < len(z); i++ {
		z[i]--
		if z[i] != 0xFFFFFFFF {
			return 0
		}
	}
	//
	return 1
}

// AddWordAt adds x to z at word position i and returns the carry out of the
// most significant word.
func AddWordAt(z []uint32, x uint32, i int) uint32 {
	c := uint64(z[i]) + uint64(x)
	z[i] = uint32(c)
	//
	if c>>32 == 0 {
		return 0
	}
	//
	return IncAt(z, i+1)
}

// AddDWordAt adds the 64-bit value x to z at word position i (spanning words i
// and i+1) and returns the carry out of the most significant word.
func AddDWordAt(z []uint32, x uint64, i int) uint32 {
	c := uint64(z[i]) + (x & 0xFFFFFFFF)
	z[i] = uint32(c)
	c >>= 32
	c += uint64(z[i+1]) + (x >> 32)
	z[i+1] = uint32(c)
	//
	if c>>32 == 0 {
		return 0
	}
	//
	return IncAt(z, i+2)
}

// SubWordAt subtracts x from z at word position i and returns the borrow out of
// the most significant word.
func SubWordAt(z []uint32, x uint32, i int) uint32 {
	c := int64(z[i]) - int64(x)
	z[i] = uint32(c)
	//
	if c >= 0 {
		return 0
	}
	//
	return DecAt(z, i+1)
}

// Gte returns true if x >= y.
func Gte(x, y []uint32) bool {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return x[i] > y[i]
		}
	}
	//
	return true
}

// Cmp returns -1, 0 or 1 depending on whether x < y, x == y or x > y.
func Cmp(x, y []uint32) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	//
	return 0
}

// Eq returns true if x == y.
func Eq(x, y []uint32) bool {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return false
		}
	}
	//
	return true
}

// IsZero returns true if every word of x is zero.
func IsZero(x []uint32) bool {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return false
		}
	}
	//
	return true
}

// IsOne returns true if x represents the value one.
func IsOne(x []uint32) bool {
	for i := len(x) - 1; i >= 1; i-- {
		if x[i] != 0 {
			return false
		}
	}
	//
	return x[0] == 1
}

// Copy sets z = x.
func Copy(z, x []uint32) {
	copy(z, x[:len(z)])
}

// Clear sets every word of z to zero.
func Clear(z []uint32) {
	clear(z)
}

// BitLen returns the position of the most significant set bit plus one, or 0
// for zero.
func BitLen(x []uint32) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(i)*32 + uint(bits.Len32(x[i]))
		}
	}
	//
	return 0
}

// Bit returns bit n of x (0 or 1).  Bits beyond the end of x are zero.
func Bit(x []uint32, n uint) uint32 {
	w := n / 32
	if w >= uint(len(x)) {
		return 0
	}
	//
	return (x[w] >> (n % 32)) & 1
}
