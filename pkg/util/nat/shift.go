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

// ShiftUpBit sets z = (x << 1) | c, where c is the incoming bit (0 or 1), and
// returns the bit shifted out of the most significant word.  z may equal x.
func ShiftUpBit(z, x []uint32, c uint32) uint32 {
	for i := range z {
		next := x[i]
		z[i] = next<<1 | c
		c = next >> 31
	}
	//
	return c
}

// ShiftDownBit sets z = (x >> 1) | (c << top), where c is the incoming bit (0
// or 1) for the most significant position, and returns the bit shifted out of
// the least significant word.  z may equal x.
func ShiftDownBit(z, x []uint32, c uint32) uint32 {
	for i := len(z) - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>1 | c<<31
		c = next & 1
	}
	//
	return c
}

// ShiftUpBits shifts x up by n bits (0 < n < 32) into z.  The low n bits of c
// are shifted in at the bottom, and the n bits shifted out of the top are
// returned in the low bits of the result.  z may equal x.
func ShiftUpBits(z, x []uint32, n uint, c uint32) uint32 {
	for i := range z {
		next := x[i]
		z[i] = next<<n | c
		c = next >> (32 - n)
	}
	//
	return c
}

// ShiftDownBits shifts x down by n bits (0 < n < 32) into z.  The low n bits of
// c are shifted in at the top, and the n bits shifted out of the bottom are
// returned in the low bits of the result.  z may equal x.
func ShiftDownBits(z, x []uint32, n uint, c uint32) uint32 {
	mask := uint32(1)<<n - 1
	//
	for i := len(z) - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>n | c<<(32-n)
		c = next & mask
	}
	//
	return c
}
