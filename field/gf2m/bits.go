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
package gf2m

import "math/bits"

const (
	m0 = 0x1111111111111111
	m1 = 0x2222222222222222
	m2 = 0x4444444444444444
	m3 = 0x8888888888888888
)

// bmul64 returns the low 64 bits of the carry-less product of x and y, using
// integer multiplication with "holes": with only every fourth bit of each
// operand set, carries from one product bit cannot reach the next bit of
// interest.  This is constant time wherever integer multiplication is.
func bmul64(x, y uint64) uint64 {
	var (
		x0, x1, x2, x3 = x & m0, x & m1, x & m2, x & m3
		y0, y1, y2, y3 = y & m0, y & m1, y & m2, y & m3
	)
	//
	z0 := (x0 * y0) ^ (x1 * y3) ^ (x2 * y2) ^ (x3 * y1)
	z1 := (x0 * y1) ^ (x1 * y0) ^ (x2 * y3) ^ (x3 * y2)
	z2 := (x0 * y2) ^ (x1 * y1) ^ (x2 * y0) ^ (x3 * y3)
	z3 := (x0 * y3) ^ (x1 * y2) ^ (x2 * y1) ^ (x3 * y0)
	//
	return (z0 & m0) | (z1 & m1) | (z2 & m2) | (z3 & m3)
}

// clmul64Generic returns the 128-bit carry-less product of x and y.  The high
// half is recovered from the low half of the product of the bit reversals.
func clmul64Generic(x, y uint64) (hi, lo uint64) {
	var (
		xr = bits.Reverse64(x)
		yr = bits.Reverse64(y)
	)
	//
	lo = bmul64(x, y)
	hi = bits.Reverse64(bmul64(xr, yr)) >> 1
	//
	return hi, lo
}

// spread interleaves the low 32 bits of x with zeros, so that bit i moves to
// bit 2i.
func spreadBits(x uint64) uint64 {
	x &= 0xFFFFFFFF
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F0F0F0F0F
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	//
	return x
}

// compressBits is the inverse of spreadBits, gathering the even bits of x into
// the low 32 bits.
func compressBits(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0F0F0F0F0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	x = (x | x>>16) & 0x00000000FFFFFFFF
	//
	return x
}

var spreadTable = func() (table [256]uint16) {
	for i := range table {
		table[i] = uint16(spreadBits(uint64(i)))
	}
	//
	return table
}()

func spreadLookup(x uint64) uint64 {
	return uint64(spreadTable[x&0xFF]) |
		uint64(spreadTable[(x>>8)&0xFF])<<16 |
		uint64(spreadTable[(x>>16)&0xFF])<<32 |
		uint64(spreadTable[(x>>24)&0xFF])<<48
}

func spreadPDEP(x uint64) uint64 {
	return pdep64Asm(x, 0x5555555555555555)
}

func compressPEXT(x uint64) uint64 {
	return pext64Asm(x, 0x5555555555555555)
}
