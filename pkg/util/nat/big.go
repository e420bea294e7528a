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

import (
	"math/big"
	"math/bits"
)

// FromBig initialises z from a non-negative big integer, returning false (and
// leaving z unspecified) if b is negative or does not fit into len(z) words.
func FromBig(z []uint32, b *big.Int) bool {
	if b.Sign() < 0 || b.BitLen() > 32*len(z) {
		return false
	}
	//
	clear(z)
	//
	for i, w := range b.Bits() {
		if bits.UintSize == 32 {
			z[i] = uint32(w)
			continue
		}
		//
		z[2*i] = uint32(w)
		//
		if 2*i+1 < len(z) {
			z[2*i+1] = uint32(uint64(w) >> 32)
		}
	}
	//
	return true
}

// ToBig returns the value of x as a freshly allocated big integer.
func ToBig(x []uint32) *big.Int {
	var words []big.Word
	//
	if bits.UintSize == 32 {
		words = make([]big.Word, len(x))
		for i, w := range x {
			words[i] = big.Word(w)
		}
	} else {
		words = make([]big.Word, (len(x)+1)/2)
		for i, w := range x {
			words[i/2] |= big.Word(uint64(w) << (32 * (i % 2)))
		}
	}
	//
	return new(big.Int).SetBits(words)
}

// FromBig64 initialises z from a non-negative big integer, returning false if b
// is negative or does not fit into len(z) 64-bit words.
func FromBig64(z []uint64, b *big.Int) bool {
	if b.Sign() < 0 || b.BitLen() > 64*len(z) {
		return false
	}
	//
	clear(z)
	//
	for i, w := range b.Bits() {
		if bits.UintSize == 32 {
			z[i/2] |= uint64(w) << (32 * (i % 2))
		} else {
			z[i] = uint64(w)
		}
	}
	//
	return true
}

// ToBig64 returns the value of x as a freshly allocated big integer.
func ToBig64(x []uint64) *big.Int {
	var words []big.Word
	//
	if bits.UintSize == 32 {
		words = make([]big.Word, 2*len(x))
		for i, w := range x {
			words[2*i] = big.Word(uint32(w))
			words[2*i+1] = big.Word(uint32(w >> 32))
		}
	} else {
		words = make([]big.Word, len(x))
		for i, w := range x {
			words[i] = big.Word(w)
		}
	}
	//
	return new(big.Int).SetBits(words)
}
