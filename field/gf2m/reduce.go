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

// reduce a double-width polynomial modulo f, writing the result into z.  Words
// above m are folded top-down using tᵐ = t^k₁ [+ t^k₂ + t^k₃] + 1; since every
// k is at least 64 below m, each fold lands strictly below the word being
// folded.  Finally the bits of the top word at or above m are folded.
func (p *Params) reduce(z *words, zz *[2 * MaxWords]uint64) {
	var (
		n   = p.words
		top = p.m % 64
	)
	//
	for i := 2*n - 1; i >= n; i-- {
		w := zz[i]
		if w == 0 {
			continue
		}
		//
		zz[i] = 0
		base := 64*uint(i) - p.m
		//
		for _, k := range p.taps {
			xorAt(zz, base+k, w)
		}
	}
	//
	if top != 0 {
		w := zz[n-1] >> top
		zz[n-1] &= 1<<top - 1
		//
		for _, k := range p.taps {
			xorAt(zz, k, w)
		}
	}
	//
	copy(z[:n], zz[:n])
	clear(z[n:])
}

// xor w into zz at bit position pos.
func xorAt(zz *[2 * MaxWords]uint64, pos uint, w uint64) {
	var (
		i = pos >> 6
		s = pos & 63
	)
	//
	zz[i] ^= w << s
	//
	if s != 0 {
		zz[i+1] ^= w >> (64 - s)
	}
}
