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
package fp

import (
	"math/bits"

	"github.com/consensys/go-ecfield/pkg/util/nat"
)

type words = [MaxWords]uint32

// z = x + y mod p
func (p *Params) add(z, x, y *words) {
	n := p.words
	//
	if c := nat.Add(z[:n], x[:n], y[:n]); c != 0 || nat.Gte(z[:n], p.p[:n]) {
		nat.SubFrom(z[:n], p.p[:n])
	}
}

// z = x - y mod p
func (p *Params) sub(z, x, y *words) {
	n := p.words
	//
	if b := nat.Sub(z[:n], x[:n], y[:n]); b != 0 {
		nat.AddTo(z[:n], p.p[:n])
	}
}

// z = -x mod p
func (p *Params) neg(z, x *words) {
	n := p.words
	//
	if nat.IsZero(x[:n]) {
		nat.Clear(z[:n])
	} else {
		nat.Sub(z[:n], p.p[:n], x[:n])
	}
}

// z = x / 2 mod p
func (p *Params) half(z, x *words) {
	var (
		n = p.words
		c uint32
	)
	//
	if x[0]&1 == 0 {
		nat.Copy(z[:n], x[:n])
	} else {
		c = nat.Add(z[:n], x[:n], p.p[:n])
	}
	//
	nat.ShiftDownBit(z[:n], z[:n], c)
}

// z = x * y mod p
func (p *Params) mul(z, x, y *words) {
	var tt [2 * MaxWords]uint32
	//
	nat.Mul(tt[:2*p.words], x[:p.words], y[:p.words])
	p.reduce(z, &tt)
}

// z = x² mod p
func (p *Params) square(z, x *words) {
	var tt [2 * MaxWords]uint32
	//
	nat.Square(tt[:2*p.words], x[:p.words])
	p.reduce(z, &tt)
}

// reduce a double-width value modulo p.
func (p *Params) reduce(z *words, tt *[2 * MaxWords]uint32) {
	switch p.form {
	case PSEUDO_MERSENNE:
		p.reducePseudoMersenne(z, tt)
	case SOLINAS:
		p.reduceSolinas(z, tt)
	default:
		p.reduceMersenne521(z, tt)
	}
	//
	for n := p.words; nat.Gte(z[:n], p.p[:n]); {
		nat.SubFrom(z[:n], p.p[:n])
	}
}

// Since 2^(32n) = c (mod p), the high half is folded in as hi * c, leaving at
// most two words of overflow which are folded again.
func (p *Params) reducePseudoMersenne(z *words, tt *[2 * MaxWords]uint32) {
	var (
		n  = p.words
		hi = tt[n : 2*n]
		t  [MaxWords + 2]uint32
	)
	//
	t[n] = nat.MulWord(t[:n], hi, uint32(p.c))
	if p.c>>32 != 0 {
		t[n+1] = nat.MulWordAddTo(t[1:n+1], hi, uint32(p.c>>32))
	}
	//
	cy := nat.Add(z[:n], tt[:n], t[:n])
	extra := (uint64(t[n]) | uint64(t[n+1])<<32) + uint64(cy)
	h, l := bits.Mul64(extra, p.c)
	k := nat.AddDWordAt(z[:n], l, 0) + nat.AddDWordAt(z[:n], h, 2)
	// Each carry out is worth another c
	for k != 0 {
		k = k - 1 + nat.AddDWordAt(z[:n], p.c, 0)
	}
}

// High words are folded top-down into signed 64-bit columns, using the
// expansion of 2^(32n) mod p as signed word-aligned terms.  Folding can land
// above word n, but always strictly below the word being folded.
func (p *Params) reduceSolinas(z *words, tt *[2 * MaxWords]uint32) {
	var (
		n   = p.words
		acc [2 * MaxWords]int64
	)
	//
	for i := range 2 * n {
		acc[i] = int64(tt[i])
	}
	//
	for i := 2*n - 1; i >= n; i-- {
		w := acc[i]
		acc[i] = 0
		//
		for _, t := range p.terms {
			acc[i-n+t.Offset] += t.Sign * w
		}
	}
	//
	cc := propagate(z[:n], acc[:n])
	// Fold the signed carry until none remains
	for cc != 0 {
		for i := range n {
			acc[i] = int64(z[i])
		}
		//
		for _, t := range p.terms {
			acc[t.Offset] += t.Sign * cc
		}
		//
		cc = propagate(z[:n], acc[:n])
	}
}

// propagate carries through signed columns, returning the final (signed) carry.
func propagate(z []uint32, acc []int64) int64 {
	var c int64
	//
	for i, v := range acc {
		v += c
		z[i] = uint32(v)
		c = v >> 32
	}
	//
	return c
}

// For p = 2^521 - 1, the value above bit 521 is simply added to the value below
// it.
func (p *Params) reduceMersenne521(z *words, tt *[2 * MaxWords]uint32) {
	var hi words
	//
	for i := range MaxWords {
		hi[i] = tt[16+i]>>9 | tt[17+i]<<23
	}
	//
	nat.Copy(z[:], tt[:MaxWords])
	z[16] &= 0x1FF
	nat.AddTo(z[:], hi[:])
	// Fold bit 521
	top := z[16] >> 9
	z[16] &= 0x1FF
	nat.AddWordAt(z[:], top, 0)
}
