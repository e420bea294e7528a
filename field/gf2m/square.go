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

import "github.com/consensys/go-ecfield/pkg/util/nat"

// Squaring is linear over GF(2): the square of Σ aᵢtⁱ is Σ aᵢt²ⁱ, so each word
// is spread into two by interleaving zeros before reducing.
func (p *Params) square(z, x *words) {
	var zz [2 * MaxWords]uint64
	//
	for i := range p.words {
		zz[2*i] = spread(x[i])
		zz[2*i+1] = spread(x[i] >> 32)
	}
	//
	p.reduce(z, &zz)
}

// z = x^(2ᵏ)
func (p *Params) squareN(z, x *words, k uint) {
	*z = *x
	//
	for range k {
		p.square(z, z)
	}
}

// The square root of x = E(t²) + t·O(t²) is E(t) + √t·O(t), where E and O
// gather the even and odd coefficients of x respectively.
func (p *Params) sqrt(z, x *words) {
	var even, odd words
	//
	for i := range p.words {
		s := 32 * uint(i%2)
		even[i/2] |= compress(x[i]) << s
		odd[i/2] |= compress(x[i]>>1) << s
	}
	//
	p.mul(z, &odd, &p.sqrtT)
	nat.XorTo64(z[:p.words], even[:p.words])
}

// Tr(x) = x + x² + x⁴ + ... + x^(2ᵐ⁻¹), which always lies in {0, 1}.
func (p *Params) trace(x *words) uint {
	var s, acc = *x, *x
	//
	for range p.m - 1 {
		p.square(&s, &s)
		nat.XorTo64(acc[:p.words], s[:p.words])
	}
	//
	return uint(acc[0] & 1)
}

// H(x) = Σ x^(2^(2i)) for i in 0..(m-1)/2, evaluated as h ← h⁴ + x.  For odd
// m this satisfies H(x)² + H(x) = x + Tr(x).
func (p *Params) halfTrace(z, x *words) {
	xx := *x
	*z = xx
	//
	for range (p.m - 1) / 2 {
		p.square(z, z)
		p.square(z, z)
		nat.XorTo64(z[:p.words], xx[:p.words])
	}
}
