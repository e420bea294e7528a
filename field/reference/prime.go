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

// Package reference provides slow but obviously correct implementations of
// field arithmetic on top of math/big.  These serve as oracles against which
// the specialised engines are tested.
package reference

import "math/big"

// Prime implements arithmetic modulo a prime P.
type Prime struct {
	P *big.Int
}

// NewPrime constructs the oracle for the prime field of order p.
func NewPrime(p *big.Int) Prime {
	return Prime{new(big.Int).Set(p)}
}

// Add returns x + y mod P
func (f Prime) Add(x, y *big.Int) *big.Int {
	return f.mod(new(big.Int).Add(x, y))
}

// Sub returns x - y mod P
func (f Prime) Sub(x, y *big.Int) *big.Int {
	return f.mod(new(big.Int).Sub(x, y))
}

// Neg returns -x mod P
func (f Prime) Neg(x *big.Int) *big.Int {
	return f.mod(new(big.Int).Neg(x))
}

// Mul returns x * y mod P
func (f Prime) Mul(x, y *big.Int) *big.Int {
	return f.mod(new(big.Int).Mul(x, y))
}

// Square returns x² mod P
func (f Prime) Square(x *big.Int) *big.Int {
	return f.Mul(x, x)
}

// Double returns 2x mod P
func (f Prime) Double(x *big.Int) *big.Int {
	return f.mod(new(big.Int).Lsh(x, 1))
}

// Half returns x/2 mod P
func (f Prime) Half(x *big.Int) *big.Int {
	h := new(big.Int).Set(x)
	//
	if h.Bit(0) == 1 {
		h.Add(h, f.P)
	}
	//
	return h.Rsh(h, 1)
}

// Inverse returns x⁻¹ mod P, or nil if x = 0.
func (f Prime) Inverse(x *big.Int) *big.Int {
	if f.mod(x).Sign() == 0 {
		return nil
	}
	//
	return new(big.Int).ModInverse(x, f.P)
}

// IsSquare reports whether x is a quadratic residue (zero included).
func (f Prime) IsSquare(x *big.Int) bool {
	return big.Jacobi(f.mod(x), f.P) >= 0
}

// Sqrt returns a square root of x, or false if none exists.
func (f Prime) Sqrt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModSqrt(f.mod(x), f.P)
	//
	return r, r != nil
}

func (f Prime) mod(x *big.Int) *big.Int {
	return x.Mod(x, f.P)
}
