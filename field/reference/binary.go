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
package reference

import "math/big"

// Binary implements arithmetic in GF(2ᵐ), where elements are polynomials over
// GF(2) stored as integers (bit i holding the coefficient of tⁱ) and reduced
// modulo an irreducible polynomial F of degree M.
type Binary struct {
	M uint
	F *big.Int
}

// NewBinary constructs the oracle for the binary field with the given
// reduction polynomial.
func NewBinary(f *big.Int) Binary {
	return Binary{uint(f.BitLen() - 1), new(big.Int).Set(f)}
}

// Polynomial constructs tᵐ + t^k₁ + ... + 1.
func Polynomial(m uint, ks ...uint) *big.Int {
	f := big.NewInt(1)
	f.SetBit(f, int(m), 1)
	//
	for _, k := range ks {
		f.SetBit(f, int(k), 1)
	}
	//
	return f
}

// ClMul returns the carry-less product of x and y.
func ClMul(x, y *big.Int) *big.Int {
	z := new(big.Int)
	//
	for i := range y.BitLen() {
		if y.Bit(i) == 1 {
			z.Xor(z, new(big.Int).Lsh(x, uint(i)))
		}
	}
	//
	return z
}

// PolyMod returns the remainder of x on (polynomial) division by f, using
// schoolbook long division.
func PolyMod(x, f *big.Int) *big.Int {
	var (
		r = new(big.Int).Set(x)
		m = f.BitLen() - 1
	)
	//
	for d := r.BitLen() - 1; d >= m; d = r.BitLen() - 1 {
		r.Xor(r, new(big.Int).Lsh(f, uint(d-m)))
	}
	//
	return r
}

// Add returns x + y
func (b Binary) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Xor(x, y)
}

// Mul returns x * y mod F
func (b Binary) Mul(x, y *big.Int) *big.Int {
	return PolyMod(ClMul(x, y), b.F)
}

// Square returns x² mod F
func (b Binary) Square(x *big.Int) *big.Int {
	return b.Mul(x, x)
}

// Inverse returns x⁻¹ mod F using the extended Euclidean algorithm over
// GF(2)[t], or nil if x = 0.
func (b Binary) Inverse(x *big.Int) *big.Int {
	var (
		u, v   = PolyMod(x, b.F), new(big.Int).Set(b.F)
		g1, g2 = big.NewInt(1), new(big.Int)
	)
	//
	if u.Sign() == 0 {
		return nil
	}
	//
	for u.Cmp(big.NewInt(1)) != 0 {
		j := u.BitLen() - v.BitLen()
		//
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		//
		u.Xor(u, new(big.Int).Lsh(v, uint(j)))
		g1.Xor(g1, new(big.Int).Lsh(g2, uint(j)))
	}
	//
	return PolyMod(g1, b.F)
}

// Sqrt returns the unique square root x^(2^(M-1)).
func (b Binary) Sqrt(x *big.Int) *big.Int {
	r := PolyMod(x, b.F)
	//
	for range b.M - 1 {
		r = b.Square(r)
	}
	//
	return r
}

// Trace returns Σ x^(2ⁱ) for i in 0..M-1, which is 0 or 1.
func (b Binary) Trace(x *big.Int) uint {
	var (
		t = PolyMod(x, b.F)
		s = new(big.Int).Set(t)
	)
	//
	for range b.M - 1 {
		t = b.Square(t)
		s.Xor(s, t)
	}
	//
	return uint(s.Bit(0))
}
