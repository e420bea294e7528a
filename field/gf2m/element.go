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

import (
	"io"
	"math/big"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/chain"
	"github.com/consensys/go-ecfield/pkg/util/nat"
	"github.com/pkg/errors"
)

// Polynomial selects a binary field at compile time.  Implementations are
// empty marker types whose Params method returns the field's descriptor.
type Polynomial interface {
	Params() *Params
}

// Element of the binary field selected by M: a polynomial over GF(2) of degree
// below m, with bit i of the little-endian words holding the coefficient of tⁱ.
// Bits at or above m are always zero.
type Element[M Polynomial] struct {
	n words
}

func params[M Polynomial]() *Params {
	var m M
	//
	return m.Params()
}

// One returns the multiplicative identity.
func One[M Polynomial]() Element[M] {
	var r Element[M]
	//
	r.n[0] = 1
	//
	return r
}

// FromBigInt constructs an element from its integer encoding, which must have
// fewer than m bits.
func FromBigInt[M Polynomial](val *big.Int) (Element[M], error) {
	var r Element[M]
	//
	return r.SetBigInt(val)
}

// Random draws a uniformly distributed element from the given source.
func Random[M Polynomial](rng io.Reader) (Element[M], error) {
	var r Element[M]
	//
	return r.Random(rng)
}

// Add x + y (exclusive or)
func (x Element[M]) Add(y Element[M]) Element[M] {
	var r Element[M]
	//
	nat.Xor64(r.n[:], x.n[:], y.n[:])
	//
	return r
}

// Sub x - y, which is the same as addition.
func (x Element[M]) Sub(y Element[M]) Element[M] {
	return x.Add(y)
}

// AddOne x + 1
func (x Element[M]) AddOne() Element[M] {
	x.n[0] ^= 1
	//
	return x
}

// Negate -x, which is x itself.
func (x Element[M]) Negate() Element[M] {
	return x
}

// Mul x * y
func (x Element[M]) Mul(y Element[M]) Element[M] {
	var r Element[M]
	//
	params[M]().mul(&r.n, &x.n, &y.n)
	//
	return r
}

// Square x²
func (x Element[M]) Square() Element[M] {
	var r Element[M]
	//
	params[M]().square(&r.n, &x.n)
	//
	return r
}

// SquareN x^(2ⁿ)
func (x Element[M]) SquareN(n uint) Element[M] {
	var r Element[M]
	//
	params[M]().squareN(&r.n, &x.n, n)
	//
	return r
}

// Inverse x⁻¹ by Itoh-Tsujii, as x^(2ᵐ-2).  Panics with field.ErrDivisionByZero
// if x = 0.
func (x Element[M]) Inverse() Element[M] {
	if x.IsZero() {
		panic(errors.Wrapf(field.ErrDivisionByZero, "inverse over %s", params[M]().name))
	}
	//
	return chain.Exp(params[M]().inverse, x, Element[M].Mul, Element[M].SquareN)
}

// Sqrt returns the unique square root of x.  Every element of a binary field
// is a square.
func (x Element[M]) Sqrt() (Element[M], bool) {
	var r Element[M]
	//
	params[M]().sqrt(&r.n, &x.n)
	//
	return r, true
}

// Trace returns Tr(x), which is 0 or 1.
func (x Element[M]) Trace() uint {
	return params[M]().trace(&x.n)
}

// HalfTrace returns H(x).
func (x Element[M]) HalfTrace() Element[M] {
	var r Element[M]
	//
	params[M]().halfTrace(&r.n, &x.n)
	//
	return r
}

// SolveQuadratic returns a solution z of z² + z = x, or false when none exists
// (exactly when Tr(x) = 1).  The other solution is z + 1.
func (x Element[M]) SolveQuadratic() (Element[M], bool) {
	if x.Trace() != 0 {
		return Element[M]{}, false
	}
	//
	z := x.HalfTrace()
	//
	if !z.Square().Add(z).Equal(x) {
		return Element[M]{}, false
	}
	//
	return z, true
}

// IsZero checks whether x = 0
func (x Element[M]) IsZero() bool {
	return nat.IsZero64(x.n[:])
}

// IsOne checks whether x = 1
func (x Element[M]) IsOne() bool {
	return nat.IsOne64(x.n[:])
}

// TestBitZero reports whether the constant coefficient of x is set.
func (x Element[M]) TestBitZero() bool {
	return x.n[0]&1 == 1
}

// Equal checks whether x = y
func (x Element[M]) Equal(y Element[M]) bool {
	return x.n == y.n
}

// BigInt returns the integer encoding of x.
func (x Element[M]) BigInt() *big.Int {
	return nat.ToBig64(x.n[:params[M]().words])
}

// SetBigInt constructs an element from an integer encoding of fewer than m bits.
func (x Element[M]) SetBigInt(val *big.Int) (Element[M], error) {
	var (
		r Element[M]
		p = params[M]()
	)
	//
	if val.Sign() < 0 || uint(val.BitLen()) > p.m {
		return r, errors.Wrapf(field.ErrInvalidElement, "%s exceeds degree %d for %s", val, p.m-1, p.name)
	}
	//
	nat.FromBig64(r.n[:p.words], val)
	//
	return r, nil
}

// SetUint64 constructs an element whose coefficients are the bits of val.
func (x Element[M]) SetUint64(val uint64) Element[M] {
	var r Element[M]
	//
	r.n[0] = val
	//
	return r
}

// Bytes returns the big-endian encoding of x in ⌈m/8⌉ bytes.
func (x Element[M]) Bytes() []byte {
	bytes := make([]byte, (params[M]().m+7)/8)
	//
	return x.BigInt().FillBytes(bytes)
}

// SetBytes decodes a big-endian encoding.
func (x Element[M]) SetBytes(bytes []byte) (Element[M], error) {
	return x.SetBigInt(new(big.Int).SetBytes(bytes))
}

// Random draws a uniformly distributed element by taking m random bits.
func (x Element[M]) Random(rng io.Reader) (Element[M], error) {
	n, err := params[M]().random(rng)
	//
	return Element[M]{n}, err
}

// FieldName returns the standard name of the field.
func (x Element[M]) FieldName() string {
	return params[M]().name
}

// FieldSize returns the degree m.
func (x Element[M]) FieldSize() uint {
	return params[M]().m
}

// Modulus returns the reduction polynomial as an integer.
func (x Element[M]) Modulus() *big.Int {
	return params[M]().Polynomial()
}

// Describe the representation of this field.
func (x Element[M]) Describe() field.Description {
	var (
		p        = params[M]()
		multiply = strategy.String()
	)
	//
	if strategy == KARATSUBA && hasCLMUL {
		multiply += " (pclmulqdq)"
	}
	//
	return field.Description{
		Limbs:     uint(p.words),
		LimbBits:  64,
		Reduction: p.describePolynomial(),
		Inversion: p.inverse.Chain().String(),
		Sqrt:      "sqrt(t) multiply",
		Multiply:  multiply,
	}
}

// Text returns the coefficients of x as an integer in the given base.
func (x Element[M]) Text(base int) string {
	return x.BigInt().Text(base)
}

func (x Element[M]) String() string {
	return "0x" + x.Text(16)
}
