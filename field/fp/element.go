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
	"io"
	"math/big"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/chain"
	"github.com/consensys/go-ecfield/pkg/util/nat"
	"github.com/pkg/errors"
)

// Modulus selects a prime field at compile time.  Implementations are empty
// marker types whose Params method returns the field's descriptor.
type Modulus interface {
	Params() *Params
}

// Element of the prime field selected by M, held as little-endian 32-bit words
// in canonical (fully reduced) form.  Words above the field's word count are
// always zero.
type Element[M Modulus] struct {
	n words
}

func params[M Modulus]() *Params {
	var m M
	//
	return m.Params()
}

// One returns the multiplicative identity.
func One[M Modulus]() Element[M] {
	var r Element[M]
	//
	r.n[0] = 1
	//
	return r
}

// FromBigInt constructs an element from its integer value, which must lie in
// [0, p).
func FromBigInt[M Modulus](val *big.Int) (Element[M], error) {
	var r Element[M]
	//
	return r.SetBigInt(val)
}

// Random draws a uniformly distributed element from the given source.
func Random[M Modulus](rng io.Reader) (Element[M], error) {
	var r Element[M]
	//
	return r.Random(rng)
}

// Add x + y
func (x Element[M]) Add(y Element[M]) Element[M] {
	var r Element[M]
	//
	params[M]().add(&r.n, &x.n, &y.n)
	//
	return r
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	var r Element[M]
	//
	params[M]().sub(&r.n, &x.n, &y.n)
	//
	return r
}

// AddOne x + 1
func (x Element[M]) AddOne() Element[M] {
	return x.Add(One[M]())
}

// Negate -x
func (x Element[M]) Negate() Element[M] {
	var r Element[M]
	//
	params[M]().neg(&r.n, &x.n)
	//
	return r
}

// Double 2x
func (x Element[M]) Double() Element[M] {
	return x.Add(x)
}

// Half x/2
func (x Element[M]) Half() Element[M] {
	var r Element[M]
	//
	params[M]().half(&r.n, &x.n)
	//
	return r
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

// SquareN computes x^(2ⁿ) by n successive squarings.
func (x Element[M]) SquareN(n uint) Element[M] {
	p := params[M]()
	//
	for range n {
		p.square(&x.n, &x.n)
	}
	//
	return x
}

// Exp computes x^e for an arbitrary (possibly negative) exponent.
func (x Element[M]) Exp(e *big.Int) Element[M] {
	return field.PowBig(x, e)
}

// Inverse x⁻¹, computed as x^(p-2).  Panics with field.ErrDivisionByZero when
// x = 0.
func (x Element[M]) Inverse() Element[M] {
	if x.IsZero() {
		panic(errors.Wrapf(field.ErrDivisionByZero, "inverse over %s", params[M]().name))
	}
	//
	return x.exp(params[M]().inverse)
}

func (x Element[M]) exp(plan *chain.Plan) Element[M] {
	return chain.Exp(plan, x, Element[M].Mul, Element[M].SquareN)
}

// IsZero checks whether x = 0
func (x Element[M]) IsZero() bool {
	return nat.IsZero(x.n[:])
}

// IsOne checks whether x = 1
func (x Element[M]) IsOne() bool {
	return nat.IsOne(x.n[:])
}

// TestBitZero reports whether x is odd.
func (x Element[M]) TestBitZero() bool {
	return x.n[0]&1 == 1
}

// Equal checks whether x = y
func (x Element[M]) Equal(y Element[M]) bool {
	return x.n == y.n
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element[M]) Cmp(y Element[M]) int {
	return nat.Cmp(x.n[:], y.n[:])
}

// BigInt returns the integer value of x.
func (x Element[M]) BigInt() *big.Int {
	return nat.ToBig(x.n[:params[M]().words])
}

// SetBigInt constructs an element from an integer in [0, p).
func (x Element[M]) SetBigInt(val *big.Int) (Element[M], error) {
	var (
		r Element[M]
		p = params[M]()
	)
	//
	if val.Sign() < 0 || val.Cmp(p.pBig) >= 0 {
		return r, errors.Wrapf(field.ErrInvalidElement, "%s not in [0, p) for %s", val, p.name)
	}
	//
	nat.FromBig(r.n[:p.words], val)
	//
	return r, nil
}

// SetUint64 constructs an element from a uint64, which is always less than p.
func (x Element[M]) SetUint64(val uint64) Element[M] {
	var r Element[M]
	//
	r.n[0] = uint32(val)
	r.n[1] = uint32(val >> 32)
	//
	return r
}

// Bytes returns the big-endian encoding of x, padded to the byte length of p.
func (x Element[M]) Bytes() []byte {
	bytes := make([]byte, (params[M]().bits+7)/8)
	//
	return x.BigInt().FillBytes(bytes)
}

// SetBytes decodes a big-endian encoding, which must represent a value in
// [0, p).
func (x Element[M]) SetBytes(bytes []byte) (Element[M], error) {
	return x.SetBigInt(new(big.Int).SetBytes(bytes))
}

// Random draws a uniformly distributed element by rejection sampling: random
// strings of the bit length of p are drawn until one is below p.
func (x Element[M]) Random(rng io.Reader) (Element[M], error) {
	var (
		p     = params[M]()
		bytes = make([]byte, (p.bits+7)/8)
		mask  = byte(0xFF)
	)
	//
	if p.bits%8 != 0 {
		mask = byte(1)<<(p.bits%8) - 1
	}
	//
	for {
		if _, err := io.ReadFull(rng, bytes); err != nil {
			return x, errors.Wrapf(err, "sampling %s", p.name)
		}
		//
		bytes[0] &= mask
		//
		if r, err := x.SetBytes(bytes); err == nil {
			return r, nil
		}
	}
}

// FieldName returns the standard name of the field.
func (x Element[M]) FieldName() string {
	return params[M]().name
}

// FieldSize returns the bit length of p.
func (x Element[M]) FieldSize() uint {
	return params[M]().bits
}

// Modulus returns p.
func (x Element[M]) Modulus() *big.Int {
	return params[M]().Modulus()
}

// Describe the representation of this field.
func (x Element[M]) Describe() field.Description {
	p := params[M]()
	//
	return field.Description{
		Limbs:     uint(p.words),
		LimbBits:  32,
		Reduction: p.form.String(),
		Inversion: p.inverse.Chain().String(),
		Sqrt:      p.sqrt.String(),
	}
}

// Text returns the numerical value of x in the given base.
func (x Element[M]) Text(base int) string {
	return x.BigInt().Text(base)
}

func (x Element[M]) String() string {
	return "0x" + x.Text(16)
}
