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

// Package secp256k1 exposes the secp256k1 base field of gnark-crypto through
// field.PrimeElement.  It provides an independent, Montgomery-form
// implementation against which the specialised engine can be compared.
package secp256k1

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
)

// NAME identifies this implementation in the field registry.
const NAME = "secp256k1/gnark"

// Element wraps fp.Element to conform
// to the field.PrimeElement interface.
type Element struct {
	fp.Element
}

func init() {
	field.Register(field.Wrap[Element]())
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fp.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fp.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// AddOne x + 1
func (x Element) AddOne() Element {
	var one fp.Element
	//
	one.SetOne()
	//
	return x.Add(Element{one})
}

// Negate -x
func (x Element) Negate() Element {
	var res fp.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Double 2x
func (x Element) Double() Element {
	var res fp.Element
	//
	res.Double(&x.Element)
	//
	return Element{res}
}

// Half x/2
func (x Element) Half() Element {
	x.Element.Halve()
	//
	return x
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fp.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Square x²
func (x Element) Square() Element {
	var res fp.Element
	//
	res.Square(&x.Element)
	//
	return Element{res}
}

// Inverse x⁻¹.  Panics if x = 0.
func (x Element) Inverse() Element {
	var res fp.Element
	//
	if x.IsZero() {
		panic(errors.Wrapf(field.ErrDivisionByZero, "inverse over %s", NAME))
	}
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// Sqrt returns a square root of x, or false if x is not a square.
func (x Element) Sqrt() (Element, bool) {
	var res fp.Element
	//
	if res.Sqrt(&x.Element) == nil {
		return Element{}, false
	}
	//
	return Element{res}, true
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// TestBitZero reports whether x is odd.
func (x Element) TestBitZero() bool {
	return x.BigInt().Bit(0) == 1
}

// Equal implementation for the Element interface
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// BigInt returns the integer value of x.
func (x Element) BigInt() *big.Int {
	return x.Element.BigInt(new(big.Int))
}

// SetBigInt constructs an element from an integer in [0, p).
func (x Element) SetBigInt(val *big.Int) (Element, error) {
	var res fp.Element
	//
	if val.Sign() < 0 || val.Cmp(fp.Modulus()) >= 0 {
		return Element{}, errors.Wrapf(field.ErrInvalidElement, "%s not in [0, p) for %s", val, NAME)
	}
	//
	res.SetBigInt(val)
	//
	return Element{res}, nil
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	var res fp.Element
	//
	res.SetUint64(val)
	//
	return Element{res}
}

// Random draws a uniformly distributed element by rejection sampling.
func (x Element) Random(rng io.Reader) (Element, error) {
	var bytes [fp.Bytes]byte
	//
	for {
		if _, err := io.ReadFull(rng, bytes[:]); err != nil {
			return Element{}, errors.Wrapf(err, "sampling %s", NAME)
		}
		//
		if r, err := x.SetBigInt(new(big.Int).SetBytes(bytes[:])); err == nil {
			return r, nil
		}
	}
}

// FieldName returns the name under which this implementation is registered.
func (x Element) FieldName() string {
	return NAME
}

// FieldSize returns the bit length of p.
func (x Element) FieldSize() uint {
	return fp.Bits
}

// Modulus returns p.
func (x Element) Modulus() *big.Int {
	return fp.Modulus()
}

// Describe the representation of this field.
func (x Element) Describe() field.Description {
	return field.Description{
		Limbs:     fp.Limbs,
		LimbBits:  64,
		Reduction: "montgomery",
		Sqrt:      "gnark-crypto",
	}
}

func (x Element) String() string {
	return "0x" + x.Element.Text(16)
}
