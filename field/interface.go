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
package field

import (
	"fmt"
	"io"
	"math/big"
)

// Element captures the operations common to every finite field supported by
// this module.  Elements are values: each operation returns a new element
// rather than updating its receiver.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// AddOne x+1
	AddOne() Operand
	// Negate -x
	Negate() Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Square x²
	Square() Operand
	// Inverse x⁻¹.  Panics if x = 0.
	Inverse() Operand
	// Sqrt returns some y with y² = x, or false if x is not a square.
	Sqrt() (Operand, bool)
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// TestBitZero reports whether the least significant bit is set.
	TestBitZero() bool
	// Equal reports whether x = y.
	Equal(y Operand) bool
	// BigInt returns the canonical integer representation of x.
	BigInt() *big.Int
	// SetBigInt constructs an element from its integer representation, which
	// must be in range for the field.
	SetBigInt(val *big.Int) (Operand, error)
	// SetUint64 constructs an element from a (small) unsigned integer.
	SetUint64(val uint64) Operand
	// Random draws a uniformly distributed element from the given source.
	Random(rng io.Reader) (Operand, error)
	// FieldName returns the standard name of the field, such as "secp256r1".
	FieldName() string
	// FieldSize returns the bit length of the modulus (or the degree m for a
	// binary field).
	FieldSize() uint
	// Return the modulus for the field in question.  For binary fields this is
	// the reduction polynomial, with bit i holding the coefficient of tⁱ.
	Modulus() *big.Int
}

// PrimeElement is an element of a prime field.
type PrimeElement[Operand any] interface {
	Element[Operand]
	Double() Operand // Double 2x
	Half() Operand   // Half x/2
}

// BinaryElement is an element of a binary extension field GF(2ᵐ).
type BinaryElement[Operand any] interface {
	Element[Operand]
	// SquareN computes x^(2ⁿ).
	SquareN(n uint) Operand
	// Trace returns Tr(x) = x + x² + x⁴ + ... + x^(2ᵐ⁻¹), which is either 0 or 1.
	Trace() uint
	// HalfTrace returns H(x) = Σ x^(2^(2i)) for i in 0..(m-1)/2.
	HalfTrace() Operand
	// SolveQuadratic returns some z with z² + z = x, or false when none exists.
	SolveQuadratic() (Operand, bool)
}
