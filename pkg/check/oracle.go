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
package check

import (
	"math/big"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/reference"
)

// Oracle evaluates field operations using unoptimised big integer arithmetic.
// A nil result indicates the operation has no defined value for the given
// operands (e.g. inverse of zero).
type Oracle interface {
	Eval(op field.Op, args ...*big.Int) *big.Int
	// IsSquare reports whether x has a square root.
	IsSquare(x *big.Int) bool
}

// NewOracle constructs the reference oracle appropriate for a given field.
func NewOracle(config field.Config) Oracle {
	if config.Kind == field.BINARY {
		return binaryOracle{reference.NewBinary(config.Modulus)}
	}
	//
	return primeOracle{reference.NewPrime(config.Modulus)}
}

type primeOracle struct {
	f reference.Prime
}

func (o primeOracle) IsSquare(x *big.Int) bool {
	return o.f.IsSquare(new(big.Int).Set(x))
}

func (o primeOracle) Eval(op field.Op, args ...*big.Int) *big.Int {
	x := args[0]
	//
	switch op {
	case field.ADD:
		return o.f.Add(x, args[1])
	case field.SUB:
		return o.f.Sub(x, args[1])
	case field.MUL:
		return o.f.Mul(x, args[1])
	case field.SQR:
		return o.f.Square(x)
	case field.NEG:
		return o.f.Neg(x)
	case field.ADDONE:
		return o.f.Add(x, big.NewInt(1))
	case field.DBL:
		return o.f.Double(x)
	case field.HALF:
		return o.f.Half(x)
	case field.INV:
		return o.f.Inverse(new(big.Int).Set(x))
	case field.SQRT:
		if r, ok := o.f.Sqrt(new(big.Int).Set(x)); ok {
			return r
		}
	}
	//
	return nil
}

type binaryOracle struct {
	f reference.Binary
}

// Every element of a binary field is a square.
func (o binaryOracle) IsSquare(x *big.Int) bool {
	return true
}

func (o binaryOracle) Eval(op field.Op, args ...*big.Int) *big.Int {
	x := args[0]
	//
	switch op {
	case field.ADD, field.SUB:
		return o.f.Add(x, args[1])
	case field.MUL:
		return o.f.Mul(x, args[1])
	case field.SQR:
		return o.f.Square(x)
	case field.NEG:
		return new(big.Int).Set(x)
	case field.ADDONE:
		return o.f.Add(x, big.NewInt(1))
	case field.INV:
		return o.f.Inverse(x)
	case field.SQRT:
		return o.f.Sqrt(x)
	case field.TRACE:
		return big.NewInt(int64(o.f.Trace(x)))
	}
	//
	return nil
}
