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
	"io"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// Op identifies an operation which can be evaluated dynamically.
type Op string

// Operations understood by Field.Eval.
const (
	ADD    Op = "add"
	SUB    Op = "sub"
	MUL    Op = "mul"
	SQR    Op = "sqr"
	NEG    Op = "neg"
	INV    Op = "inv"
	SQRT   Op = "sqrt"
	ADDONE Op = "addone"
	DBL    Op = "dbl"
	HALF   Op = "half"
	TRACE  Op = "trace"
	HTRACE Op = "htrace"
	SOLVE  Op = "solve"
)

// Ops lists every supported operation.
var Ops = []Op{ADD, SUB, MUL, SQR, NEG, INV, SQRT, ADDONE, DBL, HALF, TRACE, HTRACE, SOLVE}

// Arity returns the number of operands taken by the operation.
func (op Op) Arity() int {
	switch op {
	case ADD, SUB, MUL:
		return 2
	default:
		return 1
	}
}

// Field is a type-erased view of a field, which accepts and returns elements as
// integers.  This is used by tooling which selects fields by name at runtime.
type Field interface {
	// Config describes the field.
	Config() Config
	// Supports reports whether the given operation is available for this field.
	Supports(op Op) bool
	// Eval applies the given operation to one or two elements.
	Eval(op Op, args ...*big.Int) (*big.Int, error)
	// Random draws a uniformly distributed element.
	Random(rng io.Reader) (*big.Int, error)
	// Time measures n repetitions of the given operation on randomly chosen
	// nonzero operands.
	Time(op Op, n uint, rng io.Reader) (time.Duration, error)
}

// Wrap constructs the dynamic view of a field from its element type.
func Wrap[F Element[F]]() Field {
	var (
		element F
		kind    = PRIME
	)
	//
	if _, ok := any(element).(BinaryElement[F]); ok {
		kind = BINARY
	}
	//
	return &wrapper[F]{Config{Name: element.FieldName(), Kind: kind, Bits: element.FieldSize(), Modulus: element.Modulus()}}
}

type wrapper[F Element[F]] struct {
	config Config
}

func (w *wrapper[F]) Config() Config {
	var element F
	// Refreshed on each call, since some details can be changed at runtime.
	if d, ok := any(element).(Describer); ok {
		config := w.config
		config.Description = d.Describe()
		//
		return config
	}
	//
	return w.config
}

func (w *wrapper[F]) Supports(op Op) bool {
	var element F
	//
	switch op {
	case ADD, SUB, MUL, SQR, NEG, INV, SQRT, ADDONE:
		return true
	case DBL, HALF:
		_, ok := any(element).(PrimeElement[F])
		return ok
	case TRACE, HTRACE, SOLVE:
		_, ok := any(element).(BinaryElement[F])
		return ok
	default:
		return false
	}
}

func (w *wrapper[F]) Eval(op Op, args ...*big.Int) (*big.Int, error) {
	if !w.Supports(op) {
		return nil, errors.Wrapf(ErrUnsupportedOp, "%s over %s", op, w.config.Name)
	} else if len(args) != op.Arity() {
		return nil, errors.Errorf("%s expects %d operand(s), found %d", op, op.Arity(), len(args))
	}
	//
	xs := make([]F, len(args))
	//
	for i, arg := range args {
		x, err := FromBigInt[F](arg)
		if err != nil {
			return nil, err
		}
		//
		xs[i] = x
	}
	//
	r, err := w.apply(op, xs)
	if err != nil {
		return nil, err
	}
	//
	return r.BigInt(), nil
}

func (w *wrapper[F]) apply(op Op, xs []F) (F, error) {
	x := xs[0]
	//
	switch op {
	case ADD:
		return x.Add(xs[1]), nil
	case SUB:
		return x.Sub(xs[1]), nil
	case MUL:
		return x.Mul(xs[1]), nil
	case SQR:
		return x.Square(), nil
	case NEG:
		return x.Negate(), nil
	case ADDONE:
		return x.AddOne(), nil
	case INV:
		if x.IsZero() {
			return x, errors.Wrapf(ErrDivisionByZero, "inverse over %s", w.config.Name)
		}
		//
		return x.Inverse(), nil
	case SQRT:
		if r, ok := x.Sqrt(); ok {
			return r, nil
		}
		//
		return x, errors.Wrapf(ErrNoSquareRoot, "%s over %s", x, w.config.Name)
	case DBL:
		return any(x).(PrimeElement[F]).Double(), nil
	case HALF:
		return any(x).(PrimeElement[F]).Half(), nil
	case TRACE:
		return x.SetUint64(uint64(any(x).(BinaryElement[F]).Trace())), nil
	case HTRACE:
		return any(x).(BinaryElement[F]).HalfTrace(), nil
	case SOLVE:
		if r, ok := any(x).(BinaryElement[F]).SolveQuadratic(); ok {
			return r, nil
		}
		//
		return x, errors.Wrapf(ErrNoSolution, "z² + z = %s over %s", x, w.config.Name)
	}
	//
	return x, errors.Wrapf(ErrUnsupportedOp, "%s", op)
}

func (w *wrapper[F]) Random(rng io.Reader) (*big.Int, error) {
	x, err := Random[F](rng)
	if err != nil {
		return nil, err
	}
	//
	return x.BigInt(), nil
}

func (w *wrapper[F]) Time(op Op, n uint, rng io.Reader) (time.Duration, error) {
	if !w.Supports(op) {
		return 0, errors.Wrapf(ErrUnsupportedOp, "%s over %s", op, w.config.Name)
	}
	//
	xs := make([]F, op.Arity())
	//
	for i := range xs {
		for xs[i].IsZero() {
			x, err := Random[F](rng)
			if err != nil {
				return 0, err
			}
			//
			xs[i] = x
		}
	}
	// Square roots and quadratic solutions need operands which have them.
	switch op {
	case SQRT:
		xs[0] = xs[0].Square()
	case SOLVE:
		xs[0] = xs[0].Square().Add(xs[0])
	}
	//
	start := time.Now()
	//
	for range n {
		r, err := w.apply(op, xs)
		if err != nil {
			return 0, err
		}
		// Chain results where the operand stays valid.
		if op.Arity() == 1 && op != SQRT && op != SOLVE && op != TRACE && !r.IsZero() {
			xs[0] = r
		}
	}
	//
	return time.Since(start), nil
}
