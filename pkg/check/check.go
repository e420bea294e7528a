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
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MaxFailures bounds the number of failures recorded for any one field, after
// which checking of that field stops.
const MaxFailures = 16

// Failure records a property which did not hold for some operands.
type Failure struct {
	// Property which failed
	Property string
	// Operands for which the property failed
	Args []*big.Int
	// Explanation of what went wrong
	Reason string
}

func (f Failure) String() string {
	var args = make([]string, len(f.Args))
	//
	for i, arg := range f.Args {
		args[i] = "0x" + arg.Text(16)
	}
	//
	return fmt.Sprintf("%s(%s): %s", f.Property, strings.Join(args, ", "), f.Reason)
}

// Result summarises the outcome of checking a field.
type Result struct {
	// Name of the field checked
	Field string
	// Number of property instances evaluated
	Checks uint
	// Failures encountered (up to MaxFailures)
	Failures []Failure
}

// Ok reports whether every property held.
func (r *Result) Ok() bool {
	return len(r.Failures) == 0
}

func (r *Result) fail(property string, reason string, args ...*big.Int) {
	r.Failures = append(r.Failures, Failure{property, args, reason})
}

func (r *Result) done() bool {
	return len(r.Failures) >= MaxFailures
}

// Checker evaluates properties of a field against its oracle.
type Checker struct {
	field  field.Field
	oracle Oracle
	result Result
}

// NewChecker constructs a checker for a given field.
func NewChecker(f field.Field) *Checker {
	config := f.Config()
	//
	return &Checker{f, NewOracle(config), Result{Field: config.Name}}
}

// Run checks every property on the edge values of the field, followed by the
// given number of rounds of randomly chosen operands.
func (c *Checker) Run(rng io.Reader, rounds uint) (Result, error) {
	edges := edgeValues(c.field.Config())
	//
	for i, x := range edges {
		for j, y := range edges {
			// Unary operations only need checking once per edge value
			c.check(x, y, j == i)
		}
	}
	//
	for i := uint(0); i < rounds && !c.result.done(); i++ {
		x, err := c.field.Random(rng)
		if err != nil {
			return c.result, errors.Wrapf(err, "sampling %s", c.result.Field)
		}
		//
		y, err := c.field.Random(rng)
		if err != nil {
			return c.result, errors.Wrapf(err, "sampling %s", c.result.Field)
		}
		//
		c.check(x, y, true)
	}
	//
	log.Debugf("checked %d properties of %s (%d failures)", c.result.Checks, c.result.Field,
		len(c.result.Failures))
	//
	return c.result, nil
}

// Field checks a single field, as for Checker.Run.
func Field(f field.Field, rng io.Reader, rounds uint) (Result, error) {
	return NewChecker(f).Run(rng, rounds)
}

// Values of particular interest for any field: zero, one, two and the largest
// element.
func edgeValues(config field.Config) []*big.Int {
	var top *big.Int
	//
	if config.Kind == field.BINARY {
		// t^m - 1 (all coefficients set)
		top = new(big.Int).Lsh(big.NewInt(1), config.Bits)
		top.Sub(top, big.NewInt(1))
	} else {
		top = new(big.Int).Sub(config.Modulus, big.NewInt(1))
	}
	//
	return []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(2), top}
}

func (c *Checker) check(x, y *big.Int, unary bool) {
	for _, op := range field.Ops {
		if c.result.done() {
			return
		} else if !c.field.Supports(op) || (op.Arity() == 1 && !unary) {
			continue
		}
		//
		c.result.Checks++
		//
		switch op {
		case field.ADD, field.SUB, field.MUL:
			c.checkAgainstOracle(op, x, y)
		case field.INV:
			c.checkInverse(x)
		case field.SQRT:
			c.checkSqrt(x)
		case field.HTRACE:
			c.checkHalfTrace(x)
		case field.SOLVE:
			c.checkSolve(x)
		default:
			c.checkAgainstOracle(op, x)
		}
	}
}

func (c *Checker) eval(op field.Op, args ...*big.Int) *big.Int {
	r, err := c.field.Eval(op, args...)
	if err != nil {
		c.result.fail(string(op), err.Error(), args...)
		return nil
	}
	//
	return r
}

func (c *Checker) checkAgainstOracle(op field.Op, args ...*big.Int) {
	expected := c.oracle.Eval(op, args...)
	//
	if actual := c.eval(op, args...); actual != nil && actual.Cmp(expected) != 0 {
		c.result.fail(string(op), fmt.Sprintf("expected 0x%s, got 0x%s", expected.Text(16), actual.Text(16)), args...)
	}
}

func (c *Checker) checkInverse(x *big.Int) {
	expected := c.oracle.Eval(field.INV, x)
	//
	if expected == nil {
		if _, err := c.field.Eval(field.INV, x); !errors.Is(err, field.ErrDivisionByZero) {
			c.result.fail(string(field.INV), fmt.Sprintf("expected division by zero, got %v", err), x)
		}
		//
		return
	}
	//
	c.checkAgainstOracle(field.INV, x)
	// x * x⁻¹ = 1
	if inv := c.eval(field.INV, x); inv != nil {
		if one := c.eval(field.MUL, x, inv); one != nil && one.Cmp(big.NewInt(1)) != 0 {
			c.result.fail("mul-inverse", "x * x⁻¹ ≠ 1", x)
		}
	}
}

func (c *Checker) checkSqrt(x *big.Int) {
	r, err := c.field.Eval(field.SQRT, x)
	//
	switch {
	case !c.oracle.IsSquare(x):
		if !errors.Is(err, field.ErrNoSquareRoot) {
			c.result.fail(string(field.SQRT), fmt.Sprintf("expected no square root, got %v", err), x)
		}
	case err != nil:
		c.result.fail(string(field.SQRT), err.Error(), x)
	default:
		// Either root is acceptable
		if sq := c.oracle.Eval(field.SQR, r); sq.Cmp(x) != 0 {
			c.result.fail(string(field.SQRT), fmt.Sprintf("0x%s is not a square root", r.Text(16)), x)
		}
	}
}

// H(x)² + H(x) = x + Tr(x)
func (c *Checker) checkHalfTrace(x *big.Int) {
	h := c.eval(field.HTRACE, x)
	tr := c.oracle.Eval(field.TRACE, x)
	//
	if h == nil || tr == nil {
		return
	}
	//
	lhs := c.oracle.Eval(field.ADD, c.oracle.Eval(field.SQR, h), h)
	rhs := c.oracle.Eval(field.ADD, x, tr)
	//
	if lhs.Cmp(rhs) != 0 {
		c.result.fail(string(field.HTRACE), "H(x)² + H(x) ≠ x + Tr(x)", x)
	}
}

// z² + z = x, which is solvable exactly when Tr(x) = 0.
func (c *Checker) checkSolve(x *big.Int) {
	z, err := c.field.Eval(field.SOLVE, x)
	//
	switch tr := c.oracle.Eval(field.TRACE, x); {
	case tr == nil:
		return
	case tr.Sign() != 0:
		if !errors.Is(err, field.ErrNoSolution) {
			c.result.fail(string(field.SOLVE), fmt.Sprintf("expected no solution, got %v", err), x)
		}
	case err != nil:
		c.result.fail(string(field.SOLVE), err.Error(), x)
	default:
		if lhs := c.oracle.Eval(field.ADD, c.oracle.Eval(field.SQR, z), z); lhs.Cmp(x) != 0 {
			c.result.fail(string(field.SOLVE), fmt.Sprintf("0x%s is not a solution", z.Text(16)), x)
		}
	}
}
