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

	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
)

// Agreement checks that two implementations of the same field produce
// identical results for every operation they both support.  Square roots are
// compared up to sign.
func Agreement(f, g field.Field, rng io.Reader, rounds uint) (Result, error) {
	var (
		fc     = f.Config()
		gc     = g.Config()
		result = Result{Field: fmt.Sprintf("%s~%s", fc.Name, gc.Name)}
	)
	//
	if fc.Kind != gc.Kind || fc.Modulus.Cmp(gc.Modulus) != 0 {
		return result, errors.Errorf("%s and %s are different fields", fc.Name, gc.Name)
	}
	//
	for i := uint(0); i < rounds && !result.done(); i++ {
		x, err := f.Random(rng)
		if err != nil {
			return result, err
		}
		//
		y, err := f.Random(rng)
		if err != nil {
			return result, err
		}
		//
		for _, op := range field.Ops {
			if !f.Supports(op) || !g.Supports(op) {
				continue
			}
			//
			args := []*big.Int{x, y}[:op.Arity()]
			a, errA := f.Eval(op, args...)
			b, errB := g.Eval(op, args...)
			//
			result.Checks++
			//
			switch {
			case errA != nil || errB != nil:
				if errors.Cause(errA) != errors.Cause(errB) {
					result.fail(string(op), fmt.Sprintf("errors differ: %v vs %v", errA, errB), args...)
				}
			case op == field.SQRT:
				if a.Cmp(b) != 0 && new(big.Int).Add(a, b).Cmp(fc.Modulus) != 0 {
					result.fail(string(op), fmt.Sprintf("0x%s vs 0x%s", a.Text(16), b.Text(16)), args...)
				}
			case a.Cmp(b) != 0:
				result.fail(string(op), fmt.Sprintf("0x%s vs 0x%s", a.Text(16), b.Text(16)), args...)
			}
		}
	}
	//
	return result, nil
}
