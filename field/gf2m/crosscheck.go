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

	"github.com/consensys/go-ecfield/field/reference"
	"github.com/consensys/go-ecfield/pkg/util/nat"
	"github.com/pkg/errors"
)

type mulImpl struct {
	name string
	fn   func(zz, x, y []uint64)
}

type bitsImpl struct {
	name string
	fn   func(uint64) uint64
}

func mulImpls() []mulImpl {
	impls := []mulImpl{
		{"karatsuba", func(zz, x, y []uint64) { mulKaratsuba(zz, x, y, clmul64Generic) }},
		{"comb", mulComb},
	}
	//
	if hasCLMUL {
		impls = append(impls, mulImpl{"karatsuba/pclmulqdq", func(zz, x, y []uint64) {
			mulKaratsuba(zz, x, y, clmul64Asm)
		}})
	}
	//
	return impls
}

func spreadImpls() []bitsImpl {
	impls := []bitsImpl{{"bits", spreadBits}, {"table", spreadLookup}}
	//
	if hasBMI2 {
		impls = append(impls, bitsImpl{"pdep", spreadPDEP})
	}
	//
	return impls
}

func compressImpls() []bitsImpl {
	impls := []bitsImpl{{"bits", compressBits}}
	//
	if hasBMI2 {
		impls = append(impls, bitsImpl{"pext", compressPEXT})
	}
	//
	return impls
}

// CrossCheck compares every available implementation of multiplication,
// squaring and bit gathering against each other and against reference
// polynomial arithmetic, using random operands for every supported degree.
// The first disagreement is returned as an error.
func CrossCheck(rng io.Reader, rounds uint) error {
	for _, p := range Descriptors() {
		oracle := reference.NewBinary(p.poly)
		//
		for range rounds {
			x, err := p.random(rng)
			if err != nil {
				return err
			}
			//
			y, err := p.random(rng)
			if err != nil {
				return err
			}
			//
			if err := p.crossCheck(oracle, &x, &y); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

func (p *Params) crossCheck(oracle reference.Binary, x, y *words) error {
	var (
		n        = p.words
		xb, yb   = nat.ToBig64(x[:n]), nat.ToBig64(y[:n])
		product  = oracle.Mul(xb, yb)
		square   = oracle.Square(xb)
		z, check words
	)
	//
	for _, impl := range mulImpls() {
		var zz [2 * MaxWords]uint64
		//
		impl.fn(zz[:2*n], x[:n], y[:n])
		p.reduce(&z, &zz)
		//
		if err := agree(p, impl.name+" multiplication", product, &z, xb, yb); err != nil {
			return err
		}
	}
	//
	for _, impl := range spreadImpls() {
		var zz [2 * MaxWords]uint64
		//
		for i := range n {
			zz[2*i] = impl.fn(x[i])
			zz[2*i+1] = impl.fn(x[i] >> 32)
		}
		//
		p.reduce(&z, &zz)
		//
		if err := agree(p, impl.name+" squaring", square, &z, xb, xb); err != nil {
			return err
		}
	}
	//
	for i := range n {
		expected := compressBits(x[i])
		//
		for _, impl := range compressImpls() {
			if actual := impl.fn(x[i]); actual != expected {
				return errors.Errorf("%s: %s gathering of %x gives %x, expected %x",
					p.name, impl.name, x[i], actual, expected)
			}
		}
	}
	// Square roots invert squaring
	p.sqrt(&z, x)
	p.square(&check, &z)
	//
	if check != *x {
		return errors.Errorf("%s: sqrt(%x) squared gives %x", p.name, xb, nat.ToBig64(check[:n]))
	}
	//
	return nil
}

func agree(p *Params, what string, expected *big.Int, actual *words, x, y *big.Int) error {
	if expected.Cmp(nat.ToBig64(actual[:p.words])) != 0 {
		return errors.Errorf("%s: %s of %x and %x gives %x, expected %x",
			p.name, what, x, y, nat.ToBig64(actual[:p.words]), expected)
	}
	//
	return nil
}
