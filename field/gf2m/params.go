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
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/consensys/go-ecfield/field/chain"
	"github.com/consensys/go-ecfield/field/reference"
	"github.com/pkg/errors"
)

// MaxWords is the number of 64-bit words needed to hold an element of the
// largest supported field (m = 571).
const MaxWords = 9

type words = [MaxWords]uint64

// Params describes a binary field GF(2ᵐ) with reduction polynomial
// tᵐ + t^k₁ [+ t^k₂ + t^k₃] + 1.  Descriptors are built once during package
// initialisation and never modified afterwards.
type Params struct {
	name  string
	m     uint
	words int
	// Middle exponents of the reduction polynomial, highest first.
	ks []uint
	// Exponents folded into when reducing t^m (the ks, plus zero).
	taps []uint
	poly *big.Int
	// Itoh-Tsujii inversion
	inverse *chain.Plan
	// t^(2^(m-1)), the square root of t.
	sqrtT words
}

// newParams constructs the descriptor of a binary field.  The inversion chain
// must be a valid repunit chain ending at m-1.
func newParams(name string, m uint, c chain.Chain, ks ...uint) *Params {
	if m == 0 || (m+63)/64 > MaxWords || len(ks) == 0 || m%2 == 0 {
		panic(fmt.Sprintf("invalid degree for %s", name))
	}
	//
	for i, k := range ks {
		if k == 0 || k+64 > m || (i > 0 && k >= ks[i-1]) {
			panic(fmt.Sprintf("invalid reduction polynomial for %s", name))
		}
	}
	//
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("invalid inversion chain for %s: %s", name, err))
	} else if c.Last() != m-1 {
		panic(fmt.Sprintf("inversion chain for %s does not reach %d", name, m-1))
	}
	//
	params := &Params{
		name:  name,
		m:     m,
		words: int((m + 63) / 64),
		ks:    ks,
		taps:  append(append([]uint{}, ks...), 0),
		poly:  reference.Polynomial(m, ks...),
	}
	// 2^m - 2 is m-1 ones followed by a zero
	e := new(big.Int).Lsh(big.NewInt(1), m)
	params.inverse = chain.NewPlanWithChain(e.Sub(e, big.NewInt(2)), c)
	// sqrt(t) = t^(2^(m-1))
	params.sqrtT[0] = 2
	params.squareN(&params.sqrtT, &params.sqrtT, m-1)
	//
	return params
}

// Name returns the standard name of the field.
func (p *Params) Name() string { return p.name }

// Degree returns m.
func (p *Params) Degree() uint { return p.m }

// Words returns the number of 64-bit words in an element.
func (p *Params) Words() int { return p.words }

// Polynomial returns (a copy of) the reduction polynomial.
func (p *Params) Polynomial() *big.Int { return new(big.Int).Set(p.poly) }

// InversionChain returns the repunit chain used for inversion.
func (p *Params) InversionChain() chain.Chain { return p.inverse.Chain() }

// random polynomial of degree below m.
func (p *Params) random(rng io.Reader) (words, error) {
	var (
		r     words
		bytes [8 * MaxWords]byte
	)
	//
	if _, err := io.ReadFull(rng, bytes[:8*p.words]); err != nil {
		return r, errors.Wrapf(err, "sampling %s", p.name)
	}
	//
	for i := range p.words {
		r[i] = binary.LittleEndian.Uint64(bytes[8*i:])
	}
	//
	if top := p.m % 64; top != 0 {
		r[p.words-1] &= 1<<top - 1
	}
	//
	return r, nil
}

func (p *Params) describePolynomial() string {
	var builder strings.Builder
	//
	if len(p.ks) == 1 {
		builder.WriteString("trinomial (")
	} else {
		builder.WriteString("pentanomial (")
	}
	//
	for i, k := range p.ks {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", k))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
