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
	"fmt"
	"math/big"

	"github.com/consensys/go-ecfield/field/chain"
	"github.com/consensys/go-ecfield/pkg/util/nat"
)

// MaxWords is the number of 32-bit words needed to hold an element of the
// largest supported field (P-521).
const MaxWords = 17

// Form identifies the shape of a modulus, which determines how products are
// reduced.
type Form uint8

const (
	// PSEUDO_MERSENNE moduli have the form 2^(32n) - c for a small c.
	PSEUDO_MERSENNE Form = iota
	// SOLINAS moduli (generalised Mersenne numbers) have 2^(32n) congruent to a
	// short signed sum of word-aligned powers of two.
	SOLINAS
	// MERSENNE is the modulus 2^521 - 1.
	MERSENNE
)

func (f Form) String() string {
	switch f {
	case PSEUDO_MERSENNE:
		return "pseudo-mersenne"
	case SOLINAS:
		return "solinas"
	default:
		return "mersenne"
	}
}

// Term is one summand ±2^(32*Offset) in the expansion of 2^(32n) mod p for a
// Solinas modulus.
type Term struct {
	Offset int
	Sign   int64
}

type sqrtMethod uint8

const (
	sqrt3Mod4 sqrtMethod = iota
	sqrtAtkin
	sqrtCipolla
)

func (m sqrtMethod) String() string {
	switch m {
	case sqrt3Mod4:
		return "p=3 mod 4"
	case sqrtAtkin:
		return "atkin"
	default:
		return "cipolla"
	}
}

// Params describes a prime field, and is shared by all of its elements.  Each
// descriptor is constructed once during package initialisation and never
// modified afterwards.
type Params struct {
	name  string
	bits  uint
	words int
	// Modulus as little-endian words
	p    [MaxWords]uint32
	pBig *big.Int
	// Reduction strategy and its constants
	form  Form
	c     uint64
	terms []Term
	// Exponentiation plans
	inverse   *chain.Plan
	sqrt      sqrtMethod
	sqrtPlan  *chain.Plan
	eulerPlan *chain.Plan
	// (p+1)/2, used by Cipolla's method.
	cipollaExp *big.Int
}

type reduction struct {
	form  Form
	c     uint64
	terms []Term
}

func pseudoMersenne(c uint64) reduction {
	return reduction{form: PSEUDO_MERSENNE, c: c}
}

func solinas(terms ...Term) reduction {
	return reduction{form: SOLINAS, terms: terms}
}

func mersenne521() reduction {
	return reduction{form: MERSENNE}
}

// newParams constructs the descriptor of a prime field from its hexadecimal
// modulus, checking the reduction constants against the modulus.  Inversion
// uses the given repunit chain, or one derived from p-2 when this is nil.  An
// inconsistent descriptor is a programming error, and causes a panic.
func newParams(name string, modulus string, r reduction, inversion chain.Chain) *Params {
	p, ok := new(big.Int).SetString(modulus, 16)
	if !ok || p.Sign() <= 0 || p.BitLen() > 32*MaxWords {
		panic(fmt.Sprintf("invalid modulus for %s", name))
	}
	//
	params := &Params{
		name:  name,
		bits:  uint(p.BitLen()),
		words: (p.BitLen() + 31) / 32,
		pBig:  p,
		form:  r.form,
		c:     r.c,
		terms: r.terms,
	}
	//
	nat.FromBig(params.p[:], p)
	params.check()
	// Fermat inversion
	params.inverse = chain.NewPlanWithChain(new(big.Int).Sub(p, big.NewInt(2)), inversion)
	// Square roots
	switch {
	case p.Bit(0) == 1 && p.Bit(1) == 1:
		params.sqrt = sqrt3Mod4
		params.sqrtPlan = chain.NewPlan(shiftAdd(p, 1, 2))
	case p.Bit(0) == 1 && p.Bit(1) == 0 && p.Bit(2) == 1:
		params.sqrt = sqrtAtkin
		params.sqrtPlan = chain.NewPlan(shiftAdd(p, -5, 3))
	default:
		params.sqrt = sqrtCipolla
		params.eulerPlan = chain.NewPlan(shiftAdd(p, -1, 1))
		params.cipollaExp = shiftAdd(p, 1, 1)
	}
	//
	return params
}

// check that the reduction constants agree with the modulus.
func (p *Params) check() {
	var (
		r    = new(big.Int).Lsh(big.NewInt(1), uint(32*p.words))
		diff = new(big.Int).Sub(r, p.pBig)
	)
	//
	switch p.form {
	case PSEUDO_MERSENNE:
		// Tolerate moduli which do not fill their top word (Curve25519) by
		// folding through 2^(32n) mod p.
		if new(big.Int).Mod(r, p.pBig).Cmp(new(big.Int).SetUint64(p.c)) != 0 {
			panic(fmt.Sprintf("invalid pseudo-mersenne constant for %s", p.name))
		}
	case SOLINAS:
		sum := new(big.Int)
		//
		for _, t := range p.terms {
			if t.Offset < 0 || t.Offset >= p.words || (t.Sign != 1 && t.Sign != -1) {
				panic(fmt.Sprintf("invalid solinas term for %s", p.name))
			}
			//
			term := new(big.Int).Lsh(big.NewInt(t.Sign), uint(32*t.Offset))
			sum.Add(sum, term)
		}
		//
		if sum.Cmp(diff) != 0 {
			panic(fmt.Sprintf("invalid solinas terms for %s", p.name))
		}
	case MERSENNE:
		m := new(big.Int).Lsh(big.NewInt(1), 521)
		if m.Sub(m, big.NewInt(1)).Cmp(p.pBig) != 0 {
			panic(fmt.Sprintf("%s is not 2^521 - 1", p.name))
		}
	}
}

// Name returns the standard name of the field.
func (p *Params) Name() string { return p.name }

// Bits returns the bit length of the modulus.
func (p *Params) Bits() uint { return p.bits }

// Words returns the number of 32-bit words in an element.
func (p *Params) Words() int { return p.words }

// Form returns the reduction strategy for this modulus.
func (p *Params) Form() Form { return p.form }

// Modulus returns (a copy of) the modulus.
func (p *Params) Modulus() *big.Int { return new(big.Int).Set(p.pBig) }

// InversionChain returns the repunit chain used for inversion.
func (p *Params) InversionChain() chain.Chain { return p.inverse.Chain() }

// (p + a) >> s
func shiftAdd(p *big.Int, a int64, s uint) *big.Int {
	e := new(big.Int).Add(p, big.NewInt(a))
	//
	return e.Rsh(e, s)
}
