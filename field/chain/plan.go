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
package chain

import (
	"math/big"
)

// Plan is a precomputed exponentiation schedule for a fixed exponent.  Plans are
// immutable once built and are safe to share between goroutines.
type Plan struct {
	chain Chain
	// steps[i] identifies the two entries combined to make chain[i].
	steps []step
	// runs of the exponent, most significant first.
	runs []run
}

type step struct {
	head, tail int
}

type run struct {
	// Number of zero bits preceding this run of ones.
	zeros uint
	// Number of one bits in this run (zero only for trailing zeros).
	ones uint
	// Position of the repunit for ones in the chain.
	index int
}

// NewPlan builds a plan for raising to the power e (which must be positive),
// deriving the repunit chain automatically from the runs of ones in e.
func NewPlan(e *big.Int) *Plan {
	return NewPlanWithChain(e, nil)
}

// NewPlanWithChain builds a plan for raising to the power e using a hand-tuned
// chain.  The chain is extended with any repunit lengths it is missing, and
// must otherwise be valid.
func NewPlanWithChain(e *big.Int, c Chain) *Plan {
	if e.Sign() <= 0 {
		panic("exponent must be positive")
	}
	//
	runs := splitRuns(e)
	lengths := make([]uint, 0, len(runs))
	//
	for _, r := range runs {
		if r.ones != 0 {
			lengths = append(lengths, r.ones)
		}
	}
	// Default to the binary chain for the longest run
	if c == nil {
		c = Binary(maxOf(lengths))
	}
	//
	c = c.Extend(lengths...)
	//
	if err := c.Validate(); err != nil {
		panic(err.Error())
	}
	//
	plan := &Plan{chain: c, runs: runs, steps: make([]step, len(c))}
	//
	for i := 1; i < len(c); i++ {
		head, tail, _ := c.split(i)
		plan.steps[i] = step{head, tail}
	}
	//
	for i := range plan.runs {
		if plan.runs[i].ones != 0 {
			plan.runs[i].index = c.Index(plan.runs[i].ones)
		}
	}
	//
	return plan
}

// Chain returns the repunit chain used by this plan.
func (p *Plan) Chain() Chain {
	return p.chain
}

// Cost returns the number of squarings and multiplications needed to execute
// this plan.
func (p *Plan) Cost() (squarings uint, multiplications uint) {
	for i := 1; i < len(p.chain); i++ {
		squarings += p.chain[p.steps[i].tail]
		multiplications++
	}
	//
	for _, r := range p.runs[1:] {
		squarings += r.zeros + r.ones
		//
		if r.ones != 0 {
			multiplications++
		}
	}
	//
	return squarings, multiplications
}

// Exp raises x to the exponent of the plan, using the given multiplication and
// n-fold squaring operations.
func Exp[F any](p *Plan, x F, mul func(F, F) F, sqrn func(F, uint) F) F {
	var (
		buf [MaxLength]F
		r   = buf[:len(p.chain)]
	)
	// Build the repunits
	r[0] = x
	//
	for i := 1; i < len(r); i++ {
		s := p.steps[i]
		r[i] = mul(sqrn(r[s.head], p.chain[s.tail]), r[s.tail])
	}
	// Assemble the exponent one run at a time
	acc := r[p.runs[0].index]
	//
	for _, run := range p.runs[1:] {
		acc = sqrn(acc, run.zeros+run.ones)
		//
		if run.ones != 0 {
			acc = mul(acc, r[run.index])
		}
	}
	//
	return acc
}

// splitRuns breaks e into alternating runs of ones and zeros, starting from the
// most significant bit (which is always a one).
func splitRuns(e *big.Int) []run {
	var (
		runs  []run
		zeros uint
		ones  uint
	)
	//
	for i := e.BitLen() - 1; i >= 0; i-- {
		if e.Bit(i) == 1 {
			ones++
			continue
		} else if ones != 0 {
			runs = append(runs, run{zeros: zeros, ones: ones})
			zeros, ones = 0, 0
		}
		//
		zeros++
	}
	//
	if ones != 0 || zeros != 0 {
		runs = append(runs, run{zeros: zeros, ones: ones})
	}
	//
	return runs
}

func maxOf(vals []uint) uint {
	m := uint(0)
	//
	for _, v := range vals {
		m = max(m, v)
	}
	//
	return m
}
