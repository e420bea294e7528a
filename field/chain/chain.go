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

// Package chain plans exponentiations as products of "repunits".  A repunit of
// length k is x^(2^k - 1), i.e. x raised to an exponent whose binary expansion
// is k consecutive ones.  Repunits combine cheaply, since
//
//	R(a+b) = R(a)^(2^b) * R(b)
//
// costs b squarings and one multiplication.  An exponent is split into its runs
// of ones and zeros, and each run of ones is taken from a precomputed addition
// chain of repunit lengths.  This covers both the Fermat inversion x^(p-2) of
// prime fields and the Itoh-Tsujii inversion x^(2^m-2) of binary fields.
package chain

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// MaxLength bounds the number of entries in any chain.
const MaxLength = 64

// Chain is an addition chain of repunit lengths.  The first entry is always 1,
// and every other entry is the sum of two (not necessarily distinct) earlier
// entries.
type Chain []uint

// Binary constructs the chain for length l obtained by the binary method: scan
// the bits of l from the top, doubling at each step and adding one whenever the
// bit is set.
func Binary(l uint) Chain {
	if l == 0 {
		panic("empty repunit")
	}
	//
	c := Chain{1}
	//
	for i := bits.Len(l) - 2; i >= 0; i-- {
		k := c[len(c)-1]
		c = append(c, 2*k)
		//
		if (l>>i)&1 == 1 {
			c = append(c, 2*k+1)
		}
	}
	//
	return c
}

// Extend returns a chain which contains every given length, reusing (and
// appending to) the entries of c.  Each missing length is reached greedily from
// the largest entry below it.
func (c Chain) Extend(lengths ...uint) Chain {
	c = slices.Clone(c)
	//
	for _, l := range lengths {
		if l == 0 || c.Index(l) >= 0 {
			continue
		}
		//
		cur := c.floor(l)
		for cur < l {
			d := c.floor(l - cur)
			cur += d
			c = append(c, cur)
		}
	}
	//
	return c
}

// Index returns the position of length l in the chain, or -1 if it does not
// appear.
func (c Chain) Index(l uint) int {
	return slices.Index(c, l)
}

// Last returns the final (typically largest) entry of the chain.
func (c Chain) Last() uint {
	return c[len(c)-1]
}

// Validate checks that the chain is well formed.
func (c Chain) Validate() error {
	if len(c) == 0 || c[0] != 1 {
		return errors.New("chain must start at 1")
	} else if len(c) > MaxLength {
		return errors.Errorf("chain too long (%d entries)", len(c))
	}
	//
	for i := 1; i < len(c); i++ {
		if _, _, ok := c.split(i); !ok {
			return errors.Errorf("entry %d (%d) is not a sum of earlier entries", i, c[i])
		}
	}
	//
	return nil
}

func (c Chain) String() string {
	var builder strings.Builder
	//
	for i, l := range c {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", l))
	}
	//
	return builder.String()
}

// floor returns the largest entry not exceeding l.
func (c Chain) floor(l uint) uint {
	best := uint(0)
	//
	for _, k := range c {
		if k <= l && k > best {
			best = k
		}
	}
	//
	return best
}

// split finds a, b < i with c[a] + c[b] == c[i], preferring a as close to i as
// possible.
func (c Chain) split(i int) (int, int, bool) {
	for a := i - 1; a >= 0; a-- {
		for b := a; b >= 0; b-- {
			if c[a]+c[b] == c[i] {
				return a, b, true
			}
		}
	}
	//
	return 0, 0, false
}
