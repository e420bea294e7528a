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
	"strings"

	"github.com/consensys/go-ecfield/pkg/util/nat"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Strategy identifies an implementation of polynomial multiplication.  All
// strategies compute bit-identical results.
type Strategy uint8

const (
	// KARATSUBA splits operands recursively in two, bottoming out in a 64x64
	// carry-less multiply (in hardware, where available).
	KARATSUBA Strategy = iota
	// COMB is the López-Dahab left-to-right comb with 4-bit windows, which
	// needs nothing beyond integer XOR and shifts.
	COMB
)

func (s Strategy) String() string {
	if s == COMB {
		return "comb"
	}
	//
	return "karatsuba"
}

// ParseStrategy parses the name of a strategy.  The name "auto" selects the
// default for the running machine.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return DefaultStrategy(), nil
	case "karatsuba":
		return KARATSUBA, nil
	case "comb":
		return COMB, nil
	default:
		return 0, errors.Errorf("unknown multiplication strategy \"%s\"", name)
	}
}

// DefaultStrategy returns Karatsuba when a hardware carry-less multiply is
// available, and the comb otherwise.
func DefaultStrategy() Strategy {
	if hasCLMUL {
		return KARATSUBA
	}
	//
	return COMB
}

var (
	strategy = DefaultStrategy()
	// 64x64 carry-less multiply used by Karatsuba.
	clmul64 = selectCLMul()
	// Interleaving and gathering of bits for squaring and square roots.
	spread   = selectSpread()
	compress = selectCompress()
)

func init() {
	log.Debugf("gf2m: %s multiplication (pclmulqdq %t, bmi2 %t)", strategy, hasCLMUL, hasBMI2)
}

// SetStrategy overrides the multiplication strategy.  This must not be called
// concurrently with any field operation.
func SetStrategy(s Strategy) {
	log.Debugf("gf2m: switching to %s multiplication", s)
	//
	strategy = s
}

// CurrentStrategy returns the multiplication strategy in use.
func CurrentStrategy() Strategy {
	return strategy
}

// HardwareCLMul reports whether a hardware carry-less multiply is in use.
func HardwareCLMul() bool {
	return hasCLMUL
}

func selectCLMul() func(x, y uint64) (uint64, uint64) {
	if hasCLMUL {
		return clmul64Asm
	}
	//
	return clmul64Generic
}

func selectSpread() func(uint64) uint64 {
	if hasBMI2 {
		return spreadPDEP
	}
	//
	return spreadLookup
}

func selectCompress() func(uint64) uint64 {
	if hasBMI2 {
		return compressPEXT
	}
	//
	return compressBits
}

// z = x * y mod f
func (p *Params) mul(z, x, y *words) {
	var (
		n  = p.words
		zz [2 * MaxWords]uint64
	)
	//
	if strategy == COMB {
		mulComb(zz[:2*n], x[:n], y[:n])
	} else {
		mulKaratsuba(zz[:2*n], x[:n], y[:n], clmul64)
	}
	//
	p.reduce(z, &zz)
}

// mulKaratsuba sets zz = x * y over GF(2)[t], where zz has twice the length of
// x and y.  With x = x₀ + x₁T and y = y₀ + y₁T, the middle term x₀y₁ + x₁y₀ is
// (x₀+x₁)(y₀+y₁) + x₀y₀ + x₁y₁, so three half-size products suffice.
func mulKaratsuba(zz, x, y []uint64, clmul func(x, y uint64) (uint64, uint64)) {
	n := len(x)
	//
	if n == 1 {
		zz[1], zz[0] = clmul(x[0], y[0])
		return
	}
	//
	var (
		h      = n / 2
		k      = n - h
		xs, ys [MaxWords]uint64
		mid    [2 * MaxWords]uint64
	)
	//
	mulKaratsuba(zz[:2*h], x[:h], y[:h], clmul)
	mulKaratsuba(zz[2*h:2*n], x[h:], y[h:], clmul)
	//
	copy(xs[:k], x[h:])
	copy(ys[:k], y[h:])
	nat.XorTo64(xs[:h], x[:h])
	nat.XorTo64(ys[:h], y[:h])
	mulKaratsuba(mid[:2*k], xs[:k], ys[:k], clmul)
	//
	nat.XorTo64(mid[:2*h], zz[:2*h])
	nat.XorTo64(mid[:2*k], zz[2*h:2*n])
	nat.XorTo64(zz[h:h+2*k], mid[:2*k])
}

// mulComb sets zz = x * y over GF(2)[t] using the left-to-right comb method
// with a window of 4 bits: the products of y with every polynomial of degree
// below 4 are tabulated, then each nibble of x selects a table entry, working
// from the most significant nibble position down.
func mulComb(zz, x, y []uint64) {
	var (
		n     = len(x)
		table [16][MaxWords + 1]uint64
	)
	//
	for u := 1; u < 16; u++ {
		if u%2 == 0 {
			nat.ShiftUpBits64(table[u][:n+1], table[u/2][:n+1], 1, 0)
		} else {
			nat.Xor64(table[u][:n], table[u-1][:n], y)
			table[u][n] = table[u-1][n]
		}
	}
	//
	clear(zz[:2*n])
	//
	for s := 60; s >= 0; s -= 4 {
		for j := range n {
			u := (x[j] >> s) & 0xF
			nat.XorTo64(zz[j:j+n+1], table[u][:n+1])
		}
		//
		if s != 0 {
			nat.ShiftUpBits64(zz[:2*n], zz[:2*n], 4, 0)
		}
	}
}
