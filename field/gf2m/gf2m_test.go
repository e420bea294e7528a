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
	"math/big"
	"testing"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ field.BinaryElement[Element[SecT163]] = Element[SecT163]{}
	_ field.BinaryElement[Element[SecT571]] = Element[SecT571]{}
	_ field.Describer                       = Element[SecT283]{}
)

type t163 = Element[SecT163]

func Test_SecT163_MulByOne(t *testing.T) {
	rng := newRng("one")
	//
	withStrategies(t, func(t *testing.T) {
		for range 50 {
			x, err := Random[SecT163](rng)
			require.NoError(t, err)
			assert.Equal(t, x, One[SecT163]().Mul(x))
			assert.Equal(t, x, x.Mul(One[SecT163]()))
		}
	})
}

func Test_SecT163_Square(t *testing.T) {
	f := reference.Polynomial(163, 7, 6, 3)
	//
	for _, v := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Lsh(big.NewInt(1), 162),
	} {
		x, err := FromBigInt[SecT163](v)
		require.NoError(t, err)
		//
		expected := reference.PolyMod(reference.ClMul(v, v), f)
		assert.Equal(t, 0, expected.Cmp(x.Square().BigInt()), "(%x)²", v)
	}
	// t^162 squared is t^324, which needs two folds
	x, _ := FromBigInt[SecT163](new(big.Int).Lsh(big.NewInt(1), 162))
	assert.Equal(t, "0x20000000000000000000000000000000000001422", x.Square().String())
}

func Test_SecT163_Polynomial(t *testing.T) {
	// t^163 = t^7 + t^6 + t^3 + 1
	x, _ := FromBigInt[SecT163](new(big.Int).Lsh(big.NewInt(1), 162))
	t1 := field.Uint64[t163](2)
	//
	assert.Equal(t, field.Uint64[t163](0b11001001), x.Mul(t1))
	assert.Equal(t, reference.Polynomial(163, 7, 6, 3), x.Modulus())
	assert.Equal(t, uint(163), x.FieldSize())
}

func Test_Sqrt_Of_T(t *testing.T) {
	for _, p := range Descriptors() {
		var z words
		// (√t)² = t
		p.square(&z, &p.sqrtT)
		assert.Equal(t, uint64(2), z[0], p.name)
		assert.Equal(t, 1, int(popcount(z[:p.words])), p.name)
	}
}

func popcount(x []uint64) uint {
	var n uint
	//
	for _, w := range x {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	//
	return n
}

func Test_InversionChains(t *testing.T) {
	for _, p := range Descriptors() {
		c := p.InversionChain()
		require.NoError(t, c.Validate(), p.name)
		assert.Equal(t, p.m-1, c.Last(), p.name)
		// m-1 squarings in total
		sqr, _ := p.inverse.Cost()
		assert.Equal(t, p.m-1, sqr, p.name)
	}
}

func Test_InverseOfZero(t *testing.T) {
	err := panicError(func() { field.Zero[Element[SecT163]]().Inverse() })
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
	assert.ErrorContains(t, err, "sect163")
	// Batch inversion leaves zeros alone
	xs := []Element[SecT163]{field.Zero[Element[SecT163]](), field.One[Element[SecT163]]()}
	field.BatchInvert(xs)
	assert.True(t, xs[0].IsZero())
	assert.True(t, xs[1].IsOne())
}

// Run fn, returning the error it panics with (if any).
func panicError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	//
	fn()
	//
	return nil
}

func Test_InvalidDescriptors(t *testing.T) {
	// chain does not reach m-1
	assert.Panics(t, func() { newParams("bad", 163, []uint{1, 2, 4}, 7, 6, 3) })
	// invalid chain
	assert.Panics(t, func() { newParams("bad", 163, []uint{1, 3, 162}, 7, 6, 3) })
	// even degree
	assert.Panics(t, func() { newParams("bad", 162, []uint{1, 2, 4, 5, 10, 20, 40, 80, 160, 161}, 7) })
	// middle term too close to m
	assert.Panics(t, func() { newParams("bad", 113, []uint{1, 2, 3, 6, 7, 14, 28, 56, 112}, 100) })
}

func Test_CrossCheck(t *testing.T) {
	require.NoError(t, CrossCheck(newRng("crosscheck"), 50))
}

func Test_CLMul(t *testing.T) {
	rng := newRng("clmul")
	//
	for range 1000 {
		x, y := rng.Uint64(), rng.Uint64()
		hi, lo := clmul64Generic(x, y)
		expected := reference.ClMul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		actual := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
		actual.Or(actual, new(big.Int).SetUint64(lo))
		require.Equal(t, 0, expected.Cmp(actual), "%x * %x", x, y)
		//
		if hasCLMUL {
			hhi, hlo := clmul64Asm(x, y)
			require.Equal(t, hi, hhi)
			require.Equal(t, lo, hlo)
		}
	}
}

func Test_Spread(t *testing.T) {
	rng := newRng("spread")
	//
	for range 1000 {
		x := rng.Uint64()
		s := spreadBits(x)
		//
		assert.Equal(t, s, spreadLookup(x))
		assert.Equal(t, x&0xFFFFFFFF, compressBits(s))
		assert.Equal(t, uint64(0), s&0xAAAAAAAAAAAAAAAA)
		//
		if hasBMI2 {
			assert.Equal(t, s, spreadPDEP(x))
			assert.Equal(t, compressBits(x), compressPEXT(x))
		}
	}
}

func Test_Strategies(t *testing.T) {
	s, err := ParseStrategy("Comb")
	require.NoError(t, err)
	assert.Equal(t, COMB, s)
	//
	s, err = ParseStrategy("auto")
	require.NoError(t, err)
	assert.Equal(t, DefaultStrategy(), s)
	//
	_, err = ParseStrategy("toom")
	assert.Error(t, err)
	//
	if HardwareCLMul() {
		assert.Equal(t, KARATSUBA, DefaultStrategy())
	} else {
		assert.Equal(t, COMB, DefaultStrategy())
	}
}

func Test_Registry(t *testing.T) {
	for _, name := range []string{"sect163", "sect163k1", "B163", "sect571r1", "sect239k1"} {
		f, ok := field.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, field.BINARY, f.Config().Kind)
	}
	//
	f, _ := field.Lookup("sect163k1")
	assert.Equal(t, "pentanomial (7,6,3)", f.Config().Description.Reduction)
	// Eval agrees with the typed API
	x, y := field.Uint64[t163](0xDEADBEEF), field.Uint64[t163](0xCAFEBABE)
	r, err := f.Eval(field.MUL, x.BigInt(), y.BigInt())
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(x.Mul(y).BigInt()))
	//
	r, err = f.Eval(field.TRACE, x.BigInt())
	require.NoError(t, err)
	assert.Equal(t, uint64(x.Trace()), r.Uint64())
	//
	_, err = f.Eval(field.HALF, x.BigInt())
	assert.ErrorIs(t, err, field.ErrUnsupportedOp)
	// 1 has trace 1 for odd m, so z² + z = 1 has no solution
	_, err = f.Eval(field.SOLVE, big.NewInt(1))
	assert.ErrorIs(t, err, field.ErrNoSolution)
}
