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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/reference"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ROUNDS = 100

func newRng(name string) *rand.ChaCha8 {
	var seed [32]byte
	//
	copy(seed[:], name)
	//
	return rand.NewChaCha8(seed)
}

// Polynomials exercising the top and bottom of the representation.
func edgeValues[M Polynomial]() []Element[M] {
	var (
		m      = params[M]().m
		all    = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), m), big.NewInt(1))
		values []Element[M]
	)
	//
	for _, v := range []*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(2),
		new(big.Int).Lsh(big.NewInt(1), m-1),
		all,
		new(big.Int).Rsh(all, 1),
	} {
		x, err := FromBigInt[M](v)
		if err != nil {
			panic(err)
		}
		//
		values = append(values, x)
	}
	//
	return values
}

func withStrategies(t *testing.T, test func(t *testing.T)) {
	saved := CurrentStrategy()
	defer SetStrategy(saved)
	//
	for _, s := range []Strategy{KARATSUBA, COMB} {
		SetStrategy(s)
		t.Run(s.String(), test)
	}
}

func testField[M Polynomial](t *testing.T) {
	var (
		p      = params[M]()
		oracle = reference.NewBinary(p.poly)
		rng    = newRng(p.name)
		xs     = edgeValues[M]()
	)
	//
	for range ROUNDS {
		x, err := Random[M](rng)
		require.NoError(t, err)
		//
		xs = append(xs, x)
	}
	//
	withStrategies(t, func(t *testing.T) {
		for i, x := range xs {
			y := xs[(i*5+1)%len(xs)]
			a, b := x.BigInt(), y.BigInt()
			//
			checkEq(t, oracle.Add(a, b), x.Add(y), "%s + %s", x, y)
			checkEq(t, oracle.Add(a, b), x.Sub(y), "%s - %s", x, y)
			checkEq(t, oracle.Mul(a, b), x.Mul(y), "%s * %s", x, y)
			checkEq(t, oracle.Square(a), x.Square(), "%s²", x)
			checkEq(t, oracle.Sqrt(a), first(x.Sqrt()), "sqrt(%s)", x)
			assert.Equal(t, oracle.Trace(a), x.Trace(), "Tr(%s)", x)
			//
			if !x.IsZero() {
				checkEq(t, oracle.Inverse(a), x.Inverse(), "1/%s", x)
			}
		}
	})
	//
	t.Run("Laws", func(t *testing.T) {
		for i, x := range xs {
			y := xs[(i+1)%len(xs)]
			z := xs[(i+2)%len(xs)]
			//
			assert.Equal(t, x.Mul(y), y.Mul(x))
			assert.Equal(t, x.Mul(y).Mul(z), x.Mul(y.Mul(z)))
			assert.Equal(t, x.Mul(y.Add(z)), x.Mul(y).Add(x.Mul(z)))
			assert.Equal(t, x.Square(), x.Mul(x))
			assert.Equal(t, x, x.Negate())
			assert.True(t, x.Add(x).IsZero())
			assert.Equal(t, x.Square().Square().Square(), x.SquareN(3))
			//
			r, ok := x.Square().Sqrt()
			require.True(t, ok)
			assert.Equal(t, x, r)
			// H(x)² + H(x) = x + Tr(x)
			h := x.HalfTrace()
			assert.Equal(t, x.Add(field.Uint64[Element[M]](uint64(x.Trace()))), h.Square().Add(h))
		}
	})
	//
	t.Run("Inverse", func(t *testing.T) {
		for _, x := range xs {
			if x.IsZero() {
				assert.Panics(t, func() { x.Inverse() })
			} else {
				assert.True(t, x.Mul(x.Inverse()).IsOne(), "%s", x)
			}
		}
	})
	//
	t.Run("SolveQuadratic", func(t *testing.T) {
		solved := 0
		//
		for _, x := range xs {
			z, ok := x.SolveQuadratic()
			require.Equal(t, x.Trace() == 0, ok, "z² + z = %s", x)
			//
			if ok {
				solved++
				assert.Equal(t, x, z.Square().Add(z))
				// and the other root
				assert.Equal(t, x, z.AddOne().Square().Add(z.AddOne()))
			}
			// z² + z always has trace zero, so is always solvable
			_, ok = x.Square().Add(x).SolveQuadratic()
			assert.True(t, ok)
		}
		// roughly half of all elements have trace zero
		assert.Greater(t, solved, len(xs)/4)
	})
	//
	t.Run("Encoding", func(t *testing.T) {
		for _, x := range xs {
			bytes := x.Bytes()
			require.Len(t, bytes, int((p.m+7)/8))
			//
			y, err := x.SetBytes(bytes)
			require.NoError(t, err)
			assert.Equal(t, x, y)
			// Bits at or above m are never set
			require.Less(t, x.BigInt().BitLen(), int(p.m)+1, spew.Sdump(x.n))
			//
			for i := p.words; i < MaxWords; i++ {
				require.Zero(t, x.n[i], spew.Sdump(x.n))
			}
		}
		//
		_, err := FromBigInt[M](new(big.Int).Lsh(big.NewInt(1), p.m))
		assert.ErrorIs(t, err, field.ErrInvalidElement)
		_, err = FromBigInt[M](big.NewInt(-1))
		assert.ErrorIs(t, err, field.ErrInvalidElement)
	})
	//
	t.Run("BatchInvert", func(t *testing.T) {
		batch := append([]Element[M]{}, xs...)
		field.BatchInvert(batch)
		//
		for i, x := range xs {
			if x.IsZero() {
				assert.True(t, batch[i].IsZero())
			} else {
				assert.Equal(t, x.Inverse(), batch[i])
			}
		}
	})
}

func first[T any](val T, _ bool) T {
	return val
}

func checkEq[M Polynomial](t *testing.T, expected *big.Int, actual Element[M], msg string, args ...any) {
	t.Helper()
	//
	if expected.Cmp(actual.BigInt()) != 0 {
		t.Fatalf(msg+": expected %x, got %s (limbs %s)", append(args, expected, actual, spew.Sdump(actual.n))...)
	}
}

func benchField[M Polynomial](b *testing.B) {
	var (
		rng  = newRng("bench")
		x, _ = Random[M](rng)
		y, _ = Random[M](rng)
	)
	//
	for _, s := range []Strategy{KARATSUBA, COMB} {
		SetStrategy(s)
		//
		b.Run("Mul/"+s.String(), func(b *testing.B) {
			for range b.N {
				x = x.Mul(y)
			}
		})
		b.Run("Inverse/"+s.String(), func(b *testing.B) {
			for range b.N {
				y = y.Inverse()
			}
		})
	}
	//
	SetStrategy(DefaultStrategy())
	//
	b.Run("Square", func(b *testing.B) {
		for range b.N {
			x = x.Square()
		}
	})
}
