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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/reference"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ROUNDS = 200

func newRng(name string) *rand.ChaCha8 {
	var seed [32]byte
	//
	copy(seed[:], name)
	//
	return rand.NewChaCha8(seed)
}

// Values which exercise carries and borrows at the extremes of the field.
func edgeValues[M Modulus]() []Element[M] {
	var (
		p      = params[M]().pBig
		values []Element[M]
	)
	//
	for _, v := range []*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(2),
		new(big.Int).Sub(p, big.NewInt(1)),
		new(big.Int).Sub(p, big.NewInt(2)),
		new(big.Int).Rsh(p, 1),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(32*(params[M]().words-1))), big.NewInt(1)),
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

func testField[M Modulus](t *testing.T) {
	var (
		p      = params[M]()
		oracle = reference.NewPrime(p.pBig)
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
	t.Run("Arithmetic", func(t *testing.T) {
		for i, x := range xs {
			y := xs[(i*7+3)%len(xs)]
			a, b := x.BigInt(), y.BigInt()
			//
			checkEq(t, oracle.Add(a, b), x.Add(y), "%s + %s", x, y)
			checkEq(t, oracle.Sub(a, b), x.Sub(y), "%s - %s", x, y)
			checkEq(t, oracle.Mul(a, b), x.Mul(y), "%s * %s", x, y)
			checkEq(t, oracle.Square(a), x.Square(), "%s²", x)
			checkEq(t, oracle.Neg(a), x.Negate(), "-%s", x)
			checkEq(t, oracle.Double(a), x.Double(), "2*%s", x)
			checkEq(t, oracle.Half(a), x.Half(), "%s/2", x)
			checkEq(t, oracle.Add(a, big.NewInt(1)), x.AddOne(), "%s+1", x)
		}
	})
	//
	t.Run("Laws", func(t *testing.T) {
		for i, x := range xs {
			y := xs[(i+1)%len(xs)]
			z := xs[(i+2)%len(xs)]
			//
			assert.Equal(t, x.Add(y), y.Add(x))
			assert.Equal(t, x.Mul(y), y.Mul(x))
			assert.Equal(t, x.Add(y).Add(z), x.Add(y.Add(z)))
			assert.Equal(t, x.Mul(y).Mul(z), x.Mul(y.Mul(z)))
			assert.Equal(t, x.Mul(y.Add(z)), x.Mul(y).Add(x.Mul(z)))
			assert.Equal(t, x.Square(), x.Mul(x))
			assert.Equal(t, x, x.Half().Double())
			assert.True(t, x.Sub(x).IsZero())
			assert.True(t, x.Add(x.Negate()).IsZero())
			assert.Equal(t, x.Square().Square().Square(), x.SquareN(3))
		}
	})
	//
	t.Run("Inverse", func(t *testing.T) {
		for _, x := range xs {
			if x.IsZero() {
				assert.Panics(t, func() { x.Inverse() })
				continue
			}
			//
			inv := x.Inverse()
			require.True(t, x.Mul(inv).IsOne(), "%s * %s", x, inv)
			checkEq(t, oracle.Inverse(x.BigInt()), inv, "1/%s", x)
		}
	})
	//
	t.Run("Sqrt", func(t *testing.T) {
		for _, x := range xs {
			r, ok := x.Sqrt()
			require.Equal(t, oracle.IsSquare(x.BigInt()), ok, "sqrt(%s)", x)
			//
			if ok {
				assert.Equal(t, x, r.Square())
			} else {
				assert.True(t, r.IsZero())
			}
			// Every square has a root
			s := x.Square()
			r, ok = s.Sqrt()
			require.True(t, ok, "sqrt(%s²)", x)
			assert.Equal(t, s, r.Square())
		}
	})
	//
	t.Run("Encoding", func(t *testing.T) {
		for _, x := range xs {
			bytes := x.Bytes()
			require.Len(t, bytes, int((p.bits+7)/8))
			//
			y, err := x.SetBytes(bytes)
			require.NoError(t, err)
			assert.Equal(t, x, y)
			//
			z, err := FromBigInt[M](x.BigInt())
			require.NoError(t, err)
			assert.Equal(t, x, z)
			// Words above the field's width are never set
			for i := p.words; i < MaxWords; i++ {
				require.Zero(t, x.n[i], spew.Sdump(x.n))
			}
		}
		//
		_, err := FromBigInt[M](p.pBig)
		assert.ErrorIs(t, err, field.ErrInvalidElement)
		_, err = FromBigInt[M](big.NewInt(-1))
		assert.ErrorIs(t, err, field.ErrInvalidElement)
	})
	//
	t.Run("Exp", func(t *testing.T) {
		for _, x := range xs[:20] {
			e := new(big.Int).SetUint64(rng.Uint64())
			expected := new(big.Int).Exp(x.BigInt(), e, p.pBig)
			checkEq(t, expected, x.Exp(e), "%s^%s", x, e)
			// Fermat
			if !x.IsZero() {
				assert.True(t, x.Exp(new(big.Int).Sub(p.pBig, big.NewInt(1))).IsOne())
			}
		}
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

func checkEq[M Modulus](t *testing.T, expected *big.Int, actual Element[M], msg string, args ...any) {
	t.Helper()
	//
	if expected.Cmp(actual.BigInt()) != 0 {
		t.Fatalf(msg+": expected %x, got %s (limbs %s)", append(args, expected, actual, spew.Sdump(actual.n))...)
	}
}

func benchField[M Modulus](b *testing.B) {
	var (
		rng  = newRng("bench")
		x, _ = Random[M](rng)
		y, _ = Random[M](rng)
	)
	//
	b.Run("Mul", func(b *testing.B) {
		for range b.N {
			x = x.Mul(y)
		}
	})
	b.Run("Square", func(b *testing.B) {
		for range b.N {
			x = x.Square()
		}
	})
	b.Run("Inverse", func(b *testing.B) {
		for range b.N {
			y = y.Inverse()
		}
	})
}
