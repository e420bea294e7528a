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
package nat

import (
	"go/parser"
	"go/token"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var widths = []int{1, 2, 5, 6, 7, 8, 12, 17}

func randomNat(rng *rand.Rand, n int) []uint32 {
	x := make([]uint32, n)
	//
	for i := range x {
		switch rng.IntN(8) {
		case 0:
			x[i] = 0
		case 1:
			x[i] = 0xFFFFFFFF
		default:
			x[i] = rng.Uint32()
		}
	}
	//
	return x
}

func pow2(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

func TestAdd(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	//
	for _, n := range widths {
		for range 500 {
			x, y := randomNat(rng, n), randomNat(rng, n)
			z := make([]uint32, n)
			c := Add(z, x, y)
			//
			expected := new(big.Int).Add(ToBig(x), ToBig(y))
			actual := new(big.Int).Add(ToBig(z), new(big.Int).Lsh(big.NewInt(int64(c)), uint(32*n)))
			require.Equal(t, 0, expected.Cmp(actual), "%x + %x", x, y)
			// In-place variant agrees
			zz := append([]uint32(nil), x...)
			require.Equal(t, c, AddTo(zz, y))
			require.Equal(t, z, zz)
		}
	}
}

func TestAddBothTo(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	//
	for _, n := range widths {
		for range 200 {
			x, y, z := randomNat(rng, n), randomNat(rng, n), randomNat(rng, n)
			expected := new(big.Int).Add(ToBig(x), ToBig(y))
			expected.Add(expected, ToBig(z))
			//
			c := AddBothTo(z, x, y)
			actual := new(big.Int).Add(ToBig(z), new(big.Int).Lsh(big.NewInt(int64(c)), uint(32*n)))
			require.Equal(t, 0, expected.Cmp(actual))
			require.LessOrEqual(t, c, uint32(2))
		}
	}
}

func TestSub(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	//
	for _, n := range widths {
		for range 500 {
			x, y := randomNat(rng, n), randomNat(rng, n)
			z := make([]uint32, n)
			b := Sub(z, x, y)
			//
			expected := new(big.Int).Sub(ToBig(x), ToBig(y))
			require.Equal(t, expected.Sign() < 0, b == 1)
			//
			if b == 1 {
				expected.Add(expected, pow2(32*n))
			}
			//
			require.Equal(t, 0, expected.Cmp(ToBig(z)))
			//
			zz := append([]uint32(nil), x...)
			require.Equal(t, b, SubFrom(zz, y))
			require.Equal(t, z, zz)
		}
	}
}

func TestIncDec(t *testing.T) {
	for _, n := range widths {
		z := make([]uint32, n)
		// 0 - 1 wraps to all ones
		require.Equal(t, uint32(1), Dec(z))
		//
		for _, w := range z {
			require.Equal(t, uint32(0xFFFFFFFF), w)
		}
		// and back again
		require.Equal(t, uint32(1), Inc(z))
		require.True(t, IsZero(z))
		require.Equal(t, uint32(0), Inc(z))
		require.True(t, IsOne(z))
	}
}

func TestAddWordAt(t *testing.T) {
	z := []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0, 0}
	require.Equal(t, uint32(0), AddWordAt(z, 1, 0))
	require.Equal(t, []uint32{0, 0, 1, 0}, z)
	//
	z = []uint32{0, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}
	require.Equal(t, uint32(1), AddDWordAt(z, 0x0000000100000000, 0))
	require.True(t, IsZero(z))
	//
	z = []uint32{0, 0, 1}
	require.Equal(t, uint32(0), SubWordAt(z, 1, 0))
	require.Equal(t, []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0}, z)
}

func TestMul(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	//
	for _, n := range widths {
		for range 300 {
			x, y := randomNat(rng, n), randomNat(rng, n)
			zz := make([]uint32, 2*n)
			Mul(zz, x, y)
			//
			expected := new(big.Int).Mul(ToBig(x), ToBig(y))
			require.Equal(t, 0, expected.Cmp(ToBig(zz)), "%x * %x", x, y)
		}
	}
}

func TestSquare(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	//
	for _, n := range widths {
		for range 300 {
			x := randomNat(rng, n)
			zz := make([]uint32, 2*n)
			Square(zz, x)
			//
			expected := new(big.Int).Mul(ToBig(x), ToBig(x))
			require.Equal(t, 0, expected.Cmp(ToBig(zz)), "%x^2", x)
		}
	}
	// All ones is the worst case for the doubling step
	for _, n := range widths {
		x := make([]uint32, n)
		for i := range x {
			x[i] = 0xFFFFFFFF
		}
		//
		zz, yy := make([]uint32, 2*n), make([]uint32, 2*n)
		Square(zz, x)
		Mul(yy, x, x)
		require.Equal(t, yy, zz)
	}
}

func TestMulWord(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	//
	for _, n := range widths {
		for range 200 {
			x, z := randomNat(rng, n), randomNat(rng, n)
			w := rng.Uint32()
			//
			expected := new(big.Int).Mul(ToBig(x), big.NewInt(int64(w)))
			expected.Add(expected, ToBig(z))
			c := MulWordAddTo(z, x, w)
			actual := new(big.Int).Add(ToBig(z), new(big.Int).Lsh(big.NewInt(int64(c)), uint(32*n)))
			require.Equal(t, 0, expected.Cmp(actual))
			//
			c = MulWord(z, x, w)
			expected = new(big.Int).Mul(ToBig(x), big.NewInt(int64(w)))
			actual = new(big.Int).Add(ToBig(z), new(big.Int).Lsh(big.NewInt(int64(c)), uint(32*n)))
			require.Equal(t, 0, expected.Cmp(actual))
		}
	}
}

func TestShifts(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	//
	for _, n := range widths {
		for range 200 {
			x := randomNat(rng, n)
			s := uint(1 + rng.IntN(31))
			mask := pow2(32*n - 1)
			mask.Sub(mask.Lsh(mask, 1), big.NewInt(1))
			// Up by one bit
			z := make([]uint32, n)
			c := ShiftUpBit(z, x, 1)
			expected := new(big.Int).Lsh(ToBig(x), 1)
			expected.Or(expected, big.NewInt(1))
			require.Equal(t, uint32(expected.Bit(32*n)), c)
			require.Equal(t, 0, new(big.Int).And(expected, mask).Cmp(ToBig(z)))
			// Down by one bit
			c = ShiftDownBit(z, x, 1)
			expected = new(big.Int).Rsh(ToBig(x), 1)
			expected.SetBit(expected, 32*n-1, 1)
			require.Equal(t, x[0]&1, c)
			require.Equal(t, 0, expected.Cmp(ToBig(z)))
			// Up by s bits, in place
			z = append([]uint32(nil), x...)
			c = ShiftUpBits(z, z, s, 0)
			expected = new(big.Int).Lsh(ToBig(x), s)
			require.Equal(t, 0, new(big.Int).And(expected, mask).Cmp(ToBig(z)))
			require.Equal(t, 0, new(big.Int).Rsh(expected, uint(32*n)).Cmp(big.NewInt(int64(c))))
			// And back down again, restoring x
			c = ShiftDownBits(z, z, s, c)
			require.Equal(t, x, z)
			require.Equal(t, uint32(0), c)
		}
	}
}

func TestComparisons(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	//
	for _, n := range widths {
		for range 200 {
			x, y := randomNat(rng, n), randomNat(rng, n)
			if rng.IntN(4) == 0 {
				copy(y, x)
			}
			//
			expected := ToBig(x).Cmp(ToBig(y))
			require.Equal(t, expected, Cmp(x, y))
			require.Equal(t, expected >= 0, Gte(x, y))
			require.Equal(t, expected == 0, Eq(x, y))
		}
	}
	//
	require.True(t, IsZero([]uint32{0, 0, 0}))
	require.False(t, IsZero([]uint32{0, 0, 1}))
	require.True(t, IsOne([]uint32{1, 0, 0}))
	require.False(t, IsOne([]uint32{1, 0, 1}))
	require.Equal(t, uint(65), BitLen([]uint32{0, 0, 1}))
	require.Equal(t, uint32(1), Bit([]uint32{0, 0, 1}, 64))
	require.Equal(t, uint32(0), Bit([]uint32{0, 0, 1}, 200))
}

func TestBigRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 18))
	//
	for _, n := range widths {
		for range 100 {
			x := randomNat(rng, n)
			z := make([]uint32, n)
			require.True(t, FromBig(z, ToBig(x)))
			require.Equal(t, x, z)
		}
		//
		require.False(t, FromBig(make([]uint32, n), pow2(32*n)))
		require.False(t, FromBig(make([]uint32, n), big.NewInt(-1)))
	}
}

func Test_PackageDoc(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "nat.go", nil, parser.PackageClauseOnly|parser.ParseComments)
	require.NoError(t, err)
	require.NotNil(t, f.Doc)
	require.True(t, strings.HasPrefix(f.Doc.Text(), "Package nat "), f.Doc.Text())
}
