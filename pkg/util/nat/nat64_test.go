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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomNat64(rng *rand.Rand, n int) []uint64 {
	x := make([]uint64, n)
	for i := range x {
		x[i] = rng.Uint64()
	}
	//
	return x
}

func TestBig64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 20))
	//
	for n := 1; n <= 9; n++ {
		for range 100 {
			x := randomNat64(rng, n)
			z := make([]uint64, n)
			require.True(t, FromBig64(z, ToBig64(x)))
			require.Equal(t, x, z)
		}
		//
		require.False(t, FromBig64(make([]uint64, n), new(big.Int).Lsh(big.NewInt(1), uint(64*n))))
	}
}

func TestXor64(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	x, y := randomNat64(rng, 5), randomNat64(rng, 5)
	z := make([]uint64, 5)
	//
	Xor64(z, x, y)
	require.Equal(t, 0, new(big.Int).Xor(ToBig64(x), ToBig64(y)).Cmp(ToBig64(z)))
	XorTo64(z, y)
	require.True(t, Eq64(z, x))
	XorTo64(z, x)
	require.True(t, IsZero64(z))
	z[0] = 1
	require.True(t, IsOne64(z))
}

func TestShifts64(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	//
	for n := 1; n <= 9; n++ {
		for range 100 {
			x := randomNat64(rng, n)
			s := uint(1 + rng.IntN(63))
			z := append([]uint64(nil), x...)
			//
			c := ShiftUpBits64(z, z, s, 0)
			expected := new(big.Int).Lsh(ToBig64(x), s)
			require.Equal(t, 0, new(big.Int).Rsh(expected, uint(64*n)).Cmp(new(big.Int).SetUint64(c)))
			//
			c = ShiftDownBits64(z, z, s, c)
			require.Equal(t, x, z)
			require.Equal(t, uint64(0), c)
			require.Equal(t, uint(ToBig64(x).BitLen()), BitLen64(x))
		}
	}
}
