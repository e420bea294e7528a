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

// Mul sets zz = x * y, where zz has twice the length of x and y.  This is
// schoolbook long multiplication: each outer step multiplies one word of x
// against all words of y, accumulating into zz.  The output must not alias
// either input.
func Mul(zz, x, y []uint32) {
	n := len(x)
	//
	clear(zz[:2*n])
	//
	for i := range n {
		var (
			xi = uint64(x[i])
			c  uint64
		)
		//
		for j := range n {
			c += xi*uint64(y[j]) + uint64(zz[i+j])
			zz[i+j] = uint32(c)
			c >>= 32
		}
		//
		zz[i+n] = uint32(c)
	}
}

// MulWord sets z = x * w and returns the most significant (carry) word of the
// product.
func MulWord(z, x []uint32, w uint32) uint32 {
	var (
		c  uint64
		ww = uint64(w)
	)
	//
	for i := range z {
		c += uint64(x[i]) * ww
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(c)
}

// MulWordAddTo sets z = z + x * w and returns the carry word.
func MulWordAddTo(z, x []uint32, w uint32) uint32 {
	var (
		c  uint64
		ww = uint64(w)
	)
	//
	for i := range z {
		c += uint64(x[i])*ww + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	//
	return uint32(c)
}

// Square sets zz = x * x, where zz has twice the length of x.  Since x_i*x_j =
// x_j*x_i, the cross products are computed only once and then doubled before
// the diagonal terms are added, which roughly halves the multiplications
// compared with Mul.  The output must not alias the input.
func Square(zz, x []uint32) {
	n := len(x)
	//
	clear(zz[:2*n])
	// Cross products x_i*x_j for i < j
	for i := range n {
		var (
			xi = uint64(x[i])
			c  uint64
		)
		//
		for j := i + 1; j < n; j++ {
			c += xi*uint64(x[j]) + uint64(zz[i+j])
			zz[i+j] = uint32(c)
			c >>= 32
		}
		//
		zz[i+n] = uint32(c)
	}
	// Double them (cannot overflow, since the cross sum is below 2^(64n-1))
	ShiftUpBit(zz[:2*n], zz[:2*n], 0)
	// Add the diagonal
	var c uint64
	//
	for i := range n {
		sq := uint64(x[i]) * uint64(x[i])
		c += uint64(zz[2*i]) + (sq & 0xFFFFFFFF)
		zz[2*i] = uint32(c)
		c >>= 32
		c += uint64(zz[2*i+1]) + (sq >> 32)
		zz[2*i+1] = uint32(c)
		c >>= 32
	}
}
