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
	"crypto/rand"
	"io"
)

// Sqrt returns a square root of x, or false if x is not a square.  The method
// depends on p: for p = 3 (mod 4) the root is x^((p+1)/4); for p = 5 (mod 8)
// Atkin's method is used; otherwise (P-224) Cipolla's method.  In all cases
// the candidate is checked by squaring it.
func (x Element[M]) Sqrt() (Element[M], bool) {
	var (
		p = params[M]()
		r Element[M]
	)
	//
	if x.IsZero() {
		return x, true
	}
	//
	switch p.sqrt {
	case sqrt3Mod4:
		r = x.exp(p.sqrtPlan)
	case sqrtAtkin:
		r = x.atkin()
	default:
		if !x.isSquare() {
			return Element[M]{}, false
		}
		//
		r = x.cipolla()
	}
	//
	if !r.Square().Equal(x) {
		return Element[M]{}, false
	}
	//
	return r, true
}

// For p = 5 (mod 8): with t = 2x, v = t^((p-5)/8) and i = t*v² (a square root
// of -1 when x is a square), the root is x*v*(i-1).
func (x Element[M]) atkin() Element[M] {
	var (
		p = params[M]()
		t = x.Double()
		v = t.exp(p.sqrtPlan)
		i = t.Mul(v.Square())
	)
	//
	return x.Mul(v).Mul(i.Sub(One[M]()))
}

// Euler's criterion x^((p-1)/2) = 1.
func (x Element[M]) isSquare() bool {
	return x.exp(params[M]().eulerPlan).IsOne()
}

// Cipolla's method: find a such that d = a² - x is not a square, then
// (a + w)^((p+1)/2) in Fp[w]/(w² - d) lies in Fp and is a root of x.  The
// search starts from a random point, and steps by one.
// Source of start points for Cipolla's method.
var entropy io.Reader = rand.Reader

func (x Element[M]) cipolla() Element[M] {
	var (
		p      = params[M]()
		a, err = Random[M](entropy)
		d      Element[M]
	)
	// Any start point succeeds, since stepping visits every element; only
	// the expected number of steps relies on a random start.
	if err != nil {
		a = Element[M]{}
	}
	//
	for {
		d = a.Square().Sub(x)
		//
		if d.IsZero() {
			return a
		} else if !d.isSquare() {
			break
		}
		//
		a = a.AddOne()
	}
	// Square-and-multiply over pairs u + v*w
	var (
		e    = p.cipollaExp
		u, v = One[M](), Element[M]{}
	)
	//
	for i := e.BitLen() - 1; i >= 0; i-- {
		// (u + vw)² = u² + v²d + 2uvw
		u, v = u.Square().Add(v.Square().Mul(d)), u.Mul(v).Double()
		//
		if e.Bit(i) == 1 {
			// (u + vw)(a + w) = ua + vd + (u + va)w
			u, v = u.Mul(a).Add(v.Mul(d)), u.Add(v.Mul(a))
		}
	}
	//
	return u
}
