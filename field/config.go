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
package field

import (
	"math/big"
	"slices"
	"strings"
	"sync"
)

// Kind distinguishes prime fields from binary extension fields.
type Kind uint8

const (
	// PRIME identifies a prime field GF(p).
	PRIME Kind = iota
	// BINARY identifies a binary extension field GF(2ᵐ).
	BINARY
)

func (k Kind) String() string {
	if k == BINARY {
		return "binary"
	}
	//
	return "prime"
}

// Config describes a field in a manner independent of its representation.
type Config struct {
	// Name suitable for identifying the field, such as "secp256r1".
	Name string
	// Kind of field (prime or binary).
	Kind Kind
	// Bit length of the modulus, or degree of the polynomial.
	Bits uint
	// Modulus of the field (or its reduction polynomial).
	Modulus *big.Int
	// Details of the representation, where available.
	Description Description
}

// Description summarises how a field is represented and which algorithms it
// uses, for diagnostic tooling.
type Description struct {
	// Number of limbs in an element.
	Limbs uint
	// Width of each limb.
	LimbBits uint
	// Reduction strategy.
	Reduction string
	// Repunit chain used for inversion.
	Inversion string
	// Square root method.
	Sqrt string
	// Multiplication strategy, where more than one is available.
	Multiply string
}

// Describer is implemented by elements which can describe their representation.
type Describer interface {
	Describe() Description
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Field{}
	registered []Field
)

// Register adds a field to the registry under its configured name, plus any
// given aliases.  Registering the same name twice is a programmer error.
func Register(f Field, aliases ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	//
	for _, name := range append([]string{f.Config().Name}, aliases...) {
		key := strings.ToLower(name)
		//
		if _, ok := registry[key]; ok {
			panic("field " + name + " already registered")
		}
		//
		registry[key] = f
	}
	//
	registered = append(registered, f)
}

// Lookup returns the field registered under the given name (or alias), or
// false if there is none.
func Lookup(name string) (Field, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	//
	f, ok := registry[strings.ToLower(name)]
	//
	return f, ok
}

// Fields returns every registered field, prime fields first and ordered by size
// within each kind.
func Fields() []Field {
	registryMu.RLock()
	fields := slices.Clone(registered)
	registryMu.RUnlock()
	//
	slices.SortFunc(fields, func(a, b Field) int {
		ca, cb := a.Config(), b.Config()
		//
		switch {
		case ca.Kind != cb.Kind:
			return int(ca.Kind) - int(cb.Kind)
		case ca.Bits != cb.Bits:
			return int(ca.Bits) - int(cb.Bits)
		default:
			return strings.Compare(ca.Name, cb.Name)
		}
	})
	//
	return fields
}
