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
package cmd

import (
	"fmt"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse an integer given either in decimal or, with a "0x" prefix, in
// hexadecimal.
func parseInteger(arg string) (*big.Int, error) {
	var (
		val  big.Int
		base = 10
		text = arg
	)
	//
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		base, text = 16, arg[2:]
	}
	//
	if _, ok := val.SetString(text, base); !ok {
		return nil, errors.Errorf("invalid integer \"%s\"", arg)
	}
	//
	return &val, nil
}

// Resolve fields by name, or all registered fields when no names are given.
func lookupFields(names []string) ([]field.Field, error) {
	if len(names) == 0 {
		return field.Fields(), nil
	}
	//
	fields := make([]field.Field, len(names))
	//
	for i, name := range names {
		f, ok := field.Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown field \"%s\"", name)
		}
		//
		fields[i] = f
	}
	//
	return fields, nil
}

// Construct a random source from a seed, where zero indicates the seed should be
// drawn from the system.  The seed actually used is returned so runs can be
// reproduced.
func newRng(seed uint64) (*rand.ChaCha8, uint64) {
	var bytes [32]byte
	//
	for seed == 0 {
		seed = rand.Uint64()
	}
	//
	binary.LittleEndian.PutUint64(bytes[:], seed)
	//
	return rand.NewChaCha8(bytes), seed
}
