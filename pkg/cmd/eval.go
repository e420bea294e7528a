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
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] field op arg(s)",
	Short: "evaluate a field operation.",
	Long: `Evaluate a single operation over a given field.  Operands are given in decimal
or, with a 0x prefix, in hexadecimal, and the result is printed in hexadecimal.
Operations: ` + opNames() + `.`,
	Args: cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := evaluate(args[0], args[1], args[2:])
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		fmt.Println(result)
	},
}

// Evaluate an operation given by name over a field given by name.
func evaluate(name string, op string, args []string) (string, error) {
	f, ok := field.Lookup(name)
	if !ok {
		return "", errors.Errorf("unknown field \"%s\"", name)
	}
	//
	operands := make([]*big.Int, len(args))
	//
	for i, arg := range args {
		val, err := parseInteger(arg)
		if err != nil {
			return "", err
		}
		//
		operands[i] = val
	}
	//
	r, err := f.Eval(field.Op(strings.ToLower(op)), operands...)
	if err != nil {
		return "", err
	}
	//
	return "0x" + r.Text(16), nil
}

func opNames() string {
	names := make([]string, len(field.Ops))
	//
	for i, op := range field.Ops {
		names[i] = string(op)
	}
	//
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
