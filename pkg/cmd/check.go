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
	"io"
	"os"

	"github.com/consensys/go-ecfield/field"
	"github.com/consensys/go-ecfield/field/gf2m"
	"github.com/consensys/go-ecfield/field/secp256k1"
	"github.com/consensys/go-ecfield/pkg/check"
	"github.com/consensys/go-ecfield/pkg/util"
	"github.com/consensys/go-ecfield/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [field(s)]",
	Short: "check field arithmetic against reference arithmetic.",
	Long: `Check the arithmetic of one or more fields (by default all) on randomly chosen
operands against unoptimised big integer arithmetic.  For binary fields, every
multiplication and bit spreading implementation is also cross-checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := lookupFields(args)
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(2)
		}
		//
		_, seed := newRng(viper.GetUint64("seed"))
		log.Infof("using seed %d", seed)
		//
		config := checkConfig{
			seed:   seed,
			rounds: GetUint(cmd, "rounds"),
			gnark:  GetFlag(cmd, "gnark"),
		}
		//
		if ok, err := checkFields(os.Stdout, fields, config); err != nil {
			fmt.Println(err.Error())
			os.Exit(2)
		} else if !ok {
			os.Exit(1)
		}
	},
}

type checkConfig struct {
	// Seed from which random operands are derived
	seed uint64
	// Number of rounds of random operands per field
	rounds uint
	// Compare secp256k1 against gnark-crypto
	gnark bool
}

// Check the given fields concurrently, reporting results as a table.  Each field
// draws operands from its own generator, seeded from the configured seed and
// its position, so results are reproducible.  This returns false if any check
// failed.
func checkFields(out io.Writer, fields []field.Field, config checkConfig) (bool, error) {
	var (
		table  = termio.NewTablePrinter(3)
		ok     = true
		binary = false
	)
	//
	results, err := util.ParMap(fields, func(i uint, f field.Field) (check.Result, error) {
		var (
			stats  = util.NewPerfStats()
			rng, _ = newRng(config.seed + uint64(i) + 1)
		)
		//
		result, err := check.Field(f, rng, config.rounds)
		stats.Log(fmt.Sprintf("Checking %s", result.Field))
		//
		return result, err
	})
	//
	if err != nil {
		return false, err
	}
	//
	for _, f := range fields {
		binary = binary || f.Config().Kind == field.BINARY
	}
	//
	rng, _ := newRng(config.seed)
	//
	if config.gnark {
		result, err := checkGnark(rng, config.rounds)
		if err != nil {
			return false, err
		}
		//
		results = append(results, result)
	}
	//
	row := table.AddRow("field", "checks", "status")
	for i := range uint(3) {
		table.SetEscape(i, row, termio.BoldAnsiEscape())
	}
	//
	for _, result := range results {
		ok = addResult(table, result) && ok
	}
	// Binary fields have several implementations to cross-check
	if binary {
		status, escape := "ok", termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		//
		if err := gf2m.CrossCheck(rng, config.rounds); err != nil {
			status, escape, ok = err.Error(), termio.NewAnsiEscape().FgColour(termio.TERM_RED), false
		}
		//
		row := table.AddRow("gf2m implementations", "-", status)
		table.SetEscape(2, row, escape)
	}
	//
	table.Print(out)
	//
	return ok, nil
}

func checkGnark(rng io.Reader, rounds uint) (check.Result, error) {
	f, _ := field.Lookup("secp256k1")
	g, ok := field.Lookup(secp256k1.NAME)
	//
	if f == nil || !ok {
		return check.Result{}, errors.New("secp256k1 implementations not registered")
	}
	//
	return check.Agreement(f, g, rng, rounds)
}

func addResult(table *termio.TablePrinter, result check.Result) bool {
	var (
		status = "ok"
		escape = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	)
	//
	if !result.Ok() {
		status = fmt.Sprintf("%d failure(s)", len(result.Failures))
		escape = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	}
	//
	row := table.AddRow(result.Field, fmt.Sprintf("%d", result.Checks), status)
	table.SetEscape(2, row, escape)
	// Report individual failures
	for _, failure := range result.Failures {
		table.AddRow("", "", failure.String())
	}
	//
	return result.Ok()
}

func init() {
	checkCmd.Flags().Uint("rounds", 100, "number of random operand pairs per field")
	checkCmd.Flags().Uint64("seed", 0, "seed for random operands (0 for a random seed)")
	checkCmd.Flags().Bool("gnark", false, "compare secp256k1 against gnark-crypto")
	//
	if err := viper.BindPFlag("seed", checkCmd.Flags().Lookup("seed")); err != nil {
		panic(err)
	}
	//
	rootCmd.AddCommand(checkCmd)
}
