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
	"github.com/consensys/go-ecfield/pkg/util"
	"github.com/consensys/go-ecfield/pkg/util/termio"
	"github.com/spf13/cobra"
)

// Operations reported by bench.
var benchOps = []field.Op{field.MUL, field.SQR, field.INV}

var benchCmd = &cobra.Command{
	Use:   "bench [flags] [field(s)]",
	Short: "measure the cost of field operations.",
	Long: `Measure the average time (in nanoseconds) taken by multiplication, squaring and
inversion over one or more fields (by default all).`,
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := lookupFields(args)
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(2)
		}
		//
		rng, _ := newRng(0)
		//
		if err := benchFields(os.Stdout, fields, rng, GetUint(cmd, "iterations")); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

func benchFields(out io.Writer, fields []field.Field, rng io.Reader, iterations uint) error {
	header := []string{"name"}
	//
	for _, op := range benchOps {
		header = append(header, fmt.Sprintf("%s (ns/op)", op))
	}
	//
	table := termio.NewTablePrinter(uint(len(header)))
	row := table.AddRow(header...)
	//
	for i := range header {
		table.SetEscape(uint(i), row, termio.BoldAnsiEscape())
	}
	//
	for _, f := range fields {
		var (
			name  = f.Config().Name
			cols  = []string{name}
			stats = util.NewPerfStats()
		)
		//
		for _, op := range benchOps {
			elapsed, err := f.Time(op, iterations, rng)
			if err != nil {
				return err
			}
			//
			cols = append(cols, fmt.Sprintf("%.1f", float64(elapsed.Nanoseconds())/float64(max(iterations, 1))))
		}
		//
		stats.Log(fmt.Sprintf("Benchmarking %s", name))
		table.AddRow(cols...)
	}
	//
	table.Print(out)
	//
	return nil
}

func init() {
	benchCmd.Flags().Uint("iterations", 10000, "number of iterations per operation")
	rootCmd.AddCommand(benchCmd)
}
