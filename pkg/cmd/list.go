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
	"github.com/consensys/go-ecfield/pkg/util/termio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "list supported fields.",
	Long: `List the supported fields, along with their representation and reduction
strategy.  With --verbose, the addition chain used for inversion is included.`,
	Run: func(cmd *cobra.Command, args []string) {
		listFields(os.Stdout, field.Fields(), viper.GetBool("verbose"), termio.Width(120))
	},
}

func listFields(out io.Writer, fields []field.Field, verbose bool, width uint) {
	header := []string{"name", "kind", "bits", "limbs", "reduction", "sqrt", "multiply"}
	//
	if verbose {
		header = append(header, "inversion")
	}
	//
	table := termio.NewTablePrinter(uint(len(header)))
	row := table.AddRow(header...)
	for i := range header {
		table.SetEscape(uint(i), row, termio.BoldAnsiEscape())
	}
	//
	for _, f := range fields {
		c := f.Config()
		d := c.Description
		//
		multiply := d.Multiply
		if multiply == "" {
			multiply = "-"
		}
		//
		cols := []string{c.Name, c.Kind.String(), fmt.Sprintf("%d", c.Bits),
			fmt.Sprintf("%dx%d", d.Limbs, d.LimbBits), d.Reduction, d.Sqrt, multiply}
		//
		if verbose {
			cols = append(cols, d.Inversion)
		}
		//
		table.AddRow(cols...)
	}
	//
	table.FitWidth(width)
	table.Print(out)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
