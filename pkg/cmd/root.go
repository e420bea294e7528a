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
	"os"
	"runtime/debug"
	"strings"

	"github.com/consensys/go-ecfield/field/gf2m"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Register the supported fields
	_ "github.com/consensys/go-ecfield/field/fp"
	_ "github.com/consensys/go-ecfield/field/secp256k1"
)

// ENV_PREFIX is the prefix of environment variables which configure flags,
// such that ECFIELD_STRATEGY corresponds to --strategy.
const ENV_PREFIX = "ECFIELD"

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecfield",
	Short: "Arithmetic over the base fields of standard elliptic curves.",
	Long: `Fixed-width arithmetic over the prime and binary base fields of the SEC 2,
NIST, SM2 and Curve25519 elliptic curves, with tooling for evaluation,
randomised checking and benchmarking.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("ecfield ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			_ = cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Apply settings common to all commands, where flags take precedence over the
// environment.
func configure() error {
	// Configure log level
	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Configure binary field multiplication
	strategy, err := gf2m.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return err
	}
	//
	gf2m.SetStrategy(strategy)
	//
	return nil
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("strategy", "auto", "binary field multiplication (auto, karatsuba or comb)")
	// Bind flags to the environment
	viper.SetEnvPrefix(ENV_PREFIX)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	//
	for _, name := range []string{"verbose", "strategy"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
