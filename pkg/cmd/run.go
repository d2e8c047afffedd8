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

	"github.com/consensys/go-imp/pkg/imp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "Evaluate a program under a given fuel budget.",
	Long: `Evaluate a program under a given fuel budget, printing the final
	store on success.  Programs are given as JSON or YAML encodings of the
	abstract syntax tree.  A program needing more evaluation steps than the
	budget allows reports fuel exhaustion and exits with a non-zero status;
	retrying with a larger budget is always safe, since extra fuel never
	changes a completed answer.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg runConfig
		//
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.fuel = getUint(cmd, "fuel")
		cfg.defaultValue = getInt64(cmd, "default")
		cfg.bindings = getStringArray(cmd, "var")
		// Parse program
		program := readProgramFile(args[0])
		// Go!
		runProgram(program, cfg)
	},
}

// run config encapsulates certain parameters to be used when evaluating
// programs.
type runConfig struct {
	// Fuel budget supplied to the evaluation.
	fuel uint
	// Value read for variables without an explicit initial binding.
	defaultValue int64
	// Initial bindings, as "index=value" strings.
	bindings []string
}

// Evaluate a given program in an initial store built from the configuration,
// reporting either the final store or fuel exhaustion.
func runProgram(program imp.Com, cfg runConfig) {
	store := buildStore(cfg.defaultValue, cfg.bindings)
	//
	log.Debugf("evaluating %s in %s with fuel %d", program, store, cfg.fuel)
	//
	result := imp.EvalCom(program, store, cfg.fuel)
	//
	if result.IsEmpty() {
		fmt.Fprintf(os.Stderr, "fuel budget of %d exhausted\n", cfg.fuel)
		os.Exit(1)
	}
	//
	printStore(result.Unwrap())
}

// Print the bound variables of a store, one per line on a terminal and as a
// single line otherwise.
func printStore(store imp.Store) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		for _, x := range store.Bound() {
			fmt.Printf("x%d = %s\n", x, store.Lookup(x))
		}
	} else {
		fmt.Println(store.String())
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Uint("fuel", 1000, "fuel budget for the evaluation")
	runCmd.Flags().Int64("default", 0, "value of variables without an initial binding")
	runCmd.Flags().StringArray("var", nil, "initial binding as index=value (repeatable)")
}
