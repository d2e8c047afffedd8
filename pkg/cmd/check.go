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
	"github.com/consensys/go-imp/pkg/imp/bigstep"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [program_file]",
	Short: "Check the big-step rule table against the evaluator.",
	Long: `Check that the big-step rule table agrees with the direct evaluator.
	Given a program file, every subterm of the program is checked at every
	fuel value up to the budget (including fuel zero).  Without a file, the
	check runs over an enumeration of programs up to a given nesting depth.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.fuel = getUint(cmd, "fuel")
		cfg.defaultValue = getInt64(cmd, "default")
		cfg.bindings = getStringArray(cmd, "var")
		cfg.depth = getUint(cmd, "depth")
		cfg.vars = getUint(cmd, "vars")
		//
		if len(args) == 1 {
			checkProgram(readProgramFile(args[0]), cfg)
		} else {
			checkEnumeration(cfg)
		}
	},
}

// check config encapsulates certain parameters to be used when replaying the
// rule table.
type checkConfig struct {
	// Fuel bound; every fuel value up to this is checked.
	fuel uint
	// Value read for variables without an explicit initial binding.
	defaultValue int64
	// Initial bindings, as "index=value" strings.
	bindings []string
	// Nesting depth of the program enumeration.
	depth uint
	// Number of distinct variables in the program enumeration.
	vars uint
}

// Check one program, subterm by subterm, at every fuel value up to the bound.
func checkProgram(program imp.Com, cfg checkConfig) {
	store := buildStore(cfg.defaultValue, cfg.bindings)
	//
	if err := bigstep.CheckProgram(program, store, cfg.fuel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	aexps, bexps, coms := bigstep.Subterms(program)
	fmt.Printf("checked %d terms at fuels 0..%d\n", len(aexps)+len(bexps)+len(coms), cfg.fuel)
}

// Check every enumerated program up to the configured depth.
func checkEnumeration(cfg checkConfig) {
	var vars []imp.Variable
	//
	for i := uint(0); i < cfg.vars; i++ {
		vars = append(vars, i)
	}
	//
	var (
		store    = buildStore(cfg.defaultValue, cfg.bindings)
		programs = bigstep.Programs(vars, cfg.depth)
	)
	//
	log.Debugf("enumerated %d programs at depth %d over %d variables",
		len(programs), cfg.depth, cfg.vars)
	//
	for _, program := range programs {
		if err := bigstep.CheckProgram(program, store, cfg.fuel); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	//
	fmt.Printf("checked %d programs at fuels 0..%d\n", len(programs), cfg.fuel)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("fuel", 8, "fuel bound; all smaller budgets are checked too")
	checkCmd.Flags().Int64("default", 0, "value of variables without an initial binding")
	checkCmd.Flags().StringArray("var", nil, "initial binding as index=value (repeatable)")
	checkCmd.Flags().Uint("depth", 1, "nesting depth of the program enumeration")
	checkCmd.Flags().Uint("vars", 2, "number of distinct variables in the program enumeration")
}
