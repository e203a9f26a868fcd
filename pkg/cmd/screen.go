// Copyright The smartscompiler Authors.
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
	"context"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/timvdm/smartscompiler/pkg/compiler"
	"github.com/timvdm/smartscompiler/pkg/screen"
	"github.com/timvdm/smartscompiler/pkg/util/termio"
)

var screenCmd = &cobra.Command{
	Use:   "screen [flags] patterns.yaml molecules.smi",
	Short: "screen molecules against a set of named SMARTS patterns.",
	Long: `Screen a file of molecules (one SMILES per line) against a set of named
SMARTS patterns given in a YAML file.  Molecules are matched in parallel, and
a table is printed with one row per molecule and one column per pattern.`,
	Args: cobra.ExactArgs(2),
	Run:  runScreenCmd,
}

func runScreenCmd(cmd *cobra.Command, args []string) {
	configureLogging(cmd)
	//
	config, err := screen.ReadConfig(args[0])
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// Command-line overrides
	if cmd.Flags().Changed("workers") {
		config.Workers = GetUint(cmd, "workers")
	}
	//
	if cmd.Flags().Changed("cache") {
		size := GetUint(cmd, "cache")
		config.Cache = &size
	}
	//
	if cmd.Flags().Changed("opt") {
		level := GetUint(cmd, "opt")
		config.Level = &level
		//
		if err := config.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	scr, errs := screen.New(config)
	//
	for _, err := range errs {
		fmt.Printf("pattern \"%s\":\n", err.Name)
		printSyntaxErrors(err.Errors)
	}
	//
	if len(errs) != 0 {
		os.Exit(1)
	}
	// Cancel outstanding work on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	//
	results, err := scr.Run(ctx, readMoleculeFile(args[1]))
	//
	if err != nil {
		log.Warnf("screening interrupted: %s", err)
	}
	//
	printScreenResults(scr.Names(), results, termio.IsTerminal(os.Stdout))
}

func printScreenResults(names []string, results []screen.Result, styled bool) {
	var (
		header = append([]string{"smiles"}, names...)
		table  = termio.NewTable(styled, header...)
		hit    = termio.Style{}.Fg(termio.GREEN)
		failed = termio.Style{}.Fg(termio.RED)
	)
	//
	for _, result := range results {
		row := make([]string, len(header))
		row[0] = result.Molecule
		//
		switch {
		case result.Errors != nil:
			for j := 1; j < len(row); j++ {
				row[j] = "error"
			}
		case result.Hits == nil:
			// Not screened (interrupted)
			for j := 1; j < len(row); j++ {
				row[j] = "-"
			}
		default:
			for j, h := range result.Hits {
				row[j+1] = fmt.Sprintf("%d", h.Count)
			}
		}
		//
		index := table.Add(row...)
		//
		for j := 1; j < len(row); j++ {
			if result.Errors != nil {
				table.Style(index, uint(j), failed)
			} else if result.Hits != nil && result.Hits[j-1].Matched {
				table.Style(index, uint(j), hit)
			}
		}
	}
	//
	if err := table.Write(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(screenCmd)
	screenCmd.Flags().Uint("workers", 0, "number of worker goroutines (0 means one per CPU)")
	screenCmd.Flags().Uint("cache", compiler.DEFAULT_CACHE_SIZE, "number of compiled patterns to cache (0 disables caching)")
}
