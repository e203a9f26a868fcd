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
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/timvdm/smartscompiler/pkg/compiler"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/molecule"
	"github.com/timvdm/smartscompiler/pkg/util"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags] smarts smiles1 smiles2 ...",
	Short: "match a SMARTS pattern against one or more molecules.",
	Long: `Match a SMARTS pattern against one or more molecules given as SMILES,
reporting for each molecule whether it matched, how many times it matched, or
the mappings found (depending on the mode).`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMatchCmd,
}

func runMatchCmd(cmd *cobra.Command, args []string) {
	configureLogging(cmd)
	//
	var (
		mode      = GetString(cmd, "mode")
		filename  = GetString(cmd, "file")
		bytecode  = GetFlag(cmd, "vm")
		molecules = args[1:]
		failed    = false
	)
	//
	strategy, err := matcher.ParseStrategy(GetString(cmd, "strategy"))
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if _, err := matcher.NewPolicy(mode); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if filename != "" {
		molecules = append(molecules, readMoleculeFile(filename)...)
	}
	//
	stats := util.NewPerfStats()
	query := compilePattern(compiler.NewCompiler(getOptimisation(cmd), 0), args[0]).Query(bytecode)
	stats.Log("Compiling pattern")
	//
	stats = util.NewPerfStats()
	//
	for _, smiles := range molecules {
		mol, errs := molecule.ParseSmiles(smiles)
		//
		if len(errs) != 0 {
			printSyntaxErrors(errs)
			//
			failed = true
			//
			continue
		}
		// Mode already checked
		policy, _ := matcher.NewPolicy(mode)
		matcher.MatchWith(strategy, query, mol, policy)
		fmt.Printf("%s: %s\n", smiles, formatPolicy(policy))
	}
	//
	stats.Log(fmt.Sprintf("Matching %d molecule(s)", len(molecules)))
	log.Debugf("matched using %s strategy", strategy.String())
	//
	if failed {
		os.Exit(1)
	}
}

// Format the outcome held in a policy.
func formatPolicy(policy matcher.Policy) string {
	switch p := policy.(type) {
	case *matcher.Existence:
		return fmt.Sprintf("%t", p.Matched)
	case *matcher.Count:
		return fmt.Sprintf("%d", p.Count)
	case *matcher.First:
		if p.Mapping == nil {
			return "none"
		}
		//
		return fmt.Sprintf("%v", p.Mapping)
	case *matcher.All:
		if len(p.Mappings) == 0 {
			return "none"
		}
		//
		mappings := make([]string, len(p.Mappings))
		//
		for i, m := range p.Mappings {
			mappings[i] = fmt.Sprintf("%v", m)
		}
		//
		return strings.Join(mappings, " ")
	default:
		panic(fmt.Sprintf("unknown policy %T", policy))
	}
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringP("mode", "m", "exists", "match mode (exists, count, first or all)")
	matchCmd.Flags().String("strategy", "auto", "search strategy (auto, recursive or iterative)")
	matchCmd.Flags().Bool("vm", false, "match using compiled bytecode")
	matchCmd.Flags().StringP("file", "f", "", "read additional molecules from a file (one SMILES per line)")
}
