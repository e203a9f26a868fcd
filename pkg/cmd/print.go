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

	"github.com/spf13/cobra"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
	"github.com/timvdm/smartscompiler/pkg/smarts"
	"github.com/timvdm/smartscompiler/pkg/smarts/parser"
	"github.com/timvdm/smartscompiler/pkg/util/source"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] smarts",
	Short: "print the predicates and traversal plan of a SMARTS pattern.",
	Long: `Print the atom and bond predicates of a SMARTS pattern, along with the
order in which its bonds are traversed during matching.  When optimisations
are enabled, predicates are shown both before and after optimisation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		opts := getOptimisation(cmd)
		srcfile := source.NewSourceFile("smarts", []byte(args[0]))
		pattern, srcmap, errs := parser.ParseSource(srcfile)
		//
		if len(errs) != 0 {
			printSyntaxErrors(errs)
			os.Exit(1)
		}
		//
		optimised := optimizer.Optimize(pattern, opts)
		//
		for i := range pattern.Atoms {
			var (
				span = srcmap.Get(uint(i))
				text = srcfile.Text(span)
			)
			//
			fmt.Printf("atom %d: %s\n", i, text)
			printPredicate(&pattern.Atoms[i].Predicate, &optimised.Atoms[i].Predicate, opts != 0)
			//
			if atom := pattern.Atoms[i]; atom.Chiral || atom.Class != 0 {
				fmt.Printf("\tchiral=%t class=%d\n", atom.Chiral, atom.Class)
			}
		}
		//
		for i, bond := range pattern.Bonds {
			kind := "close"
			//
			if bond.Grow {
				kind = "grow"
			}
			//
			fmt.Printf("bond %d: %d-%d %s\n", i, bond.Source, bond.Target, kind)
			printPredicate(&pattern.Bonds[i].Predicate, &optimised.Bonds[i].Predicate, opts != 0)
		}
	},
}

func printPredicate[L smarts.Leaf](before *smarts.Predicate[L], after *smarts.Predicate[L], optimised bool) {
	fmt.Printf("\t[%s] (size %d)\n", before.String(), before.Size())
	//
	if optimised && !before.Equals(after) {
		fmt.Printf("\t=> [%s] (size %d)\n", after.String(), after.Size())
	}
}

func init() {
	rootCmd.AddCommand(printCmd)
}
