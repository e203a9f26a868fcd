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
	"github.com/timvdm/smartscompiler/pkg/compiler"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] smarts",
	Short: "print the bytecode for a SMARTS pattern.",
	Long:  `Compile a SMARTS pattern into bytecode, and print the disassembled listing.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		compiled := compilePattern(compiler.NewCompiler(getOptimisation(cmd), 0), args[0])
		//
		if err := compiled.Program.Disassemble(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "stats") {
			fmt.Printf("; %d instructions\n", compiled.Program.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().Bool("stats", false, "report size of compiled program")
}
