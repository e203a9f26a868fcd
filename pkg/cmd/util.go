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
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/timvdm/smartscompiler/pkg/compiler"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
	"github.com/timvdm/smartscompiler/pkg/util/source"
	"github.com/timvdm/smartscompiler/pkg/util/termio"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Get the optimisation selected by the "-O" flag, or exit if it is invalid.
func getOptimisation(cmd *cobra.Command) optimizer.Optimisation {
	opts, err := optimizer.Level(GetUint(cmd, "opt"))
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("using optimisations %s", opts.String())
	//
	return opts
}

// Compile a pattern given on the command line, or print its syntax errors and
// exit.
func compilePattern(comp *compiler.Compiler, text string) *compiler.Compiled {
	compiled, errs := comp.Compile(text)
	//
	if len(errs) != 0 {
		printSyntaxErrors(errs)
		os.Exit(1)
	}
	//
	return compiled
}

// Read molecules (as SMILES) from a file, one per line.  Anything after the
// first whitespace on a line (e.g. a name) is ignored, as are blank lines.
func readMoleculeFile(filename string) []string {
	var molecules []string
	//
	file, err := os.Open(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	defer file.Close()
	//
	scanner := bufio.NewScanner(file)
	//
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			molecules = append(molecules, fields[0])
		}
	}
	//
	if err := scanner.Err(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	log.Debugf("read %d molecule(s) from %s", len(molecules), filename)
	//
	return molecules
}

func printSyntaxErrors(errs []source.SyntaxError) {
	for i := range errs {
		printSyntaxError(&errs[i])
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = span.Start() - line.Start()
		// Calculate length (ensures don't overflow line)
		length = max(1, min(line.Length()-lineOffset, span.Length()))
		style  termio.Style
	)
	//
	if termio.IsTerminal(os.Stdout) {
		style = style.Bold().Fg(termio.RED)
	}
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(style.Apply(strings.Repeat("^", length)))
}
