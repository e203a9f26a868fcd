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
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version can be set at link time (-ldflags "-X ...cmd.Version=v1.2.3").
var Version string

var rootCmd = &cobra.Command{
	Use:   "smartscompiler",
	Short: "Compile SMARTS patterns and match them against molecules.",
	Long: `smartscompiler parses SMARTS patterns, optimises them and compiles them
to a small bytecode, which can then be matched against molecules read from
SMILES.

  print    show a pattern after parsing and optimisation
  asm      show the bytecode compiled for a pattern
  match    match a pattern against one or more molecules
  screen   match a YAML set of named patterns against a file of molecules`,
	Version: buildVersion(),
}

// Execute runs whichever subcommand was requested on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// Determine the version reported by "--version", preferring one set at link
// time over the module version and VCS revision recorded by the toolchain.
func buildVersion() string {
	if Version != "" {
		return Version
	}
	//
	info, ok := debug.ReadBuildInfo()
	//
	if !ok {
		return "unknown"
	} else if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	//
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
			return "devel-" + setting.Value[:12]
		}
	}
	//
	return "devel"
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debugging information")
	rootCmd.PersistentFlags().UintP("opt", "O", 2, "optimisation level applied to patterns (0-2)")
}
