// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/ghodss/yaml"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/spf13/cobra"
)

var shortened, output = false, "yaml"

// Set by the build with ldflags
var BuildDate string
var BuildCommit string
var BuildVersionOverride string

// Info is the version detail printed by the version command
type Info struct {
	Version string `json:"Version,omitempty" yaml:"Version,omitempty"`
	Commit  string `json:"Commit,omitempty" yaml:"Commit,omitempty"`
	Date    string `json:"Date,omitempty" yaml:"Date,omitempty"`
}

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version info",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := BuildVersionOverride
			if version == "" {
				version = "(unknown)"
				if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
					version = info.Main.Version
				}
			}

			if shortened {
				fmt.Println(version)
				return nil
			}

			info := &Info{
				Version: version,
				Commit:  BuildCommit,
				Date:    BuildDate,
			}
			var b []byte
			var err error
			switch output {
			case "json":
				b, err = json.MarshalIndent(info, "", "  ")
			case "yaml":
				b, err = yaml.Marshal(info)
			default:
				return i18n.NewError(context.Background(), i18n.MsgInvalidOutputOption, output)
			}
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print only the version number")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format, one of yaml or json")
	return versionCmd
}
