// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"cogentcore.org/cables/base/iox/tomlx"
	"cogentcore.org/cables/base/iox/yamlx"
	"cogentcore.org/cables/cables"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var okColor = color.New(color.FgGreen, color.Bold)

func settingsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "settings [file]",
		Short: "Print the default settings, or check and save them to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := cables.DefaultSettings()
			if len(args) == 1 {
				if _, err := os.Stat(args[0]); err != nil {
					return cables.SaveSettings(set, args[0])
				}
				if _, err := cables.OpenSettings(args[0]); err != nil {
					return err
				}
				okColor.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
				return nil
			}
			switch format {
			case "toml":
				return tomlx.Write(set, cmd.OutOrStdout())
			case "yaml":
				return yamlx.Write(set, cmd.OutOrStdout())
			}
			return fmt.Errorf("settings: unknown format %q", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "format to print in: toml or yaml")
	return cmd
}
