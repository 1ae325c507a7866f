// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the commands of the cables tool.
package cmd

import (
	"cogentcore.org/cables/base/logx"
	"github.com/spf13/cobra"
)

var (
	veryVerbose bool
	verbose     bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:           "cables",
	Short:         "cables renders patch cable scenes and manages their settings",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
		logx.SetDefaultLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "log debug messages")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log informational messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.AddCommand(renderCmd(), settingsCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
