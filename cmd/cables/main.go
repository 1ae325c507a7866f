// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cables renders patch cable scenes headlessly and manages
// the settings of the cable widgets.
package main

import (
	"os"

	"cogentcore.org/cables/cmd/cables/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
