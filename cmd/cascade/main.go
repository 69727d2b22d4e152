// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command cascade shows how the configuration of an application is resolved
// from the config directory and the environment.
package main

import (
	"os"

	"github.com/nil-go/cascade"
	"github.com/nil-go/cascade/cmd/cascade/commands"
)

func main() {
	if err := commands.New(cascade.Environ()).Execute(); err != nil {
		os.Exit(1)
	}
}
