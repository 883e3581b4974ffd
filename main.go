// SPDX-License-Identifier: MIT

package main

import (
	cmd "dymslex/cmd/dymslex"

	// Register the DYMS lexer into the chroma registry.
	_ "dymslex/pkg/dyms"
)

func main() {
	cmd.Execute()
}
