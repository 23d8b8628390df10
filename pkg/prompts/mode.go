// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// EnvNonInteractive disables prompts when truthy
	EnvNonInteractive = "FLEET_NON_INTERACTIVE"
	// EnvCI is set by most CI systems and disables prompts as well
	EnvCI = "CI"
)

// isInteractive is a variable for testing purposes
var isInteractive = IsInteractive

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

// IsInteractive reports whether the operator can answer a prompt: stdin is
// a terminal and neither FLEET_NON_INTERACTIVE nor CI is truthy.
func IsInteractive() bool {
	for _, env := range []string{EnvNonInteractive, EnvCI} {
		if truthy(os.Getenv(env)) {
			return false
		}
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
