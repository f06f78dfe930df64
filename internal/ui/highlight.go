package ui

import (
	"os"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Emphasize returns the value styled bold red when ANSI output is enabled.
func Emphasize(value string) string {
	if value == "" {
		return value
	}
	if !ansiEnabled() {
		return value
	}
	return ansiBold + ansiRed + value + ansiReset
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
