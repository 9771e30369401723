package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled reports whether output should be colorized: only when
// stdout is a real terminal, honoring NO_COLOR.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func colorize(enabled bool, code, text string) string {
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

func printResult(enabled bool, name string, pass bool, detail string) {
	if pass {
		fmt.Printf("%s %s\n", colorize(enabled, ansiGreen, "PASS"), name)
		return
	}
	fmt.Printf("%s %s: %s\n", colorize(enabled, ansiRed, "FAIL"), name, detail)
}
