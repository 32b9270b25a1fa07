// Package main - Entry point for the ecotrack CLI
package main

import (
	"fmt"
	"os"

	"ecotrack/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
