package main

import (
	"fmt"
	"os"

	"github.com/wonny/fundamentals/cmd/fundamentals/commands"
)

// main is the entry point for the fundamentals CLI.
// Diagnostics go to stdout as a single line, matching the report stream.
func main() {
	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
