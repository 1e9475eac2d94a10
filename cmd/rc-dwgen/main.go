// Package main is the entry point for rc-dwgen.
package main

import (
	"fmt"
	"os"

	"github.com/rclogistics/rc-dwgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
