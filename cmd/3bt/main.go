// Package main is the entry point for the 3bt timer bar.
package main

import (
	"os"

	"github.com/threebell/threebell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
