// Package main is the entry point for the wscheck CLI.
package main

import (
	"os"

	"github.com/nathan8299/wscheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
