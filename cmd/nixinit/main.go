package main

import (
	"os"

	"github.com/nixinit/nixinit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
