package main

import (
	"os"

	"github.com/projectflow-simple/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
