package main

import (
	"os"

	"github.com/rstms/sdfs/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
