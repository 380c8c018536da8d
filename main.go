package main

import (
	"os"

	"github.com/expensex/expensex-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
