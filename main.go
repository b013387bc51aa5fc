package main

import (
	"os"

	"github.com/hirekit/hirekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
