package main

import (
	"os"

	"github.com/abhisek/smarttest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
