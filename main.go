package main

import (
	"os"

	"github.com/abhisek/prepmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
