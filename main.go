package main

import (
	"os"

	"github.com/its-aleezA/cpu-scheduling-simulator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
