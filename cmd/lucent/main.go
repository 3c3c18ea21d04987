package main

import (
	"os"

	"lucent/cmd/lucent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
