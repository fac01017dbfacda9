package main

import (
	"os"

	"github.com/arjunvk/levelcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
