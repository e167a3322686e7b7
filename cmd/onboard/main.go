package main

import (
	"os"

	"github.com/bnema/agent-onboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
